// Package dsl evaluates the Lisp taxonomy definition language. It wraps
// zygomys in a sandboxed environment and produces a taxonomy.Tree from
// user source code.
package dsl

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/whorl/pkg/taxonomy"
)

// EvalError is a non-fatal problem in user source: a parse error, a
// runtime error, or a validation finding on the resulting tree.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine wraps the zygomys interpreter. It is safe for concurrent use;
// each Evaluate call runs in a fresh sandbox for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs taxonomy DSL source and builds the tree it declares.
//
// Return semantics:
//   - success: tree + nil errors + nil error
//   - bad source or invalid taxonomy: nil tree + eval errors + nil error
//   - fatal failure (timeout, panic): nil + nil + error
func (e *Engine) Evaluate(source string) (*taxonomy.Tree, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		tree, evalErrs, err := evaluate(source)
		ch <- evalResult{tree: tree, errors: evalErrs, err: err}
	}()

	return e.waitWithTimeout(ch, gen)
}

func evaluate(source string) (*taxonomy.Tree, []EvalError, error) {
	if strings.TrimSpace(source) == "" {
		return nil, []EvalError{{Message: "empty source: declare at least one core"}}, nil
	}

	// Sandbox mode keeps user code away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	var roots []taxonomy.Node
	registerBuiltins(env, &roots)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}

	tree, err := taxonomy.New(roots)
	if err != nil {
		return nil, validationErrors(err), nil
	}
	return tree, nil, nil
}

// validationErrors flattens taxonomy validation findings into eval errors.
func validationErrors(err error) []EvalError {
	var verrs taxonomy.Errors
	if !errors.As(err, &verrs) {
		return []EvalError{{Message: err.Error()}}
	}
	out := make([]EvalError, 0, len(verrs))
	for _, v := range verrs {
		out = append(out, EvalError{Message: v.Error()})
	}
	return out
}

// linePattern matches zygomys messages of the form "Error on line N: ...".
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches the plainer "line N: ..." form.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into EvalError values,
// extracting a line number from the message when one is present.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, pat := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := pat.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
