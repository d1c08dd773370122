package dsl

import (
	"fmt"
	"time"

	"github.com/chazu/whorl/pkg/taxonomy"
)

// EvalTimeout is the hard limit for a single evaluation. Taxonomy files
// are small, but user source can still loop forever.
const EvalTimeout = 5 * time.Second

type evalResult struct {
	tree   *taxonomy.Tree
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result, failing after EvalTimeout. The
// generation counter discards stale results: on timeout the goroutine may
// still be running, and if a newer Evaluate has started its late answer
// must not be surfaced.
func (e *Engine) waitWithTimeout(ch <-chan evalResult, gen uint64) (*taxonomy.Tree, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		e.mu.Lock()
		current := e.generation
		e.mu.Unlock()
		if gen != current {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.tree, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}
