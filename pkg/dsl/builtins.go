package dsl

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/whorl/pkg/taxonomy"
)

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// sexpNode wraps a built taxonomy node so nested builtin calls can pass
// results to their parent form.
type sexpNode struct {
	node  taxonomy.Node
	level taxonomy.Level
}

func (n *sexpNode) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s %q)", n.level, n.node.Name)
}
func (n *sexpNode) Type() *zygo.RegisteredType { return nil }

// isKW checks whether a Sexp is a preprocessed keyword string, returning
// the bare keyword name when it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs is a parsed mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates keyword pairs from positional arguments. Keywords
// carry the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			i++
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i += 2
		} else {
			// Trailing keyword with no value; treat as a nil flag.
			result.kw[name] = zygo.SexpNull
			i++
		}
	}
	return result
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toColor extracts a hex color string from a Sexp.
func toColor(s zygo.Sexp) (taxonomy.Color, error) {
	str, err := toString(s)
	if err != nil {
		return taxonomy.Color{}, err
	}
	return taxonomy.ParseColor(str)
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// registerBuiltins installs the taxonomy DSL forms into a zygomys
// environment. Top-level core forms append to roots as they evaluate.
//
// Source must be preprocessed with preprocessSource so :keyword tokens are
// recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, roots *[]taxonomy.Node) {

	// (tertiary "Proud" :color "#FFF0B0")
	env.AddFunction("tertiary", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		node, err := buildNode("tertiary", taxonomy.LevelTertiary, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return node, nil
	})

	// (primary "Happiness" :color "#FFE066" (tertiary ...) ...)
	env.AddFunction("primary", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		node, err := buildNode("primary", taxonomy.LevelPrimary, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return node, nil
	})

	// (core "Joy" :color "#FFD700" :gradient ["#FFD700" "#FFA500"] (primary ...) ...)
	env.AddFunction("core", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		node, err := buildNode("core", taxonomy.LevelCore, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		*roots = append(*roots, node.node)
		return node, nil
	})
}

// buildNode assembles one taxonomy node from a builtin's argument list:
// the first positional is the name, keyword args carry presentation, and
// the remaining positionals are child nodes one level deeper.
func buildNode(form string, level taxonomy.Level, args []zygo.Sexp) (*sexpNode, error) {
	pa := parseArgs(args)
	if len(pa.positional) == 0 {
		return nil, fmt.Errorf("%s: missing name", form)
	}

	name, err := toString(pa.positional[0])
	if err != nil {
		return nil, fmt.Errorf("%s: name: %w", form, err)
	}
	node := taxonomy.Node{Name: name}

	if v, ok := pa.kw["color"]; ok {
		c, err := toColor(v)
		if err != nil {
			return nil, fmt.Errorf("%s %q: color: %w", form, name, err)
		}
		node.Color = c
	}
	if v, ok := pa.kw["gradient"]; ok {
		g, err := toGradient(v)
		if err != nil {
			return nil, fmt.Errorf("%s %q: gradient: %w", form, name, err)
		}
		node.Gradient = g
	}

	if level == taxonomy.LevelTertiary && len(pa.positional) > 1 {
		return nil, fmt.Errorf("tertiary %q: leaf forms take no children", name)
	}

	for i, child := range pa.positional[1:] {
		cn, ok := child.(*sexpNode)
		if !ok {
			return nil, fmt.Errorf("%s %q: child %d: expected a nested form, got %T", form, name, i+1, child)
		}
		if cn.level != level+1 {
			return nil, fmt.Errorf("%s %q: child %q is a %s form, want %s", form, name, cn.node.Name, cn.level, level+1)
		}
		node.Children = append(node.Children, cn.node)
	}

	return &sexpNode{node: node, level: level}, nil
}

// toGradient extracts a two-element color list.
func toGradient(s zygo.Sexp) (*taxonomy.Gradient, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	if len(items) != 2 {
		return nil, fmt.Errorf("expected [start end], got %d elements", len(items))
	}
	start, err := toColor(items[0])
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := toColor(items[1])
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	return &taxonomy.Gradient{Start: start, End: end}, nil
}
