package taxonomy

import (
	"fmt"
	"strings"
)

// ValidationSeverity indicates whether a validation finding blocks
// construction or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks construction
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Path     string             // slash-joined node path (empty if tree-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Path, e.Message)
}

// Errors aggregates blocking findings into a single error value.
// Warnings are dropped; callers wanting them use Validate directly.
type Errors []ValidationError

func (es Errors) Error() string {
	var blocking []string
	for _, e := range es {
		if e.Severity == SeverityError {
			blocking = append(blocking, e.Error())
		}
	}
	if len(blocking) == 0 {
		return "taxonomy: no blocking validation errors"
	}
	return "taxonomy: " + strings.Join(blocking, "; ")
}

// Validate runs all structural checks on the root nodes and returns a slice
// of findings. An empty slice means the taxonomy is valid. This function is
// read-only and never mutates the nodes.
func Validate(roots []Node) []ValidationError {
	var errs []ValidationError
	if len(roots) == 0 {
		errs = append(errs, ValidationError{
			Message:  "taxonomy has no core categories",
			Severity: SeverityError,
		})
		return errs
	}
	errs = append(errs, validateSiblings(roots, "")...)
	for i := range roots {
		errs = append(errs, validateNode(&roots[i], LevelCore, roots[i].Name)...)
	}
	return errs
}

// validateNode checks one node and recurses into its children.
func validateNode(n *Node, level Level, path string) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(n.Name) == "" {
		errs = append(errs, ValidationError{
			Path:     path,
			Message:  fmt.Sprintf("%s node has an empty name", level),
			Severity: SeverityError,
		})
	}

	if level == LevelTertiary {
		if len(n.Children) > 0 {
			errs = append(errs, ValidationError{
				Path:     path,
				Message:  fmt.Sprintf("tertiary node has %d children; the tree is at most %d levels deep", len(n.Children), MaxDepth),
				Severity: SeverityError,
			})
		}
		return errs
	}

	// A childless core or primary is legal: the wheel treats it as a
	// terminal leaf and offers no deeper ring. Flag it so taxonomy authors
	// notice truncated branches.
	if len(n.Children) == 0 {
		errs = append(errs, ValidationError{
			Path:     path,
			Message:  fmt.Sprintf("%s node has no children; selection terminates here", level),
			Severity: SeverityWarning,
		})
		return errs
	}

	errs = append(errs, validateSiblings(n.Children, path)...)
	for i := range n.Children {
		child := &n.Children[i]
		errs = append(errs, validateNode(child, level+1, path+"/"+child.Name)...)
	}
	return errs
}

// validateSiblings checks that sibling names are unique, since lookups and
// selection transitions address nodes by name within their parent.
func validateSiblings(nodes []Node, path string) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]int, len(nodes))
	for i := range nodes {
		seen[nodes[i].Name]++
	}
	for name, count := range seen {
		if name != "" && count > 1 {
			errs = append(errs, ValidationError{
				Path:     path,
				Message:  fmt.Sprintf("duplicate sibling name %q (%d occurrences)", name, count),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// HasBlocking reports whether any finding is an error (not a warning).
func HasBlocking(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
