package taxonomy

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Level identifies one of the three meaningful tree levels.
type Level int

const (
	LevelCore     Level = iota // top-level category
	LevelPrimary               // subcategory
	LevelTertiary              // leaf
)

func (l Level) String() string {
	switch l {
	case LevelCore:
		return "core"
	case LevelPrimary:
		return "primary"
	case LevelTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// MaxDepth is the number of meaningful tree levels.
const MaxDepth = 3

// Color is an RGB color parsed from a "#RRGGBB" hex literal.
type Color struct {
	colorful.Color
}

// ParseColor parses a "#RRGGBB" hex string.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("taxonomy: invalid color %q: %w", hex, err)
	}
	return Color{c}, nil
}

// MustColor parses a hex color or panics. For fixture and test data only.
func MustColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Dimmed returns the color blended toward a neutral gray in Lab space.
// Used by the always-visible policy for segments outside the selected path.
func (c Color) Dimmed() Color {
	gray := colorful.Color{R: 0.85, G: 0.85, B: 0.85}
	return Color{c.BlendLab(gray, 0.65).Clamped()}
}

// UnmarshalYAML accepts a "#RRGGBB" scalar.
func (c *Color) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML emits the "#RRGGBB" form.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// Gradient is an optional two-stop fill for a node's segment.
type Gradient struct {
	Start Color `yaml:"start" json:"start"`
	End   Color `yaml:"end" json:"end"`
}

// Node is one entry in the taxonomy tree. A node at LevelTertiary has no
// children; a node with an empty Children slice at a shallower level is
// treated as a terminal leaf by the geometry engine.
type Node struct {
	Name     string    `yaml:"name" json:"name"`
	Color    Color     `yaml:"color" json:"color"`
	Gradient *Gradient `yaml:"gradient,omitempty" json:"gradient,omitempty"`
	Children []Node    `yaml:"children,omitempty" json:"children,omitempty"`
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Fill returns the color pair used to paint the node's segment. A node
// without an explicit gradient fills flat with its base color.
func (n *Node) Fill() (start, end Color) {
	if n.Gradient != nil {
		return n.Gradient.Start, n.Gradient.End
	}
	return n.Color, n.Color
}

// child returns the child with the given name, or nil. Sibling names are
// unique (enforced at validation), so the first match is the only match.
func (n *Node) child(name string) *Node {
	for i := range n.Children {
		if n.Children[i].Name == name {
			return &n.Children[i]
		}
	}
	return nil
}
