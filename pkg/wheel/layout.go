package wheel

import "math"

// Direction is the reading direction of the wheel. In RTL locales the
// taxonomy order sweeps the other way around the circle so declared order
// still reads naturally.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection maps the locale strings "ltr"/"rtl" to a Direction.
// Anything unrecognized falls back to LTR.
func ParseDirection(s string) Direction {
	if s == "rtl" {
		return DirectionRTL
	}
	return DirectionLTR
}

// angleBias rotates the wheel so the first segment starts at 12 o'clock.
// Angles are measured in radians in screen coordinates (y down), so -pi/2
// points straight up.
const angleBias = -math.Pi / 2

// Layout fixes the wheel's center and ring radii for one render pass.
// Bands: core ring [Hub, Core), primary ring [Core, Middle), tertiary ring
// [Middle, Outer). The hub disk inside Hub is the reset target.
type Layout struct {
	CenterX   float64   `json:"centerX"`
	CenterY   float64   `json:"centerY"`
	Hub       float64   `json:"hub"`
	Core      float64   `json:"core"`
	Middle    float64   `json:"middle"`
	Outer     float64   `json:"outer"`
	Direction Direction `json:"direction"`
}

// Ring radius proportions, as fractions of the outer radius. The core band
// is widest since it carries the longest-lived labels.
const (
	hubShare    = 0.14
	coreShare   = 0.48
	middleShare = 0.76
)

// NewLayout builds a centered layout for a wheel of the given pixel
// diameter.
func NewLayout(diameterPx float64, dir Direction) Layout {
	r := diameterPx / 2
	return Layout{
		CenterX:   r,
		CenterY:   r,
		Hub:       r * hubShare,
		Core:      r * coreShare,
		Middle:    r * middleShare,
		Outer:     r,
		Direction: dir,
	}
}

// band returns the radius band for a ring.
func (l Layout) band(ring int) (inner, outer float64) {
	switch ring {
	case 0:
		return l.Hub, l.Core
	case 1:
		return l.Core, l.Middle
	default:
		return l.Middle, l.Outer
	}
}
