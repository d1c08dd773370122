package wheel

import (
	"math"

	"github.com/chazu/whorl/pkg/taxonomy"
)

// Segment is one angular wedge of one ring, as computed for a single
// render pass. The struct is flat and JSON-serializable so frontends can
// consume it directly.
type Segment struct {
	Ring    taxonomy.Level `json:"ring"` // 0 core, 1 primary, 2 tertiary
	Core    string         `json:"core"`
	Primary string         `json:"primary,omitempty"` // set on tertiary segments
	Name    string         `json:"name"`              // the node this wedge selects

	StartAngle  float64 `json:"startAngle"` // radians, screen coords
	EndAngle    float64 `json:"endAngle"`
	InnerRadius float64 `json:"innerRadius"`
	OuterRadius float64 `json:"outerRadius"`

	Path          string  `json:"path"` // SVG path data for the outline
	LabelX        float64 `json:"labelX"`
	LabelY        float64 `json:"labelY"`
	LabelRotation float64 `json:"labelRotation"` // degrees

	FillStart string `json:"fillStart"` // hex; equal to FillEnd for flat fills
	FillEnd   string `json:"fillEnd"`
	Dimmed    bool   `json:"dimmed"`
}

// Span returns the segment's angular width in radians.
func (s *Segment) Span() float64 {
	return s.EndAngle - s.StartAngle
}

// MidAngle returns the segment's angular midpoint.
func (s *Segment) MidAngle() float64 {
	return (s.StartAngle + s.EndAngle) / 2
}

// labelFor computes the label anchor and rotation for the band between
// inner and outer at the given midpoint angle. The anchor sits at the
// mid-radius of the band; rotation is the midpoint angle in degrees,
// flipped 180 when the midpoint falls in the lower semicircle so text never
// renders upside down.
func labelFor(l Layout, inner, outer, mid float64) (x, y, rotation float64) {
	r := (inner + outer) / 2
	x, y = polar(l.CenterX, l.CenterY, r, mid)

	rotation = normalizeDeg(mid * 180 / math.Pi)
	if rotation > 90 && rotation <= 270 {
		rotation -= 180
	}
	return x, y, rotation
}

// normalizeDeg maps an angle in degrees into [0, 360).
func normalizeDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
