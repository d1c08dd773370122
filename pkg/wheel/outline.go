package wheel

import (
	"fmt"
	"math"
	"strings"
)

// Op is one path outline command kind.
type Op int

const (
	OpMove Op = iota
	OpLine
	OpArc
	OpClose
)

// Cmd is one command of a segment outline. For OpArc, X/Y is the arc
// endpoint and Radius/LargeArc/Sweep follow the SVG elliptical-arc
// convention (both radii equal, zero axis rotation).
type Cmd struct {
	Op       Op      `json:"op"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	LargeArc bool    `json:"largeArc,omitempty"`
	Sweep    bool    `json:"sweep,omitempty"`
}

// Outline is the drawable boundary of one segment, backend-agnostic the way
// a triangle mesh is: any renderer (SVG, canvas, frontend) can replay it.
type Outline []Cmd

// fullCircle is the angular span treated as a complete ring.
const fullCircle = 2 * math.Pi

// epsilon tolerance for angular comparisons. Spans accumulate one division
// and a handful of additions, so a loose-ish bound is appropriate.
const epsilon = 1e-9

// polar converts a center, radius, and angle to a point.
func polar(cx, cy, r, angle float64) (x, y float64) {
	return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
}

// AnnularSector builds the outline of the ring wedge between angles a0 and
// a1 (a0 < a1) and radii rIn and rOut. A span of the full circle produces a
// closed annulus from two half arcs per rim, since an SVG arc whose start
// and end coincide draws nothing.
func AnnularSector(cx, cy, rIn, rOut, a0, a1 float64) Outline {
	span := a1 - a0
	if span >= fullCircle-epsilon {
		return annulus(cx, cy, rIn, rOut, a0)
	}

	large := span > math.Pi
	x0, y0 := polar(cx, cy, rOut, a0)
	x1, y1 := polar(cx, cy, rOut, a1)
	x2, y2 := polar(cx, cy, rIn, a1)
	x3, y3 := polar(cx, cy, rIn, a0)

	out := Outline{
		{Op: OpMove, X: x0, Y: y0},
		{Op: OpArc, X: x1, Y: y1, Radius: rOut, LargeArc: large, Sweep: true},
		{Op: OpLine, X: x2, Y: y2},
	}
	if rIn > 0 {
		out = append(out, Cmd{Op: OpArc, X: x3, Y: y3, Radius: rIn, LargeArc: large, Sweep: false})
	} else {
		out = append(out, Cmd{Op: OpLine, X: x3, Y: y3})
	}
	return append(out, Cmd{Op: OpClose})
}

// annulus emits a closed ring: outer rim swept forward in two half arcs,
// inner rim swept backward.
func annulus(cx, cy, rIn, rOut, a0 float64) Outline {
	mid := a0 + math.Pi
	ox0, oy0 := polar(cx, cy, rOut, a0)
	oxm, oym := polar(cx, cy, rOut, mid)
	out := Outline{
		{Op: OpMove, X: ox0, Y: oy0},
		{Op: OpArc, X: oxm, Y: oym, Radius: rOut, Sweep: true},
		{Op: OpArc, X: ox0, Y: oy0, Radius: rOut, Sweep: true},
		{Op: OpClose},
	}
	if rIn > 0 {
		ix0, iy0 := polar(cx, cy, rIn, a0)
		ixm, iym := polar(cx, cy, rIn, mid)
		out = append(out,
			Cmd{Op: OpMove, X: ix0, Y: iy0},
			Cmd{Op: OpArc, X: ixm, Y: iym, Radius: rIn, Sweep: false},
			Cmd{Op: OpArc, X: ix0, Y: iy0, Radius: rIn, Sweep: false},
			Cmd{Op: OpClose},
		)
	}
	return out
}

// Circle builds the outline of a full disk, used for the hub.
func Circle(cx, cy, r float64) Outline {
	return annulus(cx, cy, 0, r, angleBias)
}

// SVGPath serializes the outline as SVG path data, coordinates rounded
// to 0.01px.
func (o Outline) SVGPath() string {
	var b strings.Builder
	for i, c := range o {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case OpMove:
			fmt.Fprintf(&b, "M %.2f %.2f", c.X, c.Y)
		case OpLine:
			fmt.Fprintf(&b, "L %.2f %.2f", c.X, c.Y)
		case OpArc:
			fmt.Fprintf(&b, "A %.2f %.2f 0 %d %d %.2f %.2f",
				c.Radius, c.Radius, boolFlag(c.LargeArc), boolFlag(c.Sweep), c.X, c.Y)
		case OpClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func boolFlag(v bool) int {
	if v {
		return 1
	}
	return 0
}
