package wheel

import (
	"math"
	"strings"
	"testing"
)

func TestAnnularSectorShape(t *testing.T) {
	o := AnnularSector(200, 200, 50, 100, -math.Pi/2, 0)
	if len(o) != 5 {
		t.Fatalf("command count = %d, want 5", len(o))
	}
	if o[0].Op != OpMove || o[1].Op != OpArc || o[2].Op != OpLine || o[3].Op != OpArc || o[4].Op != OpClose {
		t.Fatalf("unexpected command sequence %+v", o)
	}

	// Quarter turn: both arcs use the small-arc flag, outer sweeps
	// forward, inner back.
	if o[1].LargeArc || o[3].LargeArc {
		t.Error("quarter-turn sector used the large-arc flag")
	}
	if !o[1].Sweep || o[3].Sweep {
		t.Error("rim sweep directions are wrong")
	}

	// Starts at the top of the outer rim.
	if math.Abs(o[0].X-200) > 1e-9 || math.Abs(o[0].Y-100) > 1e-9 {
		t.Errorf("start point = (%v, %v), want (200, 100)", o[0].X, o[0].Y)
	}
}

func TestAnnularSectorLargeArc(t *testing.T) {
	o := AnnularSector(200, 200, 50, 100, 0, 3*math.Pi/2)
	if !o[1].LargeArc {
		t.Error("three-quarter-turn sector missing the large-arc flag")
	}
}

func TestAnnularSectorFullCircle(t *testing.T) {
	o := AnnularSector(200, 200, 50, 100, angleBias, angleBias+fullCircle)

	// Two closed subpaths, two half arcs each: no coincident arc
	// endpoints, which SVG renders as nothing.
	var closes, arcs int
	for _, c := range o {
		switch c.Op {
		case OpClose:
			closes++
		case OpArc:
			arcs++
			if c.LargeArc {
				t.Error("half arc carries the large-arc flag")
			}
		}
	}
	if closes != 2 {
		t.Errorf("subpath count = %d, want 2", closes)
	}
	if arcs != 4 {
		t.Errorf("arc count = %d, want 4", arcs)
	}
}

func TestAnnularSectorZeroInnerRadius(t *testing.T) {
	o := AnnularSector(200, 200, 0, 100, 0, math.Pi/2)
	for _, c := range o {
		if c.Op == OpArc && c.Radius == 0 {
			t.Error("emitted a zero-radius arc")
		}
	}
	// The inner rim degenerates to a line through the center.
	if o[3].Op != OpLine {
		t.Errorf("inner rim command = %v, want OpLine", o[3].Op)
	}
}

func TestCircle(t *testing.T) {
	o := Circle(200, 200, 30)
	var arcs int
	for _, c := range o {
		if c.Op == OpArc {
			arcs++
			if c.Radius != 30 {
				t.Errorf("arc radius = %v, want 30", c.Radius)
			}
		}
	}
	if arcs != 2 {
		t.Errorf("arc count = %d, want 2", arcs)
	}
}

func TestSVGPath(t *testing.T) {
	o := AnnularSector(200, 200, 50, 100, -math.Pi/2, 0)
	d := o.SVGPath()

	if !strings.HasPrefix(d, "M 200.00 100.00") {
		t.Errorf("path = %q, want M 200.00 100.00 prefix", d)
	}
	if !strings.HasSuffix(d, "Z") {
		t.Errorf("path %q does not close", d)
	}
	if !strings.Contains(d, "A 100.00 100.00 0 0 1 300.00 200.00") {
		t.Errorf("path %q missing the outer rim arc", d)
	}
	if strings.Contains(d, "NaN") {
		t.Errorf("path %q contains NaN", d)
	}
}
