package wheel

import "math"

// Hit is the result of resolving a pointer position against a render pass.
type Hit struct {
	Segment *Segment // nil when nothing was hit
	Hub     bool     // true when the center hub was hit
}

// HitTest resolves the point (x, y) against the given segments. Points
// inside the hub disk report Hub; points on a segment's band and angular
// interval report that segment. Dimmed segments are still hittable:
// choosing a different core from any state is a valid transition.
func (l Layout) HitTest(segs []Segment, x, y float64) Hit {
	dx := x - l.CenterX
	dy := y - l.CenterY
	r := math.Hypot(dx, dy)

	if r < l.Hub {
		return Hit{Hub: true}
	}

	angle := math.Atan2(dy, dx)
	for i := range segs {
		s := &segs[i]
		if r < s.InnerRadius || r >= s.OuterRadius {
			continue
		}
		if angleWithin(angle, s.StartAngle, s.EndAngle) {
			return Hit{Segment: s}
		}
	}
	return Hit{}
}

// angleWithin reports whether angle falls in [start, end), treating the
// angle modulo a full turn. Atan2 returns (-pi, pi] while segment bounds
// start at -pi/2, so the comparison must wrap.
func angleWithin(angle, start, end float64) bool {
	delta := math.Mod(angle-start, fullCircle)
	if delta < 0 {
		delta += fullCircle
	}
	return delta < end-start
}
