// Package pointer renders the wheel for mouse-driven viewports: all three
// rings at once, hover feedback, and a breadcrumb trail.
package pointer

import (
	"github.com/chazu/whorl/pkg/render"
	"github.com/chazu/whorl/pkg/selection"
	"github.com/chazu/whorl/pkg/taxonomy"
	"github.com/chazu/whorl/pkg/wheel"
)

// Renderer is the pointer front end. All mutation happens synchronously in
// the input handlers; Scene is a pure read.
type Renderer struct {
	opts    render.Options
	machine *selection.Machine
	layout  wheel.Layout

	hoverRing taxonomy.Level
	hoverName string
	hovering  bool
}

// New mounts a pointer renderer with an empty selection.
func New(opts render.Options) *Renderer {
	return &Renderer{
		opts:    opts,
		machine: selection.NewMachine(opts.Taxonomy, opts.OnComplete),
		layout:  wheel.NewLayout(defaultDiameter, opts.Locale.Direction),
	}
}

const defaultDiameter = 480.0

// Resize fits the wheel to the viewport's shorter side. The path is
// untouched.
func (r *Renderer) Resize(width, height float64) {
	d := width
	if height < d {
		d = height
	}
	if d <= 0 {
		d = defaultDiameter
	}
	r.layout = wheel.NewLayout(d, r.opts.Locale.Direction)
}

// Reset clears the path and any hover state.
func (r *Renderer) Reset() {
	r.machine.Reset()
	r.hovering = false
}

// Path returns the current selection.
func (r *Renderer) Path() selection.Path {
	return r.machine.Path()
}

// Hover records the segment under the cursor. It never mutates the
// selection; the scene reflects it as a highlight and a center label.
func (r *Renderer) Hover(x, y float64) {
	segs := r.segments()
	hit := r.layout.HitTest(segs, x, y)
	if hit.Segment == nil {
		r.hovering = false
		return
	}
	r.hovering = true
	r.hoverRing = hit.Segment.Ring
	r.hoverName = hit.Segment.Name
}

// Click resolves a press against the wheel. The hub resets; a segment at
// any ring attempts the matching transition, which the machine rejects as
// a no-op when the segment is not a valid next step. Returns whether the
// selection changed.
func (r *Renderer) Click(x, y float64) bool {
	hit := r.layout.HitTest(r.segments(), x, y)
	if hit.Hub {
		r.machine.Reset()
		return true
	}
	if hit.Segment == nil {
		return false
	}
	s := hit.Segment
	switch s.Ring {
	case taxonomy.LevelCore:
		return r.machine.SelectCore(s.Name)
	case taxonomy.LevelPrimary:
		return r.machine.SelectPrimary(s.Name)
	case taxonomy.LevelTertiary:
		return r.machine.SelectTertiary(s.Name)
	}
	return false
}

// ClearCrumb handles the breadcrumb's per-level clear affordance: clearing
// the core wipes the whole path, clearing the primary steps back to
// CoreChosen, clearing the tertiary steps back to PrimaryChosen.
func (r *Renderer) ClearCrumb(level taxonomy.Level) {
	switch level {
	case taxonomy.LevelCore:
		r.machine.Reset()
	case taxonomy.LevelPrimary:
		if r.machine.State() == selection.TertiaryChosen {
			r.machine.Back()
		}
		r.machine.Back()
	case taxonomy.LevelTertiary:
		if r.machine.State() == selection.TertiaryChosen {
			r.machine.Back()
		}
	}
}

func (r *Renderer) segments() []wheel.Segment {
	return wheel.Compute(r.opts.Taxonomy, r.machine.Path(), r.layout, wheel.PolicyAlwaysVisible)
}
