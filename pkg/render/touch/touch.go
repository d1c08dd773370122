// Package touch renders the wheel for narrow viewports: one ring at a
// time as a grid of flat tiles, with an explicit confirm step before the
// completion callback fires.
package touch

import (
	"github.com/chazu/whorl/pkg/render"
	"github.com/chazu/whorl/pkg/selection"
	"github.com/chazu/whorl/pkg/taxonomy"
)

// Haptics receives a pulse on every successful tile tap. Platforms without
// a vibration motor use the no-op default.
type Haptics interface {
	Pulse()
}

type noopHaptics struct{}

func (noopHaptics) Pulse() {}

// Wheel diameter clamp for pinch and resize.
const (
	MinDiameter     = 240.0
	MaxDiameter     = 720.0
	defaultDiameter = 360.0
)

// ViewportState is the touch renderer's mutable display state. It lives
// from mount to unmount, changed only by resize and pinch.
type ViewportState struct {
	DiameterPx float64        `json:"diameterPx"`
	ActiveRing taxonomy.Level `json:"activeRing"`
}

// Renderer is the touch front end. A tertiary tap parks the pick as
// pending; only Confirm moves the machine to TertiaryChosen and fires the
// callback. Commit-on-tap is too easy to trigger by accident on small
// targets.
type Renderer struct {
	opts     render.Options
	machine  *selection.Machine
	haptics  Haptics
	viewport ViewportState
	pending  string
}

// New mounts a touch renderer with an empty selection and no-op haptics.
func New(opts render.Options) *Renderer {
	return &Renderer{
		opts:     opts,
		machine:  selection.NewMachine(opts.Taxonomy, opts.OnComplete),
		haptics:  noopHaptics{},
		viewport: ViewportState{DiameterPx: defaultDiameter},
	}
}

// UseHaptics installs a platform haptics hook. Nil restores the no-op.
func (r *Renderer) UseHaptics(h Haptics) {
	if h == nil {
		h = noopHaptics{}
	}
	r.haptics = h
}

// Viewport returns the current display state.
func (r *Renderer) Viewport() ViewportState {
	return r.viewport
}

// Path returns the current selection. A pending tertiary is not part of
// the path until Confirm.
func (r *Renderer) Path() selection.Path {
	return r.machine.Path()
}

// Pending returns the tertiary pick awaiting confirmation, if any.
func (r *Renderer) Pending() string {
	return r.pending
}

// Tap selects the named tile on the active ring. Core and primary taps
// advance to the next ring; a tertiary tap parks the name as pending.
// Unknown names are no-ops. Haptics pulse on every applied tap.
func (r *Renderer) Tap(name string) bool {
	var ok bool
	switch r.viewport.ActiveRing {
	case taxonomy.LevelCore:
		ok = r.machine.SelectCore(name)
	case taxonomy.LevelPrimary:
		ok = r.machine.SelectPrimary(name)
	case taxonomy.LevelTertiary:
		p := r.machine.Path()
		ok = r.opts.Taxonomy.FindTertiary(p.Core, p.Primary, name) != nil
		if ok {
			r.pending = name
		}
	}
	if ok {
		r.syncRing()
		r.haptics.Pulse()
	}
	return ok
}

// Confirm commits a pending tertiary pick. This is the only touch action
// that completes a drill-down and fires the callback.
func (r *Renderer) Confirm() bool {
	if r.pending == "" {
		return false
	}
	if !r.machine.SelectTertiary(r.pending) {
		r.pending = ""
		return false
	}
	r.pending = ""
	return true
}

// Back steps one ring out, dropping the most specific choice. A pending
// tertiary pick is discarded along the way; backing out of the primary
// ring clears the path entirely.
func (r *Renderer) Back() {
	r.pending = ""
	switch r.machine.State() {
	case selection.TertiaryChosen, selection.PrimaryChosen:
		r.machine.Back()
	case selection.CoreChosen:
		r.machine.Reset()
	}
	r.syncRing()
}

// Reset clears the path, the pending pick, and returns to the core ring.
// The wheel diameter is display state and survives.
func (r *Renderer) Reset() {
	r.machine.Reset()
	r.pending = ""
	r.syncRing()
}

// Pinch scales the wheel diameter, clamped to [MinDiameter, MaxDiameter].
// The selection path is never affected.
func (r *Renderer) Pinch(scale float64) {
	if scale <= 0 {
		return
	}
	r.viewport.DiameterPx = clamp(r.viewport.DiameterPx * scale)
}

// Resize fits the wheel to the viewport's shorter side, clamped like a
// pinch.
func (r *Renderer) Resize(width, height float64) {
	d := width
	if height < d {
		d = height
	}
	if d <= 0 {
		d = defaultDiameter
	}
	r.viewport.DiameterPx = clamp(d)
}

// syncRing derives the active ring from the machine state. The tertiary
// ring stays active while a pick is pending or chosen.
func (r *Renderer) syncRing() {
	switch r.machine.State() {
	case selection.Empty:
		r.viewport.ActiveRing = taxonomy.LevelCore
	case selection.CoreChosen:
		r.viewport.ActiveRing = taxonomy.LevelPrimary
	default:
		r.viewport.ActiveRing = taxonomy.LevelTertiary
	}
}

func clamp(d float64) float64 {
	if d < MinDiameter {
		return MinDiameter
	}
	if d > MaxDiameter {
		return MaxDiameter
	}
	return d
}
