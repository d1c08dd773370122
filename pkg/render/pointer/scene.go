package pointer

import (
	"github.com/chazu/whorl/pkg/selection"
	"github.com/chazu/whorl/pkg/taxonomy"
	"github.com/chazu/whorl/pkg/wheel"
)

// SceneSegment is one drawable wedge plus its display state.
type SceneSegment struct {
	wheel.Segment
	Label   string `json:"label"` // translated display name
	Hovered bool   `json:"hovered"`
}

// Crumb is one entry of the breadcrumb trail. Clearing it maps to
// ClearCrumb with the same level.
type Crumb struct {
	Level string `json:"level"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Scene is the pointer renderer's full view model, flat and
// JSON-serializable for direct frontend consumption.
type Scene struct {
	Layout      wheel.Layout   `json:"layout"`
	Segments    []SceneSegment `json:"segments"`
	Breadcrumb  []Crumb        `json:"breadcrumb"`
	CenterLabel string         `json:"centerLabel,omitempty"`
	State       string         `json:"state"`
	Intro       bool           `json:"intro"`
}

// Scene computes the current view model. Pure with respect to renderer
// state; safe to call any number of times per frame.
func (r *Renderer) Scene() any {
	segs := r.segments()
	out := Scene{
		Layout:   r.layout,
		Segments: make([]SceneSegment, len(segs)),
		State:    r.machine.State().String(),
		Intro:    r.opts.ShowIntro && r.machine.State() == selection.Empty,
	}

	for i, s := range segs {
		ss := SceneSegment{
			Segment: s,
			Label:   r.opts.Locale.Name(s.Name),
		}
		if r.hovering && s.Ring == r.hoverRing && s.Name == r.hoverName {
			ss.Hovered = true
			out.CenterLabel = ss.Label
		}
		out.Segments[i] = ss
	}

	path := r.machine.Path()
	if path.Core != "" {
		out.Breadcrumb = append(out.Breadcrumb, r.crumb(taxonomy.LevelCore, path.Core))
	}
	if path.Primary != "" {
		out.Breadcrumb = append(out.Breadcrumb, r.crumb(taxonomy.LevelPrimary, path.Primary))
	}
	if path.Tertiary != "" {
		out.Breadcrumb = append(out.Breadcrumb, r.crumb(taxonomy.LevelTertiary, path.Tertiary))
	}
	return out
}

func (r *Renderer) crumb(level taxonomy.Level, name string) Crumb {
	return Crumb{
		Level: level.String(),
		Name:  name,
		Label: r.opts.Locale.Name(name),
	}
}
