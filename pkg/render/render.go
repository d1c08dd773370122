// Package render defines the contract shared by the wheel's front ends and
// the dispatcher that picks between them by viewport width.
package render

import (
	"github.com/chazu/whorl/pkg/selection"
	"github.com/chazu/whorl/pkg/taxonomy"
	"github.com/chazu/whorl/pkg/wheel"
)

// Locale supplies display names and text direction. Translation tables are
// the caller's concern; the wheel only ever calls Translate with taxonomy
// node names.
type Locale struct {
	Translate func(name string) string
	Direction wheel.Direction
}

// Name translates a node name for display. A nil Translate is the identity,
// so a zero Locale is usable as-is.
func (l Locale) Name(name string) string {
	if l.Translate == nil {
		return name
	}
	return l.Translate(name)
}

// Options configures a renderer for one mount.
type Options struct {
	Taxonomy   *taxonomy.Tree
	Locale     Locale
	OnComplete selection.CompleteFunc

	// ShowIntro asks the renderer to include first-run guidance in its
	// scene. Whether the user has seen the tour is tracked by the
	// caller and injected here, not read from ambient storage.
	ShowIntro bool
}

// Renderer is one front end of the wheel. Both views hold their own
// selection machine; swapping renderers abandons the old machine and with
// it any in-progress path.
type Renderer interface {
	// Scene returns the JSON-serializable view model for the current
	// state. Recomputed on every call; never cached.
	Scene() any
	// Resize informs the renderer of a new viewport without changing
	// which renderer is mounted. The selection path survives.
	Resize(width, height float64)
	// Reset clears the selection path back to empty.
	Reset()
}
