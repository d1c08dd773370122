package main

import (
	"context"
	"errors"
	"log"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/chazu/whorl/pkg/dsl"
	"github.com/chazu/whorl/pkg/render"
	"github.com/chazu/whorl/pkg/render/pointer"
	"github.com/chazu/whorl/pkg/render/svg"
	"github.com/chazu/whorl/pkg/render/touch"
	"github.com/chazu/whorl/pkg/selection"
	"github.com/chazu/whorl/pkg/taxonomy"
)

// completeEvent is emitted to the frontend when a drill-down finishes.
const completeEvent = "wheel:complete"

// hapticEvent asks the frontend to pulse the vibration motor, where the
// platform has one.
const hapticEvent = "wheel:haptic"

// App is the Wails backend. It holds the loaded taxonomy and the mounted
// renderer; the frontend drives it entirely through bindings.
type App struct {
	ctx    context.Context
	engine *dsl.Engine

	tree       *taxonomy.Tree
	dispatcher *render.Dispatcher

	// Last reported viewport, replayed after a taxonomy reload so the
	// same renderer comes back up.
	width, height float64
}

// ErrorData is a JSON-serializable problem report for the frontend.
type ErrorData struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// LoadResult is returned by the taxonomy loading bindings.
type LoadResult struct {
	OK     bool        `json:"ok"`
	Cores  int         `json:"cores"`
	Errors []ErrorData `json:"errors"`
}

// SceneData wraps a renderer scene with the mounted mode so the frontend
// knows which view model shape it received.
type SceneData struct {
	Mode  string `json:"mode"`
	Scene any    `json:"scene"`
}

// NewApp creates the backend with no taxonomy loaded.
func NewApp() *App {
	return &App{engine: dsl.NewEngine()}
}

// startup is called by Wails on app startup. The context is saved for
// runtime event emission.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// LoadTaxonomy parses a YAML taxonomy document and mounts the wheel over
// it. Any in-progress selection is discarded.
func (a *App) LoadTaxonomy(source string) LoadResult {
	tree, err := taxonomy.Parse([]byte(source))
	if err != nil {
		log.Printf("LoadTaxonomy: %v", err)
		return LoadResult{Errors: flattenError(err)}
	}
	return a.install(tree)
}

// EvalTaxonomy evaluates Lisp taxonomy source and mounts the wheel over
// the result. This is the binding behind the in-app taxonomy editor.
func (a *App) EvalTaxonomy(source string) LoadResult {
	tree, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal: timeout or panic inside the interpreter.
		log.Printf("EvalTaxonomy fatal error: %v", err)
		return LoadResult{Errors: []ErrorData{{Message: err.Error()}}}
	}
	if len(evalErrs) > 0 {
		out := make([]ErrorData, len(evalErrs))
		for i, e := range evalErrs {
			out[i] = ErrorData{Line: e.Line, Message: e.Message}
		}
		return LoadResult{Errors: out}
	}
	return a.install(tree)
}

// install swaps in a freshly loaded taxonomy and remounts the renderer at
// the last known viewport.
func (a *App) install(tree *taxonomy.Tree) LoadResult {
	a.tree = tree
	opts := render.Options{
		Taxonomy: tree,
		OnComplete: func(p selection.Path) {
			if a.ctx != nil {
				runtime.EventsEmit(a.ctx, completeEvent, p)
			}
		},
	}
	a.dispatcher = render.NewDispatcher(opts, render.Factory{
		Pointer: func(o render.Options) render.Renderer { return pointer.New(o) },
		Touch: func(o render.Options) render.Renderer {
			r := touch.New(o)
			r.UseHaptics(appHaptics{a})
			return r
		},
	}, 0)
	if a.width > 0 {
		a.dispatcher.Measure(a.width, a.height)
	}
	return LoadResult{OK: true, Cores: tree.CoreCount()}
}

// Measure reports the frontend viewport. The dispatcher mounts or swaps
// the renderer accordingly; a swap discards any in-progress path.
func (a *App) Measure(width, height float64) SceneData {
	a.width, a.height = width, height
	if a.dispatcher != nil {
		a.dispatcher.Measure(width, height)
	}
	return a.sceneData()
}

// Hover forwards cursor movement to the pointer renderer. Ignored while
// the touch renderer is mounted.
func (a *App) Hover(x, y float64) SceneData {
	if p, ok := a.pointer(); ok {
		p.Hover(x, y)
	}
	return a.sceneData()
}

// Click forwards a press to the pointer renderer.
func (a *App) Click(x, y float64) SceneData {
	if p, ok := a.pointer(); ok {
		p.Click(x, y)
	}
	return a.sceneData()
}

// Tap forwards a tile tap to the touch renderer.
func (a *App) Tap(name string) SceneData {
	if t, ok := a.touch(); ok {
		t.Tap(name)
	}
	return a.sceneData()
}

// Pinch forwards a pinch scale to the touch renderer.
func (a *App) Pinch(scale float64) SceneData {
	if t, ok := a.touch(); ok {
		t.Pinch(scale)
	}
	return a.sceneData()
}

// Back steps the touch renderer one ring out, or clears the deepest level
// of the pointer path.
func (a *App) Back() SceneData {
	switch r := a.renderer().(type) {
	case *touch.Renderer:
		r.Back()
	case *pointer.Renderer:
		r.ClearCrumb(deepestLevel(r.Path()))
	}
	return a.sceneData()
}

// Confirm commits a pending tertiary pick on the touch renderer.
func (a *App) Confirm() SceneData {
	if t, ok := a.touch(); ok {
		t.Confirm()
	}
	return a.sceneData()
}

// ResetWheel clears the selection on whichever renderer is mounted.
func (a *App) ResetWheel() SceneData {
	if r := a.renderer(); r != nil {
		r.Reset()
	}
	return a.sceneData()
}

// Scene returns the current view model without mutating anything.
func (a *App) Scene() SceneData {
	return a.sceneData()
}

// SceneSVG renders the wheel as an SVG document string. While the pointer
// renderer is mounted its live scene is used; otherwise a detached
// full-wheel view with an empty path.
func (a *App) SceneSVG() string {
	if a.tree == nil {
		return ""
	}
	var scene pointer.Scene
	if p, ok := a.pointer(); ok {
		scene = p.Scene().(pointer.Scene)
	} else {
		detached := pointer.New(render.Options{Taxonomy: a.tree})
		scene = detached.Scene().(pointer.Scene)
	}
	return string(svg.Bytes(scene))
}

func (a *App) renderer() render.Renderer {
	if a.dispatcher == nil {
		return nil
	}
	return a.dispatcher.Renderer()
}

func (a *App) pointer() (*pointer.Renderer, bool) {
	p, ok := a.renderer().(*pointer.Renderer)
	return p, ok
}

func (a *App) touch() (*touch.Renderer, bool) {
	t, ok := a.renderer().(*touch.Renderer)
	return t, ok
}

func (a *App) sceneData() SceneData {
	if a.dispatcher == nil {
		return SceneData{Mode: render.ModeNone.String(), Scene: render.Placeholder{Mode: render.ModeNone.String()}}
	}
	return SceneData{Mode: a.dispatcher.Mode().String(), Scene: a.dispatcher.Scene()}
}

// deepestLevel returns the most specific level set in a path; core when
// the path is empty, so Back on an empty pointer path is a harmless reset.
func deepestLevel(p selection.Path) taxonomy.Level {
	switch {
	case p.Tertiary != "":
		return taxonomy.LevelTertiary
	case p.Primary != "":
		return taxonomy.LevelPrimary
	default:
		return taxonomy.LevelCore
	}
}

// flattenError converts taxonomy validation findings to frontend errors.
func flattenError(err error) []ErrorData {
	var verrs taxonomy.Errors
	if errors.As(err, &verrs) {
		out := make([]ErrorData, len(verrs))
		for i, v := range verrs {
			out[i] = ErrorData{Message: v.Error()}
		}
		return out
	}
	return []ErrorData{{Message: err.Error()}}
}

// appHaptics forwards touch-tap feedback to the frontend as an event.
type appHaptics struct{ app *App }

func (h appHaptics) Pulse() {
	if h.app.ctx != nil {
		runtime.EventsEmit(h.app.ctx, hapticEvent)
	}
}
