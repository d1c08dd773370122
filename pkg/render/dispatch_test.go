package render

import (
	"testing"

	"github.com/chazu/whorl/pkg/wheel"
)

// fakeRenderer records lifecycle calls for dispatcher tests.
type fakeRenderer struct {
	mode    Mode
	resizes int
	resets  int
	width   float64
}

func (f *fakeRenderer) Scene() any { return f.mode.String() }
func (f *fakeRenderer) Resize(w, _ float64) {
	f.resizes++
	f.width = w
}
func (f *fakeRenderer) Reset() { f.resets++ }

func newTestDispatcher(threshold float64) (*Dispatcher, *[]*fakeRenderer) {
	var made []*fakeRenderer
	factory := Factory{
		Pointer: func(Options) Renderer {
			r := &fakeRenderer{mode: ModePointer}
			made = append(made, r)
			return r
		},
		Touch: func(Options) Renderer {
			r := &fakeRenderer{mode: ModeTouch}
			made = append(made, r)
			return r
		},
	}
	return NewDispatcher(Options{}, factory, threshold), &made
}

func TestDispatcherPlaceholderBeforeMeasure(t *testing.T) {
	d, made := newTestDispatcher(0)
	if d.Mode() != ModeNone {
		t.Errorf("initial mode = %v, want none", d.Mode())
	}
	if d.Renderer() != nil {
		t.Error("renderer mounted before first measure")
	}
	scene, ok := d.Scene().(Placeholder)
	if !ok {
		t.Fatalf("pre-measure scene = %T, want Placeholder", d.Scene())
	}
	if scene.Mode != "none" {
		t.Errorf("placeholder mode = %q, want none", scene.Mode)
	}
	if len(*made) != 0 {
		t.Errorf("%d renderers constructed before first measure", len(*made))
	}
}

func TestDispatcherMountsByWidth(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  Mode
	}{
		{"wide viewport", 1024, ModePointer},
		{"exactly at threshold", DefaultWidthThreshold, ModePointer},
		{"narrow viewport", 390, ModeTouch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDispatcher(0)
			d.Measure(tt.width, 800)
			if d.Mode() != tt.want {
				t.Errorf("mode = %v, want %v", d.Mode(), tt.want)
			}
		})
	}
}

func TestDispatcherResizeWithinModeKeepsRenderer(t *testing.T) {
	d, made := newTestDispatcher(0)
	d.Measure(1024, 800)
	d.Measure(900, 700)

	if len(*made) != 1 {
		t.Fatalf("%d renderers constructed, want 1", len(*made))
	}
	r := (*made)[0]
	if r.resizes != 2 {
		t.Errorf("resizes = %d, want 2", r.resizes)
	}
	if r.width != 900 {
		t.Errorf("last width = %v, want 900", r.width)
	}
	if r.resets != 0 {
		t.Errorf("resize reset the path %d times", r.resets)
	}
}

func TestDispatcherSwapDiscardsRenderer(t *testing.T) {
	d, made := newTestDispatcher(0)
	first := d.Measure(1024, 800)
	second := d.Measure(390, 800)

	if first == second {
		t.Fatal("crossing the threshold did not swap renderers")
	}
	if d.Mode() != ModeTouch {
		t.Errorf("mode after swap = %v, want touch", d.Mode())
	}
	if len(*made) != 2 {
		t.Errorf("%d renderers constructed, want 2", len(*made))
	}
	// The new renderer starts fresh; the old one is simply dropped, so
	// no Reset call is needed to discard the path.
	if (*made)[1].resets != 0 {
		t.Error("fresh renderer was reset on mount")
	}
}

func TestLocaleNameNilSafe(t *testing.T) {
	var l Locale
	if got := l.Name("Joy"); got != "Joy" {
		t.Errorf("zero Locale translated %q", got)
	}

	l = Locale{Translate: func(s string) string { return "tr:" + s }, Direction: wheel.DirectionRTL}
	if got := l.Name("Joy"); got != "tr:Joy" {
		t.Errorf("Name = %q, want tr:Joy", got)
	}
}
