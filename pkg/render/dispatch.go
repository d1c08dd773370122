package render

// Mode identifies which renderer the dispatcher has mounted.
type Mode int

const (
	// ModeNone means no measurement has arrived yet; the scene is a
	// neutral placeholder and no taxonomy logic runs.
	ModeNone Mode = iota
	ModePointer
	ModeTouch
)

func (m Mode) String() string {
	switch m {
	case ModePointer:
		return "pointer"
	case ModeTouch:
		return "touch"
	default:
		return "none"
	}
}

// DefaultWidthThreshold is the viewport width, in pixels, at or above
// which the pointer renderer is mounted.
const DefaultWidthThreshold = 768.0

// Factory constructs the two renderers. The concrete implementations live
// in subpackages, so the dispatcher takes constructors rather than
// importing them.
type Factory struct {
	Pointer func(Options) Renderer
	Touch   func(Options) Renderer
}

// Placeholder is the scene emitted before the first measurement.
type Placeholder struct {
	Mode string `json:"mode"`
}

// Dispatcher mounts the pointer renderer at or above the width threshold
// and the touch renderer below it. Mounting is driven entirely by Measure
// calls; a swap discards the previous renderer and any in-progress path.
type Dispatcher struct {
	opts      Options
	factory   Factory
	threshold float64

	mode     Mode
	renderer Renderer
}

// NewDispatcher builds an unmounted dispatcher. A threshold <= 0 uses
// DefaultWidthThreshold.
func NewDispatcher(opts Options, factory Factory, threshold float64) *Dispatcher {
	if threshold <= 0 {
		threshold = DefaultWidthThreshold
	}
	return &Dispatcher{opts: opts, factory: factory, threshold: threshold}
}

// Mode reports which renderer is mounted.
func (d *Dispatcher) Mode() Mode { return d.mode }

// Renderer returns the mounted renderer, nil before the first Measure.
func (d *Dispatcher) Renderer() Renderer { return d.renderer }

// Measure records a viewport measurement. The first call mounts a
// renderer; later calls either resize the mounted one in place or, when
// the width crosses the threshold, swap to the other renderer with a fresh
// empty path.
func (d *Dispatcher) Measure(width, height float64) Renderer {
	mode := ModeTouch
	if width >= d.threshold {
		mode = ModePointer
	}

	if mode == d.mode {
		d.renderer.Resize(width, height)
		return d.renderer
	}

	switch mode {
	case ModePointer:
		d.renderer = d.factory.Pointer(d.opts)
	case ModeTouch:
		d.renderer = d.factory.Touch(d.opts)
	}
	d.mode = mode
	d.renderer.Resize(width, height)
	return d.renderer
}

// Scene returns the mounted renderer's scene, or a placeholder before the
// first measurement.
func (d *Dispatcher) Scene() any {
	if d.renderer == nil {
		return Placeholder{Mode: ModeNone.String()}
	}
	return d.renderer.Scene()
}
