// Package svg serializes a pointer scene as a standalone SVG document,
// for inline embedding in the desktop frontend and for file export from
// the CLI.
package svg

import (
	"bytes"
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo"

	"github.com/chazu/whorl/pkg/render/pointer"
)

const (
	segmentStroke = "#ffffff"
	hubFill       = "#ffffff"
	hubStroke     = "#d0d0d0"
	labelStyle    = "text-anchor:middle;dominant-baseline:middle;font-family:sans-serif;font-size:12px;fill:#222222"
	centerStyle   = "text-anchor:middle;dominant-baseline:middle;font-family:sans-serif;font-size:16px;fill:#222222"
)

// Render writes the scene as a complete SVG document.
func Render(w io.Writer, scene pointer.Scene) {
	size := int(scene.Layout.Outer * 2)
	canvas := svgo.New(w)
	canvas.Start(size, size)

	// Gradient definitions for two-color fills; flat fills reference
	// their color directly.
	canvas.Def()
	for i, s := range scene.Segments {
		if s.FillStart == s.FillEnd {
			continue
		}
		canvas.LinearGradient(gradientID(i), 0, 0, 100, 100, []svgo.Offcolor{
			{Offset: 0, Color: s.FillStart, Opacity: 1},
			{Offset: 100, Color: s.FillEnd, Opacity: 1},
		})
	}
	canvas.DefEnd()

	for i, s := range scene.Segments {
		style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", fillRef(i, s), segmentStroke)
		canvas.Path(s.Path, style)
	}

	for _, s := range scene.Segments {
		canvas.TranslateRotate(round(s.LabelX), round(s.LabelY), s.LabelRotation)
		canvas.Text(0, 0, s.Label, labelStyle)
		canvas.Gend()
	}

	cx, cy := round(scene.Layout.CenterX), round(scene.Layout.CenterY)
	canvas.Circle(cx, cy, round(scene.Layout.Hub), fmt.Sprintf("fill:%s;stroke:%s", hubFill, hubStroke))
	if scene.CenterLabel != "" {
		canvas.Text(cx, cy, scene.CenterLabel, centerStyle)
	}

	canvas.End()
}

// Bytes renders the scene to an in-memory document.
func Bytes(scene pointer.Scene) []byte {
	var buf bytes.Buffer
	Render(&buf, scene)
	return buf.Bytes()
}

func gradientID(i int) string {
	return fmt.Sprintf("seg%d", i)
}

// fillRef returns the paint for a segment: a gradient reference when the
// fill has two stops, the flat color otherwise.
func fillRef(i int, s pointer.SceneSegment) string {
	if s.FillStart == s.FillEnd {
		return s.FillStart
	}
	return fmt.Sprintf("url(#%s)", gradientID(i))
}

func round(v float64) int {
	return int(v + 0.5)
}
