package svg

import (
	"math"
	"strings"
	"testing"

	"github.com/chazu/whorl/pkg/render"
	"github.com/chazu/whorl/pkg/render/pointer"
	"github.com/chazu/whorl/pkg/taxonomy"
)

func testScene(t *testing.T) (*pointer.Renderer, pointer.Scene) {
	t.Helper()
	tree, err := taxonomy.New([]taxonomy.Node{
		{
			Name:     "Joy",
			Color:    taxonomy.MustColor("#FFD700"),
			Gradient: &taxonomy.Gradient{Start: taxonomy.MustColor("#FFD700"), End: taxonomy.MustColor("#FFA500")},
			Children: []taxonomy.Node{
				{Name: "Happiness", Color: taxonomy.MustColor("#FFE066"), Children: []taxonomy.Node{
					{Name: "Proud", Color: taxonomy.MustColor("#FFF0B0")},
				}},
			},
		},
		{Name: "Sadness", Color: taxonomy.MustColor("#4169E1"), Children: []taxonomy.Node{
			{Name: "Grief", Color: taxonomy.MustColor("#6A8BE8"), Children: []taxonomy.Node{
				{Name: "Mournful", Color: taxonomy.MustColor("#93ADEF")},
			}},
		}},
	})
	if err != nil {
		t.Fatalf("taxonomy.New: %v", err)
	}
	r := pointer.New(render.Options{Taxonomy: tree})
	return r, r.Scene().(pointer.Scene)
}

func TestRenderDocumentShape(t *testing.T) {
	_, scene := testScene(t)
	doc := string(Bytes(scene))

	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	if got := strings.Count(doc, "<path"); got != len(scene.Segments) {
		t.Errorf("path count = %d, want %d", got, len(scene.Segments))
	}
	// One hub circle.
	if got := strings.Count(doc, "<circle"); got != 1 {
		t.Errorf("circle count = %d, want 1", got)
	}
	// Every segment label appears.
	for _, s := range scene.Segments {
		if !strings.Contains(doc, ">"+s.Label+"<") {
			t.Errorf("label %q missing from document", s.Label)
		}
	}
}

func TestRenderGradients(t *testing.T) {
	_, scene := testScene(t)
	doc := string(Bytes(scene))

	// Joy carries a gradient; its wedge must reference a def.
	if !strings.Contains(doc, "<linearGradient") {
		t.Error("no gradient definitions emitted")
	}
	if !strings.Contains(doc, "url(#seg") {
		t.Error("no wedge references a gradient")
	}

	// Flat-colored segments reference their color directly. Colors pass
	// through lowercased hex.
	if !strings.Contains(doc, "fill:#4169e1") {
		t.Error("flat fill color missing")
	}
}

func TestRenderCenterLabel(t *testing.T) {
	r, scene := testScene(t)

	// Hover and re-render: the hovered name shows at the center too.
	mid := func() (float64, float64) {
		for _, s := range scene.Segments {
			if s.Name == "Sadness" && s.Ring == taxonomy.LevelCore {
				a := (s.StartAngle + s.EndAngle) / 2
				rad := (s.InnerRadius + s.OuterRadius) / 2
				return scene.Layout.CenterX + rad*math.Cos(a), scene.Layout.CenterY + rad*math.Sin(a)
			}
		}
		t.Fatal("Sadness segment not found")
		return 0, 0
	}
	r.Hover(mid())
	hovered := r.Scene().(pointer.Scene)
	if hovered.CenterLabel != "Sadness" {
		t.Fatalf("center label = %q", hovered.CenterLabel)
	}
	doc := string(Bytes(hovered))
	if got := strings.Count(doc, ">Sadness</text>"); got != 2 {
		t.Errorf("Sadness appears %d times, want wedge label plus center label", got)
	}
}
