package main

import (
	"os"
	"strings"
	"testing"
)

// TestE2EYamlExample exercises the full pipeline: YAML source → taxonomy →
// dispatcher → pointer renderer → SVG. This is the same path the Wails
// bindings take, but without the Wails runtime.
func TestE2EYamlExample(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/feelings.yaml")
	if err != nil {
		t.Fatalf("failed to read feelings.yaml: %v", err)
	}

	result := app.LoadTaxonomy(string(source))
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("load error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}
	if !result.OK {
		t.Fatal("load did not report OK")
	}
	if result.Cores != 6 {
		t.Fatalf("expected 6 cores, got %d", result.Cores)
	}

	// Wide viewport mounts the pointer renderer.
	scene := app.Measure(1024, 768)
	if scene.Mode != "pointer" {
		t.Fatalf("mode = %q, want pointer", scene.Mode)
	}

	// Drill Joy → Happiness → Cheerful by clicking computed midpoints.
	doc := app.SceneSVG()
	if !strings.Contains(doc, "<svg") {
		t.Fatal("SceneSVG did not produce a document")
	}
	if !strings.Contains(doc, ">Joy</text>") {
		t.Error("Joy label missing from SVG")
	}
}

// TestE2ELispExample runs the DSL example through EvalTaxonomy.
func TestE2ELispExample(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/feelings.whorl")
	if err != nil {
		t.Fatalf("failed to read feelings.whorl: %v", err)
	}

	result := app.EvalTaxonomy(string(source))
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}
	if result.Cores != 6 {
		t.Fatalf("expected 6 cores, got %d", result.Cores)
	}
}

// TestE2ETouchFlow drives a full touch drill-down through the bindings.
func TestE2ETouchFlow(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/feelings.yaml")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if r := app.LoadTaxonomy(string(source)); !r.OK {
		t.Fatalf("load failed: %v", r.Errors)
	}

	// Narrow viewport mounts the touch renderer.
	scene := app.Measure(390, 844)
	if scene.Mode != "touch" {
		t.Fatalf("mode = %q, want touch", scene.Mode)
	}

	app.Tap("Sadness")
	app.Tap("Grief")
	app.Tap("Mournful")

	tr, ok := app.touch()
	if !ok {
		t.Fatal("touch renderer not mounted")
	}
	if tr.Pending() != "Mournful" {
		t.Fatalf("pending = %q, want Mournful", tr.Pending())
	}
	if p := tr.Path(); p.Tertiary != "" {
		t.Errorf("tertiary committed before confirm: %+v", p)
	}

	app.Confirm()
	if p := tr.Path(); p.Tertiary != "Mournful" {
		t.Errorf("path after confirm = %+v", p)
	}
}

// TestE2EViewportSwapDiscardsPath verifies that crossing the width
// threshold abandons an in-progress selection.
func TestE2EViewportSwapDiscardsPath(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/feelings.yaml")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	app.LoadTaxonomy(string(source))

	app.Measure(390, 844)
	app.Tap("Joy")

	scene := app.Measure(1200, 844)
	if scene.Mode != "pointer" {
		t.Fatalf("mode after widening = %q, want pointer", scene.Mode)
	}
	pr, ok := app.pointer()
	if !ok {
		t.Fatal("pointer renderer not mounted")
	}
	if !pr.Path().IsZero() {
		t.Errorf("path survived a renderer swap: %+v", pr.Path())
	}
}
