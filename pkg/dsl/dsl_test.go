package dsl

import (
	"strings"
	"sync"
	"testing"

	"github.com/chazu/whorl/pkg/taxonomy"
)

const sampleSource = `
; the joyful half of a small wheel
(core "Joy" :color "#FFD700" :gradient ["#FFD700" "#FFA500"]
  (primary "Happiness" :color "#FFE066"
    (tertiary "Cheerful" :color "#FFF0A0")
    (tertiary "Proud" :color "#FFF0B0"))
  (primary "Contentment" :color "#FFE980"
    (tertiary "Peaceful" :color "#FFF4C0")))
(core "Sadness" :color "#4169E1"
  (primary "Grief" :color "#6A8BE8"
    (tertiary "Mournful" :color "#93ADEF")))
`

func TestEvaluateSample(t *testing.T) {
	eng := NewEngine()

	tree, evalErrs, err := eng.Evaluate(sampleSource)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if tree == nil {
		t.Fatal("expected non-nil tree")
	}
	if tree.CoreCount() != 2 {
		t.Fatalf("core count = %d, want 2", tree.CoreCount())
	}

	joy := tree.FindCore("Joy")
	if joy == nil {
		t.Fatal("Joy missing")
	}
	if joy.Gradient == nil {
		t.Error("Joy gradient missing")
	}
	if len(joy.Children) != 2 {
		t.Errorf("Joy has %d primaries, want 2", len(joy.Children))
	}
	if tree.FindTertiary("Joy", "Happiness", "Proud") == nil {
		t.Error("Proud leaf missing")
	}
	if tree.FindTertiary("Sadness", "Grief", "Mournful") == nil {
		t.Error("Mournful leaf missing")
	}
}

func TestEvaluateEmptySource(t *testing.T) {
	eng := NewEngine()

	tree, evalErrs, err := eng.Evaluate("   \n\t  ")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if tree != nil {
		t.Error("empty source produced a tree")
	}
	if len(evalErrs) != 1 || !strings.Contains(evalErrs[0].Message, "at least one core") {
		t.Errorf("eval errors = %v", evalErrs)
	}
}

func TestEvaluateParseError(t *testing.T) {
	eng := NewEngine()

	tree, evalErrs, err := eng.Evaluate(`(core "Joy"`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if tree != nil {
		t.Error("unbalanced source produced a tree")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors for unbalanced parens")
	}
}

func TestEvaluateRuntimeError(t *testing.T) {
	eng := NewEngine()

	_, evalErrs, err := eng.Evaluate(`(core 42)`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected an error for a non-string name")
	}
}

func TestEvaluateBadColor(t *testing.T) {
	eng := NewEngine()

	_, evalErrs, err := eng.Evaluate(`(core "Joy" :color "not-a-color")`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected an error for a bad color")
	}
	if !strings.Contains(evalErrs[0].Message, "color") {
		t.Errorf("error does not mention the color: %v", evalErrs[0])
	}
}

func TestEvaluateLevelMismatch(t *testing.T) {
	eng := NewEngine()

	// A tertiary directly under a core skips the primary level.
	_, evalErrs, err := eng.Evaluate(`(core "Joy" :color "#FFD700" (tertiary "Proud"))`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected an error for a skipped level")
	}
}

func TestEvaluateDuplicateSiblings(t *testing.T) {
	eng := NewEngine()

	source := `
(core "Joy" :color "#FFD700")
(core "Joy" :color "#FFD700")
`
	tree, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if tree != nil {
		t.Error("duplicate cores produced a tree")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected validation errors for duplicate cores")
	}
}

func TestEvaluateWithLispLogic(t *testing.T) {
	eng := NewEngine()

	// The DSL is full zygomys: helper functions and loops work.
	source := `
(defn leaf [n] (tertiary n :color "#FFF0A0"))
(core "Joy" :color "#FFD700"
  (primary "Happiness" :color "#FFE066"
    (leaf "Cheerful")
    (leaf "Proud")))
`
	tree, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if tree.FindTertiary("Joy", "Happiness", "Proud") == nil {
		t.Error("Proud leaf missing from defn-built branch")
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	eng := NewEngine()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Results may be superseded under concurrency; only fatal
			// errors other than supersession are failures.
			_, _, err := eng.Evaluate(`(core "Joy" :color "#FFD700")`)
			if err != nil && !strings.Contains(err.Error(), "superseded") {
				t.Errorf("fatal error: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestEvalErrorFormatting(t *testing.T) {
	e := EvalError{Line: 3, Message: "boom"}
	if got := e.Error(); got != "line 3: boom" {
		t.Errorf("Error() = %q", got)
	}
	e = EvalError{Message: "boom"}
	if got := e.Error(); got != "boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestTreeIsUsableByMachine(t *testing.T) {
	eng := NewEngine()
	tree, _, err := eng.Evaluate(sampleSource)
	if err != nil || tree == nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got := tree.SiblingsAt(taxonomy.LevelPrimary, "Joy", ""); len(got) != 2 {
		t.Errorf("Joy primaries = %d, want 2", len(got))
	}
}
