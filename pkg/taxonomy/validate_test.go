package taxonomy

import (
	"strings"
	"testing"
)

func TestValidateAcceptsWellFormedTree(t *testing.T) {
	errs := Validate(testRoots())
	if HasBlocking(errs) {
		t.Fatalf("well-formed tree produced blocking errors: %v", errs)
	}
}

func TestValidateEmptyTaxonomy(t *testing.T) {
	errs := Validate(nil)
	if !HasBlocking(errs) {
		t.Fatal("empty taxonomy should be rejected")
	}
}

func TestValidateRejectsFourthLevel(t *testing.T) {
	roots := []Node{{
		Name:  "Joy",
		Color: MustColor("#FFD700"),
		Children: []Node{{
			Name:  "Happiness",
			Color: MustColor("#FFE066"),
			Children: []Node{{
				Name:  "Cheerful",
				Color: MustColor("#FFF0A3"),
				Children: []Node{
					{Name: "TooDeep", Color: MustColor("#FFFFFF")},
				},
			}},
		}},
	}}

	errs := Validate(roots)
	if !HasBlocking(errs) {
		t.Fatal("four-level tree should be rejected")
	}
	found := false
	for _, e := range errs {
		if e.Severity == SeverityError && strings.Contains(e.Message, "tertiary") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a tertiary depth error, got %v", errs)
	}
}

func TestValidateRejectsEmptyName(t *testing.T) {
	roots := []Node{{
		Name:  "Joy",
		Color: MustColor("#FFD700"),
		Children: []Node{
			{Name: "  ", Color: MustColor("#FFE066")},
		},
	}}
	if !HasBlocking(Validate(roots)) {
		t.Error("blank node name should be rejected")
	}
}

func TestValidateRejectsDuplicateSiblings(t *testing.T) {
	roots := []Node{
		{Name: "Joy", Color: MustColor("#FFD700")},
		{Name: "Joy", Color: MustColor("#FFD700")},
	}
	errs := Validate(roots)
	if !HasBlocking(errs) {
		t.Fatal("duplicate core names should be rejected")
	}
}

func TestValidateWarnsOnTruncatedBranch(t *testing.T) {
	// A core with no children is legal but worth flagging: the wheel
	// treats it as a terminal leaf.
	roots := []Node{
		{Name: "Numb", Color: MustColor("#808080")},
	}
	errs := Validate(roots)
	if HasBlocking(errs) {
		t.Fatalf("childless core should not block: %v", errs)
	}
	warned := false
	for _, e := range errs {
		if e.Severity == SeverityWarning {
			warned = true
		}
	}
	if !warned {
		t.Error("expected a truncated-branch warning")
	}

	// And the tree still constructs.
	if _, err := New(roots); err != nil {
		t.Errorf("New rejected a tree with warnings only: %v", err)
	}
}

func TestValidationErrorFormatting(t *testing.T) {
	e := ValidationError{Path: "Joy/Happiness", Message: "boom", Severity: SeverityError}
	got := e.Error()
	if !strings.Contains(got, "Joy/Happiness") || !strings.Contains(got, "error") {
		t.Errorf("Error() = %q", got)
	}

	tree := ValidationError{Message: "empty", Severity: SeverityWarning}
	if !strings.HasPrefix(tree.Error(), "[warning]") {
		t.Errorf("tree-level Error() = %q", tree.Error())
	}
}
