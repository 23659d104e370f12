package proof

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"
)

// buildDiamond derives the same shared premise through two paths:
//
//	axiom (1)   negated conjecture (2)
//	    \        /
//	   shared (3)        derived once from 1,2
//	    /        \
//	  left (4)  right (5)
//	    \        /
//	    empty (6)
func buildDiamond(t *testing.T) (*kernel.Units, kernel.Unit) {
	t.Helper()
	units := kernel.NewUnits()
	ax := units.NewClause(nil, kernel.InputInference(kernel.InputAxiom))
	nc := units.NewClause(nil, kernel.InputInference(kernel.InputNegatedConjecture))
	shared := units.NewClause(nil, kernel.DerivedInference(kernel.RuleResolution, ax, nc))
	left := units.NewClause(nil, kernel.DerivedInference(kernel.RuleFactoring, shared))
	right := units.NewClause(nil, kernel.DerivedInference(kernel.RuleEqualityResolution, shared))
	empty := units.NewClause(nil, kernel.DerivedInference(kernel.RuleResolution, left, right))
	return units, empty
}

func TestExtractPremisesPrecedeConclusions(t *testing.T) {
	_, root := buildDiamond(t)
	steps := Extract(root)

	pos := make(map[uint32]int, len(steps))
	for i, s := range steps {
		if _, dup := pos[s.ID]; dup {
			t.Fatalf("unit %d appears twice", s.ID)
		}
		pos[s.ID] = i
	}
	for _, s := range steps {
		for _, p := range s.Premises {
			at, ok := pos[p]
			if !ok {
				t.Fatalf("premise %d of unit %d missing from the extraction", p, s.ID)
			}
			if at >= pos[s.ID] {
				t.Fatalf("premise %d emitted at %d, after its conclusion %d at %d",
					p, at, s.ID, pos[s.ID])
			}
		}
	}
}

func TestExtractSharedPremiseOnce(t *testing.T) {
	_, root := buildDiamond(t)
	steps := Extract(root)

	// six distinct units, each exactly once, root last
	if len(steps) != 6 {
		t.Fatalf("extracted %d steps, want 6", len(steps))
	}
	if steps[len(steps)-1].ID != root.ID() {
		t.Fatalf("last step is %d, want the root %d", steps[len(steps)-1].ID, root.ID())
	}
}

func TestExtractRecordsInferenceData(t *testing.T) {
	units := kernel.NewUnits()
	ax := units.NewClause(nil, kernel.InputInference(kernel.InputAxiom))
	nc := units.NewClause(nil, kernel.InputInference(kernel.InputNegatedConjecture))
	empty := units.NewClause(nil, kernel.DerivedInference(kernel.RuleResolution, ax, nc))

	got := Extract(empty)
	want := []Step{
		{ID: ax.ID(), Rule: kernel.RuleInput, Input: kernel.InputAxiom, Unit: ax},
		{ID: nc.ID(), Rule: kernel.RuleInput, Input: kernel.InputNegatedConjecture, Unit: nc},
		{
			ID:       empty.ID(),
			Rule:     kernel.RuleResolution,
			Input:    kernel.InputNegatedConjecture,
			Premises: []uint32{ax.ID(), nc.ID()},
			Unit:     empty,
		},
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b kernel.Unit) bool { return a == b })); diff != "" {
		t.Errorf("extraction mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractNilRoot(t *testing.T) {
	if steps := Extract(nil); steps != nil {
		t.Fatalf("Extract(nil) = %v, want nil", steps)
	}
}

func TestExtractSingleInput(t *testing.T) {
	units := kernel.NewUnits()
	empty := units.NewClause(nil, kernel.InputInference(kernel.InputAxiom))
	steps := Extract(empty)
	if len(steps) != 1 || steps[0].ID != empty.ID() {
		t.Fatalf("unexpected extraction %v", steps)
	}
}

func TestWriteFormat(t *testing.T) {
	sig := kernel.NewSignature()
	bank := kernel.NewBank(sig)
	units := kernel.NewUnits()
	p, _ := sig.AddPredicate("p", 0)
	lp, _ := bank.Literal(p, true)
	ln := bank.Complement(lp)

	c1 := units.NewClause([]*kernel.Literal{lp}, kernel.InputInference(kernel.InputAxiom))
	c2 := units.NewClause([]*kernel.Literal{ln}, kernel.InputInference(kernel.InputNegatedConjecture))
	empty := units.NewClause(nil, kernel.DerivedInference(kernel.RuleResolution, c1, c2))

	out := Format(sig, Extract(empty))
	want := "1. p [input]\n2. ~p [input]\n3. $false [resolution 1,2]\n"
	if out != want {
		t.Errorf("rendered proof:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderJSON(t *testing.T) {
	sig := kernel.NewSignature()
	units := kernel.NewUnits()
	empty := units.NewClause(nil, kernel.InputInference(kernel.InputAxiom))

	data, err := RenderJSON(sig, Extract(empty))
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, frag := range []string{`"id": 1`, `"content": "$false"`, `"rule": "input"`, `"input": "axiom"`} {
		if !strings.Contains(s, frag) {
			t.Errorf("JSON output missing %s:\n%s", frag, s)
		}
	}
}

func TestStore(t *testing.T) {
	st := NewStore()
	if _, ok := st.Get(1); ok {
		t.Fatal("empty store returned a hit")
	}
	st.Put(1, []Step{{ID: 1}})
	steps, ok := st.Get(1)
	if !ok || len(steps) != 1 {
		t.Fatal("stored extraction not returned")
	}
	st.Clear()
	if _, ok := st.Get(1); ok {
		t.Fatal("cleared store returned a hit")
	}
}
