// Package proof extracts and renders the derivation graph of a completed
// refutation. The graph has no stored representation of its own: it is the
// transitive closure of inference premise pointers, discovered by walking
// backward from the empty clause.
package proof

import "github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"

// Step is one element of a flattened proof: a unit, its identifier, the rule
// and input classification from its inference record, and the identifiers of
// its direct premises as recorded (not recomputed).
type Step struct {
	ID       uint32
	Rule     kernel.Rule
	Input    kernel.InputType
	Premises []uint32
	Unit     kernel.Unit
}

// Extract flattens the derivation DAG rooted at root into a sequence in
// which every unit appears exactly once and every premise precedes the
// conclusions derived from it; the last element is root itself. A nil root
// yields a nil slice, so callers may probe speculatively.
//
// The walk is a depth-first traversal over premise edges with a visited set
// keyed by unit identifier: shared premises are emitted at their first
// completion, which is always before any conclusion that uses them. The
// traversal assumes the arena invariant that premises carry strictly smaller
// identifiers than their conclusions, so the graph is acyclic; it does not
// re-verify this at runtime.
func Extract(root kernel.Unit) []Step {
	if root == nil {
		return nil
	}

	type frame struct {
		unit     kernel.Unit
		expanded bool
	}

	var steps []Step
	visited := make(map[uint32]bool)
	stack := []frame{{unit: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			steps = append(steps, stepOf(f.unit))
			continue
		}
		if visited[f.unit.ID()] {
			continue
		}
		visited[f.unit.ID()] = true

		stack = append(stack, frame{unit: f.unit, expanded: true})
		premises := f.unit.Inference().Premises
		for i := len(premises) - 1; i >= 0; i-- {
			stack = append(stack, frame{unit: premises[i]})
		}
	}

	return steps
}

func stepOf(u kernel.Unit) Step {
	inf := u.Inference()
	var premises []uint32
	if len(inf.Premises) > 0 {
		premises = make([]uint32, len(inf.Premises))
		for i, p := range inf.Premises {
			premises[i] = p.ID()
		}
	}
	return Step{
		ID:       u.ID(),
		Rule:     inf.Rule,
		Input:    inf.Input,
		Premises: premises,
		Unit:     u,
	}
}
