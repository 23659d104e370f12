// Package kernel holds the first-order data model shared by every proving
// session: the symbol table, hash-consed terms and literals, formulas, and
// units (clauses and formula units) with their inference records.
//
// Nothing in this package is safe for concurrent use; a Session owns one
// instance of each structure and the process runs at most one proving
// session at a time.
package kernel

import "fmt"

// EqualityPredicate is the predicate index of the built-in equality symbol.
// It is pre-registered by NewSignature so it always has index 0.
const EqualityPredicate = 0

// Symbol is a function or predicate entry in the signature.
type Symbol struct {
	Name  string
	Arity int

	usage uint64
}

// Signature is the symbol table for one session. Function and predicate
// symbols live in separate index spaces, mirroring the usual first-order
// convention: AddFunction and AddPredicate both return dense indices
// starting at 0 (predicate 0 is always equality).
//
// Per-symbol usage counters are bumped by the term bank whenever a symbol
// appears in a newly built term or literal; the default term ordering derives
// its precedence from these counts, so they are session state and are zeroed
// by the session's resets.
type Signature struct {
	funcs []Symbol
	preds []Symbol

	funcIndex map[string]int
	predIndex map[string]int
}

// NewSignature returns a signature with the equality predicate pre-registered.
func NewSignature() *Signature {
	s := &Signature{
		funcIndex: make(map[string]int),
		predIndex: make(map[string]int),
	}
	s.preds = append(s.preds, Symbol{Name: "=", Arity: 2})
	s.predIndex["="] = EqualityPredicate
	return s
}

// AddFunction registers a function symbol and returns its index. Registering
// the same name with the same arity returns the existing index. Registering
// an existing name with a different arity is rejected rather than shadowed.
func (s *Signature) AddFunction(name string, arity int) (int, error) {
	if i, ok := s.funcIndex[name]; ok {
		if s.funcs[i].Arity != arity {
			return 0, fmt.Errorf("function %q already registered with arity %d, cannot re-register with arity %d",
				name, s.funcs[i].Arity, arity)
		}
		return i, nil
	}
	i := len(s.funcs)
	s.funcs = append(s.funcs, Symbol{Name: name, Arity: arity})
	s.funcIndex[name] = i
	return i, nil
}

// AddPredicate registers a predicate symbol and returns its index. The same
// arity-conflict rule as AddFunction applies.
func (s *Signature) AddPredicate(name string, arity int) (int, error) {
	if i, ok := s.predIndex[name]; ok {
		if s.preds[i].Arity != arity {
			return 0, fmt.Errorf("predicate %q already registered with arity %d, cannot re-register with arity %d",
				name, s.preds[i].Arity, arity)
		}
		return i, nil
	}
	i := len(s.preds)
	s.preds = append(s.preds, Symbol{Name: name, Arity: arity})
	s.predIndex[name] = i
	return i, nil
}

// HasFunction reports whether a function symbol with this name exists.
func (s *Signature) HasFunction(name string) bool {
	_, ok := s.funcIndex[name]
	return ok
}

// Function returns the function symbol at index i.
func (s *Signature) Function(i int) Symbol { return s.funcs[i] }

// Predicate returns the predicate symbol at index i.
func (s *Signature) Predicate(i int) Symbol { return s.preds[i] }

// FunctionCount returns the number of registered function symbols.
func (s *Signature) FunctionCount() int { return len(s.funcs) }

// PredicateCount returns the number of registered predicate symbols.
func (s *Signature) PredicateCount() int { return len(s.preds) }

// FunctionUsage returns how many times function i appeared in built terms
// since the last usage reset.
func (s *Signature) FunctionUsage(i int) uint64 { return s.funcs[i].usage }

// PredicateUsage returns how many times predicate i appeared in built
// literals since the last usage reset.
func (s *Signature) PredicateUsage(i int) uint64 { return s.preds[i].usage }

func (s *Signature) bumpFunction(i int)  { s.funcs[i].usage++ }
func (s *Signature) bumpPredicate(i int) { s.preds[i].usage++ }

// ResetUsage zeroes all usage counters. Called by the session resets so the
// next proof's default precedence is not biased by a previous problem.
func (s *Signature) ResetUsage() {
	for i := range s.funcs {
		s.funcs[i].usage = 0
	}
	for i := range s.preds {
		s.preds[i].usage = 0
	}
}
