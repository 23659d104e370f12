// Package clausify turns formula units into clause units ahead of search:
// negation normal form, Skolemization of existentials, and distribution into
// conjunctive normal form. Clauses it produces carry the clausify rule with
// the source formula unit as premise and are classified as
// preprocessing-phase units by the arena cutoff, which the engine arms when
// preprocessing hands over to search.
package clausify

import (
	"fmt"

	"github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"
	"github.com/Dragon-Hatcher/vampire-lib/pkg/session"
)

// Preprocess replaces every formula unit in the problem with its clausal
// form, in place, and then arms the session's preprocessing cutoff. Clause
// units pass through untouched.
//
// Variable scoping assumption: quantifiers in one formula bind distinct
// variable indices. The builder API hands out variables by index, so a
// formula reusing an index under nested quantifiers would capture; the
// original behaves the same way.
func Preprocess(s *session.Session, prb *kernel.Problem) error {
	units := prb.Units()
	out := make([]kernel.Unit, 0, len(units))

	sk := &skolemizer{sess: s}
	for _, u := range units {
		if u.IsClause() {
			out = append(out, u)
			continue
		}
		fu, ok := u.(*kernel.FormulaUnit)
		if !ok {
			return fmt.Errorf("unit %d is neither clause nor formula", u.ID())
		}
		clauses, err := clausifyUnit(s, sk, fu)
		if err != nil {
			return fmt.Errorf("clausify unit %d: %w", fu.ID(), err)
		}
		out = append(out, clauses...)
	}

	prb.Replace(out)
	s.Units().EndPreprocessing()
	return nil
}

func clausifyUnit(s *session.Session, sk *skolemizer, fu *kernel.FormulaUnit) ([]kernel.Unit, error) {
	n := nnf(s.Bank(), fu.Formula(), true)
	qf, err := sk.run(n, nil, make(map[int]*kernel.Term))
	if err != nil {
		return nil, err
	}

	var out []kernel.Unit
	for _, lits := range distribute(qf) {
		lits = dedupLiterals(lits)
		c := s.Units().NewClause(lits, kernel.DerivedInference(kernel.RuleClausify, fu))
		out = append(out, c)
	}
	return out, nil
}

// nnf pushes negations down to the literals. pos tracks the polarity of the
// current subformula.
func nnf(b *kernel.Bank, f *kernel.Formula, pos bool) *kernel.Formula {
	switch f.Kind() {
	case kernel.FormulaAtom:
		if pos {
			return f
		}
		return kernel.Atom(b.Complement(f.Literal()))
	case kernel.FormulaNot:
		return nnf(b, f.Sub()[0], !pos)
	case kernel.FormulaAnd, kernel.FormulaOr:
		sub := make([]*kernel.Formula, len(f.Sub()))
		for i, g := range f.Sub() {
			sub[i] = nnf(b, g, pos)
		}
		conj := f.Kind() == kernel.FormulaAnd
		if conj == pos {
			return kernel.And(sub...)
		}
		return kernel.Or(sub...)
	case kernel.FormulaImp:
		l, r := f.Sub()[0], f.Sub()[1]
		if pos {
			return kernel.Or(nnf(b, l, false), nnf(b, r, true))
		}
		return kernel.And(nnf(b, l, true), nnf(b, r, false))
	case kernel.FormulaIff:
		l, r := f.Sub()[0], f.Sub()[1]
		if pos {
			return kernel.And(
				kernel.Or(nnf(b, l, false), nnf(b, r, true)),
				kernel.Or(nnf(b, l, true), nnf(b, r, false)),
			)
		}
		return kernel.Or(
			kernel.And(nnf(b, l, true), nnf(b, r, false)),
			kernel.And(nnf(b, l, false), nnf(b, r, true)),
		)
	case kernel.FormulaForall:
		if pos {
			return kernel.Forall(f.BoundVar(), nnf(b, f.Sub()[0], true))
		}
		return kernel.Exists(f.BoundVar(), nnf(b, f.Sub()[0], false))
	case kernel.FormulaExists:
		if pos {
			return kernel.Exists(f.BoundVar(), nnf(b, f.Sub()[0], true))
		}
		return kernel.Forall(f.BoundVar(), nnf(b, f.Sub()[0], false))
	}
	return f
}

// skolemizer replaces existential variables with applications of fresh
// Skolem functions over the universal variables in scope, and drops all
// quantifiers. Skolem symbols are registered in the session signature under
// names sK0, sK1, ... (skipping any the caller already took).
type skolemizer struct {
	sess *session.Session
	next int
}

func (sk *skolemizer) run(f *kernel.Formula, scope []*kernel.Term, sub map[int]*kernel.Term) (*kernel.Formula, error) {
	b := sk.sess.Bank()
	switch f.Kind() {
	case kernel.FormulaAtom:
		lit, err := applyToLiteral(b, f.Literal(), sub)
		if err != nil {
			return nil, err
		}
		return kernel.Atom(lit), nil
	case kernel.FormulaAnd, kernel.FormulaOr:
		out := make([]*kernel.Formula, len(f.Sub()))
		for i, g := range f.Sub() {
			r, err := sk.run(g, scope, sub)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		if f.Kind() == kernel.FormulaAnd {
			return kernel.And(out...), nil
		}
		return kernel.Or(out...), nil
	case kernel.FormulaForall:
		v := b.Var(f.BoundVar())
		return sk.run(f.Sub()[0], append(scope, v), sub)
	case kernel.FormulaExists:
		fn, err := sk.fresh(len(scope))
		if err != nil {
			return nil, err
		}
		t, err := b.Term(fn, scope...)
		if err != nil {
			return nil, err
		}
		sub[f.BoundVar()] = t
		r, err := sk.run(f.Sub()[0], scope, sub)
		delete(sub, f.BoundVar())
		return r, err
	}
	return nil, fmt.Errorf("unexpected connective %d after NNF", f.Kind())
}

func (sk *skolemizer) fresh(arity int) (int, error) {
	sig := sk.sess.Signature()
	for {
		name := fmt.Sprintf("sK%d", sk.next)
		sk.next++
		if sig.HasFunction(name) {
			continue
		}
		return sig.AddFunction(name, arity)
	}
}

func applyToTerm(b *kernel.Bank, t *kernel.Term, sub map[int]*kernel.Term) (*kernel.Term, error) {
	if t.IsVar() {
		if r, ok := sub[t.VarIndex()]; ok {
			return r, nil
		}
		return t, nil
	}
	if len(t.Args()) == 0 {
		return t, nil
	}
	args := make([]*kernel.Term, len(t.Args()))
	for i, a := range t.Args() {
		r, err := applyToTerm(b, a, sub)
		if err != nil {
			return nil, err
		}
		args[i] = r
	}
	return b.Term(t.Functor(), args...)
}

func applyToLiteral(b *kernel.Bank, l *kernel.Literal, sub map[int]*kernel.Term) (*kernel.Literal, error) {
	if len(sub) == 0 || len(l.Args()) == 0 {
		return l, nil
	}
	args := make([]*kernel.Term, len(l.Args()))
	for i, a := range l.Args() {
		r, err := applyToTerm(b, a, sub)
		if err != nil {
			return nil, err
		}
		args[i] = r
	}
	return b.Literal(l.Predicate(), l.Positive(), args...)
}

// distribute converts a quantifier-free NNF formula into clause literal
// lists by distributing disjunction over conjunction.
func distribute(f *kernel.Formula) [][]*kernel.Literal {
	switch f.Kind() {
	case kernel.FormulaAtom:
		return [][]*kernel.Literal{{f.Literal()}}
	case kernel.FormulaAnd:
		var out [][]*kernel.Literal
		for _, g := range f.Sub() {
			out = append(out, distribute(g)...)
		}
		return out
	case kernel.FormulaOr:
		out := [][]*kernel.Literal{nil}
		for _, g := range f.Sub() {
			sub := distribute(g)
			next := make([][]*kernel.Literal, 0, len(out)*len(sub))
			for _, left := range out {
				for _, right := range sub {
					merged := make([]*kernel.Literal, 0, len(left)+len(right))
					merged = append(merged, left...)
					merged = append(merged, right...)
					next = append(next, merged)
				}
			}
			out = next
		}
		return out
	}
	return nil
}

func dedupLiterals(lits []*kernel.Literal) []*kernel.Literal {
	seen := make(map[*kernel.Literal]bool, len(lits))
	out := lits[:0]
	for _, l := range lits {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
