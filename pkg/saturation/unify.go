package saturation

import "github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"

// bindings maps variable indices to shared terms. Bindings may chain
// (a variable bound to another bound variable); walk follows the chain.
type bindings map[int]*kernel.Term

func walk(t *kernel.Term, sub bindings) *kernel.Term {
	for t.IsVar() {
		bound, ok := sub[t.VarIndex()]
		if !ok {
			return t
		}
		t = bound
	}
	return t
}

// unify extends sub to a most general unifier of s and t, or reports false
// leaving sub in an undefined state (callers discard it on failure).
func unify(s, t *kernel.Term, sub bindings) bool {
	s, t = walk(s, sub), walk(t, sub)
	if s == t {
		return true
	}
	if s.IsVar() {
		if occursUnder(s.VarIndex(), t, sub) {
			return false
		}
		sub[s.VarIndex()] = t
		return true
	}
	if t.IsVar() {
		if occursUnder(t.VarIndex(), s, sub) {
			return false
		}
		sub[t.VarIndex()] = s
		return true
	}
	if s.Functor() != t.Functor() {
		return false
	}
	for i := range s.Args() {
		if !unify(s.Args()[i], t.Args()[i], sub) {
			return false
		}
	}
	return true
}

func unifyArgs(s, t []*kernel.Term, sub bindings) bool {
	for i := range s {
		if !unify(s[i], t[i], sub) {
			return false
		}
	}
	return true
}

func occursUnder(v int, t *kernel.Term, sub bindings) bool {
	t = walk(t, sub)
	if t.IsVar() {
		return t.VarIndex() == v
	}
	for _, a := range t.Args() {
		if occursUnder(v, a, sub) {
			return true
		}
	}
	return false
}

// applyTerm rebuilds t through the bank with sub applied.
func applyTerm(b *kernel.Bank, t *kernel.Term, sub bindings) (*kernel.Term, error) {
	t = walk(t, sub)
	if t.IsVar() {
		return t, nil
	}
	if len(t.Args()) == 0 {
		return t, nil
	}
	args := make([]*kernel.Term, len(t.Args()))
	for i, a := range t.Args() {
		r, err := applyTerm(b, a, sub)
		if err != nil {
			return nil, err
		}
		args[i] = r
	}
	return b.Term(t.Functor(), args...)
}

func applyLiteral(b *kernel.Bank, l *kernel.Literal, sub bindings) (*kernel.Literal, error) {
	if len(l.Args()) == 0 {
		return l, nil
	}
	args := make([]*kernel.Term, len(l.Args()))
	for i, a := range l.Args() {
		r, err := applyTerm(b, a, sub)
		if err != nil {
			return nil, err
		}
		args[i] = r
	}
	return b.Literal(l.Predicate(), l.Positive(), args...)
}

// renameTerm shifts every variable index in t by offset, used to rename two
// clauses apart before unification.
func renameTerm(b *kernel.Bank, t *kernel.Term, offset int) (*kernel.Term, error) {
	if t.IsVar() {
		return b.Var(t.VarIndex() + offset), nil
	}
	if len(t.Args()) == 0 {
		return t, nil
	}
	args := make([]*kernel.Term, len(t.Args()))
	for i, a := range t.Args() {
		r, err := renameTerm(b, a, offset)
		if err != nil {
			return nil, err
		}
		args[i] = r
	}
	return b.Term(t.Functor(), args...)
}

func renameLiteral(b *kernel.Bank, l *kernel.Literal, offset int) (*kernel.Literal, error) {
	if len(l.Args()) == 0 {
		return l, nil
	}
	args := make([]*kernel.Term, len(l.Args()))
	for i, a := range l.Args() {
		r, err := renameTerm(b, a, offset)
		if err != nil {
			return nil, err
		}
		args[i] = r
	}
	return b.Literal(l.Predicate(), l.Positive(), args...)
}

// maxVar returns the largest variable index occurring in the clause, or -1.
func maxVar(c *kernel.Clause) int {
	max := -1
	var walkT func(*kernel.Term)
	walkT = func(t *kernel.Term) {
		if t.IsVar() {
			if t.VarIndex() > max {
				max = t.VarIndex()
			}
			return
		}
		for _, a := range t.Args() {
			walkT(a)
		}
	}
	for _, l := range c.Literals() {
		for _, a := range l.Args() {
			walkT(a)
		}
	}
	return max
}

// isGround reports whether t contains no variables.
func isGround(t *kernel.Term) bool {
	if t.IsVar() {
		return false
	}
	for _, a := range t.Args() {
		if !isGround(a) {
			return false
		}
	}
	return true
}
