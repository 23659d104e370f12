package saturation

import (
	"testing"

	"github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"
)

func setup(t *testing.T) (*kernel.Signature, *kernel.Bank) {
	t.Helper()
	sig := kernel.NewSignature()
	return sig, kernel.NewBank(sig)
}

func mk(t *testing.T, b *kernel.Bank, f int, args ...*kernel.Term) *kernel.Term {
	t.Helper()
	tm, err := b.Term(f, args...)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func TestUnifyVariableWithTerm(t *testing.T) {
	sig, bank := setup(t)
	f, _ := sig.AddFunction("f", 1)
	a, _ := sig.AddFunction("a", 0)
	ta := mk(t, bank, a)
	fa := mk(t, bank, f, ta)
	x := bank.Var(0)

	sub := make(bindings)
	if !unify(x, fa, sub) {
		t.Fatal("X0 does not unify with f(a)")
	}
	got, err := applyTerm(bank, x, sub)
	if err != nil {
		t.Fatal(err)
	}
	if got != fa {
		t.Fatalf("X0 instantiated to %s, want f(a)", sig.TermString(got))
	}
}

func TestUnifyChainsBindings(t *testing.T) {
	sig, bank := setup(t)
	a, _ := sig.AddFunction("a", 0)
	ta := mk(t, bank, a)
	x, y := bank.Var(0), bank.Var(1)

	sub := make(bindings)
	if !unify(x, y, sub) {
		t.Fatal("two variables do not unify")
	}
	if !unify(y, ta, sub) {
		t.Fatal("bound variable does not unify with a constant")
	}
	got, err := applyTerm(bank, x, sub)
	if err != nil {
		t.Fatal(err)
	}
	if got != ta {
		t.Fatalf("X0 instantiated to %s through the chain, want a", sig.TermString(got))
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	sig, bank := setup(t)
	f, _ := sig.AddFunction("f", 1)
	x := bank.Var(0)
	fx := mk(t, bank, f, x)

	sub := make(bindings)
	if unify(x, fx, sub) {
		t.Fatal("X0 unified with f(X0)")
	}
}

func TestUnifyFunctorClash(t *testing.T) {
	sig, bank := setup(t)
	a, _ := sig.AddFunction("a", 0)
	b, _ := sig.AddFunction("b", 0)
	ta, tb := mk(t, bank, a), mk(t, bank, b)

	sub := make(bindings)
	if unify(ta, tb, sub) {
		t.Fatal("distinct constants unified")
	}
}

func TestUnifyDeepSharedVariable(t *testing.T) {
	sig, bank := setup(t)
	g, _ := sig.AddFunction("g", 2)
	a, _ := sig.AddFunction("a", 0)
	ta := mk(t, bank, a)
	x, y := bank.Var(0), bank.Var(1)

	// g(X0, X0) =? g(a, X1) forces X1 = a through X0
	left := mk(t, bank, g, x, x)
	right := mk(t, bank, g, ta, y)

	sub := make(bindings)
	if !unify(left, right, sub) {
		t.Fatal("terms do not unify")
	}
	gy, err := applyTerm(bank, y, sub)
	if err != nil {
		t.Fatal(err)
	}
	if gy != ta {
		t.Fatalf("X1 instantiated to %s, want a", sig.TermString(gy))
	}
}

func TestRenameApart(t *testing.T) {
	sig, bank := setup(t)
	p, _ := sig.AddPredicate("p", 2)
	x, y := bank.Var(0), bank.Var(1)
	l, err := bank.Literal(p, true, x, y)
	if err != nil {
		t.Fatal(err)
	}

	rl, err := renameLiteral(bank, l, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := sig.LiteralString(rl); got != "p(X5,X6)" {
		t.Fatalf("renamed literal = %q", got)
	}
}

func TestMaxVar(t *testing.T) {
	sig, bank := setup(t)
	units := kernel.NewUnits()
	p, _ := sig.AddPredicate("p", 2)
	f, _ := sig.AddFunction("f", 1)
	a, _ := sig.AddFunction("a", 0)
	ta := mk(t, bank, a)
	fv := mk(t, bank, f, bank.Var(4))

	l, _ := bank.Literal(p, true, bank.Var(1), fv)
	c := units.NewClause([]*kernel.Literal{l}, kernel.InputInference(kernel.InputAxiom))
	if got := maxVar(c); got != 4 {
		t.Fatalf("maxVar = %d, want 4", got)
	}

	lg, _ := bank.Literal(p, true, ta, ta)
	ground := units.NewClause([]*kernel.Literal{lg}, kernel.InputInference(kernel.InputAxiom))
	if got := maxVar(ground); got != -1 {
		t.Fatalf("maxVar of ground clause = %d, want -1", got)
	}
}

func TestIsGround(t *testing.T) {
	sig, bank := setup(t)
	f, _ := sig.AddFunction("f", 1)
	a, _ := sig.AddFunction("a", 0)
	ta := mk(t, bank, a)
	fa := mk(t, bank, f, ta)
	fx := mk(t, bank, f, bank.Var(0))

	if !isGround(fa) {
		t.Fatal("f(a) reported non-ground")
	}
	if isGround(fx) {
		t.Fatal("f(X0) reported ground")
	}
}
