package ordering

import (
	"testing"

	"github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"
)

func newBank(t *testing.T) (*kernel.Signature, *kernel.Bank) {
	t.Helper()
	sig := kernel.NewSignature()
	return sig, kernel.NewBank(sig)
}

func mustTerm(t *testing.T, b *kernel.Bank, f int, args ...*kernel.Term) *kernel.Term {
	t.Helper()
	tm, err := b.Term(f, args...)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func TestHeavierTermIsGreater(t *testing.T) {
	sig, bank := newBank(t)
	f, _ := sig.AddFunction("f", 1)
	a, _ := sig.AddFunction("a", 0)

	ta := mustTerm(t, bank, a)
	fa := mustTerm(t, bank, f, ta)
	ffa := mustTerm(t, bank, f, fa)

	o := NewKBO(sig, bank)
	if !o.Greater(ffa, fa) || !o.Greater(fa, ta) {
		t.Fatal("heavier ground term not greater")
	}
	if o.Greater(ta, fa) {
		t.Fatal("lighter ground term reported greater")
	}
}

func TestVariableCondition(t *testing.T) {
	sig, bank := newBank(t)
	f, _ := sig.AddFunction("f", 1)
	g, _ := sig.AddFunction("g", 2)

	x, y := bank.Var(0), bank.Var(1)
	fx := mustTerm(t, bank, f, x)
	gxy := mustTerm(t, bank, g, x, y)

	o := NewKBO(sig, bank)
	// f(x) > x: the variable occurs in the larger side
	if !o.Greater(fx, x) {
		t.Fatal("f(X0) not greater than X0")
	}
	if o.Greater(x, fx) {
		t.Fatal("X0 reported greater than f(X0)")
	}
	// g(x,y) and f(x) are incomparable: y does not occur in f(x)
	if o.Greater(fx, gxy) {
		t.Fatal("f(X0) reported greater than g(X0,X1) despite missing X1")
	}
	// distinct variables are incomparable either way
	if o.Greater(x, y) || o.Greater(y, x) {
		t.Fatal("distinct variables reported comparable")
	}
}

func TestPrecedenceFromUsage(t *testing.T) {
	sig, bank := newBank(t)
	hot, _ := sig.AddFunction("hot", 1)
	cold, _ := sig.AddFunction("cold", 1)

	z := bank.Var(0)
	hotz := mustTerm(t, bank, hot, z)
	coldz := mustTerm(t, bank, cold, z)
	// bump hot's usage past cold's
	mustTerm(t, bank, hot, hotz)

	o := NewKBO(sig, bank)
	// same weight, same variables: the rarer symbol wins
	if !o.Greater(coldz, hotz) {
		t.Fatal("rarer symbol not greater at equal weight")
	}
	if o.Greater(hotz, coldz) {
		t.Fatal("more frequent symbol reported greater at equal weight")
	}
}

func TestLexicographicTieBreak(t *testing.T) {
	sig, bank := newBank(t)
	g, _ := sig.AddFunction("g", 2)
	a, _ := sig.AddFunction("a", 0)
	b, _ := sig.AddFunction("b", 0)

	ta := mustTerm(t, bank, a)
	tb := mustTerm(t, bank, b)

	o := NewKBO(sig, bank)
	aGb := o.Greater(ta, tb)
	bGa := o.Greater(tb, ta)
	if aGb == bGa {
		t.Fatal("distinct equal-weight constants must be strictly ordered")
	}

	big, small := ta, tb
	if bGa {
		big, small = tb, ta
	}
	gBig := mustTerm(t, bank, g, big, big)
	gSmall := mustTerm(t, bank, g, big, small)
	if !o.Greater(gBig, gSmall) {
		t.Fatal("first differing argument did not decide the comparison")
	}
}

func TestComparisonIrreflexive(t *testing.T) {
	sig, bank := newBank(t)
	f, _ := sig.AddFunction("f", 1)
	x := bank.Var(0)
	fx := mustTerm(t, bank, f, x)

	o := NewKBO(sig, bank)
	if o.Greater(fx, fx) || o.Greater(x, x) {
		t.Fatal("term reported greater than itself")
	}
}

func TestCacheStampedByEpoch(t *testing.T) {
	sig, bank := newBank(t)
	f, _ := sig.AddFunction("f", 1)
	a, _ := sig.AddFunction("a", 0)
	ta := mustTerm(t, bank, a)
	fa := mustTerm(t, bank, f, ta)

	o := NewKBO(sig, bank)
	if !o.Greater(fa, ta) {
		t.Fatal("f(a) not greater than a")
	}
	bank.BumpEpoch()
	// stale cache entries are misses; the recomputed answer is the same
	if !o.Greater(fa, ta) {
		t.Fatal("comparison changed across an epoch bump")
	}
}

func TestOrientEqualityCachesOnLiteral(t *testing.T) {
	sig, bank := newBank(t)
	f, _ := sig.AddFunction("f", 1)
	a, _ := sig.AddFunction("a", 0)
	ta := mustTerm(t, bank, a)
	fa := mustTerm(t, bank, f, ta)
	eq := bank.Equality(true, fa, ta)

	o := NewKBO(sig, bank)
	if !o.OrientEquality(eq) {
		t.Fatal("f(a) = a not oriented left to right")
	}
	if lg, ok := eq.Orientation(bank.Epoch()); !ok || !lg {
		t.Fatal("orientation not cached on the literal")
	}

	bank.BumpEpoch()
	if _, ok := eq.Orientation(bank.Epoch()); ok {
		t.Fatal("stale orientation still reported valid after the epoch bump")
	}
	if !o.OrientEquality(eq) {
		t.Fatal("re-orientation after the epoch bump changed the answer")
	}
}
