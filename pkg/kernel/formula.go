package kernel

// FormulaKind discriminates the formula connectives.
type FormulaKind uint8

const (
	FormulaAtom FormulaKind = iota
	FormulaNot
	FormulaAnd
	FormulaOr
	FormulaImp
	FormulaIff
	FormulaForall
	FormulaExists
)

// Formula is a first-order formula tree. Unlike terms and literals, formulas
// are not hash-consed: they exist only transiently between construction and
// clausification, so sharing buys nothing.
type Formula struct {
	kind   FormulaKind
	lit    *Literal
	sub    []*Formula
	varIdx int
}

// Kind returns the top connective.
func (f *Formula) Kind() FormulaKind { return f.kind }

// Literal returns the atom's literal; only meaningful for FormulaAtom.
func (f *Formula) Literal() *Literal { return f.lit }

// Sub returns the immediate subformulas.
func (f *Formula) Sub() []*Formula { return f.sub }

// BoundVar returns the bound variable index; only meaningful for quantifiers.
func (f *Formula) BoundVar() int { return f.varIdx }

// Atom wraps a literal as an atomic formula.
func Atom(l *Literal) *Formula { return &Formula{kind: FormulaAtom, lit: l} }

// Not negates a formula.
func Not(f *Formula) *Formula { return &Formula{kind: FormulaNot, sub: []*Formula{f}} }

// And conjoins formulas.
func And(fs ...*Formula) *Formula { return &Formula{kind: FormulaAnd, sub: fs} }

// Or disjoins formulas.
func Or(fs ...*Formula) *Formula { return &Formula{kind: FormulaOr, sub: fs} }

// Imp builds the implication l => r.
func Imp(l, r *Formula) *Formula { return &Formula{kind: FormulaImp, sub: []*Formula{l, r}} }

// Iff builds the equivalence l <=> r.
func Iff(l, r *Formula) *Formula { return &Formula{kind: FormulaIff, sub: []*Formula{l, r}} }

// Forall universally quantifies variable v in f.
func Forall(v int, f *Formula) *Formula {
	return &Formula{kind: FormulaForall, varIdx: v, sub: []*Formula{f}}
}

// Exists existentially quantifies variable v in f.
func Exists(v int, f *Formula) *Formula {
	return &Formula{kind: FormulaExists, varIdx: v, sub: []*Formula{f}}
}
