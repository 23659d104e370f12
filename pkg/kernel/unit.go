package kernel

// Unit is a clause or formula unit. Every unit has a process-unique,
// monotonically increasing identifier assigned at construction by the Units
// arena, and carries an inference record. The identifier ordering is load
// bearing: a premise always has a strictly smaller identifier than any unit
// derived from it, which is what lets proof extraction turn a DFS walk into a
// premises-first order.
type Unit interface {
	ID() uint32
	Inference() *Inference
	IsClause() bool
}

// Clause is a disjunction of literals. The empty clause represents false.
type Clause struct {
	id   uint32
	lits []*Literal
	inf  Inference
}

func (c *Clause) ID() uint32            { return c.id }
func (c *Clause) Inference() *Inference { return &c.inf }
func (c *Clause) IsClause() bool        { return true }

// Literals returns the clause literals. Callers must not mutate the slice.
func (c *Clause) Literals() []*Literal { return c.lits }

// Len returns the number of literals.
func (c *Clause) Len() int { return len(c.lits) }

// IsEmpty reports whether the clause is the empty clause.
func (c *Clause) IsEmpty() bool { return len(c.lits) == 0 }

// FormulaUnit is a first-order formula wrapped as a problem unit. Formula
// units are turned into clauses by preprocessing before search begins.
type FormulaUnit struct {
	id  uint32
	f   *Formula
	inf Inference
}

func (u *FormulaUnit) ID() uint32            { return u.id }
func (u *FormulaUnit) Inference() *Inference { return &u.inf }
func (u *FormulaUnit) IsClause() bool        { return false }

// Formula returns the wrapped formula.
func (u *FormulaUnit) Formula() *Formula { return u.f }

// Units is the arena that assigns unit identifiers and owns the
// "preprocessing has ended" cutoff. Units built while the cutoff is not yet
// armed are classified as preprocessing-phase units; the session's light
// reset rearms the cutoff so the next problem's preprocessing is classified
// correctly again.
type Units struct {
	nextID             uint32
	byID               map[uint32]Unit
	preprocessingEnded bool
}

// NewUnits returns an empty arena. Identifiers start at 1.
func NewUnits() *Units {
	return &Units{nextID: 1, byID: make(map[uint32]Unit)}
}

// NewClause builds a clause with the next identifier.
func (u *Units) NewClause(lits []*Literal, inf Inference) *Clause {
	inf.preprocessing = !u.preprocessingEnded
	c := &Clause{id: u.nextID, lits: append([]*Literal(nil), lits...), inf: inf}
	u.byID[c.id] = c
	u.nextID++
	return c
}

// NewFormula builds a formula unit with the next identifier.
func (u *Units) NewFormula(f *Formula, inf Inference) *FormulaUnit {
	inf.preprocessing = !u.preprocessingEnded
	fu := &FormulaUnit{id: u.nextID, f: f, inf: inf}
	u.byID[fu.id] = fu
	u.nextID++
	return fu
}

// Lookup returns the unit with the given identifier, or nil.
func (u *Units) Lookup(id uint32) Unit { return u.byID[id] }

// Count returns the number of units built so far.
func (u *Units) Count() int { return len(u.byID) }

// EndPreprocessing arms the cutoff: units built from now on are search-phase
// units. Called once per session when preprocessing hands over to search.
func (u *Units) EndPreprocessing() { u.preprocessingEnded = true }

// RearmPreprocessing disarms the cutoff for the next session.
func (u *Units) RearmPreprocessing() { u.preprocessingEnded = false }

// PreprocessingEnded reports whether the cutoff is armed.
func (u *Units) PreprocessingEnded() bool { return u.preprocessingEnded }
