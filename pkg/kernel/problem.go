package kernel

// Problem is an owned collection of input units. The caller retains
// ownership; the engine reads it and preprocessing may replace its unit list
// in place (formula units become clause units), but never frees anything.
type Problem struct {
	units []Unit
}

// NewProblem builds a problem from the given units.
func NewProblem(units ...Unit) *Problem {
	return &Problem{units: append([]Unit(nil), units...)}
}

// Units returns the current unit list.
func (p *Problem) Units() []Unit { return p.units }

// Replace swaps the unit list, used by preprocessing after clausification.
func (p *Problem) Replace(units []Unit) { p.units = units }

// HasFormulas reports whether any unit still is a formula unit.
func (p *Problem) HasFormulas() bool {
	for _, u := range p.units {
		if !u.IsClause() {
			return true
		}
	}
	return false
}

// HasEquality reports whether any clause contains an equality literal.
// Used by the engine to distinguish a genuinely saturated (satisfiable)
// state from one where the calculus is incomplete.
func (p *Problem) HasEquality() bool {
	for _, u := range p.units {
		c, ok := u.(*Clause)
		if !ok {
			continue
		}
		for _, l := range c.Literals() {
			if l.IsEquality() {
				return true
			}
		}
	}
	return false
}
