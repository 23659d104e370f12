package kernel

import (
	"fmt"
	"strings"
)

// TermString renders a term using the signature's symbol names. Variables
// print as X0, X1, ...
func (s *Signature) TermString(t *Term) string {
	if t.IsVar() {
		return fmt.Sprintf("X%d", t.VarIndex())
	}
	name := s.Function(t.Functor()).Name
	if len(t.Args()) == 0 {
		return name
	}
	parts := make([]string, len(t.Args()))
	for i, a := range t.Args() {
		parts[i] = s.TermString(a)
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}

// LiteralString renders a literal. Equality prints infix (= / !=),
// other predicates prefix with ~ for negation.
func (s *Signature) LiteralString(l *Literal) string {
	if l.IsEquality() {
		op := " = "
		if !l.Positive() {
			op = " != "
		}
		return s.TermString(l.Args()[0]) + op + s.TermString(l.Args()[1])
	}
	name := s.Predicate(l.Predicate()).Name
	var sb strings.Builder
	if !l.Positive() {
		sb.WriteByte('~')
	}
	sb.WriteString(name)
	if len(l.Args()) > 0 {
		sb.WriteByte('(')
		for i, a := range l.Args() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(s.TermString(a))
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// ClauseString renders a clause as a disjunction; the empty clause renders
// as $false.
func (s *Signature) ClauseString(c *Clause) string {
	if c.IsEmpty() {
		return "$false"
	}
	parts := make([]string, c.Len())
	for i, l := range c.Literals() {
		parts[i] = s.LiteralString(l)
	}
	return strings.Join(parts, " | ")
}

// FormulaString renders a formula with fully parenthesized connectives.
func (s *Signature) FormulaString(f *Formula) string {
	switch f.Kind() {
	case FormulaAtom:
		return s.LiteralString(f.Literal())
	case FormulaNot:
		return "~(" + s.FormulaString(f.Sub()[0]) + ")"
	case FormulaAnd:
		return s.joinFormulas(f.Sub(), " & ")
	case FormulaOr:
		return s.joinFormulas(f.Sub(), " | ")
	case FormulaImp:
		return "(" + s.FormulaString(f.Sub()[0]) + " => " + s.FormulaString(f.Sub()[1]) + ")"
	case FormulaIff:
		return "(" + s.FormulaString(f.Sub()[0]) + " <=> " + s.FormulaString(f.Sub()[1]) + ")"
	case FormulaForall:
		return fmt.Sprintf("(![X%d]: %s)", f.BoundVar(), s.FormulaString(f.Sub()[0]))
	case FormulaExists:
		return fmt.Sprintf("(?[X%d]: %s)", f.BoundVar(), s.FormulaString(f.Sub()[0]))
	}
	return "?"
}

func (s *Signature) joinFormulas(fs []*Formula, sep string) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = s.FormulaString(f)
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// UnitString renders a unit's content, clause or formula.
func (s *Signature) UnitString(u Unit) string {
	switch v := u.(type) {
	case *Clause:
		return s.ClauseString(v)
	case *FormulaUnit:
		return s.FormulaString(v.Formula())
	}
	return "?"
}
