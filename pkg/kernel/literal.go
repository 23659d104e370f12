package kernel

import "fmt"

// Literal is a hash-consed (possibly negated) atom. Like terms, literals are
// created only through a Bank, so structural equality is pointer equality.
type Literal struct {
	id       int
	pred     int
	positive bool
	args     []*Term

	// cached equality orientation (left side greater under the current
	// ordering), valid only for the epoch it was computed in
	orientEpoch uint64
	orientValid bool
	leftGreater bool
}

// Predicate returns the predicate symbol index.
func (l *Literal) Predicate() int { return l.pred }

// Positive reports whether the literal is unnegated.
func (l *Literal) Positive() bool { return l.positive }

// Args returns the argument terms. Callers must not mutate the slice.
func (l *Literal) Args() []*Term { return l.args }

// ID returns the bank-local identity of the literal.
func (l *Literal) ID() int { return l.id }

// IsEquality reports whether the literal is an equality or disequality.
func (l *Literal) IsEquality() bool { return l.pred == EqualityPredicate }

// Orientation returns the cached equality orientation for the given epoch.
// ok is false when nothing valid is cached.
func (l *Literal) Orientation(epoch uint64) (leftGreater, ok bool) {
	if l.orientValid && l.orientEpoch == epoch {
		return l.leftGreater, true
	}
	return false, false
}

// SetOrientation caches the equality orientation under the given epoch.
func (l *Literal) SetOrientation(epoch uint64, leftGreater bool) {
	l.orientEpoch = epoch
	l.orientValid = true
	l.leftGreater = leftGreater
}

// Literal returns the shared literal for the given predicate, polarity and
// arguments, checking the declared arity.
func (b *Bank) Literal(pred int, positive bool, args ...*Term) (*Literal, error) {
	if pred < 0 || pred >= b.sig.PredicateCount() {
		return nil, fmt.Errorf("unknown predicate index %d", pred)
	}
	sym := b.sig.Predicate(pred)
	if len(args) != sym.Arity {
		return nil, fmt.Errorf("predicate %q expects %d arguments, got %d", sym.Name, sym.Arity, len(args))
	}
	key := litKey{pred: pred, positive: positive, args: argsKey(args)}
	if l, ok := b.lits[key]; ok {
		return l, nil
	}
	l := &Literal{id: b.nextLitID, pred: pred, positive: positive, args: append([]*Term(nil), args...)}
	b.nextLitID++
	b.lits[key] = l
	b.sig.bumpPredicate(pred)
	return l, nil
}

// Equality returns the shared equality (or disequality) literal l = r.
func (b *Bank) Equality(positive bool, l, r *Term) *Literal {
	lit, err := b.Literal(EqualityPredicate, positive, l, r)
	if err != nil {
		// equality is always registered with arity 2
		panic(err)
	}
	return lit
}

// Complement returns the literal with the opposite polarity.
func (b *Bank) Complement(l *Literal) *Literal {
	c, err := b.Literal(l.pred, !l.positive, l.args...)
	if err != nil {
		panic(err)
	}
	return c
}
