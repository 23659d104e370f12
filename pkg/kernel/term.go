package kernel

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is a hash-consed first-order term: a variable or a function symbol
// applied to argument terms. Terms are only created through a Bank, which
// guarantees that structurally equal terms are the same pointer, so equality
// is pointer comparison.
type Term struct {
	id      int
	functor int // -1 for variables
	varIdx  int
	args    []*Term

	// weight cache, valid only for the epoch it was computed in
	weight      int
	weightEpoch uint64
	weightValid bool
}

// IsVar reports whether the term is a variable.
func (t *Term) IsVar() bool { return t.functor < 0 }

// VarIndex returns the variable index; only meaningful when IsVar.
func (t *Term) VarIndex() int { return t.varIdx }

// Functor returns the function symbol index; only meaningful when !IsVar.
func (t *Term) Functor() int { return t.functor }

// Args returns the argument terms. Callers must not mutate the slice.
func (t *Term) Args() []*Term { return t.args }

// ID returns the bank-local identity of the term, usable as a cache key.
func (t *Term) ID() int { return t.id }

type termKey struct {
	functor int
	varIdx  int
	args    string
}

type litKey struct {
	pred     int
	positive bool
	args     string
}

// Bank is the structural-sharing store for one session. It interns terms and
// literals so each distinct structure exists exactly once, and it carries the
// session epoch that stamps every derived-value cache (term weights, literal
// orientation flags). Bumping the epoch invalidates all stamped caches
// without touching the storage itself: a stale stamp is treated as a miss.
type Bank struct {
	sig   *Signature
	terms map[termKey]*Term
	lits  map[litKey]*Literal

	nextTermID int
	nextLitID  int
	epoch      uint64
}

// NewBank returns an empty sharing store tied to the given signature.
func NewBank(sig *Signature) *Bank {
	return &Bank{
		sig:   sig,
		terms: make(map[termKey]*Term),
		lits:  make(map[litKey]*Literal),
		epoch: 1,
	}
}

// Signature returns the signature symbols are resolved against.
func (b *Bank) Signature() *Signature { return b.sig }

// Epoch returns the current cache epoch.
func (b *Bank) Epoch() uint64 { return b.epoch }

// BumpEpoch advances the cache epoch, invalidating every weight and
// orientation cache stamped with an earlier epoch.
func (b *Bank) BumpEpoch() { b.epoch++ }

func argsKey(args []*Term) string {
	if len(args) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(a.id))
	}
	return sb.String()
}

// Var returns the shared term for variable index i.
func (b *Bank) Var(i int) *Term {
	key := termKey{functor: -1, varIdx: i}
	if t, ok := b.terms[key]; ok {
		return t
	}
	t := &Term{id: b.nextTermID, functor: -1, varIdx: i}
	b.nextTermID++
	b.terms[key] = t
	return t
}

// Constant returns the shared 0-arity application of function f.
func (b *Bank) Constant(f int) (*Term, error) {
	return b.Term(f)
}

// Term returns the shared application of function f to args, checking the
// declared arity.
func (b *Bank) Term(f int, args ...*Term) (*Term, error) {
	if f < 0 || f >= b.sig.FunctionCount() {
		return nil, fmt.Errorf("unknown function index %d", f)
	}
	sym := b.sig.Function(f)
	if len(args) != sym.Arity {
		return nil, fmt.Errorf("function %q expects %d arguments, got %d", sym.Name, sym.Arity, len(args))
	}
	key := termKey{functor: f, args: argsKey(args)}
	if t, ok := b.terms[key]; ok {
		return t, nil
	}
	t := &Term{id: b.nextTermID, functor: f, args: append([]*Term(nil), args...)}
	b.nextTermID++
	b.terms[key] = t
	b.sig.bumpFunction(f)
	return t, nil
}

// Weight returns the symbol-count weight of t (1 per function symbol and
// variable occurrence). The result is cached on the term, stamped with the
// current epoch; a stamp from an earlier epoch is recomputed.
func (b *Bank) Weight(t *Term) int {
	if t.weightValid && t.weightEpoch == b.epoch {
		return t.weight
	}
	w := 1
	for _, a := range t.args {
		w += b.Weight(a)
	}
	t.weight = w
	t.weightEpoch = b.epoch
	t.weightValid = true
	return w
}
