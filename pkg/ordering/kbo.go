// Package ordering implements the Knuth-Bendix term ordering the engine
// uses to orient inferences. A KBO is built once per proving run; its
// precedence comes from the signature's usage counters, so it must be
// constructed after the problem is built and is discarded by the session
// resets.
package ordering

import (
	"sort"

	"github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"
)

type comparison int8

const (
	incomparable comparison = iota
	less
	greater
	equal
)

type pairKey struct {
	s, t int
}

type cacheEntry struct {
	epoch  uint64
	result comparison
}

// KBO is a Knuth-Bendix ordering over a session's shared terms. Pairwise
// comparison results are cached; every entry is stamped with the bank epoch
// active when it was computed, and an entry with a stale stamp is treated as
// a miss rather than being eagerly cleared.
type KBO struct {
	bank     *kernel.Bank
	funcPrec []int

	cache map[pairKey]cacheEntry
}

// NewKBO builds a KBO with the default precedence: function symbols sorted
// by ascending usage frequency, rarer symbols greater, ties broken by
// registration order. This matches the convention that frequently used
// symbols sit low in the precedence so rewriting moves toward them.
func NewKBO(sig *kernel.Signature, bank *kernel.Bank) *KBO {
	n := sig.FunctionCount()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ua, ub := sig.FunctionUsage(order[a]), sig.FunctionUsage(order[b])
		if ua != ub {
			return ua > ub
		}
		return order[a] < order[b]
	})
	prec := make([]int, n)
	for rank, f := range order {
		prec[f] = rank
	}
	return &KBO{
		bank:     bank,
		funcPrec: prec,
		cache:    make(map[pairKey]cacheEntry),
	}
}

// Greater reports whether s is strictly greater than t under the ordering.
func (o *KBO) Greater(s, t *kernel.Term) bool {
	return o.compare(s, t) == greater
}

func (o *KBO) compare(s, t *kernel.Term) comparison {
	if s == t {
		return equal
	}

	key := pairKey{s: s.ID(), t: t.ID()}
	if e, ok := o.cache[key]; ok && e.epoch == o.bank.Epoch() {
		return e.result
	}

	res := o.compareUncached(s, t)
	o.cache[key] = cacheEntry{epoch: o.bank.Epoch(), result: res}
	return res
}

func (o *KBO) compareUncached(s, t *kernel.Term) comparison {
	// Variables are only comparable to terms that contain them.
	if s.IsVar() {
		if occurs(s, t) {
			return less
		}
		return incomparable
	}
	if t.IsVar() {
		if occurs(t, s) {
			return greater
		}
		return incomparable
	}

	// KBO variable condition: s >= t requires every variable of t to occur
	// at least as often in s.
	sVars := varCounts(s)
	tVars := varCounts(t)

	sw, tw := o.bank.Weight(s), o.bank.Weight(t)
	switch {
	case sw > tw:
		if dominates(sVars, tVars) {
			return greater
		}
		return incomparable
	case sw < tw:
		if dominates(tVars, sVars) {
			return less
		}
		return incomparable
	}

	// Equal weights: precedence, then lexicographic on arguments.
	sp, tp := o.funcPrec[s.Functor()], o.funcPrec[t.Functor()]
	switch {
	case sp > tp:
		if dominates(sVars, tVars) {
			return greater
		}
		return incomparable
	case sp < tp:
		if dominates(tVars, sVars) {
			return less
		}
		return incomparable
	}

	// Same functor: first differing argument decides.
	sa, ta := s.Args(), t.Args()
	for i := range sa {
		if sa[i] == ta[i] {
			continue
		}
		switch o.compare(sa[i], ta[i]) {
		case greater:
			if dominates(sVars, tVars) {
				return greater
			}
			return incomparable
		case less:
			if dominates(tVars, sVars) {
				return less
			}
			return incomparable
		default:
			return incomparable
		}
	}
	return equal
}

func occurs(v, t *kernel.Term) bool {
	if t == v {
		return true
	}
	for _, a := range t.Args() {
		if occurs(v, a) {
			return true
		}
	}
	return false
}

func varCounts(t *kernel.Term) map[int]int {
	counts := make(map[int]int)
	var walk func(*kernel.Term)
	walk = func(t *kernel.Term) {
		if t.IsVar() {
			counts[t.VarIndex()]++
			return
		}
		for _, a := range t.Args() {
			walk(a)
		}
	}
	walk(t)
	return counts
}

func dominates(a, b map[int]int) bool {
	for v, n := range b {
		if a[v] < n {
			return false
		}
	}
	return true
}

// OrientEquality reports whether the left side of an equality literal is
// greater than the right, caching the answer on the literal stamped with the
// current epoch.
func (o *KBO) OrientEquality(l *kernel.Literal) bool {
	if lg, ok := l.Orientation(o.bank.Epoch()); ok {
		return lg
	}
	lg := o.Greater(l.Args()[0], l.Args()[1])
	l.SetOrientation(o.bank.Epoch(), lg)
	return lg
}
