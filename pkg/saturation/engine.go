// Package saturation implements the given-clause proving loop: binary
// resolution, factoring and equality resolution over a passive/active clause
// split, with demodulation by oriented ground unit equalities as forward
// simplification. The loop runs against a session, reads its budget
// baseline, and writes its outcome into the session statistics.
package saturation

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"
	"github.com/Dragon-Hatcher/vampire-lib/pkg/ordering"
	"github.com/Dragon-Hatcher/vampire-lib/pkg/session"
)

// Config bounds a proving run. Zero values mean "no limit".
type Config struct {
	// TimeLimit is measured from the session's budget baseline, not from
	// the moment Run is called.
	TimeLimit time.Duration

	// ActivationLimit caps the number of given-clause activations, the
	// engine's abstract work unit.
	ActivationLimit int

	// MaxClauseWeight discards generated clauses heavier than this. A
	// nonzero value makes the search incomplete: exhausting the clause
	// space then reports RefutationNotFound instead of Satisfiable.
	MaxClauseWeight int

	// Algorithm selects the given-clause strategy: "discount" always
	// activates the lightest passive clause, "otter" interleaves oldest
	// and lightest.
	Algorithm string

	Logger *zap.Logger
}

// DefaultConfig returns the defaults used by the public facade.
func DefaultConfig() Config {
	return Config{
		TimeLimit: 60 * time.Second,
		Algorithm: "discount",
	}
}

// Algorithms lists the recognized saturation strategies.
func Algorithms() []string { return []string{"discount", "otter"} }

type engine struct {
	sess *session.Session
	bank *kernel.Bank
	cfg  Config
	log  *zap.Logger

	passive []*kernel.Clause
	active  []*kernel.Clause
	seen    map[string]bool

	// oriented ground unit equalities, used for demodulation
	rewrites []rewriteRule
	orienter equalityOrienter

	deadline    time.Time
	hasDeadline bool
}

type equalityOrienter interface {
	OrientEquality(*kernel.Literal) bool
}

// rewriteRule is a ground unit equality oriented by the session ordering.
// src is the clause the rule came from; it becomes a premise of every
// clause the rule rewrites.
type rewriteRule struct {
	from, to *kernel.Term
	src      *kernel.Clause
}

// Run executes the saturation loop on an already preprocessed problem. The
// termination reason is returned and also recorded in the session
// statistics; on refutation the empty clause is stored there as well.
// Resource-limit outcomes are reasons, not errors. Errors are reserved for
// misuse: a second concurrent run on the session, or a problem that still
// contains formula units.
func Run(ctx context.Context, sess *session.Session, prb *kernel.Problem, cfg Config) (session.TerminationReason, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = "discount"
	}
	if prb.HasFormulas() {
		return session.ReasonUnknown, fmt.Errorf("problem contains formula units; preprocess before running the search")
	}
	if !sess.BeginProving() {
		return session.ReasonUnknown, fmt.Errorf("a proving run is already active on this session")
	}
	defer sess.EndProving()

	if sess.Ordering() == nil {
		sess.SetOrdering(ordering.NewKBO(sess.Signature(), sess.Bank()))
	}

	e := &engine{
		sess: sess,
		bank: sess.Bank(),
		cfg:  cfg,
		log:  cfg.Logger,
		seen: make(map[string]bool),
	}
	if o, ok := sess.Ordering().(equalityOrienter); ok {
		e.orienter = o
	}
	if cfg.TimeLimit > 0 {
		e.deadline = sess.BudgetStart().Add(cfg.TimeLimit)
		e.hasDeadline = true
	}

	reason := e.saturate(ctx, prb)
	sess.Statistics().TerminationReason = reason
	e.log.Debug("saturation finished",
		zap.Stringer("reason", reason),
		zap.Int("activations", sess.Statistics().Activations),
		zap.Int("generated", sess.Statistics().GeneratedClauses))
	return reason, nil
}

func (e *engine) saturate(ctx context.Context, prb *kernel.Problem) session.TerminationReason {
	stats := e.sess.Statistics()

	for _, u := range prb.Units() {
		c, ok := u.(*kernel.Clause)
		if !ok {
			continue
		}
		e.admit(c)
	}

	for len(e.passive) > 0 {
		if err := ctx.Err(); err != nil {
			return session.ReasonTimeLimit
		}
		if e.hasDeadline && time.Now().After(e.deadline) {
			return session.ReasonTimeLimit
		}
		if e.cfg.ActivationLimit > 0 && stats.Activations >= e.cfg.ActivationLimit {
			return session.ReasonActivationLimit
		}

		given := e.selectGiven()

		// forward simplification: rewrites collected after the clause was
		// admitted still apply to it here
		if s := e.demodulate(given); s != given {
			given = s
			if e.isTautology(given) {
				stats.DiscardedClauses++
				continue
			}
		}
		stats.Activations++

		if given.IsEmpty() {
			stats.Refutation = given
			return session.ReasonRefutation
		}

		e.activate(given)
		if empty := e.generate(given); empty != nil {
			stats.Refutation = empty
			return session.ReasonRefutation
		}
	}

	// Saturated without finding the empty clause. That proves
	// satisfiability only if the calculus was complete for this problem:
	// no clauses discarded by the weight policy and no equality (we run no
	// superposition).
	if stats.SkippedInferences > 0 || prb.HasEquality() {
		return session.ReasonRefutationNotFound
	}
	return session.ReasonSatisfiable
}

// selectGiven removes and returns the next clause to activate.
func (e *engine) selectGiven() *kernel.Clause {
	best := 0
	if e.cfg.Algorithm == "otter" && e.sess.Statistics().Activations%3 == 2 {
		// every third activation, take the oldest clause
		for i := range e.passive {
			if e.passive[i].ID() < e.passive[best].ID() {
				best = i
			}
		}
	} else {
		for i, c := range e.passive {
			if e.clauseWeight(c) < e.clauseWeight(e.passive[best]) {
				best = i
			}
		}
	}
	given := e.passive[best]
	e.passive = append(e.passive[:best], e.passive[best+1:]...)
	return given
}

func (e *engine) activate(c *kernel.Clause) {
	e.active = append(e.active, c)

	// a ground unit equality becomes a rewrite rule for demodulation,
	// oriented greater-to-smaller whichever way that runs
	if e.orienter != nil && c.Len() == 1 {
		l := c.Literals()[0]
		if l.IsEquality() && l.Positive() && isGround(l.Args()[0]) && isGround(l.Args()[1]) {
			lhs, rhs := l.Args()[0], l.Args()[1]
			switch {
			case e.orienter.OrientEquality(l):
				e.rewrites = append(e.rewrites, rewriteRule{from: lhs, to: rhs, src: c})
			case e.sess.Ordering().Greater(rhs, lhs):
				e.rewrites = append(e.rewrites, rewriteRule{from: rhs, to: lhs, src: c})
			}
		}
	}
}

// generate produces all conclusions with the given clause and admits them.
// It returns the empty clause if one was generated, nil otherwise.
func (e *engine) generate(given *kernel.Clause) *kernel.Clause {
	var empty *kernel.Clause
	emit := func(c *kernel.Clause) {
		if c != nil && e.admit(c) && c.IsEmpty() && empty == nil {
			empty = c
		}
	}

	e.factoring(given, emit)
	e.equalityResolution(given, emit)
	for _, other := range e.active {
		e.resolution(given, other, emit)
	}
	return empty
}

// admit runs forward simplification and redundancy checks on c and moves it
// to passive if it survives. It reports whether the clause was kept.
func (e *engine) admit(c *kernel.Clause) bool {
	stats := e.sess.Statistics()

	c = e.demodulate(c)

	if e.cfg.MaxClauseWeight > 0 && e.clauseWeight(c) > e.cfg.MaxClauseWeight {
		stats.SkippedInferences++
		return false
	}
	if e.isTautology(c) {
		stats.DiscardedClauses++
		return false
	}
	key := clauseKey(c)
	if e.seen[key] {
		stats.DiscardedClauses++
		return false
	}
	e.seen[key] = true
	e.passive = append(e.passive, c)
	return true
}

func (e *engine) clauseWeight(c *kernel.Clause) int {
	w := 0
	for _, l := range c.Literals() {
		w++
		for _, a := range l.Args() {
			w += e.bank.Weight(a)
		}
	}
	return w
}

func (e *engine) isTautology(c *kernel.Clause) bool {
	lits := c.Literals()
	for i, l := range lits {
		if l.IsEquality() && l.Positive() && l.Args()[0] == l.Args()[1] {
			return true
		}
		for _, m := range lits[i+1:] {
			if l.Predicate() == m.Predicate() && l.Positive() != m.Positive() &&
				sameArgs(l.Args(), m.Args()) {
				return true
			}
		}
	}
	return false
}

func sameArgs(a, b []*kernel.Term) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// demodulate rewrites c with the collected oriented ground unit equalities.
// Matching is by shared-pointer identity, which is exact for ground left
// sides. Returns c itself when nothing applies; otherwise the new clause
// cites c and every equality clause whose rule fired as premises.
func (e *engine) demodulate(c *kernel.Clause) *kernel.Clause {
	if len(e.rewrites) == 0 {
		return c
	}
	used := &ruleCollector{seen: make(map[*kernel.Clause]bool)}
	changed := false
	lits := make([]*kernel.Literal, c.Len())
	for i, l := range c.Literals() {
		nl, lChanged := e.rewriteLiteral(l, used)
		lits[i] = nl
		changed = changed || lChanged
	}
	if !changed {
		return c
	}
	premises := make([]kernel.Unit, 0, 1+len(used.clauses))
	premises = append(premises, c)
	for _, src := range used.clauses {
		premises = append(premises, src)
	}
	return e.sess.Units().NewClause(lits, kernel.DerivedInference(kernel.RuleSuperposition, premises...))
}

// ruleCollector records, in first-use order, the equality clauses whose
// rewrite rules fired during one demodulation pass.
type ruleCollector struct {
	clauses []*kernel.Clause
	seen    map[*kernel.Clause]bool
}

func (rc *ruleCollector) add(c *kernel.Clause) {
	if rc.seen[c] {
		return
	}
	rc.seen[c] = true
	rc.clauses = append(rc.clauses, c)
}

func (e *engine) rewriteLiteral(l *kernel.Literal, used *ruleCollector) (*kernel.Literal, bool) {
	if len(l.Args()) == 0 {
		return l, false
	}
	changed := false
	args := make([]*kernel.Term, len(l.Args()))
	for i, a := range l.Args() {
		na, aChanged := e.rewriteTerm(a, used)
		args[i] = na
		changed = changed || aChanged
	}
	if !changed {
		return l, false
	}
	nl, err := e.bank.Literal(l.Predicate(), l.Positive(), args...)
	if err != nil {
		return l, false
	}
	return nl, true
}

func (e *engine) rewriteTerm(t *kernel.Term, used *ruleCollector) (*kernel.Term, bool) {
	for _, rw := range e.rewrites {
		if t == rw.from {
			used.add(rw.src)
			return rw.to, true
		}
	}
	if t.IsVar() || len(t.Args()) == 0 {
		return t, false
	}
	changed := false
	args := make([]*kernel.Term, len(t.Args()))
	for i, a := range t.Args() {
		na, aChanged := e.rewriteTerm(a, used)
		args[i] = na
		changed = changed || aChanged
	}
	if !changed {
		return t, false
	}
	nt, err := e.bank.Term(t.Functor(), args...)
	if err != nil {
		return t, false
	}
	return nt, true
}

// resolution generates all binary resolvents between given and other. The
// second clause is renamed apart before unification.
func (e *engine) resolution(given, other *kernel.Clause, emit func(*kernel.Clause)) {
	stats := e.sess.Statistics()
	offset := maxVar(given) + 1

	renamed := make([]*kernel.Literal, other.Len())
	for i, l := range other.Literals() {
		rl, err := renameLiteral(e.bank, l, offset)
		if err != nil {
			return
		}
		renamed[i] = rl
	}

	for i, li := range given.Literals() {
		for j, lj := range renamed {
			if li.Predicate() != lj.Predicate() || li.Positive() == lj.Positive() {
				continue
			}
			sub := make(bindings)
			if !unifyArgs(li.Args(), lj.Args(), sub) {
				continue
			}

			lits := make([]*kernel.Literal, 0, given.Len()+other.Len()-2)
			ok := true
			for k, l := range given.Literals() {
				if k == i {
					continue
				}
				al, err := applyLiteral(e.bank, l, sub)
				if err != nil {
					ok = false
					break
				}
				lits = append(lits, al)
			}
			for k, l := range renamed {
				if k == j || !ok {
					continue
				}
				al, err := applyLiteral(e.bank, l, sub)
				if err != nil {
					ok = false
					break
				}
				lits = append(lits, al)
			}
			if !ok {
				continue
			}
			stats.GeneratedClauses++
			emit(e.sess.Units().NewClause(dedup(lits),
				kernel.DerivedInference(kernel.RuleResolution, given, other)))
		}
	}
}

// factoring generates all factors of the given clause: two literals of the
// same polarity and predicate unified, one removed.
func (e *engine) factoring(given *kernel.Clause, emit func(*kernel.Clause)) {
	stats := e.sess.Statistics()
	lits := given.Literals()
	for i, li := range lits {
		for j := i + 1; j < len(lits); j++ {
			lj := lits[j]
			if li.Predicate() != lj.Predicate() || li.Positive() != lj.Positive() {
				continue
			}
			sub := make(bindings)
			if !unifyArgs(li.Args(), lj.Args(), sub) {
				continue
			}
			out := make([]*kernel.Literal, 0, len(lits)-1)
			ok := true
			for k, l := range lits {
				if k == j {
					continue
				}
				al, err := applyLiteral(e.bank, l, sub)
				if err != nil {
					ok = false
					break
				}
				out = append(out, al)
			}
			if !ok {
				continue
			}
			stats.GeneratedClauses++
			emit(e.sess.Units().NewClause(dedup(out),
				kernel.DerivedInference(kernel.RuleFactoring, given)))
		}
	}
}

// equalityResolution resolves away negative equality literals whose sides
// unify: from C | s != t with mgu(s,t) = sigma derive C sigma.
func (e *engine) equalityResolution(given *kernel.Clause, emit func(*kernel.Clause)) {
	stats := e.sess.Statistics()
	lits := given.Literals()
	for i, li := range lits {
		if !li.IsEquality() || li.Positive() {
			continue
		}
		sub := make(bindings)
		if !unify(li.Args()[0], li.Args()[1], sub) {
			continue
		}
		out := make([]*kernel.Literal, 0, len(lits)-1)
		ok := true
		for k, l := range lits {
			if k == i {
				continue
			}
			al, err := applyLiteral(e.bank, l, sub)
			if err != nil {
				ok = false
				break
			}
			out = append(out, al)
		}
		if !ok {
			continue
		}
		stats.GeneratedClauses++
		emit(e.sess.Units().NewClause(dedup(out),
			kernel.DerivedInference(kernel.RuleEqualityResolution, given)))
	}
}

func dedup(lits []*kernel.Literal) []*kernel.Literal {
	seen := make(map[*kernel.Literal]bool, len(lits))
	out := lits[:0]
	for _, l := range lits {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// clauseKey is a variant-insensitive-enough dedup key: literal ids sorted.
// Variants that differ only in variable naming hash differently, which
// costs completeness of dedup, not soundness.
func clauseKey(c *kernel.Clause) string {
	ids := make([]int, c.Len())
	for i, l := range c.Literals() {
		ids[i] = l.ID()
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
