// Package session owns the mutable state a proving run depends on and the
// two reset operations that keep independent runs from contaminating each
// other. The original design kept this state in process-wide globals; here
// it is an explicit Session value the caller owns, which is also what makes
// the one-active-session-per-process assumption visible in the API.
package session

import (
	"sync/atomic"
	"time"

	"github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"
	"github.com/Dragon-Hatcher/vampire-lib/pkg/proof"
)

// TermOrdering is the ordering contract the engine needs: a strict partial
// order on shared terms. The session holds at most one; it is built lazily
// per run and unset by every reset so each run establishes its own.
type TermOrdering interface {
	Greater(s, t *kernel.Term) bool
}

// Session is the process-wide reasoning state: symbol table, structural
// sharing store, unit arena, ordering, statistics, proof cache, budget
// baseline, and the proving guard. One Session supports one active proving
// run at a time; it is not safe for concurrent use.
type Session struct {
	sig    *kernel.Signature
	bank   *kernel.Bank
	units  *kernel.Units
	stats  *Statistics
	ord    TermOrdering
	proofs *proof.Store

	budgetStart time.Time
	proving     atomic.Bool
}

// New returns a fresh session, equivalent to process start: empty signature
// with equality pre-registered, empty sharing store, empty arena, zeroed
// statistics, budget baseline at now.
func New() *Session {
	sig := kernel.NewSignature()
	return &Session{
		sig:         sig,
		bank:        kernel.NewBank(sig),
		units:       kernel.NewUnits(),
		stats:       NewStatistics(),
		proofs:      proof.NewStore(),
		budgetStart: time.Now(),
	}
}

// Signature returns the session's symbol table.
func (s *Session) Signature() *kernel.Signature { return s.sig }

// Bank returns the session's structural-sharing store.
func (s *Session) Bank() *kernel.Bank { return s.bank }

// Units returns the session's unit arena.
func (s *Session) Units() *kernel.Units { return s.units }

// Statistics returns the session's statistics record.
func (s *Session) Statistics() *Statistics { return s.stats }

// Proofs returns the session's extraction cache.
func (s *Session) Proofs() *proof.Store { return s.proofs }

// Ordering returns the current term ordering, or nil if none is set.
func (s *Session) Ordering() TermOrdering { return s.ord }

// SetOrdering fixes the term ordering for the current run.
func (s *Session) SetOrdering(o TermOrdering) { s.ord = o }

// BudgetStart returns the baseline from which the current run's time budget
// is measured.
func (s *Session) BudgetStart() time.Time { return s.budgetStart }

// Elapsed returns the time spent since the budget baseline.
func (s *Session) Elapsed() time.Duration { return time.Since(s.budgetStart) }

// BeginProving acquires the proving guard. It fails if a run is already
// active on this session; a guard left held by an abnormal termination is
// released by PrepareForNextProof.
func (s *Session) BeginProving() bool {
	return s.proving.CompareAndSwap(false, true)
}

// EndProving releases the proving guard.
func (s *Session) EndProving() {
	s.proving.Store(false)
}

// PrepareForNextProof is the light reset: it clears every piece of state
// whose validity is tied to the previous run while keeping the accumulated
// symbol table, so symbol indices from earlier registration calls stay
// valid. After it returns, the next run cannot observe artifacts of the
// previous one. The whole sequence always runs to completion; there is no
// partial-reset state, and none of the steps can fail.
func (s *Session) PrepareForNextProof() {
	// Stale termination state would make the next run report a result it
	// never computed; stale counters corrupt its budget heuristics.
	s.stats.reset()

	// Clauses built during the next run's preprocessing must be classified
	// as preprocessing-phase again, or they become eligible for search-phase
	// garbage collection and silently vanish mid-run.
	s.units.RearmPreprocessing()

	// The next run establishes its own ordering.
	s.ord = nil

	// Invalidate every cache stamped against the previous epoch: term
	// weights, equality orientations, pairwise comparisons. The storage is
	// not cleared; a stale stamp is simply a miss.
	s.bank.BumpEpoch()

	// Default precedence is derived from usage frequency; carrying counts
	// from the previous problem would bias the next ordering.
	s.sig.ResetUsage()

	// A run that died abnormally may have left the guard held, which would
	// block every future run on this session.
	s.proving.Store(false)

	// Time limits for the next run are measured from this moment, not from
	// the previous run's start.
	s.budgetStart = time.Now()
}

// Reset is the full reset: everything PrepareForNextProof does, plus
// wholesale replacement of the symbol table, sharing store, unit arena,
// statistics, and the proof cache. Afterward the session is observably
// indistinguishable from a fresh New(): symbol names may be reused and
// memory accumulated across runs is released. Units and problems the caller
// still holds are untouched but must not be reused against the new session;
// they were built against the discarded symbol table.
func (s *Session) Reset() {
	s.PrepareForNextProof()

	sig := kernel.NewSignature()
	s.sig = sig
	s.bank = kernel.NewBank(sig)
	s.units = kernel.NewUnits()
	s.stats = NewStatistics()
	s.proofs = proof.NewStore()
	s.budgetStart = time.Now()
}
