package session

import "github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"

// TerminationReason is the engine's report of why a proving run ended.
// Resource-limit outcomes are first-class values here, never errors.
type TerminationReason uint8

const (
	ReasonUnknown TerminationReason = iota
	ReasonRefutation
	ReasonSatisfiable
	ReasonTimeLimit
	ReasonActivationLimit
	ReasonMemoryLimit
	ReasonRefutationNotFound
)

func (r TerminationReason) String() string {
	switch r {
	case ReasonUnknown:
		return "unknown"
	case ReasonRefutation:
		return "refutation"
	case ReasonSatisfiable:
		return "satisfiable"
	case ReasonTimeLimit:
		return "time limit"
	case ReasonActivationLimit:
		return "activation limit"
	case ReasonMemoryLimit:
		return "memory limit"
	case ReasonRefutationNotFound:
		return "refutation not found"
	}
	return "unknown"
}

// Statistics is the per-session record the engine writes into: the
// termination reason, the refutation root when one was found, and the
// counters that drive budget-based search heuristics. All of it is
// per-problem state and is cleared by the session's light reset.
type Statistics struct {
	TerminationReason TerminationReason
	Refutation        kernel.Unit

	Activations       int
	GeneratedClauses  int
	DiscardedClauses  int
	SkippedInferences int
}

// NewStatistics returns a zeroed statistics record.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// reset clears everything without reallocating, for the light reset path.
func (s *Statistics) reset() {
	*s = Statistics{}
}
