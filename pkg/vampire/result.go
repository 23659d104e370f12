package vampire

import "github.com/Dragon-Hatcher/vampire-lib/pkg/session"

// Result is the outcome of a Prove call. Resource-limit outcomes are values
// of this type, never errors: hitting a time limit is an answer about the
// problem, not a failure of the prover.
type Result uint8

const (
	ResultUnknown Result = iota
	ResultProof
	ResultSatisfiable
	ResultTimeout
	ResultMemoryLimit
	ResultIncomplete
)

func (r Result) String() string {
	switch r {
	case ResultProof:
		return "proof"
	case ResultSatisfiable:
		return "satisfiable"
	case ResultTimeout:
		return "timeout"
	case ResultMemoryLimit:
		return "memory limit"
	case ResultIncomplete:
		return "incomplete"
	}
	return "unknown"
}

// resultOf collapses the engine's termination reasons into the public
// outcome: both budget exhaustions report Timeout, and a saturated search
// that ran with an incomplete strategy reports Incomplete.
func resultOf(reason session.TerminationReason) Result {
	switch reason {
	case session.ReasonRefutation:
		return ResultProof
	case session.ReasonSatisfiable:
		return ResultSatisfiable
	case session.ReasonTimeLimit, session.ReasonActivationLimit:
		return ResultTimeout
	case session.ReasonMemoryLimit:
		return ResultMemoryLimit
	case session.ReasonRefutationNotFound:
		return ResultIncomplete
	}
	return ResultUnknown
}
