package kernel

// Rule identifies the inference that produced a unit. It is a closed
// enumeration; the name lookup is a total mapping.
type Rule uint8

const (
	RuleInput Rule = iota
	RuleNegatedConjecture
	RuleClausify
	RuleResolution
	RuleFactoring
	RuleSuperposition
	RuleEqualityResolution
	RuleEqualityFactoring
	RuleOther
)

func (r Rule) String() string {
	switch r {
	case RuleInput:
		return "input"
	case RuleNegatedConjecture:
		return "negated conjecture"
	case RuleClausify:
		return "clausify"
	case RuleResolution:
		return "resolution"
	case RuleFactoring:
		return "factoring"
	case RuleSuperposition:
		return "superposition"
	case RuleEqualityResolution:
		return "equality resolution"
	case RuleEqualityFactoring:
		return "equality factoring"
	case RuleOther:
		return "other"
	}
	return "unknown"
}

// InputType classifies where a unit ultimately came from.
type InputType uint8

const (
	InputAxiom InputType = iota
	InputConjecture
	InputNegatedConjecture
)

func (t InputType) String() string {
	switch t {
	case InputAxiom:
		return "axiom"
	case InputConjecture:
		return "conjecture"
	case InputNegatedConjecture:
		return "negated_conjecture"
	}
	return "unknown"
}

// Inference records how a unit was derived: the rule, the unit's input
// classification, and the ordered premises. Every unit carries one.
type Inference struct {
	Rule     Rule
	Input    InputType
	Premises []Unit

	// preprocessing marks units built before the arena's preprocessing
	// cutoff; such units are exempt from search-phase garbage collection.
	preprocessing bool
}

// FromPreprocessing reports whether the unit was built during the
// preprocessing phase of its session.
func (inf *Inference) FromPreprocessing() bool { return inf.preprocessing }

// InputInference returns the inference record for an original input unit.
func InputInference(t InputType) Inference {
	return Inference{Rule: RuleInput, Input: t}
}

// DerivedInference returns the inference record for a unit derived from
// premises. The input classification is inherited: a derivation touching the
// negated conjecture stays conjecture-tainted.
func DerivedInference(rule Rule, premises ...Unit) Inference {
	input := InputAxiom
	for _, p := range premises {
		if p.Inference().Input == InputNegatedConjecture {
			input = InputNegatedConjecture
			break
		}
	}
	return Inference{Rule: rule, Input: input, Premises: premises}
}
