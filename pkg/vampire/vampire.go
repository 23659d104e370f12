// Package vampire is the public face of the prover: symbol registration,
// term, literal and formula builders, problem assembly, the Prove entry
// point, proof extraction, and the two reset operations that let one Prover
// answer a sequence of independent queries.
//
// A Prover wraps one session and is not safe for concurrent use. The
// expected call pattern is: register symbols, build units, Prove, read the
// proof, then PrepareForNextProof before the next query, or Reset to also
// discard the accumulated symbol table.
package vampire

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/Dragon-Hatcher/vampire-lib/pkg/clausify"
	"github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"
	"github.com/Dragon-Hatcher/vampire-lib/pkg/proof"
	"github.com/Dragon-Hatcher/vampire-lib/pkg/saturation"
	"github.com/Dragon-Hatcher/vampire-lib/pkg/session"
)

// Prover owns a session and a search configuration. One Prover answers one
// query at a time; state from a finished query stays readable until the next
// reset.
type Prover struct {
	sess *session.Session
	cfg  saturation.Config
}

// New returns a Prover with a fresh session and the default search
// configuration.
func New() *Prover {
	return &Prover{
		sess: session.New(),
		cfg:  saturation.DefaultConfig(),
	}
}

// Session exposes the underlying session for callers that need direct access
// to the symbol table, unit arena or statistics.
func (p *Prover) Session() *session.Session { return p.sess }

// SetLogger installs a logger for the search loop. Nil silences it.
func (p *Prover) SetLogger(log *zap.Logger) { p.cfg.Logger = log }

// SetTimeLimit bounds each Prove call. The budget is measured from the
// session's baseline, which the resets move to "now"; zero means no limit.
func (p *Prover) SetTimeLimit(d time.Duration) { p.cfg.TimeLimit = d }

// SetActivationLimit caps given-clause activations per Prove call; zero
// means no limit.
func (p *Prover) SetActivationLimit(n int) { p.cfg.ActivationLimit = n }

// SetMaxClauseWeight discards generated clauses heavier than w. Nonzero
// values trade completeness for speed; an exhausted search then reports
// ResultIncomplete instead of ResultSatisfiable.
func (p *Prover) SetMaxClauseWeight(w int) { p.cfg.MaxClauseWeight = w }

// SetAlgorithm selects the given-clause strategy by name.
func (p *Prover) SetAlgorithm(name string) error {
	for _, a := range saturation.Algorithms() {
		if a == name {
			p.cfg.Algorithm = name
			return nil
		}
	}
	return fmt.Errorf("unknown saturation algorithm %q (have %v)", name, saturation.Algorithms())
}

// Function registers a function symbol and returns its index. Re-registering
// the same name with the same arity returns the existing index.
func (p *Prover) Function(name string, arity int) (int, error) {
	return p.sess.Signature().AddFunction(name, arity)
}

// Constant registers a 0-arity function symbol.
func (p *Prover) Constant(name string) (int, error) {
	return p.sess.Signature().AddFunction(name, 0)
}

// Predicate registers a predicate symbol and returns its index. Equality is
// always present and needs no registration.
func (p *Prover) Predicate(name string, arity int) (int, error) {
	return p.sess.Signature().AddPredicate(name, arity)
}

// Var returns the shared term for variable index i.
func (p *Prover) Var(i int) *kernel.Term { return p.sess.Bank().Var(i) }

// Term builds the shared application of function f to args.
func (p *Prover) Term(f int, args ...*kernel.Term) (*kernel.Term, error) {
	return p.sess.Bank().Term(f, args...)
}

// ConstTerm builds the shared 0-arity application of function f.
func (p *Prover) ConstTerm(f int) (*kernel.Term, error) {
	return p.sess.Bank().Constant(f)
}

// Lit builds a shared literal for predicate pred with the given polarity.
func (p *Prover) Lit(pred int, positive bool, args ...*kernel.Term) (*kernel.Literal, error) {
	return p.sess.Bank().Literal(pred, positive, args...)
}

// Eq builds the equality literal l = r.
func (p *Prover) Eq(l, r *kernel.Term) *kernel.Literal {
	return p.sess.Bank().Equality(true, l, r)
}

// Neq builds the disequality literal l != r.
func (p *Prover) Neq(l, r *kernel.Term) *kernel.Literal {
	return p.sess.Bank().Equality(false, l, r)
}

// Neg returns the literal with the opposite polarity.
func (p *Prover) Neg(l *kernel.Literal) *kernel.Literal {
	return p.sess.Bank().Complement(l)
}

// Axiom wraps literals as an input clause classified as an axiom.
func (p *Prover) Axiom(lits ...*kernel.Literal) *kernel.Clause {
	return p.sess.Units().NewClause(lits, kernel.InputInference(kernel.InputAxiom))
}

// Conjecture wraps literals as an input clause of the (already negated)
// conjecture. Clausal conjectures arrive pre-negated, so the clause is
// classified as negated conjecture directly; everything derived from it
// inherits the classification.
func (p *Prover) Conjecture(lits ...*kernel.Literal) *kernel.Clause {
	return p.sess.Units().NewClause(lits, kernel.InputInference(kernel.InputNegatedConjecture))
}

// AxiomFormula wraps a formula as an input unit classified as an axiom.
func (p *Prover) AxiomFormula(f *kernel.Formula) *kernel.FormulaUnit {
	return p.sess.Units().NewFormula(f, kernel.InputInference(kernel.InputAxiom))
}

// ConjectureFormula records f as the conjecture and returns the negated
// formula unit that actually enters the refutation search. The original
// conjecture stays in the derivation as the premise of the negation step, so
// extracted proofs show what was conjectured, not only its negation.
func (p *Prover) ConjectureFormula(f *kernel.Formula) *kernel.FormulaUnit {
	orig := p.sess.Units().NewFormula(f, kernel.InputInference(kernel.InputConjecture))
	return p.sess.Units().NewFormula(kernel.Not(f), kernel.Inference{
		Rule:     kernel.RuleNegatedConjecture,
		Input:    kernel.InputNegatedConjecture,
		Premises: []kernel.Unit{orig},
	})
}

// Problem assembles units into a problem the caller owns.
func (p *Prover) Problem(units ...kernel.Unit) *kernel.Problem {
	return kernel.NewProblem(units...)
}

// Prove clausifies the problem and runs the saturation loop under the
// configured limits. The outcome is always a Result; errors are reserved for
// misuse (a malformed problem, or a second concurrent run on the session).
// After ResultProof, Refutation and ExtractProof yield the derivation.
func (p *Prover) Prove(ctx context.Context, prb *kernel.Problem) (Result, error) {
	if err := clausify.Preprocess(p.sess, prb); err != nil {
		return ResultUnknown, fmt.Errorf("preprocess: %w", err)
	}
	reason, err := saturation.Run(ctx, p.sess, prb, p.cfg)
	if err != nil {
		return ResultUnknown, err
	}
	return resultOf(reason), nil
}

// Refutation returns the empty clause of the last successful Prove, or nil.
func (p *Prover) Refutation() kernel.Unit {
	return p.sess.Statistics().Refutation
}

// ExtractProof flattens the derivation of the last refutation into steps in
// premises-first order, ending with the empty clause. Extractions are cached
// per refutation in the session, so repeated calls do not re-walk the graph.
// Without a refutation it returns nil.
func (p *Prover) ExtractProof() []proof.Step {
	root := p.Refutation()
	if root == nil {
		return nil
	}
	if steps, ok := p.sess.Proofs().Get(root.ID()); ok {
		return steps
	}
	steps := proof.Extract(root)
	p.sess.Proofs().Put(root.ID(), steps)
	return steps
}

// WriteProof renders the last proof to w, one numbered step per line.
func (p *Prover) WriteProof(w io.Writer) error {
	return proof.Write(w, p.sess.Signature(), p.ExtractProof())
}

// ProofString renders the last proof as a string; empty without a proof.
func (p *Prover) ProofString() string {
	return proof.Format(p.sess.Signature(), p.ExtractProof())
}

// Statistics returns the session's statistics record for the last run.
func (p *Prover) Statistics() *session.Statistics {
	return p.sess.Statistics()
}

// PrepareForNextProof clears per-query state while keeping registered
// symbols valid, so the next query can reuse the indices it already holds.
// It also restarts the time budget and releases the proving guard.
func (p *Prover) PrepareForNextProof() {
	p.sess.PrepareForNextProof()
}

// Reset discards everything, symbol table included. Afterwards the Prover is
// indistinguishable from a fresh New(); previously returned terms, literals
// and units must not be used with it again.
func (p *Prover) Reset() {
	p.sess.Reset()
}
