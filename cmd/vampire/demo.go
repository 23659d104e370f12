package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dragon-Hatcher/vampire-lib/pkg/kernel"
	"github.com/Dragon-Hatcher/vampire-lib/pkg/vampire"
)

// demoCmd runs one of the built-in demonstration problems.
var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Run a built-in demonstration problem",
	Long: `Runs one of the built-in problems and prints the result and, on
success, the refutation proof.

Problems:
  resolution    clausal input: P(a), ~P(X) | Q(X), conjecture Q(a)
  socrates      formula input: all humans are mortal, Socrates is human
  transitivity  chained relation: P(a,b), P(b,c), transitivity, conjecture P(a,c)
  equality      ground equational reasoning: a = b, conjecture f(a) = f(b)

Without a name, every problem runs in sequence on one prover, reusing it
between queries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemo,
}

type demo struct {
	name  string
	build func(p *vampire.Prover) (*kernel.Problem, error)
}

var demos = []demo{
	{name: "resolution", build: buildResolution},
	{name: "socrates", build: buildSocrates},
	{name: "transitivity", build: buildTransitivity},
	{name: "equality", build: buildEquality},
}

func runDemo(cmd *cobra.Command, args []string) error {
	selected := demos
	if len(args) == 1 {
		selected = nil
		for _, d := range demos {
			if d.name == args[0] {
				selected = []demo{d}
				break
			}
		}
		if selected == nil {
			names := make([]string, len(demos))
			for i, d := range demos {
				names[i] = d.name
			}
			sort.Strings(names)
			return fmt.Errorf("unknown demo %q (have %s)", args[0], strings.Join(names, ", "))
		}
	}

	p := vampire.New()
	p.SetLogger(logger)
	p.SetTimeLimit(cfg.GetTimeLimit())
	p.SetActivationLimit(cfg.Prover.ActivationLimit)
	p.SetMaxClauseWeight(cfg.Prover.MaxClauseWeight)
	if err := p.SetAlgorithm(cfg.Prover.Algorithm); err != nil {
		return err
	}

	for i, d := range selected {
		if i > 0 {
			// keep registered symbols, drop everything run-scoped
			p.PrepareForNextProof()
			fmt.Println()
		}
		if err := runOne(cmd, p, d); err != nil {
			return err
		}
	}
	return nil
}

func runOne(cmd *cobra.Command, p *vampire.Prover, d demo) error {
	prb, err := d.build(p)
	if err != nil {
		return fmt.Errorf("demo %s: %w", d.name, err)
	}

	res, err := p.Prove(cmd.Context(), prb)
	if err != nil {
		return fmt.Errorf("demo %s: %w", d.name, err)
	}

	stats := p.Statistics()
	fmt.Printf("%% %s: %s (%d activations, %d generated)\n",
		d.name, res, stats.Activations, stats.GeneratedClauses)

	if res == vampire.ResultProof && cfg.Prover.ShowProof {
		if err := p.WriteProof(os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

// buildResolution is the minimal clausal problem: from P(a) and
// ~P(X) | Q(X), prove Q(a).
func buildResolution(p *vampire.Prover) (*kernel.Problem, error) {
	a, err := p.Constant("a")
	if err != nil {
		return nil, err
	}
	pr, err := p.Predicate("p", 1)
	if err != nil {
		return nil, err
	}
	q, err := p.Predicate("q", 1)
	if err != nil {
		return nil, err
	}

	ta, err := p.ConstTerm(a)
	if err != nil {
		return nil, err
	}
	x := p.Var(0)

	pa, err := p.Lit(pr, true, ta)
	if err != nil {
		return nil, err
	}
	npx, err := p.Lit(pr, false, x)
	if err != nil {
		return nil, err
	}
	qx, err := p.Lit(q, true, x)
	if err != nil {
		return nil, err
	}
	nqa, err := p.Lit(q, false, ta)
	if err != nil {
		return nil, err
	}

	return p.Problem(
		p.Axiom(pa),
		p.Axiom(npx, qx),
		p.Conjecture(nqa),
	), nil
}

// buildSocrates is the classic syllogism with formula input: the conjecture
// is negated by preprocessing, not by the caller.
func buildSocrates(p *vampire.Prover) (*kernel.Problem, error) {
	socrates, err := p.Constant("socrates")
	if err != nil {
		return nil, err
	}
	human, err := p.Predicate("human", 1)
	if err != nil {
		return nil, err
	}
	mortal, err := p.Predicate("mortal", 1)
	if err != nil {
		return nil, err
	}

	ts, err := p.ConstTerm(socrates)
	if err != nil {
		return nil, err
	}
	x := p.Var(0)

	humanS, err := p.Lit(human, true, ts)
	if err != nil {
		return nil, err
	}
	humanX, err := p.Lit(human, true, x)
	if err != nil {
		return nil, err
	}
	mortalX, err := p.Lit(mortal, true, x)
	if err != nil {
		return nil, err
	}
	mortalS, err := p.Lit(mortal, true, ts)
	if err != nil {
		return nil, err
	}

	return p.Problem(
		p.AxiomFormula(kernel.Atom(humanS)),
		p.AxiomFormula(kernel.Forall(0, kernel.Imp(kernel.Atom(humanX), kernel.Atom(mortalX)))),
		p.ConjectureFormula(kernel.Atom(mortalS)),
	), nil
}

// buildTransitivity chains a relation through a transitivity axiom.
func buildTransitivity(p *vampire.Prover) (*kernel.Problem, error) {
	rel, err := p.Predicate("lt", 2)
	if err != nil {
		return nil, err
	}
	consts := make([]*kernel.Term, 3)
	for i, name := range []string{"c1", "c2", "c3"} {
		f, err := p.Constant(name)
		if err != nil {
			return nil, err
		}
		consts[i], err = p.ConstTerm(f)
		if err != nil {
			return nil, err
		}
	}

	x, y, z := p.Var(0), p.Var(1), p.Var(2)

	r12, err := p.Lit(rel, true, consts[0], consts[1])
	if err != nil {
		return nil, err
	}
	r23, err := p.Lit(rel, true, consts[1], consts[2])
	if err != nil {
		return nil, err
	}
	nrxy, err := p.Lit(rel, false, x, y)
	if err != nil {
		return nil, err
	}
	nryz, err := p.Lit(rel, false, y, z)
	if err != nil {
		return nil, err
	}
	rxz, err := p.Lit(rel, true, x, z)
	if err != nil {
		return nil, err
	}
	nr13, err := p.Lit(rel, false, consts[0], consts[2])
	if err != nil {
		return nil, err
	}

	return p.Problem(
		p.Axiom(r12),
		p.Axiom(r23),
		p.Axiom(nrxy, nryz, rxz),
		p.Conjecture(nr13),
	), nil
}

// buildEquality exercises ground equational reasoning: from a = b derive
// f(a) = f(b) by rewriting and equality resolution.
func buildEquality(p *vampire.Prover) (*kernel.Problem, error) {
	a, err := p.Constant("ea")
	if err != nil {
		return nil, err
	}
	b, err := p.Constant("eb")
	if err != nil {
		return nil, err
	}
	f, err := p.Function("f", 1)
	if err != nil {
		return nil, err
	}

	ta, err := p.ConstTerm(a)
	if err != nil {
		return nil, err
	}
	tb, err := p.ConstTerm(b)
	if err != nil {
		return nil, err
	}
	fa, err := p.Term(f, ta)
	if err != nil {
		return nil, err
	}
	fb, err := p.Term(f, tb)
	if err != nil {
		return nil, err
	}

	return p.Problem(
		p.Axiom(p.Eq(ta, tb)),
		p.Conjecture(p.Neq(fa, fb)),
	), nil
}
