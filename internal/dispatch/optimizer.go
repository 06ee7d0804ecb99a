package dispatch

import (
	"fmt"

	"portfolio-dispatch/internal/model"
	"portfolio-dispatch/internal/solver"
)

// Optimizer turns a validated system into an optimal dispatch schedule. It
// holds only the solver handle; every Optimize call builds a fresh
// DecisionModel, so concurrent calls on different systems are safe.
type Optimizer struct {
	solver solver.Solver
}

// New returns an optimizer backed by the given solver. Passing nil selects
// the default HiGHS adapter with silent output.
func New(s solver.Solver) *Optimizer {
	if s == nil {
		s = solver.NewHiGHS(solver.Options{})
	}
	return &Optimizer{solver: s}
}

// Optimize validates, builds, solves, and extracts in one synchronous pass.
// Configuration and validation failures surface before any solve is
// attempted; a failed solve yields an error and no schedule, never a
// best-effort result.
func (o *Optimizer) Optimize(sys *model.System) (*Schedule, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}

	dm, err := Build(sys)
	if err != nil {
		return nil, err
	}
	if err := precheckFeasibility(dm); err != nil {
		return nil, err
	}

	out, err := o.solver.Solve(dm.Problem)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	if out.Status != solver.StatusOK {
		return nil, &solver.SolveError{
			Status:               out.Status,
			TerminationCondition: out.TerminationCondition,
		}
	}

	return ExtractSchedule(dm, out), nil
}
