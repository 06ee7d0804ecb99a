package solver

import (
	"fmt"

	highs "github.com/bartolsthoorn/gohighs/highs"
)

// Options configures the HiGHS adapter. The zero value is a silent solve
// with no time limit.
type Options struct {
	// TimeLimitSeconds caps solver wall-clock time. 0 means no limit.
	TimeLimitSeconds float64
	// Verbose enables HiGHS log output.
	Verbose bool
}

// HiGHS solves problems with the HiGHS solver through the gohighs bindings.
type HiGHS struct {
	opts Options
}

func NewHiGHS(opts Options) *HiGHS {
	return &HiGHS{opts: opts}
}

// Solve converts the problem to the gohighs model shape and runs it. Solver
// statuses other than optimal/infeasible/unbounded come back as StatusError
// with the HiGHS status verbatim in the termination condition.
func (h *HiGHS) Solve(p *Problem) (*Outcome, error) {
	m := &highs.Model{}

	m.ColCosts = make([]float64, len(p.Cols))
	m.ColLower = make([]float64, len(p.Cols))
	m.ColUpper = make([]float64, len(p.Cols))
	for i, c := range p.Cols {
		m.ColCosts[i] = c.Cost
		m.ColLower[i] = c.Lower
		m.ColUpper[i] = c.Upper
	}

	// Only pass integrality when the problem actually has binaries, so pure
	// LPs stay LPs.
	if p.HasIntegrality() {
		m.VarTypes = make([]highs.VariableType, len(p.Cols))
		for i, c := range p.Cols {
			if c.Type == BinaryVar {
				m.VarTypes[i] = highs.Integer
			} else {
				m.VarTypes[i] = highs.Continuous
			}
		}
	}

	for _, r := range p.Rows {
		cols := make([]int, len(r.Coeffs))
		vals := make([]float64, len(r.Coeffs))
		for i, nz := range r.Coeffs {
			cols[i] = nz.Col
			vals[i] = nz.Val
		}
		m.AddSparseRow(r.Lower, cols, vals, r.Upper)
	}

	opts := []highs.SolveOption{highs.WithOutput(h.opts.Verbose)}
	if h.opts.TimeLimitSeconds > 0 {
		opts = append(opts, highs.WithTimeLimit(h.opts.TimeLimitSeconds))
	}

	sol, err := m.Solve(opts...)
	if err != nil {
		return nil, fmt.Errorf("highs solve: %w", err)
	}

	switch sol.Status {
	case highs.ModelStatusOptimal:
		values := make([]float64, len(p.Cols))
		copy(values, sol.ColValues)
		return &Outcome{
			Status:               StatusOK,
			TerminationCondition: "optimal",
			Values:               values,
			Objective:            sol.Objective,
		}, nil
	case highs.ModelStatusInfeasible:
		return &Outcome{Status: StatusInfeasible, TerminationCondition: "infeasible"}, nil
	case highs.ModelStatusUnbounded:
		return &Outcome{Status: StatusUnbounded, TerminationCondition: "unbounded"}, nil
	default:
		return &Outcome{
			Status:               StatusError,
			TerminationCondition: fmt.Sprintf("%v", sol.Status),
		}, nil
	}
}
