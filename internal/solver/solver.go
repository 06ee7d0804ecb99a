package solver

import "fmt"

// Status is the coarse result of a solve, independent of any particular
// solver library.
type Status string

const (
	StatusOK         Status = "ok"
	StatusInfeasible Status = "infeasible"
	StatusUnbounded  Status = "unbounded"
	StatusError      Status = "error"
)

// Outcome is the raw solver result: status, the solver's own termination
// condition verbatim, and the column values in problem order. Values is nil
// unless Status is StatusOK.
type Outcome struct {
	Status               Status
	TerminationCondition string
	Values               []float64
	Objective            float64
}

// Solver solves one Problem synchronously. Implementations treat the solve
// as opaque and atomic; timeouts, if any, are imposed through solver options
// by the caller.
type Solver interface {
	Solve(p *Problem) (*Outcome, error)
}

// SolveError reports a solve that produced no usable solution. The external
// solver's status and termination condition are attached verbatim; no
// relaxation, diagnosis, or retry is attempted.
type SolveError struct {
	Status               Status
	TerminationCondition string
	Message              string
}

func (e *SolveError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("solve failed: %s (%s): %s", e.Status, e.TerminationCondition, e.Message)
	}
	return fmt.Sprintf("solve failed: %s (%s)", e.Status, e.TerminationCondition)
}
