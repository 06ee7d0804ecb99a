package dispatch

import (
	"portfolio-dispatch/internal/model"
	"portfolio-dispatch/internal/solver"
)

// DecisionModel is the assembled solver submission together with the index
// scheme needed to read a solution back. It is built fresh per optimization
// call and holds no state beyond that call.
type DecisionModel struct {
	Sets    *IndexSets
	Params  *Parameters
	Vars    *Variables
	Problem *solver.Problem
}

// Build translates a system into a solver-ready decision model: scenario-set
// validation, parameter resolution, index sets, variables, constraints,
// objective. The input system is read-only; two Build calls on the same
// system produce structurally identical models.
func Build(sys *model.System) (*DecisionModel, error) {
	scenarios, err := model.NewScenarioSet(sys.Scenarios)
	if err != nil {
		return nil, err
	}

	sets := BuildSets(sys, scenarios)
	params, err := ResolveParameters(sets)
	if err != nil {
		return nil, err
	}

	p := &solver.Problem{}
	vars := declareVariables(p, sets, params)

	buildGeneratorConstraints(p, sets, vars)
	buildBatteryConstraints(p, sets, vars)
	buildBalanceConstraints(p, sets, params, vars)
	assembleObjective(p, sets, params, vars)

	return &DecisionModel{
		Sets:    sets,
		Params:  params,
		Vars:    vars,
		Problem: p,
	}, nil
}
