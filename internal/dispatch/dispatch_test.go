package dispatch

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"portfolio-dispatch/internal/model"
	"portfolio-dispatch/internal/solver"

	"github.com/stretchr/testify/require"
)

// Shared fixtures and checkers for the dispatch tests. The builders return
// fresh systems so tests can mutate them freely.

var demandProfile = []float64{60, 90, 40, 70}

func plainGenerator(name string) model.GeneratorSpec {
	return model.GeneratorSpec{
		Name:               name,
		NominalPowerMW:     100,
		VariableCostPerMWh: 50,
		MinUpTimeSteps:     1,
		MinDownTimeSteps:   1,
	}
}

func testBattery(name string) model.BatterySpec {
	socEnd := 0.5
	return model.BatterySpec{
		Name:                name,
		CapacityMWh:         50,
		MaxPowerMW:          25,
		ChargeEfficiency:    0.95,
		DischargeEfficiency: 0.95,
		SocStart:            0.5,
		SocEnd:              &socEnd,
		SocMin:              0,
		SocMax:              1,
	}
}

// singleGenSystem is the reference deterministic case: one generator at
// $50/MWh against a fixed load of [60, 90, 40, 70] over four hourly steps.
func singleGenSystem(t *testing.T, extra ...model.AssetSpec) *model.System {
	t.Helper()
	assets := append([]model.AssetSpec{
		plainGenerator("gen1"),
		model.LoadSpec{Name: "site", Type: model.LoadFixed},
	}, extra...)
	portfolio, err := model.NewPortfolio(assets...)
	require.NoError(t, err)
	return &model.System{
		Portfolio: portfolio,
		Scenarios: []model.Scenario{{
			LoadProfiles: map[string][]float64{"site": demandProfile},
		}},
		Grid: model.TimeGrid{StepHours: 1, Steps: 4},
	}
}

// twoScenarioSystem has one generator, one load, and one market over two
// equally likely scenarios with different prices.
func twoScenarioSystem(t *testing.T, stageFixed bool) *model.System {
	t.Helper()
	portfolio, err := model.NewPortfolio(
		plainGenerator("gen1"),
		model.LoadSpec{Name: "site", Type: model.LoadFixed},
	)
	require.NoError(t, err)
	return &model.System{
		Portfolio: portfolio,
		Markets: []model.MarketSpec{{
			Name:        "da",
			MaxVolumeMW: 20,
			Direction:   model.TradeBoth,
			StageFixed:  stageFixed,
		}},
		Scenarios: []model.Scenario{
			{
				Name:         "high",
				Probability:  0.5,
				LoadProfiles: map[string][]float64{"site": demandProfile},
				MarketPrices: map[string][]float64{"da": {80, 90, 85, 95}},
			},
			{
				Name:         "low",
				Probability:  0.5,
				LoadProfiles: map[string][]float64{"site": demandProfile},
				MarketPrices: map[string][]float64{"da": {20, 25, 15, 30}},
			},
		},
		Grid: model.TimeGrid{StepHours: 1, Steps: 4},
	}
}

// rowViolations returns the names of constraint rows the point violates.
func rowViolations(p *solver.Problem, values []float64, tol float64) []string {
	var out []string
	activities := p.Activities(values)
	for i, r := range p.Rows {
		a := activities[i]
		if a < r.Lower-tol || a > r.Upper+tol {
			out = append(out, r.Name)
		}
	}
	return out
}

// violations returns every bound, integrality, and row violation at a point.
func violations(p *solver.Problem, values []float64, tol float64) []string {
	var out []string
	for i, c := range p.Cols {
		v := values[i]
		if v < c.Lower-tol || v > c.Upper+tol {
			out = append(out, fmt.Sprintf("bounds %s", c.Name))
		}
		if c.Type == solver.BinaryVar && math.Abs(v-math.Round(v)) > tol {
			out = append(out, fmt.Sprintf("integrality %s", c.Name))
		}
	}
	return append(out, rowViolations(p, values, tol)...)
}

func anyWithPrefix(names []string, prefix string) bool {
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			return true
		}
	}
	return false
}

// stubSolver returns a canned outcome and records the submitted problem.
type stubSolver struct {
	outcome *solver.Outcome
	err     error
	got     *solver.Problem
}

func (s *stubSolver) Solve(p *solver.Problem) (*solver.Outcome, error) {
	s.got = p
	return s.outcome, s.err
}
