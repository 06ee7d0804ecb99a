package dispatch

import (
	"testing"

	"portfolio-dispatch/internal/solver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcomeFor(dm *DecisionModel, values []float64) *solver.Outcome {
	return &solver.Outcome{
		Status:               solver.StatusOK,
		TerminationCondition: "optimal",
		Values:               values,
		Objective:            dm.Problem.ObjectiveValue(values),
	}
}

func TestExtractSchedule_DropsScenarioDimensionWhenDeterministic(t *testing.T) {
	dm, err := Build(singleGenSystem(t))
	require.NoError(t, err)

	values := make([]float64, len(dm.Problem.Cols))
	for tt, p := range demandProfile {
		values[dm.Vars.GenPower[0][0][tt]] = p
	}

	sched := ExtractSchedule(dm, outcomeFor(dm, values))

	gen := sched.Generators["gen1"]
	require.NotNil(t, gen.Power)
	assert.Nil(t, gen.Power.Scenarios, "single-scenario output must not carry a scenario dimension")
	assert.Equal(t, demandProfile, gen.Power.Series())

	// No commitment binaries were declared, so no status tables either.
	assert.Nil(t, gen.Status)
	assert.Nil(t, gen.Startup)
	assert.Nil(t, gen.Shutdown)
}

func TestExtractSchedule_KeepsScenarioDimensionWhenStochastic(t *testing.T) {
	dm, err := Build(twoScenarioSystem(t, false))
	require.NoError(t, err)

	values := make([]float64, len(dm.Problem.Cols))
	for s := 0; s < 2; s++ {
		for tt := 0; tt < 4; tt++ {
			values[dm.Vars.GenPower[0][s][tt]] = float64(10 * (s + 1))
		}
	}

	sched := ExtractSchedule(dm, outcomeFor(dm, values))

	gen := sched.Generators["gen1"]
	assert.Equal(t, []string{"high", "low"}, gen.Power.Scenarios)

	high, ok := gen.Power.SeriesFor("high")
	require.True(t, ok)
	assert.Equal(t, []float64{10, 10, 10, 10}, high)
	low, ok := gen.Power.SeriesFor("low")
	require.True(t, ok)
	assert.Equal(t, []float64{20, 20, 20, 20}, low)

	_, ok = gen.Power.SeriesFor("absent")
	assert.False(t, ok)
}

func TestExtractSchedule_BatteryNetPower(t *testing.T) {
	dm := batteryOnlySystem(t, testBattery("b1"))

	values := batteryPoint(dm,
		[]float64{10, 0, 0, 0},
		[]float64{0, 9.025, 0, 0},
		[]float64{34.5, 25, 25, 25},
		[]float64{1, 0, 0, 0},
	)
	sched := ExtractSchedule(dm, outcomeFor(dm, values))

	bat := sched.Batteries["b1"]
	// Net power is discharge - charge.
	assert.InDeltaSlice(t, []float64{-10, 9.025, 0, 0}, bat.NetPower.Series(), 1e-9)
	assert.InDeltaSlice(t, []float64{34.5, 25, 25, 25}, bat.StateOfCharge.Series(), 1e-9)
}

func TestExtractSchedule_StageFixedVolumesIdenticalAcrossScenarios(t *testing.T) {
	dm, err := Build(twoScenarioSystem(t, true))
	require.NoError(t, err)

	values := make([]float64, len(dm.Problem.Cols))
	for tt := 0; tt < 4; tt++ {
		values[dm.Vars.MktBuy[0][0][tt]] = float64(tt + 1)
	}

	sched := ExtractSchedule(dm, outcomeFor(dm, values))
	buy := sched.Markets["da"].BuyVolume

	high, _ := buy.SeriesFor("high")
	low, _ := buy.SeriesFor("low")
	assert.Equal(t, high, low, "stage-fixed volumes must be identical across scenarios")
	assert.Equal(t, []float64{1, 2, 3, 4}, high)
}

func TestExtractSchedule_ScenarioCosts(t *testing.T) {
	dm, err := Build(twoScenarioSystem(t, false))
	require.NoError(t, err)

	values := make([]float64, len(dm.Problem.Cols))
	for s := 0; s < 2; s++ {
		for tt := 0; tt < 4; tt++ {
			values[dm.Vars.GenPower[0][s][tt]] = demandProfile[tt]
		}
	}

	sched := ExtractSchedule(dm, outcomeFor(dm, values))

	// Both scenarios dispatch the generator identically and ignore the
	// market, so each unweighted scenario cost is 50 * 260 = 13000 and the
	// weighted objective matches.
	assert.InDelta(t, 13000.0, sched.ScenarioCost["high"], 1e-6)
	assert.InDelta(t, 13000.0, sched.ScenarioCost["low"], 1e-6)
	assert.InDelta(t, 13000.0, sched.Objective, 1e-6)
}
