package dispatch

import (
	"testing"

	"portfolio-dispatch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestSets(t *testing.T, sys *model.System) *IndexSets {
	t.Helper()
	scs, err := model.NewScenarioSet(sys.Scenarios)
	require.NoError(t, err)
	return BuildSets(sys, scs)
}

func TestResolveParameters_Defaults(t *testing.T) {
	sys := singleGenSystem(t)
	params, err := ResolveParameters(buildTestSets(t, sys))
	require.NoError(t, err)

	// No capacity profile: available at nominal power for all t.
	assert.Equal(t, []float64{100, 100, 100, 100}, params.AvailableCapacityMW[0][0])
	assert.Equal(t, demandProfile, params.DemandMW[0][0])
	assert.Equal(t, []float64{1.0}, params.Probability)
}

func TestResolveParameters_CapsCapacityAtNominal(t *testing.T) {
	sys := singleGenSystem(t)
	sys.Scenarios[0].AvailableCapacityProfiles = map[string][]float64{
		"gen1": {120, 80, 100, 150},
	}
	params, err := ResolveParameters(buildTestSets(t, sys))
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 80, 100, 100}, params.AvailableCapacityMW[0][0])
}

func TestResolveParameters_UnknownProfileKey(t *testing.T) {
	sys := singleGenSystem(t)
	sys.Scenarios[0].LoadProfiles["ghost"] = []float64{1, 2, 3, 4}

	_, err := ResolveParameters(buildTestSets(t, sys))
	require.Error(t, err)
	var cfgErr *model.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "unknown load")
}

func TestResolveParameters_LengthMismatch(t *testing.T) {
	sys := singleGenSystem(t)
	sys.Scenarios[0].LoadProfiles["site"] = []float64{60, 90}

	_, err := ResolveParameters(buildTestSets(t, sys))
	require.Error(t, err)
	var cfgErr *model.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestResolveParameters_MissingLoadProfileIsAnError(t *testing.T) {
	// A load in the portfolio with no profile entry is a configuration
	// error, never implicit zero demand.
	sys := singleGenSystem(t)
	delete(sys.Scenarios[0].LoadProfiles, "site")

	_, err := ResolveParameters(buildTestSets(t, sys))
	require.Error(t, err)
	var cfgErr *model.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "missing load profile")
}

func TestResolveParameters_MissingMarketPrices(t *testing.T) {
	sys := twoScenarioSystem(t, false)
	delete(sys.Scenarios[1].MarketPrices, "da")

	_, err := ResolveParameters(buildTestSets(t, sys))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing price profile")
}

func TestBuildSets_Deterministic(t *testing.T) {
	sets := buildTestSets(t, singleGenSystem(t))
	assert.True(t, sets.Deterministic)
	assert.Equal(t, []string{model.DeterministicScenarioName}, sets.ScenarioNames())

	multi := buildTestSets(t, twoScenarioSystem(t, false))
	assert.False(t, multi.Deterministic)
	assert.Equal(t, []string{"high", "low"}, multi.ScenarioNames())
}

func TestBuildSets_Idempotent(t *testing.T) {
	sys := twoScenarioSystem(t, false)
	a := buildTestSets(t, sys)
	b := buildTestSets(t, sys)
	assert.Equal(t, a, b)
}
