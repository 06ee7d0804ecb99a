package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScenarioSet_Singleton(t *testing.T) {
	set, err := NewScenarioSet([]Scenario{{}})
	require.NoError(t, err)
	assert.True(t, set.Deterministic())

	scs := set.Scenarios()
	require.Len(t, scs, 1)
	assert.Equal(t, DeterministicScenarioName, scs[0].Name)
	assert.Equal(t, 1.0, scs[0].Probability)
}

func TestNewScenarioSet_ProbabilitiesMustSumToOne(t *testing.T) {
	_, err := NewScenarioSet([]Scenario{
		{Name: "high", Probability: 0.5},
		{Name: "low", Probability: 0.3},
	})
	require.Error(t, err)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestNewScenarioSet_ToleratesRoundoff(t *testing.T) {
	_, err := NewScenarioSet([]Scenario{
		{Name: "a", Probability: 1.0 / 3},
		{Name: "b", Probability: 1.0 / 3},
		{Name: "c", Probability: 1 - 2.0/3},
	})
	assert.NoError(t, err)
}

func TestNewScenarioSet_RejectsDuplicateNames(t *testing.T) {
	_, err := NewScenarioSet([]Scenario{
		{Name: "scenario", Probability: 0.5},
		{Name: "scenario", Probability: 0.5},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate scenario name")
}

func TestNewScenarioSet_RequiresNamesWhenMultiple(t *testing.T) {
	_, err := NewScenarioSet([]Scenario{
		{Name: "", Probability: 0.5},
		{Name: "low", Probability: 0.5},
	})
	assert.Error(t, err)
}

func TestNewScenarioSet_EmptySynthesizesDeterministic(t *testing.T) {
	set, err := NewScenarioSet(nil)
	require.NoError(t, err)
	assert.True(t, set.Deterministic())
	assert.Equal(t, DeterministicScenarioName, set.Scenarios()[0].Name)
}

func TestNewScenarioSet_DoesNotMutateInput(t *testing.T) {
	raw := []Scenario{{}}
	_, err := NewScenarioSet(raw)
	require.NoError(t, err)
	assert.Equal(t, "", raw[0].Name)
	assert.Equal(t, 0.0, raw[0].Probability)
}
