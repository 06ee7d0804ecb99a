package config

import (
	"os"
	"path/filepath"
	"testing"

	"portfolio-dispatch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
time_grid:
  step_hours: 1.0
  steps: 4

generators:
  - name: gas_turbine
    nominal_power_mw: 100
    variable_cost_per_mwh: 50
    ramp_up_mw_per_hour: 40

batteries:
  - name: storage
    capacity_mwh: 50
    max_power_mw: 25
    charge_efficiency: 0.95
    discharge_efficiency: 0.95
    soc_start: 0.5
    soc_end: 0.5
    soc_max: 1.0

loads:
  - name: site

markets:
  - name: da
    max_volume_mw: 20
    stage_fixed: true

scenarios:
  - name: base
    load_profiles:
      site: [60, 90, 40, 70]
    market_prices:
      da: [30, 35, 25, 40]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "system.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FullSystem(t *testing.T) {
	sys, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 1.0, sys.Grid.StepHours)
	assert.Equal(t, 4, sys.Grid.Steps)

	gens := sys.Portfolio.Generators()
	require.Len(t, gens, 1)
	assert.Equal(t, "gas_turbine", gens[0].Name)
	require.NotNil(t, gens[0].RampUpMWPerHour)
	assert.Equal(t, 40.0, *gens[0].RampUpMWPerHour)
	assert.Nil(t, gens[0].RampDownMWPerHour)

	bats := sys.Portfolio.Batteries()
	require.Len(t, bats, 1)
	require.NotNil(t, bats[0].SocEnd)
	assert.Equal(t, 0.5, *bats[0].SocEnd)

	require.Len(t, sys.Markets, 1)
	assert.True(t, sys.Markets[0].StageFixed)

	require.Len(t, sys.Scenarios, 1)
	assert.Equal(t, []float64{60, 90, 40, 70}, sys.Scenarios[0].LoadProfiles["site"])
}

func TestToSystem_Defaults(t *testing.T) {
	sys, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	// Omitted UC fields default to no commitment requirement.
	gen := sys.Portfolio.Generators()[0]
	assert.Equal(t, 1, gen.MinUpTimeSteps)
	assert.Equal(t, 1, gen.MinDownTimeSteps)
	assert.False(t, gen.NeedsCommitment())

	// Omitted load type means fixed, omitted market direction means both.
	assert.Equal(t, model.LoadFixed, sys.Portfolio.Loads()[0].Type)
	assert.Equal(t, model.TradeBoth, sys.Markets[0].Direction)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "time_grid: [not, a, mapping]"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse")
}

func TestLoad_RejectsInvalidSpec(t *testing.T) {
	bad := `
time_grid: {step_hours: 1.0, steps: 4}
generators:
  - name: broken
    nominal_power_mw: -10
scenarios:
  - name: base
`
	_, err := Load(writeConfig(t, bad))
	var valErr *model.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadUnchecked_SkipsValidation(t *testing.T) {
	// Negative nominal power parses fine; only Load rejects it.
	body := `
generators:
  - name: broken
    nominal_power_mw: -10
`
	c, err := LoadUnchecked(writeConfig(t, body))
	require.NoError(t, err)
	require.Len(t, c.Generators, 1)
	assert.Equal(t, -10.0, c.Generators[0].NominalPowerMW)
}
