package config

import (
	"fmt"
	"os"

	"portfolio-dispatch/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk system description (YAML). It mirrors the model
// specs field for field; Load converts and validates in one step.
type Config struct {
	TimeGrid   TimeGridConfig    `yaml:"time_grid"`
	Generators []GeneratorConfig `yaml:"generators"`
	Batteries  []BatteryConfig   `yaml:"batteries"`
	Loads      []LoadConfig      `yaml:"loads"`
	Markets    []MarketConfig    `yaml:"markets"`
	Scenarios  []ScenarioConfig  `yaml:"scenarios"`
}

type TimeGridConfig struct {
	StepHours float64 `yaml:"step_hours"`
	Steps     int     `yaml:"steps"`
}

type GeneratorConfig struct {
	Name               string   `yaml:"name"`
	NominalPowerMW     float64  `yaml:"nominal_power_mw"`
	VariableCostPerMWh float64  `yaml:"variable_cost_per_mwh"`
	MinPowerMW         float64  `yaml:"min_power_mw"`
	RampUpMWPerHour    *float64 `yaml:"ramp_up_mw_per_hour"`
	RampDownMWPerHour  *float64 `yaml:"ramp_down_mw_per_hour"`
	MinUpTimeSteps     int      `yaml:"min_up_time_steps"`
	MinDownTimeSteps   int      `yaml:"min_down_time_steps"`
	StartupCost        float64  `yaml:"startup_cost"`
	ShutdownCost       float64  `yaml:"shutdown_cost"`
}

type BatteryConfig struct {
	Name                     string   `yaml:"name"`
	CapacityMWh              float64  `yaml:"capacity_mwh"`
	MaxPowerMW               float64  `yaml:"max_power_mw"`
	ChargeEfficiency         float64  `yaml:"charge_efficiency"`
	DischargeEfficiency      float64  `yaml:"discharge_efficiency"`
	SocStart                 float64  `yaml:"soc_start"`
	SocEnd                   *float64 `yaml:"soc_end"`
	SocMin                   float64  `yaml:"soc_min"`
	SocMax                   float64  `yaml:"soc_max"`
	DegradationCostPerMWh    float64  `yaml:"degradation_cost_per_mwh"`
	SelfDischargeRatePerStep float64  `yaml:"self_discharge_rate_per_step"`
}

type LoadConfig struct {
	Name                   string  `yaml:"name"`
	Type                   string  `yaml:"type"`
	VariableCostToIncrease float64 `yaml:"variable_cost_to_increase"`
	VariableCostToDecrease float64 `yaml:"variable_cost_to_decrease"`
}

type MarketConfig struct {
	Name        string  `yaml:"name"`
	MaxVolumeMW float64 `yaml:"max_volume_mw"`
	Direction   string  `yaml:"direction"`
	StageFixed  bool    `yaml:"stage_fixed"`
}

type ScenarioConfig struct {
	Name                      string               `yaml:"name"`
	Probability               float64              `yaml:"probability"`
	LoadProfiles              map[string][]float64 `yaml:"load_profiles"`
	AvailableCapacityProfiles map[string][]float64 `yaml:"available_capacity_profiles"`
	MarketPrices              map[string][]float64 `yaml:"market_prices"`
}

// Load reads a YAML system description and returns a validated system.
func Load(path string) (*model.System, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	sys, err := c.ToSystem()
	if err != nil {
		return nil, err
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	return sys, nil
}

// LoadUnchecked parses the YAML without converting or validating. Useful for
// printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

// ToSystem converts the on-disk shape into model specs. Per-spec validation
// happens when the portfolio is assembled; joint checks run in
// System.Validate.
func (c *Config) ToSystem() (*model.System, error) {
	var assets []model.AssetSpec
	for _, g := range c.Generators {
		minUp, minDown := g.MinUpTimeSteps, g.MinDownTimeSteps
		if minUp == 0 {
			minUp = 1
		}
		if minDown == 0 {
			minDown = 1
		}
		assets = append(assets, model.GeneratorSpec{
			Name:               g.Name,
			NominalPowerMW:     g.NominalPowerMW,
			VariableCostPerMWh: g.VariableCostPerMWh,
			MinPowerMW:         g.MinPowerMW,
			RampUpMWPerHour:    g.RampUpMWPerHour,
			RampDownMWPerHour:  g.RampDownMWPerHour,
			MinUpTimeSteps:     minUp,
			MinDownTimeSteps:   minDown,
			StartupCost:        g.StartupCost,
			ShutdownCost:       g.ShutdownCost,
		})
	}
	for _, b := range c.Batteries {
		assets = append(assets, model.BatterySpec{
			Name:                     b.Name,
			CapacityMWh:              b.CapacityMWh,
			MaxPowerMW:               b.MaxPowerMW,
			ChargeEfficiency:         b.ChargeEfficiency,
			DischargeEfficiency:      b.DischargeEfficiency,
			SocStart:                 b.SocStart,
			SocEnd:                   b.SocEnd,
			SocMin:                   b.SocMin,
			SocMax:                   b.SocMax,
			DegradationCostPerMWh:    b.DegradationCostPerMWh,
			SelfDischargeRatePerStep: b.SelfDischargeRatePerStep,
		})
	}
	for _, l := range c.Loads {
		loadType := model.LoadType(l.Type)
		if l.Type == "" {
			loadType = model.LoadFixed
		}
		assets = append(assets, model.LoadSpec{
			Name:                   l.Name,
			Type:                   loadType,
			VariableCostToIncrease: l.VariableCostToIncrease,
			VariableCostToDecrease: l.VariableCostToDecrease,
		})
	}

	portfolio, err := model.NewPortfolio(assets...)
	if err != nil {
		return nil, err
	}

	markets := make([]model.MarketSpec, 0, len(c.Markets))
	for _, m := range c.Markets {
		direction := model.TradeDirection(m.Direction)
		if m.Direction == "" {
			direction = model.TradeBoth
		}
		markets = append(markets, model.MarketSpec{
			Name:        m.Name,
			MaxVolumeMW: m.MaxVolumeMW,
			Direction:   direction,
			StageFixed:  m.StageFixed,
		})
	}

	scenarios := make([]model.Scenario, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		scenarios = append(scenarios, model.Scenario{
			Name:                      s.Name,
			Probability:               s.Probability,
			LoadProfiles:              s.LoadProfiles,
			AvailableCapacityProfiles: s.AvailableCapacityProfiles,
			MarketPrices:              s.MarketPrices,
		})
	}

	return &model.System{
		Portfolio: portfolio,
		Markets:   markets,
		Scenarios: scenarios,
		Grid: model.TimeGrid{
			StepHours: c.TimeGrid.StepHours,
			Steps:     c.TimeGrid.Steps,
		},
	}, nil
}
