package models

import (
	"portfolio-dispatch/internal/config"
	"portfolio-dispatch/internal/model"
)

// ToSystem converts the request shape into model specs by way of the config
// package, which owns the single conversion path into the model.
func (r SystemRequest) ToSystem() (*model.System, error) {
	c := config.Config{
		TimeGrid: config.TimeGridConfig{
			StepHours: r.TimeGrid.StepHours,
			Steps:     r.TimeGrid.Steps,
		},
	}
	for _, g := range r.Generators {
		c.Generators = append(c.Generators, config.GeneratorConfig{
			Name:               g.Name,
			NominalPowerMW:     g.NominalPowerMW,
			VariableCostPerMWh: g.VariableCostPerMWh,
			MinPowerMW:         g.MinPowerMW,
			RampUpMWPerHour:    g.RampUpMWPerHour,
			RampDownMWPerHour:  g.RampDownMWPerHour,
			MinUpTimeSteps:     g.MinUpTimeSteps,
			MinDownTimeSteps:   g.MinDownTimeSteps,
			StartupCost:        g.StartupCost,
			ShutdownCost:       g.ShutdownCost,
		})
	}
	for _, b := range r.Batteries {
		c.Batteries = append(c.Batteries, config.BatteryConfig{
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
	for _, l := range r.Loads {
		c.Loads = append(c.Loads, config.LoadConfig{
			Name:                   l.Name,
			Type:                   l.Type,
			VariableCostToIncrease: l.VariableCostToIncrease,
			VariableCostToDecrease: l.VariableCostToDecrease,
		})
	}
	for _, m := range r.Markets {
		c.Markets = append(c.Markets, config.MarketConfig{
			Name:        m.Name,
			MaxVolumeMW: m.MaxVolumeMW,
			Direction:   m.Direction,
			StageFixed:  m.StageFixed,
		})
	}
	for _, s := range r.Scenarios {
		c.Scenarios = append(c.Scenarios, config.ScenarioConfig{
			Name:                      s.Name,
			Probability:               s.Probability,
			LoadProfiles:              s.LoadProfiles,
			AvailableCapacityProfiles: s.AvailableCapacityProfiles,
			MarketPrices:              s.MarketPrices,
		})
	}
	return c.ToSystem()
}
