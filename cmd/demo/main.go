package main

import (
	"fmt"
	"log"

	"portfolio-dispatch/internal/dispatch"
	"portfolio-dispatch/internal/model"
)

// Runs a small deterministic example: one generator, one battery, one fixed
// load over four hourly steps.
func main() {
	socEnd := 0.5
	portfolio, err := model.NewPortfolio(
		model.GeneratorSpec{
			Name:               "gas_turbine",
			NominalPowerMW:     100,
			VariableCostPerMWh: 50,
			MinUpTimeSteps:     1,
			MinDownTimeSteps:   1,
		},
		model.BatterySpec{
			Name:                "storage",
			CapacityMWh:         50,
			MaxPowerMW:          25,
			ChargeEfficiency:    0.95,
			DischargeEfficiency: 0.95,
			SocStart:            0.5,
			SocEnd:              &socEnd,
			SocMin:              0,
			SocMax:              1,
		},
		model.LoadSpec{Name: "site", Type: model.LoadFixed},
	)
	if err != nil {
		log.Fatal(err)
	}

	sys := &model.System{
		Portfolio: portfolio,
		Scenarios: []model.Scenario{{
			LoadProfiles: map[string][]float64{
				"site": {60, 90, 40, 70},
			},
		}},
		Grid: model.TimeGrid{StepHours: 1, Steps: 4},
	}

	sched, err := dispatch.New(nil).Optimize(sys)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("objective: %.2f\n", sched.Objective)
	fmt.Printf("generator power: %v\n", sched.Generators["gas_turbine"].Power.Series())
	fmt.Printf("battery net power: %v\n", sched.Batteries["storage"].NetPower.Series())
	fmt.Printf("battery SOC (MWh): %v\n", sched.Batteries["storage"].StateOfCharge.Series())
}
