package dispatch

import "portfolio-dispatch/internal/model"

// precheckFeasibility screens a marketless system for obvious infeasibility
// before paying for a solve: without a market to import from, the portfolio
// itself must be able to cover peak demand in every scenario. With markets
// present the screen is skipped, since imports can always close the gap up
// to the market bounds and the solver decides the rest.
//
// Two coarse checks run per scenario: peak fixed demand against total
// dispatchable power, and total fixed energy demand against total
// producible energy (generators at nominal for the whole horizon plus the
// batteries' initially stored, dischargeable energy). Flexible loads are
// excluded from both sums: they may shed their entire profiled demand at a
// cost, so they never force infeasibility. Both checks deliberately ignore
// ramps, commitment windows, and SOC end targets; they catch the
// misconfigurations that would otherwise surface as an opaque "infeasible"
// from the solver.
func precheckFeasibility(dm *DecisionModel) error {
	if len(dm.Sets.Markets) > 0 {
		return nil
	}

	dt := dm.Sets.StepHours
	power := 0.0
	energy := 0.0
	for _, g := range dm.Sets.Generators {
		power += g.NominalPowerMW
		energy += g.NominalPowerMW * dt * float64(dm.Sets.Steps)
	}
	for _, b := range dm.Sets.Batteries {
		power += b.MaxPowerMW
		energy += (b.SocStart - b.SocMin) * b.CapacityMWh * b.DischargeEfficiency
	}

	for s, sc := range dm.Sets.Scenarios {
		total := 0.0
		for t := 0; t < dm.Sets.Steps; t++ {
			demand := 0.0
			for l, load := range dm.Sets.Loads {
				if load.Flexible() {
					continue
				}
				demand += dm.Params.DemandMW[s][l][t]
			}
			if demand > power {
				return model.Validationf(
					"scenario %q: fixed demand %.3f MW at step %d exceeds total dispatchable capacity %.3f MW and no market can cover the gap",
					sc.Name, demand, t, power,
				)
			}
			total += demand * dt
		}
		if total > energy {
			return model.Validationf(
				"scenario %q: total fixed demand %.3f MWh exceeds total producible energy %.3f MWh and no market can cover the gap",
				sc.Name, total, energy,
			)
		}
	}
	return nil
}
