package dispatch

import (
	"fmt"

	"portfolio-dispatch/internal/solver"
)

// buildBalanceConstraints emits the system-wide power balance, one equality
// per (scenario, timestep):
//
//	sum(gen power) + sum(bat discharge) + sum(mkt buy)
//	  = sum(load net demand) + sum(bat charge) + sum(mkt sell)
//
// with flexible-load net demand = profile - decrease + increase. Every
// dispatch variable appears in exactly one balance row per scenario and
// step; this is the single constraint tying the asset kinds together.
//
// Market volume bounds and trade-direction zeroing are column bounds set in
// the variable factory, and stage-fixed non-anticipativity is structural
// (aliased columns), so no extra market rows are needed here.
func buildBalanceConstraints(p *solver.Problem, sets *IndexSets, params *Parameters, v *Variables) {
	for s := range sets.Scenarios {
		scen := sets.Scenarios[s].Name
		for t := 0; t < sets.Steps; t++ {
			var coeffs []solver.Nonzero

			for g := range sets.Generators {
				coeffs = append(coeffs, solver.Nonzero{Col: v.GenPower[g][s][t], Val: 1})
			}
			for b := range sets.Batteries {
				coeffs = append(coeffs,
					solver.Nonzero{Col: v.BatDischarge[b][s][t], Val: 1},
					solver.Nonzero{Col: v.BatCharge[b][s][t], Val: -1},
				)
			}
			for m := range sets.Markets {
				coeffs = append(coeffs,
					solver.Nonzero{Col: v.MktBuy[m][s][t], Val: 1},
					solver.Nonzero{Col: v.MktSell[m][s][t], Val: -1},
				)
			}

			demand := 0.0
			for l, load := range sets.Loads {
				demand += params.DemandMW[s][l][t]
				if load.Flexible() {
					// Moving the flexible terms to the supply side flips
					// their signs: + decrease, - increase.
					coeffs = append(coeffs,
						solver.Nonzero{Col: v.LoadDecrease[l][s][t], Val: 1},
						solver.Nonzero{Col: v.LoadIncrease[l][s][t], Val: -1},
					)
				}
			}

			p.AddEqRow(fmt.Sprintf("power_balance(%s,%d)", scen, t), coeffs, demand)
		}
	}
}
