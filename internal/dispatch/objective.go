package dispatch

import "portfolio-dispatch/internal/solver"

// assembleObjective sets the probability-weighted cost coefficients on the
// problem's columns:
//
//	minimize sum_s prob[s] * sum_t [ variable + startup/shutdown costs
//	  + degradation + flexible-load costs + price * (buy - sell) ]
//
// Energy-priced terms ($/MWh against a MW variable) scale by StepHours;
// startup and shutdown costs are per event. Coefficients accumulate rather
// than overwrite because stage-fixed market columns are shared across
// scenarios: their single column collects the probability-weighted price of
// every scenario, which is exactly what pushes a shared decision toward the
// risk-weighted compromise.
func assembleObjective(p *solver.Problem, sets *IndexSets, params *Parameters, v *Variables) {
	dt := sets.StepHours

	for s := range sets.Scenarios {
		prob := params.Probability[s]

		for g, gen := range sets.Generators {
			for t := 0; t < sets.Steps; t++ {
				p.Cols[v.GenPower[g][s][t]].Cost += prob * gen.VariableCostPerMWh * dt
				if v.UnitCommitment[g] {
					p.Cols[v.GenStartup[g][s][t]].Cost += prob * gen.StartupCost
					p.Cols[v.GenShutdown[g][s][t]].Cost += prob * gen.ShutdownCost
				}
			}
		}

		for b, bat := range sets.Batteries {
			if bat.DegradationCostPerMWh == 0 {
				continue
			}
			for t := 0; t < sets.Steps; t++ {
				deg := prob * bat.DegradationCostPerMWh * dt
				p.Cols[v.BatCharge[b][s][t]].Cost += deg
				p.Cols[v.BatDischarge[b][s][t]].Cost += deg
			}
		}

		for l, load := range sets.Loads {
			if !load.Flexible() {
				continue
			}
			for t := 0; t < sets.Steps; t++ {
				p.Cols[v.LoadIncrease[l][s][t]].Cost += prob * load.VariableCostToIncrease * dt
				p.Cols[v.LoadDecrease[l][s][t]].Cost += prob * load.VariableCostToDecrease * dt
			}
		}

		for m := range sets.Markets {
			for t := 0; t < sets.Steps; t++ {
				price := params.PricePerMWh[s][m][t]
				p.Cols[v.MktBuy[m][s][t]].Cost += prob * price * dt
				p.Cols[v.MktSell[m][s][t]].Cost -= prob * price * dt
			}
		}
	}
}
