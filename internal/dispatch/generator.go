package dispatch

import (
	"fmt"

	"portfolio-dispatch/internal/solver"
)

// buildGeneratorConstraints emits the unit-commitment and ramp constraints
// for every generator. Power bounds against availability already live on the
// columns; this builder only adds rows coupling power to the commitment
// binaries and across timesteps.
//
// Initial condition policy: before the horizon the unit is off and at zero
// output (status[-1] = 0, power[-1] = 0). Startup at t=0 is therefore a real
// startup event, and ramp limits apply from zero.
func buildGeneratorConstraints(p *solver.Problem, sets *IndexSets, v *Variables) {
	for g := range sets.Generators {
		for s := range sets.Scenarios {
			scen := sets.Scenarios[s].Name
			if v.UnitCommitment[g] {
				buildCommitment(p, sets, v, g, s, scen)
			}
			buildRamps(p, sets, v, g, s, scen)
		}
	}
}

func buildCommitment(p *solver.Problem, sets *IndexSets, v *Variables, g, s int, scen string) {
	gen := sets.Generators[g]

	for t := 0; t < sets.Steps; t++ {
		power := v.GenPower[g][s][t]
		status := v.GenStatus[g][s][t]
		startup := v.GenStartup[g][s][t]
		shutdown := v.GenShutdown[g][s][t]

		// power <= nominal * status
		p.AddLeRow(
			fmt.Sprintf("gen_max_power(%s,%s,%d)", gen.Name, scen, t),
			[]solver.Nonzero{{Col: power, Val: 1}, {Col: status, Val: -gen.NominalPowerMW}},
			0,
		)
		// power >= min_power * status
		p.AddGeRow(
			fmt.Sprintf("gen_min_power(%s,%s,%d)", gen.Name, scen, t),
			[]solver.Nonzero{{Col: power, Val: 1}, {Col: status, Val: -gen.MinPowerMW}},
			0,
		)

		// status[t] - status[t-1] = startup[t] - shutdown[t], status[-1] = 0.
		coeffs := []solver.Nonzero{
			{Col: status, Val: 1},
			{Col: startup, Val: -1},
			{Col: shutdown, Val: 1},
		}
		if t > 0 {
			coeffs = append(coeffs, solver.Nonzero{Col: v.GenStatus[g][s][t-1], Val: -1})
		}
		p.AddEqRow(fmt.Sprintf("gen_commit_link(%s,%s,%d)", gen.Name, scen, t), coeffs, 0)

		// A unit cannot start and stop in the same step.
		p.AddLeRow(
			fmt.Sprintf("gen_flip(%s,%s,%d)", gen.Name, scen, t),
			[]solver.Nonzero{{Col: startup, Val: 1}, {Col: shutdown, Val: 1}},
			1,
		)

		// Min up: after a startup at t, status stays 1 for the window
		// t..t+minUp-1, clipped at the horizon end.
		if gen.MinUpTimeSteps > 1 {
			for k := t; k < t+gen.MinUpTimeSteps && k < sets.Steps; k++ {
				p.AddGeRow(
					fmt.Sprintf("gen_min_up(%s,%s,%d,%d)", gen.Name, scen, t, k),
					[]solver.Nonzero{{Col: v.GenStatus[g][s][k], Val: 1}, {Col: startup, Val: -1}},
					0,
				)
			}
		}

		// Min down: after a shutdown at t, status stays 0 symmetrically.
		if gen.MinDownTimeSteps > 1 {
			for k := t; k < t+gen.MinDownTimeSteps && k < sets.Steps; k++ {
				p.AddLeRow(
					fmt.Sprintf("gen_min_down(%s,%s,%d,%d)", gen.Name, scen, t, k),
					[]solver.Nonzero{{Col: v.GenStatus[g][s][k], Val: 1}, {Col: shutdown, Val: 1}},
					1,
				)
			}
		}
	}
}

// buildRamps bounds |power[t] - power[t-1]| by the per-hour ramp limits
// scaled to the step length. Ramp limits are specified in MW per hour; the
// per-step bound is ramp * StepHours.
func buildRamps(p *solver.Problem, sets *IndexSets, v *Variables, g, s int, scen string) {
	gen := sets.Generators[g]
	if gen.RampUpMWPerHour == nil && gen.RampDownMWPerHour == nil {
		return
	}

	for t := 0; t < sets.Steps; t++ {
		power := v.GenPower[g][s][t]

		if gen.RampUpMWPerHour != nil {
			limit := *gen.RampUpMWPerHour * sets.StepHours
			coeffs := []solver.Nonzero{{Col: power, Val: 1}}
			if t > 0 {
				coeffs = append(coeffs, solver.Nonzero{Col: v.GenPower[g][s][t-1], Val: -1})
			}
			p.AddLeRow(fmt.Sprintf("gen_ramp_up(%s,%s,%d)", gen.Name, scen, t), coeffs, limit)
		}

		// The ramp-down bound from power[-1] = 0 is vacuous, skip t=0.
		if gen.RampDownMWPerHour != nil && t > 0 {
			limit := *gen.RampDownMWPerHour * sets.StepHours
			p.AddLeRow(
				fmt.Sprintf("gen_ramp_down(%s,%s,%d)", gen.Name, scen, t),
				[]solver.Nonzero{{Col: v.GenPower[g][s][t-1], Val: 1}, {Col: power, Val: -1}},
				limit,
			)
		}
	}
}
