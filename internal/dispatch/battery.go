package dispatch

import (
	"fmt"

	"portfolio-dispatch/internal/solver"
)

// buildBatteryConstraints emits storage dynamics and the charge/discharge
// mutual exclusion for every battery.
//
// State of charge is tracked in MWh. The recursion per step is
//
//	soc[t] = (1 - selfDischarge) * soc[t-1]
//	         + chargeEff * stepHours * charge[t]
//	         - (stepHours / dischargeEff) * discharge[t]
//
// anchored at soc[-1] = SocStart * capacity. When SocEnd is set, the final
// state is pinned by an equality, not an inequality.
//
// Mutual exclusion uses big-M rows with M = MaxPowerMW, the tightest valid
// constant given the column bounds: charge <= M * mode and
// discharge <= M * (1 - mode). Without it, simultaneous charge and
// discharge would let the solver burn energy through the efficiency losses
// for free.
func buildBatteryConstraints(p *solver.Problem, sets *IndexSets, v *Variables) {
	dt := sets.StepHours

	for b, bat := range sets.Batteries {
		chargeGain := bat.ChargeEfficiency * dt
		dischargeLoss := dt / bat.DischargeEfficiency
		keep := 1 - bat.SelfDischargeRatePerStep

		for s := range sets.Scenarios {
			scen := sets.Scenarios[s].Name
			for t := 0; t < sets.Steps; t++ {
				charge := v.BatCharge[b][s][t]
				discharge := v.BatDischarge[b][s][t]
				soc := v.BatSoc[b][s][t]
				mode := v.BatMode[b][s][t]

				// charge <= maxPower * mode
				p.AddLeRow(
					fmt.Sprintf("bat_charge_mode(%s,%s,%d)", bat.Name, scen, t),
					[]solver.Nonzero{{Col: charge, Val: 1}, {Col: mode, Val: -bat.MaxPowerMW}},
					0,
				)
				// discharge <= maxPower * (1 - mode)
				p.AddLeRow(
					fmt.Sprintf("bat_discharge_mode(%s,%s,%d)", bat.Name, scen, t),
					[]solver.Nonzero{{Col: discharge, Val: 1}, {Col: mode, Val: bat.MaxPowerMW}},
					bat.MaxPowerMW,
				)

				// SOC recursion.
				coeffs := []solver.Nonzero{
					{Col: soc, Val: 1},
					{Col: charge, Val: -chargeGain},
					{Col: discharge, Val: dischargeLoss},
				}
				rhs := 0.0
				if t == 0 {
					rhs = keep * bat.SocStart * bat.CapacityMWh
				} else {
					coeffs = append(coeffs, solver.Nonzero{Col: v.BatSoc[b][s][t-1], Val: -keep})
				}
				p.AddEqRow(fmt.Sprintf("bat_soc(%s,%s,%d)", bat.Name, scen, t), coeffs, rhs)
			}

			if bat.SocEnd != nil {
				last := v.BatSoc[b][s][sets.Steps-1]
				p.AddEqRow(
					fmt.Sprintf("bat_soc_end(%s,%s)", bat.Name, scen),
					[]solver.Nonzero{{Col: last, Val: 1}},
					*bat.SocEnd*bat.CapacityMWh,
				)
			}
		}
	}
}
