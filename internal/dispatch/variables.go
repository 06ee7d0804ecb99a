package dispatch

import (
	"fmt"
	"math"

	"portfolio-dispatch/internal/solver"
)

// Variables is the registry of column indices per variable family, indexed
// [asset][scenario][t] (or [market][scenario][t]). Families a system does
// not need are nil: unit-commitment binaries are omitted entirely when no
// generator requires commitment, flexible-load slices are nil for fixed
// loads. For stage-fixed markets the same column index appears in every
// scenario slot; the aliasing is the non-anticipativity implementation, so
// the shared decision cannot even drift by solver tolerance.
type Variables struct {
	UnitCommitment []bool // per generator

	GenPower    [][][]int
	GenStatus   [][][]int // nil per generator without commitment
	GenStartup  [][][]int
	GenShutdown [][][]int

	BatCharge    [][][]int
	BatDischarge [][][]int
	BatSoc       [][][]int
	BatMode      [][][]int

	LoadIncrease [][][]int // nil per fixed load
	LoadDecrease [][][]int

	MktBuy  [][][]int
	MktSell [][][]int
}

// declareVariables populates the problem's columns and the registry.
// Bounds that depend only on parameters (availability, trade direction,
// SOC window) are applied as column bounds here rather than as rows.
func declareVariables(p *solver.Problem, sets *IndexSets, params *Parameters) *Variables {
	nScen := len(sets.Scenarios)
	v := &Variables{}

	v.UnitCommitment = make([]bool, len(sets.Generators))
	v.GenPower = make([][][]int, len(sets.Generators))
	v.GenStatus = make([][][]int, len(sets.Generators))
	v.GenStartup = make([][][]int, len(sets.Generators))
	v.GenShutdown = make([][][]int, len(sets.Generators))
	for g, gen := range sets.Generators {
		uc := gen.NeedsCommitment()
		v.UnitCommitment[g] = uc
		v.GenPower[g] = grid3(nScen, sets.Steps)
		if uc {
			v.GenStatus[g] = grid3(nScen, sets.Steps)
			v.GenStartup[g] = grid3(nScen, sets.Steps)
			v.GenShutdown[g] = grid3(nScen, sets.Steps)
		}
		for s := 0; s < nScen; s++ {
			scen := sets.Scenarios[s].Name
			for t := 0; t < sets.Steps; t++ {
				avail := params.AvailableCapacityMW[s][g][t]
				v.GenPower[g][s][t] = p.AddColumn(solver.Column{
					Name:  fmt.Sprintf("gen_power(%s,%s,%d)", gen.Name, scen, t),
					Lower: 0, Upper: avail,
				})
				if uc {
					v.GenStatus[g][s][t] = binary(p, fmt.Sprintf("gen_status(%s,%s,%d)", gen.Name, scen, t))
					v.GenStartup[g][s][t] = binary(p, fmt.Sprintf("gen_startup(%s,%s,%d)", gen.Name, scen, t))
					v.GenShutdown[g][s][t] = binary(p, fmt.Sprintf("gen_shutdown(%s,%s,%d)", gen.Name, scen, t))
				}
			}
		}
	}

	v.BatCharge = make([][][]int, len(sets.Batteries))
	v.BatDischarge = make([][][]int, len(sets.Batteries))
	v.BatSoc = make([][][]int, len(sets.Batteries))
	v.BatMode = make([][][]int, len(sets.Batteries))
	for b, bat := range sets.Batteries {
		v.BatCharge[b] = grid3(nScen, sets.Steps)
		v.BatDischarge[b] = grid3(nScen, sets.Steps)
		v.BatSoc[b] = grid3(nScen, sets.Steps)
		v.BatMode[b] = grid3(nScen, sets.Steps)
		for s := 0; s < nScen; s++ {
			scen := sets.Scenarios[s].Name
			for t := 0; t < sets.Steps; t++ {
				v.BatCharge[b][s][t] = p.AddColumn(solver.Column{
					Name:  fmt.Sprintf("bat_charge(%s,%s,%d)", bat.Name, scen, t),
					Lower: 0, Upper: bat.MaxPowerMW,
				})
				v.BatDischarge[b][s][t] = p.AddColumn(solver.Column{
					Name:  fmt.Sprintf("bat_discharge(%s,%s,%d)", bat.Name, scen, t),
					Lower: 0, Upper: bat.MaxPowerMW,
				})
				v.BatSoc[b][s][t] = p.AddColumn(solver.Column{
					Name:  fmt.Sprintf("bat_soc(%s,%s,%d)", bat.Name, scen, t),
					Lower: bat.SocMin * bat.CapacityMWh,
					Upper: bat.SocMax * bat.CapacityMWh,
				})
				v.BatMode[b][s][t] = binary(p, fmt.Sprintf("bat_mode(%s,%s,%d)", bat.Name, scen, t))
			}
		}
	}

	v.LoadIncrease = make([][][]int, len(sets.Loads))
	v.LoadDecrease = make([][][]int, len(sets.Loads))
	for l, load := range sets.Loads {
		if !load.Flexible() {
			continue
		}
		v.LoadIncrease[l] = grid3(nScen, sets.Steps)
		v.LoadDecrease[l] = grid3(nScen, sets.Steps)
		for s := 0; s < nScen; s++ {
			scen := sets.Scenarios[s].Name
			for t := 0; t < sets.Steps; t++ {
				v.LoadIncrease[l][s][t] = p.AddColumn(solver.Column{
					Name:  fmt.Sprintf("load_increase(%s,%s,%d)", load.Name, scen, t),
					Lower: 0, Upper: math.Inf(1),
				})
				// A load cannot shed more than its profiled demand.
				v.LoadDecrease[l][s][t] = p.AddColumn(solver.Column{
					Name:  fmt.Sprintf("load_decrease(%s,%s,%d)", load.Name, scen, t),
					Lower: 0, Upper: params.DemandMW[s][l][t],
				})
			}
		}
	}

	v.MktBuy = make([][][]int, len(sets.Markets))
	v.MktSell = make([][][]int, len(sets.Markets))
	for m, mkt := range sets.Markets {
		v.MktBuy[m] = grid3(nScen, sets.Steps)
		v.MktSell[m] = grid3(nScen, sets.Steps)

		buyUpper := 0.0
		if mkt.AllowsBuy() {
			buyUpper = mkt.MaxVolumeMW
		}
		sellUpper := 0.0
		if mkt.AllowsSell() {
			sellUpper = mkt.MaxVolumeMW
		}

		if mkt.StageFixed {
			// One column per (market, t), shared by every scenario.
			for t := 0; t < sets.Steps; t++ {
				buy := p.AddColumn(solver.Column{
					Name:  fmt.Sprintf("mkt_buy(%s,%d)", mkt.Name, t),
					Lower: 0, Upper: buyUpper,
				})
				sell := p.AddColumn(solver.Column{
					Name:  fmt.Sprintf("mkt_sell(%s,%d)", mkt.Name, t),
					Lower: 0, Upper: sellUpper,
				})
				for s := 0; s < nScen; s++ {
					v.MktBuy[m][s][t] = buy
					v.MktSell[m][s][t] = sell
				}
			}
			continue
		}

		for s := 0; s < nScen; s++ {
			scen := sets.Scenarios[s].Name
			for t := 0; t < sets.Steps; t++ {
				v.MktBuy[m][s][t] = p.AddColumn(solver.Column{
					Name:  fmt.Sprintf("mkt_buy(%s,%s,%d)", mkt.Name, scen, t),
					Lower: 0, Upper: buyUpper,
				})
				v.MktSell[m][s][t] = p.AddColumn(solver.Column{
					Name:  fmt.Sprintf("mkt_sell(%s,%s,%d)", mkt.Name, scen, t),
					Lower: 0, Upper: sellUpper,
				})
			}
		}
	}

	return v
}

func binary(p *solver.Problem, name string) int {
	return p.AddColumn(solver.Column{Name: name, Lower: 0, Upper: 1, Type: solver.BinaryVar})
}

func grid3(nScen, steps int) [][]int {
	out := make([][]int, nScen)
	for s := range out {
		out[s] = make([]int, steps)
	}
	return out
}
