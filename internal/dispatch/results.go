package dispatch

import "portfolio-dispatch/internal/solver"

// Table is one named result series per scenario and timestep. For
// deterministic (single-scenario) runs Scenarios is nil and Values has a
// single row: the scenario dimension is dropped from the output, it is not
// kept as a singleton. That is a usability contract, not an accident.
type Table struct {
	Scenarios []string
	Values    [][]float64
}

// Series returns the series of a deterministic run (or the first scenario).
func (t *Table) Series() []float64 {
	if len(t.Values) == 0 {
		return nil
	}
	return t.Values[0]
}

// SeriesFor returns the series of a named scenario.
func (t *Table) SeriesFor(scenario string) ([]float64, bool) {
	for i, name := range t.Scenarios {
		if name == scenario {
			return t.Values[i], true
		}
	}
	return nil, false
}

// GeneratorSchedule holds a generator's dispatch. Status, Startup, and
// Shutdown are nil for generators running in continuous-dispatch mode.
type GeneratorSchedule struct {
	Power    *Table
	Status   *Table
	Startup  *Table
	Shutdown *Table
}

// BatterySchedule holds a battery's dispatch. NetPower follows the
// discharge-positive convention: discharge - charge.
type BatterySchedule struct {
	NetPower      *Table
	StateOfCharge *Table
}

// MarketSchedule holds a market's traded volumes.
type MarketSchedule struct {
	BuyVolume  *Table
	SellVolume *Table
}

// LoadSchedule holds a flexible load's demand adjustments. Fixed loads have
// no decisions and no schedule entry.
type LoadSchedule struct {
	Increase *Table
	Decrease *Table
}

// Schedule is the optimizer's output: named, asset-and-scenario-indexed
// result tables plus the raw solver status.
type Schedule struct {
	SolverStatus         solver.Status
	TerminationCondition string

	// Objective is the probability-weighted total cost.
	Objective float64

	// ScenarioCost is the unweighted total cost per scenario, keyed by
	// scenario name. Stage-fixed market volumes are priced at each
	// scenario's own prices.
	ScenarioCost map[string]float64

	Generators map[string]GeneratorSchedule
	Batteries  map[string]BatterySchedule
	Markets    map[string]MarketSchedule
	Loads      map[string]LoadSchedule
}

// ExtractSchedule maps the raw solver values back through the variable
// registry into named tables, inverting the index scheme exactly as the
// variable factory laid it out.
func ExtractSchedule(dm *DecisionModel, out *solver.Outcome) *Schedule {
	sets := dm.Sets
	v := dm.Vars
	val := func(col int) float64 { return out.Values[col] }

	sched := &Schedule{
		SolverStatus:         out.Status,
		TerminationCondition: out.TerminationCondition,
		Objective:            out.Objective,
		Generators:           make(map[string]GeneratorSchedule, len(sets.Generators)),
		Batteries:            make(map[string]BatterySchedule, len(sets.Batteries)),
		Markets:              make(map[string]MarketSchedule, len(sets.Markets)),
		Loads:                make(map[string]LoadSchedule),
	}

	for g, gen := range sets.Generators {
		gs := GeneratorSchedule{Power: dm.table(v.GenPower[g], val)}
		if v.UnitCommitment[g] {
			gs.Status = dm.table(v.GenStatus[g], val)
			gs.Startup = dm.table(v.GenStartup[g], val)
			gs.Shutdown = dm.table(v.GenShutdown[g], val)
		}
		sched.Generators[gen.Name] = gs
	}

	for b, bat := range sets.Batteries {
		net := dm.tableFunc(func(s, t int) float64 {
			return val(v.BatDischarge[b][s][t]) - val(v.BatCharge[b][s][t])
		})
		sched.Batteries[bat.Name] = BatterySchedule{
			NetPower:      net,
			StateOfCharge: dm.table(v.BatSoc[b], val),
		}
	}

	for m, mkt := range sets.Markets {
		sched.Markets[mkt.Name] = MarketSchedule{
			BuyVolume:  dm.table(v.MktBuy[m], val),
			SellVolume: dm.table(v.MktSell[m], val),
		}
	}

	for l, load := range sets.Loads {
		if !load.Flexible() {
			continue
		}
		sched.Loads[load.Name] = LoadSchedule{
			Increase: dm.table(v.LoadIncrease[l], val),
			Decrease: dm.table(v.LoadDecrease[l], val),
		}
	}

	sched.ScenarioCost = dm.scenarioCosts(val)
	return sched
}

// table materializes one variable family slice [scenario][t] into a Table.
func (dm *DecisionModel) table(cols [][]int, val func(int) float64) *Table {
	return dm.tableFunc(func(s, t int) float64 { return val(cols[s][t]) })
}

func (dm *DecisionModel) tableFunc(at func(s, t int) float64) *Table {
	sets := dm.Sets
	t := &Table{Values: make([][]float64, len(sets.Scenarios))}
	if !sets.Deterministic {
		t.Scenarios = sets.ScenarioNames()
	}
	for s := range sets.Scenarios {
		row := make([]float64, sets.Steps)
		for step := 0; step < sets.Steps; step++ {
			row[step] = at(s, step)
		}
		t.Values[s] = row
	}
	return t
}

// scenarioCosts recomputes each scenario's unweighted cost from the solution
// values. The objective's column coefficients fold in probabilities and the
// stage-fixed aliasing, so the per-scenario view has to be rebuilt from the
// specs and parameters directly.
func (dm *DecisionModel) scenarioCosts(val func(int) float64) map[string]float64 {
	sets := dm.Sets
	v := dm.Vars
	dt := sets.StepHours
	out := make(map[string]float64, len(sets.Scenarios))

	for s, sc := range sets.Scenarios {
		cost := 0.0
		for g, gen := range sets.Generators {
			for t := 0; t < sets.Steps; t++ {
				cost += gen.VariableCostPerMWh * dt * val(v.GenPower[g][s][t])
				if v.UnitCommitment[g] {
					cost += gen.StartupCost * val(v.GenStartup[g][s][t])
					cost += gen.ShutdownCost * val(v.GenShutdown[g][s][t])
				}
			}
		}
		for b, bat := range sets.Batteries {
			for t := 0; t < sets.Steps; t++ {
				throughput := val(v.BatCharge[b][s][t]) + val(v.BatDischarge[b][s][t])
				cost += bat.DegradationCostPerMWh * dt * throughput
			}
		}
		for l, load := range sets.Loads {
			if !load.Flexible() {
				continue
			}
			for t := 0; t < sets.Steps; t++ {
				cost += load.VariableCostToIncrease * dt * val(v.LoadIncrease[l][s][t])
				cost += load.VariableCostToDecrease * dt * val(v.LoadDecrease[l][s][t])
			}
		}
		for m := range sets.Markets {
			for t := 0; t < sets.Steps; t++ {
				price := dm.Params.PricePerMWh[s][m][t]
				cost += price * dt * (val(v.MktBuy[m][s][t]) - val(v.MktSell[m][s][t]))
			}
		}
		out[sc.Name] = cost
	}
	return out
}
