package models

import "portfolio-dispatch/internal/dispatch"

// OptimizeResponse is the response for a successful optimization run.
type OptimizeResponse struct {
	ID                   string             `json:"id"`
	Status               string             `json:"status"`
	TerminationCondition string             `json:"termination_condition"`
	Objective            float64            `json:"objective"`
	ScenarioCost         map[string]float64 `json:"scenario_cost,omitempty"`

	Generators map[string]GeneratorResult `json:"generators,omitempty"`
	Batteries  map[string]BatteryResult   `json:"batteries,omitempty"`
	Markets    map[string]MarketResult    `json:"markets,omitempty"`
	Loads      map[string]LoadResult      `json:"loads,omitempty"`
}

// SeriesJSON is a result table rendered for JSON: a plain array for
// deterministic runs, a scenario-name-keyed object otherwise.
type SeriesJSON any

type GeneratorResult struct {
	Power    SeriesJSON `json:"power,omitempty"`
	Status   SeriesJSON `json:"status,omitempty"`
	Startup  SeriesJSON `json:"startup,omitempty"`
	Shutdown SeriesJSON `json:"shutdown,omitempty"`
}

type BatteryResult struct {
	NetPower      SeriesJSON `json:"net_power,omitempty"`
	StateOfCharge SeriesJSON `json:"state_of_charge,omitempty"`
}

type MarketResult struct {
	BuyVolume  SeriesJSON `json:"buy_volume,omitempty"`
	SellVolume SeriesJSON `json:"sell_volume,omitempty"`
}

type LoadResult struct {
	Increase SeriesJSON `json:"increase,omitempty"`
	Decrease SeriesJSON `json:"decrease,omitempty"`
}

// ValidateResponse is the response for a validation-only request.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// ErrorResponse is the API's error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// TableJSON converts a result table to its JSON rendering.
func TableJSON(t *dispatch.Table) SeriesJSON {
	if t == nil {
		return nil
	}
	if t.Scenarios == nil {
		return t.Series()
	}
	out := make(map[string][]float64, len(t.Scenarios))
	for i, name := range t.Scenarios {
		out[name] = t.Values[i]
	}
	return out
}

// FromSchedule renders a schedule into the response shape.
func FromSchedule(id string, sched *dispatch.Schedule) OptimizeResponse {
	resp := OptimizeResponse{
		ID:                   id,
		Status:               string(sched.SolverStatus),
		TerminationCondition: sched.TerminationCondition,
		Objective:            sched.Objective,
		ScenarioCost:         sched.ScenarioCost,
		Generators:           make(map[string]GeneratorResult, len(sched.Generators)),
		Batteries:            make(map[string]BatteryResult, len(sched.Batteries)),
		Markets:              make(map[string]MarketResult, len(sched.Markets)),
		Loads:                make(map[string]LoadResult, len(sched.Loads)),
	}
	for name, g := range sched.Generators {
		resp.Generators[name] = GeneratorResult{
			Power:    TableJSON(g.Power),
			Status:   TableJSON(g.Status),
			Startup:  TableJSON(g.Startup),
			Shutdown: TableJSON(g.Shutdown),
		}
	}
	for name, b := range sched.Batteries {
		resp.Batteries[name] = BatteryResult{
			NetPower:      TableJSON(b.NetPower),
			StateOfCharge: TableJSON(b.StateOfCharge),
		}
	}
	for name, m := range sched.Markets {
		resp.Markets[name] = MarketResult{
			BuyVolume:  TableJSON(m.BuyVolume),
			SellVolume: TableJSON(m.SellVolume),
		}
	}
	for name, l := range sched.Loads {
		resp.Loads[name] = LoadResult{
			Increase: TableJSON(l.Increase),
			Decrease: TableJSON(l.Decrease),
		}
	}
	return resp
}
