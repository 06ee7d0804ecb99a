package dispatch

import (
	"math"

	"portfolio-dispatch/internal/model"
)

// Parameters are the flattened numeric tables the constraint builders read.
// Every (scenario, asset-or-market, timestep) combination has a defined
// value after resolution; sparse scenario profiles are either defaulted or
// rejected here, never inside a builder.
type Parameters struct {
	StepHours   float64
	Probability []float64 // per scenario

	// DemandMW is the fixed base demand profile per load: [scenario][load][t].
	// Loads must carry a profile in every scenario; a missing profile is a
	// configuration error, not zero demand.
	DemandMW [][][]float64

	// AvailableCapacityMW is the per-step generator availability:
	// [scenario][generator][t]. Generators without a profile default to
	// nominal power; profile values are capped at nominal power.
	AvailableCapacityMW [][][]float64

	// PricePerMWh is the market price: [scenario][market][t]. Markets must
	// carry a price profile in every scenario.
	PricePerMWh [][][]float64
}

// ResolveParameters flattens the scenario profiles over the index sets.
// It fails with a ConfigError when a profile references an unknown asset or
// market name, when a profile's length differs from the grid, or when a
// required profile is missing.
func ResolveParameters(sets *IndexSets) (*Parameters, error) {
	nScen := len(sets.Scenarios)
	p := &Parameters{
		StepHours:           sets.StepHours,
		Probability:         make([]float64, nScen),
		DemandMW:            make([][][]float64, nScen),
		AvailableCapacityMW: make([][][]float64, nScen),
		PricePerMWh:         make([][][]float64, nScen),
	}

	genIdx := make(map[string]int, len(sets.Generators))
	for i, g := range sets.Generators {
		genIdx[g.Name] = i
	}
	loadIdx := make(map[string]int, len(sets.Loads))
	for i, l := range sets.Loads {
		loadIdx[l.Name] = i
	}
	mktIdx := make(map[string]int, len(sets.Markets))
	for i, m := range sets.Markets {
		mktIdx[m.Name] = i
	}

	for s, sc := range sets.Scenarios {
		p.Probability[s] = sc.Probability

		// Loads: every load needs a profile, every profile needs a load.
		p.DemandMW[s] = make([][]float64, len(sets.Loads))
		for name, prof := range sc.LoadProfiles {
			l, ok := loadIdx[name]
			if !ok {
				return nil, model.Configf("scenario %q: load profile references unknown load %q", sc.Name, name)
			}
			if len(prof) != sets.Steps {
				return nil, model.Configf("scenario %q: load profile %q has %d entries, want %d", sc.Name, name, len(prof), sets.Steps)
			}
			p.DemandMW[s][l] = prof
		}
		for i, l := range sets.Loads {
			if p.DemandMW[s][i] == nil {
				return nil, model.Configf("scenario %q: missing load profile for %q", sc.Name, l.Name)
			}
		}

		// Generators: missing profile means available at nominal power.
		p.AvailableCapacityMW[s] = make([][]float64, len(sets.Generators))
		for name, prof := range sc.AvailableCapacityProfiles {
			g, ok := genIdx[name]
			if !ok {
				return nil, model.Configf("scenario %q: capacity profile references unknown generator %q", sc.Name, name)
			}
			if len(prof) != sets.Steps {
				return nil, model.Configf("scenario %q: capacity profile %q has %d entries, want %d", sc.Name, name, len(prof), sets.Steps)
			}
			capped := make([]float64, sets.Steps)
			for t, v := range prof {
				if v < 0 {
					return nil, model.Configf("scenario %q: capacity profile %q has negative value at step %d", sc.Name, name, t)
				}
				capped[t] = math.Min(v, sets.Generators[g].NominalPowerMW)
			}
			p.AvailableCapacityMW[s][g] = capped
		}
		for i, g := range sets.Generators {
			if p.AvailableCapacityMW[s][i] == nil {
				full := make([]float64, sets.Steps)
				for t := range full {
					full[t] = g.NominalPowerMW
				}
				p.AvailableCapacityMW[s][i] = full
			}
		}

		// Markets: every market needs a price profile.
		p.PricePerMWh[s] = make([][]float64, len(sets.Markets))
		for name, prof := range sc.MarketPrices {
			m, ok := mktIdx[name]
			if !ok {
				return nil, model.Configf("scenario %q: price profile references unknown market %q", sc.Name, name)
			}
			if len(prof) != sets.Steps {
				return nil, model.Configf("scenario %q: price profile %q has %d entries, want %d", sc.Name, name, len(prof), sets.Steps)
			}
			p.PricePerMWh[s][m] = prof
		}
		for i, m := range sets.Markets {
			if p.PricePerMWh[s][i] == nil {
				return nil, model.Configf("scenario %q: missing price profile for market %q", sc.Name, m.Name)
			}
		}
	}

	return p, nil
}
