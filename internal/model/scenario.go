package model

import "math"

// DeterministicScenarioName is the synthetic name given to the single
// scenario of a deterministic run when the caller did not name it.
const DeterministicScenarioName = "deterministic"

// probabilityTolerance bounds the accepted deviation of the scenario
// probability sum from 1.0.
const probabilityTolerance = 1e-6

// Scenario is one probabilistic operating condition: per-timestep demand per
// load, available capacity per generator, and prices per market. All profile
// slices must have the time grid's length.
type Scenario struct {
	Name                      string
	Probability               float64
	LoadProfiles              map[string][]float64
	AvailableCapacityProfiles map[string][]float64
	MarketPrices              map[string][]float64
}

// ScenarioSet is a validated, ordered scenario collection. A single unnamed
// scenario is normalized to the deterministic singleton (name
// DeterministicScenarioName, probability 1.0).
type ScenarioSet struct {
	scenarios []Scenario
}

// NewScenarioSet validates the joint properties of a raw scenario list:
// probabilities in [0, 1] summing to 1.0 within tolerance, and unique names.
// These checks live here, not in an upstream validator, because they are
// properties of the whole collection. An empty list synthesizes the
// deterministic singleton with no profiles; whether that system is complete
// is decided later, during parameter resolution.
func NewScenarioSet(scenarios []Scenario) (*ScenarioSet, error) {
	if len(scenarios) == 0 {
		scenarios = []Scenario{{}}
	}

	scs := make([]Scenario, len(scenarios))
	copy(scs, scenarios)

	if len(scs) == 1 {
		if scs[0].Name == "" {
			scs[0].Name = DeterministicScenarioName
		}
		if scs[0].Probability == 0 {
			scs[0].Probability = 1.0
		}
	}

	seen := make(map[string]struct{}, len(scs))
	sum := 0.0
	for _, sc := range scs {
		if sc.Name == "" {
			return nil, Validationf("scenario names are required when multiple scenarios are used")
		}
		if _, dup := seen[sc.Name]; dup {
			return nil, Validationf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = struct{}{}
		if sc.Probability < 0 || sc.Probability > 1 {
			return nil, Validationf("scenario %q: probability must be in [0, 1]", sc.Name)
		}
		sum += sc.Probability
	}
	if math.Abs(sum-1.0) > probabilityTolerance {
		return nil, Validationf("scenario probabilities must sum to 1.0, got %g", sum)
	}

	return &ScenarioSet{scenarios: scs}, nil
}

// Scenarios returns the scenarios in insertion order.
func (s *ScenarioSet) Scenarios() []Scenario { return s.scenarios }

// Deterministic reports whether the set is the single-scenario case, in which
// result tables drop the scenario dimension.
func (s *ScenarioSet) Deterministic() bool { return len(s.scenarios) == 1 }
