package dispatch

import "portfolio-dispatch/internal/model"

// IndexSets fixes the iteration order of every model dimension: timesteps
// 0..Steps-1, scenarios in insertion order, assets and markets in portfolio
// insertion order. Result extraction inverts the variable layout, so this
// ordering must be deterministic and stable; building the sets twice from
// the same system yields identical sets.
type IndexSets struct {
	Steps      int
	StepHours  float64
	Scenarios  []model.Scenario
	Generators []model.GeneratorSpec
	Batteries  []model.BatterySpec
	Loads      []model.LoadSpec
	Markets    []model.MarketSpec

	// Deterministic is true for single-scenario runs; result tables then
	// drop the scenario dimension.
	Deterministic bool
}

// BuildSets derives the index sets from a system whose scenario list has
// already passed joint validation.
func BuildSets(sys *model.System, scenarios *model.ScenarioSet) *IndexSets {
	return &IndexSets{
		Steps:         sys.Grid.Steps,
		StepHours:     sys.Grid.StepHours,
		Scenarios:     scenarios.Scenarios(),
		Generators:    sys.Portfolio.Generators(),
		Batteries:     sys.Portfolio.Batteries(),
		Loads:         sys.Portfolio.Loads(),
		Markets:       sys.Markets,
		Deterministic: scenarios.Deterministic(),
	}
}

// ScenarioNames returns the scenario names in index order.
func (s *IndexSets) ScenarioNames() []string {
	names := make([]string, len(s.Scenarios))
	for i, sc := range s.Scenarios {
		names[i] = sc.Name
	}
	return names
}
