package model

// TimeGrid defines the optimization horizon: Steps timesteps of StepHours
// hours each, indexed 0..Steps-1. Every per-timestep profile must have
// exactly Steps entries.
type TimeGrid struct {
	StepHours float64
	Steps     int
}

func (t TimeGrid) Validate() error {
	if t.StepHours <= 0 {
		return Validationf("time grid: StepHours must be > 0")
	}
	if t.Steps < 1 {
		return Validationf("time grid: Steps must be >= 1")
	}
	return nil
}

// System bundles everything one optimization run consumes: the asset
// portfolio, the optional market set, one or more scenarios, and the time
// grid. It is read-only input to the optimizer.
type System struct {
	Portfolio *Portfolio
	Markets   []MarketSpec
	Scenarios []Scenario
	Grid      TimeGrid
}

// Validate runs the constructor-time checks: grid and per-spec validation
// plus market name uniqueness. Joint scenario properties are re-checked by
// the optimizer through NewScenarioSet regardless, so a System built from
// already-validated parts stays cheap to re-validate.
func (s *System) Validate() error {
	if s.Portfolio == nil || s.Portfolio.Len() == 0 {
		return Validationf("portfolio must contain at least one asset")
	}
	if err := s.Grid.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(s.Markets))
	for _, m := range s.Markets {
		if err := m.Validate(); err != nil {
			return err
		}
		if _, dup := seen[m.Name]; dup {
			return Validationf("duplicate market name %q", m.Name)
		}
		if _, clash := s.Portfolio.Lookup(m.Name); clash {
			return Validationf("market name %q collides with an asset name", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	if _, err := NewScenarioSet(s.Scenarios); err != nil {
		return err
	}
	return nil
}
