package models

// OptimizeRequest is the request body for running an optimization. It
// carries a full system description inline; there is no server-side state
// between requests.
type OptimizeRequest struct {
	System  SystemRequest  `json:"system" binding:"required"`
	Options RequestOptions `json:"options,omitempty"`
}

// SystemRequest mirrors the YAML config shape with JSON tags.
type SystemRequest struct {
	TimeGrid   TimeGridRequest    `json:"time_grid" binding:"required"`
	Generators []GeneratorRequest `json:"generators,omitempty"`
	Batteries  []BatteryRequest   `json:"batteries,omitempty"`
	Loads      []LoadRequest      `json:"loads,omitempty"`
	Markets    []MarketRequest    `json:"markets,omitempty"`
	Scenarios  []ScenarioRequest  `json:"scenarios" binding:"required"`
}

type TimeGridRequest struct {
	StepHours float64 `json:"step_hours"`
	Steps     int     `json:"steps"`
}

type GeneratorRequest struct {
	Name               string   `json:"name"`
	NominalPowerMW     float64  `json:"nominal_power_mw"`
	VariableCostPerMWh float64  `json:"variable_cost_per_mwh"`
	MinPowerMW         float64  `json:"min_power_mw,omitempty"`
	RampUpMWPerHour    *float64 `json:"ramp_up_mw_per_hour,omitempty"`
	RampDownMWPerHour  *float64 `json:"ramp_down_mw_per_hour,omitempty"`
	MinUpTimeSteps     int      `json:"min_up_time_steps,omitempty"`
	MinDownTimeSteps   int      `json:"min_down_time_steps,omitempty"`
	StartupCost        float64  `json:"startup_cost,omitempty"`
	ShutdownCost       float64  `json:"shutdown_cost,omitempty"`
}

type BatteryRequest struct {
	Name                     string   `json:"name"`
	CapacityMWh              float64  `json:"capacity_mwh"`
	MaxPowerMW               float64  `json:"max_power_mw"`
	ChargeEfficiency         float64  `json:"charge_efficiency"`
	DischargeEfficiency      float64  `json:"discharge_efficiency"`
	SocStart                 float64  `json:"soc_start"`
	SocEnd                   *float64 `json:"soc_end,omitempty"`
	SocMin                   float64  `json:"soc_min"`
	SocMax                   float64  `json:"soc_max"`
	DegradationCostPerMWh    float64  `json:"degradation_cost_per_mwh,omitempty"`
	SelfDischargeRatePerStep float64  `json:"self_discharge_rate_per_step,omitempty"`
}

type LoadRequest struct {
	Name                   string  `json:"name"`
	Type                   string  `json:"type"`
	VariableCostToIncrease float64 `json:"variable_cost_to_increase,omitempty"`
	VariableCostToDecrease float64 `json:"variable_cost_to_decrease,omitempty"`
}

type MarketRequest struct {
	Name        string  `json:"name"`
	MaxVolumeMW float64 `json:"max_volume_mw"`
	Direction   string  `json:"direction"`
	StageFixed  bool    `json:"stage_fixed,omitempty"`
}

type ScenarioRequest struct {
	Name                      string               `json:"name"`
	Probability               float64              `json:"probability"`
	LoadProfiles              map[string][]float64 `json:"load_profiles,omitempty"`
	AvailableCapacityProfiles map[string][]float64 `json:"available_capacity_profiles,omitempty"`
	MarketPrices              map[string][]float64 `json:"market_prices,omitempty"`
}

// RequestOptions carries solver knobs the caller may set per request.
type RequestOptions struct {
	// TimeLimitSeconds caps the solve; 0 means no limit.
	TimeLimitSeconds float64 `json:"time_limit_seconds,omitempty"`
}
