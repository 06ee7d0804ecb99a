package model

// AssetKind tags the asset variants. Keep these values stable; they are used
// in YAML/JSON input and CSV output.
type AssetKind string

const (
	KindGenerator AssetKind = "generator"
	KindBattery   AssetKind = "battery"
	KindLoad      AssetKind = "load"
)

// AssetSpec is the shared capability of the asset variants: a stable name, a
// kind tag, and constructor-time validation. Dispatch over Kind replaces any
// deeper hierarchy.
type AssetSpec interface {
	AssetName() string
	Kind() AssetKind
	Validate() error
}

// GeneratorSpec describes a dispatchable generator.
// Units:
// - NominalPowerMW, MinPowerMW: MW
// - VariableCostPerMWh, StartupCost, ShutdownCost: $ ($/MWh for variable cost, $ per event otherwise)
// - RampUpMWPerHour/RampDownMWPerHour: MW per hour (nil = unlimited)
// - MinUpTimeSteps/MinDownTimeSteps: timesteps, >= 1
type GeneratorSpec struct {
	Name               string
	NominalPowerMW     float64
	VariableCostPerMWh float64
	MinPowerMW         float64
	RampUpMWPerHour    *float64
	RampDownMWPerHour  *float64
	MinUpTimeSteps     int
	MinDownTimeSteps   int
	StartupCost        float64
	ShutdownCost       float64
}

func (g GeneratorSpec) AssetName() string { return g.Name }
func (g GeneratorSpec) Kind() AssetKind   { return KindGenerator }

func (g GeneratorSpec) Validate() error {
	if g.Name == "" {
		return Validationf("generator name is required")
	}
	if g.NominalPowerMW <= 0 {
		return Validationf("generator %q: NominalPowerMW must be > 0", g.Name)
	}
	if g.MinPowerMW < 0 || g.MinPowerMW > g.NominalPowerMW {
		return Validationf("generator %q: MinPowerMW must be in [0, NominalPowerMW]", g.Name)
	}
	if g.RampUpMWPerHour != nil && *g.RampUpMWPerHour <= 0 {
		return Validationf("generator %q: RampUpMWPerHour must be > 0 when set", g.Name)
	}
	if g.RampDownMWPerHour != nil && *g.RampDownMWPerHour <= 0 {
		return Validationf("generator %q: RampDownMWPerHour must be > 0 when set", g.Name)
	}
	if g.MinUpTimeSteps < 1 || g.MinDownTimeSteps < 1 {
		return Validationf("generator %q: min up/down times must be >= 1 step", g.Name)
	}
	if g.StartupCost < 0 || g.ShutdownCost < 0 {
		return Validationf("generator %q: startup/shutdown costs must be >= 0", g.Name)
	}
	return nil
}

// NeedsCommitment reports whether the generator requires on/off scheduling.
// A generator with none of the commitment parameters set stays purely
// continuous, so a portfolio of such generators produces an LP, not a MILP.
// MinPowerMW > 0 forces commitment too: without a status binary the unit
// could never be switched off.
func (g GeneratorSpec) NeedsCommitment() bool {
	return g.MinUpTimeSteps > 1 ||
		g.MinDownTimeSteps > 1 ||
		g.StartupCost > 0 ||
		g.ShutdownCost > 0 ||
		g.MinPowerMW > 0
}

// BatterySpec describes an energy storage asset.
// Units:
// - CapacityMWh: MWh
// - MaxPowerMW: MW (both charge and discharge)
// - Efficiencies: (0, 1]
// - SocStart, SocEnd, SocMin, SocMax: fraction of capacity in [0, 1]
// - DegradationCostPerMWh: $/MWh throughput (charge + discharge)
// - SelfDischargeRatePerStep: fraction of stored energy lost per timestep
type BatterySpec struct {
	Name                     string
	CapacityMWh              float64
	MaxPowerMW               float64
	ChargeEfficiency         float64
	DischargeEfficiency      float64
	SocStart                 float64
	SocEnd                   *float64
	SocMin                   float64
	SocMax                   float64
	DegradationCostPerMWh    float64
	SelfDischargeRatePerStep float64
}

func (b BatterySpec) AssetName() string { return b.Name }
func (b BatterySpec) Kind() AssetKind   { return KindBattery }

func (b BatterySpec) Validate() error {
	if b.Name == "" {
		return Validationf("battery name is required")
	}
	if b.CapacityMWh <= 0 {
		return Validationf("battery %q: CapacityMWh must be > 0", b.Name)
	}
	if b.MaxPowerMW <= 0 {
		return Validationf("battery %q: MaxPowerMW must be > 0", b.Name)
	}
	if b.ChargeEfficiency <= 0 || b.ChargeEfficiency > 1 {
		return Validationf("battery %q: ChargeEfficiency must be in (0, 1]", b.Name)
	}
	if b.DischargeEfficiency <= 0 || b.DischargeEfficiency > 1 {
		return Validationf("battery %q: DischargeEfficiency must be in (0, 1]", b.Name)
	}
	if b.SocMin < 0 || b.SocMax > 1 || b.SocMin > b.SocMax {
		return Validationf("battery %q: must satisfy 0 <= SocMin <= SocMax <= 1", b.Name)
	}
	if b.SocStart < b.SocMin || b.SocStart > b.SocMax {
		return Validationf("battery %q: SocStart must be within [SocMin, SocMax]", b.Name)
	}
	if b.SocEnd != nil && (*b.SocEnd < b.SocMin || *b.SocEnd > b.SocMax) {
		return Validationf("battery %q: SocEnd must be within [SocMin, SocMax]", b.Name)
	}
	if b.DegradationCostPerMWh < 0 {
		return Validationf("battery %q: DegradationCostPerMWh must be >= 0", b.Name)
	}
	if b.SelfDischargeRatePerStep < 0 || b.SelfDischargeRatePerStep >= 1 {
		return Validationf("battery %q: SelfDischargeRatePerStep must be in [0, 1)", b.Name)
	}
	return nil
}

// LoadType distinguishes demand that must be served exactly from demand the
// optimizer may shift at a cost.
type LoadType string

const (
	LoadFixed    LoadType = "fixed"
	LoadFlexible LoadType = "flexible"
)

// LoadSpec describes a demand asset. Flexible loads may deviate from their
// profile; the deviation is priced per MWh in each direction.
type LoadSpec struct {
	Name                   string
	Type                   LoadType
	VariableCostToIncrease float64
	VariableCostToDecrease float64
}

func (l LoadSpec) AssetName() string { return l.Name }
func (l LoadSpec) Kind() AssetKind   { return KindLoad }

func (l LoadSpec) Validate() error {
	if l.Name == "" {
		return Validationf("load name is required")
	}
	switch l.Type {
	case LoadFixed:
	case LoadFlexible:
		if l.VariableCostToIncrease <= 0 || l.VariableCostToDecrease <= 0 {
			return Validationf("load %q: flexible loads require VariableCostToIncrease and VariableCostToDecrease > 0", l.Name)
		}
	default:
		return Validationf("load %q: unknown load type %q", l.Name, l.Type)
	}
	return nil
}

func (l LoadSpec) Flexible() bool { return l.Type == LoadFlexible }
