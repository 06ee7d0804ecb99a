package model

// TradeDirection restricts which side of a market may be used.
type TradeDirection string

const (
	TradeBuy  TradeDirection = "buy"
	TradeSell TradeDirection = "sell"
	TradeBoth TradeDirection = "both"
)

// MarketSpec describes a trading market the portfolio can buy from or sell
// into. Volumes are power setpoints in MW held for one timestep.
//
// StageFixed marks the market's trading decision as made before uncertainty
// is resolved: its volume variables are shared across all scenarios instead
// of being scenario-specific (non-anticipativity).
type MarketSpec struct {
	Name        string
	MaxVolumeMW float64
	Direction   TradeDirection
	StageFixed  bool
}

func (m MarketSpec) Validate() error {
	if m.Name == "" {
		return Validationf("market name is required")
	}
	if m.MaxVolumeMW <= 0 {
		return Validationf("market %q: MaxVolumeMW must be > 0", m.Name)
	}
	switch m.Direction {
	case TradeBuy, TradeSell, TradeBoth:
	default:
		return Validationf("market %q: unknown trade direction %q", m.Name, m.Direction)
	}
	return nil
}

func (m MarketSpec) AllowsBuy() bool  { return m.Direction == TradeBuy || m.Direction == TradeBoth }
func (m MarketSpec) AllowsSell() bool { return m.Direction == TradeSell || m.Direction == TradeBoth }
