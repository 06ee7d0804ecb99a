package model

// Portfolio is an ordered, name-unique collection of assets. Insertion order
// is preserved because the optimizer's index sets and result extraction
// depend on it being stable.
type Portfolio struct {
	assets []AssetSpec
	byName map[string]AssetSpec
}

func NewPortfolio(assets ...AssetSpec) (*Portfolio, error) {
	p := &Portfolio{byName: make(map[string]AssetSpec, len(assets))}
	for _, a := range assets {
		if err := p.Add(a); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Portfolio) Add(a AssetSpec) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if _, dup := p.byName[a.AssetName()]; dup {
		return Validationf("duplicate asset name %q", a.AssetName())
	}
	p.assets = append(p.assets, a)
	p.byName[a.AssetName()] = a
	return nil
}

func (p *Portfolio) Lookup(name string) (AssetSpec, bool) {
	a, ok := p.byName[name]
	return a, ok
}

func (p *Portfolio) Len() int { return len(p.assets) }

// Generators returns the generators in insertion order.
func (p *Portfolio) Generators() []GeneratorSpec {
	var out []GeneratorSpec
	for _, a := range p.assets {
		if g, ok := a.(GeneratorSpec); ok {
			out = append(out, g)
		}
	}
	return out
}

// Batteries returns the batteries in insertion order.
func (p *Portfolio) Batteries() []BatterySpec {
	var out []BatterySpec
	for _, a := range p.assets {
		if b, ok := a.(BatterySpec); ok {
			out = append(out, b)
		}
	}
	return out
}

// Loads returns the loads in insertion order.
func (p *Portfolio) Loads() []LoadSpec {
	var out []LoadSpec
	for _, a := range p.assets {
		if l, ok := a.(LoadSpec); ok {
			out = append(out, l)
		}
	}
	return out
}
