package solver

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteLP writes the problem in CPLEX LP text format, for inspection with
// external tooling. Column and row names are sanitized to the LP identifier
// charset; unnamed entries get positional names.
func (p *Problem) WriteLP(w io.Writer) error {
	names := make([]string, len(p.Cols))
	for i, c := range p.Cols {
		names[i] = lpName(c.Name, "x", i)
	}

	var b strings.Builder
	b.WriteString("Minimize\n obj:")
	wrote := false
	for i, c := range p.Cols {
		if c.Cost == 0 {
			continue
		}
		b.WriteString(lpTerm(c.Cost, names[i], !wrote))
		wrote = true
	}
	if !wrote {
		b.WriteString(" 0 " + firstName(names))
	}
	b.WriteString("\nSubject To\n")

	for i, r := range p.Rows {
		name := lpName(r.Name, "c", i)
		lhs := &strings.Builder{}
		first := true
		for _, nz := range r.Coeffs {
			lhs.WriteString(lpTerm(nz.Val, names[nz.Col], first))
			first = false
		}
		if first {
			lhs.WriteString(" 0 " + firstName(names))
		}
		switch {
		case r.Lower == r.Upper:
			fmt.Fprintf(&b, " %s:%s = %g\n", name, lhs.String(), r.Upper)
		case math.IsInf(r.Lower, -1) && !math.IsInf(r.Upper, 1):
			fmt.Fprintf(&b, " %s:%s <= %g\n", name, lhs.String(), r.Upper)
		case !math.IsInf(r.Lower, -1) && math.IsInf(r.Upper, 1):
			fmt.Fprintf(&b, " %s:%s >= %g\n", name, lhs.String(), r.Lower)
		default:
			// Ranged rows are split into the two one-sided forms.
			fmt.Fprintf(&b, " %s_lo:%s >= %g\n", name, lhs.String(), r.Lower)
			fmt.Fprintf(&b, " %s_hi:%s <= %g\n", name, lhs.String(), r.Upper)
		}
	}

	b.WriteString("Bounds\n")
	for i, c := range p.Cols {
		lo, hi := boundStr(c.Lower), boundStr(c.Upper)
		fmt.Fprintf(&b, " %s <= %s <= %s\n", lo, names[i], hi)
	}

	if p.HasIntegrality() {
		b.WriteString("Binary\n")
		for i, c := range p.Cols {
			if c.Type == BinaryVar {
				fmt.Fprintf(&b, " %s\n", names[i])
			}
		}
	}

	b.WriteString("End\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func lpTerm(coef float64, name string, first bool) string {
	switch {
	case first:
		return fmt.Sprintf(" %g %s", coef, name)
	case coef < 0:
		return fmt.Sprintf(" - %g %s", -coef, name)
	default:
		return fmt.Sprintf(" + %g %s", coef, name)
	}
}

func lpName(name, prefix string, idx int) string {
	if name == "" {
		return fmt.Sprintf("%s%d", prefix, idx)
	}
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	return sanitized
}

func firstName(names []string) string {
	if len(names) == 0 {
		return "x0"
	}
	return names[0]
}

func boundStr(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsInf(v, 1):
		return "+inf"
	default:
		return fmt.Sprintf("%g", v)
	}
}
