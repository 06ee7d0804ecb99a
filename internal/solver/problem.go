package solver

import "math"

// VarType is the domain of a decision variable.
type VarType int8

const (
	ContinuousVar VarType = iota
	BinaryVar
)

// Column is one decision variable: bounds, objective coefficient, domain.
type Column struct {
	Name  string
	Lower float64
	Upper float64
	Cost  float64
	Type  VarType
}

// Nonzero is one entry of a sparse constraint row.
type Nonzero struct {
	Col int
	Val float64
}

// Row is one linear constraint: Lower <= sum(Coeffs * x) <= Upper.
type Row struct {
	Name   string
	Lower  float64
	Upper  float64
	Coeffs []Nonzero
}

// Problem is the solver submission: a linear objective to minimize over
// bounded columns subject to two-sided linear rows. It is the only shape the
// dispatch core produces and the only shape solver adapters consume.
type Problem struct {
	Cols []Column
	Rows []Row
}

// AddColumn appends a variable and returns its column index.
func (p *Problem) AddColumn(c Column) int {
	p.Cols = append(p.Cols, c)
	return len(p.Cols) - 1
}

// AddRow appends a two-sided constraint.
func (p *Problem) AddRow(name string, lower float64, coeffs []Nonzero, upper float64) {
	p.Rows = append(p.Rows, Row{Name: name, Lower: lower, Upper: upper, Coeffs: coeffs})
}

// AddEqRow appends sum(coeffs * x) = rhs.
func (p *Problem) AddEqRow(name string, coeffs []Nonzero, rhs float64) {
	p.AddRow(name, rhs, coeffs, rhs)
}

// AddLeRow appends sum(coeffs * x) <= rhs.
func (p *Problem) AddLeRow(name string, coeffs []Nonzero, rhs float64) {
	p.AddRow(name, math.Inf(-1), coeffs, rhs)
}

// AddGeRow appends sum(coeffs * x) >= rhs.
func (p *Problem) AddGeRow(name string, coeffs []Nonzero, rhs float64) {
	p.AddRow(name, rhs, coeffs, math.Inf(1))
}

// HasIntegrality reports whether any column is non-continuous. A problem
// without binaries is a pure LP and solvers may skip branch-and-bound.
func (p *Problem) HasIntegrality() bool {
	for _, c := range p.Cols {
		if c.Type != ContinuousVar {
			return true
		}
	}
	return false
}

// Activities evaluates every row's left-hand side at the given point.
func (p *Problem) Activities(values []float64) []float64 {
	out := make([]float64, len(p.Rows))
	for i, r := range p.Rows {
		a := 0.0
		for _, nz := range r.Coeffs {
			a += nz.Val * values[nz.Col]
		}
		out[i] = a
	}
	return out
}

// ObjectiveValue evaluates the objective at the given point.
func (p *Problem) ObjectiveValue(values []float64) float64 {
	obj := 0.0
	for i, c := range p.Cols {
		obj += c.Cost * values[i]
	}
	return obj
}
