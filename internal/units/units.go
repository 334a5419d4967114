// Package units implements the dimensional algebra used to infer the
// physical units of reaction rate coefficients.
//
// A Units value is a product of SI base units raised to (possibly
// fractional) powers. A UnitStack is an ordered accumulation of
// (Units, exponent) terms seeded from a phase's standard concentration
// units; the rate-coefficient inference walks reaction orders and
// stoichiometry and folds each contribution into the stack.
package units

import (
	"fmt"
	"math"
	"strings"
)

// Units represents a physical unit as a scale factor times SI base units
// raised to the given exponents. Amount of substance is tracked in kmol,
// matching the convention of combustion-kinetics literature.
type Units struct {
	Factor   float64
	Metre    float64
	Kilogram float64
	Second   float64
	Kelvin   float64
	Ampere   float64
	Kmol     float64
}

// Dimensionless returns the unit 1.
func Dimensionless() Units {
	return Units{Factor: 1}
}

// PerSecond returns the unit 1/s.
func PerSecond() Units {
	return Units{Factor: 1, Second: -1}
}

// MolarDensity returns kmol/m^3, the standard concentration unit of an
// ideal bulk phase.
func MolarDensity() Units {
	return Units{Factor: 1, Kmol: 1, Metre: -3}
}

// SurfaceCoverage returns kmol/m^2, the standard concentration unit of a
// surface phase.
func SurfaceCoverage() Units {
	return Units{Factor: 1, Kmol: 1, Metre: -2}
}

// IsDimensionless reports whether all base-unit exponents are zero.
func (u Units) IsDimensionless() bool {
	return u.Metre == 0 && u.Kilogram == 0 && u.Second == 0 &&
		u.Kelvin == 0 && u.Ampere == 0 && u.Kmol == 0
}

// SameDimensions reports whether two units share every base-unit exponent.
// The scale factor is ignored; kmol/m^3 and mol/cm^3 compare equal.
func (u Units) SameDimensions(o Units) bool {
	return u.Metre == o.Metre && u.Kilogram == o.Kilogram &&
		u.Second == o.Second && u.Kelvin == o.Kelvin &&
		u.Ampere == o.Ampere && u.Kmol == o.Kmol
}

// Times returns the product of two units.
func (u Units) Times(o Units) Units {
	return Units{
		Factor:   u.Factor * o.Factor,
		Metre:    u.Metre + o.Metre,
		Kilogram: u.Kilogram + o.Kilogram,
		Second:   u.Second + o.Second,
		Kelvin:   u.Kelvin + o.Kelvin,
		Ampere:   u.Ampere + o.Ampere,
		Kmol:     u.Kmol + o.Kmol,
	}
}

// Pow raises the unit to the given power.
func (u Units) Pow(n float64) Units {
	return Units{
		Factor:   math.Pow(u.Factor, n),
		Metre:    u.Metre * n,
		Kilogram: u.Kilogram * n,
		Second:   u.Second * n,
		Kelvin:   u.Kelvin * n,
		Ampere:   u.Ampere * n,
		Kmol:     u.Kmol * n,
	}
}

// String renders the unit as a quotient of base units, e.g. "m^3/kmol/s".
// Dimensionless units render as "1".
func (u Units) String() string {
	type dim struct {
		symbol string
		exp    float64
	}
	dims := []dim{
		{"m", u.Metre},
		{"kg", u.Kilogram},
		{"s", u.Second},
		{"K", u.Kelvin},
		{"A", u.Ampere},
		{"kmol", u.Kmol},
	}

	var num, den []string
	for _, d := range dims {
		switch {
		case d.exp == 0:
		case d.exp == 1:
			num = append(num, d.symbol)
		case d.exp == -1:
			den = append(den, d.symbol)
		case d.exp > 0:
			num = append(num, fmt.Sprintf("%s^%s", d.symbol, trimFloat(d.exp)))
		default:
			den = append(den, fmt.Sprintf("%s^%s", d.symbol, trimFloat(-d.exp)))
		}
	}

	var b strings.Builder
	if len(num) == 0 {
		b.WriteString("1")
	} else {
		b.WriteString(strings.Join(num, "*"))
	}
	for _, d := range den {
		b.WriteString("/")
		b.WriteString(d)
	}
	return b.String()
}

func trimFloat(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
