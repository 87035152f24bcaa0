// core/props/props.go
// Material and phase-change correlations shared by the plant models.
//
// Units: densities kg/m3, heat capacities J/(kg·K) for the solid correlation and
// kJ/(kg·K) for the tabulated gas/water values, temperatures K, pressures Pa.
package props

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Bulk densities, kg/m3.
const (
	RegolithDensity = 1400.0
	IlmeniteDensity = 1400.0 // bulk ilmenite taken equal to regolith bulk density
	IceDensity      = 910.0
)

// Water properties.
const (
	TriplePointPressure    = 611.657 // Pa
	TriplePointTemperature = 273.16  // K

	CpIce   = 2.10 // kJ/(kg·K)
	CpSteam = 1.9  // kJ/(kg·K)

	EnthalpyFusion       = 333.5  // kJ/kg
	EnthalpyVaporization = 2257.0 // kJ/kg
)

// Gas heat capacities, kJ/(kg·K).
const (
	CpH2O = 2.047
	CpCH4 = 2.232
	CpH2  = 14.57
	CpCO2 = 1.102
	CpCO  = 1.046
)

// quadPoints is the Gauss–Legendre order used for the heat-capacity integral.
const quadPoints = 64

// HeatCapacity is the ilmenite/regolith specific heat correlation, J/(kg·K).
func HeatCapacity(tK float64) float64 {
	return -1848.5 + 1047.41*math.Log10(tK)
}

// HeatCapacityIntegral returns ∫ HeatCapacity dT from a to b, J/kg.
func HeatCapacityIntegral(a, b float64) float64 {
	switch {
	case a == b:
		return 0
	case a > b:
		return -quad.Fixed(HeatCapacity, b, a, quadPoints, nil, 0)
	}
	return quad.Fixed(HeatCapacity, a, b, quadPoints, nil, 0)
}

// GasFlow is one component of a gas stream (kg/day) with its heat capacity (kJ/(kg·K)).
type GasFlow struct {
	Mass float64
	Cp   float64
}

// MixtureCp returns the mass-weighted heat capacity of a gas stream and its total mass flow.
// An empty or massless stream reports zero for both.
func MixtureCp(parts ...GasFlow) (cp, mass float64) {
	var sum float64
	for _, p := range parts {
		mass += p.Mass
		sum += p.Mass * p.Cp
	}
	if mass == 0 {
		return 0, 0
	}
	return sum / mass, mass
}
