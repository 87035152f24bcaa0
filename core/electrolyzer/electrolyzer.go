// core/electrolyzer/electrolyzer.go
// Water electrolysis unit producing O2 and H2.
//
// Power follows the Gibbs free energy of water over the cell efficiency; the
// remainder of the input power is rejected as heat. Mass scales linearly with
// power through the component specific masses of Colozza (2020), Table 6.
//
// Source: A. J. Colozza, "Small Lunar Base Camp and In Situ Resource Utilization
// Oxygen Production Facility Power System Comparison", 2020, Eqs. (26), (29), (30).
package electrolyzer

import (
	"isru-core/inputs"
	"isru-core/report"
	"isru-core/units"
)

const Name = "electrolyzer"

// GibbsWater is ΔG of water formation, kJ/mol (p. 14).
const GibbsWater = 230.4

// SpecificMass lists component specific masses, kg/kW (Table 6).
var SpecificMass = []struct {
	Component string
	KgPerKW   float64
}{
	{"electrolysis stack", 2.00},
	{"water tank", 0.10},
	{"fittings", 0.12},
	{"plumbing", 0.52},
	{"control unit", 0.16},
	{"wiring", 0.30},
	{"heat exchanger", 1.00},
	{"water pump", 0.27},
	{"check valves", 0.08},
	{"frame", 0.62},
	{"control valves", 0.16},
	{"sensors", 0.07},
	{"fluid separator", 0.06},
}

// TotalSpecificMass is the sum of SpecificMass, kg/kW.
func TotalSpecificMass() float64 {
	var s float64
	for _, c := range SpecificMass {
		s += c.KgPerKW
	}
	return s
}

type Params struct {
	Efficiency float64 `yaml:"efficiency" json:"efficiency"` // power efficiency, 0..1
	WaterLoad  float64 `yaml:"water_load" json:"water_load"` // kg/day electrolysed
}

// Default is the Colozza baseline.
func Default() Params {
	return Params{Efficiency: 0.72, WaterLoad: 44.01}
}

func (p Params) Validate() error {
	return inputs.For(Name).
		Fraction("efficiency", p.Efficiency).
		NonNegative("water_load", p.WaterLoad).
		Err()
}

type Result struct {
	Params           Params
	Power            float64 // kW
	HeatToDissipate  float64 // kW
	Mass             float64 // kg
	OxygenProduced   float64 // kg/day
	HydrogenProduced float64 // kg/day
}

// Evaluate sizes the electrolyzer for the water load.
func Evaluate(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	// kJ/day of free energy carried by the water split.
	gibbs := GibbsWater * p.WaterLoad / units.KgPerMol(units.MolarH2O)

	power := units.KJPerDayToKW(gibbs / p.Efficiency)
	return Result{
		Params:           p,
		Power:            power,
		HeatToDissipate:  units.KJPerDayToKW(gibbs * (1/p.Efficiency - 1)),
		Mass:             power * TotalSpecificMass(),
		OxygenProduced:   p.WaterLoad * units.OxygenPerWater,
		HydrogenProduced: p.WaterLoad * units.HydrogenPerWater,
	}, nil
}

func (p Params) Inputs() []report.Figure {
	return []report.Figure{
		report.F("efficiency", "Efficiency", "", p.Efficiency),
		report.F("water_load", "H2O Load", "kg/day", p.WaterLoad),
	}
}

func (r Result) Report() report.Report {
	return report.Report{
		Model:  Name,
		Title:  "Electrolyzer",
		Inputs: r.Params.Inputs(),
		Figures: []report.Figure{
			report.F("power", "Power", "kW", r.Power),
			report.F("heat_to_dissipate", "Heat to Dissipate", "kW", r.HeatToDissipate),
			report.F("mass", "Mass", "kg", r.Mass),
			report.F("o2_production", "O2 Production Rate", "kg/day", r.OxygenProduced),
			report.F("h2_production", "H2 Production Rate", "kg/day", r.HydrogenProduced),
		},
	}
}
