// core/ilmenite/ilmenite.go
// Hydrogen reduction of ilmenite (FeTiO3 + H2 -> Fe + TiO2 + H2O).
//
// The plant is sized from the daily water load handed to the electrolyzer.
// A cylindrical batch reactor heats beneficiated ilmenite from the regolith
// temperature to the 1275 K reaction temperature; reactor heating is spread
// over the renewal cycle set by the residence time.
//
// Sources: Colozza (2020); Kobayashi et al. for the reactor geometry;
// Hegde et al. (2009) for the heat capacity correlation.
package ilmenite

import (
	"math"

	"isru-core/inputs"
	"isru-core/props"
	"isru-core/report"
	"isru-core/units"
)

const Name = "ilmenite"

const (
	ReactionTemperature = 1275.0 // K
	ReactionEnthalpy    = 294.0  // kJ/kg ilmenite reacted

	heatLossFraction   = 0.03 // of delivered thermal power
	powerLossFraction  = 0.04 // of electrical power delivered to the electrolyzer
	massReductionRatio = 0.45 // plant mass reduction vs. the 2020 baseline
	baselineFixedMass  = 240.0
	baselineSpecMass   = 588.0
)

type Params struct {
	WaterLoad           float64 `yaml:"water_load" json:"water_load"`                     // kg/day
	ElectrolyzerMass    float64 `yaml:"electrolyzer_mass" json:"electrolyzer_mass"`       // kg
	ElectrolyzerPower   float64 `yaml:"electrolyzer_power" json:"electrolyzer_power"`     // kW
	CompoFraction       float64 `yaml:"compo_fraction" json:"compo_fraction"`             // screened/raw regolith
	SeparationFactor    float64 `yaml:"separation_factor" json:"separation_factor"`       // reacted/fed ilmenite
	IlmeniteFraction    float64 `yaml:"ilmenite_fraction" json:"ilmenite_fraction"`       // ilmenite mass fraction
	HydrogenDensity     float64 `yaml:"hydrogen_density" json:"hydrogen_density"`         // kg H2 per m3 regolith
	RegolithTemperature float64 `yaml:"regolith_temperature" json:"regolith_temperature"` // K
	ReactorDiameter     float64 `yaml:"reactor_diameter" json:"reactor_diameter"`         // m
	ReactorHeight       float64 `yaml:"reactor_height" json:"reactor_height"`             // m
	ResidenceTime       float64 `yaml:"residence_time" json:"residence_time"`             // h
}

func Default() Params {
	return Params{
		WaterLoad:           44.01,
		ElectrolyzerMass:    49.44,
		ElectrolyzerPower:   9.05,
		CompoFraction:       0.9,
		SeparationFactor:    0.9,
		IlmeniteFraction:    0.07,
		HydrogenDensity:     0.15,
		RegolithTemperature: 384,
		ReactorDiameter:     0.8,
		ReactorHeight:       0.8,
		ResidenceTime:       1,
	}
}

func (p Params) Validate() error {
	return inputs.For(Name).
		NonNegative("water_load", p.WaterLoad).
		NonNegative("electrolyzer_mass", p.ElectrolyzerMass).
		NonNegative("electrolyzer_power", p.ElectrolyzerPower).
		Fraction("compo_fraction", p.CompoFraction).
		Fraction("separation_factor", p.SeparationFactor).
		Fraction("ilmenite_fraction", p.IlmeniteFraction).
		Positive("hydrogen_density", p.HydrogenDensity).
		Open("regolith_temperature", p.RegolithTemperature, 0, ReactionTemperature).
		Positive("reactor_diameter", p.ReactorDiameter).
		Positive("reactor_height", p.ReactorHeight).
		Positive("residence_time", p.ResidenceTime).
		Err()
}

type Result struct {
	Params Params

	IlmeniteLoad     float64 // kg/day
	RegolithLoad     float64 // kg/day
	HydrogenReleased float64 // kg/day, solar-wind H2 liberated on heating
	HydrogenConsumed float64 // kg/day
	RenewalRate      float64 // 1/h

	ReactionPower   float64 // kW
	HeatingPower    float64 // kW
	HeatLosses      float64 // kW
	ThermalPower    float64 // kW
	ElectricalPower float64 // kW
	TotalPower      float64 // kW
	Mass            float64 // kg
}

// ReactorVolume is the cylindrical reactor volume, m3.
func (p Params) ReactorVolume() float64 {
	return math.Pi * p.ReactorDiameter * p.ReactorDiameter * p.ReactorHeight / 4
}

func Evaluate(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	r := Result{Params: p}

	r.IlmeniteLoad = (units.MolarIlmenite / units.MolarH2O) * p.WaterLoad / p.SeparationFactor
	r.RegolithLoad = r.IlmeniteLoad / p.IlmeniteFraction / p.CompoFraction
	r.HydrogenReleased = p.HydrogenDensity / props.RegolithDensity * r.IlmeniteLoad
	r.HydrogenConsumed = units.MolarH2 / units.MolarH2O * p.WaterLoad

	// Fraction of the reactor volume renewed per hour.
	r.RenewalRate = 4 * p.IlmeniteFraction /
		(props.IlmeniteDensity * math.Pi * p.ReactorHeight * p.ReactorDiameter * p.ReactorDiameter) *
		r.RegolithLoad / units.HoursPerDay
	if r.RenewalRate*p.ResidenceTime >= 1 {
		return Result{}, inputs.Infeasible(Name, inputs.CodeResidenceTime,
			"renewal rate %.4g /h x residence time %.4g h >= 1: reactor cannot hold the feed (enlarge it or shorten the residence time)",
			r.RenewalRate, p.ResidenceTime)
	}

	r.ReactionPower = ReactionEnthalpy * p.SeparationFactor * r.IlmeniteLoad / units.SecondsPerDay

	dT := props.HeatCapacityIntegral(p.RegolithTemperature, ReactionTemperature) // J/kg
	t, f := p.ResidenceTime, r.RenewalRate
	r.HeatingPower = props.IlmeniteDensity * dT * p.ReactorVolume() * (1 - t*f) /
		(units.JoulesPerKJ * units.SecondsPerHour * (1/f - t))

	r.HeatLosses = heatLossFraction / (1 - heatLossFraction) * (r.ReactionPower + r.HeatingPower)
	r.ThermalPower = r.ReactionPower + r.HeatingPower + r.HeatLosses
	r.ElectricalPower = powerLossFraction / (1 - powerLossFraction) * p.ElectrolyzerPower
	r.TotalPower = r.ThermalPower + r.ElectricalPower

	r.Mass = plantMass(p.WaterLoad) - p.ElectrolyzerMass
	return r, nil
}

// plantMass is the scaled Colozza plant mass including its electrolyzer, kg.
func plantMass(waterLoad float64) float64 {
	oxygen := units.MolarO2 / (2 * units.MolarH2O) * waterLoad // kg/day
	return (1-massReductionRatio)*(baselineSpecMass*oxygen/units.HoursPerDay-baselineFixedMass) + baselineFixedMass
}

func (p Params) Inputs() []report.Figure {
	return []report.Figure{
		report.F("water_load", "H2O Load", "kg/day", p.WaterLoad),
		report.F("electrolyzer_mass", "Electrolyzer Mass", "kg", p.ElectrolyzerMass),
		report.F("electrolyzer_power", "Electrolyzer Power", "kW", p.ElectrolyzerPower),
		report.F("compo_fraction", "Compo Fraction", "", p.CompoFraction),
		report.F("separation_factor", "Separation Factor", "", p.SeparationFactor),
		report.F("ilmenite_fraction", "Ilmenite Mass Fraction", "", p.IlmeniteFraction),
		report.F("hydrogen_density", "H2 Density in Regolith", "kg/m3", p.HydrogenDensity),
		report.F("regolith_temperature", "Regolith Temperature", "K", p.RegolithTemperature),
		report.F("reactor_diameter", "Reactor Diameter", "m", p.ReactorDiameter),
		report.F("reactor_height", "Reactor Height", "m", p.ReactorHeight),
		report.F("residence_time", "Residence Time", "h", p.ResidenceTime),
	}
}

func (r Result) Report() report.Report {
	return report.Report{
		Model:  Name,
		Title:  "Ilmenite Hydrogen Reduction Plant",
		Inputs: r.Params.Inputs(),
		Figures: []report.Figure{
			report.F("ilmenite_load", "Ilmenite Load", "kg/day", r.IlmeniteLoad),
			report.F("regolith_load", "Regolith Load", "kg/day", r.RegolithLoad),
			report.F("h2_released", "H2 Released from Regolith", "kg/day", r.HydrogenReleased),
			report.F("h2_consumed", "H2 Consumed", "kg/day", r.HydrogenConsumed),
			report.F("renewal_rate", "Reactor Renewal Rate", "1/h", r.RenewalRate),
			report.F("reaction_power", "Reaction Power", "kW", r.ReactionPower),
			report.F("heating_power", "Heating Power", "kW", r.HeatingPower),
			report.F("heat_losses", "Heat Losses", "kW", r.HeatLosses),
			report.F("thermal_power", "Thermal Power", "kW", r.ThermalPower),
			report.F("electrical_power", "Electrical Power", "kW", r.ElectricalPower),
			report.F("total_power", "Total Power", "kW", r.TotalPower),
			report.F("mass", "Plant Mass", "kg", r.Mass),
		},
		Notes: []string{
			"plant mass excludes the electrolyzer; electrolyzer mass and power are inputs, not computed",
		},
	}
}
