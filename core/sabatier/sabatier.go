// core/sabatier/sabatier.go
// Two-stage Sabatier processing of Martian atmospheric CO2.
//
//	CO2 + 4 H2 -> CH4 + 2 H2O
//
// Hydrogen from the electrolyzer and atmospheric CO2 feed a hot first reactor
// followed by a cooler second reactor; a water recovery unit (WRU) condenses the
// product water. Reactor 1 converts one sixth of the hydrogen feed per mole
// balance; reactor 2 brings the overall conversion to the set efficiency.
//
// Source: Mars atmospheric ISRU reference architectures (NASA DRA 5.0 class).
package sabatier

import (
	"isru-core/inputs"
	"isru-core/props"
	"isru-core/report"
	"isru-core/units"
)

const Name = "sabatier"

const (
	// ReactionEnthalpy is released per mole of reaction progress, kJ/mol.
	ReactionEnthalpy = 165.0
	// MinConversion keeps reactor 2 progress non-negative.
	MinConversion = 2.0 / 3.0

	specMass = 5.5 / 1.2 // kg per kg/day of water
)

type Params struct {
	WaterLoad                float64 `yaml:"water_load" json:"water_load"`                                 // kg/day
	MoleFraction             float64 `yaml:"mole_fraction" json:"mole_fraction"`                           // H2/CO2 feed ratio
	Reactor1Temperature      float64 `yaml:"reactor1_temperature" json:"reactor1_temperature"`             // K
	Reactor2Temperature      float64 `yaml:"reactor2_temperature" json:"reactor2_temperature"`             // K
	WaterRecoveryTemperature float64 `yaml:"water_recovery_temperature" json:"water_recovery_temperature"` // K
	ConversionEfficiency     float64 `yaml:"conversion_efficiency" json:"conversion_efficiency"`           // overall H2 conversion
}

func Default() Params {
	return Params{
		WaterLoad:                44.01,
		MoleFraction:             2.34,
		Reactor1Temperature:      803,
		Reactor2Temperature:      573,
		WaterRecoveryTemperature: 303,
		ConversionEfficiency:     0.95,
	}
}

func (p Params) Validate() error {
	return inputs.For(Name).
		NonNegative("water_load", p.WaterLoad).
		Positive("mole_fraction", p.MoleFraction).
		Positive("water_recovery_temperature", p.WaterRecoveryTemperature).
		Greater("reactor2_temperature", p.Reactor2Temperature, "water_recovery_temperature", p.WaterRecoveryTemperature).
		Greater("reactor1_temperature", p.Reactor1Temperature, "reactor2_temperature", p.Reactor2Temperature).
		Closed("conversion_efficiency", p.ConversionEfficiency, MinConversion, 1).
		Err()
}

// Stream is a reactor outlet composition, kg/day.
type Stream struct {
	H2O, CH4, H2, CO2 float64
}

// Total is the stream mass flow, kg/day.
func (s Stream) Total() float64 { return s.H2O + s.CH4 + s.H2 + s.CO2 }

// Cp is the mass-weighted heat capacity of the stream, kJ/(kg·K).
func (s Stream) Cp() float64 {
	cp, _ := props.MixtureCp(
		props.GasFlow{Mass: s.H2O, Cp: props.CpH2O},
		props.GasFlow{Mass: s.CH4, Cp: props.CpCH4},
		props.GasFlow{Mass: s.H2, Cp: props.CpH2},
		props.GasFlow{Mass: s.CO2, Cp: props.CpCO2},
	)
	return cp
}

// react advances the stream by xi mol/day of reaction progress.
func (s Stream) react(xi float64) Stream {
	return Stream{
		H2O: s.H2O + 2*xi*units.KgPerMol(units.MolarH2O),
		CH4: s.CH4 + xi*units.KgPerMol(units.MolarCH4),
		H2:  s.H2 - 4*xi*units.KgPerMol(units.MolarH2),
		CO2: s.CO2 - xi*units.KgPerMol(units.MolarCO2),
	}
}

type Result struct {
	Params Params

	HydrogenLoad float64 // kg/day fed
	CO2Load      float64 // kg/day fed
	Progress1    float64 // mol/day
	Progress2    float64 // mol/day
	Reactor1     Stream
	Reactor2     Stream

	Reactor1Heat    float64 // kW
	Reactor1Cooling float64 // kW, R1 outlet down to R2 temperature
	Reactor2Heat    float64 // kW
	WRUCooling      float64 // kW
	HeatToDissipate float64 // kW
	Mass            float64 // kg
}

func Evaluate(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	eta := p.ConversionEfficiency
	r := Result{Params: p}

	mH2 := units.KgPerMol(units.MolarH2)
	r.HydrogenLoad = 2 / eta * units.HydrogenPerWater * p.WaterLoad
	r.CO2Load = (1 / p.MoleFraction) * (units.MolarCO2 / units.MolarH2) * r.HydrogenLoad

	feed := Stream{H2: r.HydrogenLoad, CO2: r.CO2Load}
	r.Progress1 = r.HydrogenLoad / (6 * mH2)
	r.Reactor1 = feed.react(r.Progress1)
	r.Progress2 = 0.25 * (1.0/3 + eta - 1) * r.HydrogenLoad / mH2
	r.Reactor2 = r.Reactor1.react(r.Progress2)
	if r.Reactor2.CO2 < 0 {
		return Result{}, inputs.Infeasible(Name, inputs.CodeOutOfRange,
			"CO2 feed exhausted (%.4g kg/day short): mole_fraction %g must not exceed %g",
			-r.Reactor2.CO2, p.MoleFraction, 4/eta)
	}

	mix := r.Reactor1.Total()
	cp := r.Reactor1.Cp()
	r.Reactor1Heat = ReactionEnthalpy * r.Progress1 / units.SecondsPerDay
	r.Reactor1Cooling = mix * cp * (p.Reactor1Temperature - p.Reactor2Temperature) / units.SecondsPerDay
	r.Reactor2Heat = ReactionEnthalpy * r.Progress2 / units.SecondsPerDay
	r.WRUCooling = mix * cp * (p.Reactor1Temperature - p.WaterRecoveryTemperature) / units.SecondsPerDay
	r.HeatToDissipate = r.Reactor1Heat + r.Reactor1Cooling + r.Reactor2Heat + r.WRUCooling

	r.Mass = specMass * p.WaterLoad
	return r, nil
}

func (p Params) Inputs() []report.Figure {
	return []report.Figure{
		report.F("water_load", "H2O Load", "kg/day", p.WaterLoad),
		report.F("mole_fraction", "H2/CO2 Mole Fraction", "", p.MoleFraction),
		report.F("reactor1_temperature", "Reactor 1 Temperature", "K", p.Reactor1Temperature),
		report.F("reactor2_temperature", "Reactor 2 Temperature", "K", p.Reactor2Temperature),
		report.F("water_recovery_temperature", "WRU Temperature", "K", p.WaterRecoveryTemperature),
		report.F("conversion_efficiency", "Conversion Efficiency", "", p.ConversionEfficiency),
	}
}

func (r Result) Report() report.Report {
	return report.Report{
		Model:  Name,
		Title:  "Mars Atmosphere Sabatier Plant",
		Inputs: r.Params.Inputs(),
		Figures: []report.Figure{
			report.F("h2_load", "H2 Load", "kg/day", r.HydrogenLoad),
			report.F("co2_load", "CO2 Load", "kg/day", r.CO2Load),
			report.F("ch4_production", "CH4 Production", "kg/day", r.Reactor2.CH4),
			report.F("h2o_production", "H2O Production", "kg/day", r.Reactor2.H2O),
			report.F("h2_outlet", "Unreacted H2", "kg/day", r.Reactor2.H2),
			report.F("co2_outlet", "Unreacted CO2", "kg/day", r.Reactor2.CO2),
			report.F("reactor1_heat", "Reactor 1 Heat", "kW", r.Reactor1Heat),
			report.F("reactor1_cooling", "Reactor 1 Outlet Cooling", "kW", r.Reactor1Cooling),
			report.F("reactor2_heat", "Reactor 2 Heat", "kW", r.Reactor2Heat),
			report.F("wru_cooling", "WRU Cooling", "kW", r.WRUCooling),
			report.F("heat_to_dissipate", "Heat to Dissipate", "kW", r.HeatToDissipate),
			report.F("mass", "Mass", "kg", r.Mass),
		},
		Notes: []string{
			"WRU cooling uses the reactor 1 outlet mix from the reactor 1 temperature",
		},
	}
}
