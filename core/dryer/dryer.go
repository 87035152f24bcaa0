// core/dryer/dryer.go
// LADI regolith/ice dryer operated below the triple point of water.
//
// Ice in the feed is warmed to the sublimation temperature at the dryer
// pressure, sublimated, and the vapour heated to the final temperature. The
// regolith share of the batch is heated over the same interval. The screened
// feed is shared evenly between identical dryers; only the process physics are
// modelled, so the engineering overhead of the real unit is not counted.
//
// Setting WaterFraction to 1 models pure ice mining.
//
// Sources: PTMSS/SRR 2021 (LADI); Colozza (2020) Eq. (19); Sowers & Dreyer (2019).
package dryer

import (
	"errors"
	"math"

	"isru-core/inputs"
	"isru-core/props"
	"isru-core/report"
	"isru-core/units"
)

const Name = "dryer"

const (
	// Volume is the heated volume of one dryer, m3.
	Volume = 0.0246
	// UnitMass is conveyor + vibrating screen + heated tank of one dryer, kg.
	UnitMass = 26.9 + 68.4 + 50.9

	heatLossFraction = 0.03
)

type Params struct {
	WaterLoad            float64 `yaml:"water_load" json:"water_load"`                       // kg/day
	CompoFraction        float64 `yaml:"compo_fraction" json:"compo_fraction"`               // screened/raw regolith
	WaterFraction        float64 `yaml:"water_fraction" json:"water_fraction"`               // water/regolith mass ratio
	Pressure             float64 `yaml:"pressure" json:"pressure"`                           // Pa
	InitialTemperature   float64 `yaml:"initial_temperature" json:"initial_temperature"`     // K
	FinalTemperature     float64 `yaml:"final_temperature" json:"final_temperature"`         // K
	ResidenceTime        float64 `yaml:"residence_time" json:"residence_time"`               // h at temperature
	RenewalRate          float64 `yaml:"renewal_rate" json:"renewal_rate"`                   // dryer volume renewed, 1/h
	ExtractionEfficiency float64 `yaml:"extraction_efficiency" json:"extraction_efficiency"` // 0..1
}

func Default() Params {
	return Params{
		WaterLoad:            44.01,
		CompoFraction:        0.9,
		WaterFraction:        0.057,
		Pressure:             500,
		InitialTemperature:   120,
		FinalTemperature:     280,
		ResidenceTime:        1,
		RenewalRate:          0.9,
		ExtractionEfficiency: 1,
	}
}

func (p Params) Validate() error {
	return inputs.For(Name).
		NonNegative("water_load", p.WaterLoad).
		Fraction("compo_fraction", p.CompoFraction).
		Fraction("water_fraction", p.WaterFraction).
		Positive("pressure", p.Pressure).
		Positive("initial_temperature", p.InitialTemperature).
		Positive("final_temperature", p.FinalTemperature).
		Positive("residence_time", p.ResidenceTime).
		Positive("renewal_rate", p.RenewalRate).
		Fraction("extraction_efficiency", p.ExtractionEfficiency).
		Err()
}

// IceMining reports whether the feed is pure ice.
func (p Params) IceMining() bool { return p.WaterFraction == 1 }

type Result struct {
	Params Params

	SublimationTemperature float64 // K
	ScreenedRegolith       float64 // kg/day
	RegolithLoad           float64 // kg/day
	IceLoad                float64 // kg/day
	Capacity               float64 // kg/day per dryer
	Dryers                 int

	// Totals over all dryers.
	ExtractionPower float64 // kW
	HeatingPower    float64 // kW
	HeatLosses      float64 // kW
	TotalPower      float64 // kW
	Mass            float64 // kg
}

// checkThermodynamics applies the operating-window checks in order and
// returns the sublimation temperature.
func checkThermodynamics(p Params) (float64, error) {
	if p.Pressure > props.TriplePointPressure {
		return 0, inputs.Infeasible(Name, inputs.CodeThermodynamic,
			"dryer pressure %g Pa must not exceed the triple point pressure %g Pa", p.Pressure, props.TriplePointPressure)
	}
	tSub, err := props.SublimationTemperature(p.Pressure)
	if err != nil {
		code := inputs.CodeNoConvergence
		if !errors.Is(err, props.ErrNoBracket) {
			code = inputs.CodeThermodynamic
		}
		return 0, inputs.Infeasible(Name, code, "sublimation temperature: %v", err)
	}
	if p.InitialTemperature > p.FinalTemperature {
		return 0, inputs.Infeasible(Name, inputs.CodeThermodynamic,
			"initial temperature %g K must not exceed the final temperature %g K", p.InitialTemperature, p.FinalTemperature)
	}
	if p.InitialTemperature > tSub {
		return 0, inputs.Infeasible(Name, inputs.CodeThermodynamic,
			"initial temperature %g K must not exceed the sublimation temperature %.4f K", p.InitialTemperature, tSub)
	}
	if p.FinalTemperature < tSub {
		return 0, inputs.Infeasible(Name, inputs.CodeThermodynamic,
			"final temperature %g K must not be below the sublimation temperature %.4f K", p.FinalTemperature, tSub)
	}
	return tSub, nil
}

func Evaluate(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	tSub, err := checkThermodynamics(p)
	if err != nil {
		return Result{}, err
	}
	t, f, w := p.ResidenceTime, p.RenewalRate, p.WaterFraction
	if f*t >= 1 {
		return Result{}, inputs.Infeasible(Name, inputs.CodeResidenceTime,
			"renewal rate %g /h x residence time %g h >= 1: no time left to heat the batch", f, t)
	}

	r := Result{Params: p, SublimationTemperature: tSub}
	r.ScreenedRegolith = p.WaterLoad / (p.ExtractionEfficiency * w)
	r.RegolithLoad = r.ScreenedRegolith / p.CompoFraction
	r.IceLoad = p.WaterLoad / p.ExtractionEfficiency
	r.Capacity = units.HoursPerDay * f * Volume *
		((1-w)*props.RegolithDensity + w*props.IceDensity)
	r.Dryers = int(math.Ceil(r.ScreenedRegolith / r.Capacity))
	r.Mass = UnitMass * float64(r.Dryers)
	if r.Dryers == 0 {
		return r, nil
	}

	// Fill level of each dryer when the load is shared evenly.
	fill := r.RegolithLoad / (float64(r.Dryers) * r.Capacity)
	ice := props.RegolithDensity * w * Volume * fill // kg per batch
	qIce := ice * props.CpIce * (tSub - p.InitialTemperature)
	qSub := ice * (props.EnthalpyFusion + props.EnthalpyVaporization)
	qVap := ice * props.CpSteam * (p.FinalTemperature - tSub)
	cycle := (1 - f*t) / (units.SecondsPerHour * (1/f - t))
	extraction := (qIce + qSub + qVap) * cycle

	// Regolith share of the batch; zero for ice-rich feeds.
	rock := math.Max(0, 1-props.RegolithDensity/props.IceDensity*w)
	heating := props.HeatCapacityIntegral(p.InitialTemperature, p.FinalTemperature) *
		rock * props.RegolithDensity * Volume * fill * cycle / units.JoulesPerKJ

	losses := heatLossFraction / (1 - heatLossFraction) * (extraction + heating)

	n := float64(r.Dryers)
	r.ExtractionPower = extraction * n
	r.HeatingPower = heating * n
	r.HeatLosses = losses * n
	r.TotalPower = (extraction + heating + losses) * n
	return r, nil
}

func (p Params) Inputs() []report.Figure {
	return []report.Figure{
		report.F("water_load", "H2O Load", "kg/day", p.WaterLoad),
		report.F("compo_fraction", "Compo Fraction", "", p.CompoFraction),
		report.F("water_fraction", "Water Mass Fraction", "", p.WaterFraction),
		report.F("pressure", "Dryer Pressure", "Pa", p.Pressure),
		report.F("initial_temperature", "Initial Temperature", "K", p.InitialTemperature),
		report.F("final_temperature", "Final Temperature", "K", p.FinalTemperature),
		report.F("residence_time", "Residence Time", "h", p.ResidenceTime),
		report.F("renewal_rate", "Volume Renewal Rate", "1/h", p.RenewalRate),
		report.F("extraction_efficiency", "Extraction Efficiency", "", p.ExtractionEfficiency),
	}
}

func (r Result) Report() report.Report {
	rep := report.Report{
		Model:  Name,
		Title:  "LADI Dryer",
		Inputs: r.Params.Inputs(),
		Notes: []string{
			"process physics only: engineering overhead of the dryer hardware is not included",
		},
	}
	if r.Params.IceMining() {
		rep.Figures = append(rep.Figures,
			report.F("sublimation_temperature", "Sublimation Temperature", "K", r.SublimationTemperature),
			report.F("ice_load", "Ice Load", "kg/day", r.IceLoad),
		)
	} else {
		rep.Figures = append(rep.Figures,
			report.F("regolith_load", "Regolith Load", "kg/day", r.RegolithLoad),
			report.F("dryer_capacity", "Dryer Capacity", "kg/day", r.Capacity),
			report.F("sublimation_temperature", "Sublimation Temperature", "K", r.SublimationTemperature),
		)
	}
	rep.Figures = append(rep.Figures,
		report.F("num_dryers", "Number of Dryers", "", float64(r.Dryers)),
		report.F("extraction_power", "Water Extraction Power", "kW", r.ExtractionPower),
		report.F("heating_power", "Regolith Heating Power", "kW", r.HeatingPower),
		report.F("heat_losses", "Heat Losses", "kW", r.HeatLosses),
		report.F("total_power", "Total Power", "kW", r.TotalPower),
		report.F("mass", "Mass", "kg", r.Mass),
	)
	return rep
}
