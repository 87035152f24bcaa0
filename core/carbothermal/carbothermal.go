// core/carbothermal/carbothermal.go
// Carbothermal reduction of silica with methane, closed by a CO Sabatier loop.
//
//	SiO2 + 2 CH4 -> Si + 2 CO + 4 H2   (reduction, in molten regolith)
//	CO + 3 H2    -> CH4 + H2O          (Sabatier, recovers methane)
//
// Regolith is melted locally by concentrated light delivered through optical
// fibers; each fiber melts a hemisphere of regolith per melt cycle. Half of
// the screened feed stays unmelted as insulation.
//
// Sources: Colozza (2020); Gustafson et al. (2010) for the fiber melt geometry.
package carbothermal

import (
	"math"

	"isru-core/inputs"
	"isru-core/props"
	"isru-core/report"
	"isru-core/units"
)

const Name = "carbothermal"

const (
	SabatierEnthalpy = -206.0 // kJ/mol CO, exothermic
	MeltRadius       = 0.0375 // m, hemisphere melted by one fiber

	massReductionRatio = 0.45
	baselineFixedMass  = 240.0
	baselineSpecMass   = 588.0
	hydrogenPlantParts = 97.7      // kg of H2-plant hardware absent here
	sabatierSpecMass   = 5.5 / 1.2 // kg per kg/day of water
)

type Params struct {
	WaterLoad           float64 `yaml:"water_load" json:"water_load"`                     // kg/day
	ElectrolyzerMass    float64 `yaml:"electrolyzer_mass" json:"electrolyzer_mass"`       // kg
	CompoFraction       float64 `yaml:"compo_fraction" json:"compo_fraction"`             // screened/raw regolith
	SilicaFraction      float64 `yaml:"silica_fraction" json:"silica_fraction"`           // SiO2 mass fraction
	PowerPerFiber       float64 `yaml:"power_per_fiber" json:"power_per_fiber"`           // W
	MeltTemperature     float64 `yaml:"melt_temperature" json:"melt_temperature"`         // K
	MeltTime            float64 `yaml:"melt_time" json:"melt_time"`                       // h
	CarbonLossFraction  float64 `yaml:"carbon_loss_fraction" json:"carbon_loss_fraction"` // of O2 produced
	SabatierTemperature float64 `yaml:"sabatier_temperature" json:"sabatier_temperature"` // K
	EfficiencyFactor    float64 `yaml:"efficiency_factor" json:"efficiency_factor"`       // O2 yield per screened regolith
	MoleFraction        float64 `yaml:"mole_fraction" json:"mole_fraction"`               // H2/CO feed ratio
}

func Default() Params {
	return Params{
		WaterLoad:           44.01,
		ElectrolyzerMass:    49.44,
		CompoFraction:       0.9,
		SilicaFraction:      0.41,
		PowerPerFiber:       100,
		MeltTemperature:     2000,
		MeltTime:            1,
		CarbonLossFraction:  0.001,
		SabatierTemperature: 573.15,
		EfficiencyFactor:    0.125,
		MoleFraction:        3,
	}
}

func (p Params) Validate() error {
	return inputs.For(Name).
		NonNegative("water_load", p.WaterLoad).
		NonNegative("electrolyzer_mass", p.ElectrolyzerMass).
		Fraction("compo_fraction", p.CompoFraction).
		Fraction("silica_fraction", p.SilicaFraction).
		Positive("power_per_fiber", p.PowerPerFiber).
		Positive("sabatier_temperature", p.SabatierTemperature).
		Greater("melt_temperature", p.MeltTemperature, "sabatier_temperature", p.SabatierTemperature).
		Positive("melt_time", p.MeltTime).
		NonNegative("carbon_loss_fraction", p.CarbonLossFraction).
		Fraction("efficiency_factor", p.EfficiencyFactor).
		Positive("mole_fraction", p.MoleFraction).
		Err()
}

type Result struct {
	Params Params

	ScreenedRegolith float64 // kg/day
	RegolithLoad     float64 // kg/day, including insulation
	SilicaLoad       float64 // kg/day

	MethaneConsumed  float64 // kg/day, reduction
	COConsumed       float64 // kg/day, Sabatier
	HydrogenConsumed float64 // kg/day, Sabatier
	MethaneProduced  float64 // kg/day, Sabatier
	COProduced       float64 // kg/day, reduction
	HydrogenProduced float64 // kg/day, reduction
	CarbonLoss       float64 // kg/day
	Fibers           int
	ElectricalPower  float64 // kW
	COCoolingPower   float64 // kW, negative: heat removed
	SabatierHeat     float64 // kW, negative: heat released
	ThermalPower     float64 // kW
	SabatierMass     float64 // kg
	Mass             float64 // kg
}

// FiberMeltRate is the regolith mass one fiber melts per day, kg/day.
func (p Params) FiberMeltRate() float64 {
	hemisphere := 4 * math.Pi * math.Pow(MeltRadius, 3) / 6
	return units.HoursPerDay * hemisphere * props.RegolithDensity / p.MeltTime
}

func Evaluate(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	r := Result{Params: p}

	oxygen := units.OxygenPerWater * p.WaterLoad
	r.ScreenedRegolith = oxygen / p.EfficiencyFactor
	r.RegolithLoad = 2 * r.ScreenedRegolith / p.CompoFraction
	r.SilicaLoad = p.SilicaFraction * r.ScreenedRegolith

	r.MethaneConsumed = 2 * units.MolarCH4 / units.MolarSiO2 * r.SilicaLoad
	r.COConsumed = units.MolarCO / units.MolarH2O * p.WaterLoad
	r.HydrogenConsumed = p.MoleFraction * units.MolarH2 / units.MolarCO * r.COConsumed
	r.MethaneProduced = units.MolarCH4 / units.MolarCO * r.COConsumed
	r.COProduced = r.COConsumed
	r.HydrogenProduced = 2 * units.MolarH2 / units.MolarCO * r.COProduced
	r.CarbonLoss = p.CarbonLossFraction * oxygen

	r.Fibers = int(math.Ceil(r.ScreenedRegolith / p.FiberMeltRate()))
	r.ElectricalPower = float64(r.Fibers) * p.PowerPerFiber / units.WattsPerKW

	cpCO := props.CpCO * units.JoulesPerKJ // J/(kg·K)
	r.COCoolingPower = r.COConsumed * cpCO * (p.SabatierTemperature - p.MeltTemperature) /
		(units.WattsPerKW * units.SecondsPerDay)
	r.SabatierHeat = SabatierEnthalpy * r.COConsumed / (units.SecondsPerDay * units.KgPerMol(units.MolarCO))
	r.ThermalPower = r.COCoolingPower + r.SabatierHeat

	r.SabatierMass = sabatierSpecMass * p.WaterLoad
	r.Mass = (1-massReductionRatio)*(baselineSpecMass*oxygen/units.HoursPerDay-baselineFixedMass) +
		baselineFixedMass - hydrogenPlantParts - p.ElectrolyzerMass + r.SabatierMass
	return r, nil
}

func (p Params) Inputs() []report.Figure {
	return []report.Figure{
		report.F("water_load", "H2O Load", "kg/day", p.WaterLoad),
		report.F("electrolyzer_mass", "Electrolyzer Mass", "kg", p.ElectrolyzerMass),
		report.F("compo_fraction", "Compo Fraction", "", p.CompoFraction),
		report.F("silica_fraction", "Silica Mass Fraction", "", p.SilicaFraction),
		report.F("power_per_fiber", "Power per Fiber", "W", p.PowerPerFiber),
		report.F("melt_temperature", "Melt Temperature", "K", p.MeltTemperature),
		report.F("melt_time", "Melt Time", "h", p.MeltTime),
		report.F("carbon_loss_fraction", "Carbon Loss Fraction", "", p.CarbonLossFraction),
		report.F("sabatier_temperature", "Sabatier Temperature", "K", p.SabatierTemperature),
		report.F("efficiency_factor", "Efficiency Factor", "", p.EfficiencyFactor),
		report.F("mole_fraction", "H2/CO Mole Fraction", "", p.MoleFraction),
	}
}

func (r Result) Report() report.Report {
	return report.Report{
		Model:  Name,
		Title:  "Carbothermal Reduction Plant",
		Inputs: r.Params.Inputs(),
		Figures: []report.Figure{
			report.F("screened_regolith", "Screened Regolith", "kg/day", r.ScreenedRegolith),
			report.F("regolith_load", "Regolith Load", "kg/day", r.RegolithLoad),
			report.F("silica_load", "Silica Load", "kg/day", r.SilicaLoad),
			report.F("ch4_consumed", "CH4 Consumed (reduction)", "kg/day", r.MethaneConsumed),
			report.F("co_consumed", "CO Consumed (Sabatier)", "kg/day", r.COConsumed),
			report.F("h2_consumed", "H2 Consumed (Sabatier)", "kg/day", r.HydrogenConsumed),
			report.F("ch4_produced", "CH4 Produced (Sabatier)", "kg/day", r.MethaneProduced),
			report.F("co_produced", "CO Produced (reduction)", "kg/day", r.COProduced),
			report.F("h2_produced", "H2 Produced (reduction)", "kg/day", r.HydrogenProduced),
			report.F("carbon_loss", "Carbon Loss", "kg/day", r.CarbonLoss),
			report.F("num_fibers", "Number of Fibers", "", float64(r.Fibers)),
			report.F("electrical_power", "Electrical Power", "kW", r.ElectricalPower),
			report.F("co_cooling_power", "CO Cooling Power", "kW", r.COCoolingPower),
			report.F("sabatier_heat", "Sabatier Reaction Heat", "kW", r.SabatierHeat),
			report.F("thermal_power", "Thermal Power", "kW", r.ThermalPower),
			report.F("total_power", "Total Power", "kW", r.ElectricalPower),
			report.F("sabatier_mass", "Sabatier Reactor Mass", "kg", r.SabatierMass),
			report.F("mass", "Plant Mass", "kg", r.Mass),
		},
		Notes: []string{
			"negative thermal power is heat to dissipate",
			"total power counts electrical (fiber) power only",
		},
	}
}
