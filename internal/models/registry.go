// internal/models/registry.go
package models

import (
	"isru-core/carbothermal"
	"isru-core/dryer"
	"isru-core/electrolyzer"
	"isru-core/extraction"
	"isru-core/ilmenite"
	"isru-core/sabatier"
)

var registry = []Model{
	&def[extraction.Params]{
		name:     extraction.Name,
		title:    "Regolith Extraction Rovers",
		summary:  "excavation rover fleet: count, mass and power",
		defaults: extraction.Default,
		eval:     reporter(extraction.Evaluate),
		params: func(p *extraction.Params) []Param {
			return []Param{
				{Flag: "regolith-load", Usage: "regolith to excavate (kg/day)", Float: &p.RegolithLoad},
				{Flag: "rover-mass", Usage: "mass of one rover (kg)", Float: &p.RoverMass},
				{Flag: "rover-capacity", Usage: "excavation capacity of one rover (kg/day)", Float: &p.RoverCapacity},
				{Flag: "specific-power", Usage: "excavation power per throughput (kW per kg/h)", Float: &p.SpecificPower},
				{Flag: "recharge-time", Usage: "daily recharge time (h)", Float: &p.RechargeTime},
				{Flag: "redundancy", Usage: "spare rovers", Int: &p.Redundancy},
			}
		},
	},
	&def[electrolyzer.Params]{
		name:     electrolyzer.Name,
		title:    "Electrolyzer",
		summary:  "water electrolysis: power, heat rejection and mass",
		defaults: electrolyzer.Default,
		eval:     reporter(electrolyzer.Evaluate),
		params: func(p *electrolyzer.Params) []Param {
			return []Param{
				{Flag: "efficiency", Usage: "power efficiency (0..1]", Float: &p.Efficiency},
				{Flag: "water-load", Usage: "water electrolysed (kg/day)", Float: &p.WaterLoad},
			}
		},
	},
	&def[ilmenite.Params]{
		name:     ilmenite.Name,
		title:    "Ilmenite Hydrogen Reduction Plant",
		summary:  "ilmenite reduction with hydrogen: feed, reactor power and mass",
		defaults: ilmenite.Default,
		eval:     reporter(ilmenite.Evaluate),
		params: func(p *ilmenite.Params) []Param {
			return []Param{
				{Flag: "water-load", Usage: "water produced (kg/day)", Float: &p.WaterLoad},
				{Flag: "electrolyzer-mass", Usage: "electrolyzer mass subtracted from the plant (kg)", Float: &p.ElectrolyzerMass},
				{Flag: "electrolyzer-power", Usage: "electrolyzer power (kW)", Float: &p.ElectrolyzerPower},
				{Flag: "compo-fraction", Usage: "screened share of raw regolith (0..1]", Float: &p.CompoFraction},
				{Flag: "separation-factor", Usage: "reacted share of fed ilmenite (0..1]", Float: &p.SeparationFactor},
				{Flag: "ilmenite-fraction", Usage: "ilmenite mass fraction of regolith (0..1]", Float: &p.IlmeniteFraction},
				{Flag: "hydrogen-density", Usage: "solar-wind hydrogen in regolith (kg/m3)", Float: &p.HydrogenDensity},
				{Flag: "regolith-temperature", Usage: "regolith feed temperature (K)", Float: &p.RegolithTemperature},
				{Flag: "reactor-diameter", Usage: "reactor diameter (m)", Float: &p.ReactorDiameter},
				{Flag: "reactor-height", Usage: "reactor height (m)", Float: &p.ReactorHeight},
				{Flag: "residence-time", Usage: "time at reaction temperature (h)", Float: &p.ResidenceTime},
			}
		},
	},
	&def[carbothermal.Params]{
		name:     carbothermal.Name,
		title:    "Carbothermal Reduction Plant",
		summary:  "silica carbothermal reduction with CO Sabatier: fibers, power and mass",
		defaults: carbothermal.Default,
		eval:     reporter(carbothermal.Evaluate),
		params: func(p *carbothermal.Params) []Param {
			return []Param{
				{Flag: "water-load", Usage: "water produced (kg/day)", Float: &p.WaterLoad},
				{Flag: "electrolyzer-mass", Usage: "electrolyzer mass subtracted from the plant (kg)", Float: &p.ElectrolyzerMass},
				{Flag: "compo-fraction", Usage: "screened share of raw regolith (0..1]", Float: &p.CompoFraction},
				{Flag: "silica-fraction", Usage: "SiO2 mass fraction (0..1]", Float: &p.SilicaFraction},
				{Flag: "power-per-fiber", Usage: "optical power per fiber (W)", Float: &p.PowerPerFiber},
				{Flag: "melt-temperature", Usage: "melt temperature (K)", Float: &p.MeltTemperature},
				{Flag: "melt-time", Usage: "time to melt one batch (h)", Float: &p.MeltTime},
				{Flag: "carbon-loss-fraction", Usage: "carbon lost per oxygen produced", Float: &p.CarbonLossFraction},
				{Flag: "sabatier-temperature", Usage: "Sabatier reactor temperature (K)", Float: &p.SabatierTemperature},
				{Flag: "efficiency-factor", Usage: "oxygen yield per screened regolith (0..1]", Float: &p.EfficiencyFactor},
				{Flag: "mole-fraction", Usage: "H2/CO feed mole ratio", Float: &p.MoleFraction},
			}
		},
	},
	&def[dryer.Params]{
		name:     dryer.Name,
		title:    "LADI Dryer",
		summary:  "regolith or ice drying below the triple point: dryers, power and mass",
		defaults: dryer.Default,
		eval:     reporter(dryer.Evaluate),
		params: func(p *dryer.Params) []Param {
			return []Param{
				{Flag: "water-load", Usage: "water extracted (kg/day)", Float: &p.WaterLoad},
				{Flag: "compo-fraction", Usage: "screened share of raw regolith (0..1]", Float: &p.CompoFraction},
				{Flag: "water-fraction", Usage: "water mass fraction; 1 models ice mining (0..1]", Float: &p.WaterFraction},
				{Flag: "pressure", Usage: "dryer pressure (Pa)", Float: &p.Pressure},
				{Flag: "initial-temperature", Usage: "feed temperature (K)", Float: &p.InitialTemperature},
				{Flag: "final-temperature", Usage: "final temperature (K)", Float: &p.FinalTemperature},
				{Flag: "residence-time", Usage: "time at temperature (h)", Float: &p.ResidenceTime},
				{Flag: "renewal-rate", Usage: "dryer volume renewed per hour (1/h)", Float: &p.RenewalRate},
				{Flag: "extraction-efficiency", Usage: "share of water recovered (0..1]", Float: &p.ExtractionEfficiency},
			}
		},
	},
	&def[sabatier.Params]{
		name:     sabatier.Name,
		title:    "Mars Atmosphere Sabatier Plant",
		summary:  "two-stage Sabatier on Martian CO2: feeds, products and heat rejection",
		defaults: sabatier.Default,
		eval:     reporter(sabatier.Evaluate),
		params: func(p *sabatier.Params) []Param {
			return []Param{
				{Flag: "water-load", Usage: "water produced (kg/day)", Float: &p.WaterLoad},
				{Flag: "mole-fraction", Usage: "H2/CO2 feed mole ratio", Float: &p.MoleFraction},
				{Flag: "reactor1-temperature", Usage: "first reactor temperature (K)", Float: &p.Reactor1Temperature},
				{Flag: "reactor2-temperature", Usage: "second reactor temperature (K)", Float: &p.Reactor2Temperature},
				{Flag: "water-recovery-temperature", Usage: "water recovery unit temperature (K)", Float: &p.WaterRecoveryTemperature},
				{Flag: "conversion-efficiency", Usage: "overall H2 conversion [2/3..1]", Float: &p.ConversionEfficiency},
			}
		},
	},
}

// All returns the models in help order.
func All() []Model { return append([]Model(nil), registry...) }

// Names lists model names in help order.
func Names() []string {
	out := make([]string, len(registry))
	for i, m := range registry {
		out[i] = m.Name()
	}
	return out
}

// Lookup finds a model by name.
func Lookup(name string) (Model, bool) {
	for _, m := range registry {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Known reports whether name is a registered model.
func Known(name string) bool {
	_, ok := Lookup(name)
	return ok
}
