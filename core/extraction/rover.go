// core/extraction/rover.go
// Regolith excavation rover fleet sizing (RASSOR 2.0 class).
//
// Sizes a discrete number of rovers to meet a daily excavation load. Power is
// the battery recharge power for excavation only; mobility is not counted.
//
// Source: Mueller et al., "Design of an Excavation Robot: Regolith Advanced
// Surface Systems Operations Robot (RASSOR) 2.0", 2015.
package extraction

import (
	"math"

	"isru-core/inputs"
	"isru-core/report"
	"isru-core/units"
)

const Name = "extraction"

// Params are the fleet sizing inputs.
type Params struct {
	RegolithLoad  float64 `yaml:"regolith_load" json:"regolith_load"`   // kg/day
	RoverMass     float64 `yaml:"rover_mass" json:"rover_mass"`         // kg per rover
	RoverCapacity float64 `yaml:"rover_capacity" json:"rover_capacity"` // kg/day per rover
	SpecificPower float64 `yaml:"specific_power" json:"specific_power"` // kW per kg/h excavated
	RechargeTime  float64 `yaml:"recharge_time" json:"recharge_time"`   // h per day
	Redundancy    int     `yaml:"redundancy" json:"redundancy"`         // spare rovers
}

// Default returns the RASSOR 2.0 baseline: one rover at full capacity.
func Default() Params {
	return Params{
		RegolithLoad:  2778.94737,
		RoverMass:     66,
		RoverCapacity: 2778.94737,
		SpecificPower: 4e-3,
		RechargeTime:  8,
		Redundancy:    0,
	}
}

func (p Params) Validate() error {
	return inputs.For(Name).
		NonNegative("regolith_load", p.RegolithLoad).
		NonNegative("rover_mass", p.RoverMass).
		Positive("rover_capacity", p.RoverCapacity).
		NonNegative("specific_power", p.SpecificPower).
		Open("recharge_time", p.RechargeTime, 0, units.HoursPerDay).
		NonNegative("redundancy", float64(p.Redundancy)).
		Err()
}

// Result is the sized fleet.
type Result struct {
	Params Params
	Rovers int
	Mass   float64 // kg
	Power  float64 // kW
}

// NumRovers is the rover count needed for the load plus redundancy.
func (p Params) NumRovers() int {
	return int(math.Ceil(p.RegolithLoad/p.RoverCapacity)) + p.Redundancy
}

// Evaluate sizes the fleet.
func Evaluate(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	n := p.NumRovers()
	excavationRate := p.RegolithLoad / units.HoursPerDay // kg/h
	return Result{
		Params: p,
		Rovers: n,
		Mass:   p.RoverMass * float64(n),
		Power:  excavationRate * p.SpecificPower * (units.HoursPerDay - p.RechargeTime) / p.RechargeTime,
	}, nil
}

// Inputs echoes the parameters as report figures.
func (p Params) Inputs() []report.Figure {
	return []report.Figure{
		report.F("regolith_load", "Regolith Load", "kg/day", p.RegolithLoad),
		report.F("rover_mass", "Rover Mass", "kg", p.RoverMass),
		report.F("rover_capacity", "Rover Capacity", "kg/day", p.RoverCapacity),
		report.F("specific_power", "Specific Power", "kW/(kg/h)", p.SpecificPower),
		report.F("recharge_time", "Recharge Time", "h", p.RechargeTime),
		report.F("redundancy", "Redundancy", "", float64(p.Redundancy)),
	}
}

func (r Result) Report() report.Report {
	return report.Report{
		Model:  Name,
		Title:  "Regolith Extraction Rovers",
		Inputs: r.Params.Inputs(),
		Figures: []report.Figure{
			report.F("num_rovers", "Number of Rovers", "", float64(r.Rovers)),
			report.F("mass", "Total Mass", "kg", r.Mass),
			report.F("power", "Total Extraction Power", "kW", r.Power),
		},
	}
}
