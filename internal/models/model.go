// Package models is the registry of calculators exposed by the CLIs.
//
// Each entry couples a core model package with its flag bindings, so every
// front end (per-model binaries, sweep, scenario) drives the same parameters.
package models

import (
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"

	"isru-core/inputs"
	"isru-core/report"

	"isru/internal/config"
)

// Param binds one command-line flag to a parameter field. Exactly one of
// Float or Int is set.
type Param struct {
	Flag  string // kebab-case
	Usage string
	Float *float64
	Int   *int
}

// Key is the snake_case name used in scenario files and report inputs.
func (p Param) Key() string { return strings.ReplaceAll(p.Flag, "-", "_") }

// Value reads the bound field.
func (p Param) Value() float64 {
	if p.Int != nil {
		return float64(*p.Int)
	}
	return *p.Float
}

// Model describes one calculator.
type Model interface {
	Name() string
	Title() string
	Summary() string
	// New returns an instance holding the model's default parameters.
	New() Instance
}

// Instance is one parameter set of a model.
type Instance interface {
	Model() Model
	Params() []Param
	// Bind registers one flag per parameter, writing into this instance.
	Bind(fs *flag.FlagSet)
	// Apply overlays the scenario's section for this model, if present.
	Apply(sc *config.Scenario) (bool, error)
	// Set parses value into the named parameter (flag or snake_case name).
	Set(name, value string) error
	// SetFloat writes v into the named parameter; integer fields are rounded.
	SetFloat(name string, v float64) error
	Evaluate() (report.Report, error)
	Inputs() []report.Figure
	Clone() Instance
}

type paramSet interface {
	Inputs() []report.Figure
}

type def[P paramSet] struct {
	name, title, summary string
	defaults             func() P
	params               func(p *P) []Param
	eval                 func(P) (report.Report, error)
}

func (d *def[P]) Name() string    { return d.name }
func (d *def[P]) Title() string   { return d.title }
func (d *def[P]) Summary() string { return d.summary }
func (d *def[P]) New() Instance   { return &instance[P]{def: d, p: d.defaults()} }

// reporter adapts a core Evaluate function to the registry.
func reporter[P any, R interface{ Report() report.Report }](f func(P) (R, error)) func(P) (report.Report, error) {
	return func(p P) (report.Report, error) {
		r, err := f(p)
		if err != nil {
			return report.Report{}, err
		}
		return r.Report(), nil
	}
}

type instance[P paramSet] struct {
	def *def[P]
	p   P
}

func (in *instance[P]) Model() Model            { return in.def }
func (in *instance[P]) Params() []Param         { return in.def.params(&in.p) }
func (in *instance[P]) Inputs() []report.Figure { return in.p.Inputs() }

func (in *instance[P]) Clone() Instance {
	c := *in
	return &c
}

func (in *instance[P]) Bind(fs *flag.FlagSet) {
	for _, p := range in.Params() {
		if p.Int != nil {
			fs.IntVar(p.Int, p.Flag, *p.Int, p.Usage)
			continue
		}
		fs.Float64Var(p.Float, p.Flag, *p.Float, p.Usage)
	}
}

func (in *instance[P]) Apply(sc *config.Scenario) (bool, error) {
	if sc == nil {
		return false, nil
	}
	return sc.Decode(in.def.name, &in.p)
}

func (in *instance[P]) find(name string) (Param, error) {
	flagName := strings.ReplaceAll(strings.TrimLeft(name, "-"), "_", "-")
	for _, p := range in.Params() {
		if p.Flag == flagName {
			return p, nil
		}
	}
	return Param{}, fmt.Errorf("%s: unknown parameter %q", in.def.name, name)
}

func (in *instance[P]) Set(name, value string) error {
	p, err := in.find(name)
	if err != nil {
		return err
	}
	if p.Int != nil {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: --%s: invalid integer %q", in.def.name, p.Flag, value)
		}
		*p.Int = n
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s: --%s: invalid number %q", in.def.name, p.Flag, value)
	}
	*p.Float = f
	return nil
}

func (in *instance[P]) SetFloat(name string, v float64) error {
	p, err := in.find(name)
	if err != nil {
		return err
	}
	if p.Int != nil {
		*p.Int = int(math.Round(v))
		return nil
	}
	*p.Float = v
	return nil
}

// Evaluate runs the model. Results that overflow to Inf or NaN are
// rejected so every output format sees the same failure.
func (in *instance[P]) Evaluate() (report.Report, error) {
	r, err := in.def.eval(in.p)
	if err == nil {
		err = checkFinite(in.def.name, r.Figures)
	}
	if err != nil {
		return report.Report{
			Model:  in.def.name,
			Title:  in.def.title,
			Inputs: in.p.Inputs(),
		}, err
	}
	return r, nil
}

func checkFinite(model string, figs []report.Figure) error {
	for _, f := range figs {
		if math.IsInf(f.Value, 0) || math.IsNaN(f.Value) {
			return inputs.Infeasible(model, inputs.CodeNotFinite,
				"%s overflowed to %v; inputs are out of range", f.Key, f.Value)
		}
	}
	return nil
}
