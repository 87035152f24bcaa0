// Package report holds the value types every calculator renders its results into.
// It has no output dependencies; formatting lives in the application module.
package report

// Figure is one named scalar of a report.
type Figure struct {
	Key   string  // snake_case identifier, stable across releases
	Label string  // human label
	Unit  string  // "kg/day", "kW", "K", "" for counts
	Value float64 //
}

// Report is the fixed set of derived quantities produced by one evaluation.
type Report struct {
	Model   string
	Title   string
	Case    string // optional label: scenario name or sweep point
	Inputs  []Figure
	Figures []Figure
	Notes   []string
	Err     string // set only when an evaluation point failed (sweeps)
}

// F is shorthand for building a Figure.
func F(key, label, unit string, v float64) Figure {
	return Figure{Key: key, Label: label, Unit: unit, Value: v}
}

// Get returns the figure with the given key.
func (r Report) Get(key string) (Figure, bool) {
	for _, f := range r.Figures {
		if f.Key == key {
			return f, true
		}
	}
	return Figure{}, false
}

// Input returns the input echo with the given key.
func (r Report) Input(key string) (Figure, bool) {
	for _, f := range r.Inputs {
		if f.Key == key {
			return f, true
		}
	}
	return Figure{}, false
}

// Keys lists figure keys in report order.
func (r Report) Keys() []string {
	out := make([]string, len(r.Figures))
	for i, f := range r.Figures {
		out[i] = f.Key
	}
	return out
}

// Failed reports whether this is an error placeholder rather than a result.
func (r Report) Failed() bool { return r.Err != "" }
