// internal/sweep/values.go
package sweep

import (
	"errors"
	"math"
)

// Values returns steps points from from to to inclusive, evenly spaced, or
// geometrically spaced when logScale is set.
func Values(from, to float64, steps int, logScale bool) ([]float64, error) {
	if steps < 1 {
		return nil, errors.New("steps must be >= 1")
	}
	if math.IsNaN(from) || math.IsNaN(to) || math.IsInf(from, 0) || math.IsInf(to, 0) {
		return nil, errors.New("range bounds must be finite")
	}
	if logScale && (from <= 0 || to <= 0) {
		return nil, errors.New("log spacing needs positive bounds")
	}
	out := make([]float64, steps)
	if steps == 1 {
		out[0] = from
		return out, nil
	}
	n := float64(steps - 1)
	for i := range out {
		f := float64(i) / n
		if logScale {
			out[i] = math.Exp(math.Log(from) + f*(math.Log(to)-math.Log(from)))
		} else {
			out[i] = from + f*(to-from)
		}
	}
	// Endpoints exactly as given.
	out[steps-1] = to
	return out, nil
}
