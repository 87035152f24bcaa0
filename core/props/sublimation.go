package props

import (
	"errors"
	"fmt"
	"math"
)

// Search window for the sublimation temperature, K.
const (
	sublimationLowK  = 20.0
	sublimationHighK = TriplePointTemperature + 200
	sublimationTolK  = 1e-10
	sublimationIter  = 200
)

// ErrNoBracket is returned when the pressure has no solution inside the search window.
var ErrNoBracket = errors.New("props: sublimation temperature not bracketed")

// VaporPressure is the ice vapour pressure (Pa) at temperature T (K), referenced
// to the triple point.
func VaporPressure(tK float64) float64 {
	return TriplePointPressure * math.Exp(
		6293*(1/TriplePointTemperature-1/tK)-0.555*math.Log(tK/TriplePointTemperature)-1/tK,
	)
}

// SublimationTemperature solves VaporPressure(T) = pPa for T by bisection.
// VaporPressure is monotonic over the window so the root is unique when bracketed.
func SublimationTemperature(pPa float64) (float64, error) {
	if !(pPa > 0) || math.IsInf(pPa, 0) {
		return 0, fmt.Errorf("props: pressure must be a positive finite number, got %v", pPa)
	}
	f := func(t float64) float64 { return pPa - VaporPressure(t) }

	lo, hi := sublimationLowK, sublimationHighK
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, fmt.Errorf("%w: %g Pa outside [%g K, %g K]", ErrNoBracket, pPa, lo, hi)
	}
	for i := 0; i < sublimationIter && hi-lo > sublimationTolK; i++ {
		mid := 0.5 * (lo + hi)
		fm := f(mid)
		if fm == 0 {
			return mid, nil
		}
		if (fm > 0) == (flo > 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}
