// internal/output/value.go
package output

import (
	"math"
	"strconv"
)

// DefaultPrecision is the number of significant digits printed in text/TSV.
const DefaultPrecision = 6

// FormatValue renders v with prec significant digits, without exponent
// for the magnitudes the models produce.
func FormatValue(v float64, prec int) string {
	if prec <= 0 {
		prec = DefaultPrecision
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == 0 {
		return "0"
	}
	if a := math.Abs(v); a >= 1e-4 && a < 1e15 {
		d := Decimals(v, prec)
		s := strconv.FormatFloat(v, 'f', d, 64)
		return trimZeros(s)
	}
	return strconv.FormatFloat(v, 'g', prec, 64)
}

// Decimals is the number of fraction digits that gives prec significant digits.
func Decimals(v float64, prec int) int {
	if v == 0 {
		return 0
	}
	mag := int(math.Floor(math.Log10(math.Abs(v))))
	d := prec - 1 - mag
	if d < 0 {
		return 0
	}
	return d
}

func trimZeros(s string) string {
	dot := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+1 && s[end-1] == '0' {
		end--
	}
	if end == dot+1 {
		end = dot
	}
	return s[:end]
}
