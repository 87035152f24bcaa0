package props

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closed-form antiderivative of HeatCapacity.
func cpAntiderivative(t float64) float64 {
	return -1848.5*t + 1047.41/math.Ln10*(t*math.Log(t)-t)
}

func TestHeatCapacityIntegral(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
	}{
		{"ilmenite preheat", 384, 1275},
		{"dryer span", 120, 280},
		{"narrow", 300, 301},
		{"cold start", 40, 1275},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := cpAntiderivative(tc.b) - cpAntiderivative(tc.a)
			got := HeatCapacityIntegral(tc.a, tc.b)
			assert.InEpsilon(t, want, got, 1e-9)
			assert.InEpsilon(t, -want, HeatCapacityIntegral(tc.b, tc.a), 1e-9)
		})
	}
	assert.Zero(t, HeatCapacityIntegral(500, 500))
}

func TestHeatCapacity_Baseline(t *testing.T) {
	// ≈ 1055.5 kJ/kg to bring ilmenite from 384 K to 1275 K.
	assert.InDelta(t, 1055499.02613902, HeatCapacityIntegral(384, 1275), 1e-3)
}

func TestSublimationTemperature(t *testing.T) {
	got, err := SublimationTemperature(500)
	require.NoError(t, err)
	assert.InDelta(t, 270.77715302373883, got, 1e-8)
	assert.InDelta(t, 500, VaporPressure(got), 1e-6)

	// Monotonic: lower pressure, lower sublimation temperature.
	low, err := SublimationTemperature(1)
	require.NoError(t, err)
	assert.Less(t, low, got)
}

func TestSublimationTemperature_Errors(t *testing.T) {
	for _, p := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := SublimationTemperature(p)
		assert.Error(t, err, "p=%v", p)
	}
	_, err := SublimationTemperature(1e30)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoBracket))
}

func TestMixtureCp(t *testing.T) {
	cp, m := MixtureCp(GasFlow{Mass: 1, Cp: CpH2}, GasFlow{Mass: 3, Cp: CpCO2})
	assert.InDelta(t, 4, m, 1e-12)
	assert.InDelta(t, (CpH2+3*CpCO2)/4, cp, 1e-12)

	cp, m = MixtureCp()
	assert.Zero(t, cp)
	assert.Zero(t, m)
}
