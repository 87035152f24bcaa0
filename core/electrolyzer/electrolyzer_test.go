package electrolyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isru-core/inputs"
)

func TestEvaluate_Baseline(t *testing.T) {
	r, err := Evaluate(Default())
	require.NoError(t, err)
	assert.InDelta(t, 9.055555555555557, r.Power, 1e-9)
	assert.InDelta(t, 2.535555555555556, r.HeatToDissipate, 1e-9)
	assert.InDelta(t, 49.44333333333334, r.Mass, 1e-9)
	assert.InDelta(t, 39.12, r.OxygenProduced, 1e-9)
	assert.InDelta(t, 4.89, r.HydrogenProduced, 1e-9)
}

func TestTotalSpecificMass(t *testing.T) {
	assert.InDelta(t, 5.46, TotalSpecificMass(), 1e-12)
}

func TestEvaluate_EnergyBalance(t *testing.T) {
	for _, eta := range []float64{0.5, 0.72, 0.9, 1} {
		p := Default()
		p.Efficiency = eta
		r, err := Evaluate(p)
		require.NoError(t, err)
		// Input power = useful (Gibbs) power + rejected heat.
		useful := r.Power * eta
		assert.InDelta(t, r.Power, useful+r.HeatToDissipate, 1e-9, "eta=%v", eta)
	}
}

func TestEvaluate_PerfectCellRejectsNoHeat(t *testing.T) {
	p := Default()
	p.Efficiency = 1
	r, err := Evaluate(p)
	require.NoError(t, err)
	assert.Zero(t, r.HeatToDissipate)
}

func TestValidate(t *testing.T) {
	cases := map[string]Params{
		"zero efficiency":  {Efficiency: 0, WaterLoad: 10},
		"efficiency > 1":   {Efficiency: 1.2, WaterLoad: 10},
		"negative load":    {Efficiency: 0.7, WaterLoad: -1},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Evaluate(p)
			require.ErrorIs(t, err, inputs.ErrInvalid)
		})
	}
}
