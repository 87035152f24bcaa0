package carbothermal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isru-core/inputs"
)

func TestEvaluate_Baseline(t *testing.T) {
	r, err := Evaluate(Default())
	require.NoError(t, err)

	const tol = 1e-9
	assert.InDelta(t, 312.96, r.ScreenedRegolith, tol)
	assert.InDelta(t, 695.4666666666666, r.RegolithLoad, tol)
	assert.InDelta(t, 128.3136, r.SilicaLoad, tol)
	assert.InDelta(t, 68.43392, r.MethaneConsumed, tol)
	assert.InDelta(t, 68.46, r.COConsumed, tol)
	assert.InDelta(t, 14.67, r.HydrogenConsumed, tol)
	assert.InDelta(t, 39.12, r.MethaneProduced, tol)
	assert.InDelta(t, 68.46, r.COProduced, tol)
	assert.InDelta(t, 9.78, r.HydrogenProduced, tol)
	assert.InDelta(t, 0.03912, r.CarbonLoss, tol)
	assert.Equal(t, 85, r.Fibers)
	assert.InDelta(t, 8.5, r.ElectricalPower, tol)
	assert.InDelta(t, -1.1825871521527775, r.COCoolingPower, tol)
	assert.InDelta(t, -5.829513888888887, r.SabatierHeat, tol)
	assert.InDelta(t, -7.012101041041665, r.ThermalPower, tol)
	assert.InDelta(t, 689.7145, r.Mass, tol)
}

func TestEvaluate_CarbonBalance(t *testing.T) {
	r, err := Evaluate(Default())
	require.NoError(t, err)
	// The Sabatier loop consumes exactly the CO the reduction step releases.
	assert.Equal(t, r.COConsumed, r.COProduced)
}

func TestEvaluate_FibersScaleWithMeltTime(t *testing.T) {
	base, err := Evaluate(Default())
	require.NoError(t, err)
	p := Default()
	p.MeltTime = 2
	slow, err := Evaluate(p)
	require.NoError(t, err)
	assert.Greater(t, slow.Fibers, base.Fibers)
	assert.InDelta(t, float64(slow.Fibers)*p.PowerPerFiber/1000, slow.ElectricalPower, 1e-12)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		mod   func(*Params)
		field string
	}{
		{"melt below sabatier", func(p *Params) { p.MeltTemperature = 500 }, "melt_temperature"},
		{"silica fraction", func(p *Params) { p.SilicaFraction = 0 }, "silica_fraction"},
		{"efficiency factor", func(p *Params) { p.EfficiencyFactor = 2 }, "efficiency_factor"},
		{"melt time", func(p *Params) { p.MeltTime = 0 }, "melt_time"},
		{"carbon loss", func(p *Params) { p.CarbonLossFraction = -0.1 }, "carbon_loss_fraction"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Default()
			tc.mod(&p)
			_, err := Evaluate(p)
			require.ErrorIs(t, err, inputs.ErrInvalid)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestReport(t *testing.T) {
	r, err := Evaluate(Default())
	require.NoError(t, err)
	rep := r.Report()
	f, ok := rep.Get("num_fibers")
	require.True(t, ok)
	assert.Equal(t, 85.0, f.Value)
	total, _ := rep.Get("total_power")
	elec, _ := rep.Get("electrical_power")
	assert.Equal(t, elec.Value, total.Value)
}
