package blackoilpvt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOilPvtMultiplexer(t *testing.T) {
	surface := DefaultSurfaceConditions()

	// querying before an approach is selected fails loudly
	{
		m := NewOilPvtMultiplexer(1, surface)
		assert.Equal(t, OilApproachUnset, m.Approach())
		assert.Panics(t, func() { m.Viscosity(0, 300, 1e7, 0) })
		assert.Panics(t, func() { m.SaturationPressure(0, 300, 0.01) })
		assert.Panics(t, func() { m.Dead() })
	}
	// the approach is selected exactly once; a second selection is rejected
	// and the first implementation survives
	{
		m := NewOilPvtMultiplexer(1, surface)
		assert.NoError(t, m.SetApproach(OilApproachDead))
		first := m.Dead()

		err := m.SetApproach(OilApproachLive)
		assert.ErrorIs(t, err, ErrApproachAlreadySet)
		assert.Equal(t, OilApproachDead, m.Approach())
		assert.Same(t, first, m.Dead())
	}
	// an unknown approach value is rejected up front
	{
		m := NewOilPvtMultiplexer(1, surface)
		assert.ErrorIs(t, m.SetApproach(OilApproach(99)), ErrInvalidApproach)
		assert.Equal(t, OilApproachUnset, m.Approach())
	}
	// the concrete accessor for a different family panics
	{
		m := NewOilPvtMultiplexer(1, surface)
		assert.NoError(t, m.SetApproach(OilApproachConstantCompressibility))
		assert.NotNil(t, m.ConstantCompressibility())
		assert.Panics(t, func() { m.Live() })
	}
	// queries are forwarded to the owned implementation
	{
		m := NewOilPvtMultiplexer(1, surface)
		assert.NoError(t, m.SetApproach(OilApproachDead))
		dead := m.Dead()
		dead.SetReferenceDensities(0, 720, 1.0, 1000)
		dead.SetOilFormationVolumeFactor(0, []float64{1e6, 2e7}, []float64{1.05, 1.02})
		dead.SetOilViscosity(0, []float64{1e6, 2e7}, []float64{1.0e-3, 1.1e-3})
		assert.NoError(t, m.InitEnd(nil))

		assert.Equal(t, 1, m.NumRegions())
		assert.InDelta(t, dead.FormationVolumeFactor(0, 300, 1e7, 0),
			m.FormationVolumeFactor(0, 300, 1e7, 0), 1e-15)
		assert.InDelta(t, dead.Density(0, 300, 1e7, 0), m.Density(0, 300, 1e7, 0), 1e-12)
		assert.Equal(t, 0.0, m.GasDissolutionFactor(0, 300, 1e7))

		_, err := m.SaturationPressure(0, 300, 0.01)
		assert.ErrorIs(t, err, ErrNotApplicable)
	}
}

func TestGasPvtMultiplexer(t *testing.T) {
	surface := DefaultSurfaceConditions()

	{
		m := NewGasPvtMultiplexer(1, surface)
		assert.Equal(t, GasApproachUnset, m.Approach())
		assert.Panics(t, func() { m.Viscosity(0, 300, 1e7, 0) })
		assert.Panics(t, func() { m.Wet() })
	}
	{
		m := NewGasPvtMultiplexer(1, surface)
		assert.NoError(t, m.SetApproach(GasApproachDry))
		assert.ErrorIs(t, m.SetApproach(GasApproachWet), ErrApproachAlreadySet)
		assert.Equal(t, GasApproachDry, m.Approach())
		assert.Panics(t, func() { m.Wet() })
	}
	{
		m := NewGasPvtMultiplexer(1, surface)
		assert.ErrorIs(t, m.SetApproach(GasApproach(99)), ErrInvalidApproach)
	}
	// forwarding through a dry-gas implementation
	{
		m := NewGasPvtMultiplexer(1, surface)
		assert.NoError(t, m.SetApproach(GasApproachDry))
		dry := m.Dry()
		dry.SetReferenceDensities(0, 720, 1.0, 1000)
		dry.SetGasFormationVolumeFactor(0, []float64{1e6, 2e7}, []float64{0.01, 0.004})
		dry.SetGasViscosity(0, []float64{1e6, 2e7}, []float64{1.1e-5, 1.9e-5})
		assert.NoError(t, m.InitEnd(nil))

		assert.InDelta(t, dry.FormationVolumeFactor(0, 300, 1e7, 0),
			m.FormationVolumeFactor(0, 300, 1e7, 0), 1e-15)
		assert.Equal(t, 0.0, m.OilVaporizationFactor(0, 300, 1e7))
		assert.Equal(t, 0.0, m.SaturatedOilMassFraction(0, 300, 1e7))

		_, err := m.SaturationPressure(0, 300, 0.01)
		assert.ErrorIs(t, err, ErrNotApplicable)
	}
}

func TestWaterPvtMultiplexer(t *testing.T) {
	{
		m := NewWaterPvtMultiplexer(1)
		assert.Equal(t, WaterApproachUnset, m.Approach())
		assert.Panics(t, func() { m.Viscosity(0, 300, 1e7) })
		assert.Panics(t, func() { m.ConstantCompressibility() })
	}
	{
		m := NewWaterPvtMultiplexer(1)
		assert.NoError(t, m.SetApproach(WaterApproachConstantCompressibility))
		assert.ErrorIs(t, m.SetApproach(WaterApproachConstantCompressibility), ErrApproachAlreadySet)
	}
	{
		m := NewWaterPvtMultiplexer(1)
		assert.NoError(t, m.SetApproach(WaterApproachConstantCompressibility))
		w := m.ConstantCompressibility()
		w.SetReferenceDensities(0, 720, 1.0, 1000)
		w.SetReferenceState(0, 1e7, 1.03, 4e-10, 0.5e-3, 1e-11)
		assert.NoError(t, m.InitEnd())

		assert.InDelta(t, 1.03, m.FormationVolumeFactor(0, 300, 1e7), 1e-15)
		assert.InDelta(t, 1000/1.03, m.Density(0, 300, 1e7), 1e-9)
	}
}

// BindOilGas finalizes both phase correlations against each other so the
// cross-phase fugacity coefficients have a companion curve to consult.
func TestBindOilGas(t *testing.T) {
	surface := DefaultSurfaceConditions()

	oil := NewOilPvtMultiplexer(2, surface)
	assert.NoError(t, oil.SetApproach(OilApproachLive))
	gas := NewGasPvtMultiplexer(2, surface)
	assert.NoError(t, gas.SetApproach(GasApproachWet))

	ps := []float64{1e6, 5e6, 1e7, 2e7}
	rsSat := []float64{10, 50, 100, 200}
	rvSat := []float64{1e-5, 2e-5, 5e-5, 1e-4}

	for region := 0; region < 2; region++ {
		live := oil.Live()
		live.SetReferenceDensities(region, 720, 1.0, 1000)
		live.SetSaturatedGasDissolutionFactor(region, ps, rsSat)
		rows := make([]SaturatedRow, len(ps))
		for i := range ps {
			rows[i] = SaturatedRow{X: rsSat[i], Samples: []UndersaturatedSample{
				{X: ps[i], B: 1.1 + 0.05*float64(i), Viscosity: 1e-3},
			}}
		}
		rows[len(rows)-1].Samples = append(rows[len(rows)-1].Samples,
			UndersaturatedSample{X: 3e7, B: 1.24, Viscosity: 1.05e-3})
		assert.NoError(t, live.SetUndersaturatedTables(region, rows))

		wet := gas.Wet()
		wet.SetReferenceDensities(region, 720, 1.0, 1000)
		wet.SetSaturatedOilVaporizationFactor(region, ps, rvSat)
		gasRows := make([]SaturatedRow, len(ps))
		for i := range ps {
			gasRows[i] = SaturatedRow{X: ps[i], Samples: []UndersaturatedSample{
				{X: rvSat[i], B: 0.01 / float64(i+1), Viscosity: 1.2e-5},
			}}
		}
		gasRows[len(gasRows)-1].Samples = append(gasRows[len(gasRows)-1].Samples,
			UndersaturatedSample{X: 5e-5, B: 0.0024, Viscosity: 1.25e-5})
		assert.NoError(t, wet.SetUndersaturatedTables(region, gasRows))
	}

	assert.NoError(t, BindOilGas(oil, gas))

	// the dissolved-component fugacities consult the companion correlation
	{
		const temperature = 288.7
		phiGasInGas := gas.FugacityCoefficientGas(0, temperature, 1e7)
		xoGSat := oil.SaturatedGasMoleFraction(0, temperature, 1e7)
		assert.InDelta(t, phiGasInGas/xoGSat,
			oil.FugacityCoefficientGas(0, temperature, 1e7), 1e-12)

		phiOilInOil := oil.FugacityCoefficientOil(0, temperature, 1e7)
		xgOSat := gas.SaturatedOilMoleFraction(0, temperature, 1e7)
		assert.InDelta(t, phiOilInOil/xgOSat,
			gas.FugacityCoefficientOil(0, temperature, 1e7), 1e-9)
	}
}
