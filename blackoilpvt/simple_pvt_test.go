package blackoilpvt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeadOilPvt(t *testing.T) {
	ps := []float64{1e6, 1e7, 3e7}
	bo := []float64{1.05, 1.03, 1.00}
	muo := []float64{1.2e-3, 1.3e-3, 1.5e-3}

	pvt := NewDeadOilPvt(1)
	pvt.SetReferenceDensities(0, 800, 1.2, 1000)
	pvt.SetOilFormationVolumeFactor(0, ps, bo)
	pvt.SetOilViscosity(0, ps, muo)
	assert.NoError(t, pvt.InitEnd())

	// table nodes are reproduced; composition is ignored
	{
		assert.InDelta(t, 1.03, pvt.FormationVolumeFactor(0, 300, 1e7, 0), 1e-12)
		assert.InDelta(t, 1.03, pvt.FormationVolumeFactor(0, 300, 1e7, 0.5), 1e-12)
		assert.InDelta(t, 1.3e-3, pvt.Viscosity(0, 300, 1e7, 0), 1e-15)
		assert.InDelta(t, 800/1.03, pvt.Density(0, 300, 1e7, 0), 1e-9)
	}
	// nothing dissolves in dead oil
	{
		assert.Equal(t, 0.0, pvt.GasDissolutionFactor(0, 300, 1e7))
		assert.Equal(t, 0.0, pvt.SaturatedGasMassFraction(0, 300, 1e7))
		assert.Equal(t, 0.0, pvt.SaturatedGasMoleFraction(0, 300, 1e7))

		_, err := pvt.SaturationPressure(0, 300, 0.01)
		assert.ErrorIs(t, err, ErrNotApplicable)
	}
	{
		assert.InDelta(t, 20e3/1e7, pvt.FugacityCoefficientOil(0, 300, 1e7), 1e-15)
		assert.Equal(t, 1e8, pvt.FugacityCoefficientGas(0, 300, 1e7))
		assert.Equal(t, 1e8, pvt.FugacityCoefficientWater(0, 300, 1e7))
	}
}

func TestDryGasPvt(t *testing.T) {
	ps := []float64{1e6, 1e7, 3e7}
	bg := []float64{0.0100, 0.0012, 0.0005}
	mug := []float64{1.1e-5, 1.5e-5, 2.1e-5}

	pvt := NewDryGasPvt(1)
	pvt.SetReferenceDensities(0, 800, 1.2, 1000)
	pvt.SetGasFormationVolumeFactor(0, ps, bg)
	pvt.SetGasViscosity(0, ps, mug)
	assert.NoError(t, pvt.InitEnd())

	{
		assert.InDelta(t, 0.0012, pvt.FormationVolumeFactor(0, 300, 1e7, 0), 1e-12)
		assert.InDelta(t, 1.5e-5, pvt.Viscosity(0, 300, 1e7, 0.1), 1e-17)
		assert.InDelta(t, 1.2/0.0012, pvt.Density(0, 300, 1e7, 0), 1e-9)
	}
	// no oil vaporizes into dry gas
	{
		assert.Equal(t, 0.0, pvt.OilVaporizationFactor(0, 300, 1e7))
		assert.Equal(t, 0.0, pvt.SaturatedOilMassFraction(0, 300, 1e7))
		assert.Equal(t, 0.0, pvt.SaturatedOilMoleFraction(0, 300, 1e7))

		_, err := pvt.SaturationPressure(0, 300, 0.01)
		assert.ErrorIs(t, err, ErrNotApplicable)
	}
	{
		assert.Equal(t, 1.0, pvt.FugacityCoefficientGas(0, 300, 1e7))
		assert.Equal(t, 1e8, pvt.FugacityCoefficientOil(0, 300, 1e7))
		assert.Equal(t, 1e8, pvt.FugacityCoefficientWater(0, 300, 1e7))
	}
}

func TestConstantCompressibilityOilPvt(t *testing.T) {
	const (
		pRef  = 2e7
		bRef  = 1.07
		c     = 5e-10
		muRef = 1.1e-3
		cv    = 2e-11
	)

	pvt := NewConstantCompressibilityOilPvt(1)
	pvt.SetReferenceDensities(0, 750, 1.1, 1000)
	pvt.SetReferenceState(0, pRef, bRef, c, muRef, cv)
	assert.NoError(t, pvt.InitEnd())

	// the reference state is reproduced exactly
	{
		assert.Equal(t, bRef, pvt.FormationVolumeFactor(0, 300, pRef, 0))
		assert.Equal(t, muRef, pvt.Viscosity(0, 300, pRef, 0))
		assert.InDelta(t, 750/bRef, pvt.Density(0, 300, pRef, 0), 1e-9)
	}
	// the quadratic expansion tracks exp(-c dp) closely for small c dp
	{
		for _, p := range []float64{1e7, 2.5e7, 4e7} {
			want := bRef * math.Exp(-c*(p-pRef))
			assert.InDelta(t, want, pvt.FormationVolumeFactor(0, 300, p, 0), bRef*1e-6)

			wantMu := muRef * math.Exp(cv*(p-pRef))
			assert.InDelta(t, wantMu, pvt.Viscosity(0, 300, p, 0), muRef*1e-8)
		}
	}
	// compressing the oil shrinks it
	{
		b1 := pvt.FormationVolumeFactor(0, 300, pRef+1e7, 0)
		assert.True(t, b1 < bRef)
	}
	{
		assert.Equal(t, 0.0, pvt.GasDissolutionFactor(0, 300, 1e7))
		_, err := pvt.SaturationPressure(0, 300, 0.01)
		assert.ErrorIs(t, err, ErrNotApplicable)
	}
}

func TestConstantCompressibilityWaterPvt(t *testing.T) {
	const (
		pRef  = 1e7
		bRef  = 1.03
		c     = 4e-10
		muRef = 5e-4
		cv    = 1e-11
	)

	pvt := NewConstantCompressibilityWaterPvt(1)
	pvt.SetReferenceDensities(0, 750, 1.1, 1010)
	pvt.SetReferenceState(0, pRef, bRef, c, muRef, cv)
	assert.NoError(t, pvt.InitEnd())

	{
		assert.Equal(t, bRef, pvt.FormationVolumeFactor(0, 300, pRef))
		assert.Equal(t, muRef, pvt.Viscosity(0, 300, pRef))
		assert.InDelta(t, 1010/bRef, pvt.Density(0, 300, pRef), 1e-9)
	}
	{
		for _, p := range []float64{5e6, 2e7, 4e7} {
			want := bRef * math.Exp(-c*(p-pRef))
			assert.InDelta(t, want, pvt.FormationVolumeFactor(0, 300, p), bRef*1e-6)
		}
	}
	{
		assert.InDelta(t, 30e3/1e7, pvt.FugacityCoefficientWater(0, 300, 1e7), 1e-15)
		assert.Equal(t, 1e10, pvt.FugacityCoefficientGas(0, 300, 1e7))
		assert.Equal(t, 1e10, pvt.FugacityCoefficientOil(0, 300, 1e7))
	}
}
