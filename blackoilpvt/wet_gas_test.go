package blackoilpvt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildWetGas assembles a two-region wet-gas correlation from a saturated
// branch of five pressure points, with only the highest-pressure row carrying
// a measured undersaturated branch. All other rows are completed by the
// gap-fill extension. Both regions share the same data.
func buildWetGas(t *testing.T) *WetGasPvt {
	ps := []float64{1e5, 1e6, 5e6, 1e7, 3e7}
	rvSat := []float64{1e-5, 2e-5, 5e-5, 1e-4, 3e-4}
	bSat := []float64{0.0030, 0.0025, 0.0020, 0.0015, 0.0010}
	muSat := []float64{1.0e-5, 1.1e-5, 1.2e-5, 1.4e-5, 1.8e-5}

	rows := make([]SaturatedRow, len(ps))
	for i := range ps {
		rows[i] = SaturatedRow{X: ps[i], Samples: []UndersaturatedSample{
			{X: rvSat[i], B: bSat[i], Viscosity: muSat[i]},
		}}
	}
	// master row: B and mu independent of Rv along the undersaturated branch
	last := len(ps) - 1
	rows[last].Samples = append(rows[last].Samples,
		UndersaturatedSample{X: rvSat[last] / 2, B: bSat[last], Viscosity: muSat[last]},
		UndersaturatedSample{X: 0, B: bSat[last], Viscosity: muSat[last]},
	)

	pvt := NewWetGasPvt(2, DefaultSurfaceConditions())
	for region := 0; region < 2; region++ {
		pvt.SetReferenceDensities(region, 720.0, 1.0, 1000.0)
		pvt.SetSaturatedOilVaporizationFactor(region, ps, rvSat)
		assert.NoError(t, pvt.SetUndersaturatedTables(region, rows))
	}
	assert.NoError(t, pvt.InitEnd(nil))
	return pvt
}

func TestWetGasPvt(t *testing.T) {
	pvt := buildWetGas(t)
	const temperature = 288.7

	assert.Equal(t, 2, pvt.NumRegions())

	// the formation volume factor of oil-free gas between two saturated
	// pressure points is the straight blend of the unmodified saturated
	// curve: gap-fill leaves the saturated boundary alone
	{
		// 1.5e7 Pa sits a quarter of the way from 1e7 to 3e7
		invB := (1-0.25)/0.0015 + 0.25/0.0010
		for region := 0; region < 2; region++ {
			bg := pvt.FormationVolumeFactor(region, temperature, 1.5e7, 0.0)
			assert.InDelta(t, 1.0/invB, bg, 1e-9)
		}
	}
	// at a tabulated saturated point the viscosity is reproduced exactly
	{
		xgO := pvt.SaturatedOilMassFraction(0, temperature, 1e7)
		assert.InDelta(t, 1.4e-5, pvt.Viscosity(0, temperature, 1e7, xgO), 1e-12)
		assert.InDelta(t, 0.0015, pvt.FormationVolumeFactor(0, temperature, 1e7, xgO), 1e-12)
	}
	// saturated convenience queries agree with the explicit-composition ones
	{
		xgO := pvt.SaturatedOilMassFraction(0, temperature, 1e7)
		assert.InDelta(t, pvt.Viscosity(0, temperature, 1e7, xgO),
			pvt.SaturatedViscosity(0, temperature, 1e7), 1e-15)
		assert.InDelta(t, pvt.FormationVolumeFactor(0, temperature, 1e7, xgO),
			pvt.SaturatedFormationVolumeFactor(0, temperature, 1e7), 1e-15)
		assert.InDelta(t, pvt.Density(0, temperature, 1e7, xgO),
			pvt.SaturatedDensity(0, temperature, 1e7), 1e-12)
	}
	// density of oil-free gas is the reference density scaled by 1/Bg
	{
		bg := pvt.FormationVolumeFactor(0, temperature, 1.5e7, 0.0)
		assert.InDelta(t, 1.0/bg, pvt.Density(0, temperature, 1.5e7, 0.0), 1e-9)
	}
	// vaporization factor and the derived saturated composition
	{
		assert.InDelta(t, 5e-5, pvt.OilVaporizationFactor(0, temperature, 5e6), 1e-16)

		rv := 1e-4
		want := rv * 720.0 / (1.0 + rv*720.0)
		assert.InDelta(t, want, pvt.SaturatedOilMassFraction(0, temperature, 1e7), 1e-15)
	}
	// mole fraction conversion via the component molar masses
	{
		xgO := pvt.SaturatedOilMassFraction(0, temperature, 1e7)
		mO := DefaultOilMolarMass
		mG := DefaultSurfaceConditions().IdealGasMolarMass(1.0)
		avg := mO / (1 + (1-xgO)*(mO/mG-1))
		assert.InDelta(t, xgO*avg/mO, pvt.SaturatedOilMoleFraction(0, temperature, 1e7), 1e-15)
	}
	// fugacity coefficients of the non-oil components are fixed
	{
		assert.Equal(t, 1.0, pvt.FugacityCoefficientGas(0, temperature, 1e7))
		assert.Equal(t, 1e8, pvt.FugacityCoefficientWater(0, temperature, 1e7))
	}
	// the saturation-pressure inversion reproduces the forward relation
	{
		for _, p := range []float64{5e5, 3e6, 8e6, 2.5e7} {
			xgO := pvt.SaturatedOilMassFraction(0, temperature, p)
			pSat, err := pvt.SaturationPressure(0, temperature, xgO)
			assert.NoError(t, err)
			assert.InDelta(t, p, pSat, p*1e-8)
		}
	}
}

func TestWetGasPvtSaturatedSetters(t *testing.T) {
	// when only the saturated branch is known the full tables are
	// guesstimated; the results at saturated conditions must still track the
	// inputs closely
	ps := []float64{1e6, 5e6, 1e7, 2e7, 3e7}
	rvSat := []float64{1e-5, 3e-5, 6e-5, 1.2e-4, 2e-4}
	bgSat := []float64{0.0050, 0.0020, 0.0012, 0.0008, 0.0006}
	mugSat := []float64{1.1e-5, 1.3e-5, 1.5e-5, 1.9e-5, 2.4e-5}

	pvt := NewWetGasPvt(1, DefaultSurfaceConditions())
	pvt.SetReferenceDensities(0, 720.0, 1.0, 1000.0)
	pvt.SetSaturatedOilVaporizationFactor(0, ps, rvSat)
	assert.NoError(t, pvt.SetSaturatedGasFormationVolumeFactor(0, ps, bgSat))
	pvt.SetSaturatedGasViscosity(0, ps, mugSat)
	assert.NoError(t, pvt.InitEnd(nil))

	const temperature = 288.7

	// the viscosity is assumed independent of the vaporized oil fraction;
	// between pressure nodes the 1/(B*mu) table reintroduces a weak
	// composition dependence, so the comparison is approximate
	{
		for _, p := range []float64{2e6, 1e7, 2.5e7} {
			mu0 := pvt.Viscosity(0, temperature, p, 0.0)
			muSat := pvt.SaturatedViscosity(0, temperature, p)
			assert.InDelta(t, mu0, muSat, mu0*0.05)
		}
		assert.InDelta(t, 1.5e-5, pvt.Viscosity(0, temperature, 1e7, 0.0), 5e-7)
	}
	// the guesstimated volume factor stays positive and decreases with
	// pressure like the input curve
	{
		prev := pvt.SaturatedFormationVolumeFactor(0, temperature, ps[0])
		for _, p := range []float64{3e6, 8e6, 1.5e7, 2.8e7} {
			bg := pvt.SaturatedFormationVolumeFactor(0, temperature, p)
			assert.True(t, bg > 0)
			assert.True(t, bg < prev, "Bg not decreasing at p=%g", p)
			prev = bg
		}
	}
}
