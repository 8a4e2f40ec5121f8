package blackoilpvt

import (
	"fmt"

	"github.com/joakim-hove/opm-material/tabulation"
)

// DryGasPvt describes gas without vaporized oil: the formation volume
// factor and viscosity depend on pressure only.
type DryGasPvt struct {
	gasReferenceDensity []float64

	inverseGasB   []*tabulation.Tabulated1D
	gasMu         []*tabulation.Tabulated1D
	inverseGasBMu []*tabulation.Tabulated1D
}

// NewDryGasPvt allocates the per-region state for numRegions PVT regions.
func NewDryGasPvt(numRegions int) *DryGasPvt {
	return &DryGasPvt{
		gasReferenceDensity: make([]float64, numRegions),
		inverseGasB:         make([]*tabulation.Tabulated1D, numRegions),
		gasMu:               make([]*tabulation.Tabulated1D, numRegions),
		inverseGasBMu:       make([]*tabulation.Tabulated1D, numRegions),
	}
}

// NumRegions returns the number of PVT regions.
func (p *DryGasPvt) NumRegions() int { return len(p.gasReferenceDensity) }

// SetReferenceDensities sets the surface densities [kg/m^3] for a region.
func (p *DryGasPvt) SetReferenceDensities(region int, rhoOil, rhoGas, rhoWater float64) {
	p.gasReferenceDensity[region] = rhoGas
}

// SetGasFormationVolumeFactor sets Bg(p) for a region; the table is stored
// inverted.
func (p *DryGasPvt) SetGasFormationVolumeFactor(region int, pressures, bg []float64) {
	inv := make([]float64, len(bg))
	for i, b := range bg {
		inv[i] = 1.0 / b
	}
	p.inverseGasB[region] = tabulation.NewTabulated1D(pressures, inv)
}

// SetGasViscosity sets mu_g(p) for a region.
func (p *DryGasPvt) SetGasViscosity(region int, pressures, mug []float64) {
	p.gasMu[region] = tabulation.NewTabulated1D(pressures, mug)
}

// InitEnd builds the derived 1/(B*mu) tables.
func (p *DryGasPvt) InitEnd() error {
	for region := range p.inverseGasB {
		invB := p.inverseGasB[region]
		mu := p.gasMu[region]

		xs := make([]float64, invB.NumSamples())
		ys := make([]float64, invB.NumSamples())
		for i := range xs {
			xs[i] = invB.XAt(i)
			ys[i] = invB.YAt(i) / mu.Eval(xs[i], true)
		}
		p.inverseGasBMu[region] = tabulation.NewTabulated1D(xs, ys)
	}
	return nil
}

// Viscosity returns the dynamic viscosity [Pa s]; the composition argument
// is ignored since no oil vaporizes into dry gas.
func (p *DryGasPvt) Viscosity(region int, temperature, pressure, xgO float64) float64 {
	return p.SaturatedViscosity(region, temperature, pressure)
}

// SaturatedViscosity returns the dynamic viscosity [Pa s].
func (p *DryGasPvt) SaturatedViscosity(region int, temperature, pressure float64) float64 {
	invBg := p.inverseGasB[region].Eval(pressure, true)
	invMugBg := p.inverseGasBMu[region].Eval(pressure, true)
	return invBg / invMugBg
}

// FormationVolumeFactor returns Bg [-]; the composition argument is ignored.
func (p *DryGasPvt) FormationVolumeFactor(region int, temperature, pressure, xgO float64) float64 {
	return p.SaturatedFormationVolumeFactor(region, temperature, pressure)
}

// SaturatedFormationVolumeFactor returns Bg [-].
func (p *DryGasPvt) SaturatedFormationVolumeFactor(region int, temperature, pressure float64) float64 {
	return 1.0 / p.inverseGasB[region].Eval(pressure, true)
}

// Density returns the gas density [kg/m^3].
func (p *DryGasPvt) Density(region int, temperature, pressure, xgO float64) float64 {
	return p.SaturatedDensity(region, temperature, pressure)
}

// SaturatedDensity returns the gas density [kg/m^3].
func (p *DryGasPvt) SaturatedDensity(region int, temperature, pressure float64) float64 {
	return p.gasReferenceDensity[region] * p.inverseGasB[region].Eval(pressure, true)
}

// OilVaporizationFactor is identically zero for dry gas.
func (p *DryGasPvt) OilVaporizationFactor(region int, temperature, pressure float64) float64 {
	return 0.0
}

// FugacityCoefficientGas returns the fugacity coefficient of the gas
// component in the gas phase, assumed ideal.
func (p *DryGasPvt) FugacityCoefficientGas(region int, temperature, pressure float64) float64 {
	return 1.0
}

// FugacityCoefficientOil returns a very large coefficient since oil does
// not vaporize into dry gas.
func (p *DryGasPvt) FugacityCoefficientOil(region int, temperature, pressure float64) float64 {
	return 1e8
}

// FugacityCoefficientWater returns a very large coefficient since the
// affinity of water to the gas phase is negligible.
func (p *DryGasPvt) FugacityCoefficientWater(region int, temperature, pressure float64) float64 {
	return 1e8
}

// SaturationPressure is not applicable: dry gas holds no vaporized oil to
// invert for.
func (p *DryGasPvt) SaturationPressure(region int, temperature, xgO float64) (float64, error) {
	return 0, fmt.Errorf("%w: saturation pressure of dry gas", ErrNotApplicable)
}

// SaturatedOilMassFraction is identically zero for dry gas.
func (p *DryGasPvt) SaturatedOilMassFraction(region int, temperature, pressure float64) float64 {
	return 0.0
}

// SaturatedOilMoleFraction is identically zero for dry gas.
func (p *DryGasPvt) SaturatedOilMoleFraction(region int, temperature, pressure float64) float64 {
	return 0.0
}
