package blackoilpvt

import (
	"fmt"

	"github.com/joakim-hove/opm-material/tabulation"
)

// DeadOilPvt describes oil without dissolved gas: the formation volume
// factor and viscosity depend on pressure only.
type DeadOilPvt struct {
	oilReferenceDensity []float64

	inverseOilB   []*tabulation.Tabulated1D
	oilMu         []*tabulation.Tabulated1D
	inverseOilBMu []*tabulation.Tabulated1D
}

// NewDeadOilPvt allocates the per-region state for numRegions PVT regions.
func NewDeadOilPvt(numRegions int) *DeadOilPvt {
	return &DeadOilPvt{
		oilReferenceDensity: make([]float64, numRegions),
		inverseOilB:         make([]*tabulation.Tabulated1D, numRegions),
		oilMu:               make([]*tabulation.Tabulated1D, numRegions),
		inverseOilBMu:       make([]*tabulation.Tabulated1D, numRegions),
	}
}

// NumRegions returns the number of PVT regions.
func (p *DeadOilPvt) NumRegions() int { return len(p.oilReferenceDensity) }

// SetReferenceDensities sets the surface densities [kg/m^3] for a region.
func (p *DeadOilPvt) SetReferenceDensities(region int, rhoOil, rhoGas, rhoWater float64) {
	p.oilReferenceDensity[region] = rhoOil
}

// SetOilFormationVolumeFactor sets Bo(p) for a region; the table is stored
// inverted.
func (p *DeadOilPvt) SetOilFormationVolumeFactor(region int, pressures, bo []float64) {
	inv := make([]float64, len(bo))
	for i, b := range bo {
		inv[i] = 1.0 / b
	}
	p.inverseOilB[region] = tabulation.NewTabulated1D(pressures, inv)
}

// SetOilViscosity sets mu_o(p) for a region.
func (p *DeadOilPvt) SetOilViscosity(region int, pressures, muo []float64) {
	p.oilMu[region] = tabulation.NewTabulated1D(pressures, muo)
}

// InitEnd builds the derived 1/(B*mu) tables, sampled at the pressure
// positions of the inverse formation volume factor tables.
func (p *DeadOilPvt) InitEnd() error {
	for region := range p.inverseOilB {
		invB := p.inverseOilB[region]
		mu := p.oilMu[region]

		xs := make([]float64, invB.NumSamples())
		ys := make([]float64, invB.NumSamples())
		for i := range xs {
			xs[i] = invB.XAt(i)
			ys[i] = invB.YAt(i) / mu.Eval(xs[i], true)
		}
		p.inverseOilBMu[region] = tabulation.NewTabulated1D(xs, ys)
	}
	return nil
}

// Viscosity returns the dynamic viscosity [Pa s]; the composition argument
// is ignored since no gas dissolves in dead oil.
func (p *DeadOilPvt) Viscosity(region int, temperature, pressure, xoG float64) float64 {
	return p.SaturatedViscosity(region, temperature, pressure)
}

// SaturatedViscosity returns the dynamic viscosity [Pa s].
func (p *DeadOilPvt) SaturatedViscosity(region int, temperature, pressure float64) float64 {
	invBo := p.inverseOilB[region].Eval(pressure, true)
	invMuoBo := p.inverseOilBMu[region].Eval(pressure, true)
	return invBo / invMuoBo
}

// FormationVolumeFactor returns Bo [-]; the composition argument is ignored.
func (p *DeadOilPvt) FormationVolumeFactor(region int, temperature, pressure, xoG float64) float64 {
	return p.SaturatedFormationVolumeFactor(region, temperature, pressure)
}

// SaturatedFormationVolumeFactor returns Bo [-].
func (p *DeadOilPvt) SaturatedFormationVolumeFactor(region int, temperature, pressure float64) float64 {
	return 1.0 / p.inverseOilB[region].Eval(pressure, true)
}

// Density returns the oil density [kg/m^3].
func (p *DeadOilPvt) Density(region int, temperature, pressure, xoG float64) float64 {
	return p.SaturatedDensity(region, temperature, pressure)
}

// SaturatedDensity returns the oil density [kg/m^3].
func (p *DeadOilPvt) SaturatedDensity(region int, temperature, pressure float64) float64 {
	return p.oilReferenceDensity[region] * p.inverseOilB[region].Eval(pressure, true)
}

// GasDissolutionFactor is identically zero for dead oil.
func (p *DeadOilPvt) GasDissolutionFactor(region int, temperature, pressure float64) float64 {
	return 0.0
}

// FugacityCoefficientOil returns the fugacity coefficient of the oil
// component in the oil phase.
func (p *DeadOilPvt) FugacityCoefficientOil(region int, temperature, pressure float64) float64 {
	return 20e3 / pressure
}

// FugacityCoefficientGas returns a very large coefficient since gas does
// not dissolve in dead oil.
func (p *DeadOilPvt) FugacityCoefficientGas(region int, temperature, pressure float64) float64 {
	return 1e8
}

// FugacityCoefficientWater returns a very large coefficient since water
// does not dissolve in oil.
func (p *DeadOilPvt) FugacityCoefficientWater(region int, temperature, pressure float64) float64 {
	return 1e8
}

// SaturationPressure is not applicable: dead oil holds no dissolved gas to
// invert for.
func (p *DeadOilPvt) SaturationPressure(region int, temperature, xoG float64) (float64, error) {
	return 0, fmt.Errorf("%w: saturation pressure of dead oil", ErrNotApplicable)
}

// SaturatedGasMassFraction is identically zero for dead oil.
func (p *DeadOilPvt) SaturatedGasMassFraction(region int, temperature, pressure float64) float64 {
	return 0.0
}

// SaturatedGasMoleFraction is identically zero for dead oil.
func (p *DeadOilPvt) SaturatedGasMoleFraction(region int, temperature, pressure float64) float64 {
	return 0.0
}
