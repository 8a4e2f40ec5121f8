package blackoilpvt

import "fmt"

// ConstantCompressibilityOilPvt describes oil without dissolved gas whose
// compressibility and "viscosibility" are constant, so the formation volume
// factor and viscosity follow closed-form quadratic expansions around a
// per-region reference state instead of tables.
type ConstantCompressibilityOilPvt struct {
	oilReferenceDensity []float64

	referencePressure              []float64
	referenceFormationVolumeFactor []float64
	compressibility                []float64
	referenceViscosity             []float64
	viscosibility                  []float64
}

// NewConstantCompressibilityOilPvt allocates the per-region state for
// numRegions PVT regions.
func NewConstantCompressibilityOilPvt(numRegions int) *ConstantCompressibilityOilPvt {
	return &ConstantCompressibilityOilPvt{
		oilReferenceDensity:            make([]float64, numRegions),
		referencePressure:              make([]float64, numRegions),
		referenceFormationVolumeFactor: make([]float64, numRegions),
		compressibility:                make([]float64, numRegions),
		referenceViscosity:             make([]float64, numRegions),
		viscosibility:                  make([]float64, numRegions),
	}
}

// NumRegions returns the number of PVT regions.
func (p *ConstantCompressibilityOilPvt) NumRegions() int { return len(p.oilReferenceDensity) }

// SetReferenceDensities sets the surface densities [kg/m^3] for a region.
func (p *ConstantCompressibilityOilPvt) SetReferenceDensities(region int, rhoOil, rhoGas, rhoWater float64) {
	p.oilReferenceDensity[region] = rhoOil
}

// SetReferenceState sets the per-region reference pressure [Pa], the
// formation volume factor and viscosity [Pa s] at that pressure, and the
// constant compressibility and viscosibility [1/Pa].
func (p *ConstantCompressibilityOilPvt) SetReferenceState(region int, refPressure, refB, compressibility, refViscosity, viscosibility float64) {
	p.referencePressure[region] = refPressure
	p.referenceFormationVolumeFactor[region] = refB
	p.compressibility[region] = compressibility
	p.referenceViscosity[region] = refViscosity
	p.viscosibility[region] = viscosibility
}

// InitEnd finalizes the correlation. There are no derived tables to build.
func (p *ConstantCompressibilityOilPvt) InitEnd() error { return nil }

// Viscosity returns the dynamic viscosity [Pa s]; the composition argument
// is ignored.
func (p *ConstantCompressibilityOilPvt) Viscosity(region int, temperature, pressure, xoG float64) float64 {
	return p.SaturatedViscosity(region, temperature, pressure)
}

// SaturatedViscosity returns the dynamic viscosity [Pa s].
func (p *ConstantCompressibilityOilPvt) SaturatedViscosity(region int, temperature, pressure float64) float64 {
	y := -p.viscosibility[region] * (pressure - p.referencePressure[region])
	return p.referenceViscosity[region] / (1 + y*(1+y/2))
}

// FormationVolumeFactor returns Bo [-]; the composition argument is ignored.
func (p *ConstantCompressibilityOilPvt) FormationVolumeFactor(region int, temperature, pressure, xoG float64) float64 {
	return p.SaturatedFormationVolumeFactor(region, temperature, pressure)
}

// SaturatedFormationVolumeFactor returns Bo [-] via the quadratic expansion
// of exp(-c*(p - pRef)).
func (p *ConstantCompressibilityOilPvt) SaturatedFormationVolumeFactor(region int, temperature, pressure float64) float64 {
	x := p.compressibility[region] * (pressure - p.referencePressure[region])
	return p.referenceFormationVolumeFactor[region] / (1 + x*(1+x/2))
}

// Density returns the oil density [kg/m^3].
func (p *ConstantCompressibilityOilPvt) Density(region int, temperature, pressure, xoG float64) float64 {
	return p.SaturatedDensity(region, temperature, pressure)
}

// SaturatedDensity returns the oil density [kg/m^3].
func (p *ConstantCompressibilityOilPvt) SaturatedDensity(region int, temperature, pressure float64) float64 {
	return p.oilReferenceDensity[region] / p.SaturatedFormationVolumeFactor(region, temperature, pressure)
}

// GasDissolutionFactor is identically zero.
func (p *ConstantCompressibilityOilPvt) GasDissolutionFactor(region int, temperature, pressure float64) float64 {
	return 0.0
}

// FugacityCoefficientOil returns the fugacity coefficient of the oil
// component in the oil phase.
func (p *ConstantCompressibilityOilPvt) FugacityCoefficientOil(region int, temperature, pressure float64) float64 {
	return 20e3 / pressure
}

// FugacityCoefficientGas returns a very large coefficient since gas does
// not dissolve in this oil model.
func (p *ConstantCompressibilityOilPvt) FugacityCoefficientGas(region int, temperature, pressure float64) float64 {
	return 1e8
}

// FugacityCoefficientWater returns a very large coefficient since water
// does not dissolve in oil.
func (p *ConstantCompressibilityOilPvt) FugacityCoefficientWater(region int, temperature, pressure float64) float64 {
	return 1e8
}

// SaturationPressure is not applicable for oil without dissolved gas.
func (p *ConstantCompressibilityOilPvt) SaturationPressure(region int, temperature, xoG float64) (float64, error) {
	return 0, fmt.Errorf("%w: saturation pressure of constant compressibility oil", ErrNotApplicable)
}

// SaturatedGasMassFraction is identically zero.
func (p *ConstantCompressibilityOilPvt) SaturatedGasMassFraction(region int, temperature, pressure float64) float64 {
	return 0.0
}

// SaturatedGasMoleFraction is identically zero.
func (p *ConstantCompressibilityOilPvt) SaturatedGasMoleFraction(region int, temperature, pressure float64) float64 {
	return 0.0
}
