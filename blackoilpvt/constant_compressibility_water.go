package blackoilpvt

// ConstantCompressibilityWaterPvt describes the water phase with constant
// compressibility and viscosibility around a per-region reference state.
// Nothing dissolves in water, so no property depends on composition.
type ConstantCompressibilityWaterPvt struct {
	waterReferenceDensity []float64

	referencePressure              []float64
	referenceFormationVolumeFactor []float64
	compressibility                []float64
	referenceViscosity             []float64
	viscosibility                  []float64
}

// NewConstantCompressibilityWaterPvt allocates the per-region state for
// numRegions PVT regions.
func NewConstantCompressibilityWaterPvt(numRegions int) *ConstantCompressibilityWaterPvt {
	return &ConstantCompressibilityWaterPvt{
		waterReferenceDensity:          make([]float64, numRegions),
		referencePressure:              make([]float64, numRegions),
		referenceFormationVolumeFactor: make([]float64, numRegions),
		compressibility:                make([]float64, numRegions),
		referenceViscosity:             make([]float64, numRegions),
		viscosibility:                  make([]float64, numRegions),
	}
}

// NumRegions returns the number of PVT regions.
func (p *ConstantCompressibilityWaterPvt) NumRegions() int { return len(p.waterReferenceDensity) }

// SetReferenceDensities sets the surface densities [kg/m^3] for a region.
func (p *ConstantCompressibilityWaterPvt) SetReferenceDensities(region int, rhoOil, rhoGas, rhoWater float64) {
	p.waterReferenceDensity[region] = rhoWater
}

// SetReferenceState sets the per-region reference pressure [Pa], the
// formation volume factor and viscosity [Pa s] at that pressure, and the
// constant compressibility and viscosibility [1/Pa].
func (p *ConstantCompressibilityWaterPvt) SetReferenceState(region int, refPressure, refB, compressibility, refViscosity, viscosibility float64) {
	p.referencePressure[region] = refPressure
	p.referenceFormationVolumeFactor[region] = refB
	p.compressibility[region] = compressibility
	p.referenceViscosity[region] = refViscosity
	p.viscosibility[region] = viscosibility
}

// InitEnd finalizes the correlation. There are no derived tables to build.
func (p *ConstantCompressibilityWaterPvt) InitEnd() error { return nil }

// Viscosity returns the dynamic viscosity [Pa s].
func (p *ConstantCompressibilityWaterPvt) Viscosity(region int, temperature, pressure float64) float64 {
	y := -p.viscosibility[region] * (pressure - p.referencePressure[region])
	return p.referenceViscosity[region] / (1 + y*(1+y/2))
}

// FormationVolumeFactor returns Bw [-] via the quadratic expansion of
// exp(-c*(p - pRef)).
func (p *ConstantCompressibilityWaterPvt) FormationVolumeFactor(region int, temperature, pressure float64) float64 {
	x := p.compressibility[region] * (pressure - p.referencePressure[region])
	return p.referenceFormationVolumeFactor[region] / (1 + x*(1+x/2))
}

// Density returns the water density [kg/m^3].
func (p *ConstantCompressibilityWaterPvt) Density(region int, temperature, pressure float64) float64 {
	return p.waterReferenceDensity[region] / p.FormationVolumeFactor(region, temperature, pressure)
}

// FugacityCoefficientWater returns the fugacity coefficient of the water
// component in the water phase.
func (p *ConstantCompressibilityWaterPvt) FugacityCoefficientWater(region int, temperature, pressure float64) float64 {
	return 30e3 / pressure
}

// FugacityCoefficientGas returns a very large coefficient since gas
// solubility in water is neglected.
func (p *ConstantCompressibilityWaterPvt) FugacityCoefficientGas(region int, temperature, pressure float64) float64 {
	return 1e10
}

// FugacityCoefficientOil returns a very large coefficient since oil does
// not dissolve in water.
func (p *ConstantCompressibilityWaterPvt) FugacityCoefficientOil(region int, temperature, pressure float64) float64 {
	return 1e10
}
