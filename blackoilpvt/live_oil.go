package blackoilpvt

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/joakim-hove/opm-material/tabulation"
)

// LiveOilPvt describes the PVT relations of the oil phase with dissolved
// gas. It is the structural mirror of WetGasPvt: per region it owns 2-D
// tables of the inverse oil formation volume factor and the oil viscosity,
// both indexed (Rs, pressure), the derived 1/(B*mu) table, the saturated
// gas dissolution factor Rs(p) and the saturation-pressure spline. The
// inversion direction differs only in which reference-density ratio
// converts mass fractions to dissolution ratios.
type LiveOilPvt struct {
	surface SurfaceConditions

	// non-owning cross-link to the companion gas correlation
	gasPvt *GasPvtMultiplexer

	gasMolarMass        []float64
	oilMolarMass        []float64
	gasReferenceDensity []float64
	oilReferenceDensity []float64

	inverseOilB   []*tabulation.Tabulated2D
	oilMu         []*tabulation.Tabulated2D
	inverseOilBMu []*tabulation.Tabulated2D

	gasDissolutionFactor []*tabulation.Tabulated1D
	saturationPressure   []*tabulation.MonotoneSpline
}

// NewLiveOilPvt allocates the per-region state for numRegions PVT regions.
func NewLiveOilPvt(numRegions int, surface SurfaceConditions) *LiveOilPvt {
	return &LiveOilPvt{
		surface:              surface,
		gasMolarMass:         make([]float64, numRegions),
		oilMolarMass:         make([]float64, numRegions),
		gasReferenceDensity:  make([]float64, numRegions),
		oilReferenceDensity:  make([]float64, numRegions),
		inverseOilB:          make([]*tabulation.Tabulated2D, numRegions),
		oilMu:                make([]*tabulation.Tabulated2D, numRegions),
		inverseOilBMu:        make([]*tabulation.Tabulated2D, numRegions),
		gasDissolutionFactor: make([]*tabulation.Tabulated1D, numRegions),
		saturationPressure:   make([]*tabulation.MonotoneSpline, numRegions),
	}
}

// NumRegions returns the number of PVT regions.
func (p *LiveOilPvt) NumRegions() int { return len(p.oilReferenceDensity) }

// SetReferenceDensities sets the surface densities [kg/m^3] of the fluids
// for a region and derives default molar masses from them.
func (p *LiveOilPvt) SetReferenceDensities(region int, rhoOil, rhoGas, rhoWater float64) {
	p.oilReferenceDensity[region] = rhoOil
	p.gasReferenceDensity[region] = rhoGas
	p.oilMolarMass[region] = DefaultOilMolarMass
	p.gasMolarMass[region] = p.surface.IdealGasMolarMass(rhoGas)
}

// SetMolarMasses overrides the component molar masses [kg/mol] for a region.
func (p *LiveOilPvt) SetMolarMasses(region int, mOil, mGas, mWater float64) {
	p.oilMolarMass[region] = mOil
	p.gasMolarMass[region] = mGas
}

// SetSaturatedGasDissolutionFactor sets the dissolution factor Rs [m^3/m^3]
// of gas-saturated oil as a function of oil pressure [Pa].
func (p *LiveOilPvt) SetSaturatedGasDissolutionFactor(region int, pressures, rs []float64) {
	p.gasDissolutionFactor[region] = tabulation.NewTabulated1D(pressures, rs)
}

// SetUndersaturatedTables ingests full experimental rows, one per
// dissolution factor, each holding (p, Bo, mu) samples with the saturated
// point first and pressures increasing into the undersaturated branch. Rows
// lacking an undersaturated branch are completed with the gap-fill
// extension.
func (p *LiveOilPvt) SetUndersaturatedTables(region int, rows []SaturatedRow) error {
	ext, err := ExtendUndersaturated(rows)
	if err != nil {
		return err
	}

	invB := tabulation.NewTabulated2D()
	mu := tabulation.NewTabulated2D()
	for i, row := range ext {
		invB.AppendXPos(row.X)
		mu.AppendXPos(row.X)
		for _, s := range row.Samples {
			invB.AppendSamplePoint(i, s.X, 1.0/s.B)
			mu.AppendSamplePoint(i, s.X, s.Viscosity)
		}
	}
	p.inverseOilB[region] = invB
	p.oilMu[region] = mu
	return nil
}

// SetInverseOilFormationVolumeFactor sets 1/Bo(Rs, p) directly.
func (p *LiveOilPvt) SetInverseOilFormationVolumeFactor(region int, invBo *tabulation.Tabulated2D) {
	p.inverseOilB[region] = invBo
}

// SetOilViscosity sets mu_o(Rs, p) directly.
func (p *LiveOilPvt) SetOilViscosity(region int, muo *tabulation.Tabulated2D) {
	p.oilMu[region] = muo
}

// SetSaturatedOilFormationVolumeFactor estimates the full 2-D inverse
// formation volume factor table from the volume factor of gas-saturated oil
// alone, extrapolating the undersaturated branch with an assumed constant
// oil compressibility. The saturated dissolution factor must already be
// set.
func (p *LiveOilPvt) SetSaturatedOilFormationVolumeFactor(region int, pressures, bo []float64) error {
	rsTable := p.gasDissolutionFactor[region]
	rsMax := rsTable.Eval(rsTable.XMax(), true)

	rhoORef := p.oilReferenceDensity[region]
	rhoGRef := p.gasReferenceDensity[region]

	boSpline := tabulation.NewMonotoneSpline(pressures, bo)

	p.updateSaturationPressureSpline(region)

	rss := floats.Span(make([]float64, 20), 0.0, rsMax)
	pos := floats.Span(make([]float64, 2*len(pressures)), pressures[0], pressures[len(pressures)-1])

	const drhooDp = (1.1200 - 1.1189) / ((5000 - 4000) * 6894.76)

	invB := tabulation.NewTabulated2D()
	for i, rs := range rss {
		xoG := rs / (rhoORef/rhoGRef + rs)
		poSat, err := p.saturationPressureFor(region, xoG)
		if err != nil {
			return err
		}
		boSat := boSpline.Eval(poSat, true)

		invB.AppendXPos(rs)
		for _, po := range pos {
			rhoo := rhoORef / boSat * (1 + drhooDp*(po-poSat))
			invB.AppendSamplePoint(i, po, rhoo/rhoORef)
		}
	}
	p.inverseOilB[region] = invB
	return nil
}

// SetSaturatedOilViscosity estimates the full 2-D viscosity table from the
// viscosity of gas-saturated oil alone, assuming no dependence on the
// dissolved gas fraction. The saturated dissolution factor must already be
// set.
func (p *LiveOilPvt) SetSaturatedOilViscosity(region int, pressures, muo []float64) {
	rsTable := p.gasDissolutionFactor[region]
	rsMax := rsTable.Eval(rsTable.XMax(), true)

	muoSpline := tabulation.NewMonotoneSpline(pressures, muo)

	rss := floats.Span(make([]float64, 20), 0.0, rsMax)
	pos := floats.Span(make([]float64, 2*len(pressures)), pressures[0], pressures[len(pressures)-1])

	mu := tabulation.NewTabulated2D()
	for i, rs := range rss {
		mu.AppendXPos(rs)
		for _, po := range pos {
			mu.AppendSamplePoint(i, po, muoSpline.Eval(po, true))
		}
	}
	p.oilMu[region] = mu
}

// InitEnd finalizes the correlation against the companion gas multiplexer:
// it builds the derived 1/(B*mu) tables and the saturation-pressure
// splines. No mutation may happen afterwards.
func (p *LiveOilPvt) InitEnd(gasPvt *GasPvtMultiplexer) error {
	p.gasPvt = gasPvt

	for region := range p.oilMu {
		mu := p.oilMu[region]
		invB := p.inverseOilB[region]

		invBMu := tabulation.NewTabulated2D()
		for i := 0; i < mu.NumX(); i++ {
			invBMu.AppendXPos(mu.XAt(i))
			for j := 0; j < mu.NumY(i); j++ {
				invBMu.AppendSamplePoint(i, mu.YAt(i, j), invB.ValueAt(i, j)/mu.ValueAt(i, j))
			}
		}
		p.inverseOilBMu[region] = invBMu

		p.updateSaturationPressureSpline(region)
	}
	return nil
}

// Viscosity returns the dynamic viscosity [Pa s] of oil with the gas mass
// fraction xoG.
func (p *LiveOilPvt) Viscosity(region int, temperature, pressure, xoG float64) float64 {
	rs := p.dissolvedRatio(region, xoG)
	invBo := p.inverseOilB[region].Eval(rs, pressure, true)
	invMuoBo := p.inverseOilBMu[region].Eval(rs, pressure, true)
	return invBo / invMuoBo
}

// SaturatedViscosity returns the viscosity of gas-saturated oil.
func (p *LiveOilPvt) SaturatedViscosity(region int, temperature, pressure float64) float64 {
	xoG := p.SaturatedGasMassFraction(region, temperature, pressure)
	return p.Viscosity(region, temperature, pressure, xoG)
}

// FormationVolumeFactor returns Bo [-] of oil with the gas mass fraction xoG.
func (p *LiveOilPvt) FormationVolumeFactor(region int, temperature, pressure, xoG float64) float64 {
	rs := p.dissolvedRatio(region, xoG)
	return 1.0 / p.inverseOilB[region].Eval(rs, pressure, true)
}

// SaturatedFormationVolumeFactor returns Bo of gas-saturated oil.
func (p *LiveOilPvt) SaturatedFormationVolumeFactor(region int, temperature, pressure float64) float64 {
	xoG := p.SaturatedGasMassFraction(region, temperature, pressure)
	return p.FormationVolumeFactor(region, temperature, pressure, xoG)
}

// Density returns the oil phase density [kg/m^3]: the oil component at
// reservoir volume plus the partial density of the dissolved gas.
func (p *LiveOilPvt) Density(region int, temperature, pressure, xoG float64) float64 {
	rhoORef := p.oilReferenceDensity[region]
	rhoGRef := p.gasReferenceDensity[region]

	bo := p.FormationVolumeFactor(region, temperature, pressure, xoG)
	rs := p.dissolvedRatio(region, xoG)
	return rhoORef/bo + rhoGRef*rs/bo
}

// SaturatedDensity returns the density of gas-saturated oil.
func (p *LiveOilPvt) SaturatedDensity(region int, temperature, pressure float64) float64 {
	xoG := p.SaturatedGasMassFraction(region, temperature, pressure)
	return p.Density(region, temperature, pressure, xoG)
}

// GasDissolutionFactor returns Rs [m^3/m^3] of gas-saturated oil.
func (p *LiveOilPvt) GasDissolutionFactor(region int, temperature, pressure float64) float64 {
	return p.gasDissolutionFactor[region].Eval(pressure, true)
}

// FugacityCoefficientOil returns the fugacity coefficient of the oil
// component in the oil phase.
func (p *LiveOilPvt) FugacityCoefficientOil(region int, temperature, pressure float64) float64 {
	return 20e3 / pressure
}

// FugacityCoefficientGas returns the fugacity coefficient of the gas
// component in the oil phase: the companion gas correlation's coefficient
// scaled so a flash experiment reproduces the saturated oil composition.
func (p *LiveOilPvt) FugacityCoefficientGas(region int, temperature, pressure float64) float64 {
	xoGSat := p.SaturatedGasMoleFraction(region, temperature, pressure)
	phiGasInGas := p.gasPvt.FugacityCoefficientGas(region, temperature, pressure)
	return phiGasInGas / xoGSat
}

// FugacityCoefficientWater returns the fugacity coefficient of the water
// component in the oil phase; the affinity of water to oil is assumed to be
// negligible.
func (p *LiveOilPvt) FugacityCoefficientWater(region int, temperature, pressure float64) float64 {
	return 1e8
}

// SaturationPressure returns the oil pressure [Pa] at which the gas mass
// fraction xoG is exactly saturated, via the spline-seeded Newton iteration.
func (p *LiveOilPvt) SaturationPressure(region int, temperature, xoG float64) (float64, error) {
	return p.saturationPressureFor(region, xoG)
}

func (p *LiveOilPvt) saturationPressureFor(region int, xoG float64) (float64, error) {
	pSat := p.saturationPressure[region].Eval(xoG, true)
	eps := pSat * 1e-11

	for i := 0; i < 20; i++ {
		f := p.SaturatedGasMassFraction(region, 0, pSat) - xoG
		fPrime := ((p.SaturatedGasMassFraction(region, 0, pSat+eps) - xoG) - f) / eps

		delta := f / fPrime
		pSat -= delta

		if math.Abs(delta) < math.Abs(pSat)*1e-10 {
			return pSat, nil
		}
	}
	return 0, &NumericalIssueError{Phase: "oil", Region: region, Target: xoG}
}

// SaturatedGasMassFraction returns the mass fraction of the gas component
// in gas-saturated oil.
func (p *LiveOilPvt) SaturatedGasMassFraction(region int, temperature, pressure float64) float64 {
	rhoORef := p.oilReferenceDensity[region]
	rhoGRef := p.gasReferenceDensity[region]

	rs := p.GasDissolutionFactor(region, temperature, pressure)
	rhoOG := rs * rhoGRef
	return rhoOG / (rhoORef + rhoOG)
}

// SaturatedGasMoleFraction converts the saturated gas mass fraction to a
// mole fraction using the component molar masses.
func (p *LiveOilPvt) SaturatedGasMoleFraction(region int, temperature, pressure float64) float64 {
	xoG := p.SaturatedGasMassFraction(region, temperature, pressure)

	mG := p.gasMolarMass[region]
	mO := p.oilMolarMass[region]

	avgMolarMass := mG / (1 + (1-xoG)*(mG/mO-1))
	return xoG * avgMolarMass / mG
}

// dissolvedRatio converts the gas mass fraction in oil to the dissolution
// ratio Rs [m^3/m^3] via the reference densities.
func (p *LiveOilPvt) dissolvedRatio(region int, xoG float64) float64 {
	return xoG / (1 - xoG) * (p.oilReferenceDensity[region] / p.gasReferenceDensity[region])
}

// updateSaturationPressureSpline refits the monotone spline of the
// saturation pressure as a function of the gas mass fraction by sweeping
// the dissolution factor table.
func (p *LiveOilPvt) updateSaturationPressureSpline(region int) {
	rsTable := p.gasDissolutionFactor[region]

	n := rsTable.NumSamples() * 5
	delta := (rsTable.XMax() - rsTable.XMin()) / float64(n+1)

	xs := make([]float64, 0, n+1)
	ys := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		pSat := rsTable.XMin() + float64(i)*delta
		xoG := p.SaturatedGasMassFraction(region, 0, pSat)
		xs = append(xs, xoG)
		ys = append(ys, pSat)
	}
	p.saturationPressure[region] = tabulation.NewMonotoneSpline(xs, ys)
}
