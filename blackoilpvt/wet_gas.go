package blackoilpvt

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/joakim-hove/opm-material/tabulation"
)

// WetGasPvt describes the PVT relations of the gas phase with vaporized
// oil. Per region it owns 2-D tables of the inverse gas formation volume
// factor and the gas viscosity, both indexed (pressure, Rv), a derived
// table of 1/(B*mu) built at InitEnd, the saturated oil vaporization factor
// Rv(p) and a monotone spline seeding the saturation-pressure inversion.
//
// Construction order is strict: reference densities, the saturated
// vaporization factor, then either full undersaturated tables or the
// saturated-branch setters, and finally InitEnd. After InitEnd the state is
// frozen and all queries are safe for concurrent use.
type WetGasPvt struct {
	surface SurfaceConditions

	// non-owning cross-link to the companion oil correlation, set at
	// InitEnd and only ever read
	oilPvt *OilPvtMultiplexer

	gasMolarMass        []float64
	oilMolarMass        []float64
	gasReferenceDensity []float64
	oilReferenceDensity []float64

	inverseGasB   []*tabulation.Tabulated2D
	gasMu         []*tabulation.Tabulated2D
	inverseGasBMu []*tabulation.Tabulated2D

	oilVaporizationFactor []*tabulation.Tabulated1D
	saturationPressure    []*tabulation.MonotoneSpline
}

// NewWetGasPvt allocates the per-region state for numRegions PVT regions.
func NewWetGasPvt(numRegions int, surface SurfaceConditions) *WetGasPvt {
	p := &WetGasPvt{
		surface:               surface,
		gasMolarMass:          make([]float64, numRegions),
		oilMolarMass:          make([]float64, numRegions),
		gasReferenceDensity:   make([]float64, numRegions),
		oilReferenceDensity:   make([]float64, numRegions),
		inverseGasB:           make([]*tabulation.Tabulated2D, numRegions),
		gasMu:                 make([]*tabulation.Tabulated2D, numRegions),
		inverseGasBMu:         make([]*tabulation.Tabulated2D, numRegions),
		oilVaporizationFactor: make([]*tabulation.Tabulated1D, numRegions),
		saturationPressure:    make([]*tabulation.MonotoneSpline, numRegions),
	}
	return p
}

// NumRegions returns the number of PVT regions.
func (p *WetGasPvt) NumRegions() int { return len(p.gasReferenceDensity) }

// SetReferenceDensities sets the surface densities [kg/m^3] of the fluids
// for a region. The molar masses are derived from them (ideal gas law for
// the gas component) and can be overridden with SetMolarMasses.
func (p *WetGasPvt) SetReferenceDensities(region int, rhoOil, rhoGas, rhoWater float64) {
	p.oilReferenceDensity[region] = rhoOil
	p.gasReferenceDensity[region] = rhoGas
	p.oilMolarMass[region] = DefaultOilMolarMass
	p.gasMolarMass[region] = p.surface.IdealGasMolarMass(rhoGas)
}

// SetMolarMasses overrides the component molar masses [kg/mol] for a region.
func (p *WetGasPvt) SetMolarMasses(region int, mOil, mGas, mWater float64) {
	p.oilMolarMass[region] = mOil
	p.gasMolarMass[region] = mGas
}

// SetSaturatedOilVaporizationFactor sets the vaporization factor Rv [m^3/m^3]
// of oil-saturated gas as a function of gas pressure [Pa].
func (p *WetGasPvt) SetSaturatedOilVaporizationFactor(region int, pressures, rv []float64) {
	p.oilVaporizationFactor[region] = tabulation.NewTabulated1D(pressures, rv)
}

// SetUndersaturatedTables ingests full experimental rows, one per saturated
// pressure, each holding (Rv, Bg, mu) samples with the saturated point
// first. Rows lacking an undersaturated branch are completed with the
// gap-fill extension before the 2-D tables are built.
func (p *WetGasPvt) SetUndersaturatedTables(region int, rows []SaturatedRow) error {
	ext, err := ExtendUndersaturated(rows)
	if err != nil {
		return err
	}

	invB := tabulation.NewTabulated2D()
	mu := tabulation.NewTabulated2D()
	for i, row := range ext {
		// undersaturated gas entries run from the saturated Rv
		// downwards; the table columns want increasing Rv
		samples := append([]UndersaturatedSample(nil), row.Samples...)
		sort.Slice(samples, func(a, b int) bool { return samples[a].X < samples[b].X })

		invB.AppendXPos(row.X)
		mu.AppendXPos(row.X)
		for _, s := range samples {
			invB.AppendSamplePoint(i, s.X, 1.0/s.B)
			mu.AppendSamplePoint(i, s.X, s.Viscosity)
		}
	}
	p.inverseGasB[region] = invB
	p.gasMu[region] = mu
	return nil
}

// SetInverseGasFormationVolumeFactor sets 1/Bg(p, Rv) directly.
func (p *WetGasPvt) SetInverseGasFormationVolumeFactor(region int, invBg *tabulation.Tabulated2D) {
	p.inverseGasB[region] = invBg
}

// SetGasViscosity sets mu_g(p, Rv) directly.
func (p *WetGasPvt) SetGasViscosity(region int, mug *tabulation.Tabulated2D) {
	p.gasMu[region] = mug
}

// SetSaturatedGasFormationVolumeFactor estimates the full 2-D inverse
// formation volume factor table from the volume factor of oil-saturated gas
// alone. The dependence on the vaporized oil fraction is guesstimated by
// assuming oil of constant compressibility; if only the saturated branch is
// available there is not much choice. The saturated vaporization factor
// must already be set.
func (p *WetGasPvt) SetSaturatedGasFormationVolumeFactor(region int, pressures, bg []float64) error {
	rvTable := p.oilVaporizationFactor[region]
	rvMax := rvTable.Eval(rvTable.XMax(), true)

	rhoORef := p.oilReferenceDensity[region]
	rhoGRef := p.gasReferenceDensity[region]

	bgSpline := tabulation.NewMonotoneSpline(pressures, bg)

	p.updateSaturationPressureSpline(region)

	rvs := floats.Span(make([]float64, 20), 0.0, rvMax)
	pgs := floats.Span(make([]float64, 2*len(pressures)), pressures[0], pressures[len(pressures)-1])

	// slope of the density of oil of constant compressibility, converted
	// from the 1.1189->1.1200 rb/stb change over 4000->5000 psi
	const drhooDp = (1.1200 - 1.1189) / ((5000 - 4000) * 6894.76)

	invB := tabulation.NewTabulated2D()
	for i, pg := range pgs {
		invB.AppendXPos(pg)
		for _, rv := range rvs {
			xgO := rv / (rhoORef/rhoGRef + rv)
			poSat, err := p.saturationPressureFor(region, xgO)
			if err != nil {
				return err
			}
			bgSat := bgSpline.Eval(poSat, true)
			rhoo := rhoORef / bgSat * (1 + drhooDp*(pg-poSat))
			invB.AppendSamplePoint(i, rv, rhoo/rhoORef)
		}
	}
	p.inverseGasB[region] = invB
	return nil
}

// SetSaturatedGasViscosity estimates the full 2-D viscosity table from the
// viscosity of oil-saturated gas alone, assuming no dependence on the
// vaporized oil fraction. The saturated vaporization factor must already be
// set.
func (p *WetGasPvt) SetSaturatedGasViscosity(region int, pressures, mug []float64) {
	rvTable := p.oilVaporizationFactor[region]
	rvMax := rvTable.Eval(rvTable.XMax(), true)

	mugSpline := tabulation.NewMonotoneSpline(pressures, mug)

	rvs := floats.Span(make([]float64, 20), 0.0, rvMax)
	pgs := floats.Span(make([]float64, 2*len(pressures)), pressures[0], pressures[len(pressures)-1])

	mu := tabulation.NewTabulated2D()
	for i, pg := range pgs {
		mu.AppendXPos(pg)
		muSat := mugSpline.Eval(pg, true)
		for _, rv := range rvs {
			mu.AppendSamplePoint(i, rv, muSat)
		}
	}
	p.gasMu[region] = mu
}

// InitEnd finalizes the correlation: it stores the non-owning reference to
// the companion oil multiplexer, builds the derived 1/(B*mu) tables and the
// saturation-pressure splines. No mutation may happen afterwards.
func (p *WetGasPvt) InitEnd(oilPvt *OilPvtMultiplexer) error {
	p.oilPvt = oilPvt

	for region := range p.gasMu {
		mu := p.gasMu[region]
		invB := p.inverseGasB[region]

		invBMu := tabulation.NewTabulated2D()
		for i := 0; i < mu.NumX(); i++ {
			invBMu.AppendXPos(mu.XAt(i))
			for j := 0; j < mu.NumY(i); j++ {
				invBMu.AppendSamplePoint(i, mu.YAt(i, j), invB.ValueAt(i, j)/mu.ValueAt(i, j))
			}
		}
		p.inverseGasBMu[region] = invBMu

		p.updateSaturationPressureSpline(region)
	}
	return nil
}

// Viscosity returns the dynamic viscosity [Pa s] of gas with the oil mass
// fraction xgO.
func (p *WetGasPvt) Viscosity(region int, temperature, pressure, xgO float64) float64 {
	rv := p.vaporizedRatio(region, xgO)
	invBg := p.inverseGasB[region].Eval(pressure, rv, true)
	invMugBg := p.inverseGasBMu[region].Eval(pressure, rv, true)
	return invBg / invMugBg
}

// SaturatedViscosity returns the viscosity of oil-saturated gas.
func (p *WetGasPvt) SaturatedViscosity(region int, temperature, pressure float64) float64 {
	xgO := p.SaturatedOilMassFraction(region, temperature, pressure)
	return p.Viscosity(region, temperature, pressure, xgO)
}

// FormationVolumeFactor returns Bg [-] of gas with the oil mass fraction xgO.
func (p *WetGasPvt) FormationVolumeFactor(region int, temperature, pressure, xgO float64) float64 {
	rv := p.vaporizedRatio(region, xgO)
	return 1.0 / p.inverseGasB[region].Eval(pressure, rv, true)
}

// SaturatedFormationVolumeFactor returns Bg of oil-saturated gas.
func (p *WetGasPvt) SaturatedFormationVolumeFactor(region int, temperature, pressure float64) float64 {
	xgO := p.SaturatedOilMassFraction(region, temperature, pressure)
	return p.FormationVolumeFactor(region, temperature, pressure, xgO)
}

// Density returns the gas phase density [kg/m^3]. The formation volume
// factor covers the gas component; the partial density of the vaporized oil
// component is added on top.
func (p *WetGasPvt) Density(region int, temperature, pressure, xgO float64) float64 {
	rhoGRef := p.gasReferenceDensity[region]
	bg := p.FormationVolumeFactor(region, temperature, pressure, xgO)
	rv := p.vaporizedRatio(region, xgO)
	return rhoGRef/bg + rhoGRef*rv/bg
}

// SaturatedDensity returns the density of oil-saturated gas.
func (p *WetGasPvt) SaturatedDensity(region int, temperature, pressure float64) float64 {
	xgO := p.SaturatedOilMassFraction(region, temperature, pressure)
	return p.Density(region, temperature, pressure, xgO)
}

// OilVaporizationFactor returns Rv [m^3/m^3] of oil-saturated gas.
func (p *WetGasPvt) OilVaporizationFactor(region int, temperature, pressure float64) float64 {
	return p.oilVaporizationFactor[region].Eval(pressure, true)
}

// FugacityCoefficientGas returns the fugacity coefficient of the gas
// component in the gas phase, which is assumed to be that of an ideal gas.
func (p *WetGasPvt) FugacityCoefficientGas(region int, temperature, pressure float64) float64 {
	return 1.0
}

// FugacityCoefficientOil returns the fugacity coefficient of the oil
// component in the gas phase. The companion oil correlation's coefficient
// is scaled so that a flash experiment ends up at the saturated gas
// composition; this is why the two phase correlations are cross-finalized.
func (p *WetGasPvt) FugacityCoefficientOil(region int, temperature, pressure float64) float64 {
	xgOSat := p.SaturatedOilMoleFraction(region, temperature, pressure)
	phiOilInOil := p.oilPvt.FugacityCoefficientOil(region, temperature, pressure)
	return phiOilInOil / xgOSat
}

// FugacityCoefficientWater returns the fugacity coefficient of the water
// component in the gas phase. The affinity of water to the gas phase is
// assumed to be negligible.
func (p *WetGasPvt) FugacityCoefficientWater(region int, temperature, pressure float64) float64 {
	return 1e8
}

// SaturationPressure returns the gas pressure [Pa] at which the oil mass
// fraction xgO is exactly saturated. The monotone spline supplies the
// initial value and a Newton iteration with a forward-difference derivative
// does the remaining work; with a good seed it takes two or three
// iterations. Exceeding the 20-iteration cap is a numerical error.
func (p *WetGasPvt) SaturationPressure(region int, temperature, xgO float64) (float64, error) {
	return p.saturationPressureFor(region, xgO)
}

func (p *WetGasPvt) saturationPressureFor(region int, xgO float64) (float64, error) {
	pSat := p.saturationPressure[region].Eval(xgO, true)
	eps := pSat * 1e-11

	for i := 0; i < 20; i++ {
		f := p.SaturatedOilMassFraction(region, 0, pSat) - xgO
		fPrime := ((p.SaturatedOilMassFraction(region, 0, pSat+eps) - xgO) - f) / eps

		delta := f / fPrime
		pSat -= delta

		if math.Abs(delta) < math.Abs(pSat)*1e-10 {
			return pSat, nil
		}
	}
	return 0, &NumericalIssueError{Phase: "gas", Region: region, Target: xgO}
}

// SaturatedOilMassFraction returns the mass fraction of the oil component
// in oil-saturated gas: the vaporized oil mass per reservoir volume over
// the total phase mass per reservoir volume.
func (p *WetGasPvt) SaturatedOilMassFraction(region int, temperature, pressure float64) float64 {
	rhoGRef := p.gasReferenceDensity[region]
	rhoORef := p.oilReferenceDensity[region]

	rv := p.OilVaporizationFactor(region, temperature, pressure)
	rhoGO := rv * rhoORef
	return rhoGO / (rhoGRef + rhoGO)
}

// SaturatedOilMoleFraction converts the saturated oil mass fraction to a
// mole fraction using the component molar masses.
func (p *WetGasPvt) SaturatedOilMoleFraction(region int, temperature, pressure float64) float64 {
	xgO := p.SaturatedOilMassFraction(region, temperature, pressure)

	mG := p.gasMolarMass[region]
	mO := p.oilMolarMass[region]

	avgMolarMass := mO / (1 + (1-xgO)*(mO/mG-1))
	return xgO * avgMolarMass / mO
}

// vaporizedRatio converts the oil mass fraction in gas to the vaporization
// ratio Rv [m^3/m^3] via the reference densities.
func (p *WetGasPvt) vaporizedRatio(region int, xgO float64) float64 {
	return xgO / (1 - xgO) * (p.gasReferenceDensity[region] / p.oilReferenceDensity[region])
}

// updateSaturationPressureSpline refits the monotone spline of the
// saturation pressure as a function of the oil mass fraction by sweeping
// the vaporization factor table.
func (p *WetGasPvt) updateSaturationPressureSpline(region int) {
	rvTable := p.oilVaporizationFactor[region]

	n := rvTable.NumSamples() * 5
	delta := (rvTable.XMax() - rvTable.XMin()) / float64(n+1)

	xs := make([]float64, 0, n+1)
	ys := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		pSat := rvTable.XMin() + float64(i)*delta
		xgO := p.SaturatedOilMassFraction(region, 0, pSat)
		xs = append(xs, xgO)
		ys = append(ys, pSat)
	}
	p.saturationPressure[region] = tabulation.NewMonotoneSpline(xs, ys)
}
