package blackoilpvt

import "fmt"

// GasPvt is the property contract every gas-phase correlation implements.
// The set of implementations is closed: WetGasPvt and DryGasPvt.
type GasPvt interface {
	NumRegions() int
	Viscosity(region int, temperature, pressure, xgO float64) float64
	SaturatedViscosity(region int, temperature, pressure float64) float64
	FormationVolumeFactor(region int, temperature, pressure, xgO float64) float64
	SaturatedFormationVolumeFactor(region int, temperature, pressure float64) float64
	Density(region int, temperature, pressure, xgO float64) float64
	SaturatedDensity(region int, temperature, pressure float64) float64
	OilVaporizationFactor(region int, temperature, pressure float64) float64
	SaturationPressure(region int, temperature, xgO float64) (float64, error)
	SaturatedOilMassFraction(region int, temperature, pressure float64) float64
	SaturatedOilMoleFraction(region int, temperature, pressure float64) float64
	FugacityCoefficientOil(region int, temperature, pressure float64) float64
	FugacityCoefficientGas(region int, temperature, pressure float64) float64
	FugacityCoefficientWater(region int, temperature, pressure float64) float64
}

// GasPvtMultiplexer owns exactly one gas-phase correlation, selected once
// at initialization, and forwards every property query to it.
type GasPvtMultiplexer struct {
	numRegions int
	surface    SurfaceConditions
	approach   GasApproach
	impl       GasPvt
}

// NewGasPvtMultiplexer returns a multiplexer in the unset state.
func NewGasPvtMultiplexer(numRegions int, surface SurfaceConditions) *GasPvtMultiplexer {
	return &GasPvtMultiplexer{numRegions: numRegions, surface: surface}
}

// SetApproach selects the correlation family and allocates its
// implementation. It may be called exactly once.
func (m *GasPvtMultiplexer) SetApproach(approach GasApproach) error {
	if m.approach != GasApproachUnset {
		return fmt.Errorf("%w: gas approach is %s", ErrApproachAlreadySet, m.approach)
	}
	switch approach {
	case GasApproachWet:
		m.impl = NewWetGasPvt(m.numRegions, m.surface)
	case GasApproachDry:
		m.impl = NewDryGasPvt(m.numRegions)
	default:
		return fmt.Errorf("%w: gas approach %d", ErrInvalidApproach, approach)
	}
	m.approach = approach
	return nil
}

// Approach returns the selected correlation family.
func (m *GasPvtMultiplexer) Approach() GasApproach { return m.approach }

// Wet returns the concrete wet-gas implementation; it panics if a
// different approach was selected.
func (m *GasPvtMultiplexer) Wet() *WetGasPvt {
	impl, ok := m.mustImpl().(*WetGasPvt)
	if !ok {
		panic(fmt.Sprintf("blackoilpvt: gas approach is %s, not %s", m.approach, GasApproachWet))
	}
	return impl
}

// Dry returns the concrete dry-gas implementation; it panics if a
// different approach was selected.
func (m *GasPvtMultiplexer) Dry() *DryGasPvt {
	impl, ok := m.mustImpl().(*DryGasPvt)
	if !ok {
		panic(fmt.Sprintf("blackoilpvt: gas approach is %s, not %s", m.approach, GasApproachDry))
	}
	return impl
}

// InitEnd finalizes the owned implementation. The wet-gas correlation needs
// a non-owning reference to the companion oil multiplexer; see BindOilGas.
func (m *GasPvtMultiplexer) InitEnd(oilPvt *OilPvtMultiplexer) error {
	switch impl := m.mustImpl().(type) {
	case *WetGasPvt:
		return impl.InitEnd(oilPvt)
	case *DryGasPvt:
		return impl.InitEnd()
	}
	return fmt.Errorf("%w: gas approach %s", ErrInvalidApproach, m.approach)
}

func (m *GasPvtMultiplexer) mustImpl() GasPvt {
	if m.impl == nil {
		panic(ErrApproachUnset)
	}
	return m.impl
}

// Viscosity returns the dynamic viscosity [Pa s] of gas with the oil mass
// fraction xgO.
func (m *GasPvtMultiplexer) Viscosity(region int, temperature, pressure, xgO float64) float64 {
	return m.mustImpl().Viscosity(region, temperature, pressure, xgO)
}

// SaturatedViscosity returns the viscosity of oil-saturated gas.
func (m *GasPvtMultiplexer) SaturatedViscosity(region int, temperature, pressure float64) float64 {
	return m.mustImpl().SaturatedViscosity(region, temperature, pressure)
}

// FormationVolumeFactor returns Bg [-].
func (m *GasPvtMultiplexer) FormationVolumeFactor(region int, temperature, pressure, xgO float64) float64 {
	return m.mustImpl().FormationVolumeFactor(region, temperature, pressure, xgO)
}

// SaturatedFormationVolumeFactor returns Bg of oil-saturated gas.
func (m *GasPvtMultiplexer) SaturatedFormationVolumeFactor(region int, temperature, pressure float64) float64 {
	return m.mustImpl().SaturatedFormationVolumeFactor(region, temperature, pressure)
}

// Density returns the gas density [kg/m^3].
func (m *GasPvtMultiplexer) Density(region int, temperature, pressure, xgO float64) float64 {
	return m.mustImpl().Density(region, temperature, pressure, xgO)
}

// SaturatedDensity returns the density of oil-saturated gas.
func (m *GasPvtMultiplexer) SaturatedDensity(region int, temperature, pressure float64) float64 {
	return m.mustImpl().SaturatedDensity(region, temperature, pressure)
}

// OilVaporizationFactor returns Rv [m^3/m^3] of oil-saturated gas.
func (m *GasPvtMultiplexer) OilVaporizationFactor(region int, temperature, pressure float64) float64 {
	return m.mustImpl().OilVaporizationFactor(region, temperature, pressure)
}

// SaturationPressure returns the pressure at which the oil mass fraction
// xgO is exactly saturated. It only makes sense for wet gas; dry gas
// returns ErrNotApplicable.
func (m *GasPvtMultiplexer) SaturationPressure(region int, temperature, xgO float64) (float64, error) {
	return m.mustImpl().SaturationPressure(region, temperature, xgO)
}

// SaturatedOilMassFraction returns the oil mass fraction of oil-saturated gas.
func (m *GasPvtMultiplexer) SaturatedOilMassFraction(region int, temperature, pressure float64) float64 {
	return m.mustImpl().SaturatedOilMassFraction(region, temperature, pressure)
}

// SaturatedOilMoleFraction returns the oil mole fraction of oil-saturated gas.
func (m *GasPvtMultiplexer) SaturatedOilMoleFraction(region int, temperature, pressure float64) float64 {
	return m.mustImpl().SaturatedOilMoleFraction(region, temperature, pressure)
}

// FugacityCoefficientOil returns the oil component's fugacity coefficient
// in the gas phase.
func (m *GasPvtMultiplexer) FugacityCoefficientOil(region int, temperature, pressure float64) float64 {
	return m.mustImpl().FugacityCoefficientOil(region, temperature, pressure)
}

// FugacityCoefficientGas returns the gas component's fugacity coefficient
// in the gas phase.
func (m *GasPvtMultiplexer) FugacityCoefficientGas(region int, temperature, pressure float64) float64 {
	return m.mustImpl().FugacityCoefficientGas(region, temperature, pressure)
}

// FugacityCoefficientWater returns the water component's fugacity
// coefficient in the gas phase.
func (m *GasPvtMultiplexer) FugacityCoefficientWater(region int, temperature, pressure float64) float64 {
	return m.mustImpl().FugacityCoefficientWater(region, temperature, pressure)
}

// BindOilGas cross-finalizes the oil and gas phase correlations. Each side
// receives a non-owning reference to the other, needed because each phase
// expresses the fugacity of the other component relative to the
// companion's saturated-composition curve. Both multiplexers must have
// their approaches selected and all tables supplied before the bind.
func BindOilGas(oil *OilPvtMultiplexer, gas *GasPvtMultiplexer) error {
	if err := oil.InitEnd(gas); err != nil {
		return err
	}
	return gas.InitEnd(oil)
}
