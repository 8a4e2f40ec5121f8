package blackoilpvt

import "fmt"

// OilPvt is the property contract every oil-phase correlation implements.
// The set of implementations is closed: LiveOilPvt, DeadOilPvt and
// ConstantCompressibilityOilPvt.
type OilPvt interface {
	NumRegions() int
	Viscosity(region int, temperature, pressure, xoG float64) float64
	SaturatedViscosity(region int, temperature, pressure float64) float64
	FormationVolumeFactor(region int, temperature, pressure, xoG float64) float64
	SaturatedFormationVolumeFactor(region int, temperature, pressure float64) float64
	Density(region int, temperature, pressure, xoG float64) float64
	SaturatedDensity(region int, temperature, pressure float64) float64
	GasDissolutionFactor(region int, temperature, pressure float64) float64
	SaturationPressure(region int, temperature, xoG float64) (float64, error)
	SaturatedGasMassFraction(region int, temperature, pressure float64) float64
	SaturatedGasMoleFraction(region int, temperature, pressure float64) float64
	FugacityCoefficientOil(region int, temperature, pressure float64) float64
	FugacityCoefficientGas(region int, temperature, pressure float64) float64
	FugacityCoefficientWater(region int, temperature, pressure float64) float64
}

// OilPvtMultiplexer owns exactly one oil-phase correlation, selected once
// at initialization, and forwards every property query to it. Querying a
// multiplexer whose approach is still unset is a configuration error and
// panics.
type OilPvtMultiplexer struct {
	numRegions int
	surface    SurfaceConditions
	approach   OilApproach
	impl       OilPvt
}

// NewOilPvtMultiplexer returns a multiplexer in the unset state.
func NewOilPvtMultiplexer(numRegions int, surface SurfaceConditions) *OilPvtMultiplexer {
	return &OilPvtMultiplexer{numRegions: numRegions, surface: surface}
}

// SetApproach selects the correlation family and allocates its
// implementation. It may be called exactly once; a second call fails with
// ErrApproachAlreadySet and preserves the first implementation.
func (m *OilPvtMultiplexer) SetApproach(approach OilApproach) error {
	if m.approach != OilApproachUnset {
		return fmt.Errorf("%w: oil approach is %s", ErrApproachAlreadySet, m.approach)
	}
	switch approach {
	case OilApproachLive:
		m.impl = NewLiveOilPvt(m.numRegions, m.surface)
	case OilApproachDead:
		m.impl = NewDeadOilPvt(m.numRegions)
	case OilApproachConstantCompressibility:
		m.impl = NewConstantCompressibilityOilPvt(m.numRegions)
	default:
		return fmt.Errorf("%w: oil approach %d", ErrInvalidApproach, approach)
	}
	m.approach = approach
	return nil
}

// Approach returns the selected correlation family (only determined at
// runtime).
func (m *OilPvtMultiplexer) Approach() OilApproach { return m.approach }

// Live returns the concrete live-oil implementation; it panics if a
// different approach was selected.
func (m *OilPvtMultiplexer) Live() *LiveOilPvt {
	impl, ok := m.mustImpl().(*LiveOilPvt)
	if !ok {
		panic(fmt.Sprintf("blackoilpvt: oil approach is %s, not %s", m.approach, OilApproachLive))
	}
	return impl
}

// Dead returns the concrete dead-oil implementation; it panics if a
// different approach was selected.
func (m *OilPvtMultiplexer) Dead() *DeadOilPvt {
	impl, ok := m.mustImpl().(*DeadOilPvt)
	if !ok {
		panic(fmt.Sprintf("blackoilpvt: oil approach is %s, not %s", m.approach, OilApproachDead))
	}
	return impl
}

// ConstantCompressibility returns the concrete constant-compressibility
// implementation; it panics if a different approach was selected.
func (m *OilPvtMultiplexer) ConstantCompressibility() *ConstantCompressibilityOilPvt {
	impl, ok := m.mustImpl().(*ConstantCompressibilityOilPvt)
	if !ok {
		panic(fmt.Sprintf("blackoilpvt: oil approach is %s, not %s", m.approach, OilApproachConstantCompressibility))
	}
	return impl
}

// InitEnd finalizes the owned implementation. The live-oil correlation
// needs a non-owning reference to the companion gas multiplexer; see
// BindOilGas.
func (m *OilPvtMultiplexer) InitEnd(gasPvt *GasPvtMultiplexer) error {
	switch impl := m.mustImpl().(type) {
	case *LiveOilPvt:
		return impl.InitEnd(gasPvt)
	case *DeadOilPvt:
		return impl.InitEnd()
	case *ConstantCompressibilityOilPvt:
		return impl.InitEnd()
	}
	return fmt.Errorf("%w: oil approach %s", ErrInvalidApproach, m.approach)
}

func (m *OilPvtMultiplexer) mustImpl() OilPvt {
	if m.impl == nil {
		panic(ErrApproachUnset)
	}
	return m.impl
}

// NumRegions returns the number of PVT regions.
func (m *OilPvtMultiplexer) NumRegions() int {
	return m.mustImpl().NumRegions()
}

// Viscosity returns the dynamic viscosity [Pa s] of oil with the gas mass
// fraction xoG.
func (m *OilPvtMultiplexer) Viscosity(region int, temperature, pressure, xoG float64) float64 {
	return m.mustImpl().Viscosity(region, temperature, pressure, xoG)
}

// SaturatedViscosity returns the viscosity of gas-saturated oil.
func (m *OilPvtMultiplexer) SaturatedViscosity(region int, temperature, pressure float64) float64 {
	return m.mustImpl().SaturatedViscosity(region, temperature, pressure)
}

// FormationVolumeFactor returns Bo [-].
func (m *OilPvtMultiplexer) FormationVolumeFactor(region int, temperature, pressure, xoG float64) float64 {
	return m.mustImpl().FormationVolumeFactor(region, temperature, pressure, xoG)
}

// SaturatedFormationVolumeFactor returns Bo of gas-saturated oil.
func (m *OilPvtMultiplexer) SaturatedFormationVolumeFactor(region int, temperature, pressure float64) float64 {
	return m.mustImpl().SaturatedFormationVolumeFactor(region, temperature, pressure)
}

// Density returns the oil density [kg/m^3].
func (m *OilPvtMultiplexer) Density(region int, temperature, pressure, xoG float64) float64 {
	return m.mustImpl().Density(region, temperature, pressure, xoG)
}

// SaturatedDensity returns the density of gas-saturated oil.
func (m *OilPvtMultiplexer) SaturatedDensity(region int, temperature, pressure float64) float64 {
	return m.mustImpl().SaturatedDensity(region, temperature, pressure)
}

// GasDissolutionFactor returns Rs [m^3/m^3] of gas-saturated oil.
func (m *OilPvtMultiplexer) GasDissolutionFactor(region int, temperature, pressure float64) float64 {
	return m.mustImpl().GasDissolutionFactor(region, temperature, pressure)
}

// SaturationPressure returns the pressure at which the gas mass fraction
// xoG is exactly saturated. It only makes sense for live oil; other
// approaches return ErrNotApplicable.
func (m *OilPvtMultiplexer) SaturationPressure(region int, temperature, xoG float64) (float64, error) {
	return m.mustImpl().SaturationPressure(region, temperature, xoG)
}

// SaturatedGasMassFraction returns the gas mass fraction of gas-saturated oil.
func (m *OilPvtMultiplexer) SaturatedGasMassFraction(region int, temperature, pressure float64) float64 {
	return m.mustImpl().SaturatedGasMassFraction(region, temperature, pressure)
}

// SaturatedGasMoleFraction returns the gas mole fraction of gas-saturated oil.
func (m *OilPvtMultiplexer) SaturatedGasMoleFraction(region int, temperature, pressure float64) float64 {
	return m.mustImpl().SaturatedGasMoleFraction(region, temperature, pressure)
}

// FugacityCoefficientOil returns the oil component's fugacity coefficient
// in the oil phase.
func (m *OilPvtMultiplexer) FugacityCoefficientOil(region int, temperature, pressure float64) float64 {
	return m.mustImpl().FugacityCoefficientOil(region, temperature, pressure)
}

// FugacityCoefficientGas returns the gas component's fugacity coefficient
// in the oil phase.
func (m *OilPvtMultiplexer) FugacityCoefficientGas(region int, temperature, pressure float64) float64 {
	return m.mustImpl().FugacityCoefficientGas(region, temperature, pressure)
}

// FugacityCoefficientWater returns the water component's fugacity
// coefficient in the oil phase.
func (m *OilPvtMultiplexer) FugacityCoefficientWater(region int, temperature, pressure float64) float64 {
	return m.mustImpl().FugacityCoefficientWater(region, temperature, pressure)
}
