package blackoilpvt

import "fmt"

// WaterPvt is the property contract of the water phase. Water carries no
// dissolved component, so the queries take no composition argument.
type WaterPvt interface {
	NumRegions() int
	Viscosity(region int, temperature, pressure float64) float64
	FormationVolumeFactor(region int, temperature, pressure float64) float64
	Density(region int, temperature, pressure float64) float64
	FugacityCoefficientOil(region int, temperature, pressure float64) float64
	FugacityCoefficientGas(region int, temperature, pressure float64) float64
	FugacityCoefficientWater(region int, temperature, pressure float64) float64
}

// WaterPvtMultiplexer owns exactly one water-phase correlation, selected
// once at initialization, and forwards every property query to it.
type WaterPvtMultiplexer struct {
	numRegions int
	approach   WaterApproach
	impl       WaterPvt
}

// NewWaterPvtMultiplexer returns a multiplexer in the unset state.
func NewWaterPvtMultiplexer(numRegions int) *WaterPvtMultiplexer {
	return &WaterPvtMultiplexer{numRegions: numRegions}
}

// SetApproach selects the correlation family and allocates its
// implementation. It may be called exactly once.
func (m *WaterPvtMultiplexer) SetApproach(approach WaterApproach) error {
	if m.approach != WaterApproachUnset {
		return fmt.Errorf("%w: water approach is %s", ErrApproachAlreadySet, m.approach)
	}
	switch approach {
	case WaterApproachConstantCompressibility:
		m.impl = NewConstantCompressibilityWaterPvt(m.numRegions)
	default:
		return fmt.Errorf("%w: water approach %d", ErrInvalidApproach, approach)
	}
	m.approach = approach
	return nil
}

// Approach returns the selected correlation family.
func (m *WaterPvtMultiplexer) Approach() WaterApproach { return m.approach }

// ConstantCompressibility returns the concrete implementation; it panics
// if the approach is unset.
func (m *WaterPvtMultiplexer) ConstantCompressibility() *ConstantCompressibilityWaterPvt {
	impl, ok := m.mustImpl().(*ConstantCompressibilityWaterPvt)
	if !ok {
		panic(fmt.Sprintf("blackoilpvt: water approach is %s, not %s", m.approach, WaterApproachConstantCompressibility))
	}
	return impl
}

// InitEnd finalizes the owned implementation. The water phase has no
// companion to cross-reference.
func (m *WaterPvtMultiplexer) InitEnd() error {
	switch impl := m.mustImpl().(type) {
	case *ConstantCompressibilityWaterPvt:
		return impl.InitEnd()
	}
	return fmt.Errorf("%w: water approach %s", ErrInvalidApproach, m.approach)
}

func (m *WaterPvtMultiplexer) mustImpl() WaterPvt {
	if m.impl == nil {
		panic(ErrApproachUnset)
	}
	return m.impl
}

// Viscosity returns the dynamic viscosity [Pa s] of water.
func (m *WaterPvtMultiplexer) Viscosity(region int, temperature, pressure float64) float64 {
	return m.mustImpl().Viscosity(region, temperature, pressure)
}

// FormationVolumeFactor returns Bw [-].
func (m *WaterPvtMultiplexer) FormationVolumeFactor(region int, temperature, pressure float64) float64 {
	return m.mustImpl().FormationVolumeFactor(region, temperature, pressure)
}

// Density returns the water density [kg/m^3].
func (m *WaterPvtMultiplexer) Density(region int, temperature, pressure float64) float64 {
	return m.mustImpl().Density(region, temperature, pressure)
}

// FugacityCoefficientOil returns the oil component's fugacity coefficient
// in the water phase.
func (m *WaterPvtMultiplexer) FugacityCoefficientOil(region int, temperature, pressure float64) float64 {
	return m.mustImpl().FugacityCoefficientOil(region, temperature, pressure)
}

// FugacityCoefficientGas returns the gas component's fugacity coefficient
// in the water phase.
func (m *WaterPvtMultiplexer) FugacityCoefficientGas(region int, temperature, pressure float64) float64 {
	return m.mustImpl().FugacityCoefficientGas(region, temperature, pressure)
}

// FugacityCoefficientWater returns the water component's fugacity
// coefficient in the water phase.
func (m *WaterPvtMultiplexer) FugacityCoefficientWater(region int, temperature, pressure float64) float64 {
	return m.mustImpl().FugacityCoefficientWater(region, temperature, pressure)
}
