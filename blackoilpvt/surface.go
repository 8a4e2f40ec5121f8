// Package blackoilpvt computes pressure-volume-temperature properties of the
// oil, gas and water phases of a black-oil reservoir fluid model. For each
// phase a multiplexer owns one correlation implementation, selected once at
// initialization; all property queries after finalization are read-only
// table lookups and are safe for concurrent use.
package blackoilpvt

// GasConstant is the universal gas constant [J/(mol K)].
const GasConstant = 8.314462618

// DefaultOilMolarMass is the molar mass assumed for the oil component
// [kg/mol], taken from the SPE-9 benchmark description. The gas molar mass
// is derived from the reference density via the ideal gas law instead.
const DefaultOilMolarMass = 175e-3

// SurfaceConditions holds the reference (surface) state the formation
// volume factors relate to. The value is threaded explicitly through the
// correlation constructors so independently configured engines can coexist
// in one process.
type SurfaceConditions struct {
	Pressure    float64 // [Pa]
	Temperature float64 // [K]
}

// DefaultSurfaceConditions returns standard surface conditions, 1 atm and
// 15.56 degrees Celsius.
func DefaultSurfaceConditions() SurfaceConditions {
	return SurfaceConditions{
		Pressure:    101325.0,
		Temperature: 273.15 + 15.56,
	}
}

// IdealGasMolarMass returns the molar mass consistent with the ideal gas
// law for a gas of the given density at these surface conditions.
func (sc SurfaceConditions) IdealGasMolarMass(rhoRef float64) float64 {
	return GasConstant * sc.Temperature * rhoRef / sc.Pressure
}
