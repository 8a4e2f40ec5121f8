package blackoilpvt

// OilApproach selects the correlation family used for the oil phase. The
// tag is recorded once by the multiplexer and never changed afterwards.
type OilApproach uint8

const (
	OilApproachUnset OilApproach = iota
	OilApproachLive
	OilApproachDead
	OilApproachConstantCompressibility
)

func (a OilApproach) String() string {
	switch a {
	case OilApproachUnset:
		return "Unset"
	case OilApproachLive:
		return "LiveOil"
	case OilApproachDead:
		return "DeadOil"
	case OilApproachConstantCompressibility:
		return "ConstantCompressibilityOil"
	}
	return "Unknown"
}

// GasApproach selects the correlation family used for the gas phase.
type GasApproach uint8

const (
	GasApproachUnset GasApproach = iota
	GasApproachWet
	GasApproachDry
)

func (a GasApproach) String() string {
	switch a {
	case GasApproachUnset:
		return "Unset"
	case GasApproachWet:
		return "WetGas"
	case GasApproachDry:
		return "DryGas"
	}
	return "Unknown"
}

// WaterApproach selects the correlation family used for the water phase.
type WaterApproach uint8

const (
	WaterApproachUnset WaterApproach = iota
	WaterApproachConstantCompressibility
)

func (a WaterApproach) String() string {
	switch a {
	case WaterApproachUnset:
		return "Unset"
	case WaterApproachConstantCompressibility:
		return "ConstantCompressibilityWater"
	}
	return "Unknown"
}
