// Package deck turns a YAML description of a black-oil fluid deck -- raw
// per-region numeric table columns, no keyword syntax -- into fully
// initialized PVT multiplexers. Which correlation family answers the
// queries of a phase is decided here, once, from which tables the deck
// carries.
package deck

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/joakim-hove/opm-material/blackoilpvt"
)

// DensityRecord holds the surface densities of one PVT region [kg/m^3].
type DensityRecord struct {
	Oil   float64 `json:"Oil"`
	Water float64 `json:"Water"`
	Gas   float64 `json:"Gas"`
}

// Sample is one entry of an undersaturated branch. X is the inner-axis
// position: the vaporized oil ratio Rv for gas rows, the pressure for oil
// rows.
type Sample struct {
	X  float64 `json:"X"`
	B  float64 `json:"B"`
	Mu float64 `json:"Mu"`
}

// Row is one outer-axis row of a PVTG or PVTO table: the outer position
// (gas pressure for PVTG, dissolution factor Rs for PVTO) plus its
// undersaturated branch, saturated point first.
type Row struct {
	X       float64  `json:"X"`
	Samples []Sample `json:"Samples"`
}

// PvdRow is one sample of a dead-oil (PVDO) or dry-gas (PVDG) table.
type PvdRow struct {
	Pressure float64 `json:"Pressure"`
	B        float64 `json:"B"`
	Mu       float64 `json:"Mu"`
}

// RefStateRecord holds the per-region reference state of a
// constant-compressibility fluid (PVCDO, PVTW).
type RefStateRecord struct {
	Pressure        float64 `json:"Pressure"`
	B               float64 `json:"B"`
	Compressibility float64 `json:"Compressibility"`
	Mu              float64 `json:"Mu"`
	Viscosibility   float64 `json:"Viscosibility"`
}

// Surface optionally overrides the reference surface conditions.
type Surface struct {
	Pressure    float64 `json:"Pressure"`
	Temperature float64 `json:"Temperature"`
}

// Deck is the YAML schema of a fluid deck. All per-region slices must have
// one entry per region; the number of regions is the length of Density.
type Deck struct {
	Title   string   `json:"Title,omitempty"`
	Surface *Surface `json:"Surface,omitempty"`

	// DisGas/VapOil mirror the DISGAS and VAPOIL deck switches: they
	// declare that the deck intends gas to dissolve in oil and oil to
	// vaporize into gas, respectively. Build rejects decks where the
	// switches and the tables present disagree.
	DisGas bool `json:"DISGAS,omitempty"`
	VapOil bool `json:"VAPOIL,omitempty"`

	Density []DensityRecord `json:"DENSITY"`

	PVTO  [][]Row          `json:"PVTO,omitempty"`
	PVDO  [][]PvdRow       `json:"PVDO,omitempty"`
	PVCDO []RefStateRecord `json:"PVCDO,omitempty"`

	PVTG [][]Row    `json:"PVTG,omitempty"`
	PVDG [][]PvdRow `json:"PVDG,omitempty"`

	PVTW []RefStateRecord `json:"PVTW,omitempty"`
}

// Parse reads the YAML representation into the deck.
func (d *Deck) Parse(data []byte) error {
	return yaml.Unmarshal(data, d)
}

// Pvt bundles the three finalized phase multiplexers built from a deck.
type Pvt struct {
	Oil     *blackoilpvt.OilPvtMultiplexer
	Gas     *blackoilpvt.GasPvtMultiplexer
	Water   *blackoilpvt.WaterPvtMultiplexer
	Surface blackoilpvt.SurfaceConditions

	NumRegions int
}

// Build initializes and cross-binds the three phase multiplexers from the
// deck contents. The surface argument supplies the reference conditions
// unless the deck itself overrides them.
func (d *Deck) Build(surface blackoilpvt.SurfaceConditions) (*Pvt, error) {
	numRegions := len(d.Density)
	if numRegions == 0 {
		return nil, fmt.Errorf("deck: no DENSITY records, cannot determine the number of PVT regions")
	}
	if err := d.checkSwitches(); err != nil {
		return nil, err
	}
	if d.Surface != nil {
		surface = blackoilpvt.SurfaceConditions{
			Pressure:    d.Surface.Pressure,
			Temperature: d.Surface.Temperature,
		}
	}

	oil := blackoilpvt.NewOilPvtMultiplexer(numRegions, surface)
	gas := blackoilpvt.NewGasPvtMultiplexer(numRegions, surface)
	water := blackoilpvt.NewWaterPvtMultiplexer(numRegions)

	if err := d.buildOil(oil, numRegions); err != nil {
		return nil, err
	}
	if err := d.buildGas(gas, numRegions); err != nil {
		return nil, err
	}
	if err := d.buildWater(water, numRegions); err != nil {
		return nil, err
	}

	if err := blackoilpvt.BindOilGas(oil, gas); err != nil {
		return nil, err
	}
	if err := water.InitEnd(); err != nil {
		return nil, err
	}

	return &Pvt{
		Oil:        oil,
		Gas:        gas,
		Water:      water,
		Surface:    surface,
		NumRegions: numRegions,
	}, nil
}

// checkSwitches verifies that the DISGAS and VAPOIL switches agree with
// the tables the deck actually carries. A PVTO table describes dissolved
// gas and a PVTG table describes vaporized oil, so each requires -- and is
// required by -- its switch.
func (d *Deck) checkSwitches() error {
	if len(d.PVTO) > 0 && !d.DisGas {
		return fmt.Errorf("deck: PVTO tables present but DISGAS is not enabled")
	}
	if d.DisGas && len(d.PVTO) == 0 {
		return fmt.Errorf("deck: DISGAS is enabled but no PVTO tables are present")
	}
	if len(d.PVTG) > 0 && !d.VapOil {
		return fmt.Errorf("deck: PVTG tables present but VAPOIL is not enabled")
	}
	if d.VapOil && len(d.PVTG) == 0 {
		return fmt.Errorf("deck: VAPOIL is enabled but no PVTG tables are present")
	}
	return nil
}

func (d *Deck) buildOil(oil *blackoilpvt.OilPvtMultiplexer, numRegions int) error {
	switch {
	case len(d.PVCDO) > 0:
		if len(d.PVCDO) != numRegions {
			return fmt.Errorf("deck: %d PVCDO records for %d regions", len(d.PVCDO), numRegions)
		}
		if err := oil.SetApproach(blackoilpvt.OilApproachConstantCompressibility); err != nil {
			return err
		}
		impl := oil.ConstantCompressibility()
		for r, rec := range d.PVCDO {
			dens := d.Density[r]
			impl.SetReferenceDensities(r, dens.Oil, dens.Gas, dens.Water)
			impl.SetReferenceState(r, rec.Pressure, rec.B, rec.Compressibility, rec.Mu, rec.Viscosibility)
		}

	case len(d.PVDO) > 0:
		if len(d.PVDO) != numRegions {
			return fmt.Errorf("deck: %d PVDO tables for %d regions", len(d.PVDO), numRegions)
		}
		if err := oil.SetApproach(blackoilpvt.OilApproachDead); err != nil {
			return err
		}
		impl := oil.Dead()
		for r, rows := range d.PVDO {
			dens := d.Density[r]
			impl.SetReferenceDensities(r, dens.Oil, dens.Gas, dens.Water)
			ps, bs, mus := pvdColumns(rows)
			impl.SetOilFormationVolumeFactor(r, ps, bs)
			impl.SetOilViscosity(r, ps, mus)
		}

	case len(d.PVTO) > 0:
		if len(d.PVTO) != numRegions {
			return fmt.Errorf("deck: %d PVTO tables for %d regions", len(d.PVTO), numRegions)
		}
		if err := oil.SetApproach(blackoilpvt.OilApproachLive); err != nil {
			return err
		}
		impl := oil.Live()
		for r, rows := range d.PVTO {
			dens := d.Density[r]
			impl.SetReferenceDensities(r, dens.Oil, dens.Gas, dens.Water)

			// the saturated Rs(p) curve: each row's first sample
			// is measured at that row's saturation pressure
			ps := make([]float64, len(rows))
			rs := make([]float64, len(rows))
			for i, row := range rows {
				if len(row.Samples) == 0 {
					return fmt.Errorf("deck: PVTO region %d row %d holds no samples", r, i)
				}
				ps[i] = row.Samples[0].X
				rs[i] = row.X
			}
			impl.SetSaturatedGasDissolutionFactor(r, ps, rs)

			if err := impl.SetUndersaturatedTables(r, toRows(rows)); err != nil {
				return fmt.Errorf("deck: PVTO region %d: %w", r, err)
			}
		}

	default:
		return fmt.Errorf("deck: no oil PVT tables (PVTO, PVDO or PVCDO) present")
	}
	return nil
}

func (d *Deck) buildGas(gas *blackoilpvt.GasPvtMultiplexer, numRegions int) error {
	switch {
	case len(d.PVTG) > 0:
		if len(d.PVTG) != numRegions {
			return fmt.Errorf("deck: %d PVTG tables for %d regions", len(d.PVTG), numRegions)
		}
		if err := gas.SetApproach(blackoilpvt.GasApproachWet); err != nil {
			return err
		}
		impl := gas.Wet()
		for r, rows := range d.PVTG {
			dens := d.Density[r]
			impl.SetReferenceDensities(r, dens.Oil, dens.Gas, dens.Water)

			// the saturated Rv(p) curve from the rows' saturated points
			ps := make([]float64, len(rows))
			rv := make([]float64, len(rows))
			for i, row := range rows {
				if len(row.Samples) == 0 {
					return fmt.Errorf("deck: PVTG region %d row %d holds no samples", r, i)
				}
				ps[i] = row.X
				rv[i] = row.Samples[0].X
			}
			impl.SetSaturatedOilVaporizationFactor(r, ps, rv)

			if err := impl.SetUndersaturatedTables(r, toRows(rows)); err != nil {
				return fmt.Errorf("deck: PVTG region %d: %w", r, err)
			}
		}

	case len(d.PVDG) > 0:
		if len(d.PVDG) != numRegions {
			return fmt.Errorf("deck: %d PVDG tables for %d regions", len(d.PVDG), numRegions)
		}
		if err := gas.SetApproach(blackoilpvt.GasApproachDry); err != nil {
			return err
		}
		impl := gas.Dry()
		for r, rows := range d.PVDG {
			dens := d.Density[r]
			impl.SetReferenceDensities(r, dens.Oil, dens.Gas, dens.Water)
			ps, bs, mus := pvdColumns(rows)
			impl.SetGasFormationVolumeFactor(r, ps, bs)
			impl.SetGasViscosity(r, ps, mus)
		}

	default:
		return fmt.Errorf("deck: no gas PVT tables (PVTG or PVDG) present")
	}
	return nil
}

func (d *Deck) buildWater(water *blackoilpvt.WaterPvtMultiplexer, numRegions int) error {
	if len(d.PVTW) == 0 {
		return fmt.Errorf("deck: no water PVT records (PVTW) present")
	}
	if len(d.PVTW) != numRegions {
		return fmt.Errorf("deck: %d PVTW records for %d regions", len(d.PVTW), numRegions)
	}
	if err := water.SetApproach(blackoilpvt.WaterApproachConstantCompressibility); err != nil {
		return err
	}
	impl := water.ConstantCompressibility()
	for r, rec := range d.PVTW {
		dens := d.Density[r]
		impl.SetReferenceDensities(r, dens.Oil, dens.Gas, dens.Water)
		impl.SetReferenceState(r, rec.Pressure, rec.B, rec.Compressibility, rec.Mu, rec.Viscosibility)
	}
	return nil
}

func pvdColumns(rows []PvdRow) (ps, bs, mus []float64) {
	ps = make([]float64, len(rows))
	bs = make([]float64, len(rows))
	mus = make([]float64, len(rows))
	for i, row := range rows {
		ps[i] = row.Pressure
		bs[i] = row.B
		mus[i] = row.Mu
	}
	return ps, bs, mus
}

func toRows(rows []Row) []blackoilpvt.SaturatedRow {
	out := make([]blackoilpvt.SaturatedRow, len(rows))
	for i, row := range rows {
		samples := make([]blackoilpvt.UndersaturatedSample, len(row.Samples))
		for j, s := range row.Samples {
			samples[j] = blackoilpvt.UndersaturatedSample{X: s.X, B: s.B, Viscosity: s.Mu}
		}
		out[i] = blackoilpvt.SaturatedRow{X: row.X, Samples: samples}
	}
	return out
}
