package blackoilpvt

import "fmt"

// UndersaturatedSample is one entry of the undersaturated branch of a raw
// PVT table row: the inner-axis position (vaporized/dissolved ratio for gas
// tables, pressure for oil tables), the formation volume factor and the
// viscosity measured there. Synthetic marks points produced by the gap-fill
// extension rather than by experiment.
type UndersaturatedSample struct {
	X         float64
	B         float64
	Viscosity float64
	Synthetic bool
}

// SaturatedRow couples one outer-axis sample position with its
// undersaturated branch. The first sample of a row is always the saturated
// point.
type SaturatedRow struct {
	X       float64
	Samples []UndersaturatedSample
}

// ExtendUndersaturated fills in missing undersaturated branches: every row
// holding fewer than two samples is extended by scaling the
// saturated-to-undersaturated ratios of the first subsequent row that holds
// two or more ("the master row") onto the deficient row's own saturated
// sample. This assumes the undersaturated branch has a self-similar shape
// across rows; the synthesized samples are approximations, not measured
// data, and are tagged Synthetic. If no master row exists the input is
// invalid and ErrNoMasterRow is returned.
//
// The input is not modified; running the extension on an already complete
// table set returns an identical copy.
func ExtendUndersaturated(rows []SaturatedRow) ([]SaturatedRow, error) {
	out := make([]SaturatedRow, len(rows))
	for i := range rows {
		out[i] = SaturatedRow{
			X:       rows[i].X,
			Samples: append([]UndersaturatedSample(nil), rows[i].Samples...),
		}
	}

	for i := range out {
		if len(out[i].Samples) == 0 {
			return nil, fmt.Errorf("blackoilpvt: row %d holds no saturated sample", i)
		}
		if len(out[i].Samples) > 1 {
			continue
		}

		// scan forward for the first row with measured undersaturated data
		master := -1
		for j := i + 1; j < len(rows); j++ {
			if len(rows[j].Samples) > 1 {
				master = j
				break
			}
		}
		if master < 0 {
			return nil, ErrNoMasterRow
		}

		m := rows[master].Samples
		sat := out[i].Samples[0]
		for k := 1; k < len(m); k++ {
			alphaX := m[k].X / m[0].X
			alphaB := m[k].B / m[0].B
			alphaMu := m[k].Viscosity / m[0].Viscosity
			out[i].Samples = append(out[i].Samples, UndersaturatedSample{
				X:         sat.X * alphaX,
				B:         sat.B * alphaB,
				Viscosity: sat.Viscosity * alphaMu,
				Synthetic: true,
			})
		}
	}
	return out, nil
}
