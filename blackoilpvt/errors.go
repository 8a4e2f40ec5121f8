package blackoilpvt

import (
	"errors"
	"fmt"
)

// Configuration errors. These indicate a misconfigured engine and are never
// retried.
var (
	// ErrApproachUnset is raised when a property is queried on a
	// multiplexer whose PVT approach has not been selected.
	ErrApproachUnset = errors.New("blackoilpvt: no PVT approach selected")

	// ErrApproachAlreadySet is returned when SetApproach is called a
	// second time; the first selection is preserved.
	ErrApproachAlreadySet = errors.New("blackoilpvt: PVT approach already selected")

	// ErrInvalidApproach is returned when an approach tag outside the
	// closed set for the phase is requested.
	ErrInvalidApproach = errors.New("blackoilpvt: invalid PVT approach")

	// ErrNotApplicable is returned by operations that only make sense
	// for a different PVT approach, e.g. saturation pressure of dead oil.
	ErrNotApplicable = errors.New("blackoilpvt: operation not applicable to the selected PVT approach")
)

// ErrNoMasterRow is the table-construction error raised when the
// undersaturated gap-fill cannot find any subsequent row with two or more
// samples to borrow from. The engine refuses to finalize in this case.
var ErrNoMasterRow = errors.New("blackoilpvt: invalid undersaturated tables: the last row must hold at least one undersaturated entry")

// NumericalIssueError reports that the Newton iteration for the
// saturation pressure did not converge within its iteration cap. It is a
// distinct category from configuration errors and carries the region and
// target composition for diagnosis.
type NumericalIssueError struct {
	Phase  string
	Region int
	Target float64
}

func (e *NumericalIssueError) Error() string {
	return fmt.Sprintf("blackoilpvt: %s saturation pressure iteration did not converge in region %d for target composition %v",
		e.Phase, e.Region, e.Target)
}
