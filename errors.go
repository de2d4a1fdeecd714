package radiobeam

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndexType is returned by Index when the view is neither an
	// integer, a Range, a boolean mask nor a position bitmap.
	ErrInvalidIndexType = errors.New("index must be an int, Range, []bool or *roaring.Bitmap")

	// ErrNonBoolMask is returned by Index when a numeric slice is used where
	// a boolean mask is required.
	ErrNonBoolMask = errors.New("array index must be a boolean mask")

	// ErrIndexOutOfRange is returned when a scalar index falls outside the
	// collection.
	ErrIndexOutOfRange = errors.New("beam index out of range")

	// ErrMissingUnit is returned under MissingUnitError policy when an axis
	// or angle field carries no angle-equivalent unit.
	ErrMissingUnit = errors.New("value has no angle-equivalent unit")
)

// ErrLengthMismatch indicates that a per-beam sequence does not match the
// collection length. Construction and SetMeta fail with this error rather
// than truncating or padding.
type ErrLengthMismatch struct {
	Field string
	Want  int
	Got   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %s has %d elements, want %d", e.Field, e.Got, e.Want)
}
