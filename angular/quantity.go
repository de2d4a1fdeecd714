package angular

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity is an ordered sequence of values sharing a single unit.
//
// The zero value is an empty, dimensionless quantity. Quantities are plain
// values; methods never mutate the receiver's backing slice.
type Quantity struct {
	values []float64
	unit   Unit
}

// NewQuantity attaches a unit to a sequence of values.
// The slice is copied so later mutation of the input does not leak in.
func NewQuantity(values []float64, unit Unit) Quantity {
	cp := make([]float64, len(values))
	copy(cp, values)
	return Quantity{values: cp, unit: unit}
}

// Bare wraps raw numeric values with no unit attached.
func Bare(values ...float64) Quantity {
	return NewQuantity(values, Dimensionless)
}

// Zeros returns an n-element zero-filled quantity in the given unit.
func Zeros(n int, unit Unit) Quantity {
	return Quantity{values: make([]float64, n), unit: unit}
}

// ZerosLike returns a zero-filled quantity shaped like q, in the given unit.
func ZerosLike(q Quantity, unit Unit) Quantity {
	return Zeros(q.Len(), unit)
}

// Len returns the number of elements.
func (q Quantity) Len() int { return len(q.values) }

// IsEmpty reports whether the quantity holds no elements.
func (q Quantity) IsEmpty() bool { return len(q.values) == 0 }

// Unit returns the unit shared by all elements.
func (q Quantity) Unit() Unit { return q.unit }

// Values returns a copy of the element values.
func (q Quantity) Values() []float64 {
	cp := make([]float64, len(q.values))
	copy(cp, q.values)
	return cp
}

// Value returns the i-th element value without unit conversion.
func (q Quantity) Value(i int) float64 { return q.values[i] }

// At returns the i-th element as a Scalar.
func (q Quantity) At(i int) Scalar {
	return Scalar{Value: q.values[i], Unit: q.unit}
}

// WithUnit returns a copy of q relabeled with the given unit.
// No numeric conversion is performed; this is how a default unit gets
// attached to bare values.
func (q Quantity) WithUnit(unit Unit) Quantity {
	return NewQuantity(q.values, unit)
}

// To converts the quantity to another unit of the same kind.
func (q Quantity) To(unit Unit) (Quantity, error) {
	if !q.unit.IsEquivalent(unit) {
		return Quantity{}, fmt.Errorf("angular: cannot convert %q to %q", q.unit, unit)
	}
	out := make([]float64, len(q.values))
	for i, v := range q.values {
		out[i] = convert(v, q.unit, unit)
	}
	return Quantity{values: out, unit: unit}, nil
}

// Scale returns a copy of q with every element multiplied by f.
func (q Quantity) Scale(f float64) Quantity {
	out := make([]float64, len(q.values))
	for i, v := range q.values {
		out[i] = v * f
	}
	return Quantity{values: out, unit: q.unit}
}

// Copy returns an independent copy of q.
func (q Quantity) Copy() Quantity {
	return NewQuantity(q.values, q.unit)
}

// String renders the quantity as "[v0 v1 ...] unit".
func (q Quantity) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range q.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')
	if q.unit.name != "" {
		sb.WriteByte(' ')
		sb.WriteString(q.unit.name)
	}
	return sb.String()
}

// Scalar is a single value with a unit, the element type of a Quantity.
type Scalar struct {
	Value float64
	Unit  Unit
}

// To converts the scalar to another unit of the same kind.
func (s Scalar) To(unit Unit) (Scalar, error) {
	if !s.Unit.IsEquivalent(unit) {
		return Scalar{}, fmt.Errorf("angular: cannot convert %q to %q", s.Unit, unit)
	}
	return Scalar{Value: convert(s.Value, s.Unit, unit), Unit: unit}, nil
}

// IsFinite reports whether the value is neither NaN nor infinite.
func (s Scalar) IsFinite() bool {
	return !math.IsNaN(s.Value) && !math.IsInf(s.Value, 0)
}

// String renders the scalar as "value unit".
func (s Scalar) String() string {
	v := strconv.FormatFloat(s.Value, 'g', -1, 64)
	if s.Unit.name == "" {
		return v
	}
	return v + " " + s.Unit.name
}
