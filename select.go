package radiobeam

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Range is a positional sub-range for Slice and Index, with Python-style
// half-open semantics: Start inclusive, Stop exclusive, Step stride.
type Range struct {
	Start int
	Stop  int
	Step  int
}

// At extracts the i-th beam.
func (b *Beams) At(i int) (Beam, error) {
	if i < 0 || i >= b.Len() {
		return Beam{}, ErrIndexOutOfRange
	}
	return Beam{
		Major: b.majors.At(i),
		Minor: b.minors.At(i),
		PA:    b.pas.At(i),
		Meta:  b.meta[i],
	}, nil
}

// Slice extracts the beams in [start, stop) with the given stride,
// preserving order. A negative step walks backwards, start exclusive of
// stop as in ordinary slicing. Both bounds must lie within
// [0, Len()] and step must be non-zero.
func (b *Beams) Slice(start, stop, step int) ([]Beam, error) {
	if step == 0 {
		return nil, ErrInvalidIndexType
	}
	if start < 0 || stop < -1 || stop > b.Len() {
		return nil, ErrIndexOutOfRange
	}
	if (step > 0 && start > b.Len()) || (step < 0 && start >= b.Len()) {
		return nil, ErrIndexOutOfRange
	}
	var out []Beam
	if step > 0 {
		for i := start; i < stop; i += step {
			beam, err := b.At(i)
			if err != nil {
				return nil, err
			}
			out = append(out, beam)
		}
	} else {
		for i := start; i > stop; i += step {
			beam, err := b.At(i)
			if err != nil {
				return nil, err
			}
			out = append(out, beam)
		}
	}
	return out, nil
}

// Select extracts the beams at every true position of mask, in original
// order. The mask length must equal the collection length; a mismatch is an
// error rather than a silent truncation.
func (b *Beams) Select(mask []bool) ([]Beam, error) {
	if len(mask) != b.Len() {
		return nil, &ErrLengthMismatch{Field: "mask", Want: b.Len(), Got: len(mask)}
	}
	var out []Beam
	for i, keep := range mask {
		if !keep {
			continue
		}
		beam, err := b.At(i)
		if err != nil {
			return nil, err
		}
		out = append(out, beam)
	}
	return out, nil
}

// SelectBitmap extracts the beams at the positions contained in bm, in
// ascending order. Positions beyond the collection are ignored.
func (b *Beams) SelectBitmap(bm *roaring.Bitmap) []Beam {
	var out []Beam
	it := bm.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= b.Len() {
			break
		}
		beam, err := b.At(i)
		if err != nil {
			continue
		}
		out = append(out, beam)
	}
	return out
}

// Index is the dynamic selector: it dispatches an int to At, a Range to
// Slice, a []bool to Select and a *roaring.Bitmap to SelectBitmap.
// Numeric slices are rejected with ErrNonBoolMask, everything else with
// ErrInvalidIndexType.
func (b *Beams) Index(view any) ([]Beam, error) {
	switch v := view.(type) {
	case int:
		beam, err := b.At(v)
		if err != nil {
			return nil, err
		}
		return []Beam{beam}, nil
	case Range:
		return b.Slice(v.Start, v.Stop, v.Step)
	case []bool:
		return b.Select(v)
	case *roaring.Bitmap:
		return b.SelectBitmap(v), nil
	case []int, []int8, []int16, []int32, []int64,
		[]uint, []uint8, []uint16, []uint32, []uint64,
		[]float32, []float64:
		return nil, ErrNonBoolMask
	default:
		return nil, ErrInvalidIndexType
	}
}
