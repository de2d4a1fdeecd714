package radiobeam

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/radiobeam/angular"
)

// Beams is an ordered, fixed-length collection of elliptical Gaussian
// beams, stored column-wise. It behaves as a solid-angle quantity of length
// N through Areas while carrying the per-beam shape parameters and
// metadata.
//
// All geometric columns are set at construction and never mutated; only the
// metadata can be replaced afterwards, through SetMeta.
type Beams struct {
	majors angular.Quantity
	minors angular.Quantity
	pas    angular.Quantity
	areas  angular.Quantity
	meta   []Meta

	defaultUnit angular.Unit
}

// New constructs a beam collection from any combination of major axes,
// minor axes, position angles and solid angles.
//
// When solid angles are supplied, an equivalent circular-beam geometry is
// derived from them; explicitly supplied columns take priority over the
// derived values. Axis sequences without an angle-equivalent unit are
// assumed to be in the default unit under the warn policy, or rejected
// under MissingUnitError. Length mismatches between columns always fail.
//
// Calling New with no inputs yields a valid empty collection.
func New(opts ...Option) (*Beams, error) {
	o := applyOptions(opts)

	majors := o.majors
	minors := o.minors
	pas := o.pas

	// A solid-angle sequence is a fallback: it fills only the columns the
	// caller did not supply.
	if !o.areas.IsEmpty() {
		areas, err := coerceSolidAngle(&o, "areas", o.areas)
		if err != nil {
			return nil, err
		}
		rad, err := angular.RadiusFromArea(areas)
		if err != nil {
			return nil, err
		}
		fwhm := rad.Scale(angular.SigmaToFWHM)
		if majors.IsEmpty() {
			majors = fwhm
		}
		if minors.IsEmpty() {
			minors = fwhm.Copy()
		}
		if pas.IsEmpty() {
			pas = angular.ZerosLike(areas, angular.Degree)
		}
	}

	var err error
	if !majors.IsEmpty() {
		if majors, err = coerceAngle(&o, "majors", majors); err != nil {
			return nil, err
		}
	}
	if !minors.IsEmpty() {
		if minors, err = coerceAngle(&o, "minors", minors); err != nil {
			return nil, err
		}
	}

	if !pas.IsEmpty() {
		if pas.Len() != majors.Len() {
			return nil, &ErrLengthMismatch{Field: "pas", Want: majors.Len(), Got: pas.Len()}
		}
		if pas, err = coerceAngle(&o, "pas", pas); err != nil {
			return nil, err
		}
	} else {
		pas = angular.ZerosLike(majors, angular.Degree)
	}

	if minors.IsEmpty() {
		minors = majors.Copy()
	} else if minors.Len() != majors.Len() {
		return nil, &ErrLengthMismatch{Field: "minors", Want: majors.Len(), Got: minors.Len()}
	}

	areas, err := angular.ToArea(majors, minors)
	if err != nil {
		return nil, err
	}

	b := &Beams{
		majors:      majors,
		minors:      minors,
		pas:         pas,
		areas:       areas,
		defaultUnit: o.defaultUnit,
	}

	if o.meta == nil {
		b.meta = make([]Meta, b.Len())
		for i := range b.meta {
			b.meta[i] = Meta{}
		}
	} else if err := b.SetMeta(o.meta); err != nil {
		return nil, err
	}

	return b, nil
}

// coerceAngle keeps angle-equivalent sequences as-is and attaches the
// default unit to everything else, warning or failing per policy.
func coerceAngle(o *options, field string, q angular.Quantity) (angular.Quantity, error) {
	if q.Unit().IsAngle() {
		return q, nil
	}
	if o.onMissing == MissingUnitError {
		return angular.Quantity{}, fmt.Errorf("%s: %w", field, ErrMissingUnit)
	}
	o.logger.LogAssumedUnit(field, o.defaultUnit.String())
	return q.WithUnit(o.defaultUnit), nil
}

// coerceSolidAngle is the solid-angle counterpart; bare values are assumed
// to be in steradian.
func coerceSolidAngle(o *options, field string, q angular.Quantity) (angular.Quantity, error) {
	if q.Unit().IsSolidAngle() {
		return q, nil
	}
	if o.onMissing == MissingUnitError {
		return angular.Quantity{}, fmt.Errorf("%s: %w", field, ErrMissingUnit)
	}
	o.logger.LogAssumedUnit(field, angular.Steradian.String())
	return q.WithUnit(angular.Steradian), nil
}

// Len returns the number of beams. The major-axis count is the canonical
// collection length.
func (b *Beams) Len() int { return b.majors.Len() }

// Majors returns the FWHM major axes.
func (b *Beams) Majors() angular.Quantity { return b.majors }

// Minors returns the FWHM minor axes.
func (b *Beams) Minors() angular.Quantity { return b.minors }

// PAs returns the position angles.
func (b *Beams) PAs() angular.Quantity { return b.pas }

// Areas returns the Gaussian solid angle of each beam in steradian. This is
// the numeric quantity the collection represents.
func (b *Beams) Areas() angular.Quantity { return b.areas }

// DefaultUnit returns the unit assumed for bare numeric axis values.
func (b *Beams) DefaultUnit() angular.Unit { return b.defaultUnit }

// Meta returns the per-beam metadata sequence.
func (b *Beams) Meta() []Meta { return b.meta }

// SetMeta replaces the per-beam metadata. The new sequence must match the
// collection length; on mismatch the previous metadata is left unchanged.
// This is the only mutation path after construction.
func (b *Beams) SetMeta(meta []Meta) error {
	if len(meta) != b.Len() {
		return &ErrLengthMismatch{Field: "meta", Want: b.Len(), Got: len(meta)}
	}
	b.meta = meta
	return nil
}

// IsFinite reports, per beam, whether the beam is geometrically usable:
// both axes strictly positive and major, minor and position angle all
// finite.
func (b *Beams) IsFinite() []bool {
	out := make([]bool, b.Len())
	for i := range out {
		out[i] = b.majors.At(i).Value > 0 && b.minors.At(i).Value > 0 &&
			b.majors.At(i).IsFinite() && b.minors.At(i).IsFinite() && b.pas.At(i).IsFinite()
	}
	return out
}

// Finite returns the positions of all finite beams as a bitmap, ready for
// SelectBitmap.
func (b *Beams) Finite() *roaring.Bitmap {
	bm := roaring.New()
	for i, ok := range b.IsFinite() {
		if ok {
			bm.Add(uint32(i))
		}
	}
	return bm
}
