package radiobeam

import "github.com/hupe1980/radiobeam/angular"

// Meta is the per-beam metadata mapping, carrying provenance and auxiliary
// fields (channel, polarization, ...) that are not part of the geometry.
type Meta map[string]any

// Beam is a single elliptical Gaussian beam, the reduced record produced by
// the Beams selectors. It does not retain collection behavior.
type Beam struct {
	Major angular.Scalar
	Minor angular.Scalar
	PA    angular.Scalar
	Meta  Meta
}

// Area computes the Gaussian solid angle of the beam in steradian.
func (b Beam) Area() (angular.Scalar, error) {
	major := angular.NewQuantity([]float64{b.Major.Value}, b.Major.Unit)
	minor := angular.NewQuantity([]float64{b.Minor.Value}, b.Minor.Unit)
	area, err := angular.ToArea(major, minor)
	if err != nil {
		return angular.Scalar{}, err
	}
	return area.At(0), nil
}

// IsFinite reports whether the beam is geometrically usable: both axes
// strictly positive and all three angles finite.
func (b Beam) IsFinite() bool {
	return b.Major.Value > 0 && b.Minor.Value > 0 &&
		b.Major.IsFinite() && b.Minor.IsFinite() && b.PA.IsFinite()
}
