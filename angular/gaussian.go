package angular

import (
	"fmt"
	"math"
)

// SigmaToFWHM converts a Gaussian sigma to its full width at half maximum.
var SigmaToFWHM = math.Sqrt(8 * math.Ln2)

// ToArea computes the solid angle of elliptical Gaussian beams from their
// FWHM major and minor axes:
//
//	Omega = 2*pi * major * minor / (8 ln 2)
//
// Both inputs must be angle-equivalent and of equal length. The result is in
// steradian.
func ToArea(major, minor Quantity) (Quantity, error) {
	if major.Len() != minor.Len() {
		return Quantity{}, fmt.Errorf("angular: axis lengths differ: %d != %d", major.Len(), minor.Len())
	}
	mj, err := major.To(Radian)
	if err != nil {
		return Quantity{}, err
	}
	mn, err := minor.To(Radian)
	if err != nil {
		return Quantity{}, err
	}
	out := make([]float64, mj.Len())
	for i := range out {
		out[i] = 2 * math.Pi * mj.Value(i) * mn.Value(i) / (8 * math.Ln2)
	}
	return Quantity{values: out, unit: Steradian}, nil
}

// RadiusFromArea derives the Gaussian sigma-radius of a circular beam with
// the given solid angle: sqrt(Omega / 2*pi). The area is interpreted in
// square degrees and the radius is returned in degrees, matching the FWHM
// convention of ToArea so the two round-trip.
func RadiusFromArea(areas Quantity) (Quantity, error) {
	deg2, err := areas.To(SquareDegree)
	if err != nil {
		return Quantity{}, err
	}
	out := make([]float64, deg2.Len())
	for i := range out {
		out[i] = math.Sqrt(deg2.Value(i) / (2 * math.Pi))
	}
	return Quantity{values: out, unit: Degree}, nil
}
