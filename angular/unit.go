package angular

import "math"

// Kind classifies the physical dimension of a Unit.
type Kind uint8

const (
	// KindNone marks a bare number with no physical dimension attached.
	KindNone Kind = iota
	// KindAngle is a plane angle.
	KindAngle
	// KindSolidAngle is a solid angle.
	KindSolidAngle
)

// Unit is an angular or solid-angle unit.
//
// Units of the same Kind are mutually convertible; converting across kinds
// fails. The zero value is Dimensionless.
type Unit struct {
	name   string
	kind   Kind
	factor float64 // multiplier to the base unit (rad for angles, sr for solid angles)
}

var (
	// Dimensionless marks raw numeric values that carry no unit.
	Dimensionless = Unit{}

	// Radian is the base plane-angle unit.
	Radian = Unit{name: "rad", kind: KindAngle, factor: 1}
	// Degree is 1/360 of a full turn.
	Degree = Unit{name: "deg", kind: KindAngle, factor: math.Pi / 180}
	// Arcmin is 1/60 degree.
	Arcmin = Unit{name: "arcmin", kind: KindAngle, factor: math.Pi / 180 / 60}
	// Arcsec is 1/3600 degree, the conventional unit of beam axes in FITS headers.
	Arcsec = Unit{name: "arcsec", kind: KindAngle, factor: math.Pi / 180 / 3600}

	// Steradian is the base solid-angle unit.
	Steradian = Unit{name: "sr", kind: KindSolidAngle, factor: 1}
	// SquareDegree is the solid angle of a 1x1 degree patch.
	SquareDegree = Unit{name: "deg2", kind: KindSolidAngle, factor: (math.Pi / 180) * (math.Pi / 180)}
	// SquareArcsec is the solid angle of a 1x1 arcsecond patch.
	SquareArcsec = Unit{name: "arcsec2", kind: KindSolidAngle, factor: (math.Pi / 180 / 3600) * (math.Pi / 180 / 3600)}
)

// String returns the unit symbol. Dimensionless renders as the empty string.
func (u Unit) String() string { return u.name }

// Kind returns the physical dimension of the unit.
func (u Unit) Kind() Kind { return u.kind }

// IsAngle reports whether the unit is a plane angle.
func (u Unit) IsAngle() bool { return u.kind == KindAngle }

// IsSolidAngle reports whether the unit is a solid angle.
func (u Unit) IsSolidAngle() bool { return u.kind == KindSolidAngle }

// IsDimensionless reports whether the unit carries no physical dimension.
func (u Unit) IsDimensionless() bool { return u.kind == KindNone }

// IsEquivalent reports whether values in u can be converted to v.
func (u Unit) IsEquivalent(v Unit) bool { return u.kind == v.kind }

// convert rescales a value from one unit to another of the same kind.
// The caller is responsible for checking equivalence first.
func convert(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	return v * from.factor / to.factor
}
