package radiobeam

import (
	"log/slog"

	"github.com/hupe1980/radiobeam/angular"
)

// MissingUnitPolicy controls what happens when an axis or angle sequence is
// supplied without an angle-equivalent unit.
type MissingUnitPolicy uint8

const (
	// MissingUnitWarn logs a warning and assumes the default unit.
	MissingUnitWarn MissingUnitPolicy = iota
	// MissingUnitError fails construction instead of assuming a unit.
	MissingUnitError
)

type options struct {
	majors      angular.Quantity
	minors      angular.Quantity
	pas         angular.Quantity
	areas       angular.Quantity
	meta        []Meta
	defaultUnit angular.Unit
	onMissing   MissingUnitPolicy
	logger      *Logger
}

// Option configures Beams construction.
type Option func(*options)

// WithMajors supplies the FWHM major axes, one per beam.
func WithMajors(q angular.Quantity) Option {
	return func(o *options) { o.majors = q }
}

// WithMinors supplies the FWHM minor axes. If omitted, the minor axes
// default to a copy of the major axes (circular beams).
func WithMinors(q angular.Quantity) Option {
	return func(o *options) { o.minors = q }
}

// WithPAs supplies the position angles. If omitted, all position angles
// default to zero.
func WithPAs(q angular.Quantity) Option {
	return func(o *options) { o.pas = q }
}

// WithAreas supplies Gaussian solid angles from which an equivalent
// circular-beam geometry is derived. Explicitly supplied axes take priority
// over the derived values.
func WithAreas(q angular.Quantity) Option {
	return func(o *options) { o.areas = q }
}

// WithMeta supplies one metadata mapping per beam. The length must match
// the major-axis count.
func WithMeta(meta []Meta) Option {
	return func(o *options) { o.meta = meta }
}

// WithDefaultUnit sets the angular unit assumed for bare numeric axis
// values. Defaults to arcseconds.
func WithDefaultUnit(u angular.Unit) Option {
	return func(o *options) { o.defaultUnit = u }
}

// WithMissingUnitPolicy selects between warn-and-default (the default) and
// hard failure when a sequence arrives without an angle-equivalent unit.
func WithMissingUnitPolicy(p MissingUnitPolicy) Option {
	return func(o *options) { o.onMissing = p }
}

// WithLogger configures structured logging for construction warnings.
// Pass nil to keep the default stderr warning logger.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		defaultUnit: angular.Arcsec,
		onMissing:   MissingUnitWarn,
		logger:      NewTextLogger(slog.LevelWarn),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
