package radiobeam

import (
	"fmt"

	"github.com/hupe1980/radiobeam/angular"
	"github.com/hupe1980/radiobeam/fitstable"
)

// Beam-geometry columns of a CASA beams table. Everything else in the table
// becomes per-beam metadata.
var beamColumns = map[string]struct{}{
	"BMAJ": {},
	"BMIN": {},
	"BPA":  {},
}

// FromBinTable builds a beam collection from a FITS binary table with BMAJ,
// BMIN and BPA columns, as written by CASA into image HDUs. All three
// columns are read in arcseconds; any additional column is carried into the
// per-beam metadata under its own name, row by row.
//
// The adapter is purely a translation into New and performs no validation
// of its own.
func FromBinTable(t *fitstable.BinTable, opts ...Option) (*Beams, error) {
	majors, err := t.Float64Column("BMAJ")
	if err != nil {
		return nil, fmt.Errorf("beams table: %w", err)
	}
	minors, err := t.Float64Column("BMIN")
	if err != nil {
		return nil, fmt.Errorf("beams table: %w", err)
	}
	pas, err := t.Float64Column("BPA")
	if err != nil {
		return nil, fmt.Errorf("beams table: %w", err)
	}

	meta := make([]Meta, t.NumRows())
	for row := range meta {
		m := Meta{}
		for _, name := range t.Columns() {
			if _, ok := beamColumns[name]; ok {
				continue
			}
			v, err := t.Value(name, row)
			if err != nil {
				return nil, fmt.Errorf("beams table: %w", err)
			}
			m[name] = v
		}
		meta[row] = m
	}

	opts = append(opts,
		WithMajors(angular.NewQuantity(majors, angular.Arcsec)),
		WithMinors(angular.NewQuantity(minors, angular.Arcsec)),
		WithPAs(angular.NewQuantity(pas, angular.Arcsec)),
		WithMeta(meta),
	)
	return New(opts...)
}
