// Package radiobeam models collections of two-dimensional elliptical
// Gaussian beams, the point-spread-function descriptors used in radio
// astronomy imaging.
//
// The central type is Beams, an ordered, fixed-length set of beam geometries
// stored column-wise (major axes, minor axes, position angles, per-beam
// metadata) together with the derived Gaussian solid angle of each beam.
//
// # Quick Start
//
//	majors := angular.NewQuantity([]float64{1, 2, 3}, angular.Degree)
//	beams, _ := radiobeam.New(radiobeam.WithMajors(majors))
//
//	beams.Len()         // 3
//	beams.Areas()       // Gaussian solid angles, steradian
//	b, _ := beams.At(1) // single Beam record
//
// Minor axes default to the major axes (circular beams) and position angles
// default to zero. A collection can also be built from solid angles alone:
//
//	areas := angular.NewQuantity([]float64{1e-9}, angular.Steradian)
//	beams, _ := radiobeam.New(radiobeam.WithAreas(areas))
//
// # Selection
//
// Selection returns reduced Beam records, not a sub-collection:
//
//	one, _ := beams.At(0)
//	some, _ := beams.Slice(0, 3, 2)
//	kept, _ := beams.Select([]bool{true, false, true})
//	fin := beams.SelectBitmap(beams.Finite())
//
// # FITS beam tables
//
// CASA writes per-channel beams as a FITS binary table with BMAJ, BMIN and
// BPA columns in arcseconds. FromBinTable converts such a table into a
// Beams collection; any extra columns become per-beam metadata:
//
//	tables, _ := fitstable.ReadFile("cube_beams.fits")
//	beams, _ := radiobeam.FromBinTable(tables[0])
//
// Geometric fields are immutable after construction; only the metadata can
// be replaced, through SetMeta, which enforces the collection length.
// A Beams value is not safe for concurrent mutation; callers that share one
// across goroutines must synchronize SetMeta externally.
package radiobeam
