package tablestore

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/radiobeam/angular"
)

const fitsBlock = 2880

func fitsCard(key, value string) string {
	return fmt.Sprintf("%-8s= %-70s", key, value)
}

func fitsHeader(cards ...string) []byte {
	var buf bytes.Buffer
	for _, c := range cards {
		buf.WriteString(c)
	}
	buf.WriteString(fmt.Sprintf("%-80s", "END"))
	for buf.Len()%fitsBlock != 0 {
		buf.WriteByte(' ')
	}
	return buf.Bytes()
}

// beamsFITS builds a minimal FITS file whose single BINTABLE carries
// per-beam BMAJ/BMIN/BPA columns in arcsec and degrees.
func beamsFITS(majors, minors, pas []float64) []byte {
	var buf bytes.Buffer

	buf.Write(fitsHeader(
		fitsCard("SIMPLE", "T"),
		fitsCard("BITPIX", "8"),
		fitsCard("NAXIS", "0"),
	))
	buf.Write(fitsHeader(
		fitsCard("XTENSION", "'BINTABLE'"),
		fitsCard("BITPIX", "8"),
		fitsCard("NAXIS", "2"),
		fitsCard("NAXIS1", "24"),
		fitsCard("NAXIS2", fmt.Sprintf("%d", len(majors))),
		fitsCard("PCOUNT", "0"),
		fitsCard("GCOUNT", "1"),
		fitsCard("TFIELDS", "3"),
		fitsCard("TFORM1", "'1D'"),
		fitsCard("TTYPE1", "'BMAJ'"),
		fitsCard("TFORM2", "'1D'"),
		fitsCard("TTYPE2", "'BMIN'"),
		fitsCard("TFORM3", "'1D'"),
		fitsCard("TTYPE3", "'BPA'"),
	))

	var data bytes.Buffer
	for i := range majors {
		binary.Write(&data, binary.BigEndian, math.Float64bits(majors[i]))
		binary.Write(&data, binary.BigEndian, math.Float64bits(minors[i]))
		binary.Write(&data, binary.BigEndian, math.Float64bits(pas[i]))
	}
	for data.Len()%fitsBlock != 0 {
		data.WriteByte(0)
	}
	buf.Write(data.Bytes())

	return buf.Bytes()
}

func TestReadBeams(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	file := beamsFITS(
		[]float64{1.5, 2.5},
		[]float64{1.0, 2.0},
		[]float64{0.0, 45.0},
	)
	require.NoError(t, store.Put(ctx, "cube.fits", file))

	t.Run("RoundTrip", func(t *testing.T) {
		beams, err := ReadBeams(ctx, store, "cube.fits")
		require.NoError(t, err)

		require.Equal(t, 2, beams.Len())
		assert.Equal(t, angular.Arcsec, beams.Majors().Unit())
		assert.Equal(t, []float64{1.5, 2.5}, beams.Majors().Values())
		assert.Equal(t, []float64{1.0, 2.0}, beams.Minors().Values())
		assert.Equal(t, []float64{0.0, 45.0}, beams.PAs().Values())
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ReadBeams(ctx, store, "nope.fits")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("NoBeamsTable", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "bare.fits", fitsHeader(
			fitsCard("SIMPLE", "T"),
			fitsCard("BITPIX", "8"),
			fitsCard("NAXIS", "0"),
		)))

		_, err := ReadBeams(ctx, store, "bare.fits")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no beams table")
	})
}

func TestReadBeamsMulti(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "a.fits", beamsFITS(
		[]float64{1.5}, []float64{1.0}, []float64{0.0},
	)))
	require.NoError(t, store.Put(ctx, "b.fits", beamsFITS(
		[]float64{2.5}, []float64{2.0}, []float64{45.0},
	)))

	t.Run("OrderPreserved", func(t *testing.T) {
		got, err := ReadBeamsMulti(ctx, store, []string{"b.fits", "a.fits"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []float64{2.5}, got[0].Majors().Values())
		assert.Equal(t, []float64{1.5}, got[1].Majors().Values())
	})

	t.Run("FirstErrorWins", func(t *testing.T) {
		_, err := ReadBeamsMulti(ctx, store, []string{"a.fits", "nope.fits"})
		require.ErrorIs(t, err, ErrNotFound)
	})
}
