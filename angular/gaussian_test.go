package angular

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmaToFWHM(t *testing.T) {
	assert.InDelta(t, 2.3548200450309493, SigmaToFWHM, 1e-12)
}

func TestToArea(t *testing.T) {
	t.Run("CircularOneDegree", func(t *testing.T) {
		major := NewQuantity([]float64{1}, Degree)
		minor := NewQuantity([]float64{1}, Degree)

		area, err := ToArea(major, minor)
		require.NoError(t, err)
		require.Equal(t, 1, area.Len())
		assert.Equal(t, Steradian, area.Unit())

		rad := math.Pi / 180
		want := 2 * math.Pi * rad * rad / (8 * math.Ln2)
		assert.InDelta(t, want, area.Value(0), want*1e-12)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := ToArea(NewQuantity([]float64{1, 2}, Degree), NewQuantity([]float64{1}, Degree))
		require.Error(t, err)
	})

	t.Run("NonAngleFails", func(t *testing.T) {
		_, err := ToArea(Bare(1), Bare(1))
		require.Error(t, err)
	})
}

func TestRadiusFromAreaRoundTrip(t *testing.T) {
	areas := NewQuantity([]float64{1, 0.5, 2e-9}, Steradian)

	rad, err := RadiusFromArea(areas)
	require.NoError(t, err)
	assert.Equal(t, Degree, rad.Unit())

	// A circular beam with FWHM = sigma-radius * SigmaToFWHM must
	// reproduce the input solid angle.
	fwhm := rad.Scale(SigmaToFWHM)
	back, err := ToArea(fwhm, fwhm)
	require.NoError(t, err)

	for i := 0; i < areas.Len(); i++ {
		assert.InDelta(t, areas.Value(i), back.Value(i), areas.Value(i)*1e-10)
	}
}
