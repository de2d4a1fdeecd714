package radiobeam

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/radiobeam/angular"
)

func threeBeams(t *testing.T) *Beams {
	t.Helper()
	beams, err := New(
		WithMajors(degrees(1, 2, 3)),
		WithMinors(degrees(0.5, 1, 1.5)),
		WithPAs(degrees(0, 10, 20)),
		WithMeta([]Meta{{"chan": 0}, {"chan": 1}, {"chan": 2}}),
	)
	require.NoError(t, err)
	return beams
}

func TestAt(t *testing.T) {
	beams := threeBeams(t)

	t.Run("Scalar", func(t *testing.T) {
		b, err := beams.At(1)
		require.NoError(t, err)

		assert.Equal(t, angular.Scalar{Value: 2, Unit: angular.Degree}, b.Major)
		assert.Equal(t, angular.Scalar{Value: 1, Unit: angular.Degree}, b.Minor)
		assert.Equal(t, angular.Scalar{Value: 10, Unit: angular.Degree}, b.PA)
		assert.Equal(t, 1, b.Meta["chan"])
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := beams.At(3)
		require.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = beams.At(-1)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

func TestSlice(t *testing.T) {
	beams := threeBeams(t)

	t.Run("Contiguous", func(t *testing.T) {
		got, err := beams.Slice(0, 2, 1)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 1.0, got[0].Major.Value)
		assert.Equal(t, 2.0, got[1].Major.Value)
	})

	t.Run("Strided", func(t *testing.T) {
		got, err := beams.Slice(0, 3, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 1.0, got[0].Major.Value)
		assert.Equal(t, 3.0, got[1].Major.Value)
	})

	t.Run("Reversed", func(t *testing.T) {
		got, err := beams.Slice(2, -1, -1)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, 3.0, got[0].Major.Value)
		assert.Equal(t, 1.0, got[2].Major.Value)
	})

	t.Run("ZeroStep", func(t *testing.T) {
		_, err := beams.Slice(0, 3, 0)
		require.ErrorIs(t, err, ErrInvalidIndexType)
	})
}

func TestSelect(t *testing.T) {
	beams := threeBeams(t)

	t.Run("Mask", func(t *testing.T) {
		got, err := beams.Select([]bool{true, false, true})
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, 1.0, got[0].Major.Value)
		assert.Equal(t, 0, got[0].Meta["chan"])
		assert.Equal(t, 3.0, got[1].Major.Value)
		assert.Equal(t, 2, got[1].Meta["chan"])
	})

	t.Run("MaskLengthMismatch", func(t *testing.T) {
		_, err := beams.Select([]bool{true, false})
		var lm *ErrLengthMismatch
		require.ErrorAs(t, err, &lm)
		assert.Equal(t, "mask", lm.Field)
	})

	t.Run("AllFalse", func(t *testing.T) {
		got, err := beams.Select([]bool{false, false, false})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSelectBitmap(t *testing.T) {
	beams := threeBeams(t)

	bm := roaring.BitmapOf(0, 2, 9)
	got := beams.SelectBitmap(bm)

	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0].Major.Value)
	assert.Equal(t, 3.0, got[1].Major.Value)
}

func TestIndex(t *testing.T) {
	beams := threeBeams(t)

	t.Run("Int", func(t *testing.T) {
		got, err := beams.Index(1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2.0, got[0].Major.Value)
	})

	t.Run("Range", func(t *testing.T) {
		got, err := beams.Index(Range{Start: 1, Stop: 3, Step: 1})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("BoolMask", func(t *testing.T) {
		got, err := beams.Index([]bool{false, true, false})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2.0, got[0].Major.Value)
	})

	t.Run("NonBoolMaskRejected", func(t *testing.T) {
		_, err := beams.Index([]int{0, 2})
		require.ErrorIs(t, err, ErrNonBoolMask)

		_, err = beams.Index([]float64{1, 0, 1})
		require.ErrorIs(t, err, ErrNonBoolMask)
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, err := beams.Index("first")
		require.ErrorIs(t, err, ErrInvalidIndexType)
	})
}

func TestSelectFiniteOnly(t *testing.T) {
	beams, err := New(
		WithMajors(degrees(1, 0, 3)),
		WithPAs(degrees(0, 0, 0)),
	)
	require.NoError(t, err)

	got := beams.SelectBitmap(beams.Finite())
	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0].Major.Value)
	assert.Equal(t, 3.0, got[1].Major.Value)
}
