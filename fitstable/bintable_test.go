package fitstable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinTable(t *testing.T) {
	table, err := NewBinTable([]Column{
		{Name: "BMAJ", Values: []any{1.0, 2.0}},
		{Name: "CHAN", Values: []any{int32(3), int32(4)}},
		{Name: "POL", Values: []any{"I", "Q"}},
	})
	require.NoError(t, err)

	t.Run("Shape", func(t *testing.T) {
		assert.Equal(t, 2, table.NumRows())
		assert.Equal(t, []string{"BMAJ", "CHAN", "POL"}, table.Columns())
		assert.True(t, table.HasColumn("POL"))
		assert.False(t, table.HasColumn("BPA"))
	})

	t.Run("Row", func(t *testing.T) {
		row, err := table.Row(1)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"BMAJ": 2.0, "CHAN": int32(4), "POL": "Q"}, row)

		_, err = table.Row(2)
		require.Error(t, err)
	})

	t.Run("Float64Column", func(t *testing.T) {
		got, err := table.Float64Column("CHAN")
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 4}, got)

		_, err = table.Float64Column("POL")
		require.Error(t, err)

		_, err = table.Float64Column("MISSING")
		require.ErrorIs(t, err, ErrNoSuchColumn)
	})

	t.Run("DuplicateColumn", func(t *testing.T) {
		_, err := NewBinTable([]Column{
			{Name: "BMAJ", Values: []any{1.0}},
			{Name: "BMAJ", Values: []any{2.0}},
		})
		require.Error(t, err)
	})

	t.Run("RaggedColumns", func(t *testing.T) {
		_, err := NewBinTable([]Column{
			{Name: "BMAJ", Values: []any{1.0, 2.0}},
			{Name: "CHAN", Values: []any{int32(0)}},
		})
		require.Error(t, err)
	})
}
