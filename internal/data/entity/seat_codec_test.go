package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSeatShiftsPastAisles(t *testing.T) {
	small := ComputeLayout(40)
	medium := ComputeLayout(100)
	large := ComputeLayout(300)

	tests := []struct {
		label   string
		layout  Layout
		wantRow int
		wantCol int
	}{
		{"1A", small, 0, 0},
		{"1B", small, 0, 1},
		{"1C", small, 0, 3},
		{"1D", small, 0, 4},
		{"5C", medium, 4, 2},
		{"5D", medium, 4, 4},
		{"12a", medium, 11, 0},
		{"1C", large, 0, 2},
		{"1D", large, 0, 4},
		{"1G", large, 0, 7},
		{"1H", large, 0, 9},
		{"1I", large, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			row, col, err := DecodeSeat(tt.label, tt.layout)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestDecodeSeatRejectsMalformedLabels(t *testing.T) {
	layout := ComputeLayout(100)

	for _, label := range []string{"", "A", "7", "AA", "1-", "x9"} {
		t.Run("label "+label, func(t *testing.T) {
			_, _, err := DecodeSeat(label, layout)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

// Every seat cell must encode to a label that decodes back to the same
// coordinates, across all three cabin configurations.
func TestSeatCodecRoundTrip(t *testing.T) {
	for _, capacity := range []int{40, 100, 300} {
		grid := NewSeatGrid(capacity)
		layout := grid.Layout()

		for row := 0; row < grid.RowCount(); row++ {
			for col := 0; col < layout.TotalColumns; col++ {
				if layout.IsAisle(col) {
					continue
				}
				label := EncodeSeat(row, col, layout)
				gotRow, gotCol, err := DecodeSeat(label, layout)
				require.NoError(t, err, "label %s", label)
				assert.Equal(t, row, gotRow, "label %s", label)
				assert.Equal(t, col, gotCol, "label %s", label)
			}
		}
	}
}
