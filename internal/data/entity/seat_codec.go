package entity

import (
	"fmt"
	"strconv"
	"unicode"
)

// DecodeSeat converts a seat label like "14C" into 0-indexed grid
// coordinates. The letter indexes seat columns only, so it is shifted past
// the aisle columns of the layout. Decode is pure arithmetic: rows outside
// the grid pass through here and are rejected by the bounds check of the
// booking operations.
func DecodeSeat(label string, layout Layout) (int, int, error) {
	if len(label) < 2 {
		return 0, 0, fmt.Errorf("%w: invalid seat number %q", ErrValidation, label)
	}

	num, err := strconv.Atoi(label[:len(label)-1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid row in seat %q", ErrValidation, label)
	}
	row := num - 1

	letter := unicode.ToUpper(rune(label[len(label)-1]))
	if letter < 'A' || letter > 'Z' {
		return 0, 0, fmt.Errorf("%w: invalid column in seat %q", ErrValidation, label)
	}
	col := int(letter - 'A')

	// Shift the seat-letter index past the aisles
	switch layout.TotalColumns {
	case 5:
		if col >= 2 {
			col++
		}
	case 7:
		if col >= 3 {
			col++
		}
	case 11:
		if col >= 3 && col < 7 {
			col++
		} else if col >= 7 {
			col += 2
		}
	}

	return row, col, nil
}

// EncodeSeat is the inverse of DecodeSeat: grid coordinates back to the
// human seat label, 1-indexed row plus seat letter.
func EncodeSeat(row, col int, layout Layout) string {
	adjusted := col
	switch layout.TotalColumns {
	case 5:
		if col > 2 {
			adjusted--
		}
	case 7:
		if col > 3 {
			adjusted--
		}
	case 11:
		if col > 3 && col <= 8 {
			adjusted--
		} else if col > 8 {
			adjusted -= 2
		}
	}

	return fmt.Sprintf("%d%c", row+1, 'A'+rune(adjusted))
}
