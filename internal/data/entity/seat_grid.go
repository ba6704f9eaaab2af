package entity

import (
	"fmt"
	"strings"
)

// SeatGrid owns the occupancy matrix for one flight. A cell is true when it
// is occupied, an aisle, or not part of the plane at all; only false cells
// are bookable seats. Dimensions are fixed at construction and change only
// through a full re-layout on capacity change.
type SeatGrid struct {
	layout Layout
	cells  [][]bool
}

// NewSeatGrid builds the grid for a capacity. Row count starts from
// capacity over columns-minus-one; for the two-aisle
// tier that division under-counts (each row loses two cells to aisles, not
// one), so rows are appended until every seat has a cell. A final correction
// pass marks any excess cells unavailable from the last row backward, so the
// available count always equals capacity exactly.
func NewSeatGrid(capacity int) *SeatGrid {
	layout := ComputeLayout(capacity)

	seatsPerFullRow := layout.TotalColumns - 1
	rows := capacity / seatsPerFullRow
	if capacity%seatsPerFullRow != 0 {
		rows++
	}

	g := &SeatGrid{layout: layout}
	remaining := capacity
	for i := 0; i < rows; i++ {
		remaining = g.appendRow(remaining)
	}
	for remaining > 0 {
		remaining = g.appendRow(remaining)
	}

	// Excess correction: walk backward from the last row, last column,
	// skipping aisles, until the count matches capacity.
	excess := g.AvailableCount() - capacity
	for i := len(g.cells) - 1; i >= 0 && excess > 0; i-- {
		for j := layout.TotalColumns - 1; j >= 0 && excess > 0; j-- {
			if layout.IsAisle(j) {
				continue
			}
			if !g.cells[i][j] {
				g.cells[i][j] = true
				excess--
			}
		}
	}

	return g
}

// appendRow adds one row, seating up to remaining passengers left to right
// past the aisles. Cells beyond the remaining count exist in the grid shape
// but are not real seats.
func (g *SeatGrid) appendRow(remaining int) int {
	row := make([]bool, g.layout.TotalColumns)
	for col := 0; col < g.layout.TotalColumns; col++ {
		if g.layout.IsAisle(col) {
			row[col] = true
			continue
		}
		if remaining > 0 {
			remaining--
		} else {
			row[col] = true
		}
	}
	g.cells = append(g.cells, row)
	return remaining
}

// RestoreSeatGrid rehydrates a grid from the persisted occupancy matrix.
// The layout is recomputed from capacity and both matrix dimensions are
// cross-checked against it, never derived from the data; a truncated or
// padded matrix errors instead of silently shrinking the cabin.
func RestoreSeatGrid(capacity int, cells [][]bool) (*SeatGrid, error) {
	layout := ComputeLayout(capacity)

	if len(cells) == 0 {
		return nil, fmt.Errorf("empty seat matrix")
	}
	for i, row := range cells {
		if len(row) != layout.TotalColumns {
			return nil, fmt.Errorf("seat matrix row %d has %d columns, layout wants %d",
				i+1, len(row), layout.TotalColumns)
		}
	}

	rows := capacity / layout.SeatColumns()
	if capacity%layout.SeatColumns() != 0 {
		rows++
	}
	if len(cells) != rows {
		return nil, fmt.Errorf("seat matrix has %d rows, layout wants %d", len(cells), rows)
	}

	return &SeatGrid{layout: layout, cells: cells}, nil
}

func (g *SeatGrid) Layout() Layout {
	return g.layout
}

func (g *SeatGrid) RowCount() int {
	return len(g.cells)
}

// Cells returns a copy of the occupancy matrix for persistence.
func (g *SeatGrid) Cells() [][]bool {
	out := make([][]bool, len(g.cells))
	for i, row := range g.cells {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// AvailableCount is the number of unoccupied real seats.
func (g *SeatGrid) AvailableCount() int {
	count := 0
	for _, row := range g.cells {
		for j, occupied := range row {
			if g.layout.IsAisle(j) {
				continue
			}
			if !occupied {
				count++
			}
		}
	}
	return count
}

// checkCell runs the bounds and aisle checks shared by every seat
// operation. Errors here happen before any cell write.
func (g *SeatGrid) checkCell(row, col int) error {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= g.layout.TotalColumns {
		return fmt.Errorf("%w: seat %s out of range", ErrValidation, EncodeSeat(row, col, g.layout))
	}
	if g.layout.IsAisle(col) {
		return fmt.Errorf("%w: cannot book an aisle", ErrValidation)
	}
	return nil
}

// IsSeatAvailable reports whether the labelled seat is free.
func (g *SeatGrid) IsSeatAvailable(label string) (bool, error) {
	row, col, err := DecodeSeat(label, g.layout)
	if err != nil {
		return false, err
	}
	if err := g.checkCell(row, col); err != nil {
		return false, err
	}
	return !g.cells[row][col], nil
}

// Book transitions the seat from available to occupied.
func (g *SeatGrid) Book(label string) error {
	available, err := g.IsSeatAvailable(label)
	if err != nil {
		return err
	}
	if !available {
		return fmt.Errorf("%w: seat %s is not available", ErrBooking, label)
	}

	row, col, _ := DecodeSeat(label, g.layout)
	g.cells[row][col] = true
	return nil
}

// Cancel transitions the seat from occupied back to available.
func (g *SeatGrid) Cancel(label string) error {
	row, col, err := DecodeSeat(label, g.layout)
	if err != nil {
		return err
	}
	if err := g.checkCell(row, col); err != nil {
		return err
	}
	if !g.cells[row][col] {
		return fmt.Errorf("%w: seat %s is already available", ErrBooking, label)
	}

	g.cells[row][col] = false
	return nil
}

// FirstAvailable scans rows top to bottom, columns left to right, skipping
// aisles, and returns the label of the first free seat.
func (g *SeatGrid) FirstAvailable() (string, bool) {
	for i, row := range g.cells {
		for j, occupied := range row {
			if g.layout.IsAisle(j) {
				continue
			}
			if !occupied {
				return EncodeSeat(i, j, g.layout), true
			}
		}
	}
	return "", false
}

// Render draws the seat map: "O" available, "X" occupied or not a seat,
// "|" aisle, with seat-letter headers and 1-indexed row numbers.
func (g *SeatGrid) Render() string {
	var b strings.Builder

	b.WriteString("    ")
	letter := 'A'
	for j := 0; j < g.layout.TotalColumns; j++ {
		if g.layout.IsAisle(j) {
			b.WriteString("    ")
			continue
		}
		fmt.Fprintf(&b, "%c   ", letter)
		letter++
	}
	b.WriteString("\n")

	for i, row := range g.cells {
		fmt.Fprintf(&b, "%2d  ", i+1)
		for j, occupied := range row {
			switch {
			case g.layout.IsAisle(j):
				b.WriteString("|   ")
			case occupied:
				b.WriteString("X   ")
			default:
				b.WriteString("O   ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\nLegend: O - Available, X - Occupied, | - Aisle\n")
	return b.String()
}
