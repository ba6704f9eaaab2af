package entity

// Layout is one cabin configuration: seats per side, total grid columns
// (aisles included) and the aisle column positions. It is derived from
// capacity and never persisted; reloading a flight recomputes it.
type Layout struct {
	SeatsPerRow  int
	TotalColumns int
	Aisles       []int
}

// ComputeLayout picks the cabin configuration for a capacity.
// Small planes fly 2-2, medium 3-3, large 3-4-3. Every positive capacity
// maps to exactly one tier; the Flight constructor rejects the rest.
func ComputeLayout(capacity int) Layout {
	switch {
	case capacity < 60:
		return Layout{SeatsPerRow: 2, TotalColumns: 5, Aisles: []int{2}}
	case capacity < 150:
		return Layout{SeatsPerRow: 3, TotalColumns: 7, Aisles: []int{3}}
	default:
		return Layout{SeatsPerRow: 5, TotalColumns: 11, Aisles: []int{3, 8}}
	}
}

func (l Layout) IsAisle(col int) bool {
	for _, a := range l.Aisles {
		if col == a {
			return true
		}
	}
	return false
}

// SeatColumns is the number of real seat columns in a row.
func (l Layout) SeatColumns() int {
	return l.TotalColumns - len(l.Aisles)
}
