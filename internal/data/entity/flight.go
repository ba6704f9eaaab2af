package entity

import "fmt"

const StatusOnTime = "On Time"

// Flight is the aggregate root for seat inventory. It owns one SeatGrid,
// built from capacity at creation or reload, and keeps AvailableSeats equal
// to the grid's count of unoccupied real seats after every mutation.
type Flight struct {
	ID             string
	AirlineName    string
	PlaneID        string
	Capacity       int
	AvailableSeats int
	Destination    string
	DepartureTime  string
	ArrivalTime    string
	Status         string
	Seats          *SeatGrid
}

// NewFlight builds a flight with a fresh, fully available seat grid.
func NewFlight(id, airlineName, planeID string, capacity int, destination, departureTime, arrivalTime string) (*Flight, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be greater than zero", ErrValidation)
	}

	return &Flight{
		ID:             id,
		AirlineName:    airlineName,
		PlaneID:        planeID,
		Capacity:       capacity,
		AvailableSeats: capacity,
		Destination:    destination,
		DepartureTime:  departureTime,
		ArrivalTime:    arrivalTime,
		Status:         StatusOnTime,
		Seats:          NewSeatGrid(capacity),
	}, nil
}

// SetCapacity re-layouts the whole cabin. Existing occupancy is discarded.
func (f *Flight) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be greater than zero", ErrValidation)
	}
	f.Capacity = capacity
	f.AvailableSeats = capacity
	f.Seats = NewSeatGrid(capacity)
	return nil
}

func (f *Flight) IsSeatAvailable(seatNumber string) (bool, error) {
	return f.Seats.IsSeatAvailable(seatNumber)
}

// BookSeat occupies the seat and decrements the available count. A failed
// validation or an already occupied seat leaves the grid untouched.
func (f *Flight) BookSeat(seatNumber string) error {
	if err := f.Seats.Book(seatNumber); err != nil {
		return err
	}
	f.AvailableSeats--
	return nil
}

// CancelSeat frees the seat and increments the available count. Cancelling
// a seat that is already free fails with ErrBooking.
func (f *Flight) CancelSeat(seatNumber string) error {
	if err := f.Seats.Cancel(seatNumber); err != nil {
		return err
	}
	f.AvailableSeats++
	return nil
}

// FirstAvailableSeat suggests the first free seat in scan order, used as a
// default when promoting from the waiting list.
func (f *Flight) FirstAvailableSeat() (string, bool) {
	return f.Seats.FirstAvailable()
}

func (f *Flight) IsFullyBooked() bool {
	return f.AvailableSeats == 0
}

// RenderSeatMap returns the printable seat map with a flight header. The
// entity never writes to the terminal itself.
func (f *Flight) RenderSeatMap() string {
	header := fmt.Sprintf("\nSeat Map for Flight %s (%s):\nDestination: %s\nAvailable Seats: %d out of %d\n\n",
		f.ID, f.AirlineName, f.Destination, f.AvailableSeats, f.Capacity)
	return header + f.Seats.Render()
}
