package entity

const ReservationStatusConfirmed = "Confirmed"

// Reservation links one passenger to one booked seat on one flight. It is
// created only after the seat booking succeeded; the seat's occupied flag,
// not a reservation scan, is what enforces per-flight seat uniqueness.
type Reservation struct {
	ID            string
	PassengerName string
	FlightID      string
	AirlineName   string
	Destination   string
	SeatNumber    string
	Status        string
	Username      string
	PaymentMethod string
}
