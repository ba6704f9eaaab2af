package request

type BookSeatRequest struct {
	FlightID      string `validate:"required"`
	SeatNumber    string `validate:"required,min=2"`
	PassengerName string `validate:"required"`
	Username      string `validate:"required"`
}
