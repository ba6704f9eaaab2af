package request

type CreateFlightRequest struct {
	AirlineName   string `validate:"required"`
	PlaneID       string `validate:"required"`
	Capacity      int    `validate:"required,gt=0"`
	Destination   string `validate:"required"`
	DepartureTime string `validate:"required"`
	ArrivalTime   string `validate:"required"`
}

// UpdateFlightRequest carries the editable flight fields. Empty fields keep
// their current value.
type UpdateFlightRequest struct {
	AirlineName   string
	DepartureTime string
	ArrivalTime   string
	Status        string
}
