package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-reservation/internal/data/entity"
	"airline-reservation/internal/dto/request"
)

func TestCreateFlightAssignsSequentialIDs(t *testing.T) {
	service := newTestService(t)

	first := createTestFlight(t, service, 40)
	second := createTestFlight(t, service, 150)

	assert.Equal(t, "FL10001", first.ID)
	assert.Equal(t, "FL10002", second.ID)
	assert.Equal(t, entity.StatusOnTime, first.Status)
	assert.Equal(t, 150, second.AvailableSeats)
}

func TestCreateFlightValidation(t *testing.T) {
	service := newTestService(t)

	_, err := service.Flight.Create(&request.CreateFlightRequest{
		AirlineName:   "Cebu Pacific",
		PlaneID:       "PL-320",
		Capacity:      -10,
		Destination:   "Manila",
		DepartureTime: "08:00",
		ArrivalTime:   "10:30",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))

	_, err = service.Flight.Create(&request.CreateFlightRequest{Capacity: 40})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestDeleteFlightCascades(t *testing.T) {
	service := newTestService(t)
	flight := createTestFlight(t, service, 40)

	_, err := service.Booking.Book(&request.BookSeatRequest{
		FlightID:      flight.ID,
		SeatNumber:    "2C",
		PassengerName: "Juan Dela Cruz",
		Username:      "juan",
	}, &GCashPayment{Number: "09171234567"})
	require.NoError(t, err)
	require.NoError(t, service.Waitlist.Join(flight.ID, "maria", "Maria Clara"))

	require.NoError(t, service.Flight.Delete(flight.ID))

	assert.Empty(t, service.Flight.List())
	assert.Empty(t, service.Booking.ListByFlight(flight.ID))

	err = service.Flight.Delete(flight.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestUpdateFlightKeepsEmptyFields(t *testing.T) {
	service := newTestService(t)
	flight := createTestFlight(t, service, 40)

	updated, err := service.Flight.Update(flight.ID, &request.UpdateFlightRequest{
		Status: "Delayed",
	})
	require.NoError(t, err)

	assert.Equal(t, "Delayed", updated.Status)
	assert.Equal(t, "Cebu Pacific", updated.AirlineName)
	assert.Equal(t, "08:00", updated.DepartureTime)

	_, err = service.Flight.Update("FL99999", &request.UpdateFlightRequest{Status: "Delayed"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestFlightSearchAndLookup(t *testing.T) {
	service := newTestService(t)
	flight := createTestFlight(t, service, 40)

	got, err := service.Flight.Get(flight.ID)
	require.NoError(t, err)
	assert.Equal(t, flight.ID, got.ID)

	_, err = service.Flight.Get("FL99999")
	require.Error(t, err)

	assert.Len(t, service.Flight.SearchByDestination("Man"), 1)
	assert.Empty(t, service.Flight.SearchByDestination("Tokyo"))
	assert.Len(t, service.Flight.FindByAirline("Cebu Pacific"), 1)
	assert.Empty(t, service.Flight.FindByAirline("PAL"))
}

func TestSeatMapRendering(t *testing.T) {
	service := newTestService(t)
	flight := createTestFlight(t, service, 40)

	out, err := service.Flight.SeatMap(flight.ID)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, flight.ID))
	assert.Contains(t, out, "Legend")

	_, err = service.Flight.SeatMap("FL99999")
	require.Error(t, err)
}
