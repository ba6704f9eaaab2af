package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"airline-reservation/internal/data/entity"
)

func newTestReservation(id, flightID, username string) *entity.Reservation {
	return &entity.Reservation{
		ID:            id,
		PassengerName: "Juan Dela Cruz",
		FlightID:      flightID,
		AirlineName:   "Cebu Pacific",
		Destination:   "Manila",
		SeatNumber:    "1A",
		Status:        entity.ReservationStatusConfirmed,
		Username:      username,
		PaymentMethod: "GCash: 0917",
	}
}

func TestReservationRepositoryCreateAndReload(t *testing.T) {
	store := newTestStore(t)
	log := zap.NewNop()

	repo := NewReservationRepository(store, log)
	require.NoError(t, repo.Create(newTestReservation("RES10001", "FL10001", "juan")))

	reloaded := NewReservationRepository(store, log)
	got, found := reloaded.FindByID("RES10001")
	require.True(t, found)
	assert.Equal(t, "FL10001", got.FlightID)
	assert.Equal(t, entity.ReservationStatusConfirmed, got.Status)
	assert.Equal(t, "GCash: 0917", got.PaymentMethod)
}

func TestReservationRepositoryToleratesMissingPaymentColumn(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append("reservations.txt", "RES10001,Juan,FL10001,Cebu Pacific,Manila,1A,Confirmed,juan"))

	repo := NewReservationRepository(store, zap.NewNop())
	got, found := repo.FindByID("RES10001")
	require.True(t, found)
	assert.Empty(t, got.PaymentMethod)
}

func TestReservationRepositoryDeleteByFlightAndUser(t *testing.T) {
	store := newTestStore(t)
	log := zap.NewNop()

	repo := NewReservationRepository(store, log)
	require.NoError(t, repo.Create(newTestReservation("RES10001", "FL10001", "juan")))
	require.NoError(t, repo.Create(newTestReservation("RES10002", "FL10001", "maria")))
	require.NoError(t, repo.Create(newTestReservation("RES10003", "FL10002", "juan")))

	require.NoError(t, repo.DeleteByFlight("FL10001"))
	assert.Empty(t, repo.FindByFlight("FL10001"))
	assert.Len(t, repo.All(), 1)

	require.NoError(t, repo.DeleteByUser("juan"))
	assert.Empty(t, repo.All())

	reloaded := NewReservationRepository(store, log)
	assert.Empty(t, reloaded.All())
	assert.False(t, store.Exists("reservations.txt"))
}
