package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"airline-reservation/internal/data/entity"
	"airline-reservation/internal/data/repository"
	"airline-reservation/internal/dto/request"
	"airline-reservation/pkg/database"
	"airline-reservation/pkg/utils"
)

// newTestService wires the full service stack over a throwaway data
// directory. Bcrypt runs at minimum cost to keep the auth tests fast.
func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := database.InitStore(utils.StoreConfig{DataDir: t.TempDir()})
	require.NoError(t, err)

	log := zap.NewNop()
	repo := repository.NewRepository(store, log)
	config := &utils.Config{}
	config.Auth.BcryptCost = 4

	return NewService(repo, config, log)
}

func createTestFlight(t *testing.T, service *Service, capacity int) *entity.Flight {
	t.Helper()
	flight, err := service.Flight.Create(&request.CreateFlightRequest{
		AirlineName:   "Cebu Pacific",
		PlaneID:       "PL-320",
		Capacity:      capacity,
		Destination:   "Manila",
		DepartureTime: "08:00",
		ArrivalTime:   "10:30",
	})
	require.NoError(t, err)
	return flight
}
