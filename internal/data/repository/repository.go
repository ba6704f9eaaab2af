package repository

import (
	"airline-reservation/pkg/database"

	"go.uber.org/zap"
)

// Repository groups every collaborator over the flat-file store. It is the
// explicit replacement for the process-wide flight/user/reservation lists:
// built once at startup, passed down, torn down with the process.
type Repository struct {
	Flight      FlightRepository
	Reservation ReservationRepository
	User        UserRepository
	Waitlist    WaitlistRepository
	IDs         *IDGenerator
}

func NewRepository(store database.Store, log *zap.Logger) *Repository {
	return &Repository{
		Flight:      NewFlightRepository(store, log),
		Reservation: NewReservationRepository(store, log),
		User:        NewUserRepository(store, log),
		Waitlist:    NewWaitlistRepository(store, log),
		IDs:         NewIDGenerator(store, log),
	}
}
