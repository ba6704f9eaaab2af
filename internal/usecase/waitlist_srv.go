package usecase

import (
	"fmt"

	"airline-reservation/internal/data/entity"
	"airline-reservation/internal/data/repository"

	"go.uber.org/zap"
)

type WaitlistService interface {
	Join(flightID, username, passengerName string) error
	Leave(flightID, username string) error
	Entries(flightID string) []entity.WaitlistEntry
	Next(flightID string) (entity.WaitlistEntry, bool)
	Promote(flightID, seatNumber string) (*entity.Reservation, error)
}

type waitlistService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWaitlistService(repo *repository.Repository, log *zap.Logger) WaitlistService {
	return &waitlistService{
		repo: repo,
		log:  log.With(zap.String("service", "waitlist")),
	}
}

func (s *waitlistService) Join(flightID, username, passengerName string) error {
	if _, found := s.repo.Flight.FindByID(flightID); !found {
		return fmt.Errorf("%w: flight not found", entity.ErrValidation)
	}

	s.repo.Waitlist.Get(flightID).Add(username, passengerName)
	if err := s.repo.Waitlist.Save(flightID); err != nil {
		return err
	}

	s.log.Info("Passenger joined waiting list",
		zap.String("flight_id", flightID),
		zap.String("username", username),
	)
	return nil
}

func (s *waitlistService) Leave(flightID, username string) error {
	if !s.repo.Waitlist.Get(flightID).Remove(username) {
		return fmt.Errorf("%w: passenger not found in waiting list", entity.ErrValidation)
	}
	return s.repo.Waitlist.Save(flightID)
}

func (s *waitlistService) Entries(flightID string) []entity.WaitlistEntry {
	return s.repo.Waitlist.Get(flightID).Entries
}

func (s *waitlistService) Next(flightID string) (entity.WaitlistEntry, bool) {
	return s.repo.Waitlist.Get(flightID).Next()
}

// Promote books the given seat for the passenger at the front of the queue
// and converts them into a confirmed reservation.
func (s *waitlistService) Promote(flightID, seatNumber string) (*entity.Reservation, error) {
	flight, found := s.repo.Flight.FindByID(flightID)
	if !found {
		return nil, fmt.Errorf("%w: flight not found", entity.ErrValidation)
	}
	if flight.IsFullyBooked() {
		return nil, fmt.Errorf("%w: flight is fully booked, cannot promote passenger", entity.ErrBooking)
	}

	next, ok := s.repo.Waitlist.Get(flightID).Next()
	if !ok {
		return nil, fmt.Errorf("%w: no passengers in the waiting list", entity.ErrValidation)
	}

	if err := flight.BookSeat(seatNumber); err != nil {
		return nil, err
	}

	reservation := &entity.Reservation{
		ID:            s.repo.IDs.Next(repository.PrefixReservation),
		PassengerName: next.PassengerName,
		FlightID:      flight.ID,
		AirlineName:   flight.AirlineName,
		Destination:   flight.Destination,
		SeatNumber:    seatNumber,
		Status:        entity.ReservationStatusConfirmed,
		Username:      next.Username,
	}

	if err := s.repo.Reservation.Create(reservation); err != nil {
		if cancelErr := flight.CancelSeat(seatNumber); cancelErr != nil {
			s.log.Error("Failed to roll back seat after promotion failure",
				zap.Error(cancelErr),
				zap.String("flight_id", flightID),
				zap.String("seat", seatNumber),
			)
		}
		return nil, err
	}

	s.repo.Waitlist.Get(flightID).Remove(next.Username)
	if err := s.repo.Waitlist.Save(flightID); err != nil {
		return nil, err
	}
	if err := s.repo.Flight.SaveAll(); err != nil {
		return nil, err
	}

	s.log.Info("Passenger promoted from waiting list",
		zap.String("flight_id", flightID),
		zap.String("username", next.Username),
		zap.String("seat", seatNumber),
	)

	return reservation, nil
}
