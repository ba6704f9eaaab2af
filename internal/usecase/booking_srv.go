package usecase

import (
	"fmt"

	"airline-reservation/internal/data/entity"
	"airline-reservation/internal/data/repository"
	"airline-reservation/internal/dto/request"
	"airline-reservation/pkg/utils"

	"go.uber.org/zap"
)

// Flat simulator fare, no currency or tax logic.
const baseFare = 500.00

type BookingService interface {
	Book(req *request.BookSeatRequest, payment PaymentStrategy) (*entity.Reservation, error)
	Cancel(reservationID string) error
	Get(reservationID string) (*entity.Reservation, error)
	ListByUser(username string) []*entity.Reservation
	ListByFlight(flightID string) []*entity.Reservation
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// Book charges the payment and occupies the seat, then records the
// reservation. The seat is checked before payment so a taken seat never
// reaches the payment step; the grid's occupied flag is what makes a seat
// unique per flight.
func (s *bookingService) Book(req *request.BookSeatRequest, payment PaymentStrategy) (*entity.Reservation, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: invalid payment method", entity.ErrValidation)
	}

	flight, found := s.repo.Flight.FindByID(req.FlightID)
	if !found {
		return nil, fmt.Errorf("%w: flight not found", entity.ErrValidation)
	}
	if flight.IsFullyBooked() {
		return nil, fmt.Errorf("%w: flight %s is fully booked", entity.ErrBooking, flight.ID)
	}

	available, err := flight.IsSeatAvailable(req.SeatNumber)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, fmt.Errorf("%w: seat %s is not available", entity.ErrBooking, req.SeatNumber)
	}

	transactionID, err := payment.Process(baseFare)
	if err != nil {
		return nil, fmt.Errorf("process payment: %w", err)
	}

	if err := flight.BookSeat(req.SeatNumber); err != nil {
		return nil, err
	}

	reservation := &entity.Reservation{
		ID:            s.repo.IDs.Next(repository.PrefixReservation),
		PassengerName: req.PassengerName,
		FlightID:      flight.ID,
		AirlineName:   flight.AirlineName,
		Destination:   flight.Destination,
		SeatNumber:    req.SeatNumber,
		Status:        entity.ReservationStatusConfirmed,
		Username:      req.Username,
		PaymentMethod: payment.Details(),
	}

	if err := s.repo.Reservation.Create(reservation); err != nil {
		// Roll the seat back so the grid stays consistent with reservations
		if cancelErr := flight.CancelSeat(req.SeatNumber); cancelErr != nil {
			s.log.Error("Failed to roll back seat after reservation failure",
				zap.Error(cancelErr),
				zap.String("flight_id", flight.ID),
				zap.String("seat", req.SeatNumber),
			)
		}
		return nil, err
	}
	if err := s.repo.Flight.SaveAll(); err != nil {
		return nil, err
	}

	s.log.Info("Seat booked",
		zap.String("reservation_id", reservation.ID),
		zap.String("flight_id", flight.ID),
		zap.String("seat", req.SeatNumber),
		zap.String("transaction_id", transactionID),
		zap.Float64("amount", baseFare),
	)

	return reservation, nil
}

// Cancel frees the seat and removes the reservation.
func (s *bookingService) Cancel(reservationID string) error {
	reservation, found := s.repo.Reservation.FindByID(reservationID)
	if !found {
		return fmt.Errorf("%w: reservation not found", entity.ErrValidation)
	}

	if flight, ok := s.repo.Flight.FindByID(reservation.FlightID); ok {
		if err := flight.CancelSeat(reservation.SeatNumber); err != nil {
			return err
		}
		if err := s.repo.Flight.SaveAll(); err != nil {
			return err
		}
	}

	if err := s.repo.Reservation.Delete(reservationID); err != nil {
		return err
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("flight_id", reservation.FlightID),
		zap.String("seat", reservation.SeatNumber),
	)

	return nil
}

func (s *bookingService) Get(reservationID string) (*entity.Reservation, error) {
	reservation, found := s.repo.Reservation.FindByID(reservationID)
	if !found {
		return nil, fmt.Errorf("%w: reservation not found", entity.ErrValidation)
	}
	return reservation, nil
}

func (s *bookingService) ListByUser(username string) []*entity.Reservation {
	return s.repo.Reservation.FindByUser(username)
}

func (s *bookingService) ListByFlight(flightID string) []*entity.Reservation {
	return s.repo.Reservation.FindByFlight(flightID)
}
