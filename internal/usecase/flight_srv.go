package usecase

import (
	"fmt"

	"airline-reservation/internal/data/entity"
	"airline-reservation/internal/data/repository"
	"airline-reservation/internal/dto/request"
	"airline-reservation/pkg/utils"

	"go.uber.org/zap"
)

type FlightService interface {
	Create(req *request.CreateFlightRequest) (*entity.Flight, error)
	Delete(flightID string) error
	List() []*entity.Flight
	Get(flightID string) (*entity.Flight, error)
	FindByAirline(airline string) []*entity.Flight
	SearchByDestination(destination string) []*entity.Flight
	Update(flightID string, req *request.UpdateFlightRequest) (*entity.Flight, error)
	SeatMap(flightID string) (string, error)
}

type flightService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFlightService(repo *repository.Repository, log *zap.Logger) FlightService {
	return &flightService{
		repo: repo,
		log:  log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) Create(req *request.CreateFlightRequest) (*entity.Flight, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create flight validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	id := s.repo.IDs.Next(repository.PrefixFlight)
	flight, err := entity.NewFlight(id, req.AirlineName, req.PlaneID, req.Capacity,
		req.Destination, req.DepartureTime, req.ArrivalTime)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Flight.Create(flight); err != nil {
		return nil, err
	}

	s.log.Info("Flight created",
		zap.String("flight_id", flight.ID),
		zap.String("airline", flight.AirlineName),
		zap.Int("capacity", flight.Capacity),
		zap.Int("rows", flight.Seats.RowCount()),
	)

	return flight, nil
}

// Delete removes the flight together with its reservations, waiting list
// and seat map file.
func (s *flightService) Delete(flightID string) error {
	if _, found := s.repo.Flight.FindByID(flightID); !found {
		return fmt.Errorf("%w: flight not found", entity.ErrValidation)
	}

	if err := s.repo.Reservation.DeleteByFlight(flightID); err != nil {
		return err
	}
	if err := s.repo.Waitlist.Delete(flightID); err != nil {
		return err
	}
	if err := s.repo.Flight.Delete(flightID); err != nil {
		return err
	}

	s.log.Info("Flight deleted", zap.String("flight_id", flightID))
	return nil
}

func (s *flightService) List() []*entity.Flight {
	return s.repo.Flight.All()
}

func (s *flightService) Get(flightID string) (*entity.Flight, error) {
	flight, found := s.repo.Flight.FindByID(flightID)
	if !found {
		return nil, fmt.Errorf("%w: flight not found", entity.ErrValidation)
	}
	return flight, nil
}

func (s *flightService) FindByAirline(airline string) []*entity.Flight {
	return s.repo.Flight.FindByAirline(airline)
}

func (s *flightService) SearchByDestination(destination string) []*entity.Flight {
	return s.repo.Flight.SearchByDestination(destination)
}

// Update edits airline, schedule and status; empty fields keep the current
// value.
func (s *flightService) Update(flightID string, req *request.UpdateFlightRequest) (*entity.Flight, error) {
	flight, found := s.repo.Flight.FindByID(flightID)
	if !found {
		return nil, fmt.Errorf("%w: flight not found", entity.ErrValidation)
	}

	if req.AirlineName != "" {
		flight.AirlineName = req.AirlineName
	}
	if req.DepartureTime != "" {
		flight.DepartureTime = req.DepartureTime
	}
	if req.ArrivalTime != "" {
		flight.ArrivalTime = req.ArrivalTime
	}
	if req.Status != "" {
		flight.Status = req.Status
	}

	if err := s.repo.Flight.SaveAll(); err != nil {
		return nil, err
	}

	s.log.Info("Flight updated",
		zap.String("flight_id", flight.ID),
		zap.String("status", flight.Status),
	)

	return flight, nil
}

func (s *flightService) SeatMap(flightID string) (string, error) {
	flight, found := s.repo.Flight.FindByID(flightID)
	if !found {
		return "", fmt.Errorf("%w: flight not found", entity.ErrValidation)
	}
	return flight.RenderSeatMap(), nil
}
