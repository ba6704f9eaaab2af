package usecase

import (
	"airline-reservation/internal/data/repository"
	"airline-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Flight   FlightService
	Booking  BookingService
	Waitlist WaitlistService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Flight:   NewFlightService(repo, log),
		Booking:  NewBookingService(repo, log),
		Waitlist: NewWaitlistService(repo, log),
	}
}
