package usecase

import (
	"fmt"

	"airline-reservation/internal/data/entity"
	"airline-reservation/internal/data/repository"
	"airline-reservation/internal/dto/request"
	"airline-reservation/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(req *request.RegisterRequest) (*entity.User, error)
	Login(req *request.LoginRequest) (*entity.User, error)
	Customers() []*entity.User
	DeleteCustomer(username string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(req *request.RegisterRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	if _, exists := s.repo.User.FindByUsername(req.Username); exists {
		return nil, fmt.Errorf("%w: username already exists, please choose another one", entity.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password, s.config.Auth.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         entity.UserRole(req.Role),
	}

	if err := s.repo.User.Create(user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

func (s *authService) Login(req *request.LoginRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, found := s.repo.User.FindByUsername(req.Username)
	if !found || !utils.VerifyPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Login failed", zap.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid username or password", entity.ErrValidation)
	}

	if string(user.Role) != req.Role {
		return nil, fmt.Errorf("%w: invalid user type for this account", entity.ErrValidation)
	}

	s.log.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

func (s *authService) Customers() []*entity.User {
	return s.repo.User.Customers()
}

// DeleteCustomer removes the account with its reservations (freeing the
// booked seats) and waiting-list entries.
func (s *authService) DeleteCustomer(username string) error {
	user, found := s.repo.User.FindByUsername(username)
	if !found || user.IsAdmin() {
		return fmt.Errorf("%w: customer account not found", entity.ErrValidation)
	}

	for _, res := range s.repo.Reservation.FindByUser(username) {
		if flight, ok := s.repo.Flight.FindByID(res.FlightID); ok {
			if err := flight.CancelSeat(res.SeatNumber); err != nil {
				s.log.Warn("Seat already free while deleting account",
					zap.String("flight_id", res.FlightID),
					zap.String("seat", res.SeatNumber),
				)
			}
		}
	}
	if err := s.repo.Reservation.DeleteByUser(username); err != nil {
		return err
	}

	var flightIDs []string
	for _, f := range s.repo.Flight.All() {
		flightIDs = append(flightIDs, f.ID)
	}
	if err := s.repo.Waitlist.RemoveUserEverywhere(username, flightIDs); err != nil {
		return err
	}

	if err := s.repo.User.Delete(username); err != nil {
		return err
	}
	if err := s.repo.Flight.SaveAll(); err != nil {
		return err
	}

	s.log.Info("Customer account deleted", zap.String("username", username))
	return nil
}
