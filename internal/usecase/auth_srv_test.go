package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-reservation/internal/data/entity"
	"airline-reservation/internal/dto/request"
)

func registerTestCustomer(t *testing.T, service *Service, username string) *entity.User {
	t.Helper()
	user, err := service.Auth.Register(&request.RegisterRequest{
		Username: username,
		Password: "secret123",
		Name:     "Juan Dela Cruz",
		Role:     string(entity.RoleCustomer),
	})
	require.NoError(t, err)
	return user
}

func TestRegisterAndLogin(t *testing.T) {
	service := newTestService(t)

	user := registerTestCustomer(t, service, "juan")
	assert.NotEqual(t, "secret123", user.PasswordHash)

	got, err := service.Auth.Login(&request.LoginRequest{
		Username: "juan",
		Password: "secret123",
		Role:     string(entity.RoleCustomer),
	})
	require.NoError(t, err)
	assert.Equal(t, "Juan Dela Cruz", got.Name)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	service := newTestService(t)
	registerTestCustomer(t, service, "juan")

	_, err := service.Auth.Register(&request.RegisterRequest{
		Username: "juan",
		Password: "another",
		Name:     "Someone Else",
		Role:     string(entity.RoleCustomer),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name string
		req  *request.RegisterRequest
	}{
		{"short username", &request.RegisterRequest{Username: "ab", Password: "secret123", Name: "Juan", Role: "customer"}},
		{"short password", &request.RegisterRequest{Username: "juan", Password: "abc", Name: "Juan", Role: "customer"}},
		{"bad role", &request.RegisterRequest{Username: "juan", Password: "secret123", Name: "Juan", Role: "pilot"}},
		{"missing name", &request.RegisterRequest{Username: "juan", Password: "secret123", Role: "customer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Auth.Register(tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, entity.ErrValidation))
		})
	}
}

func TestLoginRejectsWrongCredentialsAndRole(t *testing.T) {
	service := newTestService(t)
	registerTestCustomer(t, service, "juan")

	_, err := service.Auth.Login(&request.LoginRequest{Username: "juan", Password: "wrong", Role: "customer"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))

	_, err = service.Auth.Login(&request.LoginRequest{Username: "nobody", Password: "secret123", Role: "customer"})
	require.Error(t, err)

	// right credentials, wrong account type
	_, err = service.Auth.Login(&request.LoginRequest{Username: "juan", Password: "secret123", Role: "admin"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestDeleteCustomerCascades(t *testing.T) {
	service := newTestService(t)
	registerTestCustomer(t, service, "juan")
	flight := createTestFlight(t, service, 40)

	_, err := service.Booking.Book(&request.BookSeatRequest{
		FlightID:      flight.ID,
		SeatNumber:    "1A",
		PassengerName: "Juan Dela Cruz",
		Username:      "juan",
	}, &GCashPayment{Number: "09171234567"})
	require.NoError(t, err)
	require.NoError(t, service.Waitlist.Join(flight.ID, "juan", "Juan Dela Cruz"))

	require.NoError(t, service.Auth.DeleteCustomer("juan"))

	assert.Empty(t, service.Auth.Customers())
	assert.Empty(t, service.Booking.ListByUser("juan"))
	assert.Empty(t, service.Waitlist.Entries(flight.ID))
	assert.Equal(t, 40, flight.AvailableSeats)
}

func TestDeleteCustomerRejectsAdminsAndUnknowns(t *testing.T) {
	service := newTestService(t)

	_, err := service.Auth.Register(&request.RegisterRequest{
		Username: "root",
		Password: "secret123",
		Name:     "Administrator",
		Role:     string(entity.RoleAdmin),
	})
	require.NoError(t, err)

	err = service.Auth.DeleteCustomer("root")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))

	err = service.Auth.DeleteCustomer("ghost")
	require.Error(t, err)
}
