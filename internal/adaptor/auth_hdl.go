package adaptor

import (
	"go.uber.org/zap"

	"airline-reservation/internal/data/entity"
	"airline-reservation/internal/dto/request"
	"airline-reservation/internal/usecase"
)

type AuthHandler struct {
	console *Console
	service *usecase.Service
	log     *zap.Logger
}

func NewAuthHandler(console *Console, service *usecase.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		console: console,
		service: service,
		log:     log.With(zap.String("adaptor", "auth")),
	}
}

func (h *AuthHandler) SignUp() {
	h.console.Clear()
	h.console.Println("--- Sign Up ---")
	h.console.Println("1. Admin")
	h.console.Println("2. Customer")
	h.console.Println("3. Back")

	var role string
	switch h.console.ReadInt("Register as: ", 0) {
	case 1:
		role = string(entity.RoleAdmin)
	case 2:
		role = string(entity.RoleCustomer)
	case 3:
		return
	default:
		h.console.Println("Invalid choice.")
		h.console.Pause()
		return
	}

	req := &request.RegisterRequest{
		Username: h.console.ReadLine("Enter username: "),
		Password: h.console.ReadLine("Enter password: "),
		Role:     role,
	}
	if confirm := h.console.ReadLine("Confirm password: "); confirm != req.Password {
		h.console.Println("Passwords do not match.")
		h.console.Pause()
		return
	}
	req.Name = h.console.ReadLine("Enter your full name: ")

	user, err := h.service.Auth.Register(req)
	if err != nil {
		h.console.Printf("Sign up failed: %v\n", err)
		h.console.Pause()
		return
	}

	h.console.Printf("Account created for %s. You can now log in.\n", user.Username)
	h.console.Pause()
}

// LogIn returns the authenticated user, or nil when the user backs out or
// the credentials are rejected.
func (h *AuthHandler) LogIn() *entity.User {
	h.console.Clear()
	h.console.Println("--- Log In ---")
	h.console.Println("1. Admin")
	h.console.Println("2. Customer")
	h.console.Println("3. Back")

	var role string
	switch h.console.ReadInt("Log in as: ", 0) {
	case 1:
		role = string(entity.RoleAdmin)
	case 2:
		role = string(entity.RoleCustomer)
	case 3:
		return nil
	default:
		h.console.Println("Invalid choice.")
		h.console.Pause()
		return nil
	}

	req := &request.LoginRequest{
		Username: h.console.ReadLine("Enter username: "),
		Password: h.console.ReadLine("Enter password: "),
		Role:     role,
	}

	user, err := h.service.Auth.Login(req)
	if err != nil {
		h.console.Printf("Log in failed: %v\n", err)
		h.console.Pause()
		return nil
	}

	h.console.Printf("Welcome, %s!\n", user.Name)
	h.console.Pause()
	return user
}
