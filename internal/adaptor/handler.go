package adaptor

import (
	"go.uber.org/zap"

	"airline-reservation/internal/usecase"
)

type Handler struct {
	Auth     *AuthHandler
	Admin    *AdminHandler
	Customer *CustomerHandler

	console *Console
	log     *zap.Logger
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	console := NewConsole()
	return &Handler{
		Auth:     NewAuthHandler(console, service, log),
		Admin:    NewAdminHandler(console, service, log),
		Customer: NewCustomerHandler(console, service, log),
		console:  console,
		log:      log.With(zap.String("adaptor", "handler")),
	}
}

// Run drives the top-level menu until the user exits.
func (h *Handler) Run() {
	for {
		h.console.Clear()
		h.console.Println("=========================================")
		h.console.Println("   Airline Reservation System")
		h.console.Println("=========================================")
		h.console.Println("1. Sign Up")
		h.console.Println("2. Log In")
		h.console.Println("3. Exit")

		switch h.console.ReadInt("Enter your choice: ", 0) {
		case 1:
			h.Auth.SignUp()
		case 2:
			user := h.Auth.LogIn()
			if user == nil {
				continue
			}
			if user.IsAdmin() {
				h.Admin.Menu(user)
			} else {
				h.Customer.Menu(user)
			}
		case 3:
			h.console.Println("Thank you for using the Airline Reservation System. Goodbye!")
			h.log.Info("session ended")
			return
		default:
			h.console.Println("Invalid choice, please try again.")
			h.console.Pause()
		}
	}
}
