package cmd

import (
	"fmt"

	"airline-reservation/internal/adaptor"
)

// App runs the interactive menu until the user exits.
func App(menu *adaptor.Handler) {
	fmt.Println("Airline Reservation System started")
	menu.Run()
}
