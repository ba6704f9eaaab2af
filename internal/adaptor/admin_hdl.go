package adaptor

import (
	"go.uber.org/zap"

	"airline-reservation/internal/data/entity"
	"airline-reservation/internal/dto/request"
	"airline-reservation/internal/usecase"
)

type AdminHandler struct {
	console *Console
	service *usecase.Service
	log     *zap.Logger
}

func NewAdminHandler(console *Console, service *usecase.Service, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		console: console,
		service: service,
		log:     log.With(zap.String("adaptor", "admin")),
	}
}

func (h *AdminHandler) Menu(user *entity.User) {
	h.log.Info("Admin session started", zap.String("username", user.Username))
	for {
		h.console.Clear()
		h.console.Printf("--- Admin Menu (%s) ---\n", user.Name)
		h.console.Println("1. Add Flight")
		h.console.Println("2. Delete Flight")
		h.console.Println("3. Manage Reservations")
		h.console.Println("4. Manage Flight Status")
		h.console.Println("5. View Seat Maps")
		h.console.Println("6. Manage Waiting Lists")
		h.console.Println("7. Manage User Accounts")
		h.console.Println("8. Log Out")

		switch h.console.ReadInt("Enter your choice: ", 0) {
		case 1:
			h.createFlight()
		case 2:
			h.deleteFlight()
		case 3:
			h.manageReservations()
		case 4:
			h.manageFlightStatus()
		case 5:
			h.viewSeatMaps()
		case 6:
			h.manageWaitingList()
		case 7:
			h.manageUserAccounts()
		case 8:
			h.log.Info("Admin logged out", zap.String("username", user.Username))
			return
		default:
			h.console.Println("Invalid choice, please try again.")
			h.console.Pause()
		}
	}
}

func (h *AdminHandler) createFlight() {
	h.console.Clear()
	h.console.Println("--- Add Flight ---")

	req := &request.CreateFlightRequest{
		AirlineName:   h.console.ReadLine("Enter airline name: "),
		PlaneID:       h.console.ReadLine("Enter plane ID: "),
		Capacity:      h.console.ReadInt("Enter seating capacity: ", 0),
		Destination:   h.console.ReadLine("Enter destination: "),
		DepartureTime: h.console.ReadLine("Enter departure time: "),
		ArrivalTime:   h.console.ReadLine("Enter arrival time: "),
	}

	flight, err := h.service.Flight.Create(req)
	if err != nil {
		h.console.Printf("Could not add flight: %v\n", err)
		h.console.Pause()
		return
	}

	h.console.Printf("Flight %s added with %d seats.\n", flight.ID, flight.Capacity)
	h.console.Pause()
}

func (h *AdminHandler) deleteFlight() {
	h.console.Clear()
	h.console.Println("--- Delete Flight ---")
	flight, ok := h.chooseFlight()
	if !ok {
		return
	}

	if !h.console.Confirm("Delete flight " + flight.ID + " and all its reservations?") {
		return
	}

	if err := h.service.Flight.Delete(flight.ID); err != nil {
		h.console.Printf("Could not delete flight: %v\n", err)
		h.console.Pause()
		return
	}

	h.console.Printf("Flight %s deleted.\n", flight.ID)
	h.console.Pause()
}

func (h *AdminHandler) manageReservations() {
	h.console.Clear()
	h.console.Println("--- Manage Reservations ---")
	flight, ok := h.chooseFlight()
	if !ok {
		return
	}

	reservations := h.service.Booking.ListByFlight(flight.ID)
	if len(reservations) == 0 {
		h.console.Println("No reservations for this flight.")
		h.console.Pause()
		return
	}

	h.console.Printf("Reservations for flight %s:\n", flight.ID)
	for _, res := range reservations {
		h.console.Printf("  %s | %s | Seat %s | %s | booked by %s\n",
			res.ID, res.PassengerName, res.SeatNumber, res.Status, res.Username)
	}

	if !h.console.Confirm("Cancel one of these reservations?") {
		return
	}
	reservationID := h.console.ReadLine("Enter reservation ID: ")
	if err := h.service.Booking.Cancel(reservationID); err != nil {
		h.console.Printf("Could not cancel reservation: %v\n", err)
		h.console.Pause()
		return
	}
	h.console.Printf("Reservation %s cancelled.\n", reservationID)
	h.console.Pause()
}

func (h *AdminHandler) manageFlightStatus() {
	h.console.Clear()
	h.console.Println("--- Manage Flight Status ---")
	flight, ok := h.chooseFlight()
	if !ok {
		return
	}

	h.console.Printf("Current status of %s: %s\n", flight.ID, flight.Status)
	h.console.Println("Leave a field empty to keep its current value.")

	req := &request.UpdateFlightRequest{
		AirlineName:   h.console.ReadLine("New airline name: "),
		DepartureTime: h.console.ReadLine("New departure time: "),
		ArrivalTime:   h.console.ReadLine("New arrival time: "),
		Status:        h.console.ReadLine("New status (e.g. On Time, Delayed, Cancelled): "),
	}

	updated, err := h.service.Flight.Update(flight.ID, req)
	if err != nil {
		h.console.Printf("Could not update flight: %v\n", err)
		h.console.Pause()
		return
	}

	h.console.Printf("Flight %s updated. Status: %s\n", updated.ID, updated.Status)
	h.console.Pause()
}

func (h *AdminHandler) viewSeatMaps() {
	h.console.Clear()
	h.console.Println("--- View Seat Maps ---")
	flight, ok := h.chooseFlight()
	if !ok {
		return
	}

	seatMap, err := h.service.Flight.SeatMap(flight.ID)
	if err != nil {
		h.console.Printf("Could not load seat map: %v\n", err)
		h.console.Pause()
		return
	}

	h.console.Println(seatMap)
	h.console.Pause()
}

func (h *AdminHandler) manageWaitingList() {
	h.console.Clear()
	h.console.Println("--- Manage Waiting Lists ---")
	flight, ok := h.chooseFlight()
	if !ok {
		return
	}

	entries := h.service.Waitlist.Entries(flight.ID)
	if len(entries) == 0 {
		h.console.Println("The waiting list for this flight is empty.")
		h.console.Pause()
		return
	}

	h.console.Printf("Waiting list for flight %s:\n", flight.ID)
	for i, entry := range entries {
		h.console.Printf("  %d. %s (%s)\n", i+1, entry.PassengerName, entry.Username)
	}

	h.console.Println("1. Promote Passenger")
	h.console.Println("2. Remove Passenger")
	h.console.Println("3. Back")

	switch h.console.ReadInt("Enter your choice: ", 0) {
	case 1:
		h.promoteFromWaitingList(flight)
	case 2:
		h.removeFromWaitingList(flight)
	case 3:
	default:
		h.console.Println("Invalid choice.")
		h.console.Pause()
	}
}

func (h *AdminHandler) promoteFromWaitingList(flight *entity.Flight) {
	if flight.IsFullyBooked() {
		h.console.Println("Flight is fully booked, nobody can be promoted yet.")
		h.console.Pause()
		return
	}

	seat, ok := flight.FirstAvailableSeat()
	if !ok {
		h.console.Println("No free seat found.")
		h.console.Pause()
		return
	}
	if entered := h.console.ReadLine("Seat to assign (Enter for " + seat + "): "); entered != "" {
		seat = entered
	}

	res, err := h.service.Waitlist.Promote(flight.ID, seat)
	if err != nil {
		h.console.Printf("Could not promote passenger: %v\n", err)
		h.console.Pause()
		return
	}

	h.console.Printf("%s promoted to seat %s (reservation %s).\n", res.PassengerName, res.SeatNumber, res.ID)
	h.console.Pause()
}

func (h *AdminHandler) removeFromWaitingList(flight *entity.Flight) {
	username := h.console.ReadLine("Enter username to remove: ")
	if err := h.service.Waitlist.Leave(flight.ID, username); err != nil {
		h.console.Printf("Could not remove passenger: %v\n", err)
		h.console.Pause()
		return
	}

	h.console.Println("Passenger removed from the waiting list.")
	h.console.Pause()
}

func (h *AdminHandler) manageUserAccounts() {
	h.console.Clear()
	h.console.Println("--- Manage User Accounts ---")

	customers := h.service.Auth.Customers()
	if len(customers) == 0 {
		h.console.Println("No customer accounts registered.")
		h.console.Pause()
		return
	}

	h.console.Println("Customer accounts:")
	for _, customer := range customers {
		h.console.Printf("  %s (%s)\n", customer.Username, customer.Name)
	}

	if !h.console.Confirm("Delete one of these accounts?") {
		return
	}
	username := h.console.ReadLine("Enter username to delete: ")
	if err := h.service.Auth.DeleteCustomer(username); err != nil {
		h.console.Printf("Could not delete account: %v\n", err)
		h.console.Pause()
		return
	}

	h.console.Printf("Account %s deleted with its reservations.\n", username)
	h.console.Pause()
}

// chooseFlight lists every flight and prompts for an ID. Returns false when
// there are no flights or the entered ID does not exist.
func (h *AdminHandler) chooseFlight() (*entity.Flight, bool) {
	flights := h.service.Flight.List()
	if len(flights) == 0 {
		h.console.Println("No flights available.")
		h.console.Pause()
		return nil, false
	}

	h.console.Println("Available flights:")
	for _, f := range flights {
		h.console.Printf("  %s | %s | %s | %s -> arrives %s | %d/%d seats free | %s\n",
			f.ID, f.AirlineName, f.Destination, f.DepartureTime, f.ArrivalTime,
			f.AvailableSeats, f.Capacity, f.Status)
	}

	flightID := h.console.ReadLine("Enter flight ID: ")
	flight, err := h.service.Flight.Get(flightID)
	if err != nil {
		h.console.Printf("%v\n", err)
		h.console.Pause()
		return nil, false
	}
	return flight, true
}
