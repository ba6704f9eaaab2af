package adaptor

import (
	"go.uber.org/zap"

	"airline-reservation/internal/data/entity"
	"airline-reservation/internal/dto/request"
	"airline-reservation/internal/usecase"
)

type CustomerHandler struct {
	console *Console
	service *usecase.Service
	log     *zap.Logger
}

func NewCustomerHandler(console *Console, service *usecase.Service, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		console: console,
		service: service,
		log:     log.With(zap.String("adaptor", "customer")),
	}
}

func (h *CustomerHandler) Menu(user *entity.User) {
	h.log.Info("Customer session started", zap.String("username", user.Username))
	for {
		h.console.Clear()
		h.console.Printf("--- Customer Menu (%s) ---\n", user.Name)
		h.console.Println("1. View Flights")
		h.console.Println("2. Search Flights by Destination")
		h.console.Println("3. Book a Seat")
		h.console.Println("4. View My Bookings")
		h.console.Println("5. Cancel a Booking")
		h.console.Println("6. Leave a Waiting List")
		h.console.Println("7. Log Out")

		switch h.console.ReadInt("Enter your choice: ", 0) {
		case 1:
			h.viewFlights(h.service.Flight.List())
		case 2:
			h.searchFlights()
		case 3:
			h.bookFlight(user)
		case 4:
			h.viewBookings(user)
		case 5:
			h.cancelBooking(user)
		case 6:
			h.leaveWaitingList(user)
		case 7:
			h.log.Info("Customer logged out", zap.String("username", user.Username))
			return
		default:
			h.console.Println("Invalid choice, please try again.")
			h.console.Pause()
		}
	}
}

func (h *CustomerHandler) viewFlights(flights []*entity.Flight) {
	h.console.Clear()
	h.console.Println("--- Flights ---")
	if len(flights) == 0 {
		h.console.Println("No flights available.")
		h.console.Pause()
		return
	}

	for _, f := range flights {
		h.console.Printf("  %s | %s | %s | departs %s, arrives %s | %d/%d seats free | %s\n",
			f.ID, f.AirlineName, f.Destination, f.DepartureTime, f.ArrivalTime,
			f.AvailableSeats, f.Capacity, f.Status)
	}
	h.console.Pause()
}

func (h *CustomerHandler) searchFlights() {
	h.console.Clear()
	h.console.Println("--- Search Flights ---")
	destination := h.console.ReadLine("Enter destination: ")

	flights := h.service.Flight.SearchByDestination(destination)
	if len(flights) == 0 {
		h.console.Printf("No flights found for %q.\n", destination)
		h.console.Pause()
		return
	}
	h.viewFlights(flights)
}

func (h *CustomerHandler) bookFlight(user *entity.User) {
	h.console.Clear()
	h.console.Println("--- Book a Seat ---")

	flightID := h.console.ReadLine("Enter flight ID: ")
	flight, err := h.service.Flight.Get(flightID)
	if err != nil {
		h.console.Printf("%v\n", err)
		h.console.Pause()
		return
	}

	if flight.IsFullyBooked() {
		h.console.Printf("Flight %s is fully booked.\n", flight.ID)
		if h.console.Confirm("Would you like to join the waiting list?") {
			name := h.console.ReadLine("Enter passenger name: ")
			if err := h.service.Waitlist.Join(flight.ID, user.Username, name); err != nil {
				h.console.Printf("Could not join the waiting list: %v\n", err)
			} else {
				h.console.Println("You have been added to the waiting list.")
			}
		}
		h.console.Pause()
		return
	}

	seatMap, err := h.service.Flight.SeatMap(flight.ID)
	if err != nil {
		h.console.Printf("Could not load seat map: %v\n", err)
		h.console.Pause()
		return
	}
	h.console.Println(seatMap)

	req := &request.BookSeatRequest{
		FlightID:      flight.ID,
		SeatNumber:    h.console.ReadLine("Enter seat number (e.g. 1A): "),
		PassengerName: h.console.ReadLine("Enter passenger name: "),
		Username:      user.Username,
	}

	payment, ok := h.choosePayment()
	if !ok {
		return
	}

	res, err := h.service.Booking.Book(req, payment)
	if err != nil {
		h.console.Printf("Booking failed: %v\n", err)
		h.console.Pause()
		return
	}

	h.console.Printf("Booking confirmed! Reservation %s, seat %s on flight %s to %s.\n",
		res.ID, res.SeatNumber, res.FlightID, res.Destination)
	h.console.Pause()
}

// choosePayment prompts for a payment method and its details.
func (h *CustomerHandler) choosePayment() (usecase.PaymentStrategy, bool) {
	h.console.Println("Payment method:")
	h.console.Println("1. GCash")
	h.console.Println("2. Credit Card")
	h.console.Println("3. Back")

	switch h.console.ReadInt("Enter your choice: ", 0) {
	case 1:
		return &usecase.GCashPayment{
			Number: h.console.ReadLine("Enter GCash number: "),
		}, true
	case 2:
		return &usecase.CreditCardPayment{
			Number: h.console.ReadLine("Enter card number: "),
			Expiry: h.console.ReadLine("Enter expiry (MM/YY): "),
			CVV:    h.console.ReadLine("Enter CVV: "),
		}, true
	default:
		return nil, false
	}
}

func (h *CustomerHandler) viewBookings(user *entity.User) {
	h.console.Clear()
	h.console.Println("--- My Bookings ---")

	reservations := h.service.Booking.ListByUser(user.Username)
	if len(reservations) == 0 {
		h.console.Println("You have no bookings.")
		h.console.Pause()
		return
	}

	for _, res := range reservations {
		h.console.Printf("  %s | %s | Flight %s (%s) to %s | Seat %s | %s | %s\n",
			res.ID, res.PassengerName, res.FlightID, res.AirlineName,
			res.Destination, res.SeatNumber, res.Status, res.PaymentMethod)
	}
	h.console.Pause()
}

func (h *CustomerHandler) cancelBooking(user *entity.User) {
	h.console.Clear()
	h.console.Println("--- Cancel a Booking ---")

	reservations := h.service.Booking.ListByUser(user.Username)
	if len(reservations) == 0 {
		h.console.Println("You have no bookings to cancel.")
		h.console.Pause()
		return
	}

	for _, res := range reservations {
		h.console.Printf("  %s | Flight %s to %s | Seat %s\n",
			res.ID, res.FlightID, res.Destination, res.SeatNumber)
	}

	reservationID := h.console.ReadLine("Enter reservation ID to cancel: ")
	res, err := h.service.Booking.Get(reservationID)
	if err != nil {
		h.console.Printf("%v\n", err)
		h.console.Pause()
		return
	}
	if res.Username != user.Username {
		h.console.Println("That reservation does not belong to you.")
		h.console.Pause()
		return
	}

	if !h.console.Confirm("Cancel reservation " + reservationID + "?") {
		return
	}
	if err := h.service.Booking.Cancel(reservationID); err != nil {
		h.console.Printf("Could not cancel reservation: %v\n", err)
		h.console.Pause()
		return
	}

	h.console.Printf("Reservation %s cancelled, seat %s is free again.\n", reservationID, res.SeatNumber)
	h.console.Pause()
}

func (h *CustomerHandler) leaveWaitingList(user *entity.User) {
	h.console.Clear()
	h.console.Println("--- Leave a Waiting List ---")

	flightID := h.console.ReadLine("Enter flight ID: ")
	if err := h.service.Waitlist.Leave(flightID, user.Username); err != nil {
		h.console.Printf("Could not leave the waiting list: %v\n", err)
		h.console.Pause()
		return
	}

	h.console.Println("You have been removed from the waiting list.")
	h.console.Pause()
}
