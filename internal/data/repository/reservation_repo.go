package repository

import (
	"fmt"
	"strings"

	"airline-reservation/internal/data/entity"
	"airline-reservation/pkg/database"

	"go.uber.org/zap"
)

const reservationsFile = "reservations.txt"

type ReservationRepository interface {
	All() []*entity.Reservation
	FindByID(id string) (*entity.Reservation, bool)
	FindByUser(username string) []*entity.Reservation
	FindByFlight(flightID string) []*entity.Reservation
	Create(reservation *entity.Reservation) error
	Delete(id string) error
	DeleteByFlight(flightID string) error
	DeleteByUser(username string) error
}

type reservationRepository struct {
	store        database.Store
	log          *zap.Logger
	reservations []*entity.Reservation
}

func NewReservationRepository(store database.Store, log *zap.Logger) ReservationRepository {
	r := &reservationRepository{
		store: store,
		log:   log.With(zap.String("repository", "reservation")),
	}
	r.load()
	return r
}

func (r *reservationRepository) load() {
	data, err := r.store.Load(reservationsFile)
	if err != nil {
		r.log.Warn("Failed to load reservations, starting empty", zap.Error(err))
		return
	}

	for _, line := range strings.Split(data, "\n") {
		tokens := strings.Split(line, ",")
		if len(tokens) < 8 {
			continue
		}

		res := &entity.Reservation{
			ID:            tokens[0],
			PassengerName: tokens[1],
			FlightID:      tokens[2],
			AirlineName:   tokens[3],
			Destination:   tokens[4],
			SeatNumber:    tokens[5],
			Status:        tokens[6],
			Username:      tokens[7],
		}
		// Payment details were added later; older lines miss the column
		if len(tokens) >= 9 {
			res.PaymentMethod = tokens[8]
		}

		r.reservations = append(r.reservations, res)
	}
}

func (r *reservationRepository) All() []*entity.Reservation {
	return r.reservations
}

func (r *reservationRepository) FindByID(id string) (*entity.Reservation, bool) {
	for _, res := range r.reservations {
		if res.ID == id {
			return res, true
		}
	}
	return nil, false
}

func (r *reservationRepository) FindByUser(username string) []*entity.Reservation {
	var out []*entity.Reservation
	for _, res := range r.reservations {
		if res.Username == username {
			out = append(out, res)
		}
	}
	return out
}

func (r *reservationRepository) FindByFlight(flightID string) []*entity.Reservation {
	var out []*entity.Reservation
	for _, res := range r.reservations {
		if res.FlightID == flightID {
			out = append(out, res)
		}
	}
	return out
}

func (r *reservationRepository) Create(reservation *entity.Reservation) error {
	if err := r.store.Append(reservationsFile, encodeReservation(reservation)); err != nil {
		r.log.Error("Failed to persist reservation",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID),
		)
		return fmt.Errorf("persist reservation: %w", err)
	}

	r.reservations = append(r.reservations, reservation)
	return nil
}

func (r *reservationRepository) Delete(id string) error {
	for i, res := range r.reservations {
		if res.ID == id {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			return r.saveAll()
		}
	}
	return fmt.Errorf("%w: reservation %s not found", entity.ErrValidation, id)
}

func (r *reservationRepository) DeleteByFlight(flightID string) error {
	return r.deleteWhere(func(res *entity.Reservation) bool { return res.FlightID == flightID })
}

func (r *reservationRepository) DeleteByUser(username string) error {
	return r.deleteWhere(func(res *entity.Reservation) bool { return res.Username == username })
}

func (r *reservationRepository) deleteWhere(match func(*entity.Reservation) bool) error {
	kept := r.reservations[:0]
	for _, res := range r.reservations {
		if !match(res) {
			kept = append(kept, res)
		}
	}
	r.reservations = kept
	return r.saveAll()
}

func (r *reservationRepository) saveAll() error {
	var b strings.Builder
	for _, res := range r.reservations {
		b.WriteString(encodeReservation(res))
		b.WriteString("\n")
	}

	if err := r.store.Overwrite(reservationsFile, b.String()); err != nil {
		r.log.Error("Failed to save reservations", zap.Error(err))
		return fmt.Errorf("save reservations: %w", err)
	}
	return nil
}

func encodeReservation(res *entity.Reservation) string {
	return strings.Join([]string{
		res.ID,
		res.PassengerName,
		res.FlightID,
		res.AirlineName,
		res.Destination,
		res.SeatNumber,
		res.Status,
		res.Username,
		res.PaymentMethod,
	}, ",")
}
