package repository

import (
	"fmt"
	"strconv"
	"strings"

	"airline-reservation/internal/data/entity"
	"airline-reservation/pkg/database"

	"go.uber.org/zap"
)

const flightsFile = "flights.txt"

type FlightRepository interface {
	All() []*entity.Flight
	FindByID(id string) (*entity.Flight, bool)
	FindByAirline(name string) []*entity.Flight
	SearchByDestination(destination string) []*entity.Flight
	Create(flight *entity.Flight) error
	SaveAll() error
	Delete(id string) error
}

type flightRepository struct {
	store   database.Store
	log     *zap.Logger
	flights []*entity.Flight
}

// NewFlightRepository loads the persisted flights into memory. Each flight
// line carries its fields in order; the seat occupancy matrix lives in a
// separate seatmaps/<id>.txt file and the layout is always re-derived from
// capacity, with the matrix dimensions cross-checked against it.
func NewFlightRepository(store database.Store, log *zap.Logger) FlightRepository {
	r := &flightRepository{
		store: store,
		log:   log.With(zap.String("repository", "flight")),
	}
	r.load()
	return r
}

func (r *flightRepository) load() {
	data, err := r.store.Load(flightsFile)
	if err != nil {
		r.log.Warn("Failed to load flights, starting empty", zap.Error(err))
		return
	}

	for _, line := range strings.Split(data, "\n") {
		tokens := strings.Split(line, ",")
		if len(tokens) < 9 {
			continue
		}

		capacity, err := strconv.Atoi(tokens[3])
		if err != nil || capacity <= 0 {
			r.log.Warn("Skipping flight with bad capacity", zap.String("line", line))
			continue
		}
		storedAvailable, _ := strconv.Atoi(tokens[4])

		flight := &entity.Flight{
			ID:            tokens[0],
			AirlineName:   tokens[1],
			PlaneID:       tokens[2],
			Capacity:      capacity,
			Destination:   tokens[5],
			DepartureTime: tokens[6],
			ArrivalTime:   tokens[7],
			Status:        tokens[8],
		}

		flight.Seats = r.loadSeatGrid(flight.ID, capacity)
		flight.AvailableSeats = flight.Seats.AvailableCount()
		if flight.AvailableSeats != storedAvailable {
			r.log.Warn("Stored available-seat count disagrees with seat map, using seat map",
				zap.String("flight_id", flight.ID),
				zap.Int("stored", storedAvailable),
				zap.Int("counted", flight.AvailableSeats),
			)
		}

		r.flights = append(r.flights, flight)
	}
}

// loadSeatGrid rehydrates the grid from its matrix file. A missing, empty
// or mis-shaped matrix falls back to a fresh build from capacity.
func (r *flightRepository) loadSeatGrid(flightID string, capacity int) *entity.SeatGrid {
	data, err := r.store.Load(seatMapFile(flightID))
	if err == nil {
		if cells := parseSeatMatrix(data); cells != nil {
			grid, restoreErr := entity.RestoreSeatGrid(capacity, cells)
			if restoreErr == nil {
				return grid
			}
			err = restoreErr
		}
	}

	if err != nil {
		r.log.Warn("Rebuilding seat map from capacity",
			zap.Error(err),
			zap.String("flight_id", flightID),
		)
	}
	return entity.NewSeatGrid(capacity)
}

func (r *flightRepository) All() []*entity.Flight {
	return r.flights
}

func (r *flightRepository) FindByID(id string) (*entity.Flight, bool) {
	for _, f := range r.flights {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

func (r *flightRepository) FindByAirline(name string) []*entity.Flight {
	var out []*entity.Flight
	for _, f := range r.flights {
		if f.AirlineName == name {
			out = append(out, f)
		}
	}
	return out
}

func (r *flightRepository) SearchByDestination(destination string) []*entity.Flight {
	var out []*entity.Flight
	for _, f := range r.flights {
		if strings.Contains(f.Destination, destination) {
			out = append(out, f)
		}
	}
	return out
}

func (r *flightRepository) Create(flight *entity.Flight) error {
	if err := r.store.Append(flightsFile, encodeFlight(flight)); err != nil {
		r.log.Error("Failed to persist flight",
			zap.Error(err),
			zap.String("flight_id", flight.ID),
		)
		return fmt.Errorf("persist flight: %w", err)
	}
	if err := r.saveSeatMap(flight); err != nil {
		return err
	}

	r.flights = append(r.flights, flight)
	return nil
}

// SaveAll rewrites flights.txt and every seat map from the in-memory state.
func (r *flightRepository) SaveAll() error {
	var b strings.Builder
	for _, f := range r.flights {
		b.WriteString(encodeFlight(f))
		b.WriteString("\n")
	}

	if err := r.store.Overwrite(flightsFile, b.String()); err != nil {
		r.log.Error("Failed to save flights", zap.Error(err))
		return fmt.Errorf("save flights: %w", err)
	}

	for _, f := range r.flights {
		if err := r.saveSeatMap(f); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the flight and its seat map file. On a failing store call
// the in-memory list is restored so memory and disk stay consistent.
func (r *flightRepository) Delete(id string) error {
	for i, f := range r.flights {
		if f.ID == id {
			if err := r.store.Delete(seatMapFile(id)); err != nil {
				return err
			}
			r.flights = append(r.flights[:i], r.flights[i+1:]...)
			if err := r.SaveAll(); err != nil {
				r.flights = append(r.flights[:i], append([]*entity.Flight{f}, r.flights[i:]...)...)
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("%w: flight %s not found", entity.ErrValidation, id)
}

func (r *flightRepository) saveSeatMap(flight *entity.Flight) error {
	if err := r.store.Overwrite(seatMapFile(flight.ID), encodeSeatMatrix(flight.Seats.Cells())); err != nil {
		r.log.Error("Failed to save seat map",
			zap.Error(err),
			zap.String("flight_id", flight.ID),
		)
		return fmt.Errorf("save seat map: %w", err)
	}
	return nil
}

func seatMapFile(flightID string) string {
	return "seatmaps/" + flightID + ".txt"
}

func encodeFlight(f *entity.Flight) string {
	return strings.Join([]string{
		f.ID,
		f.AirlineName,
		f.PlaneID,
		strconv.Itoa(f.Capacity),
		strconv.Itoa(f.AvailableSeats),
		f.Destination,
		f.DepartureTime,
		f.ArrivalTime,
		f.Status,
	}, ",")
}

// encodeSeatMatrix writes one text row per grid row, "1" occupied and "0"
// available, comma after every cell, newline after every row.
func encodeSeatMatrix(cells [][]bool) string {
	var b strings.Builder
	for _, row := range cells {
		for _, occupied := range row {
			if occupied {
				b.WriteString("1,")
			} else {
				b.WriteString("0,")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func parseSeatMatrix(data string) [][]bool {
	var cells [][]bool
	for _, line := range strings.Split(data, "\n") {
		var row []bool
		for _, token := range strings.Split(line, ",") {
			if token == "" {
				continue
			}
			row = append(row, token == "1")
		}
		if len(row) > 0 {
			cells = append(cells, row)
		}
	}
	return cells
}
