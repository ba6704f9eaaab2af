package repository

import (
	"fmt"
	"strings"

	"airline-reservation/internal/data/entity"
	"airline-reservation/pkg/database"

	"go.uber.org/zap"
)

type WaitlistRepository interface {
	Get(flightID string) *entity.WaitingList
	Save(flightID string) error
	Delete(flightID string) error
	RemoveUserEverywhere(username string, flightIDs []string) error
}

type waitlistRepository struct {
	store database.Store
	log   *zap.Logger
	lists map[string]*entity.WaitingList
}

// NewWaitlistRepository serves one FIFO waiting list per flight, each backed
// by its own waitinglists/<id>.txt file. Lists load lazily on first access.
func NewWaitlistRepository(store database.Store, log *zap.Logger) WaitlistRepository {
	return &waitlistRepository{
		store: store,
		log:   log.With(zap.String("repository", "waitlist")),
		lists: make(map[string]*entity.WaitingList),
	}
}

func (r *waitlistRepository) Get(flightID string) *entity.WaitingList {
	if list, ok := r.lists[flightID]; ok {
		return list
	}

	list := entity.NewWaitingList(flightID)
	data, err := r.store.Load(waitlistFile(flightID))
	if err != nil {
		r.log.Warn("Failed to load waiting list, starting empty",
			zap.Error(err),
			zap.String("flight_id", flightID),
		)
	} else {
		for _, line := range strings.Split(data, "\n") {
			username, passengerName, ok := strings.Cut(line, ",")
			if !ok || username == "" {
				continue
			}
			list.Add(username, passengerName)
		}
	}

	r.lists[flightID] = list
	return list
}

// Save persists the list; an empty list removes its file instead.
func (r *waitlistRepository) Save(flightID string) error {
	list := r.Get(flightID)

	var b strings.Builder
	for _, e := range list.Entries {
		b.WriteString(e.Username)
		b.WriteString(",")
		b.WriteString(e.PassengerName)
		b.WriteString("\n")
	}

	if err := r.store.Overwrite(waitlistFile(flightID), b.String()); err != nil {
		r.log.Error("Failed to save waiting list",
			zap.Error(err),
			zap.String("flight_id", flightID),
		)
		return fmt.Errorf("save waiting list: %w", err)
	}
	return nil
}

func (r *waitlistRepository) Delete(flightID string) error {
	delete(r.lists, flightID)
	return r.store.Delete(waitlistFile(flightID))
}

// RemoveUserEverywhere drops the user from the waiting list of every given
// flight, used when a customer account is deleted.
func (r *waitlistRepository) RemoveUserEverywhere(username string, flightIDs []string) error {
	for _, flightID := range flightIDs {
		if r.Get(flightID).Remove(username) {
			if err := r.Save(flightID); err != nil {
				return err
			}
		}
	}
	return nil
}

func waitlistFile(flightID string) string {
	return "waitinglists/" + flightID + ".txt"
}
