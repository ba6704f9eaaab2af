package repository

import (
	"strconv"
	"strings"

	"airline-reservation/pkg/database"

	"go.uber.org/zap"
)

const (
	PrefixFlight      = "FL"
	PrefixReservation = "RES"
)

var idSources = map[string]string{
	PrefixFlight:      "flights.txt",
	PrefixReservation: "reservations.txt",
}

// IDGenerator hands out FL10001-style ids. A counter is seeded lazily by
// scanning the persisted file for the highest existing id of its prefix, so
// ids stay unique across restarts. The whole store assumes one process and
// one writer; nothing here is safe against concurrent instances.
type IDGenerator struct {
	store    database.Store
	log      *zap.Logger
	counters map[string]int
}

func NewIDGenerator(store database.Store, log *zap.Logger) *IDGenerator {
	return &IDGenerator{
		store:    store,
		log:      log.With(zap.String("repository", "idgen")),
		counters: make(map[string]int),
	}
}

func (g *IDGenerator) Next(prefix string) string {
	if _, ok := g.counters[prefix]; !ok {
		g.counters[prefix] = g.seed(prefix)
	}

	g.counters[prefix]++
	return prefix + strconv.Itoa(g.counters[prefix])
}

func (g *IDGenerator) seed(prefix string) int {
	highest := 10000

	file, ok := idSources[prefix]
	if !ok {
		return highest
	}

	data, err := g.store.Load(file)
	if err != nil {
		g.log.Warn("Failed to scan ids, using default seed",
			zap.Error(err),
			zap.String("prefix", prefix),
		)
		return highest
	}

	for _, line := range strings.Split(data, "\n") {
		id, _, _ := strings.Cut(line, ",")
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	return highest
}
