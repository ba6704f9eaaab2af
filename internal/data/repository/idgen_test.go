package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIDGeneratorStartsFromDefaultSeed(t *testing.T) {
	gen := NewIDGenerator(newTestStore(t), zap.NewNop())

	assert.Equal(t, "FL10001", gen.Next(PrefixFlight))
	assert.Equal(t, "FL10002", gen.Next(PrefixFlight))
	assert.Equal(t, "RES10001", gen.Next(PrefixReservation))
}

func TestIDGeneratorSeedsFromPersistedIDs(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append("flights.txt", "FL10007,Cebu Pacific,PL-320,40,40,Manila,08:00,10:30,On Time"))
	require.NoError(t, store.Append("flights.txt", "FL10003,PAL,PL-321,40,40,Cebu,09:00,11:00,On Time"))
	require.NoError(t, store.Append("reservations.txt", "RES10042,Juan,FL10007,Cebu Pacific,Manila,1A,Confirmed,juan,GCash: 0917"))

	gen := NewIDGenerator(store, zap.NewNop())

	assert.Equal(t, "FL10008", gen.Next(PrefixFlight))
	assert.Equal(t, "RES10043", gen.Next(PrefixReservation))
}

func TestIDGeneratorIgnoresForeignLines(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append("flights.txt", "garbage line"))
	require.NoError(t, store.Append("flights.txt", "FLxyz,bad,numeric,part"))

	gen := NewIDGenerator(store, zap.NewNop())
	assert.Equal(t, "FL10001", gen.Next(PrefixFlight))
}
