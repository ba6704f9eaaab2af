package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWaitlistRepositoryQueueOrderSurvivesReload(t *testing.T) {
	store := newTestStore(t)
	log := zap.NewNop()

	repo := NewWaitlistRepository(store, log)
	list := repo.Get("FL10001")
	list.Add("juan", "Juan Dela Cruz")
	list.Add("maria", "Maria Clara")
	require.NoError(t, repo.Save("FL10001"))

	reloaded := NewWaitlistRepository(store, log)
	got := reloaded.Get("FL10001")
	require.Len(t, got.Entries, 2)

	next, ok := got.Next()
	require.True(t, ok)
	assert.Equal(t, "juan", next.Username)
	assert.Equal(t, "Juan Dela Cruz", next.PassengerName)
}

func TestWaitlistRepositoryEmptyListRemovesFile(t *testing.T) {
	store := newTestStore(t)
	log := zap.NewNop()

	repo := NewWaitlistRepository(store, log)
	repo.Get("FL10001").Add("juan", "Juan Dela Cruz")
	require.NoError(t, repo.Save("FL10001"))
	assert.True(t, store.Exists("waitinglists/FL10001.txt"))

	repo.Get("FL10001").Remove("juan")
	require.NoError(t, repo.Save("FL10001"))
	assert.False(t, store.Exists("waitinglists/FL10001.txt"))
}

func TestWaitlistRepositoryRemoveUserEverywhere(t *testing.T) {
	store := newTestStore(t)
	log := zap.NewNop()

	seeded := NewWaitlistRepository(store, log)
	seeded.Get("FL10001").Add("juan", "Juan Dela Cruz")
	seeded.Get("FL10001").Add("maria", "Maria Clara")
	seeded.Get("FL10002").Add("juan", "Juan Dela Cruz")
	require.NoError(t, seeded.Save("FL10001"))
	require.NoError(t, seeded.Save("FL10002"))

	// a fresh repository has loaded nothing yet; removal must still reach
	// the persisted lists
	repo := NewWaitlistRepository(store, log)
	require.NoError(t, repo.RemoveUserEverywhere("juan", []string{"FL10001", "FL10002"}))

	reloaded := NewWaitlistRepository(store, log)
	require.Len(t, reloaded.Get("FL10001").Entries, 1)
	assert.Equal(t, "maria", reloaded.Get("FL10001").Entries[0].Username)
	assert.True(t, reloaded.Get("FL10002").IsEmpty())
}

func TestWaitlistRepositoryDelete(t *testing.T) {
	store := newTestStore(t)
	repo := NewWaitlistRepository(store, zap.NewNop())

	repo.Get("FL10001").Add("juan", "Juan Dela Cruz")
	require.NoError(t, repo.Save("FL10001"))

	require.NoError(t, repo.Delete("FL10001"))
	assert.False(t, store.Exists("waitinglists/FL10001.txt"))
	assert.True(t, repo.Get("FL10001").IsEmpty())
}
