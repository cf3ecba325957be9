package repositories

import (
	"context"
	"testing"
	"time"

	"drink-coffee/models"
	"drink-coffee/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionEstablishAndClear(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	repo := NewSessionRepository(kv, testLogger())

	_, ok := repo.Current()
	assert.False(t, ok)

	repo.Establish(models.UserSession{Username: "testuser", LoggedInAt: time.Now()})

	session, ok := repo.Current()
	require.True(t, ok)
	assert.Equal(t, "testuser", session.Username)

	repo.Clear()
	_, ok = repo.Current()
	assert.False(t, ok)
	_, err := kv.Get(context.Background(), "currentUser")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestSessionSurvivesRestart(t *testing.T) {
	kv := kvstore.NewMemoryStore()

	first := NewSessionRepository(kv, testLogger())
	first.Establish(models.UserSession{Username: "testuser", LoggedInAt: time.Now()})

	second := NewSessionRepository(kv, testLogger())
	session, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, "testuser", session.Username)
}

func TestMalformedSessionMirrorMeansLoggedOut(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(context.Background(), "currentUser", []byte("###")))

	repo := NewSessionRepository(kv, testLogger())

	_, ok := repo.Current()
	assert.False(t, ok, "corrupt mirror data is treated as logged out")

	_, err := kv.Get(context.Background(), "currentUser")
	assert.ErrorIs(t, err, kvstore.ErrNotFound, "the corrupt entry is removed")
}
