package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"drink-coffee/models"
	"drink-coffee/pkg/kvstore"
	"drink-coffee/pkg/logger"
)

// currentUserKey is the durable mirror key holding the logged-in user.
const currentUserKey = "currentUser"

// SessionRepositoryInterface holds the single demo login session.
type SessionRepositoryInterface interface {
	Current() (models.UserSession, bool)
	Establish(session models.UserSession)
	Clear()
}

// SessionRepository keeps the current user session in memory and mirrors
// it to the durable key-value store so a restart keeps the user logged in.
type SessionRepository struct {
	logger *logger.Logger
	store  kvstore.Store

	mu      sync.Mutex
	current *models.UserSession
}

// NewSessionRepository creates the store and restores a mirrored session
// if one exists. Malformed mirror data is discarded and the user starts
// logged out.
func NewSessionRepository(store kvstore.Store, log *logger.Logger) *SessionRepository {
	r := &SessionRepository{
		logger: log.WithComponent("session_repository"),
		store:  store,
	}
	r.loadMirror()
	return r
}

// Current returns the active session, if any
func (r *SessionRepository) Current() (models.UserSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return models.UserSession{}, false
	}
	return *r.current, true
}

// Establish replaces the active session and mirrors it
func (r *SessionRepository) Establish(session models.UserSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = &session

	data, err := json.Marshal(session)
	if err != nil {
		r.logger.Error("Failed to encode session mirror", "error", err)
		return
	}
	if err := r.store.Set(context.Background(), currentUserKey, data); err != nil {
		r.logger.Warn("Failed to write session mirror", "error", err)
	}
}

// Clear drops the active session and its durable mirror
func (r *SessionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = nil
	if err := r.store.Delete(context.Background(), currentUserKey); err != nil {
		r.logger.Warn("Failed to clear session mirror", "error", err)
	}
}

func (r *SessionRepository) loadMirror() {
	data, err := r.store.Get(context.Background(), currentUserKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return
	}
	if err != nil {
		r.logger.Warn("Failed to read session mirror", "error", err)
		return
	}

	var session models.UserSession
	if err := json.Unmarshal(data, &session); err != nil || session.Username == "" {
		// Corrupt entry: drop it and treat the user as logged out
		r.logger.Warn("Discarding malformed session mirror", "error", err)
		if delErr := r.store.Delete(context.Background(), currentUserKey); delErr != nil {
			r.logger.Warn("Failed to delete malformed session mirror", "error", delErr)
		}
		return
	}

	r.current = &session
	r.logger.Info("Session restored from mirror", "username", session.Username)
}
