package service

import (
	"errors"
	"fmt"
	"time"

	"drink-coffee/internal/repositories"
	"drink-coffee/models"
	"drink-coffee/pkg/logger"
)

// Demo credential rules. The fixed account is a placeholder for a real
// identity provider, not a security boundary.
const (
	minUsernameLen = 3
	minPasswordLen = 6

	demoUsername = "testuser"
	demoPassword = "password123"
)

var (
	ErrValidation         = errors.New("username must be at least 3 characters and password at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotLoggedIn        = errors.New("not logged in")
)

// AuthServiceInterface is the simulated auth gate in front of ordering.
type AuthServiceInterface interface {
	Login(username, password string) (models.UserSession, error)
	Signup(username, password string) (models.UserSession, error)
	Logout() error
	Current() (models.UserSession, bool)
}

// AuthService validates demo credentials and owns the session lifecycle.
// Logout also clears the cart and favorites, so no per-user state leaks
// into the next login.
type AuthService struct {
	sessionRepo   repositories.SessionRepositoryInterface
	cartRepo      repositories.CartRepositoryInterface
	favoritesRepo repositories.FavoritesRepositoryInterface
	logger        *logger.Logger
}

// NewAuthService creates a new AuthService with the given repositories and logger
func NewAuthService(sessionRepo repositories.SessionRepositoryInterface, cartRepo repositories.CartRepositoryInterface, favoritesRepo repositories.FavoritesRepositoryInterface, logger *logger.Logger) *AuthService {
	return &AuthService{
		sessionRepo:   sessionRepo,
		cartRepo:      cartRepo,
		favoritesRepo: favoritesRepo,
		logger:        logger.WithComponent("auth_service"),
	}
}

// Login succeeds only for the fixed demo account. Validation failures and
// wrong credentials change no state.
func (s *AuthService) Login(username, password string) (models.UserSession, error) {
	if err := validateCredentials(username, password); err != nil {
		s.logger.Warn("Login rejected: validation failed", "username", username)
		return models.UserSession{}, err
	}

	if username != demoUsername || password != demoPassword {
		s.logger.Warn("Login rejected: invalid credentials", "username", username)
		return models.UserSession{}, ErrInvalidCredentials
	}

	session := models.UserSession{Username: username, LoggedInAt: time.Now()}
	s.sessionRepo.Establish(session)

	s.logger.Info("User logged in", "username", username)
	return session, nil
}

// Signup accepts any input passing validation and logs the user straight
// in. There is no user directory, so no uniqueness check exists.
func (s *AuthService) Signup(username, password string) (models.UserSession, error) {
	if err := validateCredentials(username, password); err != nil {
		s.logger.Warn("Signup rejected: validation failed", "username", username)
		return models.UserSession{}, err
	}

	session := models.UserSession{Username: username, LoggedInAt: time.Now()}
	s.sessionRepo.Establish(session)

	s.logger.Info("User signed up", "username", username)
	return session, nil
}

// Logout clears the session, its durable mirror, the cart and the
// favorites set.
func (s *AuthService) Logout() error {
	session, ok := s.sessionRepo.Current()
	if !ok {
		return ErrNotLoggedIn
	}

	s.sessionRepo.Clear()
	s.cartRepo.Clear()
	s.favoritesRepo.Clear()

	s.logger.Info("User logged out", "username", session.Username)
	return nil
}

// Current returns the active session, if any
func (s *AuthService) Current() (models.UserSession, bool) {
	return s.sessionRepo.Current()
}

func validateCredentials(username, password string) error {
	if len(username) < minUsernameLen || len(password) < minPasswordLen {
		return fmt.Errorf("%w", ErrValidation)
	}
	return nil
}
