package service

import (
	"context"
	"testing"

	"drink-coffee/internal/repositories"
	"drink-coffee/pkg/kvstore"

	"github.com/stretchr/testify/suite"
)

type AuthServiceSuite struct {
	suite.Suite

	kv            *kvstore.MemoryStore
	cartRepo      *repositories.CartRepository
	favoritesRepo *repositories.FavoritesRepository
	sessionRepo   *repositories.SessionRepository
	svc           *AuthService
}

func (s *AuthServiceSuite) SetupTest() {
	log := testLogger()
	s.kv = kvstore.NewMemoryStore()
	s.cartRepo = repositories.NewCartRepository(log)
	s.favoritesRepo = repositories.NewFavoritesRepository(s.kv, log)
	s.sessionRepo = repositories.NewSessionRepository(s.kv, log)
	s.svc = NewAuthService(s.sessionRepo, s.cartRepo, s.favoritesRepo, log)
}

func (s *AuthServiceSuite) TestLoginDemoAccount() {
	session, err := s.svc.Login("testuser", "password123")
	s.Require().NoError(err)
	s.Equal("testuser", session.Username)

	current, ok := s.svc.Current()
	s.True(ok)
	s.Equal("testuser", current.Username)

	// Session is mirrored for restart persistence
	_, err = s.kv.Get(context.Background(), "currentUser")
	s.NoError(err)
}

func (s *AuthServiceSuite) TestLoginValidationLeavesStateUntouched() {
	catalog := testCatalog(s.T())
	espresso, err := catalog.GetByID(1)
	s.Require().NoError(err)
	s.cartRepo.AddOrIncrement(espresso)

	// Username "ab" is below the three character minimum
	_, err = s.svc.Login("ab", "password123")
	s.Require().ErrorIs(err, ErrValidation)

	_, ok := s.svc.Current()
	s.False(ok, "no session may be created on validation failure")
	s.Len(s.cartRepo.Lines(), 1, "cart is untouched by a failed login")
}

func (s *AuthServiceSuite) TestLoginShortPassword() {
	_, err := s.svc.Login("testuser", "12345")
	s.Require().ErrorIs(err, ErrValidation)
}

func (s *AuthServiceSuite) TestLoginWrongCredentials() {
	_, err := s.svc.Login("testuser", "wrongpassword")
	s.Require().ErrorIs(err, ErrInvalidCredentials)

	_, ok := s.svc.Current()
	s.False(ok)
}

func (s *AuthServiceSuite) TestSignupAcceptsAnyValidInput() {
	session, err := s.svc.Signup("newcomer", "secret99")
	s.Require().NoError(err)
	s.Equal("newcomer", session.Username)

	_, ok := s.svc.Current()
	s.True(ok)
}

func (s *AuthServiceSuite) TestSignupValidation() {
	_, err := s.svc.Signup("ab", "secret99")
	s.Require().ErrorIs(err, ErrValidation)
}

func (s *AuthServiceSuite) TestLogoutClearsEverything() {
	_, err := s.svc.Login("testuser", "password123")
	s.Require().NoError(err)

	catalog := testCatalog(s.T())
	espresso, err := catalog.GetByID(1)
	s.Require().NoError(err)
	s.cartRepo.AddOrIncrement(espresso)
	s.favoritesRepo.Toggle(espresso)

	s.Require().NoError(s.svc.Logout())

	_, ok := s.svc.Current()
	s.False(ok)
	s.Empty(s.cartRepo.Lines())
	s.Empty(s.favoritesRepo.List())

	_, err = s.kv.Get(context.Background(), "currentUser")
	s.ErrorIs(err, kvstore.ErrNotFound, "the durable mirror is cleared")
	_, err = s.kv.Get(context.Background(), "coffeeFavorites")
	s.ErrorIs(err, kvstore.ErrNotFound)
}

func (s *AuthServiceSuite) TestLogoutWithoutSession() {
	s.Require().ErrorIs(s.svc.Logout(), ErrNotLoggedIn)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}
