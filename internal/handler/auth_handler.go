package handler

import (
	"errors"
	"net/http"

	"drink-coffee/internal/service"
	"drink-coffee/pkg/logger"
)

// CredentialsRequest is the login/signup request body.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthHandler serves the simulated auth gate.
type AuthHandler struct {
	authService service.AuthServiceInterface
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler with the given service and logger
func NewAuthHandler(authService service.AuthServiceInterface, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger.WithComponent("auth_handler"),
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for login", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		writeErrorResponse(h.logger, w, authStatusCode(err), err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, session)
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for signup", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.authService.Signup(req.Username, req.Password)
	if err != nil {
		writeErrorResponse(h.logger, w, authStatusCode(err), err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusCreated, session)
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(); err != nil {
		writeErrorResponse(h.logger, w, http.StatusUnauthorized, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// GetSession handles GET /api/v1/auth/session
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.authService.Current()
	if !ok {
		writeErrorResponse(h.logger, w, http.StatusUnauthorized, "Not logged in")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, session)
}

func authStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
