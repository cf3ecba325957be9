package handler

import (
	"net/http"

	"drink-coffee/internal/service"
	"drink-coffee/pkg/logger"

	"github.com/gorilla/mux"
)

// RequireSession gates a route group on a live login session. The ordering
// surface sits behind the auth gate; unauthenticated requests get 401.
func RequireSession(authService service.AuthServiceInterface, log *logger.Logger) mux.MiddlewareFunc {
	log = log.WithComponent("auth_gate")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := authService.Current(); !ok {
				log.Warn("Blocked unauthenticated request", "path", r.URL.Path)
				writeErrorResponse(log, w, http.StatusUnauthorized, "Login required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
