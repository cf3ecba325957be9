package router

import (
	"net/http"

	"drink-coffee/internal/handler"

	"github.com/gorilla/mux"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Catalog       *handler.CatalogHandler
	Auth          *handler.AuthHandler
	Cart          *handler.CartHandler
	Payment       *handler.PaymentHandler
	Favorites     *handler.FavoritesHandler
	Notifications *handler.NotificationHandler
	AuthGate      mux.MiddlewareFunc
}

// New builds the API router. The menu and the auth endpoints are public;
// everything that touches cart, checkout, payment or favorites sits behind
// the auth gate.
func New(h Handlers) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public surface
	api.HandleFunc("/menu", h.Catalog.GetMenu).Methods(http.MethodGet)
	api.HandleFunc("/menu/{id}", h.Catalog.GetMenuItem).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/session", h.Auth.GetSession).Methods(http.MethodGet)

	// Ordering surface, gated on a live session
	gated := api.NewRoute().Subrouter()
	gated.Use(h.AuthGate)

	gated.HandleFunc("/cart", h.Cart.GetCart).Methods(http.MethodGet)
	gated.HandleFunc("/cart/items", h.Cart.AddItem).Methods(http.MethodPost)
	gated.HandleFunc("/cart/items/{id}", h.Cart.RemoveItem).Methods(http.MethodDelete)
	gated.HandleFunc("/cart/checkout", h.Cart.Checkout).Methods(http.MethodPost)

	gated.HandleFunc("/payments/{id}", h.Payment.GetPayment).Methods(http.MethodGet)
	gated.HandleFunc("/payments/{id}/method", h.Payment.SelectMethod).Methods(http.MethodPost)
	gated.HandleFunc("/payments/{id}/confirm", h.Payment.Confirm).Methods(http.MethodPost)
	gated.HandleFunc("/payments/{id}", h.Payment.Abandon).Methods(http.MethodDelete)

	gated.HandleFunc("/favorites", h.Favorites.List).Methods(http.MethodGet)
	gated.HandleFunc("/favorites/{id}/toggle", h.Favorites.Toggle).Methods(http.MethodPost)

	gated.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)

	return r
}
