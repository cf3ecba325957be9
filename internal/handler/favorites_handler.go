package handler

import (
	"errors"
	"net/http"

	"drink-coffee/internal/repositories"
	"drink-coffee/internal/service"
	"drink-coffee/pkg/logger"
)

// FavoritesHandler serves the favorites list.
type FavoritesHandler struct {
	favoritesService service.FavoritesServiceInterface
	logger           *logger.Logger
}

// NewFavoritesHandler creates a new FavoritesHandler with the given service and logger
func NewFavoritesHandler(favoritesService service.FavoritesServiceInterface, logger *logger.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
		logger:           logger.WithComponent("favorites_handler"),
	}
}

// List handles GET /api/v1/favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(h.logger, w, http.StatusOK, h.favoritesService.List())
}

// Toggle handles POST /api/v1/favorites/{id}/toggle
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := productIDFromPath(r)
	if err != nil {
		h.logger.Warn("Invalid product ID in path", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	favorite, err := h.favoritesService.Toggle(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			writeErrorResponse(h.logger, w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("Failed to toggle favorite", "product_id", id, "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to toggle favorite")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]interface{}{
		"product_id": id,
		"favorite":   favorite,
	})
}
