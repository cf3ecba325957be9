package handler

import (
	"errors"
	"net/http"

	"drink-coffee/internal/repositories"
	"drink-coffee/pkg/logger"
)

// CatalogHandler serves the read-only product menu.
type CatalogHandler struct {
	catalogRepo repositories.CatalogRepositoryInterface
	logger      *logger.Logger
}

// NewCatalogHandler creates a new CatalogHandler with the given repository and logger
func NewCatalogHandler(catalogRepo repositories.CatalogRepositoryInterface, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogRepo: catalogRepo,
		logger:      logger.WithComponent("catalog_handler"),
	}
}

// GetMenu handles GET /api/v1/menu
func (h *CatalogHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(h.logger, w, http.StatusOK, h.catalogRepo.GetAll())
}

// GetMenuItem handles GET /api/v1/menu/{id}
func (h *CatalogHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := productIDFromPath(r)
	if err != nil {
		h.logger.Warn("Invalid product ID in path", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.catalogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			writeErrorResponse(h.logger, w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("Failed to load product", "product_id", id, "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to load product")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, product)
}
