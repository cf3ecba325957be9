package handler

import (
	"errors"
	"net/http"

	"drink-coffee/internal/repositories"
	"drink-coffee/internal/service"
	"drink-coffee/pkg/logger"
)

// AddItemRequest is the add-to-cart request body.
type AddItemRequest struct {
	ProductID int `json:"product_id"`
}

// CartHandler serves the cart operations and checkout.
type CartHandler struct {
	cartService  service.CartServiceInterface
	orderService service.OrderServiceInterface
	logger       *logger.Logger
}

// NewCartHandler creates a new CartHandler with the given services and logger
func NewCartHandler(cartService service.CartServiceInterface, orderService service.OrderServiceInterface, logger *logger.Logger) *CartHandler {
	return &CartHandler{
		cartService:  cartService,
		orderService: orderService,
		logger:       logger.WithComponent("cart_handler"),
	}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(h.logger, w, http.StatusOK, h.cartService.View())
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for add item", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.cartService.AddItem(req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			writeErrorResponse(h.logger, w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("Failed to add item to cart", "product_id", req.ProductID, "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to add item")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, view)
}

// RemoveItem handles DELETE /api/v1/cart/items/{id}?force=true
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := productIDFromPath(r)
	if err != nil {
		h.logger.Warn("Invalid product ID in path", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	force := r.URL.Query().Get("force") == "true"

	view, err := h.cartService.RemoveItem(id, force)
	if err != nil {
		h.logger.Error("Failed to remove item from cart", "product_id", id, "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to remove item")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, view)
}

// Checkout handles POST /api/v1/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	payment, err := h.orderService.Checkout()
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			writeErrorResponse(h.logger, w, http.StatusConflict, "Cart is empty")
			return
		}
		h.logger.Error("Checkout failed", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Checkout failed")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusCreated, payment)
}
