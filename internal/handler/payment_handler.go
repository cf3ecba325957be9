package handler

import (
	"errors"
	"net/http"

	"drink-coffee/internal/service"
	"drink-coffee/models"
	"drink-coffee/pkg/logger"

	"github.com/gorilla/mux"
)

// SelectMethodRequest is the method selection request body.
type SelectMethodRequest struct {
	Method models.PaymentMethod `json:"method"`
}

// PaymentHandler serves the simulated payment flow.
type PaymentHandler struct {
	paymentService service.PaymentServiceInterface
	logger         *logger.Logger
}

// NewPaymentHandler creates a new PaymentHandler with the given service and logger
func NewPaymentHandler(paymentService service.PaymentServiceInterface, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger.WithComponent("payment_handler"),
	}
}

// GetPayment handles GET /api/v1/payments/{id}
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	session, err := h.paymentService.Get(mux.Vars(r)["id"])
	if err != nil {
		writeErrorResponse(h.logger, w, paymentStatusCode(err), err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, session)
}

// SelectMethod handles POST /api/v1/payments/{id}/method
func (h *PaymentHandler) SelectMethod(w http.ResponseWriter, r *http.Request) {
	var req SelectMethodRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for select method", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.paymentService.SelectMethod(mux.Vars(r)["id"], req.Method)
	if err != nil {
		writeErrorResponse(h.logger, w, paymentStatusCode(err), err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, session)
}

// Confirm handles POST /api/v1/payments/{id}/confirm
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	session, err := h.paymentService.Confirm(mux.Vars(r)["id"])
	if err != nil {
		writeErrorResponse(h.logger, w, paymentStatusCode(err), err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusAccepted, session)
}

// Abandon handles DELETE /api/v1/payments/{id}
func (h *PaymentHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.paymentService.Abandon(id); err != nil {
		writeErrorResponse(h.logger, w, paymentStatusCode(err), err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{
		"payment_id": id,
		"message":    "Payment session discarded",
	})
}

func paymentStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidMethod),
		errors.Is(err, service.ErrNoMethodSelected):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrWrongState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
