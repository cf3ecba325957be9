package handler

import (
	"net/http"

	"drink-coffee/internal/notify"
	"drink-coffee/pkg/logger"
)

// NotificationHandler serves the live notice feed.
type NotificationHandler struct {
	notifier *notify.Notifier
	logger   *logger.Logger
}

// NewNotificationHandler creates a new NotificationHandler with the given notifier and logger
func NewNotificationHandler(notifier *notify.Notifier, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
		logger:   logger.WithComponent("notification_handler"),
	}
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(h.logger, w, http.StatusOK, h.notifier.Active())
}
