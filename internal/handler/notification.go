package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pawtag/internal/httputil"
	"pawtag/internal/model"
	"pawtag/internal/service"
	"pawtag/internal/transport/http/middleware"
)

// NotificationHandler groups the reminder inbox endpoints.
type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List returns the caller's notifications plus the unread count.
// GET /notifications?limit=20
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			limit = parsed
		}
	}

	resp, err := h.notificationService.List(r.Context(), userID, limit)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to list notifications")
		return
	}
	if resp.Notifications == nil {
		resp.Notifications = []model.Notification{}
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// MarkRead marks one notification read; only its owner may do so.
// POST /notifications/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	var req model.MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.NotificationID == 0 {
		httputil.WriteBadRequest(w, "notification_id is required")
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), userID, req.NotificationID); err != nil {
		switch {
		case errors.Is(err, model.ErrNotificationNotFound):
			httputil.WriteNotFound(w, "Notification not found")
		case errors.Is(err, model.ErrNotNotificationOwner):
			httputil.WriteForbidden(w, "You do not own this notification")
		default:
			httputil.WriteInternalError(w, "Failed to mark notification read")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

// MarkAllRead marks every notification of the caller read.
// POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	if err := h.notificationService.MarkAllRead(r.Context(), userID); err != nil {
		httputil.WriteInternalError(w, "Failed to mark notifications read")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "read"})
}
