package handler

import (
	"net/http"
	"time"

	"pawtag/internal/httputil"
	"pawtag/internal/model"
	"pawtag/internal/service"
	"pawtag/internal/transport/http/middleware"
)

// DashboardResponse is the landing view: the owner's dogs, vaccines that
// are currently due, and the unread badge count.
type DashboardResponse struct {
	User         *model.User         `json:"user"`
	Dogs         []model.Dog         `json:"dogs"`
	DueReminders []model.DueReminder `json:"due_reminders"`
	UnreadCount  int                 `json:"unread_count"`
}

// DashboardHandler assembles the dashboard from the record services.
type DashboardHandler struct {
	userService         *service.UserService
	dogService          *service.DogService
	vaccineService      *service.VaccineService
	notificationService *service.NotificationService
}

func NewDashboardHandler(
	userService *service.UserService,
	dogService *service.DogService,
	vaccineService *service.VaccineService,
	notificationService *service.NotificationService,
) *DashboardHandler {
	return &DashboardHandler{
		userService:         userService,
		dogService:          dogService,
		vaccineService:      vaccineService,
		notificationService: notificationService,
	}
}

// Get serves the dashboard. Due reminders are recomputed on every call
// with as_of = today; nothing is pushed or scheduled.
// GET /dashboard
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to load dashboard")
		return
	}

	dogs, err := h.dogService.ListDogs(r.Context(), userID)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to load dashboard")
		return
	}
	if dogs == nil {
		dogs = []model.Dog{}
	}

	due, err := h.vaccineService.DueReminders(r.Context(), userID, time.Now())
	if err != nil {
		httputil.WriteInternalError(w, "Failed to load dashboard")
		return
	}
	if due == nil {
		due = []model.DueReminder{}
	}

	unread, err := h.notificationService.UnreadCount(r.Context(), userID)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to load dashboard")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, DashboardResponse{
		User:         user,
		Dogs:         dogs,
		DueReminders: due,
		UnreadCount:  unread,
	})
}
