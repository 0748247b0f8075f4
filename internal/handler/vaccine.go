package handler

import (
	"errors"
	"net/http"
	"time"

	"pawtag/internal/httputil"
	"pawtag/internal/model"
	"pawtag/internal/service"
	"pawtag/internal/transport/http/middleware"
)

const dateLayout = "2006-01-02"

// VaccineHandler groups vaccination record endpoints.
type VaccineHandler struct {
	vaccineService *service.VaccineService
	uploadService  *service.UploadService
}

func NewVaccineHandler(vaccineService *service.VaccineService, uploadService *service.UploadService) *VaccineHandler {
	return &VaccineHandler{
		vaccineService: vaccineService,
		uploadService:  uploadService,
	}
}

// Create records a vaccination for an owned dog. Multipart, with an
// optional certificate file.
// POST /dogs/{id}/vaccines
func (h *VaccineHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	dogID, err := parseIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid dog id")
		return
	}

	maxFormSize := int64(model.MaxUploadSizeBytes) + 1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			httputil.WriteBadRequest(w, "Content-Type must be multipart/form-data")
			return
		}
		httputil.WriteBadRequest(w, "Invalid form data")
		return
	}

	req := model.AddVaccineRequest{
		VaccineName: r.FormValue("vaccine_name"),
		VetName:     r.FormValue("vet_name"),
	}
	if req.VaccineName == "" {
		httputil.WriteBadRequest(w, "Vaccine name is required")
		return
	}

	dateGiven, err := time.Parse(dateLayout, r.FormValue("date_given"))
	if err != nil {
		httputil.WriteBadRequest(w, "date_given must be YYYY-MM-DD")
		return
	}
	req.DateGiven = dateGiven

	if nextDue := r.FormValue("next_due_date"); nextDue != "" {
		parsed, err := time.Parse(dateLayout, nextDue)
		if err != nil {
			httputil.WriteBadRequest(w, "next_due_date must be YYYY-MM-DD")
			return
		}
		req.NextDueDate = &parsed
	}

	certificate := bestEffortUpload(r, "certificate", h.uploadService.UploadCertificate)

	vaccine, err := h.vaccineService.AddVaccine(r.Context(), userID, dogID, &req, certificate)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrDogNotFound):
			httputil.WriteNotFound(w, "Dog not found")
		case errors.Is(err, model.ErrNotDogOwner):
			httputil.WriteForbidden(w, "You do not own this dog")
		case errors.Is(err, model.ErrDueDateBeforeGiven):
			httputil.WriteBadRequest(w, "Next due date must not be before date given")
		default:
			httputil.WriteInternalError(w, "Failed to add vaccine")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, vaccine)
}

// List returns the vaccination history of an owned dog.
// GET /dogs/{id}/vaccines
func (h *VaccineHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	dogID, err := parseIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid dog id")
		return
	}

	vaccines, err := h.vaccineService.ListByDog(r.Context(), userID, dogID)
	if err != nil {
		writeDogError(w, err)
		return
	}
	if vaccines == nil {
		vaccines = []model.Vaccine{}
	}

	httputil.WriteJSON(w, http.StatusOK, vaccines)
}

// Due runs the due query for the caller's dogs.
// GET /vaccines/due?as_of=YYYY-MM-DD (defaults to today)
func (h *VaccineHandler) Due(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	asOf := time.Now()
	if s := r.URL.Query().Get("as_of"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			httputil.WriteBadRequest(w, "as_of must be YYYY-MM-DD")
			return
		}
		asOf = parsed
	}

	due, err := h.vaccineService.DueReminders(r.Context(), userID, asOf)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to query due vaccines")
		return
	}
	if due == nil {
		due = []model.DueReminder{}
	}

	httputil.WriteJSON(w, http.StatusOK, due)
}
