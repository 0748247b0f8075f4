package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pawtag/internal/httputil"
	"pawtag/internal/model"
	"pawtag/internal/service"
	"pawtag/internal/transport/http/middleware"
)

// DogHandler groups dog profile endpoints.
type DogHandler struct {
	dogService    *service.DogService
	uploadService *service.UploadService
	cardService   *service.CardService
}

func NewDogHandler(dogService *service.DogService, uploadService *service.UploadService, cardService *service.CardService) *DogHandler {
	return &DogHandler{
		dogService:    dogService,
		uploadService: uploadService,
		cardService:   cardService,
	}
}

// Create handles multipart dog registration with an optional photo.
// POST /dogs
func (h *DogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	maxFormSize := int64(model.MaxUploadSizeBytes) + 1024*1024 // allow form overhead
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			httputil.WriteBadRequest(w, "Content-Type must be multipart/form-data")
			return
		}
		httputil.WriteBadRequest(w, "Invalid form data")
		return
	}

	req := model.AddDogRequest{
		Name:   r.FormValue("name"),
		Breed:  r.FormValue("breed"),
		Color:  r.FormValue("color"),
		Gender: r.FormValue("gender"),
	}
	if ageStr := r.FormValue("age"); ageStr != "" {
		age, err := strconv.Atoi(ageStr)
		if err != nil || age < 0 {
			httputil.WriteBadRequest(w, "Age must be a non-negative number")
			return
		}
		req.Age = age
	}
	if req.Name == "" {
		httputil.WriteBadRequest(w, "Name is required")
		return
	}

	// An unusable photo leaves the reference empty; it never fails the
	// registration.
	photo := bestEffortUpload(r, "photo", h.uploadService.UploadDogPhoto)

	dog, err := h.dogService.AddDog(r.Context(), userID, &req, photo)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to add dog")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, dog)
}

// List returns the caller's dogs.
// GET /dogs
func (h *DogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	dogs, err := h.dogService.ListDogs(r.Context(), userID)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to list dogs")
		return
	}
	if dogs == nil {
		dogs = []model.Dog{}
	}

	httputil.WriteJSON(w, http.StatusOK, dogs)
}

// Get returns a single owned dog.
// GET /dogs/{id}
func (h *DogHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	dog, err := h.dogService.GetOwnedDog(r.Context(), dogID, userID)
	if err != nil {
		writeDogError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, dog)
}

// SetLost toggles the lost flag on an owned dog.
// PATCH /dogs/{id}/lost
func (h *DogHandler) SetLost(w http.ResponseWriter, r *http.Request) {
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

	var req model.SetLostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	dog, err := h.dogService.SetLost(r.Context(), dogID, userID, req.IsLost)
	if err != nil {
		writeDogError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, dog)
}

// PublicProfile serves the unauthenticated profile behind a scanned tag.
// GET /dogs/{id}/profile
func (h *DogHandler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	dogID, err := parseIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid dog id")
		return
	}

	profile, err := h.dogService.PublicProfile(r.Context(), dogID)
	if err != nil {
		if errors.Is(err, model.ErrDogNotFound) {
			httputil.WriteNotFound(w, "Dog not found")
			return
		}
		httputil.WriteInternalError(w, "Failed to load profile")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// Card streams the printable ID card PDF for inline display.
// GET /dogs/{id}/card
func (h *DogHandler) Card(w http.ResponseWriter, r *http.Request) {
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

	pdf, err := h.cardService.GenerateIDCard(r.Context(), dogID, userID)
	if err != nil {
		writeDogError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="dog_%d_id_card.pdf"`, dogID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// RegenerateQR rebuilds the QR tag for an owned dog.
// POST /dogs/{id}/qr
func (h *DogHandler) RegenerateQR(w http.ResponseWriter, r *http.Request) {
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

	dog, err := h.dogService.GenerateQR(r.Context(), dogID, userID)
	if err != nil {
		writeDogError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, dog)
}

func writeDogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrDogNotFound):
		httputil.WriteNotFound(w, "Dog not found")
	case errors.Is(err, model.ErrNotDogOwner):
		httputil.WriteForbidden(w, "You do not own this dog")
	default:
		httputil.WriteInternalError(w, "Something went wrong")
	}
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
