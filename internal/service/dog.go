package service

import (
	"context"
	"fmt"
	"strings"

	"pawtag/internal/cache"
	"pawtag/internal/logger"
	"pawtag/internal/model"
	"pawtag/internal/qr"
	"pawtag/internal/repository"
	"pawtag/internal/storage"
)

// DogService handles dog profiles and their QR identity tags.
type DogService struct {
	dogRepo       repository.DogRepository
	userRepo      repository.UserRepository
	store         storage.Store
	profileCache  cache.ProfileCache // nil when redis is not configured
	publicBaseURL string
}

func NewDogService(
	dogRepo repository.DogRepository,
	userRepo repository.UserRepository,
	store storage.Store,
	profileCache cache.ProfileCache,
	publicBaseURL string,
) *DogService {
	return &DogService{
		dogRepo:       dogRepo,
		userRepo:      userRepo,
		store:         store,
		profileCache:  profileCache,
		publicBaseURL: publicBaseURL,
	}
}

// AddDog persists a new dog profile and then generates its QR tag. The tag
// needs the assigned id, so this is a two-step lifecycle: insert row,
// encode tag, persist the tag reference back onto the row. A tag failure
// downgrades to a warning; the profile itself is already saved.
func (s *DogService) AddDog(ctx context.Context, ownerID int64, req *model.AddDogRequest, photo *model.UploadResult) (*model.Dog, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("dog name is required")
	}

	dog := &model.Dog{
		OwnerID: ownerID,
		Name:    strings.TrimSpace(req.Name),
		Breed:   req.Breed,
		Color:   req.Color,
		Gender:  req.Gender,
		Age:     req.Age,
	}
	if photo != nil {
		dog.PhotoURL = &photo.URL
		dog.PhotoKey = &photo.Key
	}

	if err := s.dogRepo.Create(ctx, dog); err != nil {
		return nil, fmt.Errorf("failed to create dog: %w", err)
	}

	if err := s.generateQR(ctx, dog); err != nil {
		logger.Log.Warnw("qr generation failed, dog saved without tag",
			"dog_id", dog.ID, "error", err)
	}

	return dog, nil
}

// GenerateQR (re)builds the tag for an existing dog. Idempotent: the
// artifact lives at a stable per-dog key and is overwritten in place.
func (s *DogService) GenerateQR(ctx context.Context, dogID, requesterID int64) (*model.Dog, error) {
	dog, err := s.GetOwnedDog(ctx, dogID, requesterID)
	if err != nil {
		return nil, err
	}
	if err := s.generateQR(ctx, dog); err != nil {
		return nil, err
	}
	return dog, nil
}

func (s *DogService) generateQR(ctx context.Context, dog *model.Dog) error {
	png, err := qr.Encode(qr.ProfileURL(s.publicBaseURL, dog.ID))
	if err != nil {
		return err
	}

	key := qr.Key(dog.ID)
	if err := s.store.Save(ctx, key, png, model.ContentTypePNG); err != nil {
		return fmt.Errorf("failed to store qr tag: %w", err)
	}

	url := s.store.URL(key)
	if err := s.dogRepo.SetQRCode(ctx, dog.ID, url, key); err != nil {
		return err
	}
	dog.QRCodeURL = &url
	dog.QRCodeKey = &key
	return nil
}

// ListDogs returns all dogs owned by the user.
func (s *DogService) ListDogs(ctx context.Context, ownerID int64) ([]model.Dog, error) {
	return s.dogRepo.ListByOwner(ctx, ownerID)
}

// GetOwnedDog fetches a dog and enforces ownership: a dog that exists but
// belongs to someone else is a 403, not a 404.
func (s *DogService) GetOwnedDog(ctx context.Context, dogID, requesterID int64) (*model.Dog, error) {
	dog, err := s.dogRepo.GetByID(ctx, dogID)
	if err != nil {
		return nil, err
	}
	if dog.OwnerID != requesterID {
		return nil, model.ErrNotDogOwner
	}
	return dog, nil
}

// SetLost toggles the lost flag, guarded by ownership.
func (s *DogService) SetLost(ctx context.Context, dogID, requesterID int64, lost bool) (*model.Dog, error) {
	dog, err := s.GetOwnedDog(ctx, dogID, requesterID)
	if err != nil {
		return nil, err
	}

	if err := s.dogRepo.SetLost(ctx, dogID, lost); err != nil {
		return nil, err
	}
	dog.IsLost = lost

	s.invalidateProfile(ctx, dogID)
	return dog, nil
}

// PublicProfile is the unauthenticated view behind a scanned tag. Served
// through the profile cache when redis is configured.
func (s *DogService) PublicProfile(ctx context.Context, dogID int64) (*model.DogProfile, error) {
	if s.profileCache != nil {
		if profile, ok, err := s.profileCache.Get(ctx, dogID); err == nil && ok {
			return profile, nil
		}
	}

	dog, err := s.dogRepo.GetByID(ctx, dogID)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, dog.OwnerID)
	if err != nil {
		return nil, err
	}

	profile := &model.DogProfile{
		ID:           dog.ID,
		Name:         dog.Name,
		Breed:        dog.Breed,
		Color:        dog.Color,
		Gender:       dog.Gender,
		Age:          dog.Age,
		PhotoURL:     dog.PhotoURL,
		IsLost:       dog.IsLost,
		OwnerName:    owner.FullName,
		OwnerContact: owner.ContactNumber,
		RegisteredAt: dog.RegisteredAt,
	}

	if s.profileCache != nil {
		if err := s.profileCache.Set(ctx, profile); err != nil {
			logger.Log.Warnw("profile cache set failed", "dog_id", dogID, "error", err)
		}
	}

	return profile, nil
}

func (s *DogService) invalidateProfile(ctx context.Context, dogID int64) {
	if s.profileCache == nil {
		return
	}
	if err := s.profileCache.Invalidate(ctx, dogID); err != nil {
		logger.Log.Warnw("profile cache invalidation failed", "dog_id", dogID, "error", err)
	}
}
