package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"pawtag/internal/model"
	"pawtag/internal/repository"
)

// VaccineService handles vaccination records and their reminders.
type VaccineService struct {
	db          *sqlx.DB
	vaccineRepo repository.VaccineRepository
	notifRepo   repository.NotificationRepository
	dogRepo     repository.DogRepository
}

func NewVaccineService(
	db *sqlx.DB,
	vaccineRepo repository.VaccineRepository,
	notifRepo repository.NotificationRepository,
	dogRepo repository.DogRepository,
) *VaccineService {
	return &VaccineService{
		db:          db,
		vaccineRepo: vaccineRepo,
		notifRepo:   notifRepo,
		dogRepo:     dogRepo,
	}
}

// AddVaccine records a vaccination for an owned dog and, in the same
// transaction, inserts a reminder notification for the owner. The reminder
// message embeds date_given + 365 days, rendered now and never
// re-evaluated.
func (s *VaccineService) AddVaccine(ctx context.Context, requesterID, dogID int64, req *model.AddVaccineRequest, certificate *model.UploadResult) (*model.Vaccine, error) {
	dog, err := s.dogRepo.GetByID(ctx, dogID)
	if err != nil {
		return nil, err
	}
	if dog.OwnerID != requesterID {
		return nil, model.ErrNotDogOwner
	}

	if strings.TrimSpace(req.VaccineName) == "" {
		return nil, fmt.Errorf("vaccine name is required")
	}
	if req.DateGiven.IsZero() {
		return nil, fmt.Errorf("date given is required")
	}
	if req.NextDueDate != nil && req.NextDueDate.Before(req.DateGiven) {
		return nil, model.ErrDueDateBeforeGiven
	}

	vaccine := &model.Vaccine{
		DogID:       dogID,
		VaccineName: strings.TrimSpace(req.VaccineName),
		DateGiven:   req.DateGiven,
		NextDueDate: req.NextDueDate,
		VetName:     req.VetName,
	}
	if certificate != nil {
		vaccine.CertificateURL = &certificate.URL
		vaccine.CertificateKey = &certificate.Key
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.vaccineRepo.Create(ctx, tx, vaccine); err != nil {
		return nil, err
	}

	message := ReminderMessage(dog.Name, vaccine.VaccineName, vaccine.DateGiven)
	if err := s.notifRepo.Create(ctx, tx, dog.OwnerID, message); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return vaccine, nil
}

// ReminderMessage renders the stored reminder text for a vaccine entry.
func ReminderMessage(dogName, vaccineName string, dateGiven time.Time) string {
	due := dateGiven.AddDate(0, 0, model.ReminderLeadDays)
	return fmt.Sprintf("%s is due for the next %s vaccine on %s",
		dogName, vaccineName, due.Format("2006-01-02"))
}

// ListByDog returns the vaccination history of an owned dog.
func (s *VaccineService) ListByDog(ctx context.Context, requesterID, dogID int64) ([]model.Vaccine, error) {
	dog, err := s.dogRepo.GetByID(ctx, dogID)
	if err != nil {
		return nil, err
	}
	if dog.OwnerID != requesterID {
		return nil, model.ErrNotDogOwner
	}
	return s.vaccineRepo.ListByDog(ctx, dogID)
}

// DueReminders is the pull-based due query: recomputed on every call,
// nothing is pushed.
func (s *VaccineService) DueReminders(ctx context.Context, ownerID int64, asOf time.Time) ([]model.DueReminder, error) {
	return s.vaccineRepo.DueForOwner(ctx, ownerID, asOf)
}
