package model

import (
	"errors"
	"time"
)

// ReminderLeadDays is how far ahead the reminder embedded in a vaccine
// notification points: date_given + 365 days, rendered into the message at
// insert time and never re-evaluated.
const ReminderLeadDays = 365

// Vaccine represents one vaccination entry attached to a dog.
type Vaccine struct {
	ID             int64      `db:"id" json:"id"`
	DogID          int64      `db:"dog_id" json:"dog_id"`
	VaccineName    string     `db:"vaccine_name" json:"vaccine_name"`
	DateGiven      time.Time  `db:"date_given" json:"date_given"`
	NextDueDate    *time.Time `db:"next_due_date" json:"next_due_date"`
	VetName        string     `db:"vet_name" json:"vet_name"`
	CertificateURL *string    `db:"certificate_url" json:"certificate_url"`
	CertificateKey *string    `db:"certificate_key" json:"-"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// AddVaccineRequest carries the parsed form fields of a new vaccine entry.
// The certificate file is handled separately as a multipart upload.
type AddVaccineRequest struct {
	VaccineName string
	DateGiven   time.Time
	NextDueDate *time.Time
	VetName     string
}

// DueReminder is a due-query row: a vaccine joined with its dog's name.
type DueReminder struct {
	VaccineID   int64     `db:"vaccine_id" json:"vaccine_id"`
	DogID       int64     `db:"dog_id" json:"dog_id"`
	DogName     string    `db:"dog_name" json:"dog_name"`
	VaccineName string    `db:"vaccine_name" json:"vaccine_name"`
	NextDueDate time.Time `db:"next_due_date" json:"next_due_date"`
}

var (
	// ErrVaccineNotFound is returned when a vaccine id does not exist
	ErrVaccineNotFound = errors.New("vaccine not found")

	// ErrDueDateBeforeGiven is returned when next_due_date precedes date_given
	ErrDueDateBeforeGiven = errors.New("next due date must not be before date given")
)
