package model

import (
	"errors"
	"time"
)

// Dog represents a registered dog profile.
//
// QRCodeURL/QRCodeKey stay empty until the row has a persisted id: the QR
// payload embeds the id in the public profile URL, so the tag is generated
// in a second step after the insert.
type Dog struct {
	ID           int64     `db:"id" json:"id"`
	OwnerID      int64     `db:"owner_id" json:"owner_id"`
	Name         string    `db:"name" json:"name"`
	Breed        string    `db:"breed" json:"breed"`
	Color        string    `db:"color" json:"color"`
	Gender       string    `db:"gender" json:"gender"`
	Age          int       `db:"age" json:"age"`
	PhotoURL     *string   `db:"photo_url" json:"photo_url"`
	PhotoKey     *string   `db:"photo_key" json:"-"`
	QRCodeURL    *string   `db:"qr_code_url" json:"qr_code_url"`
	QRCodeKey    *string   `db:"qr_code_key" json:"-"`
	IsLost       bool      `db:"is_lost" json:"is_lost"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
}

// AddDogRequest represents the fields of a new dog profile. The photo is
// handled separately as a multipart upload.
type AddDogRequest struct {
	Name   string `json:"name"`
	Breed  string `json:"breed"`
	Color  string `json:"color"`
	Gender string `json:"gender"`
	Age    int    `json:"age"`
}

// SetLostRequest toggles the lost flag on a dog profile.
type SetLostRequest struct {
	IsLost bool `json:"is_lost"`
}

// DogProfile is the public, unauthenticated view of a dog. It includes the
// owner's contact fields so whoever scans a tag can reach the owner.
type DogProfile struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Breed        string    `json:"breed"`
	Color        string    `json:"color"`
	Gender       string    `json:"gender"`
	Age          int       `json:"age"`
	PhotoURL     *string   `json:"photo_url"`
	IsLost       bool      `json:"is_lost"`
	OwnerName    string    `json:"owner_name"`
	OwnerContact *string   `json:"owner_contact"`
	RegisteredAt time.Time `json:"registered_at"`
}

var (
	// ErrDogNotFound is returned when a dog id does not exist
	ErrDogNotFound = errors.New("dog not found")

	// ErrNotDogOwner is returned when the caller does not own the dog
	ErrNotDogOwner = errors.New("not the owner of this dog")
)
