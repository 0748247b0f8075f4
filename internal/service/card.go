package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"

	"pawtag/internal/logger"
	"pawtag/internal/model"
	"pawtag/internal/repository"
	"pawtag/internal/storage"
)

// Card dimensions follow the ID-1 format (credit card size), in mm.
const (
	cardWidth  = 85.60
	cardHeight = 53.98
)

// CardService renders the printable ID card for a dog: a fixed-size PDF
// with the dog's photo, identity fields, owner contact and the QR tag.
// The document is returned for inline display, never persisted.
type CardService struct {
	dogRepo  repository.DogRepository
	userRepo repository.UserRepository
	store    storage.Store
}

func NewCardService(dogRepo repository.DogRepository, userRepo repository.UserRepository, store storage.Store) *CardService {
	return &CardService{
		dogRepo:  dogRepo,
		userRepo: userRepo,
		store:    store,
	}
}

// GenerateIDCard builds the card PDF. Only the dog's owner may request it.
// Photo and QR embedding are best-effort: a missing or unreadable file is
// logged and skipped, the card is still produced.
func (s *CardService) GenerateIDCard(ctx context.Context, dogID, requesterID int64) ([]byte, error) {
	dog, err := s.dogRepo.GetByID(ctx, dogID)
	if err != nil {
		return nil, err
	}
	if dog.OwnerID != requesterID {
		return nil, model.ErrNotDogOwner
	}

	owner, err := s.userRepo.GetByID(ctx, dog.OwnerID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: cardWidth, Ht: cardHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	// Border and header band
	pdf.SetLineWidth(0.4)
	pdf.Rect(1.5, 1.5, cardWidth-3, cardHeight-3, "D")
	pdf.SetFillColor(40, 86, 166)
	pdf.Rect(1.5, 1.5, cardWidth-3, 8, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(4, 7, "PAWTAG DOG ID")
	pdf.SetTextColor(0, 0, 0)

	// Photo on the left, QR bottom-right
	if dog.PhotoKey != nil {
		s.embedJPEG(ctx, pdf, *dog.PhotoKey, "photo", 4, 12, 24, 24)
	}
	if dog.QRCodeKey != nil {
		s.embedJPEG(ctx, pdf, *dog.QRCodeKey, "qrtag", cardWidth-21, cardHeight-21, 17, 17)
	}

	// Dog fields
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(31, 16, dog.Name)
	pdf.SetFont("Helvetica", "", 6.5)
	pdf.Text(31, 21, fmt.Sprintf("Breed: %s", dog.Breed))
	pdf.Text(31, 25, fmt.Sprintf("Color: %s", dog.Color))
	pdf.Text(31, 29, fmt.Sprintf("Gender: %s", dog.Gender))

	// Owner fields
	pdf.SetFont("Helvetica", "B", 6.5)
	pdf.Text(4, 42, "Owner")
	pdf.SetFont("Helvetica", "", 6.5)
	pdf.Text(4, 46, owner.FullName)
	if owner.ContactNumber != nil {
		pdf.Text(4, 50, *owner.ContactNumber)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render id card: %w", err)
	}
	return buf.Bytes(), nil
}

// embedJPEG reads a stored image and draws it at the given box. The bytes
// are re-encoded through imaging first, so a corrupt file is caught here
// instead of poisoning the pdf's internal error state. Any failure is an
// IO warning: logged, skipped, never fatal to the card.
func (s *CardService) embedJPEG(ctx context.Context, pdf *gofpdf.Fpdf, key, name string, x, y, w, h float64) {
	data, err := s.store.Read(ctx, key)
	if err != nil {
		logger.Log.Warnw("id card image unreadable, skipping", "key", key, "error", err)
		return
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Log.Warnw("id card image undecodable, skipping", "key", key, "error", err)
		return
	}

	var jpg bytes.Buffer
	if err := imaging.Encode(&jpg, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		logger.Log.Warnw("id card image re-encode failed, skipping", "key", key, "error", err)
		return
	}

	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader(name, opts, &jpg)
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}
