package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"pawtag/internal/model"
	"pawtag/internal/storage"
)

// UploadService stores incoming files through the configured storage
// backend. Callers are expected to have applied the extension allow-list
// already; a disallowed upload is skipped at the handler, never an error.
type UploadService struct {
	store storage.Store
}

func NewUploadService(store storage.Store) *UploadService {
	return &UploadService{store: store}
}

// UploadDogPhoto reads, normalizes and stores a dog photo. The image is
// re-encoded as JPEG bounded to 800x800 so arbitrary uploads cannot blow
// up storage or the ID card renderer.
func (s *UploadService) UploadDogPhoto(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.UploadResult, error) {
	data, err := readUpload(file, header, model.MaxUploadSizeBytes)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	resized := imaging.Fit(img, model.PhotoMaxWidth, model.PhotoMaxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}

	key := fmt.Sprintf("%s/%s%s", model.PhotoFolder, uuid.NewString(), model.PhotoExt)
	if err := s.store.Save(ctx, key, buf.Bytes(), model.ContentTypeJPEG); err != nil {
		return nil, err
	}

	return &model.UploadResult{URL: s.store.URL(key), Key: key}, nil
}

// UploadCertificate stores a vaccine certificate as-is, keyed by a fresh
// uuid with the original extension.
func (s *UploadService) UploadCertificate(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.UploadResult, error) {
	data, err := readUpload(file, header, model.MaxUploadSizeBytes)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("%s/%s%s", model.CertificateFolder, uuid.NewString(), ext)
	if err := s.store.Save(ctx, key, data, contentTypeForExt(ext)); err != nil {
		return nil, err
	}

	return &model.UploadResult{URL: s.store.URL(key), Key: key}, nil
}

// readUpload loads the upload into memory with a size cap.
func readUpload(file multipart.File, header *multipart.FileHeader, maxSize int64) ([]byte, error) {
	if header.Size > maxSize {
		return nil, model.ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, model.ErrFileTooLarge
	}
	return data, nil
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return model.ContentTypePNG
	case ".gif":
		return "image/gif"
	default:
		return model.ContentTypeJPEG
	}
}
