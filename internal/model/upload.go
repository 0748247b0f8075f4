package model

import (
	"errors"
	"path/filepath"
	"strings"
)

const (
	MaxUploadSizeBytes = 5 * 1024 * 1024 // 5MB per file

	// Dog photos are normalized to fit within this box before storage.
	PhotoMaxWidth  = 800
	PhotoMaxHeight = 800

	PhotoFolder       = "photos"
	CertificateFolder = "certificates"
	PhotoExt          = ".jpg"
	ContentTypeJPEG   = "image/jpeg"
	ContentTypePNG    = "image/png"
)

// allowedImageExts is the upload allow-list. A file with any other
// extension is skipped silently, not rejected.
var allowedImageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// IsAllowedImageExt reports whether the filename carries an allowed image
// extension (png/jpg/jpeg/gif, case-insensitive).
func IsAllowedImageExt(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedImageExts[ext]
	return ok
}

// UploadResult holds where a stored file ended up.
type UploadResult struct {
	URL string
	Key string
}

// Error codes for HTTP responses
const (
	CodeFileTooLarge = "FILE_TOO_LARGE"
)

var (
	ErrFileTooLarge = errors.New("file too large")
)
