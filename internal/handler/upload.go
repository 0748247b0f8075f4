package handler

import (
	"context"
	"mime/multipart"
	"net/http"

	"pawtag/internal/logger"
	"pawtag/internal/model"
)

type uploadFunc func(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.UploadResult, error)

// bestEffortUpload applies the extension allow-list and stores the file.
// A missing, disallowed or failing upload is skipped silently (logged as
// a warning), leaving the reference empty - it never fails the enclosing
// operation.
func bestEffortUpload(r *http.Request, field string, fn uploadFunc) *model.UploadResult {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err != http.ErrMissingFile {
			logger.Log.Warnw("unreadable upload skipped", "field", field, "error", err)
		}
		return nil
	}
	defer file.Close()

	if !model.IsAllowedImageExt(header.Filename) {
		logger.Log.Warnw("upload skipped: extension not allowed",
			"field", field, "filename", header.Filename)
		return nil
	}

	result, err := fn(r.Context(), file, header)
	if err != nil {
		logger.Log.Warnw("upload failed, skipped", "field", field, "error", err)
		return nil
	}
	return result
}
