// Package qr builds the QR identity tag for a dog. The payload is the
// dog's public profile URL, so the tag only becomes generatable once the
// dog row has a persisted id.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ImageSize is the side length in pixels of the generated PNG.
const ImageSize = 256

// ProfileURL returns the public profile URL encoded into a dog's tag.
func ProfileURL(publicBaseURL string, dogID int64) string {
	return fmt.Sprintf("%s/dogs/%d/profile", publicBaseURL, dogID)
}

// Key returns the stable storage key for a dog's tag. Regenerating a tag
// overwrites the previous artifact at this key.
func Key(dogID int64) string {
	return fmt.Sprintf("qr/dog_%d.png", dogID)
}

// Encode renders the payload as PNG bytes. The output is deterministic:
// the same payload always produces identical bytes.
func Encode(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, ImageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
