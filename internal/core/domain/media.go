package domain

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// MediaPlaceholder replaces the raw media payload in persisted form
// snapshots once the upload has succeeded.
const MediaPlaceholder = "[uploaded]"

// EncodeMedia reads the source media and encodes it as a base64 data URL so
// it can travel inside a JSON submission. mimeType should be the media's
// content type, e.g. "image/jpeg".
func EncodeMedia(r io.Reader, mimeType string) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", &EncodingError{Err: err}
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw)), nil
}

// DecodeMediaPayload splits a data URL at its comma separator, discards the
// MIME prefix and decodes the payload back into raw bytes for upload.
func DecodeMediaPayload(dataURL string) ([]byte, error) {
	_, payload, found := strings.Cut(dataURL, ",")
	if !found || payload == "" {
		return nil, ErrInvalidMediaPayload
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMediaPayload, err)
	}
	return raw, nil
}
