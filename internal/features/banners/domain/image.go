package domain

import (
	"fmt"
	"mime"
	"strings"
	"time"
)

const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"

	// MaxUploadBytes is the default upload size limit (5 MiB).
	MaxUploadBytes int64 = 5 * 1024 * 1024
)

// UploadFile is a single file received at the file input boundary.
type UploadFile struct {
	Name      string
	MimeType  string
	SizeBytes int64
	Bytes     []byte
}

// Size returns the larger of the declared size and the attached byte length.
func (f UploadFile) Size() int64 {
	if n := int64(len(f.Bytes)); n > f.SizeBytes {
		return n
	}
	return f.SizeBytes
}

// MediaType returns the declared mime type without parameters, lowercased.
func (f UploadFile) MediaType() string {
	mt, _, err := mime.ParseMediaType(f.MimeType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(f.MimeType))
	}
	return mt
}

// ValidationError reports why an upload was rejected. Reason is ErrInvalidMimeType or ErrFileTooLarge.
type ValidationError struct {
	Reason error
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// ValidateMimeType accepts png and jpeg uploads only.
func ValidateMimeType(f UploadFile) error {
	switch mt := f.MediaType(); mt {
	case MimePNG, MimeJPEG:
		return nil
	default:
		return &ValidationError{Reason: ErrInvalidMimeType, Detail: fmt.Sprintf("%q is not png or jpeg", mt)}
	}
}

// ValidateSize rejects uploads larger than maxBytes.
func ValidateSize(f UploadFile, maxBytes int64) error {
	if size := f.Size(); size > maxBytes {
		return &ValidationError{Reason: ErrFileTooLarge, Detail: fmt.Sprintf("%d bytes exceeds %d", size, maxBytes)}
	}
	return nil
}

// ImageResource is an uploaded background image reachable through a revocable access URL.
type ImageResource struct {
	ID         string    `json:"id"`
	AccessURL  string    `json:"access_url"`
	Name       string    `json:"name,omitempty"`
	MimeType   string    `json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Blob is the stored payload behind an access URL.
type Blob struct {
	MimeType string `json:"mime_type"`
	Data     []byte `json:"data"`
}
