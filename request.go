package s3cognito

import (
	"strconv"
	"time"
)

// Operation is one of the three transfer verbs.
type Operation int

const (
	// Upload sends a local file to the bucket.
	Upload Operation = iota
	// Download writes an object to a local file.
	Download
	// Delete removes an object from the bucket.
	Delete
)

// String returns the string representation of the Operation.
func (o Operation) String() string {
	switch o {
	case Upload:
		return "upload"
	case Download:
		return "download"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Request describes a single transfer. It is built once per call and never modified.
type Request struct {
	// Operation is the transfer verb.
	Operation Operation
	// FilePath is the local file read by an upload or written by a download.
	FilePath string
	// Key is the object key (the "imageName" of the host application).
	Key string
	// Bucket overrides the configured bucket when set.
	Bucket string
	// Region overrides the configured S3 region when set. Canonical names (US_EAST_1) and
	// SDK codes (us-east-1) are both accepted.
	Region string
	// AuthToken is the user-pool id token exchanged for storage credentials.
	AuthToken string
	// ContentType is the explicit MIME type for an upload. Inferred from Key when empty.
	ContentType string
}

// Validate reports the first missing field for the request's operation.
func (r Request) Validate() error {
	switch r.Operation {
	case Upload, Download:
		if r.FilePath == "" {
			return ErrMissingFilePath
		}
	case Delete:
	default:
		return ErrUnknownOperation
	}
	if r.Key == "" {
		return ErrMissingKey
	}
	return nil
}

// GenerateKey returns an object key for an image taken at t: "IMG", the day as ddMMyyyy, the Unix
// time in milliseconds, then "jpeg" (without a dot).
func GenerateKey(t time.Time) string {
	return "IMG" + t.Format("02012006") + strconv.FormatInt(t.UnixMilli(), 10) + "jpeg"
}
