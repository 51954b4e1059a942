package s3cognito

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrFileNotFound - the local file for an upload does not exist
	ErrFileNotFound = Error("file not found")

	// ErrEmptyResponse - the SDK reported success without a result
	ErrEmptyResponse = Error("unexpected empty result")

	// ErrMissingKey - every request needs an object key
	ErrMissingKey = Error("object key is required")

	// ErrMissingFilePath - upload and download need a local file path
	ErrMissingFilePath = Error("local file path is required")

	// ErrMissingBucket - no bucket in the request or the configuration
	ErrMissingBucket = Error("bucket is required")

	// ErrMissingIdentityPool - Cognito credentials cannot be resolved without an identity pool
	ErrMissingIdentityPool = Error("identity pool id is required")

	// ErrUnknownOperation - operation is not one of upload, download or delete
	ErrUnknownOperation = Error("unknown operation")
)
