package s3cognito

import "fmt"

// Category classifies a failed transfer for the caller's retry policy.
type Category int

const (
	// Unknown covers every failure that cannot be attributed to anything more specific.
	// Lots of potential issues, hopefully transient.
	Unknown Category = iota
	// TimedOut - the request timed out or its I/O was interrupted. Should retry.
	TimedOut
	// Offline - the network was unreachable. Should retry.
	Offline
	// FileNotFound - the local file is gone. Permanent, never retried.
	FileNotFound
	// ClientError - the service rejected the request (HTTP 4xx).
	ClientError
	// ServerError - the service failed (HTTP 5xx).
	ServerError
	// Redirection - the service answered with a redirect (HTTP 3xx).
	Redirection
	// EmptyResponse - the SDK finished without a result.
	EmptyResponse
)

// Categories returns every Category.
func Categories() []Category {
	return []Category{Unknown, TimedOut, Offline, FileNotFound, ClientError, ServerError, Redirection, EmptyResponse}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	switch c {
	case TimedOut:
		return "TimedOut"
	case Offline:
		return "Offline"
	case FileNotFound:
		return "FileNotFound"
	case ClientError:
		return "ClientError"
	case ServerError:
		return "ServerError"
	case Redirection:
		return "Redirection"
	case EmptyResponse:
		return "EmptyResponse"
	default:
		return "Unknown"
	}
}

// Code returns the short error code handed to the calling layer.
func (c Category) Code() string {
	switch c {
	case TimedOut:
		return "requestTimedOut"
	case Offline:
		return "requestOffline"
	case FileNotFound:
		return "fileNotFound"
	case ClientError:
		return "clientError"
	case ServerError:
		return "serverError"
	case Redirection:
		return "redirection"
	case EmptyResponse:
		return "emptyResponse"
	default:
		return "unknown"
	}
}

// Failure is the error half of an Outcome.
type Failure struct {
	// Operation is the verb that failed.
	Operation Operation
	// Category is the retry-relevant classification.
	Category Category
	// Message is a human-readable description.
	Message string
	// Cause is the error reported by the SDK, if any.
	Cause error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s %s: %s", f.Operation, f.Category.Code(), f.Message)
}

// Unwrap returns the underlying cause of the failure.
func (f *Failure) Unwrap() error {
	return f.Cause
}

// Outcome is the single result of a Request: either a success value or a Failure.
type Outcome struct {
	// Operation is the verb the outcome belongs to.
	Operation Operation
	// Key is the object key of the request.
	Key string
	// Value is the public URL (upload), local path (download) or success token (delete).
	Value string
	// Failure is set when the transfer failed.
	Failure *Failure
}

// DeleteSuccess is the token reported for a delete.
const DeleteSuccess = "Success"

// Succeeded builds a successful Outcome.
func Succeeded(op Operation, key, value string) Outcome {
	return Outcome{Operation: op, Key: key, Value: value}
}

// Failed builds a failed Outcome.
func Failed(key string, f *Failure) Outcome {
	return Outcome{Operation: f.Operation, Key: key, Failure: f}
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Failure == nil
}

// Err returns the Failure as an error, or nil on success.
func (o Outcome) Err() error {
	if o.Failure == nil {
		return nil
	}
	return o.Failure
}

// Result returns the success value or the failure, the way a caller of a blocking API expects.
func (o Outcome) Result() (string, error) {
	return o.Value, o.Err()
}
