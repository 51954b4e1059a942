// Package classify turns the error reported for a failed transfer into a s3cognito.Category.
//
// The error is first unwrapped to its deepest cause. Timeouts and interrupted I/O are TimedOut;
// network failures, including unresolvable hosts and any request the SDK could not send, are
// Offline. The upload pre-check reports FileNotFound. Typed responses from the AWS SDK map to
// Redirection, ClientError or ServerError by HTTP status. Anything else, including coarse state tokens such as FAILED, is Unknown.
package classify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"syscall"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/famproperties/s3cognito"
)

// WaitingForNetwork is the state token an SDK reports while it waits for connectivity.
const WaitingForNetwork = "WAITING_FOR_NETWORK"

// fallbackMessage is used when the error cannot describe itself.
const fallbackMessage = "transfer failed"

// StateError is a failure reported only as a coarse state token, without a cause.
type StateError struct {
	State string
}

// Error returns the state token.
func (e *StateError) Error() string {
	return e.State
}

// RootCause walks the Unwrap chain to the deepest error. For errors wrapping several causes the
// first one is followed.
func RootCause(err error) error {
	for err != nil {
		var next error
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			next = u.Unwrap()
		case interface{ Unwrap() []error }:
			if errs := u.Unwrap(); len(errs) > 0 {
				next = errs[0]
			}
		}
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// Classify returns the Category for err. A nil error is Unknown.
func Classify(err error) s3cognito.Category {
	if err == nil {
		return s3cognito.Unknown
	}

	root := RootCause(err)
	switch {
	case isTimeout(root):
		return s3cognito.TimedOut
	case isOffline(root), isSendFailure(err), isWaitingForNetwork(err):
		return s3cognito.Offline
	case errors.Is(err, s3cognito.ErrFileNotFound):
		return s3cognito.FileNotFound
	case errors.Is(err, s3cognito.ErrEmptyResponse):
		return s3cognito.EmptyResponse
	}

	var state *StateError
	if errors.As(err, &state) {
		// coarse signals never get a finer category than Unknown
		return s3cognito.Unknown
	}

	if status, ok := httpStatusCode(err); ok {
		switch {
		case status >= 500:
			return s3cognito.ServerError
		case status >= 400:
			return s3cognito.ClientError
		case status >= 300:
			return s3cognito.Redirection
		}
	}

	return s3cognito.Unknown
}

// NewFailure classifies err and builds the Failure reported for op. It never panics: if the error
// cannot produce its message a generic one is used.
func NewFailure(op s3cognito.Operation, err error) *s3cognito.Failure {
	category := s3cognito.Unknown
	func() {
		defer func() { _ = recover() }()
		category = Classify(err)
	}()

	return &s3cognito.Failure{
		Operation: op,
		Category:  category,
		Message:   Message(err),
		Cause:     err,
	}
}

// Message returns err.Error(), or a generic message when err is nil, empty or panics.
func Message(err error) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprintf("%s (%T)", fallbackMessage, err)
		}
	}()

	if err == nil {
		return fallbackMessage
	}
	if msg = err.Error(); msg == "" {
		return fallbackMessage
	}
	return msg
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.ETIMEDOUT || errno == syscall.EINTR
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isOffline(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, net.ErrClosed) {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ECONNABORTED,
			syscall.ENETUNREACH, syscall.ENETDOWN, syscall.EHOSTUNREACH, syscall.EHOSTDOWN,
			syscall.EPIPE, syscall.ENOTCONN:
			return true
		}
		return false
	}

	var (
		dnsErr  *net.DNSError
		opErr   *net.OpError
		addrErr *net.AddrError
	)
	return errors.As(err, &dnsErr) || errors.As(err, &opErr) || errors.As(err, &addrErr)
}

// isSendFailure reports a request that never got a response. A canceled context is the caller's
// doing, not the network's.
func isSendFailure(err error) bool {
	var sendErr *smithyhttp.RequestSendError
	return errors.As(err, &sendErr) && !errors.Is(err, context.Canceled)
}

func isWaitingForNetwork(err error) bool {
	var state *StateError
	return errors.As(err, &state) && state.State == WaitingForNetwork
}

func httpStatusCode(err error) (int, bool) {
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.ResponseError != nil && hasResponse(respErr.ResponseError) {
		return respErr.HTTPStatusCode(), true
	}
	var smithyErr *smithyhttp.ResponseError
	if errors.As(err, &smithyErr) && hasResponse(smithyErr) {
		return smithyErr.HTTPStatusCode(), true
	}
	return 0, false
}

func hasResponse(e *smithyhttp.ResponseError) bool {
	return e.Response != nil && e.Response.Response != nil
}
