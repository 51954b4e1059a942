package transfer

import (
	"context"
	"sync/atomic"

	"github.com/famproperties/s3cognito"
	"github.com/famproperties/s3cognito/classify"
)

// State is the coarse transfer state an SDK reports.
type State int

const (
	// Waiting - queued, not started.
	Waiting State = iota
	// InProgress - bytes are moving.
	InProgress
	// Completed - terminal success.
	Completed
	// Failed - terminal failure without a cause.
	Failed
	// WaitingForNetwork - the SDK paused the transfer for lack of connectivity. Terminal here.
	WaitingForNetwork
)

// String returns the state token.
func (s State) String() string {
	switch s {
	case InProgress:
		return "IN_PROGRESS"
	case Completed:
		return "COMPLETED"
	case Failed:
		return "FAILED"
	case WaitingForNetwork:
		return classify.WaitingForNetwork
	default:
		return "WAITING"
	}
}

// Terminal reports whether s resolves a Handle.
func (s State) Terminal() bool {
	return s == Completed || s == Failed || s == WaitingForNetwork
}

// NotificationKind tells which field of a Notification is set.
type NotificationKind int

const (
	// ProgressChanged carries byte counts.
	ProgressChanged NotificationKind = iota
	// StateChanged carries a State.
	StateChanged
	// Errored carries an error.
	Errored
)

// Notification is one event reported for a transfer.
type Notification struct {
	Kind         NotificationKind
	BytesCurrent int64
	BytesTotal   int64
	State        State
	Err          error
}

// ProgressNotification reports bytes transferred so far.
func ProgressNotification(current, total int64) Notification {
	return Notification{Kind: ProgressChanged, BytesCurrent: current, BytesTotal: total}
}

// StateNotification reports a state change.
func StateNotification(s State) Notification {
	return Notification{Kind: StateChanged, State: s}
}

// ErrorNotification reports a failure with its cause.
func ErrorNotification(err error) Notification {
	return Notification{Kind: Errored, Err: err}
}

// Handle tracks one request and resolves exactly once.
type Handle struct {
	id        string
	operation s3cognito.Operation
	key       string
	value     string

	resolved atomic.Bool
	done     chan struct{}
	outcome  s3cognito.Outcome

	current atomic.Int64
	total   atomic.Int64

	deleted chan s3cognito.Outcome
}

// NewHandle returns an unresolved Handle. value is reported on success: the public URL of an
// upload, the local path of a download, DeleteSuccess for a delete.
func NewHandle(id string, op s3cognito.Operation, key, value string) *Handle {
	return &Handle{
		id:        id,
		operation: op,
		key:       key,
		value:     value,
		done:      make(chan struct{}),
	}
}

// ID returns the request id used in logs.
func (h *Handle) ID() string {
	return h.id
}

// Notify feeds one event into the handle. Only the first terminal event (Completed, Failed,
// WaitingForNetwork or an error) resolves it; everything after that is ignored. Notify reports
// whether this call resolved the handle.
func (h *Handle) Notify(n Notification) bool {
	switch n.Kind {
	case ProgressChanged:
		if !h.resolved.Load() {
			h.current.Store(n.BytesCurrent)
			h.total.Store(n.BytesTotal)
		}
		return false
	case StateChanged:
		switch n.State {
		case Completed:
			return h.resolve(s3cognito.Succeeded(h.operation, h.key, h.value))
		case Failed, WaitingForNetwork:
			return h.fail(&classify.StateError{State: n.State.String()})
		default:
			return false
		}
	case Errored:
		return h.fail(n.Err)
	default:
		return false
	}
}

func (h *Handle) fail(err error) bool {
	if h.resolved.Load() {
		return false
	}
	return h.resolve(s3cognito.Failed(h.key, classify.NewFailure(h.operation, err)))
}

func (h *Handle) resolve(o s3cognito.Outcome) bool {
	if !h.resolved.CompareAndSwap(false, true) {
		return false
	}
	h.outcome = o
	close(h.done)
	return true
}

// Done is closed once the handle is resolved.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Outcome returns the outcome without blocking. ok is false until the handle is resolved.
func (h *Handle) Outcome() (o s3cognito.Outcome, ok bool) {
	select {
	case <-h.done:
		return h.outcome, true
	default:
		return s3cognito.Outcome{}, false
	}
}

// Wait blocks until the handle is resolved or ctx is done.
func (h *Handle) Wait(ctx context.Context) (s3cognito.Outcome, error) {
	select {
	case <-h.done:
		return h.outcome, nil
	case <-ctx.Done():
		return s3cognito.Outcome{}, ctx.Err()
	}
}

// Progress returns the last reported byte counts.
func (h *Handle) Progress() (current, total int64) {
	return h.current.Load(), h.total.Load()
}

// Deleted delivers the real outcome of a fire-and-forget delete once the background call
// finishes, then is closed. It is nil for uploads, downloads and confirmed deletes.
func (h *Handle) Deleted() <-chan s3cognito.Outcome {
	return h.deleted
}
