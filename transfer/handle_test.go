package transfer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/famproperties/s3cognito"
)

type handleTestSuite struct {
	suite.Suite
}

func (ts *handleTestSuite) newHandle() *Handle {
	return NewHandle("req-1", s3cognito.Upload, "a.png", "https://bucket.s3.amazonaws.com/a.png")
}

func (ts *handleTestSuite) TestCompleted() {
	h := ts.newHandle()
	ts.Equal("req-1", h.ID())

	_, ok := h.Outcome()
	ts.False(ok, "unresolved")

	ts.False(h.Notify(StateNotification(Waiting)))
	ts.False(h.Notify(StateNotification(InProgress)))
	ts.False(h.Notify(ProgressNotification(10, 100)))
	ts.True(h.Notify(StateNotification(Completed)))

	o, ok := h.Outcome()
	ts.Require().True(ok)
	ts.True(o.OK())
	ts.Equal("https://bucket.s3.amazonaws.com/a.png", o.Value)
	ts.Equal("a.png", o.Key)

	current, total := h.Progress()
	ts.Equal(int64(10), current)
	ts.Equal(int64(100), total)
}

func (ts *handleTestSuite) TestErrorThenFailedResolvesOnce() {
	h := ts.newHandle()
	cause := errors.New("boom")

	ts.True(h.Notify(ErrorNotification(cause)))
	ts.False(h.Notify(StateNotification(Failed)), "duplicate terminal notification suppressed")
	ts.False(h.Notify(StateNotification(Completed)))
	ts.False(h.Notify(ProgressNotification(5, 5)))

	o, _ := h.Outcome()
	ts.Require().False(o.OK())
	ts.Equal(s3cognito.Unknown, o.Failure.Category)
	ts.Equal("boom", o.Failure.Message)
	ts.ErrorIs(o.Err(), cause)

	current, _ := h.Progress()
	ts.Zero(current, "progress after resolution is ignored")
}

func (ts *handleTestSuite) TestCoarseStates() {
	h := ts.newHandle()
	ts.True(h.Notify(StateNotification(Failed)))
	o, _ := h.Outcome()
	ts.Equal(s3cognito.Unknown, o.Failure.Category)
	ts.Equal("FAILED", o.Failure.Message)

	h = ts.newHandle()
	ts.True(h.Notify(StateNotification(WaitingForNetwork)))
	o, _ = h.Outcome()
	ts.Equal(s3cognito.Offline, o.Failure.Category)
	ts.Equal("requestOffline", o.Failure.Category.Code())
}

func (ts *handleTestSuite) TestConcurrentNotify() {
	h := ts.newHandle()
	var (
		wg       sync.WaitGroup
		resolved atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n := StateNotification(Completed)
			if i%2 == 0 {
				n = ErrorNotification(errors.New("racing error"))
			}
			if h.Notify(n) {
				resolved.Add(1)
			}
		}(i)
	}
	wg.Wait()
	ts.Equal(int32(1), resolved.Load(), "exactly one notification resolves the handle")

	<-h.Done()
	first, _ := h.Outcome()
	again, _ := h.Outcome()
	ts.Equal(first, again, "outcome never changes")
}

func (ts *handleTestSuite) TestWait() {
	h := ts.newHandle()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.Wait(ctx)
	ts.ErrorIs(err, context.Canceled)

	go h.Notify(StateNotification(Completed))
	o, err := h.Wait(context.Background())
	ts.NoError(err)
	ts.True(o.OK())
}

func (ts *handleTestSuite) TestStateString() {
	tests := map[State]string{
		Waiting:           "WAITING",
		InProgress:        "IN_PROGRESS",
		Completed:         "COMPLETED",
		Failed:            "FAILED",
		WaitingForNetwork: "WAITING_FOR_NETWORK",
	}
	for s, expected := range tests {
		ts.Equal(expected, s.String())
	}
	ts.True(Completed.Terminal())
	ts.True(WaitingForNetwork.Terminal())
	ts.False(InProgress.Terminal())
}

func TestHandle(t *testing.T) {
	suite.Run(t, new(handleTestSuite))
}
