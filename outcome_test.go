package s3cognito

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	expected := map[Category][2]string{
		Unknown:       {"Unknown", "unknown"},
		TimedOut:      {"TimedOut", "requestTimedOut"},
		Offline:       {"Offline", "requestOffline"},
		FileNotFound:  {"FileNotFound", "fileNotFound"},
		ClientError:   {"ClientError", "clientError"},
		ServerError:   {"ServerError", "serverError"},
		Redirection:   {"Redirection", "redirection"},
		EmptyResponse: {"EmptyResponse", "emptyResponse"},
	}
	require.Len(t, Categories(), len(expected))
	for _, c := range Categories() {
		assert.Equal(t, expected[c][0], c.String())
		assert.Equal(t, expected[c][1], c.Code())
	}
	assert.Equal(t, "unknown", Category(99).Code())
}

func TestOutcome(t *testing.T) {
	ok := Succeeded(Delete, "a.png", DeleteSuccess)
	assert.True(t, ok.OK())
	assert.NoError(t, ok.Err())
	value, err := ok.Result()
	assert.NoError(t, err)
	assert.Equal(t, "Success", value)

	cause := errors.New("connection refused")
	failed := Failed("a.png", &Failure{Operation: Upload, Category: Offline, Message: "connection refused", Cause: cause})
	assert.False(t, failed.OK())
	assert.Equal(t, Upload, failed.Operation)
	assert.Equal(t, "a.png", failed.Key)
	_, err = failed.Result()
	assert.EqualError(t, err, "upload requestOffline: connection refused")
	assert.ErrorIs(t, err, cause)

	var f *Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, Offline, f.Category)
}
