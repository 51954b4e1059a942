package transfer

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/famproperties/s3cognito"
	"github.com/famproperties/s3cognito/configuration"
	"github.com/famproperties/s3cognito/options/delete"
	"github.com/famproperties/s3cognito/region"
	"github.com/famproperties/s3cognito/transfer/mocks"
)

var matchContext = mock.MatchedBy(func(context.Context) bool { return true })

type adapterTestSuite struct {
	suite.Suite
	client  *mocks.Client
	logger  *logrus.Logger
	conf    configuration.Config
	adapter *Adapter
	dir     string
}

func (ts *adapterTestSuite) SetupTest() {
	ts.client = mocks.NewClient(ts.T())
	ts.logger = logrus.New()
	ts.logger.SetOutput(io.Discard)
	ts.dir = ts.T().TempDir()
	ts.conf = configuration.Config{
		Bucket:             "family-bucket",
		Region:             region.USEast2,
		IdentityPoolID:     "us-east-2:pool",
		IdentityPoolRegion: region.USEast2,
	}
	ts.adapter = NewAdapter(ts.conf, WithClient(ts.client), WithLogger(ts.logger))
}

func (ts *adapterTestSuite) writeFile(name, content string) string {
	path := filepath.Join(ts.dir, name)
	ts.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func responseError(status int) error {
	return &smithy.OperationError{
		ServiceID:     "S3",
		OperationName: "PutObject",
		Err: &awshttp.ResponseError{
			ResponseError: &smithyhttp.ResponseError{
				Response: &smithyhttp.Response{Response: &http.Response{StatusCode: status}},
				Err:      &smithy.GenericAPIError{Code: http.StatusText(status), Message: "response"},
			},
		},
	}
}

func failureOf(err error) *s3cognito.Failure {
	var f *s3cognito.Failure
	if errors.As(err, &f) {
		return f
	}
	return nil
}

func (ts *adapterTestSuite) TestUpload() {
	path := ts.writeFile("photo.png", "png-bytes")
	ts.client.EXPECT().
		PutObject(matchContext, mock.AnythingOfType("*s3.PutObjectInput"), mock.Anything).
		Run(func(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) {
			ts.Equal("family-bucket", aws.ToString(in.Bucket))
			ts.Equal("photos/photo.png", aws.ToString(in.Key))
			ts.Equal("image/png", aws.ToString(in.ContentType))
			ts.Equal(types.ServerSideEncryptionAes256, in.ServerSideEncryption)
			ts.Empty(in.ACL)
			body, err := io.ReadAll(in.Body)
			ts.NoError(err)
			ts.Equal("png-bytes", string(body))
		}).
		Return(&s3.PutObjectOutput{ETag: aws.String(`"etag"`)}, nil).
		Once()

	h := ts.adapter.StartUpload(context.Background(), s3cognito.Request{FilePath: path, Key: "photos/photo.png", AuthToken: "token"})
	o, err := h.Wait(context.Background())
	ts.Require().NoError(err)
	ts.True(o.OK(), "upload succeeded: %v", o.Err())
	ts.Equal(s3cognito.Upload, o.Operation)
	ts.Equal("https://family-bucket.s3.amazonaws.com/photos/photo.png", o.Value)

	current, total := h.Progress()
	ts.Equal(int64(len("png-bytes")), current)
	ts.Equal(int64(len("png-bytes")), total)
}

func (ts *adapterTestSuite) TestUploadOverrides() {
	ts.adapter = NewAdapter(ts.conf, WithClient(ts.client), WithLogger(ts.logger), WithOptions(Options{
		URLStyle:                    RegionPath,
		ACL:                         types.ObjectCannedACLPublicRead,
		DisableServerSideEncryption: true,
	}))
	path := ts.writeFile("doc.bin", "data")
	ts.client.EXPECT().
		PutObject(matchContext, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return aws.ToString(in.Bucket) == "other-bucket" &&
				aws.ToString(in.ContentType) == "application/custom" &&
				in.ACL == types.ObjectCannedACLPublicRead &&
				in.ServerSideEncryption == ""
		}), mock.Anything).
		Return(&s3.PutObjectOutput{}, nil).
		Once()

	url, err := ts.adapter.Upload(context.Background(), s3cognito.Request{
		FilePath:    path,
		Key:         "doc.bin",
		Bucket:      "other-bucket",
		Region:      "EU_WEST_1",
		ContentType: "application/custom",
	})
	ts.Require().NoError(err)
	ts.Equal("https://s3-eu-west-1.amazonaws.com/other-bucket/doc.bin", url)
}

func (ts *adapterTestSuite) TestUploadFileNotFound() {
	factoryCalled := false
	ts.adapter = NewAdapter(ts.conf, WithLogger(ts.logger), WithClientFactory(
		func(context.Context, configuration.Config, string, Options) (Client, error) {
			factoryCalled = true
			return ts.client, nil
		}))

	h := ts.adapter.StartUpload(context.Background(), s3cognito.Request{
		FilePath: filepath.Join(ts.dir, "missing.png"),
		Key:      "missing.png",
	})

	o, ok := h.Outcome()
	ts.Require().True(ok, "resolved before StartUpload returns")
	ts.Require().False(o.OK())
	ts.Equal(s3cognito.FileNotFound, o.Failure.Category)
	ts.Equal("fileNotFound", o.Failure.Category.Code())
	ts.Equal("missing.png", o.Key)
	ts.False(factoryCalled, "no client is built for a missing file")

	h = ts.adapter.StartUpload(context.Background(), s3cognito.Request{FilePath: ts.dir, Key: "dir"})
	o, _ = h.Outcome()
	ts.Equal(s3cognito.FileNotFound, o.Failure.Category, "a directory is not an uploadable file")
}

func (ts *adapterTestSuite) TestUploadFailures() {
	path := ts.writeFile("a.jpg", "jpg")
	tests := []struct {
		name     string
		err      error
		expected s3cognito.Category
	}{
		{"server", responseError(http.StatusServiceUnavailable), s3cognito.ServerError},
		{"client", responseError(http.StatusForbidden), s3cognito.ClientError},
		{"redirect", responseError(http.StatusMovedPermanently), s3cognito.Redirection},
		{"offline", &smithyhttp.RequestSendError{Err: &net.OpError{Op: "dial", Net: "tcp",
			Err: &net.DNSError{Err: "no such host", Name: "family-bucket.s3.amazonaws.com", IsNotFound: true}}}, s3cognito.Offline},
		{"timeout", &smithyhttp.RequestSendError{Err: &net.OpError{Op: "read", Net: "tcp", Err: os.ErrDeadlineExceeded}}, s3cognito.TimedOut},
		{"unknown", errors.New("boom"), s3cognito.Unknown},
	}
	for _, tt := range tests {
		ts.Run(tt.name, func() {
			client := mocks.NewClient(ts.T())
			client.EXPECT().
				PutObject(matchContext, mock.AnythingOfType("*s3.PutObjectInput"), mock.Anything).
				Return(nil, tt.err).
				Once()
			a := NewAdapter(ts.conf, WithClient(client), WithLogger(ts.logger))

			_, err := a.Upload(context.Background(), s3cognito.Request{FilePath: path, Key: "a.jpg"})
			ts.Require().Error(err)
			f := failureOf(err)
			ts.Require().NotNil(f, "error is a *s3cognito.Failure")
			ts.Equal(tt.expected, f.Category)
			ts.Equal(s3cognito.Upload, f.Operation)
			ts.NotEmpty(f.Message)
		})
	}
}

func (ts *adapterTestSuite) TestUploadClientFactoryError() {
	path := ts.writeFile("a.png", "png")
	ts.adapter = NewAdapter(ts.conf, WithLogger(ts.logger), WithClientFactory(
		func(context.Context, configuration.Config, string, Options) (Client, error) {
			return nil, errors.New("no credentials")
		}))

	_, err := ts.adapter.Upload(context.Background(), s3cognito.Request{FilePath: path, Key: "a.png"})
	ts.Require().Error(err)
	ts.Equal(s3cognito.Unknown, failureOf(err).Category)
	ts.Contains(err.Error(), "build s3 client")
}

func (ts *adapterTestSuite) TestUploadFileRemovedAfterCheck() {
	path := ts.writeFile("gone.png", "png")
	ts.adapter = NewAdapter(ts.conf, WithLogger(ts.logger), WithClientFactory(
		func(context.Context, configuration.Config, string, Options) (Client, error) {
			// the file disappears between the pre-check and the open
			ts.NoError(os.Remove(path))
			return ts.client, nil
		}))

	_, err := ts.adapter.Upload(context.Background(), s3cognito.Request{FilePath: path, Key: "gone.png"})
	ts.Require().Error(err)
	ts.Equal(s3cognito.Unknown, failureOf(err).Category, "only the pre-check reports FileNotFound")
	ts.ErrorIs(err, os.ErrNotExist)
	ts.NotErrorIs(err, s3cognito.ErrFileNotFound)
	ts.Contains(err.Error(), "open error")
}

func (ts *adapterTestSuite) TestConcurrentUploadsAreIsolated() {
	ts.client.EXPECT().
		PutObject(matchContext, mock.AnythingOfType("*s3.PutObjectInput"), mock.Anything).
		Return(&s3.PutObjectOutput{}, nil).
		Times(8)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		path := ts.writeFile(string(rune('a'+i))+".png", "x")
		key := filepath.Base(path)
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			url, err := ts.adapter.Upload(context.Background(), s3cognito.Request{FilePath: path, Key: key})
			ts.NoError(err)
			results[i] = url
		}(i)
	}
	wg.Wait()

	for i, url := range results {
		ts.Equal("https://family-bucket.s3.amazonaws.com/"+string(rune('a'+i))+".png", url)
	}
}

func (ts *adapterTestSuite) TestDownload() {
	body := "downloaded-content"
	ts.client.EXPECT().
		GetObject(matchContext, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
			return aws.ToString(in.Bucket) == "family-bucket" && aws.ToString(in.Key) == "photos/a.png"
		}), mock.Anything).
		Return(&s3.GetObjectOutput{
			ContentLength: aws.Int64(int64(len(body))),
			Body:          io.NopCloser(strings.NewReader(body)),
		}, nil).
		Once()

	target := filepath.Join(ts.dir, "nested", "dir", "a.png")
	path, err := ts.adapter.Download(context.Background(), s3cognito.Request{FilePath: target, Key: "photos/a.png"})
	ts.Require().NoError(err)
	ts.Equal(target, path)

	content, err := os.ReadFile(target)
	ts.Require().NoError(err)
	ts.Equal(body, string(content))

	leftovers, _ := filepath.Glob(filepath.Join(ts.dir, "nested", "dir", "*.part"))
	ts.Empty(leftovers)
}

func (ts *adapterTestSuite) TestDownloadReportsObjectSize() {
	body := "0123456789"
	ts.client.EXPECT().
		GetObject(matchContext, mock.AnythingOfType("*s3.GetObjectInput"), mock.Anything).
		Return(&s3.GetObjectOutput{
			ContentLength: aws.Int64(int64(len(body))),
			ContentRange:  aws.String("bytes 0-9/10"),
			Body:          io.NopCloser(strings.NewReader(body)),
		}, nil).
		Once()

	h := ts.adapter.StartDownload(context.Background(), s3cognito.Request{FilePath: filepath.Join(ts.dir, "b.png"), Key: "b.png"})
	o, err := h.Wait(context.Background())
	ts.Require().NoError(err)
	ts.True(o.OK(), "download succeeded: %v", o.Err())

	current, total := h.Progress()
	ts.Equal(int64(10), current)
	ts.Equal(int64(10), total)
}

func (ts *adapterTestSuite) TestDownloadFailureKeepsExistingFile() {
	target := ts.writeFile("existing.png", "old")
	ts.client.EXPECT().
		GetObject(matchContext, mock.AnythingOfType("*s3.GetObjectInput"), mock.Anything).
		Return(nil, responseError(http.StatusNotFound)).
		Once()

	_, err := ts.adapter.Download(context.Background(), s3cognito.Request{FilePath: target, Key: "missing.png"})
	ts.Require().Error(err)
	ts.Equal(s3cognito.ClientError, failureOf(err).Category)
	ts.Equal(s3cognito.Download, failureOf(err).Operation)

	content, err := os.ReadFile(target)
	ts.Require().NoError(err)
	ts.Equal("old", string(content))

	leftovers, _ := filepath.Glob(filepath.Join(ts.dir, "*.part"))
	ts.Empty(leftovers, "partial download removed")
}

func (ts *adapterTestSuite) TestDeleteFireAndForget() {
	release := make(chan struct{})
	ts.client.EXPECT().
		DeleteObject(matchContext, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
			return aws.ToString(in.Key) == "photos/a.png" && in.VersionId == nil
		}), mock.Anything).
		Run(func(ctx context.Context, _ *s3.DeleteObjectInput, _ ...func(*s3.Options)) {
			<-release
			ts.NoError(ctx.Err(), "background delete is not canceled with the caller")
		}).
		Return(nil, responseError(http.StatusInternalServerError)).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	h := ts.adapter.StartDelete(ctx, s3cognito.Request{Key: "photos/a.png"})
	cancel()

	o, ok := h.Outcome()
	ts.Require().True(ok, "delete resolves without waiting for the network")
	ts.True(o.OK())
	ts.Equal(s3cognito.DeleteSuccess, o.Value)
	ts.Equal("photos/a.png", o.Key)

	close(release)
	background, open := <-h.Deleted()
	ts.Require().True(open)
	ts.Require().False(background.OK())
	ts.Equal(s3cognito.ServerError, background.Failure.Category)

	_, open = <-h.Deleted()
	ts.False(open, "closed after the outcome")
	ts.adapter.WaitBackground()
}

func (ts *adapterTestSuite) TestDeleteConfirmed() {
	ts.client.EXPECT().
		DeleteObject(matchContext, mock.AnythingOfType("*s3.DeleteObjectInput"), mock.Anything).
		Return(nil, responseError(http.StatusForbidden)).
		Once()

	h := ts.adapter.StartDelete(context.Background(), s3cognito.Request{Key: "a.png"}, delete.WithConfirm())
	ts.Nil(h.Deleted())
	o, err := h.Wait(context.Background())
	ts.Require().NoError(err)
	ts.Require().False(o.OK())
	ts.Equal(s3cognito.ClientError, o.Failure.Category)

	ts.client.EXPECT().
		DeleteObject(matchContext, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
			return aws.ToString(in.VersionId) == "v2"
		}), mock.Anything).
		Return(&s3.DeleteObjectOutput{}, nil).
		Once()

	a := NewAdapter(ts.conf, WithClient(ts.client), WithLogger(ts.logger), WithOptions(Options{ConfirmDelete: true}))
	value, err := a.Delete(context.Background(), s3cognito.Request{Key: "a.png"}, delete.WithVersion("v2"))
	ts.Require().NoError(err)
	ts.Equal(s3cognito.DeleteSuccess, value)
}

func (ts *adapterTestSuite) TestInvalidRequests() {
	h := ts.adapter.StartDelete(context.Background(), s3cognito.Request{})
	o, ok := h.Outcome()
	ts.Require().True(ok)
	ts.ErrorIs(o.Err(), s3cognito.ErrMissingKey)
	ts.Nil(h.Deleted(), "nothing runs in the background")

	_, err := ts.adapter.Download(context.Background(), s3cognito.Request{Key: "a.png"})
	ts.ErrorIs(err, s3cognito.ErrMissingFilePath)

	h = ts.adapter.Start(context.Background(), s3cognito.Request{Operation: s3cognito.Operation(42), Key: "a"})
	o, _ = h.Outcome()
	ts.ErrorIs(o.Err(), s3cognito.ErrUnknownOperation)

	noBucket := NewAdapter(configuration.Config{}, WithClient(ts.client), WithLogger(ts.logger))
	_, err = noBucket.Delete(context.Background(), s3cognito.Request{Key: "a.png"})
	ts.ErrorIs(err, s3cognito.ErrMissingBucket)

	noPool := NewAdapter(configuration.Config{Bucket: "b"}, WithLogger(ts.logger))
	_, err = noPool.Delete(context.Background(), s3cognito.Request{Key: "a.png"})
	ts.ErrorIs(err, s3cognito.ErrMissingIdentityPool)
}

func (ts *adapterTestSuite) TestStartDispatch() {
	ts.client.EXPECT().
		DeleteObject(matchContext, mock.AnythingOfType("*s3.DeleteObjectInput"), mock.Anything).
		Return(&s3.DeleteObjectOutput{}, nil).
		Once()

	h := ts.adapter.Start(context.Background(), s3cognito.Request{Operation: s3cognito.Delete, Key: "a.png"})
	o, ok := h.Outcome()
	ts.True(ok)
	ts.Equal(s3cognito.Delete, o.Operation)
	ts.adapter.WaitBackground()
}

func TestAdapter(t *testing.T) {
	suite.Run(t, new(adapterTestSuite))
}
