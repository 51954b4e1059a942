package transfer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/famproperties/s3cognito"
	"github.com/famproperties/s3cognito/classify"
	"github.com/famproperties/s3cognito/configuration"
	"github.com/famproperties/s3cognito/contenttype"
	"github.com/famproperties/s3cognito/options"
	"github.com/famproperties/s3cognito/options/delete"
	"github.com/famproperties/s3cognito/utils"
)

// Adapter runs uploads, downloads and deletes against one configuration.
type Adapter struct {
	conf    configuration.Config
	options Options
	client  Client
	factory ClientFactory
	logger  logrus.FieldLogger

	background sync.WaitGroup
}

// NewAdapter initializer for Adapter struct accepts a configuration and options and returns an
// Adapter. Without WithClient a Client is built for every request from its auth token.
func NewAdapter(conf configuration.Config, opts ...options.NewAdapterOption[Adapter]) *Adapter {
	a := &Adapter{
		conf:    conf,
		factory: getClient,
		logger:  logrus.StandardLogger(),
	}
	options.ApplyOptions(a, opts...)
	return a
}

// Config returns the adapter's configuration.
func (a *Adapter) Config() configuration.Config {
	return a.conf
}

// Options returns the adapter's options.
func (a *Adapter) Options() Options {
	return a.options
}

// Start dispatches req on its Operation.
func (a *Adapter) Start(ctx context.Context, req s3cognito.Request, opts ...options.DeleteOption) *Handle {
	switch req.Operation {
	case s3cognito.Upload:
		return a.StartUpload(ctx, req)
	case s3cognito.Download:
		return a.StartDownload(ctx, req)
	case s3cognito.Delete:
		return a.StartDelete(ctx, req, opts...)
	default:
		h := NewHandle(uuid.NewString(), req.Operation, req.Key, "")
		a.report(a.requestLogger(h, a.conf), h, ErrorNotification(s3cognito.ErrUnknownOperation))
		return h
	}
}

// StartUpload sends req.FilePath to req.Key. A missing local file fails the handle before any
// client is built. On success the outcome value is the object's public URL.
func (a *Adapter) StartUpload(ctx context.Context, req s3cognito.Request) *Handle {
	req.Operation = s3cognito.Upload
	conf := a.conf.ForRequest(req)
	h := NewHandle(uuid.NewString(), req.Operation, req.Key, ObjectURL(a.options.URLStyle, conf.Bucket, conf.Region, req.Key))
	log := a.requestLogger(h, conf)

	if err := a.validate(req, conf); err != nil {
		a.report(log, h, ErrorNotification(err))
		return h
	}

	path, size, err := localFile(req.FilePath)
	if err != nil {
		a.report(log, h, ErrorNotification(err))
		return h
	}

	log.WithField("file", path).Debug("upload started")
	go a.upload(ctx, log, h, conf, req, path, size)
	return h
}

func (a *Adapter) upload(ctx context.Context, log logrus.FieldLogger, h *Handle, conf configuration.Config, req s3cognito.Request, path string, size int64) {
	h.Notify(StateNotification(InProgress))

	client, err := a.clientFor(ctx, conf, req.AuthToken)
	if err != nil {
		a.report(log, h, ErrorNotification(err))
		return
	}

	// FileNotFound comes only from the pre-check in StartUpload
	f, err := os.Open(path)
	if err != nil {
		a.report(log, h, ErrorNotification(utils.WrapOpenError(err)))
		return
	}
	defer func() { _ = f.Close() }()

	input := &s3.PutObjectInput{
		Bucket:      aws.String(conf.Bucket),
		Key:         aws.String(req.Key),
		Body:        &progressReader{r: f, total: size, h: h},
		ContentType: aws.String(contenttype.Infer(req.Key, req.ContentType)),
	}
	if a.options.ACL != "" {
		input.ACL = a.options.ACL
	}
	if !a.options.DisableServerSideEncryption {
		input.ServerSideEncryption = types.ServerSideEncryptionAes256
	}

	out, err := a.uploader(client).Upload(ctx, input)
	switch {
	case err != nil:
		a.report(log, h, ErrorNotification(err))
		a.report(log, h, StateNotification(Failed))
	case out == nil:
		a.report(log, h, ErrorNotification(s3cognito.ErrEmptyResponse))
	default:
		a.report(log, h, StateNotification(Completed))
	}
}

// StartDownload writes req.Key to req.FilePath, creating parent directories. The object is
// written to a temporary file next to the target and renamed into place, so a failed download
// leaves no partial file behind. On success the outcome value is the absolute local path.
func (a *Adapter) StartDownload(ctx context.Context, req s3cognito.Request) *Handle {
	req.Operation = s3cognito.Download
	conf := a.conf.ForRequest(req)

	path := req.FilePath
	if expanded, err := utils.ExpandPath(path); err == nil {
		path = expanded
	}
	h := NewHandle(uuid.NewString(), req.Operation, req.Key, path)
	log := a.requestLogger(h, conf)

	if err := a.validate(req, conf); err != nil {
		a.report(log, h, ErrorNotification(err))
		return h
	}

	log.WithField("file", path).Debug("download started")
	go a.download(ctx, log, h, conf, req, path)
	return h
}

func (a *Adapter) download(ctx context.Context, log logrus.FieldLogger, h *Handle, conf configuration.Config, req s3cognito.Request, path string) {
	h.Notify(StateNotification(InProgress))

	client, err := a.clientFor(ctx, conf, req.AuthToken)
	if err != nil {
		a.report(log, h, ErrorNotification(err))
		return
	}

	n, err := a.downloadTo(ctx, client, conf, req, path, h)
	if err != nil {
		a.report(log, h, ErrorNotification(err))
		a.report(log, h, StateNotification(Failed))
		return
	}

	log.WithField("bytes", n).Debug("download written")
	a.report(log, h, StateNotification(Completed))
}

func (a *Adapter) downloadTo(ctx context.Context, client Client, conf configuration.Config, req s3cognito.Request, path string, h *Handle) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.part")
	if err != nil {
		return 0, utils.WrapCreateError(err)
	}
	tmpName := tmp.Name()

	w := &progressWriterAt{w: tmp, h: h}
	n, err := a.downloader(&sizingClient{Client: client, w: w}).Download(ctx, w, &s3.GetObjectInput{
		Bucket: aws.String(conf.Bucket),
		Key:    aws.String(req.Key),
	})
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = utils.WrapCloseError(closeErr)
	}
	if err == nil {
		if renameErr := os.Rename(tmpName, path); renameErr != nil {
			err = utils.WrapRenameError(renameErr)
		}
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return 0, err
	}
	return n, nil
}

// StartDelete removes req.Key.
//
// By default the handle resolves immediately with DeleteSuccess and the delete runs in the
// background, detached from ctx cancellation; its real outcome is logged and delivered on
// Handle.Deleted. With Options.ConfirmDelete or delete.WithConfirm the handle waits for the
// service and reports the classified outcome like an upload.
func (a *Adapter) StartDelete(ctx context.Context, req s3cognito.Request, opts ...options.DeleteOption) *Handle {
	req.Operation = s3cognito.Delete
	conf := a.conf.ForRequest(req)
	h := NewHandle(uuid.NewString(), req.Operation, req.Key, s3cognito.DeleteSuccess)
	log := a.requestLogger(h, conf)

	if err := a.validate(req, conf); err != nil {
		a.report(log, h, ErrorNotification(err))
		return h
	}

	confirm := a.options.ConfirmDelete
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(conf.Bucket),
		Key:    aws.String(req.Key),
	}
	for _, o := range opts {
		switch o := o.(type) {
		case delete.Confirm:
			confirm = true
		case delete.Version:
			input.VersionId = aws.String(string(o))
			log = log.WithField("version", string(o))
		}
	}

	if confirm {
		go func() {
			h.Notify(StateNotification(InProgress))
			if err := a.deleteObject(ctx, conf, req.AuthToken, input); err != nil {
				a.report(log, h, ErrorNotification(err))
				return
			}
			a.report(log, h, StateNotification(Completed))
		}()
		return h
	}

	deleted := make(chan s3cognito.Outcome, 1)
	h.deleted = deleted
	a.report(log, h, StateNotification(Completed))

	a.background.Add(1)
	go func() {
		defer a.background.Done()
		defer close(deleted)

		result := s3cognito.Succeeded(req.Operation, req.Key, s3cognito.DeleteSuccess)
		if err := a.deleteObject(context.WithoutCancel(ctx), conf, req.AuthToken, input); err != nil {
			result = s3cognito.Failed(req.Key, classify.NewFailure(req.Operation, err))
			log.WithError(err).WithField("category", result.Failure.Category.String()).Warn("background delete failed")
		} else {
			log.Info("background delete finished")
		}
		deleted <- result
	}()
	return h
}

func (a *Adapter) deleteObject(ctx context.Context, conf configuration.Config, authToken string, input *s3.DeleteObjectInput) error {
	client, err := a.clientFor(ctx, conf, authToken)
	if err != nil {
		return err
	}
	_, err = client.DeleteObject(ctx, input)
	return err
}

// WaitBackground blocks until every fire-and-forget delete started so far has finished.
func (a *Adapter) WaitBackground() {
	a.background.Wait()
}

// Upload is the blocking form of StartUpload. It returns the public URL.
func (a *Adapter) Upload(ctx context.Context, req s3cognito.Request) (string, error) {
	return await(ctx, a.StartUpload(ctx, req))
}

// Download is the blocking form of StartDownload. It returns the absolute local path.
func (a *Adapter) Download(ctx context.Context, req s3cognito.Request) (string, error) {
	return await(ctx, a.StartDownload(ctx, req))
}

// Delete is the blocking form of StartDelete. Unless confirmed it returns DeleteSuccess at once.
func (a *Adapter) Delete(ctx context.Context, req s3cognito.Request, opts ...options.DeleteOption) (string, error) {
	return await(ctx, a.StartDelete(ctx, req, opts...))
}

func await(ctx context.Context, h *Handle) (string, error) {
	o, err := h.Wait(ctx)
	if err != nil {
		return "", err
	}
	return o.Result()
}

// validate checks the request and, when credentials come from Cognito, the configuration.
func (a *Adapter) validate(req s3cognito.Request, conf configuration.Config) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if a.client != nil {
		if conf.Bucket == "" {
			return s3cognito.ErrMissingBucket
		}
		return nil
	}
	return conf.Validate()
}

func (a *Adapter) clientFor(ctx context.Context, conf configuration.Config, authToken string) (Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	client, err := a.factory(ctx, conf, authToken, a.options)
	if err != nil {
		return nil, fmt.Errorf("build s3 client: %w", err)
	}
	return client, nil
}

func (a *Adapter) uploader(client Client) *manager.Uploader {
	return manager.NewUploader(client, func(u *manager.Uploader) {
		if a.options.UploadPartitionSize > 0 {
			u.PartSize = a.options.UploadPartitionSize
		}
		if a.options.Concurrency > 0 {
			u.Concurrency = a.options.Concurrency
		}
	})
}

func (a *Adapter) downloader(client Client) *manager.Downloader {
	return manager.NewDownloader(client, func(d *manager.Downloader) {
		if a.options.DownloadPartitionSize > 0 {
			d.PartSize = a.options.DownloadPartitionSize
		}
		if a.options.Concurrency > 0 {
			d.Concurrency = a.options.Concurrency
		}
	})
}

func (a *Adapter) requestLogger(h *Handle, conf configuration.Config) logrus.FieldLogger {
	return a.logger.WithFields(logrus.Fields{
		"request_id": h.ID(),
		"operation":  h.operation.String(),
		"bucket":     conf.Bucket,
		"key":        h.key,
	})
}

// report notifies h and logs the outcome if this notification resolved it.
func (a *Adapter) report(log logrus.FieldLogger, h *Handle, n Notification) {
	if !h.Notify(n) {
		return
	}
	o, _ := h.Outcome()
	if o.OK() {
		log.WithField("result", o.Value).Info("transfer completed")
		return
	}
	log.WithError(o.Failure.Cause).
		WithField("category", o.Failure.Category.String()).
		Warn("transfer failed")
}

// localFile resolves path and checks that it is a regular file.
func localFile(path string) (string, int64, error) {
	abs, err := utils.ExpandPath(path)
	if err != nil {
		return path, 0, fmt.Errorf("%s: %w", path, s3cognito.ErrFileNotFound)
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return abs, 0, fmt.Errorf("%s: %w", abs, s3cognito.ErrFileNotFound)
	}
	return abs, info.Size(), nil
}
