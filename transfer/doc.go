/*
Package transfer - Cognito-authenticated S3 uploads, downloads and deletes using AWS SDK for Go v2.

# Usage

	import (
	    "github.com/famproperties/s3cognito"
	    "github.com/famproperties/s3cognito/configuration"
	    "github.com/famproperties/s3cognito/transfer"
	)

	func UploadImage(ctx context.Context, token string) (string, error) {
	    conf, err := configuration.Load("~/awsconfiguration.json")
	    if err != nil {
	        return "", err
	    }
	    a := transfer.NewAdapter(conf)
	    return a.Upload(ctx, s3cognito.Request{
	        FilePath:  "/tmp/photo.png",
	        Key:       "photos/photo.png",
	        AuthToken: token,
	    })
	}

Every Start* call returns its own Handle, so one Adapter can serve concurrent requests. A Handle
resolves exactly once: the first terminal notification wins and the rest are dropped.

	h := a.StartDownload(ctx, req)
	select {
	case <-h.Done():
	    o, _ := h.Outcome()
	    ...
	case <-time.After(time.Minute):
	    ...
	}

# Options

The adapter can be configured with the following options:

	a := transfer.NewAdapter(conf,
	    transfer.WithOptions(transfer.Options{
	        Endpoint:       "http://localhost:9000",
	        ForcePathStyle: true,
	        URLStyle:       transfer.RegionPath,
	    }),
	    transfer.WithLogger(logger),
	)

- Endpoint: Custom endpoint for S3-compatible services
- ACL: Canned ACL for uploaded objects (e.g., "private", "public-read")
- ForcePathStyle: Use path-style addressing
- DisableServerSideEncryption: Disable server-side encryption
- Retry, MaxRetries: SDK retry policy
- UploadPartitionSize, DownloadPartitionSize, Concurrency: multipart tuning for the manager
- URLStyle: VirtualHosted (default) or RegionPath upload URLs
- ConfirmDelete: wait for deletes instead of reporting success immediately

# Deletes

A delete reports DeleteSuccess as soon as it is issued and finishes in the background. Its real
outcome is logged and sent on Handle.Deleted. Pass delete.WithConfirm(), or set ConfirmDelete, to
wait for it instead.

# Credentials

Unless WithClient is used, each request gets a client whose credentials come from
cognito.Provider for the request's auth token, cached with aws.NewCredentialsCache.
*/
package transfer
