/*
Package s3cognito moves files between a device and an S3 bucket using Cognito-issued credentials.

It only knows three verbs: upload, download and delete. Each call is described by a Request, and
produces exactly one Outcome: a success value (public URL, local path or a fixed token) or a
Failure carrying a small, closed Category the caller can base its retry policy on.

# Layout

  - region: canonical region names to SDK regions
  - contenttype: MIME type inference for uploads
  - configuration: bucket, pools and regions from awsconfiguration.json or explicit parameters
  - cognito: identity-pool credentials for a user-pool token
  - classify: root-cause classification of SDK errors
  - transfer: the Adapter issuing SDK calls and resolving one Outcome per Request
  - cmd/s3cognito: a command line wrapper

# Usage

	conf, err := configuration.Load("awsconfiguration.json")
	if err != nil {
	    return err
	}

	adapter := transfer.NewAdapter(conf)
	url, err := adapter.Upload(ctx, s3cognito.Request{
	    Operation: s3cognito.Upload,
	    FilePath:  "/tmp/photo.png",
	    Key:       "photo.png",
	    AuthToken: idToken,
	})
	if err != nil {
	    var f *s3cognito.Failure
	    if errors.As(err, &f) && f.Category == s3cognito.Offline {
	        // retry later
	    }
	}

# Retries

Nothing is retried here beyond what the AWS SDK does on its own. Every failure is terminal for the
request that produced it; FileNotFound is reported before any network call and should never be
retried. TimedOut and Offline are usually worth retrying.
*/
package s3cognito
