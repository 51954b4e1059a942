package transfer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentity"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/famproperties/s3cognito/cognito"
	"github.com/famproperties/s3cognito/configuration"
)

// Options holds s3-specific options for an Adapter.
type Options struct {
	Endpoint                    string                `json:"endpoint,omitempty"`
	ACL                         types.ObjectCannedACL `json:"acl,omitempty"`
	ForcePathStyle              bool                  `json:"forcePathStyle,omitempty"`
	DisableServerSideEncryption bool                  `json:"disableServerSideEncryption,omitempty"`
	Retry                       aws.Retryer           `json:"-"`
	MaxRetries                  int                   `json:"maxRetries,omitempty"`
	DownloadPartitionSize       int64                 `json:"downloadPartitionSize,omitempty"` // Partition size in bytes used to multipart download of large files using manager.Downloader
	UploadPartitionSize         int64                 `json:"uploadPartitionSize,omitempty"`   // Partition size in bytes used to multipart upload of large files using manager.Uploader
	Concurrency                 int                   `json:"concurrency,omitempty"`           // Parts transferred in parallel by the manager
	URLStyle                    URLStyle              `json:"urlStyle,omitempty"`
	ConfirmDelete               bool                  `json:"confirmDelete,omitempty"` // wait for every delete instead of reporting success immediately
	RoleSessionName             string                `json:"roleSessionName,omitempty"`
}

// ClientFactory builds the Client used for one request. The auth token differs between requests,
// so a client is built per request unless a fixed one is set with WithClient.
type ClientFactory func(ctx context.Context, conf configuration.Config, authToken string, opt Options) (Client, error)

// getClient setup S3 client with Cognito credentials for authToken
func getClient(ctx context.Context, conf configuration.Config, authToken string, opt Options) (Client, error) {
	// setup default config
	awsConfig, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	// the Cognito and STS calls that produce credentials are unsigned
	identity := cognitoidentity.NewFromConfig(awsConfig, func(o *cognitoidentity.Options) {
		if code := conf.IdentityPoolRegion.Code(); code != "" {
			o.Region = code
		}
		o.Credentials = aws.AnonymousCredentials{}
	})
	stsClient := sts.NewFromConfig(awsConfig, func(o *sts.Options) {
		if code := conf.IdentityPoolRegion.Code(); code != "" {
			o.Region = code
		}
		o.Credentials = aws.AnonymousCredentials{}
	})
	provider := cognito.NewProvider(identity, conf, authToken, func(o *cognito.Options) {
		o.STS = stsClient
		o.RoleSessionName = opt.RoleSessionName
	})

	// return client instance
	return s3.NewFromConfig(awsConfig, func(opts *s3.Options) {
		if code := conf.Region.Code(); code != "" {
			opts.Region = code
		}

		// set filepath for minio users
		opts.UsePathStyle = opt.ForcePathStyle

		// use specific endpoint, otherwise, will use aws "default endpoint resolver" based on region
		if opt.Endpoint != "" {
			opts.BaseEndpoint = aws.String(opt.Endpoint)
		}

		if opt.Retry != nil {
			opts.Retryer = opt.Retry
		} else if opt.MaxRetries > 0 {
			opts.RetryMaxAttempts = opt.MaxRetries
		}

		opts.Credentials = aws.NewCredentialsCache(provider)
	}), nil
}
