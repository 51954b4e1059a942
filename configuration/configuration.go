// Package configuration resolves the bucket, pools and regions the transfer layer talks to.
//
// Values come either from the platform awsconfiguration.json resource (Load, LoadReader) or from
// explicit parameters handed over by the host application (FromParams). Either way the result is
// an immutable Config that is passed into each transfer.Adapter.
package configuration

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/famproperties/s3cognito"
	"github.com/famproperties/s3cognito/region"
)

// DefaultName is the configuration name read from awsconfiguration.json.
const DefaultName = "Default"

// EnvPrefix prefixes the environment variables that override file values.
const EnvPrefix = "S3COGNITO"

// Config holds everything needed to build an S3 client for a Cognito user.
type Config struct {
	// Bucket is the S3 bucket name.
	Bucket string
	// Region is the bucket's region.
	Region region.Region

	// UserPoolID is the Cognito user pool that issued the auth token.
	UserPoolID string
	// AppClientID is the user pool app client.
	AppClientID string
	// UserPoolRegion is the user pool's region; it is part of the login key.
	UserPoolRegion region.Region

	// IdentityPoolID is the Cognito identity pool exchanging the token for credentials.
	IdentityPoolID string
	// IdentityPoolRegion is the identity pool's region.
	IdentityPoolRegion region.Region

	// RoleARN switches credential resolution to the basic (classic) Cognito flow, assuming this
	// role with the identity's OpenID token. Empty selects the enhanced flow.
	RoleARN string
}

// Params are the explicit values some host applications send instead of relying on the
// configuration resource.
type Params struct {
	Bucket      string
	Identity    string
	Region      string
	SubRegion   string
	UserPoolID  string
	AppClientID string
	RoleARN     string
}

// FromParams builds a Config from explicit parameters. Region is used for the identity and user
// pools; SubRegion is the bucket's region and falls back to Region.
func FromParams(p Params) Config {
	poolRegion := region.Parse(p.Region)
	s3Region := poolRegion
	if p.SubRegion != "" {
		s3Region = region.Parse(p.SubRegion)
	}
	return Config{
		Bucket:             p.Bucket,
		Region:             s3Region,
		UserPoolID:         p.UserPoolID,
		AppClientID:        p.AppClientID,
		UserPoolRegion:     poolRegion,
		IdentityPoolID:     p.Identity,
		IdentityPoolRegion: poolRegion,
		RoleARN:            p.RoleARN,
	}
}

// LoadOption configures Load and LoadReader.
type LoadOption func(*loadOptions)

type loadOptions struct {
	name      string
	envPrefix string
}

// WithName selects a configuration other than "Default" inside the resource.
func WithName(name string) LoadOption {
	return func(o *loadOptions) {
		o.name = name
	}
}

// WithEnvPrefix changes the prefix of the override environment variables.
func WithEnvPrefix(prefix string) LoadOption {
	return func(o *loadOptions) {
		o.envPrefix = prefix
	}
}

// Load reads an awsconfiguration.json file. A leading "~" in path is expanded.
func Load(path string, opts ...LoadOption) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("expand config path %q: %w", path, err)
	}

	v, o := newViper(opts)
	v.SetConfigFile(expanded)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", expanded, err)
	}
	return fromViper(v, o), nil
}

// LoadReader reads awsconfiguration.json content from r.
func LoadReader(r io.Reader, opts ...LoadOption) (Config, error) {
	v, o := newViper(opts)
	if err := v.ReadConfig(r); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return fromViper(v, o), nil
}

func newViper(opts []LoadOption) (*viper.Viper, loadOptions) {
	o := loadOptions{name: DefaultName, envPrefix: EnvPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	v.SetConfigType("json")

	// short, stable environment names for the values people actually override
	prefix := strings.ToUpper(o.envPrefix) + "_"
	_ = v.BindEnv(bucketKey(o.name), prefix+"BUCKET")
	_ = v.BindEnv(s3RegionKey(o.name), prefix+"REGION")
	_ = v.BindEnv(identityPoolKey(o.name), prefix+"IDENTITY_POOL_ID")
	_ = v.BindEnv(identityRegionKey(o.name), prefix+"IDENTITY_POOL_REGION")
	_ = v.BindEnv(userPoolKey(o.name), prefix+"USER_POOL_ID")
	_ = v.BindEnv(appClientKey(o.name), prefix+"APP_CLIENT_ID")
	_ = v.BindEnv(userPoolRegionKey(o.name), prefix+"USER_POOL_REGION")
	_ = v.BindEnv(roleARNKey(o.name), prefix+"ROLE_ARN")

	return v, o
}

func fromViper(v *viper.Viper, o loadOptions) Config {
	return Config{
		Bucket:             v.GetString(bucketKey(o.name)),
		Region:             region.Parse(v.GetString(s3RegionKey(o.name))),
		UserPoolID:         v.GetString(userPoolKey(o.name)),
		AppClientID:        v.GetString(appClientKey(o.name)),
		UserPoolRegion:     region.Parse(v.GetString(userPoolRegionKey(o.name))),
		IdentityPoolID:     v.GetString(identityPoolKey(o.name)),
		IdentityPoolRegion: region.Parse(v.GetString(identityRegionKey(o.name))),
		RoleARN:            v.GetString(roleARNKey(o.name)),
	}
}

func bucketKey(name string) string         { return "S3TransferUtility." + name + ".Bucket" }
func s3RegionKey(name string) string       { return "S3TransferUtility." + name + ".Region" }
func userPoolKey(name string) string       { return "CognitoUserPool." + name + ".PoolId" }
func appClientKey(name string) string      { return "CognitoUserPool." + name + ".AppClientId" }
func userPoolRegionKey(name string) string { return "CognitoUserPool." + name + ".Region" }
func identityPoolKey(name string) string {
	return "CredentialsProvider.CognitoIdentity." + name + ".PoolId"
}
func identityRegionKey(name string) string {
	return "CredentialsProvider.CognitoIdentity." + name + ".Region"
}
func roleARNKey(name string) string {
	return "CredentialsProvider.CognitoIdentity." + name + ".RoleArn"
}

// Validate reports configuration that cannot possibly work.
func (c Config) Validate() error {
	if c.Bucket == "" {
		return s3cognito.ErrMissingBucket
	}
	if c.IdentityPoolID == "" {
		return s3cognito.ErrMissingIdentityPool
	}
	return nil
}

// LoginKey is the identity provider name the auth token is registered under in the identity
// pool's logins map. It is empty when no user pool is configured.
func (c Config) LoginKey() string {
	if c.UserPoolID == "" {
		return ""
	}
	poolRegion := c.UserPoolRegion
	if !poolRegion.Known() {
		poolRegion = c.IdentityPoolRegion
	}
	return fmt.Sprintf("cognito-idp.%s.amazonaws.com/%s", poolRegion.Code(), c.UserPoolID)
}

// ForRequest returns a copy of c with the request's bucket and region overrides applied.
func (c Config) ForRequest(req s3cognito.Request) Config {
	if req.Bucket != "" {
		c.Bucket = req.Bucket
	}
	if req.Region != "" {
		if r := region.Parse(req.Region); r.Known() {
			c.Region = r
		}
	}
	return c
}
