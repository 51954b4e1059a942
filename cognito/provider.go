// Package cognito resolves temporary AWS credentials for a Cognito user.
//
// The user-pool id token is registered in the identity pool's logins map and exchanged for
// credentials scoped to the pool's authenticated role. Two flows are supported:
//
//   - enhanced (default): GetId then GetCredentialsForIdentity
//   - basic: GetId, GetOpenIdToken, then STS AssumeRoleWithWebIdentity on Config.RoleARN
//
// Provider implements aws.CredentialsProvider; wrap it in aws.NewCredentialsCache so refresh
// happens inside the SDK.
package cognito

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentity"

	"github.com/famproperties/s3cognito"
	"github.com/famproperties/s3cognito/configuration"
)

// ProviderName is reported as aws.Credentials.Source.
const ProviderName = "CognitoIdentityProvider"

var (
	errNoIdentity    = errors.New("cognito returned no identity id")
	errNoCredentials = errors.New("cognito returned no credentials")
	errNoOpenIDToken = errors.New("cognito returned no open id token")
	errNoSTSClient   = errors.New("an STS client is required to assume a role")
)

// Options for a Provider.
type Options struct {
	// STS is used by the basic flow. Required when the configuration has a RoleARN.
	STS STSClient
	// RoleSessionName names the assumed-role session of the basic flow.
	RoleSessionName string
}

// Provider retrieves credentials for one auth token.
type Provider struct {
	client  Client
	options Options

	identityPoolID string
	roleARN        string
	logins         map[string]string

	mu         sync.Mutex
	identityID string
}

// NewProvider returns a Provider for authToken against the pools in conf. An empty token asks for
// unauthenticated credentials.
func NewProvider(client Client, conf configuration.Config, authToken string, optFns ...func(*Options)) *Provider {
	p := &Provider{
		client:         client,
		identityPoolID: conf.IdentityPoolID,
		roleARN:        conf.RoleARN,
	}
	for _, fn := range optFns {
		fn(&p.options)
	}

	if key := conf.LoginKey(); key != "" && authToken != "" {
		p.logins = map[string]string{key: authToken}
	}
	return p
}

// Retrieve implements aws.CredentialsProvider.
func (p *Provider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	if p.identityPoolID == "" {
		return aws.Credentials{}, s3cognito.ErrMissingIdentityPool
	}

	identityID, err := p.identity(ctx)
	if err != nil {
		return aws.Credentials{}, err
	}

	if p.roleARN != "" {
		return p.assumeRole(ctx, identityID)
	}
	return p.credentialsForIdentity(ctx, identityID)
}

// IdentityID returns the cached identity id, empty until the first successful Retrieve.
func (p *Provider) IdentityID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.identityID
}

func (p *Provider) identity(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.identityID != "" {
		return p.identityID, nil
	}

	out, err := p.client.GetId(ctx, &cognitoidentity.GetIdInput{
		IdentityPoolId: aws.String(p.identityPoolID),
		Logins:         p.logins,
	})
	if err != nil {
		return "", fmt.Errorf("cognito get id: %w", err)
	}
	if out == nil || aws.ToString(out.IdentityId) == "" {
		return "", errNoIdentity
	}

	p.identityID = aws.ToString(out.IdentityId)
	return p.identityID, nil
}

func (p *Provider) credentialsForIdentity(ctx context.Context, identityID string) (aws.Credentials, error) {
	out, err := p.client.GetCredentialsForIdentity(ctx, &cognitoidentity.GetCredentialsForIdentityInput{
		IdentityId: aws.String(identityID),
		Logins:     p.logins,
	})
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("cognito get credentials for identity: %w", err)
	}
	if out == nil || out.Credentials == nil {
		return aws.Credentials{}, errNoCredentials
	}

	creds := aws.Credentials{
		AccessKeyID:     aws.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.Credentials.SecretKey),
		SessionToken:    aws.ToString(out.Credentials.SessionToken),
		Source:          ProviderName,
	}
	if out.Credentials.Expiration != nil {
		creds.CanExpire = true
		creds.Expires = *out.Credentials.Expiration
	}
	return creds, nil
}

func (p *Provider) assumeRole(ctx context.Context, identityID string) (aws.Credentials, error) {
	if p.options.STS == nil {
		return aws.Credentials{}, errNoSTSClient
	}

	out, err := p.client.GetOpenIdToken(ctx, &cognitoidentity.GetOpenIdTokenInput{
		IdentityId: aws.String(identityID),
		Logins:     p.logins,
	})
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("cognito get open id token: %w", err)
	}
	if out == nil || aws.ToString(out.Token) == "" {
		return aws.Credentials{}, errNoOpenIDToken
	}

	roleProvider := stscreds.NewWebIdentityRoleProvider(p.options.STS, p.roleARN, openIDToken(aws.ToString(out.Token)),
		func(o *stscreds.WebIdentityRoleOptions) {
			if p.options.RoleSessionName != "" {
				o.RoleSessionName = p.options.RoleSessionName
			}
		})

	creds, err := roleProvider.Retrieve(ctx)
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("assume role %s: %w", p.roleARN, err)
	}
	creds.Source = ProviderName
	return creds, nil
}

// openIDToken hands the token returned by Cognito to stscreds.
type openIDToken string

func (t openIDToken) GetIdentityToken() ([]byte, error) {
	return []byte(t), nil
}
