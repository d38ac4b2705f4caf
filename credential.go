package purviewcfg

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// CredentialOptions contains options for Credential.
type CredentialOptions struct {
	// ClientOptions are passed on to the credential. If no cloud
	// is set, the cloud of the Config is used.
	ClientOptions azcore.ClientOptions
}

// CredentialOption is a function that sets CredentialOptions.
type CredentialOption func(o *CredentialOptions)

// WithClientOptions sets the client options of the credential.
func WithClientOptions(options azcore.ClientOptions) CredentialOption {
	return func(o *CredentialOptions) {
		o.ClientOptions = options
	}
}

// Credential creates a client secret credential from the tenant ID,
// client ID and client secret of the Config. No token is requested
// until the credential is used.
func (c Config) Credential(options ...CredentialOption) (azcore.TokenCredential, error) {
	if placeholders := c.Placeholders(); len(placeholders) > 0 {
		return nil, fmt.Errorf("%w: %w: %s", ErrCredential, ErrPlaceholder, strings.Join(placeholders, ", "))
	}

	opts := CredentialOptions{}
	for _, option := range options {
		option(&opts)
	}
	if len(opts.ClientOptions.Cloud.ActiveDirectoryAuthorityHost) == 0 {
		opts.ClientOptions.Cloud = c.Cloud.Configuration()
	}

	cred, err := newClientSecretCredential(c.TenantID, c.ClientID, c.ClientSecret, &azidentity.ClientSecretCredentialOptions{
		ClientOptions: opts.ClientOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCredential, err.Error())
	}
	return cred, nil
}

// TokenRequestOptions returns the options for requesting a token
// for the Purview data plane.
func (c Config) TokenRequestOptions() policy.TokenRequestOptions {
	return policy.TokenRequestOptions{
		Scopes: []string{Scope},
	}
}

var newClientSecretCredential = func(tenantID, clientID, clientSecret string, options *azidentity.ClientSecretCredentialOptions) (azcore.TokenCredential, error) {
	return azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, options)
}
