package purviewcfg

import (
	"github.com/KarlGW/purviewcfg/azure/cloud"
	"go.uber.org/zap"
)

// Options contains options for Load.
type Options struct {
	// Logger is used to report credentials that fall back to their
	// placeholder values. Defaults to a no-op logger.
	Logger *zap.Logger
	// LookupEnv looks up environment variables. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
	// Account is the name of the Purview account. Defaults to
	// DefaultAccount.
	Account string
	// EntityGUID is the GUID of the target entity in the catalog.
	// Defaults to DefaultEntityGUID.
	EntityGUID string
	// Classification is the classification to apply to the entity.
	// Defaults to DefaultClassification.
	Classification string
	// Cloud is the Azure cloud hosting the account. Defaults to
	// cloud.AzurePublic.
	Cloud cloud.Cloud
	// EnvFiles are .env files consulted after the process environment
	// and before the placeholder defaults. Earlier files take precedence.
	EnvFiles []string
}

// Option is a function that sets Options.
type Option func(o *Options)

// WithAccount sets the Purview account.
func WithAccount(account string) Option {
	return func(o *Options) {
		o.Account = account
	}
}

// WithEntityGUID sets the GUID of the target entity.
func WithEntityGUID(guid string) Option {
	return func(o *Options) {
		o.EntityGUID = guid
	}
}

// WithClassification sets the classification.
func WithClassification(classification string) Option {
	return func(o *Options) {
		o.Classification = classification
	}
}

// WithCloud sets the Azure cloud. Invalid clouds are replaced
// with cloud.AzurePublic.
func WithCloud(c cloud.Cloud) Option {
	cl := c
	return func(o *Options) {
		if !cl.Valid() {
			cl = cloud.AzurePublic
		}
		o.Cloud = cl
	}
}

// WithEnvFile adds env files to read credentials from.
func WithEnvFile(paths ...string) Option {
	return func(o *Options) {
		o.EnvFiles = append(o.EnvFiles, paths...)
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// WithLookupEnv sets the function used to look up environment variables.
func WithLookupEnv(fn func(key string) (string, bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.LookupEnv = fn
		}
	}
}
