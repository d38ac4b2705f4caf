package purviewcfg

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/KarlGW/purviewcfg/azure/cloud"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultTenantID is the placeholder used when AZURE_TENANT_ID is not set.
	DefaultTenantID = "SEU_TENANT_ID"
	// DefaultClientID is the placeholder used when AZURE_CLIENT_ID is not set.
	DefaultClientID = "SEU_CLIENT_ID"
	// DefaultClientSecret is the placeholder used when AZURE_CLIENT_SECRET
	// is not set.
	DefaultClientSecret = "SEU_CLIENT_SECRET"
	// DefaultAccount is the name of the Purview account.
	DefaultAccount = "sua-conta-purview"
	// DefaultEntityGUID is the GUID of the target asset in the catalog.
	DefaultEntityGUID = "c0888888-0000-0000-0000-000000000000"
	// DefaultClassification is the classification to apply to the asset.
	DefaultClassification = "LGPD_DadosPessoaisSensíveis"
	// CatalogURL is the base URL of the catalog (Atlas v2) API of
	// the default account.
	CatalogURL = "https://" + DefaultAccount + ".purview.azure.com" + catalogPath
	// Scope is the token scope for the Purview data plane.
	Scope = "https://purview.azure.net/.default"
)

const (
	// catalogPath is the path of the catalog (Atlas v2) API.
	catalogPath = "/catalog/api/atlas/v2"
	// redacted replaces sensitive values in output.
	redacted = "[REDACTED]"
)

// Config contains the values needed to call the catalog API of
// a Purview account.
type Config struct {
	TenantID       string
	ClientID       string
	ClientSecret   string
	Account        string
	EntityGUID     string
	Classification string
	Cloud          cloud.Cloud
}

// Load resolves a Config. Tenant ID, client ID and client secret are
// looked up in the environment, then in the env files provided with
// WithEnvFile, and fall back to their placeholders. A variable that
// is set to an empty string resolves to the empty string. Account,
// entity GUID and classification are never read from the environment.
//
// An error is only returned if an env file cannot be read.
func Load(options ...Option) (Config, error) {
	opts := Options{
		Logger:         zap.NewNop(),
		LookupEnv:      os.LookupEnv,
		Account:        DefaultAccount,
		EntityGUID:     DefaultEntityGUID,
		Classification: DefaultClassification,
		Cloud:          cloud.AzurePublic,
	}
	for _, option := range options {
		option(&opts)
	}

	lookup := opts.LookupEnv
	if len(opts.EnvFiles) > 0 {
		env, err := readEnvFiles(opts.EnvFiles...)
		if err != nil {
			return Config{}, err
		}
		lookup = lookupWithFallback(opts.LookupEnv, env)
	}

	r := resolver{lookup: lookup, log: opts.Logger}
	return Config{
		TenantID:       r.resolve(azureTenantID, DefaultTenantID),
		ClientID:       r.resolve(azureClientID, DefaultClientID),
		ClientSecret:   r.resolve(azureClientSecret, DefaultClientSecret),
		Account:        opts.Account,
		EntityGUID:     opts.EntityGUID,
		Classification: opts.Classification,
		Cloud:          opts.Cloud,
	}, nil
}

var (
	defaultOnce   sync.Once
	defaultConfig Config
)

// Default returns the Config resolved from the process environment. It
// is resolved on the first call and kept for the lifetime of the process.
func Default() Config {
	defaultOnce.Do(func() {
		// Without env files Load cannot fail.
		defaultConfig, _ = Load()
	})
	return defaultConfig
}

// CatalogURL returns the base URL of the catalog (Atlas v2) API of
// the account.
func (c Config) CatalogURL() string {
	return "https://" + c.Account + "." + c.Cloud.PurviewDomain() + catalogPath
}

// EntityURL returns the URL of the entity in the catalog.
func (c Config) EntityURL() string {
	return c.CatalogURL() + "/entity/guid/" + url.PathEscape(c.EntityGUID)
}

// ClassificationsURL returns the URL of the classifications of
// the entity in the catalog.
func (c Config) ClassificationsURL() string {
	return c.EntityURL() + "/classifications"
}

// String returns the Config with the client secret redacted.
func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tenant_id=%s ", c.TenantID)
	fmt.Fprintf(&b, "client_id=%s ", c.ClientID)
	fmt.Fprintf(&b, "client_secret=%s ", redact(c.ClientSecret))
	fmt.Fprintf(&b, "account=%s ", c.Account)
	fmt.Fprintf(&b, "entity_guid=%s ", c.EntityGUID)
	fmt.Fprintf(&b, "classification=%s ", c.Classification)
	fmt.Fprintf(&b, "catalog_url=%s", c.CatalogURL())
	return b.String()
}

// MarshalLogObject implements zapcore.ObjectMarshaler. The client
// secret is redacted.
func (c Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("tenantId", c.TenantID)
	enc.AddString("clientId", c.ClientID)
	enc.AddString("clientSecret", redact(c.ClientSecret))
	enc.AddString("account", c.Account)
	enc.AddString("entityGuid", c.EntityGUID)
	enc.AddString("classification", c.Classification)
	enc.AddString("catalogUrl", c.CatalogURL())
	return nil
}

// resolver resolves environment variables with placeholder fallback.
type resolver struct {
	lookup func(key string) (string, bool)
	log    *zap.Logger
}

// resolve returns the value of the environment variable key if it is
// set, otherwise placeholder.
func (r resolver) resolve(key, placeholder string) string {
	if v, ok := r.lookup(key); ok {
		return v
	}
	r.log.Warn("environment variable not set, using placeholder", zap.String("variable", key))
	return placeholder
}

// readEnvFiles reads the provided env files into a single map. A key
// found in an earlier file is not overwritten by later files.
func readEnvFiles(paths ...string) (map[string]string, error) {
	env := make(map[string]string)
	for _, path := range paths {
		m, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrEnvFile, path, err.Error())
		}
		for k, v := range m {
			if _, ok := env[k]; !ok {
				env[k] = v
			}
		}
	}
	return env, nil
}

// lookupWithFallback returns a lookup function that consults lookup
// first and env second.
func lookupWithFallback(lookup func(key string) (string, bool), env map[string]string) func(key string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := env[key]
		return v, ok
	}
}

// redact hides non-empty sensitive values.
func redact(s string) string {
	if len(s) == 0 {
		return ""
	}
	return redacted
}
