package purviewcfg

const (
	// azureTenantID is the environment variable for the tenant ID.
	azureTenantID = "AZURE_TENANT_ID"
	// azureClientID is the environment variable for the client ID.
	azureClientID = "AZURE_CLIENT_ID"
	// azureClientSecret is the environment variable for the client secret.
	azureClientSecret = "AZURE_CLIENT_SECRET"
)
