package cloud

import (
	"strings"

	azcloud "github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
)

// Cloud represents an Azure cloud.
type Cloud string

const (
	// AzurePublic is the public Azure cloud.
	AzurePublic Cloud = "AzurePublic"
	// AzureGovernment is the Azure Government cloud.
	AzureGovernment Cloud = "AzureGovernment"
	// AzureChina is the Azure China cloud.
	AzureChina Cloud = "AzureChina"
)

// Valid returns true if the cloud is a valid Azure cloud.
func (c Cloud) Valid() bool {
	switch c {
	case AzurePublic, AzureGovernment, AzureChina:
		return true
	}
	return false
}

// PurviewDomain returns the domain under which Purview accounts are
// hosted in the cloud. Unknown clouds get the public domain.
func (c Cloud) PurviewDomain() string {
	switch c {
	case AzureGovernment:
		return "purview.azure.us"
	case AzureChina:
		return "purview.azure.cn"
	default:
		return "purview.azure.com"
	}
}

// Configuration returns the azcore cloud configuration used by
// credentials for the cloud.
func (c Cloud) Configuration() azcloud.Configuration {
	switch c {
	case AzureGovernment:
		return azcloud.AzureGovernment
	case AzureChina:
		return azcloud.AzureChina
	default:
		return azcloud.AzurePublic
	}
}

// Parse returns the cloud from the provided string.
func Parse(s string) Cloud {
	switch strings.ToLower(s) {
	case "azure", "public", "azurepublic":
		return AzurePublic
	case "government", "azuregovernment":
		return AzureGovernment
	case "china", "azurechina":
		return AzureChina
	default:
		return AzurePublic
	}
}
