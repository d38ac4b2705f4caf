package purviewcfg

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// accountPattern matches a valid Purview account name: 3 to 63
// letters, digits and hyphens, starting and ending with a letter
// or digit.
var accountPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{1,61}[a-zA-Z0-9]$`)

// Placeholders returns the names of the environment variables whose
// resolved value is still the placeholder.
func (c Config) Placeholders() []string {
	var names []string
	if c.TenantID == DefaultTenantID {
		names = append(names, azureTenantID)
	}
	if c.ClientID == DefaultClientID {
		names = append(names, azureClientID)
	}
	if c.ClientSecret == DefaultClientSecret {
		names = append(names, azureClientSecret)
	}
	return names
}

// Validate checks the Config and returns an *Error containing every
// problem found, or nil.
func (c Config) Validate() error {
	var errs []error

	switch {
	case c.TenantID == DefaultTenantID:
		errs = append(errs, fmt.Errorf("%w: %s", ErrPlaceholder, azureTenantID))
	case !validGUID(c.TenantID):
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidTenantID, c.TenantID))
	}

	switch {
	case c.ClientID == DefaultClientID:
		errs = append(errs, fmt.Errorf("%w: %s", ErrPlaceholder, azureClientID))
	case !validGUID(c.ClientID):
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidClientID, c.ClientID))
	}

	switch {
	case c.ClientSecret == DefaultClientSecret:
		errs = append(errs, fmt.Errorf("%w: %s", ErrPlaceholder, azureClientSecret))
	case len(c.ClientSecret) == 0:
		errs = append(errs, ErrMissingClientSecret)
	}

	if !accountPattern.MatchString(c.Account) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidAccount, c.Account))
	}
	if !validGUID(c.EntityGUID) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidEntityGUID, c.EntityGUID))
	}
	if len(c.Classification) == 0 {
		errs = append(errs, ErrMissingClassification)
	}

	if err := newError(errs...); err != nil {
		return err
	}
	return nil
}

// validGUID checks if the provided string is a GUID in its
// canonical 36 character form.
func validGUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
