package purviewcfg

import (
	"errors"

	"github.com/KarlGW/purviewcfg/internal/errs"
)

var (
	// ErrPlaceholder is returned when a credential still has its placeholder
	// value.
	ErrPlaceholder = errors.New("placeholder value in use")
	// ErrInvalidTenantID is returned when the tenant ID is not a GUID.
	ErrInvalidTenantID = errors.New("invalid tenant ID")
	// ErrInvalidClientID is returned when the client ID is not a GUID.
	ErrInvalidClientID = errors.New("invalid client ID")
	// ErrMissingClientSecret is returned when the client secret is empty.
	ErrMissingClientSecret = errors.New("missing client secret")
	// ErrInvalidAccount is returned when the Purview account name is empty
	// or not a valid host label.
	ErrInvalidAccount = errors.New("invalid account")
	// ErrInvalidEntityGUID is returned when the entity GUID is not a GUID.
	ErrInvalidEntityGUID = errors.New("invalid entity GUID")
	// ErrMissingClassification is returned when the classification is empty.
	ErrMissingClassification = errors.New("missing classification")
	// ErrEnvFile is returned when an env file could not be read.
	ErrEnvFile = errors.New("env file error")
	// ErrCredential is returned when a credential could not be created.
	ErrCredential = errors.New("credential error")
)

// Error contains one or more errors from validating a Config.
type Error struct {
	errors errs.Errors
}

// Error returns the combined error messages from the errors
// contained in Error.
func (e *Error) Error() string {
	return e.errors.Error()
}

// Errors returns the errors contained in Error.
func (e *Error) Errors() []error {
	return e.errors
}

// Unwrap returns the errors contained in Error.
func (e *Error) Unwrap() []error {
	return e.errors.Unwrap()
}

// newError creates a new *Error out of the provided errors. Returns
// nil if no errors are provided.
func newError(errors ...error) *Error {
	var e errs.Errors
	e.Append(errors...)
	if e.ErrorOrNil() == nil {
		return nil
	}
	return &Error{errors: e}
}
