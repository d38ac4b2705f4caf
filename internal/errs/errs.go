package errs

import "strings"

// Errors is a slice of error.
type Errors []error

// Append adds the non-nil errors to Errors.
func (e *Errors) Append(errs ...error) {
	for _, err := range errs {
		if err != nil {
			*e = append(*e, err)
		}
	}
}

// Error outputs the error messages contained in Errors joined with a newline.
func (e Errors) Error() string {
	var b strings.Builder
	for i := range e {
		b.WriteString(e[i].Error())
		if i != len(e)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Unwrap returns the contained errors so that errors.Is and errors.As
// can match against each of them.
func (e Errors) Unwrap() []error {
	return e
}

// ErrorOrNil returns nil if Errors is empty, otherwise Errors.
func (e Errors) ErrorOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
