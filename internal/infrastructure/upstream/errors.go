// internal/infrastructure/upstream/errors.go
package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a failed call to the upstream API. A zero StatusCode
// means the call never completed (network failure, timeout).
type Error struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream request failed: %v", e.Err)
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsValidation reports whether the upstream rejected the input (HTTP 422)
func (e *Error) IsValidation() bool {
	return e.StatusCode == http.StatusUnprocessableEntity
}

// IsValidation reports whether err is an upstream validation failure,
// the user-correctable class of the error taxonomy
func IsValidation(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.IsValidation()
}

// IsServer reports whether err is any other upstream failure, shown to
// the user as a transient "try again" notice
func IsServer(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && !ue.IsValidation()
}
