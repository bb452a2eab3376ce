package cli

import (
	"errors"

	"github.com/vk/hyprshade/internal/hyprctl"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError marks bad invocations, which exit with status 2.
func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// translateError gives compositor failures the compositor's own exit code.
func translateError(err error) error {
	var ctlErr *hyprctl.ControlError
	if errors.As(err, &ctlErr) {
		return &ExitError{Code: ctlErr.Code, Message: ctlErr.Error()}
	}
	return err
}
