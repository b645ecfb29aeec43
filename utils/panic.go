package utils //nolint:revive // utils is an appropriate package name for utility functions

import (
	"fmt"

	"github.com/nsat/validatron/errors"
)

// GetPanicRecoveryError converts a recovered panic value into an error wrapping
// errors.ErrPanicRecovery. A nil panic value yields nil. When a stack trace is
// given it is appended to the message.
func GetPanicRecoveryError(recovered any, stack []byte) error {
	if recovered == nil {
		return nil
	}

	var err error
	if recErr, ok := recovered.(error); ok {
		err = fmt.Errorf("%w: %w", errors.ErrPanicRecovery, recErr)
	} else {
		err = fmt.Errorf("%w: %v", errors.ErrPanicRecovery, recovered)
	}

	if stack != nil {
		return fmt.Errorf("%w\nstack trace:\n%s", err, string(stack))
	}

	return err
}
