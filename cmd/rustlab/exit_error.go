// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

// ExitError carries an explicit process exit code through the Cobra error
// chain. Execute unwraps it and exits with Code instead of the generic 1.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ExitError) Unwrap() error {
	return e.Err
}
