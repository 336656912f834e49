package cmd

import "fmt"

// exitError is returned by commands that need a specific exit code without
// an error message: ask exits 1 when the question is not understood.
type exitError struct{ code int }

func (e exitError) Error() string {
	return fmt.Sprintf("exit %d", e.code)
}

// ExitCode extracts the exit code from an exitError.
// Returns -1 if the error is not an exitError.
func ExitCode(err error) int {
	if ee, ok := err.(exitError); ok {
		return ee.code
	}
	return -1
}
