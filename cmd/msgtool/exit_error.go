package main

import "fmt"

// exitValidation is reserved for pre-flight validation failure, distinct
// from pipeline failures (which exit 1).
const exitValidation = 2

// exitError signals a non-zero exit code without forcing os.Exit inside
// RunE handlers.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitError) Unwrap() error {
	return e.err
}
