// Package apperror defines the error types shared across the application.
// Every error here is recoverable: a failure leaves the process responsive
// with the last known-good state intact.
package apperror

import "fmt"

// ValidationError represents a rejected user input. Nothing was written.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// ParseError represents a failure to understand free-form input.
// The user should retry with reworded input.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not understand input '%s': %v", e.Input, e.Err)
	}
	return fmt.Sprintf("could not understand input '%s'", e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PersistenceError represents a failed store write. Missing names the record
// a compensating retry should re-create when a multi-write operation was left
// partially applied.
type PersistenceError struct {
	Collection string
	Op         string
	Missing    string
	Err        error
}

func (e *PersistenceError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("%s %s failed, missing %s: %v", e.Collection, e.Op, e.Missing, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Collection, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// RestoreError represents a rejected backup payload. The original data is
// untouched unless Applied is true, in which case the restore failed midway
// and Collection names the first collection that could not be written.
type RestoreError struct {
	Collection string
	Applied    bool
	Err        error
}

func (e *RestoreError) Error() string {
	if e.Applied {
		return fmt.Sprintf("restore failed while writing %s: %v", e.Collection, e.Err)
	}
	return fmt.Sprintf("restore rejected, data untouched: %v", e.Err)
}

func (e *RestoreError) Unwrap() error {
	return e.Err
}
