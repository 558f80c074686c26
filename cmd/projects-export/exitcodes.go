package main

import "github.com/pkg/errors"

// exitStatus is the process exit status of one failure class.
type exitStatus int

const (
	statusSuccess  exitStatus = 0
	statusFailure  exitStatus = 1 // anything left unclassified
	statusUsage    exitStatus = 1 // fewer than three arguments
	statusConfig   exitStatus = 3
	statusDatabase exitStatus = 4 // connect, prepare, query or scan
	statusOutput   exitStatus = 5
)

type exitError struct {
	status exitStatus
	err    error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// fail tags err with the status the process should exit with.
func fail(status exitStatus, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{status: status, err: err}
}

func statusOf(err error) exitStatus {
	if err == nil {
		return statusSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.status
	}
	return statusFailure
}
