package service

import "errors"

var (
	// ErrNotFound marks a missing report, responder, assignment or bus request.
	ErrNotFound = errors.New("not found")

	// ErrRequestClosed marks an acceptance against a completed bus request.
	ErrRequestClosed = errors.New("bus request is closed")
)
