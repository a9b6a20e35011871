package models

import (
	"errors"
	"fmt"
)

// Sentinel kinds for errors.Is. The concrete types below carry the detail.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidQuery      = errors.New("invalid query")
	ErrMalformedResponse = errors.New("malformed response")
	ErrTimeout           = errors.New("timeout")
	ErrCancelled         = errors.New("cancelled")
	ErrService           = errors.New("service error")
)

type NotFoundError struct {
	Body Body
}

func (e *NotFoundError) Error() string {
	if e.Body.IsCode() {
		return fmt.Sprintf("no body with NAIF code %d", e.Body.Code())
	}
	return fmt.Sprintf("no body named %q", e.Body.Name())
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type InvalidQueryError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *InvalidQueryError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Constraint)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Constraint)
}

func (e *InvalidQueryError) Is(target error) bool { return target == ErrInvalidQuery }

type MalformedResponseError struct {
	Line   int // 1-based, 0 when not tied to a line
	Text   string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("malformed response at line %d: %s: %q", e.Line, e.Reason, e.Text)
	case e.Text != "":
		return fmt.Sprintf("malformed response: %s: %q", e.Reason, e.Text)
	default:
		return fmt.Sprintf("malformed response: %s", e.Reason)
	}
}

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string { return fmt.Sprintf("%s: timed out: %v", e.Op, e.Err) }

func (e *TimeoutError) Unwrap() error { return e.Err }

func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

type CancelledError struct {
	Op  string
	Err error
}

func (e *CancelledError) Error() string { return fmt.Sprintf("%s: cancelled: %v", e.Op, e.Err) }

func (e *CancelledError) Unwrap() error { return e.Err }

func (e *CancelledError) Is(target error) bool { return target == ErrCancelled }

// ServiceError is a non-200 reply from Horizons.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("Horizons returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("Horizons returned status %d: %s", e.StatusCode, e.Body)
}

func (e *ServiceError) Is(target error) bool { return target == ErrService }
