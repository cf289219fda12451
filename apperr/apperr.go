// Package apperr holds the error kinds a request can fail with. Handlers
// map them to HTTP statuses at the boundary with Status.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

const MsgMissingFields = "Missing required fields"

// ValidationError means the request body was rejected before storage was touched.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MissingFields lists the required keys absent from a request body.
func MissingFields(keys ...string) error {
	return &ValidationError{Msg: MsgMissingFields, Err: missingKeysError(keys)}
}

type missingKeysError []string

func (keys missingKeysError) Error() string {
	return "missing keys: " + strings.Join(keys, ", ")
}

// StorageError wraps a failed insert or query. Its message is the
// underlying driver message.
type StorageError struct {
	Op  string
	Err error
}

func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NotificationError wraps a failed SMTP exchange. It is only ever raised
// after the row has been committed.
type NotificationError struct {
	Err error
}

func Notification(err error) error {
	if err == nil {
		return nil
	}
	return &NotificationError{Err: err}
}

func (e *NotificationError) Error() string {
	return e.Err.Error()
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// Status maps an error kind to its HTTP status code.
func Status(err error) int {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
