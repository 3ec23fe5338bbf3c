// Package storage defines the sentinel errors shared between the Postgres
// implementation and the HTTP handlers that map them to status codes.
package storage

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already registered")
	ErrEventNotFound  = errors.New("event not found")
	ErrVendorNotFound = errors.New("vendor not found")
	ErrTaskNotFound   = errors.New("task not found")
)
