package models

import "errors"

// ErrNotFound is returned by the storage layer when a row does not exist
var ErrNotFound = errors.New("not found")

// ErrOrderMismatch indicates a reorder request that does not list exactly the container's items
var ErrOrderMismatch = errors.New("order must list every item in the container exactly once")

// ErrInvalidInput is wrapped by every validation error the services return
var ErrInvalidInput = errors.New("invalid input")

// ErrConflict is wrapped by errors for requests that clash with existing state
var ErrConflict = errors.New("conflict")
