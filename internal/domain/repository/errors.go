package repository

import "errors"

// ErrNotFound is returned when a record with the given identifier does not
// exist in the store.
var ErrNotFound = errors.New("record not found")
