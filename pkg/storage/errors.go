package storage

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert would collide with an existing record.
var ErrDuplicate = errors.New("record already exists")
