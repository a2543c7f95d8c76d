package repositories

import "errors"

var (
	// ErrNotFound means no record matched the id or position.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means an equal record is already stored.
	ErrDuplicate = errors.New("record already exists")
)
