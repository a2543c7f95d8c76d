package services

import "errors"

// ErrInvalidInput marks a request the service refuses before touching
// storage.
var ErrInvalidInput = errors.New("invalid input")
