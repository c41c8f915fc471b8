// internal/services/errors.go
package services

import "errors"

// Failure kinds crossing the service boundary. Handlers branch on these with
// errors.Is; raw gorm errors never leave this package.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrBlocked      = errors.New("operation blocked by existing references")
	ErrPersistence  = errors.New("persistence failure")
)
