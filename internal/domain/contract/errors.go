package contract

import "errors"

// Sentinel errors shared by every repository implementation so usecases
// and handlers can branch without importing infrastructure packages.
var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid id")
	ErrDuplicate = errors.New("document already exists")
)
