package repository

import "errors"

// Sentinel errors shared by all repositories. Handlers map these to
// HTTP statuses with errors.Is.
var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("document already exists")
	ErrInvalidID = errors.New("invalid document ID")
)
