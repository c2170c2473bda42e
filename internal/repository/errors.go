package repository

import "errors"

// Sentinel errors shared by all repositories. Services and handlers
// match on these with errors.Is instead of inspecting driver errors.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
