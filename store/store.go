// Package store implements persistence for users, voters and todo entries
// over a gorm database handle.
package store

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
