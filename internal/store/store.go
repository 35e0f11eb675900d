// Package store is the persistence gateway. It wraps an injected *gorm.DB
// handle; nothing in here keeps global state, so tests and callers decide
// where the handle comes from.
package store

import (
	"gorm.io/gorm"
)

// Store manages users and meals
type Store struct {
	db *gorm.DB
}

// New creates a new store around an open database handle
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
