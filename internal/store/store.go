// Package store persists users, groups, posts, comments and follow edges.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every lookup-by-identity that misses.
var ErrNotFound = errors.New("not found")

// Store is the gorm-backed entity store.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an open connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying connection. Tests use it to inspect rows directly.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
