// Package store defines the persistence contract shared by every entity
// repository and an in-memory implementation used for development and tests.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when no row matches an identifier.
var ErrNotFound = errors.New("not found")

// Repository is the per-entity-type persistence contract. Create assigns the
// identifier; Update and Delete never create rows.
type Repository[E any] interface {
	Create(ctx context.Context, e *E) error
	GetByID(ctx context.Context, id string) (*E, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*E, error)
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id string) error
}
