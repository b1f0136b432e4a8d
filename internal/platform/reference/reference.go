// Package reference resolves foreign-key identifiers to stored records before
// a dependent record is written.
package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

// Kind names a referenced entity type. It is carried by NotFound errors so
// callers can tell which reference failed.
type Kind string

const (
	Client        Kind = "client"
	Clinic        Kind = "clinic"
	Dentist       Kind = "dentist"
	Consultation  Kind = "consultation"
	Specialty     Kind = "specialty"
	MaritalStatus Kind = "marital_status"
	Claim         Kind = "claim"
	Feedback      Kind = "feedback"
	IntakeForm    Kind = "intake_form"
)

// Getter fetches a record by identifier, returning store.ErrNotFound when it
// does not exist.
type Getter[E any] interface {
	GetByID(ctx context.Context, id string) (*E, error)
}

// Resolve fetches the record of kind identified by id.
func Resolve[E any](ctx context.Context, kind Kind, id string, g Getter[E]) (*E, error) {
	if id == "" {
		return nil, apperr.NotFound(string(kind), id)
	}
	e, err := g.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound(string(kind), id)
		}
		return nil, fmt.Errorf("resolve %s %s: %w", kind, id, err)
	}
	return e, nil
}

// Ref is one foreign key to check as part of a Require pass.
type Ref func(ctx context.Context) error

// To builds a Ref for id against g. When dst is non-nil it receives the
// resolved record.
func To[E any](kind Kind, id string, g Getter[E], dst **E) Ref {
	return func(ctx context.Context) error {
		e, err := Resolve(ctx, kind, id, g)
		if err != nil {
			return err
		}
		if dst != nil {
			*dst = e
		}
		return nil
	}
}

// Require resolves every ref in order and returns the first failure. It must
// run before any write so a failed reference leaves the store untouched.
func Require(ctx context.Context, refs ...Ref) error {
	for _, ref := range refs {
		if err := ref(ctx); err != nil {
			return err
		}
	}
	return nil
}
