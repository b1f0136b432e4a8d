package specialty

import (
	"context"
	"errors"
	"fmt"

	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
	"github.com/patinaomi/sprint-3-devops/internal/platform/patch"
	"github.com/patinaomi/sprint-3-devops/internal/platform/reference"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func notFound(id string) error {
	return apperr.NotFound(string(reference.Specialty), id)
}

func (s *Service) Create(ctx context.Context, req *Request) (*Specialty, error) {
	sp := NewSpecialty(req)
	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *Service) List(ctx context.Context) ([]*Specialty, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Specialty, error) {
	return reference.Resolve[Specialty](ctx, reference.Specialty, id, s.repo)
}

func (s *Service) Update(ctx context.Context, id string, req *Request) (*Specialty, error) {
	return s.save(ctx, id, NewSpecialty(req))
}

func (s *Service) Patch(ctx context.Context, id string, p *Patch) (*Specialty, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return s.save(ctx, id, existing)
	}
	return s.save(ctx, id, patch.Merge[Specialty](existing, p))
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check specialty %s: %w", id, err)
	}
	if !ok {
		return notFound(id)
	}
	if err := s.repo.Delete(ctx, id); errors.Is(err, store.ErrNotFound) {
		return notFound(id)
	} else if err != nil {
		return err
	}
	return nil
}

// save is the shared tail of Update and Patch: it refuses unknown ids and
// pins the stored identifier to id.
func (s *Service) save(ctx context.Context, id string, sp *Specialty) (*Specialty, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check specialty %s: %w", id, err)
	}
	if !ok {
		return nil, notFound(id)
	}
	sp.ID = id
	if err := s.repo.Update(ctx, sp); errors.Is(err, store.ErrNotFound) {
		return nil, notFound(id)
	} else if err != nil {
		return nil, err
	}
	return sp, nil
}
