package clinic

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

func (s *Service) Create(ctx context.Context, req *Request) (*Clinic, error) {
	c := NewClinic(req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]*Clinic, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Clinic, error) {
	return reference.Resolve[Clinic](ctx, reference.Clinic, id, s.repo)
}

func (s *Service) Update(ctx context.Context, id string, req *Request) (*Clinic, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}
	return s.save(ctx, id, NewClinic(req))
}

func (s *Service) Patch(ctx context.Context, id string, p *Patch) (*Clinic, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Patch{}
	}
	merged := patch.Merge[Clinic](existing, p)
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}
	return s.save(ctx, id, merged)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound(string(reference.Clinic), id)
		}
		return err
	}
	return nil
}

func (s *Service) mustExist(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check clinic %s: %w", id, err)
	}
	if !ok {
		return apperr.NotFound(string(reference.Clinic), id)
	}
	return nil
}

func (s *Service) save(ctx context.Context, id string, c *Clinic) (*Clinic, error) {
	c.ID = id
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound(string(reference.Clinic), id)
		}
		return nil, err
	}
	return c, nil
}
