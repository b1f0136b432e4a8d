package maritalstatus

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

func (s *Service) Create(ctx context.Context, req *Request) (*MaritalStatus, error) {
	m := NewMaritalStatus(req)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context) ([]*MaritalStatus, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*MaritalStatus, error) {
	return reference.Resolve[MaritalStatus](ctx, reference.MaritalStatus, id, s.repo)
}

func (s *Service) Update(ctx context.Context, id string, req *Request) (*MaritalStatus, error) {
	return s.save(ctx, id, NewMaritalStatus(req))
}

func (s *Service) Patch(ctx context.Context, id string, p *Patch) (*MaritalStatus, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Patch{}
	}
	return s.save(ctx, id, patch.Merge[MaritalStatus](existing, p))
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.exists(ctx, id); err != nil {
		return err
	}
	return mapNotFound(s.repo.Delete(ctx, id), id)
}

func (s *Service) save(ctx context.Context, id string, m *MaritalStatus) (*MaritalStatus, error) {
	if err := s.exists(ctx, id); err != nil {
		return nil, err
	}
	m.ID = id
	if err := mapNotFound(s.repo.Update(ctx, m), id); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) exists(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check marital status %s: %w", id, err)
	}
	if !ok {
		return apperr.NotFound(string(reference.MaritalStatus), id)
	}
	return nil
}

func mapNotFound(err error, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(string(reference.MaritalStatus), id)
	}
	return err
}
