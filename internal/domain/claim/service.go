package claim

import (
	"context"
	"errors"
	"fmt"

	"github.com/patinaomi/sprint-3-devops/internal/domain/consultation"
	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
	"github.com/patinaomi/sprint-3-devops/internal/platform/patch"
	"github.com/patinaomi/sprint-3-devops/internal/platform/reference"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type Service struct {
	repo          Repository
	consultations reference.Getter[consultation.Consultation]
}

func NewService(repo Repository, consultations reference.Getter[consultation.Consultation]) *Service {
	return &Service{repo: repo, consultations: consultations}
}

func (s *Service) Create(ctx context.Context, req *Request) (*Claim, error) {
	if _, err := reference.Resolve[consultation.Consultation](ctx, reference.Consultation, req.ConsultationID, s.consultations); err != nil {
		return nil, err
	}
	c := NewClaim(req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]*Claim, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Claim, error) {
	return reference.Resolve[Claim](ctx, reference.Claim, id, s.repo)
}

func (s *Service) Update(ctx context.Context, id string, req *Request) (*Claim, error) {
	if err := s.requireClaim(ctx, id); err != nil {
		return nil, err
	}
	if _, err := reference.Resolve[consultation.Consultation](ctx, reference.Consultation, req.ConsultationID, s.consultations); err != nil {
		return nil, err
	}
	c := NewClaim(req)
	c.ID = id
	if err := s.update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Patch(ctx context.Context, id string, p *Patch) (*Claim, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Patch{}
	}
	merged := patch.Merge[Claim](existing, p)
	merged.ID = id
	if err := s.requireClaim(ctx, id); err != nil {
		return nil, err
	}
	if err := s.update(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.requireClaim(ctx, id); err != nil {
		return err
	}
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(string(reference.Claim), id)
	}
	return err
}

func (s *Service) update(ctx context.Context, c *Claim) error {
	err := s.repo.Update(ctx, c)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(string(reference.Claim), c.ID)
	}
	return err
}

func (s *Service) requireClaim(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check claim %s: %w", id, err)
	}
	if !ok {
		return apperr.NotFound(string(reference.Claim), id)
	}
	return nil
}
