package consultation

import (
	"context"
	"errors"
	"fmt"

	"github.com/patinaomi/sprint-3-devops/internal/domain/client"
	"github.com/patinaomi/sprint-3-devops/internal/domain/clinic"
	"github.com/patinaomi/sprint-3-devops/internal/domain/dentist"
	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
	"github.com/patinaomi/sprint-3-devops/internal/platform/patch"
	"github.com/patinaomi/sprint-3-devops/internal/platform/reference"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

// Refs are the lookups a consultation's foreign keys are checked against.
type Refs struct {
	Clients  reference.Getter[client.Client]
	Clinics  reference.Getter[clinic.Clinic]
	Dentists reference.Getter[dentist.Dentist]
}

type Service struct {
	repo Repository
	refs Refs
}

func NewService(repo Repository, refs Refs) *Service {
	return &Service{repo: repo, refs: refs}
}

func (s *Service) checkRefs(ctx context.Context, req *Request) error {
	return reference.Require(ctx,
		reference.To[client.Client](reference.Client, req.ClientID, s.refs.Clients, nil),
		reference.To[clinic.Clinic](reference.Clinic, req.ClinicID, s.refs.Clinics, nil),
		reference.To[dentist.Dentist](reference.Dentist, req.DentistID, s.refs.Dentists, nil),
	)
}

func (s *Service) Create(ctx context.Context, req *Request) (*Consultation, error) {
	if err := s.checkRefs(ctx, req); err != nil {
		return nil, err
	}
	c := NewConsultation(req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]*Consultation, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Consultation, error) {
	return reference.Resolve[Consultation](ctx, reference.Consultation, id, s.repo)
}

func (s *Service) Update(ctx context.Context, id string, req *Request) (*Consultation, error) {
	if err := s.exists(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, req); err != nil {
		return nil, err
	}
	return s.save(ctx, id, NewConsultation(req))
}

func (s *Service) Patch(ctx context.Context, id string, p *Patch) (*Consultation, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Patch{}
	}
	merged := patch.Merge[Consultation](existing, p)
	if err := s.exists(ctx, id); err != nil {
		return nil, err
	}
	return s.save(ctx, id, merged)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.exists(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound(string(reference.Consultation), id)
		}
		return err
	}
	return nil
}

func (s *Service) exists(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check consultation %s: %w", id, err)
	}
	if !ok {
		return apperr.NotFound(string(reference.Consultation), id)
	}
	return nil
}

func (s *Service) save(ctx context.Context, id string, c *Consultation) (*Consultation, error) {
	c.ID = id
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound(string(reference.Consultation), id)
		}
		return nil, err
	}
	return c, nil
}
