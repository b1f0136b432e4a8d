package feedback

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

type Service struct {
	repo     Repository
	clients  reference.Getter[client.Client]
	dentists reference.Getter[dentist.Dentist]
	clinics  reference.Getter[clinic.Clinic]
}

func NewService(repo Repository, clients reference.Getter[client.Client], dentists reference.Getter[dentist.Dentist], clinics reference.Getter[clinic.Clinic]) *Service {
	return &Service{repo: repo, clients: clients, dentists: dentists, clinics: clinics}
}

func (s *Service) references(ctx context.Context, req *Request) error {
	return reference.Require(ctx,
		reference.To[client.Client](reference.Client, req.ClientID, s.clients, nil),
		reference.To[dentist.Dentist](reference.Dentist, req.DentistID, s.dentists, nil),
		reference.To[clinic.Clinic](reference.Clinic, req.ClinicID, s.clinics, nil),
	)
}

func (s *Service) Create(ctx context.Context, req *Request) (*Feedback, error) {
	if err := s.references(ctx, req); err != nil {
		return nil, err
	}
	f := NewFeedback(req)
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) List(ctx context.Context) ([]*Feedback, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Feedback, error) {
	return reference.Resolve[Feedback](ctx, reference.Feedback, id, s.repo)
}

func (s *Service) Update(ctx context.Context, id string, req *Request) (*Feedback, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}
	if err := s.references(ctx, req); err != nil {
		return nil, err
	}
	return s.save(ctx, id, NewFeedback(req))
}

func (s *Service) Patch(ctx context.Context, id string, p *Patch) (*Feedback, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Patch{}
	}
	merged := patch.Merge[Feedback](existing, p)
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}
	return s.save(ctx, id, merged)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}
	return s.notFound(s.repo.Delete(ctx, id), id)
}

func (s *Service) mustExist(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check feedback %s: %w", id, err)
	}
	if !ok {
		return apperr.NotFound(string(reference.Feedback), id)
	}
	return nil
}

func (s *Service) save(ctx context.Context, id string, f *Feedback) (*Feedback, error) {
	f.ID = id
	if err := s.notFound(s.repo.Update(ctx, f), id); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) notFound(err error, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(string(reference.Feedback), id)
	}
	return err
}
