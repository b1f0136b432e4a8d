package dentist

import (
	"context"
	"errors"
	"fmt"

	"github.com/patinaomi/sprint-3-devops/internal/domain/clinic"
	"github.com/patinaomi/sprint-3-devops/internal/domain/specialty"
	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
	"github.com/patinaomi/sprint-3-devops/internal/platform/patch"
	"github.com/patinaomi/sprint-3-devops/internal/platform/reference"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type Service struct {
	repo        Repository
	clinics     reference.Getter[clinic.Clinic]
	specialties reference.Getter[specialty.Specialty]
}

func NewService(repo Repository, clinics reference.Getter[clinic.Clinic], specialties reference.Getter[specialty.Specialty]) *Service {
	return &Service{repo: repo, clinics: clinics, specialties: specialties}
}

// references checks the clinic and then the specialty of req.
func (s *Service) references(ctx context.Context, req *Request) error {
	return reference.Require(ctx,
		reference.To[clinic.Clinic](reference.Clinic, req.ClinicID, s.clinics, nil),
		reference.To[specialty.Specialty](reference.Specialty, req.SpecialtyID, s.specialties, nil),
	)
}

func (s *Service) Create(ctx context.Context, req *Request) (*Dentist, error) {
	if err := s.references(ctx, req); err != nil {
		return nil, err
	}
	d := NewDentist(req)
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context) ([]*Dentist, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Dentist, error) {
	return reference.Resolve[Dentist](ctx, reference.Dentist, id, s.repo)
}

func (s *Service) Update(ctx context.Context, id string, req *Request) (*Dentist, error) {
	if err := s.exists(ctx, id); err != nil {
		return nil, err
	}
	if err := s.references(ctx, req); err != nil {
		return nil, err
	}
	return s.save(ctx, id, NewDentist(req))
}

// Patch merges p onto the stored dentist. Clinic and specialty are not part
// of a patch, so they are not resolved again.
func (s *Service) Patch(ctx context.Context, id string, p *Patch) (*Dentist, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Patch{}
	}
	merged := patch.Merge[Dentist](existing, p)
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
			return apperr.NotFound(string(reference.Dentist), id)
		}
		return err
	}
	return nil
}

func (s *Service) exists(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check dentist %s: %w", id, err)
	}
	if !ok {
		return apperr.NotFound(string(reference.Dentist), id)
	}
	return nil
}

func (s *Service) save(ctx context.Context, id string, d *Dentist) (*Dentist, error) {
	d.ID = id
	if err := s.repo.Update(ctx, d); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound(string(reference.Dentist), id)
		}
		return nil, err
	}
	return d, nil
}
