package intakeform

import (
	"context"
	"errors"
	"fmt"

	"github.com/patinaomi/sprint-3-devops/internal/domain/client"
	"github.com/patinaomi/sprint-3-devops/internal/domain/maritalstatus"
	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
	"github.com/patinaomi/sprint-3-devops/internal/platform/patch"
	"github.com/patinaomi/sprint-3-devops/internal/platform/reference"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type Service struct {
	repo     Repository
	clients  reference.Getter[client.Client]
	statuses reference.Getter[maritalstatus.MaritalStatus]
}

func NewService(repo Repository, clients reference.Getter[client.Client], statuses reference.Getter[maritalstatus.MaritalStatus]) *Service {
	return &Service{repo: repo, clients: clients, statuses: statuses}
}

// references checks the client and then the marital status of req.
func (s *Service) references(ctx context.Context, req *Request) error {
	return reference.Require(ctx,
		reference.To[client.Client](reference.Client, req.ClientID, s.clients, nil),
		reference.To[maritalstatus.MaritalStatus](reference.MaritalStatus, req.MaritalStatusID, s.statuses, nil),
	)
}

func (s *Service) Create(ctx context.Context, req *Request) (*Form, error) {
	if err := s.references(ctx, req); err != nil {
		return nil, err
	}
	f := NewForm(req)
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) List(ctx context.Context) ([]*Form, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Form, error) {
	return reference.Resolve[Form](ctx, reference.IntakeForm, id, s.repo)
}

func (s *Service) Update(ctx context.Context, id string, req *Request) (*Form, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}
	if err := s.references(ctx, req); err != nil {
		return nil, err
	}
	return s.save(ctx, id, NewForm(req))
}

func (s *Service) Patch(ctx context.Context, id string, p *Patch) (*Form, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Patch{}
	}
	merged := patch.Merge[Form](existing, p)
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
		return fmt.Errorf("check intake form %s: %w", id, err)
	}
	if !ok {
		return apperr.NotFound(string(reference.IntakeForm), id)
	}
	return nil
}

func (s *Service) save(ctx context.Context, id string, f *Form) (*Form, error) {
	f.ID = id
	if err := s.notFound(s.repo.Update(ctx, f), id); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) notFound(err error, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(string(reference.IntakeForm), id)
	}
	return err
}
