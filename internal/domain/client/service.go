package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
	"github.com/patinaomi/sprint-3-devops/internal/platform/patch"
	"github.com/patinaomi/sprint-3-devops/internal/platform/reference"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

const (
	WelcomeSubject = "Cadastro Realizado"
	welcomeBody    = "Olá, %s! Seu cadastro foi realizado com sucesso!"
)

// Notifier delivers a message on a best-effort basis. Implementations log
// their own failures; nothing is reported back.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string)
}

type Service struct {
	repo     Repository
	notifier Notifier
	logger   zerolog.Logger
}

// NewService returns a client service. notifier may be nil, in which case no
// welcome message is sent.
func NewService(repo Repository, notifier Notifier, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With().Str("component", "client").Logger(),
	}
}

// Create stores a new client and then sends the welcome email. The email is
// sent only after the client is saved and its outcome never affects the
// result.
func (s *Service) Create(ctx context.Context, req *Request) (*Client, error) {
	c := NewClient(req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info().Str("client_id", c.ID).Msg("client registered")

	if s.notifier != nil {
		s.notifier.Send(ctx, c.Email, WelcomeSubject, WelcomeBody(c.Name))
	}
	return c, nil
}

// WelcomeBody renders the registration email for name.
func WelcomeBody(name string) string {
	return fmt.Sprintf(welcomeBody, name)
}

func (s *Service) List(ctx context.Context) ([]*Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Client, error) {
	return reference.Resolve[Client](ctx, reference.Client, id, s.repo)
}

func (s *Service) Update(ctx context.Context, id string, req *Request) (*Client, error) {
	return s.save(ctx, id, NewClient(req))
}

func (s *Service) Patch(ctx context.Context, id string, p *Patch) (*Client, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &Patch{}
	}
	return s.save(ctx, id, patch.Merge[Client](existing, p))
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.requireExisting(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound(string(reference.Client), id)
		}
		return err
	}
	return nil
}

func (s *Service) requireExisting(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check client %s: %w", id, err)
	}
	if !ok {
		return apperr.NotFound(string(reference.Client), id)
	}
	return nil
}

func (s *Service) save(ctx context.Context, id string, c *Client) (*Client, error) {
	if err := s.requireExisting(ctx, id); err != nil {
		return nil, err
	}
	c.ID = id
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound(string(reference.Client), id)
		}
		return nil, err
	}
	return c, nil
}
