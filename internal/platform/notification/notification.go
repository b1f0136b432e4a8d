// Package notification delivers outbound email on a best-effort basis.
// Delivery failures are recorded and logged but never returned to the code
// path that triggered the message.
package notification

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Notification is a single outbound email and its delivery outcome.
type Notification struct {
	ID           string            `json:"id"`
	Recipient    string            `json:"recipient"`
	Subject      string            `json:"subject"`
	Body         string            `json:"body"`
	TemplateID   string            `json:"template_id,omitempty"`
	TemplateData map[string]string `json:"template_data,omitempty"`
	Status       string            `json:"status"`
	Attempts     int               `json:"attempts"`
	CreatedAt    time.Time         `json:"created_at"`
	SentAt       *time.Time        `json:"sent_at,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// ErrNotFound is returned for an unknown notification id.
var ErrNotFound = errors.New("notification not found")

// DefaultHistoryLimit is how many notifications a Manager keeps before
// dropping the oldest.
const DefaultHistoryLimit = 1000

// EmailSender is the delivery channel.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// ---------------------------------------------------------------------------
// Templates
// ---------------------------------------------------------------------------

const (
	TemplateTransactionError   = "transaction-error"
	TemplateConsultationReturn = "consultation-return"
	TemplateClaimStatusUpdated = "claim-status-updated"
)

// Template is a reusable message with {{key}} placeholders.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// TemplateEngine holds templates and renders them.
type TemplateEngine struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewTemplateEngine returns an engine with the built-in templates registered.
func NewTemplateEngine() *TemplateEngine {
	e := &TemplateEngine{templates: make(map[string]*Template)}
	for _, t := range []Template{
		{
			ID:      TemplateTransactionError,
			Name:    "Erro na Transação",
			Subject: "Erro na Transação",
			Body:    "Olá, {{nome}}! Não foi possível fazer o cadastro devido ao seguinte erro:\n\n{{erro}}\n\nPor favor, tente novamente mais tarde.",
		},
		{
			ID:      TemplateConsultationReturn,
			Name:    "Retorno de Consulta",
			Subject: "Lembrete de retorno",
			Body:    "Olá, {{nome}}! Seu retorno está agendado para {{data_retorno}} na clínica {{clinica}}.",
		},
		{
			ID:      TemplateClaimStatusUpdated,
			Name:    "Atualização de Sinistro",
			Subject: "Sinistro {{sinistro}} atualizado",
			Body:    "Olá, {{nome}}! O status do seu sinistro {{sinistro}} mudou para {{status}}.",
		},
	} {
		t := t
		e.templates[t.ID] = &t
	}
	return e
}

// RegisterTemplate adds or replaces a template.
func (e *TemplateEngine) RegisterTemplate(t Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[t.ID] = &t
}

// Render replaces {{key}} placeholders with data. Unknown placeholders are
// left as-is.
func (e *TemplateEngine) Render(templateID string, data map[string]string) (subject, body string, err error) {
	e.mu.RLock()
	t, ok := e.templates[templateID]
	e.mu.RUnlock()
	if !ok {
		return "", "", fmt.Errorf("template %q not found", templateID)
	}

	subject = t.Subject
	body = t.Body
	for k, v := range data {
		placeholder := "{{" + k + "}}"
		subject = strings.ReplaceAll(subject, placeholder, v)
		body = strings.ReplaceAll(body, placeholder, v)
	}
	return subject, body, nil
}

// ---------------------------------------------------------------------------
// Manager
// ---------------------------------------------------------------------------

// Manager sends email through an EmailSender and keeps an in-memory history
// of every attempt.
type Manager struct {
	sender    EmailSender
	templates *TemplateEngine
	logger    zerolog.Logger

	mu            sync.RWMutex
	notifications map[string]*Notification
	order         []string
	limit         int
}

// NewManager constructs a Manager.
func NewManager(sender EmailSender, tpl *TemplateEngine, logger zerolog.Logger) *Manager {
	if tpl == nil {
		tpl = NewTemplateEngine()
	}
	return &Manager{
		sender:        sender,
		templates:     tpl,
		logger:        logger.With().Str("component", "notification").Logger(),
		notifications: make(map[string]*Notification),
		limit:         DefaultHistoryLimit,
	}
}

// SetHistoryLimit changes how many notifications are retained. n <= 0 keeps
// the current limit.
func (m *Manager) SetHistoryLimit(n int) {
	if n <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.limit = n
	m.trimLocked()
}

func (m *Manager) trimLocked() {
	for len(m.order) > m.limit {
		delete(m.notifications, m.order[0])
		m.order = m.order[1:]
	}
}

// Send delivers a message and swallows any failure after logging it. It is
// the entry point domain services use.
func (m *Manager) Send(ctx context.Context, to, subject, body string) {
	n := &Notification{Recipient: to, Subject: subject, Body: body}
	_ = m.Dispatch(ctx, n)
}

// Dispatch delivers n, records it and returns the delivery error, if any.
func (m *Manager) Dispatch(ctx context.Context, n *Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now().UTC()
	n.Status = StatusPending

	m.mu.Lock()
	if _, ok := m.notifications[n.ID]; !ok {
		m.order = append(m.order, n.ID)
	}
	m.notifications[n.ID] = n
	m.trimLocked()
	m.mu.Unlock()

	return m.deliver(ctx, n)
}

func (m *Manager) deliver(ctx context.Context, n *Notification) error {
	err := m.safeSend(ctx, n)

	m.mu.Lock()
	n.Attempts++
	if err != nil {
		n.Status = StatusFailed
		n.Error = err.Error()
	} else {
		n.Status = StatusSent
		n.Error = ""
		sentAt := time.Now().UTC()
		n.SentAt = &sentAt
	}
	m.mu.Unlock()

	if err != nil {
		m.logger.Error().Err(err).
			Str("notification_id", n.ID).
			Str("recipient", n.Recipient).
			Str("subject", n.Subject).
			Msg("email delivery failed")
		return err
	}
	m.logger.Info().
		Str("notification_id", n.ID).
		Str("recipient", n.Recipient).
		Msg("email sent")
	return nil
}

// safeSend converts a panicking sender into an error so a broken channel
// cannot take down the request that triggered it.
func (m *Manager) safeSend(ctx context.Context, n *Notification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("email sender panic: %v", r)
		}
	}()
	if m.sender == nil {
		return fmt.Errorf("no email sender configured")
	}
	return m.sender.SendEmail(ctx, n.Recipient, n.Subject, n.Body)
}

// SendTemplate renders templateID with data and dispatches the result.
func (m *Manager) SendTemplate(ctx context.Context, templateID string, data map[string]string, recipient string) (*Notification, error) {
	subject, body, err := m.templates.Render(templateID, data)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	n := &Notification{
		Recipient:    recipient,
		Subject:      subject,
		Body:         body,
		TemplateID:   templateID,
		TemplateData: data,
	}
	if err := m.Dispatch(ctx, n); err != nil {
		return n, err
	}
	return n, nil
}

// Get returns a copy of the notification with id.
func (m *Manager) Get(_ context.Context, id string) (*Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.notifications[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	cp := *n
	return &cp, nil
}

// List returns notifications, newest first, optionally filtered by recipient.
func (m *Manager) List(_ context.Context, recipient string, limit int) []*Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Notification, 0)
	for _, n := range m.notifications {
		if recipient != "" && n.Recipient != recipient {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Retry re-sends a failed notification. The record is marked pending before
// delivery so concurrent retries of the same id send at most once.
func (m *Manager) Retry(ctx context.Context, id string) error {
	m.mu.Lock()
	n, ok := m.notifications[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if n.Status != StatusFailed {
		status := n.Status
		m.mu.Unlock()
		return fmt.Errorf("notification %q is not in failed status (current: %s)", id, status)
	}
	n.Status = StatusPending
	m.mu.Unlock()

	return m.deliver(ctx, n)
}

// Stats counts notifications by status.
func (m *Manager) Stats(_ context.Context) map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := make(map[string]int)
	for _, n := range m.notifications {
		stats[n.Status]++
	}
	return stats
}
