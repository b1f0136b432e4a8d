package claim

import (
	"github.com/patinaomi/sprint-3-devops/internal/platform/patch"
	"github.com/patinaomi/sprint-3-devops/pkg/civil"
)

// Claim is an insurance claim (sinistro) opened against a consultation.
type Claim struct {
	ID                string      `json:"id"`
	ConsultationID    string      `json:"consulta_id"`
	Name              string      `json:"nome"`
	Description       string      `json:"descricao,omitempty"`
	Status            string      `json:"status_sinistro,omitempty"`
	StatusDescription string      `json:"descricao_status,omitempty"`
	Amount            *float64    `json:"valor_sinistro,omitempty"`
	OpenedDate        *civil.Date `json:"data_abertura,omitempty"`
	ResolvedDate      *civil.Date `json:"data_resolucao,omitempty"`
	Documentation     string      `json:"documentacao,omitempty"`
}

type Request struct {
	ConsultationID    string      `json:"consulta_id" validate:"required"`
	Name              string      `json:"nome" validate:"required,max=100"`
	Description       string      `json:"descricao" validate:"max=250"`
	Status            string      `json:"status_sinistro" validate:"omitempty,len=1"`
	StatusDescription string      `json:"descricao_status" validate:"max=250"`
	Amount            *float64    `json:"valor_sinistro" validate:"omitempty,gte=0"`
	OpenedDate        *civil.Date `json:"data_abertura"`
	ResolvedDate      *civil.Date `json:"data_resolucao"`
	Documentation     string      `json:"documentacao" validate:"max=250"`
}

type Patch struct {
	Name              *string     `json:"nome" validate:"omitempty,max=100"`
	Description       *string     `json:"descricao" validate:"omitempty,max=250"`
	Status            *string     `json:"status_sinistro" validate:"omitempty,len=1"`
	StatusDescription *string     `json:"descricao_status" validate:"omitempty,max=250"`
	Amount            *float64    `json:"valor_sinistro" validate:"omitempty,gte=0"`
	OpenedDate        *civil.Date `json:"data_abertura"`
	ResolvedDate      *civil.Date `json:"data_resolucao"`
	Documentation     *string     `json:"documentacao" validate:"omitempty,max=250"`
}

func (p *Patch) Apply(c *Claim) {
	patch.Set(&c.Name, p.Name)
	patch.Set(&c.Description, p.Description)
	patch.Set(&c.Status, p.Status)
	patch.Set(&c.StatusDescription, p.StatusDescription)
	patch.SetOptional(&c.Amount, p.Amount)
	patch.SetOptional(&c.OpenedDate, p.OpenedDate)
	patch.SetOptional(&c.ResolvedDate, p.ResolvedDate)
	patch.Set(&c.Documentation, p.Documentation)
}

func NewClaim(req *Request) *Claim {
	c := &Claim{
		ConsultationID:    req.ConsultationID,
		Name:              req.Name,
		Description:       req.Description,
		Status:            req.Status,
		StatusDescription: req.StatusDescription,
		Documentation:     req.Documentation,
	}
	patch.SetOptional(&c.Amount, req.Amount)
	patch.SetOptional(&c.OpenedDate, req.OpenedDate)
	patch.SetOptional(&c.ResolvedDate, req.ResolvedDate)
	return c
}
