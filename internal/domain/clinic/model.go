package clinic

import "github.com/patinaomi/sprint-3-devops/internal/platform/patch"

// Clinic is a dental clinic where dentists practice and consultations happen.
type Clinic struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone,omitempty"`
}

// Request is the body of create and full update.
type Request struct {
	Name    string `json:"nome" validate:"required,max=100"`
	Address string `json:"endereco" validate:"required,max=250"`
	Phone   string `json:"telefone" validate:"max=20"`
}

// Patch carries the fields of a partial update. Nil means unchanged.
type Patch struct {
	Name    *string `json:"nome" validate:"omitempty,max=100"`
	Address *string `json:"endereco" validate:"omitempty,max=250"`
	Phone   *string `json:"telefone" validate:"omitempty,max=20"`
}

var _ patch.Patch[Clinic] = (*Patch)(nil)

func (p *Patch) Apply(c *Clinic) {
	patch.Set(&c.Name, p.Name)
	patch.Set(&c.Address, p.Address)
	patch.Set(&c.Phone, p.Phone)
}

func NewClinic(req *Request) *Clinic {
	return &Clinic{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}
}
