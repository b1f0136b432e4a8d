package client

import (
	"strings"

	"github.com/patinaomi/sprint-3-devops/internal/platform/patch"
	"github.com/patinaomi/sprint-3-devops/pkg/civil"
)

// Client is a patient of the dental plan. Phone holds digits only.
type Client struct {
	ID        string      `json:"id"`
	Name      string      `json:"nome"`
	Surname   string      `json:"sobrenome,omitempty"`
	Phone     string      `json:"telefone"`
	Email     string      `json:"email"`
	BirthDate *civil.Date `json:"data_nascimento,omitempty"`
	Address   string      `json:"endereco,omitempty"`
}

type Request struct {
	Name      string      `json:"nome" validate:"required,max=100"`
	Surname   string      `json:"sobrenome" validate:"max=100"`
	Phone     string      `json:"telefone" validate:"required,max=20,phone"`
	Email     string      `json:"email" validate:"required,email,max=100"`
	BirthDate *civil.Date `json:"data_nascimento"`
	Address   string      `json:"endereco" validate:"max=250"`
}

type Patch struct {
	Name      *string     `json:"nome" validate:"omitempty,max=100"`
	Surname   *string     `json:"sobrenome" validate:"omitempty,max=100"`
	Phone     *string     `json:"telefone" validate:"omitnil,max=20,phone"`
	Email     *string     `json:"email" validate:"omitempty,email,max=100"`
	BirthDate *civil.Date `json:"data_nascimento"`
	Address   *string     `json:"endereco" validate:"omitempty,max=250"`
}

func (p *Patch) Apply(c *Client) {
	patch.Set(&c.Name, p.Name)
	patch.Set(&c.Surname, p.Surname)
	if p.Phone != nil {
		c.Phone = NormalizePhone(*p.Phone)
	}
	patch.Set(&c.Email, p.Email)
	patch.SetOptional(&c.BirthDate, p.BirthDate)
	patch.Set(&c.Address, p.Address)
}

// NewClient builds a Client from a validated request, normalizing the phone.
func NewClient(req *Request) *Client {
	c := &Client{
		Name:    req.Name,
		Surname: req.Surname,
		Phone:   NormalizePhone(req.Phone),
		Email:   req.Email,
		Address: req.Address,
	}
	patch.SetOptional(&c.BirthDate, req.BirthDate)
	return c
}

// NormalizePhone strips every character that is not an ASCII digit.
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
