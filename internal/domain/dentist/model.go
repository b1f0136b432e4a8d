package dentist

import "github.com/patinaomi/sprint-3-devops/internal/platform/patch"

// Dentist works at one clinic in one specialty.
type Dentist struct {
	ID          string  `json:"id"`
	Name        string  `json:"nome"`
	Surname     string  `json:"sobrenome"`
	Phone       string  `json:"telefone"`
	ClinicID    string  `json:"clinica_id"`
	SpecialtyID string  `json:"especialidade_id"`
	Rating      float64 `json:"avaliacao"`
}

type Request struct {
	Name        string   `json:"nome" validate:"required,max=100"`
	Surname     string   `json:"sobrenome" validate:"required,max=100"`
	Phone       string   `json:"telefone" validate:"required,max=15"`
	ClinicID    string   `json:"clinica_id" validate:"required"`
	SpecialtyID string   `json:"especialidade_id" validate:"required"`
	Rating      *float64 `json:"avaliacao" validate:"required"`
}

// Patch never moves a dentist to another clinic or specialty; that takes a
// full update.
type Patch struct {
	Name    *string  `json:"nome" validate:"omitempty,max=100"`
	Surname *string  `json:"sobrenome" validate:"omitempty,max=100"`
	Phone   *string  `json:"telefone" validate:"omitempty,max=15"`
	Rating  *float64 `json:"avaliacao"`
}

func (p *Patch) Apply(d *Dentist) {
	patch.Set(&d.Name, p.Name)
	patch.Set(&d.Surname, p.Surname)
	patch.Set(&d.Phone, p.Phone)
	patch.Set(&d.Rating, p.Rating)
}

func NewDentist(req *Request) *Dentist {
	d := &Dentist{
		Name:        req.Name,
		Surname:     req.Surname,
		Phone:       req.Phone,
		ClinicID:    req.ClinicID,
		SpecialtyID: req.SpecialtyID,
	}
	patch.Set(&d.Rating, req.Rating)
	return d
}
