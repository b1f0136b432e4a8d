package feedback

import "github.com/patinaomi/sprint-3-devops/internal/platform/patch"

// Feedback is a client's rating of a dentist and clinic.
type Feedback struct {
	ID        string  `json:"id"`
	ClientID  string  `json:"cliente_id"`
	DentistID string  `json:"dentista_id"`
	ClinicID  string  `json:"clinica_id"`
	Rating    float64 `json:"avaliacao"`
	Comment   string  `json:"comentario,omitempty"`
}

type Request struct {
	ClientID  string   `json:"cliente_id" validate:"required"`
	DentistID string   `json:"dentista_id" validate:"required"`
	ClinicID  string   `json:"clinica_id" validate:"required"`
	Rating    *float64 `json:"avaliacao" validate:"required"`
	Comment   string   `json:"comentario" validate:"max=250"`
}

type Patch struct {
	Rating  *float64 `json:"avaliacao"`
	Comment *string  `json:"comentario" validate:"omitempty,max=250"`
}

func (p *Patch) Apply(f *Feedback) {
	patch.Set(&f.Rating, p.Rating)
	patch.Set(&f.Comment, p.Comment)
}

func NewFeedback(req *Request) *Feedback {
	f := &Feedback{
		ClientID:  req.ClientID,
		DentistID: req.DentistID,
		ClinicID:  req.ClinicID,
		Comment:   req.Comment,
	}
	patch.Set(&f.Rating, req.Rating)
	return f
}
