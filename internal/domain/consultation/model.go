package consultation

import (
	"github.com/patinaomi/sprint-3-devops/internal/platform/patch"
	"github.com/patinaomi/sprint-3-devops/pkg/civil"
)

// Consultation is an appointment of a client with a dentist at a clinic.
// Status is a free-form one-character code; transitions are not checked.
type Consultation struct {
	ID                   string      `json:"id"`
	ClientID             string      `json:"cliente_id"`
	ClinicID             string      `json:"clinica_id"`
	DentistID            string      `json:"dentista_id"`
	ServiceType          string      `json:"tipo_servico"`
	Date                 civil.Date  `json:"data_consulta"`
	Status               string      `json:"status_consulta,omitempty"`
	Notes                string      `json:"observacoes,omitempty"`
	Symptoms             string      `json:"sintomas,omitempty"`
	RecommendedTreatment string      `json:"tratamento_recomendado,omitempty"`
	Cost                 *float64    `json:"custo,omitempty"`
	Prescription         string      `json:"prescricao,omitempty"`
	ReturnDate           *civil.Date `json:"data_retorno,omitempty"`
}

type Request struct {
	ClientID             string      `json:"cliente_id" validate:"required"`
	ClinicID             string      `json:"clinica_id" validate:"required"`
	DentistID            string      `json:"dentista_id" validate:"required"`
	ServiceType          string      `json:"tipo_servico" validate:"required,max=100"`
	Date                 *civil.Date `json:"data_consulta" validate:"required"`
	Status               string      `json:"status_consulta" validate:"omitempty,len=1"`
	Notes                string      `json:"observacoes" validate:"max=250"`
	Symptoms             string      `json:"sintomas" validate:"max=250"`
	RecommendedTreatment string      `json:"tratamento_recomendado" validate:"max=250"`
	Cost                 *float64    `json:"custo" validate:"omitempty,gte=0"`
	Prescription         string      `json:"prescricao" validate:"max=250"`
	ReturnDate           *civil.Date `json:"data_retorno"`
}

// Patch holds the schedulable and clinical fields. The parties of a
// consultation are fixed once it is booked.
type Patch struct {
	ServiceType          *string     `json:"tipo_servico" validate:"omitempty,max=100"`
	Date                 *civil.Date `json:"data_consulta"`
	Status               *string     `json:"status_consulta" validate:"omitempty,len=1"`
	Notes                *string     `json:"observacoes" validate:"omitempty,max=250"`
	Symptoms             *string     `json:"sintomas" validate:"omitempty,max=250"`
	RecommendedTreatment *string     `json:"tratamento_recomendado" validate:"omitempty,max=250"`
	Cost                 *float64    `json:"custo" validate:"omitempty,gte=0"`
	Prescription         *string     `json:"prescricao" validate:"omitempty,max=250"`
	ReturnDate           *civil.Date `json:"data_retorno"`
}

func (p *Patch) Apply(c *Consultation) {
	patch.Set(&c.ServiceType, p.ServiceType)
	patch.Set(&c.Date, p.Date)
	patch.Set(&c.Status, p.Status)
	patch.Set(&c.Notes, p.Notes)
	patch.Set(&c.Symptoms, p.Symptoms)
	patch.Set(&c.RecommendedTreatment, p.RecommendedTreatment)
	patch.SetOptional(&c.Cost, p.Cost)
	patch.Set(&c.Prescription, p.Prescription)
	patch.SetOptional(&c.ReturnDate, p.ReturnDate)
}

func NewConsultation(req *Request) *Consultation {
	c := &Consultation{
		ClientID:             req.ClientID,
		ClinicID:             req.ClinicID,
		DentistID:            req.DentistID,
		ServiceType:          req.ServiceType,
		Status:               req.Status,
		Notes:                req.Notes,
		Symptoms:             req.Symptoms,
		RecommendedTreatment: req.RecommendedTreatment,
		Prescription:         req.Prescription,
	}
	patch.Set(&c.Date, req.Date)
	patch.SetOptional(&c.Cost, req.Cost)
	patch.SetOptional(&c.ReturnDate, req.ReturnDate)
	return c
}
