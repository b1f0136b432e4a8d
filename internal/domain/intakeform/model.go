// Package intakeform holds the detailed health and lifestyle questionnaire a
// client fills in at registration.
package intakeform

import (
	"github.com/patinaomi/sprint-3-devops/internal/platform/patch"
	"github.com/patinaomi/sprint-3-devops/pkg/civil"
)

// Form is one detailed intake questionnaire. Flag fields hold a single
// character code ("S"/"N" in practice) and are not interpreted.
type Form struct {
	ID                     string      `json:"id"`
	ClientID               string      `json:"cliente_id"`
	MaritalStatusID        string      `json:"estado_civil_id"`
	FamilyHistory          string      `json:"historico_familiar,omitempty"`
	Occupation             string      `json:"profissao,omitempty"`
	MonthlyIncome          *float64    `json:"renda_mensal,omitempty"`
	MedicalHistory         string      `json:"historico_medico,omitempty"`
	Allergy                string      `json:"alergia,omitempty"`
	PreexistingCondition   string      `json:"condicao_preexistente,omitempty"`
	MedicationUse          string      `json:"uso_medicamento,omitempty"`
	FamilyDentalHistory    string      `json:"familiar_com_doencas_dentarias,omitempty"`
	PreventiveProgram      string      `json:"participacao_em_programas_preventivos,omitempty"`
	EmergencyContact       string      `json:"contato_emergencial,omitempty"`
	SatisfactionSurvey     string      `json:"pesquisa_satisfacao,omitempty"`
	LastUpdated            *civil.Date `json:"data_ultima_atualizacao,omitempty"`
	PeriodicVisitFrequency string      `json:"frequencia_consulta_periodica,omitempty"`
	RiskFlag               string      `json:"sinalizacao_de_risco,omitempty"`
	TravelHistory          string      `json:"historico_de_viagem,omitempty"`
	AddressChangeHistory   string      `json:"historico_de_mudancas_de_endereco,omitempty"`
	ContactPreference      string      `json:"preferencia_de_contato,omitempty"`
}

type Request struct {
	ClientID               string      `json:"cliente_id" validate:"required"`
	MaritalStatusID        string      `json:"estado_civil_id" validate:"required"`
	FamilyHistory          string      `json:"historico_familiar" validate:"max=250"`
	Occupation             string      `json:"profissao" validate:"max=100"`
	MonthlyIncome          *float64    `json:"renda_mensal" validate:"omitempty,gte=0"`
	MedicalHistory         string      `json:"historico_medico" validate:"max=250"`
	Allergy                string      `json:"alergia" validate:"max=250"`
	PreexistingCondition   string      `json:"condicao_preexistente" validate:"max=250"`
	MedicationUse          string      `json:"uso_medicamento" validate:"max=250"`
	FamilyDentalHistory    string      `json:"familiar_com_doencas_dentarias" validate:"max=255"`
	PreventiveProgram      string      `json:"participacao_em_programas_preventivos" validate:"omitempty,len=1"`
	EmergencyContact       string      `json:"contato_emergencial" validate:"max=15"`
	SatisfactionSurvey     string      `json:"pesquisa_satisfacao" validate:"omitempty,len=1"`
	LastUpdated            *civil.Date `json:"data_ultima_atualizacao"`
	PeriodicVisitFrequency string      `json:"frequencia_consulta_periodica" validate:"omitempty,len=1"`
	RiskFlag               string      `json:"sinalizacao_de_risco" validate:"max=250"`
	TravelHistory          string      `json:"historico_de_viagem" validate:"max=250"`
	AddressChangeHistory   string      `json:"historico_de_mudancas_de_endereco" validate:"max=250"`
	ContactPreference      string      `json:"preferencia_de_contato" validate:"max=250"`
}

// Patch covers the answers that may change after intake. The client and
// marital status links and the family history are fixed once recorded.
type Patch struct {
	Occupation             *string     `json:"profissao" validate:"omitempty,max=100"`
	MonthlyIncome          *float64    `json:"renda_mensal" validate:"omitempty,gte=0"`
	MedicalHistory         *string     `json:"historico_medico" validate:"omitempty,max=250"`
	Allergy                *string     `json:"alergia" validate:"omitempty,max=250"`
	PreexistingCondition   *string     `json:"condicao_preexistente" validate:"omitempty,max=250"`
	MedicationUse          *string     `json:"uso_medicamento" validate:"omitempty,max=250"`
	FamilyDentalHistory    *string     `json:"familiar_com_doencas_dentarias" validate:"omitempty,max=255"`
	PreventiveProgram      *string     `json:"participacao_em_programas_preventivos" validate:"omitempty,len=1"`
	EmergencyContact       *string     `json:"contato_emergencial" validate:"omitempty,max=15"`
	SatisfactionSurvey     *string     `json:"pesquisa_satisfacao" validate:"omitempty,len=1"`
	LastUpdated            *civil.Date `json:"data_ultima_atualizacao"`
	PeriodicVisitFrequency *string     `json:"frequencia_consulta_periodica" validate:"omitempty,len=1"`
	RiskFlag               *string     `json:"sinalizacao_de_risco" validate:"omitempty,max=250"`
	TravelHistory          *string     `json:"historico_de_viagem" validate:"omitempty,max=250"`
	AddressChangeHistory   *string     `json:"historico_de_mudancas_de_endereco" validate:"omitempty,max=250"`
	ContactPreference      *string     `json:"preferencia_de_contato" validate:"omitempty,max=250"`
}

func (p *Patch) Apply(f *Form) {
	patch.Set(&f.Occupation, p.Occupation)
	patch.SetOptional(&f.MonthlyIncome, p.MonthlyIncome)
	patch.Set(&f.MedicalHistory, p.MedicalHistory)
	patch.Set(&f.Allergy, p.Allergy)
	patch.Set(&f.PreexistingCondition, p.PreexistingCondition)
	patch.Set(&f.MedicationUse, p.MedicationUse)
	patch.Set(&f.FamilyDentalHistory, p.FamilyDentalHistory)
	patch.Set(&f.PreventiveProgram, p.PreventiveProgram)
	patch.Set(&f.EmergencyContact, p.EmergencyContact)
	patch.Set(&f.SatisfactionSurvey, p.SatisfactionSurvey)
	patch.SetOptional(&f.LastUpdated, p.LastUpdated)
	patch.Set(&f.PeriodicVisitFrequency, p.PeriodicVisitFrequency)
	patch.Set(&f.RiskFlag, p.RiskFlag)
	patch.Set(&f.TravelHistory, p.TravelHistory)
	patch.Set(&f.AddressChangeHistory, p.AddressChangeHistory)
	patch.Set(&f.ContactPreference, p.ContactPreference)
}

func NewForm(req *Request) *Form {
	f := &Form{
		ClientID:               req.ClientID,
		MaritalStatusID:        req.MaritalStatusID,
		FamilyHistory:          req.FamilyHistory,
		Occupation:             req.Occupation,
		MedicalHistory:         req.MedicalHistory,
		Allergy:                req.Allergy,
		PreexistingCondition:   req.PreexistingCondition,
		MedicationUse:          req.MedicationUse,
		FamilyDentalHistory:    req.FamilyDentalHistory,
		PreventiveProgram:      req.PreventiveProgram,
		EmergencyContact:       req.EmergencyContact,
		SatisfactionSurvey:     req.SatisfactionSurvey,
		PeriodicVisitFrequency: req.PeriodicVisitFrequency,
		RiskFlag:               req.RiskFlag,
		TravelHistory:          req.TravelHistory,
		AddressChangeHistory:   req.AddressChangeHistory,
		ContactPreference:      req.ContactPreference,
	}
	patch.SetOptional(&f.MonthlyIncome, req.MonthlyIncome)
	patch.SetOptional(&f.LastUpdated, req.LastUpdated)
	return f
}
