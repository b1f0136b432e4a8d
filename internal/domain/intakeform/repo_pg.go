package intakeform

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/patinaomi/sprint-3-devops/internal/platform/db"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type formRepoPG struct{ q db.Querier }

func NewRepoPG(q db.Querier) Repository {
	return &formRepoPG{q: q}
}

const formCols = `id, client_id, marital_status_id,
	COALESCE(family_history, ''), COALESCE(occupation, ''), monthly_income,
	COALESCE(medical_history, ''), COALESCE(allergy, ''), COALESCE(preexisting_condition, ''),
	COALESCE(medication_use, ''), COALESCE(family_dental_history, ''), COALESCE(preventive_program, ''),
	COALESCE(emergency_contact, ''), COALESCE(satisfaction_survey, ''), last_updated,
	COALESCE(periodic_visit_frequency, ''), COALESCE(risk_flag, ''), COALESCE(travel_history, ''),
	COALESCE(address_change_history, ''), COALESCE(contact_preference, '')`

// args lists f's columns in formCols order.
func args(f *Form) []any {
	return []any{
		f.ID, f.ClientID, f.MaritalStatusID,
		f.FamilyHistory, f.Occupation, f.MonthlyIncome,
		f.MedicalHistory, f.Allergy, f.PreexistingCondition,
		f.MedicationUse, f.FamilyDentalHistory, f.PreventiveProgram,
		f.EmergencyContact, f.SatisfactionSurvey, f.LastUpdated,
		f.PeriodicVisitFrequency, f.RiskFlag, f.TravelHistory,
		f.AddressChangeHistory, f.ContactPreference,
	}
}

func scanForm(row pgx.Row) (*Form, error) {
	var f Form
	err := row.Scan(&f.ID, &f.ClientID, &f.MaritalStatusID,
		&f.FamilyHistory, &f.Occupation, &f.MonthlyIncome,
		&f.MedicalHistory, &f.Allergy, &f.PreexistingCondition,
		&f.MedicationUse, &f.FamilyDentalHistory, &f.PreventiveProgram,
		&f.EmergencyContact, &f.SatisfactionSurvey, &f.LastUpdated,
		&f.PeriodicVisitFrequency, &f.RiskFlag, &f.TravelHistory,
		&f.AddressChangeHistory, &f.ContactPreference)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *formRepoPG) Create(ctx context.Context, f *Form) error {
	f.ID = uuid.New().String()
	_, err := r.q.Exec(ctx, `
		INSERT INTO intake_forms (id, client_id, marital_status_id,
			family_history, occupation, monthly_income,
			medical_history, allergy, preexisting_condition,
			medication_use, family_dental_history, preventive_program,
			emergency_contact, satisfaction_survey, last_updated,
			periodic_visit_frequency, risk_flag, travel_history,
			address_change_history, contact_preference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		args(f)...)
	if err != nil {
		return fmt.Errorf("insert intake form: %w", err)
	}
	return nil
}

func (r *formRepoPG) GetByID(ctx context.Context, id string) (*Form, error) {
	f, err := scanForm(r.q.QueryRow(ctx, `SELECT `+formCols+` FROM intake_forms WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get intake form: %w", err)
	}
	return f, nil
}

func (r *formRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM intake_forms WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *formRepoPG) List(ctx context.Context) ([]*Form, error) {
	rows, err := r.q.Query(ctx, `SELECT `+formCols+` FROM intake_forms ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list intake forms: %w", err)
	}
	defer rows.Close()

	out := []*Form{}
	for rows.Next() {
		f, err := scanForm(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *formRepoPG) Update(ctx context.Context, f *Form) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE intake_forms SET client_id = $2, marital_status_id = $3,
			family_history = $4, occupation = $5, monthly_income = $6,
			medical_history = $7, allergy = $8, preexisting_condition = $9,
			medication_use = $10, family_dental_history = $11, preventive_program = $12,
			emergency_contact = $13, satisfaction_survey = $14, last_updated = $15,
			periodic_visit_frequency = $16, risk_flag = $17, travel_history = $18,
			address_change_history = $19, contact_preference = $20
		WHERE id = $1`,
		args(f)...)
	if err != nil {
		return fmt.Errorf("update intake form: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *formRepoPG) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM intake_forms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete intake form: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
