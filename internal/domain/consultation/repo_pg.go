package consultation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/patinaomi/sprint-3-devops/internal/platform/db"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type consultationRepoPG struct{ q db.Querier }

func NewRepoPG(q db.Querier) Repository {
	return &consultationRepoPG{q: q}
}

const consultationCols = `id, client_id, clinic_id, dentist_id, service_type,
	consultation_date, COALESCE(status, ''), COALESCE(notes, ''), COALESCE(symptoms, ''),
	COALESCE(recommended_treatment, ''), cost, COALESCE(prescription, ''), return_date`

func scanConsultation(row pgx.Row) (*Consultation, error) {
	var c Consultation
	err := row.Scan(&c.ID, &c.ClientID, &c.ClinicID, &c.DentistID, &c.ServiceType,
		&c.Date, &c.Status, &c.Notes, &c.Symptoms,
		&c.RecommendedTreatment, &c.Cost, &c.Prescription, &c.ReturnDate)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *consultationRepoPG) Create(ctx context.Context, c *Consultation) error {
	c.ID = uuid.New().String()
	_, err := r.q.Exec(ctx, `
		INSERT INTO consultations (id, client_id, clinic_id, dentist_id, service_type,
			consultation_date, status, notes, symptoms,
			recommended_treatment, cost, prescription, return_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		c.ID, c.ClientID, c.ClinicID, c.DentistID, c.ServiceType,
		c.Date, c.Status, c.Notes, c.Symptoms,
		c.RecommendedTreatment, c.Cost, c.Prescription, c.ReturnDate)
	if err != nil {
		return fmt.Errorf("insert consultation: %w", err)
	}
	return nil
}

func (r *consultationRepoPG) GetByID(ctx context.Context, id string) (*Consultation, error) {
	c, err := scanConsultation(r.q.QueryRow(ctx, `SELECT `+consultationCols+` FROM consultations WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get consultation: %w", err)
	}
	return c, nil
}

func (r *consultationRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM consultations WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *consultationRepoPG) List(ctx context.Context) ([]*Consultation, error) {
	rows, err := r.q.Query(ctx, `SELECT `+consultationCols+` FROM consultations ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	defer rows.Close()

	out := []*Consultation{}
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *consultationRepoPG) Update(ctx context.Context, c *Consultation) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE consultations SET client_id = $2, clinic_id = $3, dentist_id = $4,
			service_type = $5, consultation_date = $6, status = $7, notes = $8,
			symptoms = $9, recommended_treatment = $10, cost = $11,
			prescription = $12, return_date = $13
		WHERE id = $1`,
		c.ID, c.ClientID, c.ClinicID, c.DentistID,
		c.ServiceType, c.Date, c.Status, c.Notes,
		c.Symptoms, c.RecommendedTreatment, c.Cost,
		c.Prescription, c.ReturnDate)
	if err != nil {
		return fmt.Errorf("update consultation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *consultationRepoPG) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM consultations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete consultation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
