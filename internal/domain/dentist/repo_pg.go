package dentist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/patinaomi/sprint-3-devops/internal/platform/db"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type dentistRepoPG struct{ q db.Querier }

func NewRepoPG(q db.Querier) Repository {
	return &dentistRepoPG{q: q}
}

const dentistCols = `id, name, surname, phone, clinic_id, specialty_id, rating`

func scanDentist(row pgx.Row) (*Dentist, error) {
	var d Dentist
	err := row.Scan(&d.ID, &d.Name, &d.Surname, &d.Phone, &d.ClinicID, &d.SpecialtyID, &d.Rating)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dentistRepoPG) Create(ctx context.Context, d *Dentist) error {
	d.ID = uuid.New().String()
	_, err := r.q.Exec(ctx, `
		INSERT INTO dentists (id, name, surname, phone, clinic_id, specialty_id, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.Name, d.Surname, d.Phone, d.ClinicID, d.SpecialtyID, d.Rating)
	if err != nil {
		return fmt.Errorf("insert dentist: %w", err)
	}
	return nil
}

func (r *dentistRepoPG) GetByID(ctx context.Context, id string) (*Dentist, error) {
	d, err := scanDentist(r.q.QueryRow(ctx, `SELECT `+dentistCols+` FROM dentists WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get dentist: %w", err)
	}
	return d, nil
}

func (r *dentistRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM dentists WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *dentistRepoPG) List(ctx context.Context) ([]*Dentist, error) {
	rows, err := r.q.Query(ctx, `SELECT `+dentistCols+` FROM dentists ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list dentists: %w", err)
	}
	defer rows.Close()

	out := []*Dentist{}
	for rows.Next() {
		d, err := scanDentist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *dentistRepoPG) Update(ctx context.Context, d *Dentist) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE dentists SET name = $2, surname = $3, phone = $4,
			clinic_id = $5, specialty_id = $6, rating = $7
		WHERE id = $1`,
		d.ID, d.Name, d.Surname, d.Phone, d.ClinicID, d.SpecialtyID, d.Rating)
	if err != nil {
		return fmt.Errorf("update dentist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *dentistRepoPG) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM dentists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dentist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
