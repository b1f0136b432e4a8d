package clinic

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/patinaomi/sprint-3-devops/internal/platform/db"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type clinicRepoPG struct{ q db.Querier }

func NewRepoPG(q db.Querier) Repository {
	return &clinicRepoPG{q: q}
}

const clinicCols = `id, name, address, COALESCE(phone, '')`

func scanClinic(row pgx.Row) (*Clinic, error) {
	var c Clinic
	if err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Phone); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clinicRepoPG) Create(ctx context.Context, c *Clinic) error {
	c.ID = uuid.New().String()
	_, err := r.q.Exec(ctx,
		`INSERT INTO clinics (id, name, address, phone) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Address, c.Phone)
	if err != nil {
		return fmt.Errorf("insert clinic: %w", err)
	}
	return nil
}

func (r *clinicRepoPG) GetByID(ctx context.Context, id string) (*Clinic, error) {
	c, err := scanClinic(r.q.QueryRow(ctx, `SELECT `+clinicCols+` FROM clinics WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return c, nil
}

func (r *clinicRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clinics WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *clinicRepoPG) List(ctx context.Context) ([]*Clinic, error) {
	rows, err := r.q.Query(ctx, `SELECT `+clinicCols+` FROM clinics ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}
	defer rows.Close()

	out := []*Clinic{}
	for rows.Next() {
		c, err := scanClinic(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clinicRepoPG) Update(ctx context.Context, c *Clinic) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE clinics SET name = $2, address = $3, phone = $4 WHERE id = $1`,
		c.ID, c.Name, c.Address, c.Phone)
	if err != nil {
		return fmt.Errorf("update clinic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *clinicRepoPG) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clinics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete clinic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
