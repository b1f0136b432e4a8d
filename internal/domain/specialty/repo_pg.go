package specialty

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/patinaomi/sprint-3-devops/internal/platform/db"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type specialtyRepoPG struct{ q db.Querier }

func NewRepoPG(q db.Querier) Repository {
	return &specialtyRepoPG{q: q}
}

func (r *specialtyRepoPG) Create(ctx context.Context, s *Specialty) error {
	s.ID = uuid.New().String()
	if _, err := r.q.Exec(ctx, `INSERT INTO specialties (id, name) VALUES ($1, $2)`, s.ID, s.Name); err != nil {
		return fmt.Errorf("insert specialty: %w", err)
	}
	return nil
}

func (r *specialtyRepoPG) GetByID(ctx context.Context, id string) (*Specialty, error) {
	var s Specialty
	err := r.q.QueryRow(ctx, `SELECT id, name FROM specialties WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if db.IsNoRows(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get specialty: %w", err)
	}
	return &s, nil
}

func (r *specialtyRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM specialties WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *specialtyRepoPG) List(ctx context.Context) ([]*Specialty, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM specialties ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	defer rows.Close()

	out := []*Specialty{}
	for rows.Next() {
		var s Specialty
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *specialtyRepoPG) Update(ctx context.Context, s *Specialty) error {
	tag, err := r.q.Exec(ctx, `UPDATE specialties SET name = $2 WHERE id = $1`, s.ID, s.Name)
	if err != nil {
		return fmt.Errorf("update specialty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *specialtyRepoPG) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM specialties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete specialty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
