package maritalstatus

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/patinaomi/sprint-3-devops/internal/platform/db"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type maritalStatusRepoPG struct{ q db.Querier }

func NewRepoPG(q db.Querier) Repository {
	return &maritalStatusRepoPG{q: q}
}

func scanMaritalStatus(row pgx.Row) (*MaritalStatus, error) {
	var m MaritalStatus
	if err := row.Scan(&m.ID, &m.Description); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *maritalStatusRepoPG) Create(ctx context.Context, m *MaritalStatus) error {
	m.ID = uuid.New().String()
	_, err := r.q.Exec(ctx, `INSERT INTO marital_statuses (id, description) VALUES ($1, $2)`, m.ID, m.Description)
	if err != nil {
		return fmt.Errorf("insert marital status: %w", err)
	}
	return nil
}

func (r *maritalStatusRepoPG) GetByID(ctx context.Context, id string) (*MaritalStatus, error) {
	m, err := scanMaritalStatus(r.q.QueryRow(ctx, `SELECT id, description FROM marital_statuses WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get marital status: %w", err)
	}
	return m, nil
}

func (r *maritalStatusRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM marital_statuses WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *maritalStatusRepoPG) List(ctx context.Context) ([]*MaritalStatus, error) {
	rows, err := r.q.Query(ctx, `SELECT id, description FROM marital_statuses ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list marital statuses: %w", err)
	}
	defer rows.Close()

	out := []*MaritalStatus{}
	for rows.Next() {
		m, err := scanMaritalStatus(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *maritalStatusRepoPG) Update(ctx context.Context, m *MaritalStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE marital_statuses SET description = $2 WHERE id = $1`, m.ID, m.Description)
	if err != nil {
		return fmt.Errorf("update marital status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *maritalStatusRepoPG) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM marital_statuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete marital status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
