package claim

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/patinaomi/sprint-3-devops/internal/platform/db"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type claimRepoPG struct{ q db.Querier }

func NewRepoPG(q db.Querier) Repository {
	return &claimRepoPG{q: q}
}

const claimCols = `id, consultation_id, name, COALESCE(description, ''), COALESCE(status, ''),
	COALESCE(status_description, ''), amount, opened_date, resolved_date, COALESCE(documentation, '')`

func scanClaim(row pgx.Row) (*Claim, error) {
	var c Claim
	err := row.Scan(&c.ID, &c.ConsultationID, &c.Name, &c.Description, &c.Status,
		&c.StatusDescription, &c.Amount, &c.OpenedDate, &c.ResolvedDate, &c.Documentation)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *claimRepoPG) Create(ctx context.Context, c *Claim) error {
	c.ID = uuid.New().String()
	_, err := r.q.Exec(ctx, `
		INSERT INTO claims (id, consultation_id, name, description, status,
			status_description, amount, opened_date, resolved_date, documentation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.ConsultationID, c.Name, c.Description, c.Status,
		c.StatusDescription, c.Amount, c.OpenedDate, c.ResolvedDate, c.Documentation)
	if err != nil {
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

func (r *claimRepoPG) GetByID(ctx context.Context, id string) (*Claim, error) {
	c, err := scanClaim(r.q.QueryRow(ctx, `SELECT `+claimCols+` FROM claims WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}
	return c, nil
}

func (r *claimRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM claims WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *claimRepoPG) List(ctx context.Context) ([]*Claim, error) {
	rows, err := r.q.Query(ctx, `SELECT `+claimCols+` FROM claims ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	out := []*Claim{}
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *claimRepoPG) Update(ctx context.Context, c *Claim) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE claims SET consultation_id = $2, name = $3, description = $4, status = $5,
			status_description = $6, amount = $7, opened_date = $8, resolved_date = $9,
			documentation = $10
		WHERE id = $1`,
		c.ID, c.ConsultationID, c.Name, c.Description, c.Status,
		c.StatusDescription, c.Amount, c.OpenedDate, c.ResolvedDate,
		c.Documentation)
	if err != nil {
		return fmt.Errorf("update claim: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *claimRepoPG) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM claims WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete claim: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
