package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/patinaomi/sprint-3-devops/internal/platform/db"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type clientRepoPG struct{ q db.Querier }

func NewRepoPG(q db.Querier) Repository {
	return &clientRepoPG{q: q}
}

const clientCols = `id, name, COALESCE(surname, ''), phone, email, birth_date, COALESCE(address, '')`

func scanClient(row pgx.Row) (*Client, error) {
	var c Client
	err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.Phone, &c.Email, &c.BirthDate, &c.Address)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepoPG) Create(ctx context.Context, c *Client) error {
	c.ID = uuid.New().String()
	_, err := r.q.Exec(ctx, `
		INSERT INTO clients (id, name, surname, phone, email, birth_date, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Surname, c.Phone, c.Email, c.BirthDate, c.Address)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *clientRepoPG) GetByID(ctx context.Context, id string) (*Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientCols+` FROM clients WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (r *clientRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *clientRepoPG) List(ctx context.Context) ([]*Client, error) {
	rows, err := r.q.Query(ctx, `SELECT `+clientCols+` FROM clients ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	out := []*Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clientRepoPG) Update(ctx context.Context, c *Client) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE clients SET name = $2, surname = $3, phone = $4, email = $5,
			birth_date = $6, address = $7
		WHERE id = $1`,
		c.ID, c.Name, c.Surname, c.Phone, c.Email, c.BirthDate, c.Address)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *clientRepoPG) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
