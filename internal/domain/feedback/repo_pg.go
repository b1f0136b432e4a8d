package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/patinaomi/sprint-3-devops/internal/platform/db"
	"github.com/patinaomi/sprint-3-devops/internal/platform/store"
)

type feedbackRepoPG struct{ q db.Querier }

func NewRepoPG(q db.Querier) Repository {
	return &feedbackRepoPG{q: q}
}

const feedbackCols = `id, client_id, dentist_id, clinic_id, rating, COALESCE(comment, '')`

func scanFeedback(row pgx.Row) (*Feedback, error) {
	var f Feedback
	if err := row.Scan(&f.ID, &f.ClientID, &f.DentistID, &f.ClinicID, &f.Rating, &f.Comment); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *feedbackRepoPG) Create(ctx context.Context, f *Feedback) error {
	f.ID = uuid.New().String()
	_, err := r.q.Exec(ctx, `
		INSERT INTO feedback (id, client_id, dentist_id, clinic_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		f.ID, f.ClientID, f.DentistID, f.ClinicID, f.Rating, f.Comment)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepoPG) GetByID(ctx context.Context, id string) (*Feedback, error) {
	f, err := scanFeedback(r.q.QueryRow(ctx, `SELECT `+feedbackCols+` FROM feedback WHERE id = $1`, id))
	if db.IsNoRows(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return f, nil
}

func (r *feedbackRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM feedback WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *feedbackRepoPG) List(ctx context.Context) ([]*Feedback, error) {
	rows, err := r.q.Query(ctx, `SELECT `+feedbackCols+` FROM feedback ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	out := []*Feedback{}
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *feedbackRepoPG) Update(ctx context.Context, f *Feedback) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE feedback SET client_id = $2, dentist_id = $3, clinic_id = $4, rating = $5, comment = $6
		WHERE id = $1`,
		f.ID, f.ClientID, f.DentistID, f.ClinicID, f.Rating, f.Comment)
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *feedbackRepoPG) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
