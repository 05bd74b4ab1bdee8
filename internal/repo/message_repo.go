package repo

import (
	"context"

	dom "chirper/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepo interface {
	Create(ctx context.Context, m dom.Message) (dom.Message, error)
	GetByID(ctx context.Context, id int64) (dom.Message, error)
	List(ctx context.Context) ([]dom.Message, error)
	ListByPostedBy(ctx context.Context, accountID int64) ([]dom.Message, error)
	UpdateText(ctx context.Context, id int64, text string) (dom.Message, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

type PGMessageRepo struct {
	db *pgxpool.Pool
}

func NewPGMessageRepo(db *pgxpool.Pool) *PGMessageRepo {
	return &PGMessageRepo{db: db}
}

func (r *PGMessageRepo) Create(ctx context.Context, m dom.Message) (dom.Message, error) {
	query := `
		INSERT INTO messages (posted_by, message_text, posted_at)
		VALUES ($1, $2, $3)
		RETURNING id, posted_by, message_text, posted_at, created_at, updated_at`
	var out dom.Message
	err := r.db.QueryRow(ctx, query, m.PostedBy, m.Text, m.PostedAt).Scan(
		&out.ID, &out.PostedBy, &out.Text, &out.PostedAt,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGMessageRepo) GetByID(ctx context.Context, id int64) (dom.Message, error) {
	query := `
		SELECT id, posted_by, message_text, posted_at, created_at, updated_at
		FROM messages WHERE id = $1`
	var m dom.Message
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.PostedBy, &m.Text, &m.PostedAt,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *PGMessageRepo) List(ctx context.Context) ([]dom.Message, error) {
	query := `
		SELECT id, posted_by, message_text, posted_at, created_at, updated_at
		FROM messages ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Message
	for rows.Next() {
		var m dom.Message
		if err := rows.Scan(&m.ID, &m.PostedBy, &m.Text, &m.PostedAt,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *PGMessageRepo) ListByPostedBy(ctx context.Context, accountID int64) ([]dom.Message, error) {
	query := `
		SELECT id, posted_by, message_text, posted_at, created_at, updated_at
		FROM messages WHERE posted_by = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Message
	for rows.Next() {
		var m dom.Message
		if err := rows.Scan(&m.ID, &m.PostedBy, &m.Text, &m.PostedAt,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *PGMessageRepo) UpdateText(ctx context.Context, id int64, text string) (dom.Message, error) {
	query := `
		UPDATE messages SET message_text = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, posted_by, message_text, posted_at, created_at, updated_at`
	var m dom.Message
	err := r.db.QueryRow(ctx, query, id, text).Scan(
		&m.ID, &m.PostedBy, &m.Text, &m.PostedAt,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// DeleteByID removes the message and reports whether a row was deleted.
// The conditional delete makes repeat calls idempotent.
func (r *PGMessageRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
