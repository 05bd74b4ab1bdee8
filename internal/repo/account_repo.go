package repo

import (
	"context"

	dom "chirper/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepo provides account persistence. Lookups return pgx.ErrNoRows
// when no row matches.
type AccountRepo interface {
	Create(ctx context.Context, a dom.Account) (dom.Account, error)
	GetByID(ctx context.Context, id int64) (dom.Account, error)
	GetByUsername(ctx context.Context, username string) (dom.Account, error)
	GetByUsernameAndPassword(ctx context.Context, username, password string) (dom.Account, error)
}

// PGAccountRepo implements AccountRepo with Postgres.
type PGAccountRepo struct {
	db *pgxpool.Pool
}

// NewPGAccountRepo returns a new PGAccountRepo.
func NewPGAccountRepo(db *pgxpool.Pool) *PGAccountRepo {
	return &PGAccountRepo{db: db}
}

// Create inserts a new account and returns it with its assigned id.
func (r *PGAccountRepo) Create(ctx context.Context, a dom.Account) (dom.Account, error) {
	query := `
		INSERT INTO accounts (username, password)
		VALUES ($1, $2)
		RETURNING id, username, password, created_at`
	var out dom.Account
	err := r.db.QueryRow(ctx, query, a.Username, a.Password).Scan(
		&out.ID, &out.Username, &out.Password, &out.CreatedAt,
	)
	return out, err
}

// GetByID returns the account by id.
func (r *PGAccountRepo) GetByID(ctx context.Context, id int64) (dom.Account, error) {
	var a dom.Account
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM accounts WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Username, &a.Password, &a.CreatedAt)
	return a, err
}

// GetByUsername returns the account by username.
func (r *PGAccountRepo) GetByUsername(ctx context.Context, username string) (dom.Account, error) {
	var a dom.Account
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM accounts WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.Username, &a.Password, &a.CreatedAt)
	return a, err
}

// GetByUsernameAndPassword returns the account matching both credentials
// exactly.
func (r *PGAccountRepo) GetByUsernameAndPassword(ctx context.Context, username, password string) (dom.Account, error) {
	var a dom.Account
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM accounts WHERE username = $1 AND password = $2`,
		username, password,
	).Scan(&a.ID, &a.Username, &a.Password, &a.CreatedAt)
	return a, err
}
