package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/artem13815/signup/pkg/account"
)

// AccountRepository implements account.Repository backed by PostgreSQL (pgx).
type AccountRepository struct {
	db  DB
	now func() time.Time
}

func NewAccountRepository(db DB) (*AccountRepository, error) {
	repo := &AccountRepository{db: db, now: time.Now}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *AccountRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *AccountRepository) Add(ctx context.Context, input account.AddAccountInput) (account.Account, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO accounts (id, name, email, password, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password
	`, uuid.New(), input.Name, strings.ToLower(input.Email), input.Password, r.now().UTC())

	var (
		acc account.Account
		id  uuid.UUID
	)
	if err := row.Scan(&id, &acc.Name, &acc.Email, &acc.Password); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return account.Account{}, account.ErrEmailInUse
		}
		return account.Account{}, err
	}
	acc.ID = id.String()
	return acc, nil
}
