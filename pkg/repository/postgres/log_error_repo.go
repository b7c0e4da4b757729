package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LogErrorRepository keeps diagnostic traces in the errors table.
type LogErrorRepository struct {
	db  DB
	now func() time.Time
}

func NewLogErrorRepository(db DB) (*LogErrorRepository, error) {
	repo := &LogErrorRepository{db: db, now: time.Now}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *LogErrorRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS errors (
			id UUID PRIMARY KEY,
			stack TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_errors_created_at ON errors(created_at);
	`)
	return err
}

func (r *LogErrorRepository) LogError(ctx context.Context, trace string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO errors (id, stack, created_at) VALUES ($1, $2, $3)
	`, uuid.New(), trace, r.now().UTC())
	if err != nil {
		return fmt.Errorf("insert error log: %w", err)
	}
	return nil
}
