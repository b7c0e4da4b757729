package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type execCall struct {
	sql  string
	args []any
}

type dbStub struct {
	execErr error
	row     pgx.Row
	execs   []execCall
	queries []execCall
}

func (d *dbStub) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.execs = append(d.execs, execCall{sql: sql, args: args})
	if d.execErr != nil {
		return pgconn.CommandTag{}, d.execErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (d *dbStub) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	d.queries = append(d.queries, execCall{sql: sql, args: args})
	return d.row
}

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }
