package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogErrorRepository_LogError(t *testing.T) {
	db := &dbStub{}
	repo, err := NewLogErrorRepository(db)
	require.NoError(t, err)

	require.NoError(t, repo.LogError(context.Background(), "any-stack"))
	require.Len(t, db.execs, 2)
	insert := db.execs[1]
	assert.Contains(t, insert.sql, "INSERT INTO errors")
	assert.IsType(t, uuid.UUID{}, insert.args[0])
	assert.Equal(t, "any-stack", insert.args[1])
}

func TestLogErrorRepository_LogErrorFailure(t *testing.T) {
	db := &dbStub{}
	repo, err := NewLogErrorRepository(db)
	require.NoError(t, err)

	boom := errors.New("disk full")
	db.execErr = boom
	err = repo.LogError(context.Background(), "any-stack")
	assert.ErrorIs(t, err, boom)
}
