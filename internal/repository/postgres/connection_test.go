package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnection_InvalidDSN(t *testing.T) {
	conn, err := NewConnection(context.Background(), "://not-a-dsn")

	require.Error(t, err)
	assert.Nil(t, conn)
	assert.Contains(t, err.Error(), "failed to parse postgres dsn")
}

func TestConnection_NilPool(t *testing.T) {
	conn := &Connection{}

	assert.NoError(t, conn.Close())
	assert.Error(t, conn.Ping(context.Background()))
}

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Same(t, db, repo.db)
}
