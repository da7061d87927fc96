package rdb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb/rdbtest"
)

func TestTxManager_RollbackOnError(t *testing.T) {
	db := rdbtest.NewDB(t)
	txm := rdb.NewTxManager(db)
	repo := rdb.NewCatalogRepository(db)
	id := createBook(t, db, "A Clash of Kings", 2)

	boom := errors.New("boom")
	err := txm.Transaction(context.Background(), func(ctx context.Context) error {
		assert.True(t, rdb.InTx(ctx))
		require.NoError(t, repo.DecrementBookCount(ctx, id))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, bookCount(t, db, id))
}

func TestTxManager_CommitOnSuccess(t *testing.T) {
	db := rdbtest.NewDB(t)
	txm := rdb.NewTxManager(db)
	repo := rdb.NewCatalogRepository(db)
	id := createBook(t, db, "A Storm of Swords", 2)

	assert.False(t, rdb.InTx(context.Background()))
	err := txm.Transaction(context.Background(), func(ctx context.Context) error {
		return repo.DecrementBookCount(ctx, id)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, bookCount(t, db, id))
}
