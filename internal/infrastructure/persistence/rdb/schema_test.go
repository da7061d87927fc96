package rdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb/rdbtest"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

func TestMigrator_CreatesTablesInOrder(t *testing.T) {
	db := rdbtest.NewDB(t)

	for _, table := range rdb.Tables() {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.Equal(t, []string{
		"authors", "genres", "publishers", "books", "users",
		"transactions", "book_authors", "book_genres", "carts", "cart_items",
	}, rdb.Tables())
}

func TestMigrator_IsIdempotent(t *testing.T) {
	db := rdbtest.NewDB(t)
	require.NoError(t, db.Create(&rdb.AuthorModel{Name: "Ursula K. Le Guin"}).Error)

	tables, err := rdb.NewMigrator(db).Migrate(context.Background())
	require.NoError(t, err)
	assert.Len(t, tables, len(rdb.Tables()))

	var n int64
	require.NoError(t, db.Model(&rdb.AuthorModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestMigrator_ClosedConnectionIsSchemaError(t *testing.T) {
	db, err := rdb.Open(rdbtest.Config(t))
	require.NoError(t, err)
	require.NoError(t, rdb.Close(db))

	done, err := rdb.NewMigrator(db).Migrate(context.Background())
	require.Error(t, err)
	assert.Empty(t, done)
	assert.Equal(t, apperrors.KindSchema, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "authors")
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on", rdb.SQLiteDSN("a.db"))
	assert.Equal(t, "a.db?cache=shared&_foreign_keys=on", rdb.SQLiteDSN("a.db?cache=shared"))
	assert.Equal(t, "a.db?_foreign_keys=off", rdb.SQLiteDSN("a.db?_foreign_keys=off"))
}
