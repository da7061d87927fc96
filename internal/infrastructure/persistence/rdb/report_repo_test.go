package rdb_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb/rdbtest"
)

func TestReportRepository_TopLoans(t *testing.T) {
	db := rdbtest.NewDB(t)
	repo := rdb.NewReportRepository(db)
	ctx := context.Background()

	pid := createPublisher(t, db, "Scholastic")
	popular := createBook(t, db, "The Hunger Games", 3)
	require.NoError(t, db.Model(&rdb.BookModel{}).Where("id = ?", popular).Update("publisher_id", pid).Error)
	quiet := createBook(t, db, "Catching Fire", 3)

	alice := createUser(t, db, "Alice", "alice@example.com")
	bob := createUser(t, db, "Bob", "bob@example.com")
	createLoan(t, db, alice, popular)
	createLoan(t, db, alice, popular)
	createLoan(t, db, bob, quiet)
	createLoan(t, db, bob, popular)

	cartID := createCart(t, db, bob)
	require.NoError(t, db.Create(&rdb.CartItemModel{CartID: cartID, BookID: quiet, BookName: "Catching Fire"}).Error)

	rows, err := repo.TopLoans(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Alice", rows[0].UserName)
	assert.Equal(t, "The Hunger Games", rows[0].BookTitle)
	assert.Equal(t, int64(2), rows[0].LoanCount)
	assert.Equal(t, "Scholastic", rows[0].PublisherName)
	assert.Equal(t, int64(0), rows[0].CartCount)

	// 借阅次数相同时,在车数多者在前
	assert.Equal(t, "Catching Fire", rows[1].BookTitle)
	assert.Equal(t, int64(1), rows[1].CartCount)
	assert.Equal(t, "", rows[1].PublisherName)
	assert.Equal(t, "The Hunger Games", rows[2].BookTitle)
}

func TestReportRepository_LimitsRows(t *testing.T) {
	db := rdbtest.NewDB(t)
	repo := rdb.NewReportRepository(db)
	bookID := createBook(t, db, "The Book Thief", 1)
	for i := 0; i < 12; i++ {
		createLoan(t, db, createUser(t, db, fmt.Sprintf("reader%02d", i), fmt.Sprintf("r%02d@example.com", i)), bookID)
	}

	rows, err := repo.TopLoans(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, rows, 10)
	assert.Equal(t, "reader00", rows[0].UserName)

	empty, err := rdb.NewReportRepository(rdbtest.NewDB(t)).TopLoans(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
