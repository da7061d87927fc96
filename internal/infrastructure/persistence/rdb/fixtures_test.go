package rdb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

func createPublisher(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	p := &rdb.PublisherModel{Name: name, Contact: "London, UK"}
	require.NoError(t, db.Create(p).Error)
	return p.ID
}

func createBook(t *testing.T, db *gorm.DB, title string, count int) uint {
	t.Helper()
	b := &rdb.BookModel{Title: title, PublicationDate: "2005-03-14", AvailabilityStatus: true, BookCount: count}
	require.NoError(t, db.Create(b).Error)
	return b.ID
}

func createUser(t *testing.T, db *gorm.DB, name, contact string) uint {
	t.Helper()
	u := &rdb.UserModel{Name: name, ContactDetails: contact}
	require.NoError(t, db.Create(u).Error)
	return u.ID
}

func createCart(t *testing.T, db *gorm.DB, userID uint) uint {
	t.Helper()
	c := &rdb.CartModel{UserID: userID}
	require.NoError(t, db.Create(c).Error)
	return c.ID
}

func createLoan(t *testing.T, db *gorm.DB, userID, bookID uint) {
	t.Helper()
	require.NoError(t, db.Create(&rdb.TransactionModel{UserID: userID, BookID: bookID, BorrowDate: time.Now()}).Error)
}

func bookCount(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var b rdb.BookModel
	require.NoError(t, db.First(&b, id).Error)
	return b.BookCount
}
