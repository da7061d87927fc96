package loan

import "time"

// Transaction 借阅记录,只由结账生成,只增不改
// ReturnDate为空表示尚未归还;当前没有还书流程,因此始终为空
type Transaction struct {
	ID         uint
	UserID     uint
	BookID     uint
	BorrowDate time.Time
	ReturnDate *time.Time
}

// NewTransaction 创建借阅记录
func NewTransaction(userID, bookID uint, borrowedAt time.Time) *Transaction {
	return &Transaction{
		UserID:     userID,
		BookID:     bookID,
		BorrowDate: borrowedAt,
	}
}

// IsOutstanding 尚未归还
func (t *Transaction) IsOutstanding() bool {
	return t.ReturnDate == nil
}
