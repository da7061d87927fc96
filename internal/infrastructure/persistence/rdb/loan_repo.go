package rdb

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/loan"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// loanRepository 借阅记录仓储,只有写入和查询
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository 创建借阅记录仓储
func NewLoanRepository(db *gorm.DB) loan.Repository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, t *loan.Transaction) error {
	model := &TransactionModel{
		UserID:     t.UserID,
		BookID:     t.BookID,
		BorrowDate: t.BorrowDate,
		ReturnDate: t.ReturnDate,
	}
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		if isForeignKeyError(err) {
			return apperrors.WrapCode(err, apperrors.ErrCodeInvalidReference, "读者或图书不存在")
		}
		return apperrors.Store(err, "写入借阅记录失败")
	}
	t.ID = model.ID
	return nil
}

func (r *loanRepository) ListByUserID(ctx context.Context, userID uint) ([]*loan.Transaction, error) {
	var models []TransactionModel
	err := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Order("borrow_date DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Store(err, "查询借阅记录失败")
	}

	txs := make([]*loan.Transaction, len(models))
	for i, m := range models {
		txs[i] = &loan.Transaction{
			ID:         m.ID,
			UserID:     m.UserID,
			BookID:     m.BookID,
			BorrowDate: m.BorrowDate,
			ReturnDate: m.ReturnDate,
		}
	}
	return txs, nil
}
