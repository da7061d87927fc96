package user

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/user"
)

// ListLoansUseCase 读者的借阅记录
type ListLoansUseCase struct {
	userRepo user.Repository
	loanRepo loan.Repository
}

// NewListLoansUseCase 创建借阅记录查询用例
func NewListLoansUseCase(userRepo user.Repository, loanRepo loan.Repository) *ListLoansUseCase {
	return &ListLoansUseCase{userRepo: userRepo, loanRepo: loanRepo}
}

// LoanItem 一条借阅记录
type LoanItem struct {
	ID          uint    `json:"id"`
	BookID      uint    `json:"bookID"`
	BorrowDate  string  `json:"borrowDate"`
	ReturnDate  *string `json:"returnDate"`
	Outstanding bool    `json:"outstanding"`
}

// ListLoansResponse 借阅记录,按借出时间倒序
type ListLoansResponse struct {
	UserID      uint       `json:"userID"`
	Loans       []LoanItem `json:"loans"`
	Outstanding int        `json:"outstanding"`
}

// Execute 读者不存在返回NotFound
func (uc *ListLoansUseCase) Execute(ctx context.Context, userID uint) (*ListLoansResponse, error) {
	if _, err := uc.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	txs, err := uc.loanRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &ListLoansResponse{UserID: userID, Loans: make([]LoanItem, len(txs))}
	for i, t := range txs {
		item := LoanItem{
			ID:          t.ID,
			BookID:      t.BookID,
			BorrowDate:  t.BorrowDate.Format(time.RFC3339),
			Outstanding: t.IsOutstanding(),
		}
		if t.ReturnDate != nil {
			returned := t.ReturnDate.Format(time.RFC3339)
			item.ReturnDate = &returned
		}
		if item.Outstanding {
			resp.Outstanding++
		}
		resp.Loans[i] = item
	}
	return resp, nil
}
