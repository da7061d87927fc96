package rdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/report"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// topLoansSQL 借阅排行
// cart_count是相关子查询:当前有多少借书车条目持有这本书
const topLoansSQL = `
SELECT
	users.name AS user_name,
	books.title AS book_title,
	COUNT(transactions.id) AS loan_count,
	COALESCE(publishers.name, '') AS publisher_name,
	(SELECT COUNT(*) FROM cart_items WHERE cart_items.book_id = books.id) AS cart_count
FROM transactions
JOIN users ON users.id = transactions.user_id
JOIN books ON books.id = transactions.book_id
LEFT JOIN publishers ON publishers.id = books.publisher_id
GROUP BY users.id, users.name, books.id, books.title, publishers.name
ORDER BY loan_count DESC, cart_count DESC, user_name, book_title
LIMIT ?`

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建报表仓储
func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{db: db}
}

func (r *reportRepository) TopLoans(ctx context.Context, limit int) ([]*report.LoanRow, error) {
	if limit <= 0 {
		limit = report.DefaultLimit
	}

	rows := []*report.LoanRow{}
	if err := dbFrom(ctx, r.db).Raw(topLoansSQL, limit).Scan(&rows).Error; err != nil {
		return nil, apperrors.Store(err, "查询借阅排行失败")
	}
	return rows, nil
}
