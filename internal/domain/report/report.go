package report

import (
	"context"
)

// DefaultLimit 报表默认返回行数
const DefaultLimit = 10

// LoanRow 借阅排行的一行
// CartCount是当前有多少借书车条目持有这本书
type LoanRow struct {
	UserName      string
	BookTitle     string
	LoanCount     int64
	PublisherName string
	CartCount     int64
}

// Repository 报表查询
type Repository interface {
	// TopLoans 按借阅次数、在车数降序,返回前limit行
	TopLoans(ctx context.Context, limit int) ([]*LoanRow, error)
}
