package loan

import (
	"context"
)

// Repository 借阅记录仓储接口
type Repository interface {
	// Create 写入一条借阅记录,回填ID
	Create(ctx context.Context, tx *Transaction) error

	// ListByUserID 用户的借阅记录,按借出时间倒序
	ListByUserID(ctx context.Context, userID uint) ([]*Transaction, error)
}
