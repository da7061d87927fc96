package rdb

import (
	"context"

	"gorm.io/gorm"
)

// txKey 事务在context中的key
type txKey struct{}

// TxManager 事务管理器
// fn内的仓储调用通过ctx拿到同一个事务;fn返回error时ROLLBACK,否则COMMIT
// 已在事务中时再次调用,GORM使用SAVEPOINT
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    b, err := catalogRepo.LockBookByID(ctx, bookID)
//	    if err != nil {
//	        return err
//	    }
//	    return catalogRepo.DecrementBookCount(ctx, b.ID)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbFrom(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// InTx ctx中是否已有事务
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*gorm.DB)
	return ok
}
