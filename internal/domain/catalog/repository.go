package catalog

import (
	"context"
)

// Repository 图书目录仓储接口
// 所有方法从ctx中取事务(如有),由调用方决定事务边界
type Repository interface {
	// ListBooks 全部图书,按ID升序
	ListBooks(ctx context.Context) ([]*Book, error)

	// FindBookByID 不存在返回ErrBookNotFound
	FindBookByID(ctx context.Context, id uint) (*Book, error)

	// FindBookByTitle 按书名精确查找并加行锁,不存在返回ErrBookNotFound
	FindBookByTitle(ctx context.Context, title string) (*Book, error)

	// LockBookByID SELECT ... FOR UPDATE,必须在事务内调用
	LockBookByID(ctx context.Context, id uint) (*Book, error)

	// CreateBook 新增图书,回填ID
	CreateBook(ctx context.Context, book *Book) error

	// IncrementBookCount 册数+1
	IncrementBookCount(ctx context.Context, id uint) error

	// DecrementBookCount 册数-1,仅当册数>0时生效,否则返回ErrBookUnavailable
	DecrementBookCount(ctx context.Context, id uint) error

	// DeleteBook 删除图书及其作者/类型关联、购物车条目
	DeleteBook(ctx context.Context, id uint) error

	// HasLoans 是否存在借阅记录
	HasLoans(ctx context.Context, bookID uint) (bool, error)

	// FindPublisherByID 不存在返回ErrPublisherNotFound
	FindPublisherByID(ctx context.Context, id uint) (*Publisher, error)

	// AuthorNames 图书的作者名,按作者ID升序
	AuthorNames(ctx context.Context, bookID uint) ([]string, error)

	// GenreNames 图书的类型名,按类型ID升序
	GenreNames(ctx context.Context, bookID uint) ([]string, error)
}
