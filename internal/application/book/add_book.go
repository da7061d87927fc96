package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

// AddBookUseCase 图书入库
// 同名图书已存在时只把册数+1;书名行在事务内加锁,并发入库不会产生两行
type AddBookUseCase struct {
	catalogService catalog.Service
	txManager      *rdb.TxManager
}

// NewAddBookUseCase 创建入库用例
func NewAddBookUseCase(catalogService catalog.Service, txManager *rdb.TxManager) *AddBookUseCase {
	return &AddBookUseCase{catalogService: catalogService, txManager: txManager}
}

// AddBookRequest 入库请求
type AddBookRequest struct {
	Title              string
	PublicationDate    string
	PublisherID        uint
	AvailabilityStatus bool
}

// AddBookResponse 入库结果,Created为false表示累加了已有图书的册数
type AddBookResponse struct {
	Book    BookItem `json:"book"`
	Created bool     `json:"created"`
}

// Execute 执行入库
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*AddBookResponse, error) {
	var result *catalog.AddResult
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		r, err := uc.catalogService.AddBook(txCtx, req.Title, req.PublicationDate, req.PublisherID, req.AvailabilityStatus)
		result = r
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("图书入库",
		zap.Uint("book_id", result.Book.ID),
		zap.Bool("created", result.Created),
		zap.Int("book_count", result.Book.BookCount),
	)
	return &AddBookResponse{Book: toBookItem(result.Book), Created: result.Created}, nil
}
