package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/catalog"
)

// ListBooksUseCase 图书列表
// 全量返回,按ID升序,不分页
type ListBooksUseCase struct {
	catalogService catalog.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(catalogService catalog.Service) *ListBooksUseCase {
	return &ListBooksUseCase{catalogService: catalogService}
}

// ListBooksResponse 列表响应
type ListBooksResponse struct {
	Books []BookItem `json:"books"`
	Total int        `json:"total"`
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context) (*ListBooksResponse, error) {
	books, err := uc.catalogService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]BookItem, len(books))
	for i, b := range books {
		list[i] = toBookItem(b)
	}
	return &ListBooksResponse{Books: list, Total: len(list)}, nil
}
