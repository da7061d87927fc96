package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/catalog"
)

// GetBookUseCase 图书详情
type GetBookUseCase struct {
	catalogService catalog.Service
}

// NewGetBookUseCase 创建详情用例
func NewGetBookUseCase(catalogService catalog.Service) *GetBookUseCase {
	return &GetBookUseCase{catalogService: catalogService}
}

// GetBookResponse 图书及作者、类型名称
type GetBookResponse struct {
	Book    BookItem `json:"book"`
	Authors []string `json:"authors"`
	Genres  []string `json:"genres"`
}

// Execute 执行查询
func (uc *GetBookUseCase) Execute(ctx context.Context, bookID uint) (*GetBookResponse, error) {
	detail, err := uc.catalogService.GetBookDetail(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return &GetBookResponse{
		Book:    toBookItem(detail.Book),
		Authors: detail.Authors,
		Genres:  detail.Genres,
	}, nil
}
