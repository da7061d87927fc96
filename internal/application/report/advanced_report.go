package report

import (
	"context"

	"github.com/xiebiao/library/internal/domain/report"
)

// AdvancedReportUseCase 借阅排行
type AdvancedReportUseCase struct {
	reportRepo report.Repository
}

// NewAdvancedReportUseCase 创建报表用例
func NewAdvancedReportUseCase(reportRepo report.Repository) *AdvancedReportUseCase {
	return &AdvancedReportUseCase{reportRepo: reportRepo}
}

// Row 报表的一行
type Row struct {
	UserName      string `json:"userName"`
	BookTitle     string `json:"bookTitle"`
	LoanCount     int64  `json:"loanCount"`
	PublisherName string `json:"publisherName"`
	CartCount     int64  `json:"cartCount"`
}

// AdvancedReportResponse 前10行
type AdvancedReportResponse struct {
	Rows []Row `json:"rows"`
}

// Execute 按借阅次数、在车数降序取前10行
func (uc *AdvancedReportUseCase) Execute(ctx context.Context) (*AdvancedReportResponse, error) {
	rows, err := uc.reportRepo.TopLoans(ctx, report.DefaultLimit)
	if err != nil {
		return nil, err
	}

	resp := &AdvancedReportResponse{Rows: make([]Row, len(rows))}
	for i, r := range rows {
		resp.Rows[i] = Row{
			UserName:      r.UserName,
			BookTitle:     r.BookTitle,
			LoanCount:     r.LoanCount,
			PublisherName: r.PublisherName,
			CartCount:     r.CartCount,
		}
	}
	return resp, nil
}
