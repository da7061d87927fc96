package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appreport "github.com/xiebiao/library/internal/application/report"
	"github.com/xiebiao/library/internal/domain/report"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) TopLoans(ctx context.Context, limit int) ([]*report.LoanRow, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]*report.LoanRow)
	return rows, args.Error(1)
}

func TestAdvancedReport(t *testing.T) {
	repo := &mockRepo{}
	repo.On("TopLoans", mock.Anything, report.DefaultLimit).Return([]*report.LoanRow{
		{UserName: "Alice", BookTitle: "Mockingjay", LoanCount: 3, PublisherName: "Scholastic", CartCount: 1},
	}, nil).Once()

	resp, err := appreport.NewAdvancedReportUseCase(repo).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, appreport.Row{UserName: "Alice", BookTitle: "Mockingjay", LoanCount: 3, PublisherName: "Scholastic", CartCount: 1}, resp.Rows[0])
	repo.AssertExpectations(t)
}

func TestAdvancedReport_StoreError(t *testing.T) {
	repo := &mockRepo{}
	repo.On("TopLoans", mock.Anything, report.DefaultLimit).Return(nil, apperrors.Store(errors.New("timeout"), "查询借阅排行失败"))

	_, err := appreport.NewAdvancedReportUseCase(repo).Execute(context.Background())
	assert.Equal(t, apperrors.KindStore, apperrors.KindOf(err))
}
