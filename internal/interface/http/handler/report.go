package handler

import (
	"github.com/gin-gonic/gin"

	appreport "github.com/xiebiao/library/internal/application/report"
	"github.com/xiebiao/library/pkg/response"
)

// ReportHandler 报表
type ReportHandler struct {
	advancedReportUseCase *appreport.AdvancedReportUseCase
}

// NewReportHandler 创建报表处理器
func NewReportHandler(advancedReportUseCase *appreport.AdvancedReportUseCase) *ReportHandler {
	return &ReportHandler{advancedReportUseCase: advancedReportUseCase}
}

// Advanced 借阅排行
// @Summary      借阅排行
// @Description  读者×图书的借阅次数前10,附出版社和在车数
// @Tags         报表
// @Produce      json
// @Success      200 {object} response.Response{data=appreport.AdvancedReportResponse}
// @Failure      500 {object} response.ErrorResponse
// @Router       /reports/advanced [get]
func (h *ReportHandler) Advanced(c *gin.Context) {
	result, err := h.advancedReportUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "查询成功", result)
}
