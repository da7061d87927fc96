package handler

import (
	"github.com/gin-gonic/gin"

	appcheckout "github.com/xiebiao/library/internal/application/checkout"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// CheckoutHandler 结账HTTP处理器
type CheckoutHandler struct {
	checkoutUseCase *appcheckout.CheckoutUseCase
}

// NewCheckoutHandler 创建结账处理器
func NewCheckoutHandler(checkoutUseCase *appcheckout.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUseCase: checkoutUseCase}
}

// Checkout 结账借出
// @Summary      结账
// @Description  一个事务内:每本书册数减一并写借阅记录,清空借书车。任一本不可借则全部回滚
// @Tags         借书车
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.CheckoutRequest true "读者姓名与借书车"
// @Success      200 {object} response.Response{data=appcheckout.CheckoutResponse}
// @Failure      400 {object} response.ErrorResponse "借书车为空或图书不可借"
// @Failure      404 {object} response.ErrorResponse "读者不存在"
// @Failure      500 {object} response.ErrorResponse
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.checkoutUseCase.Execute(c.Request.Context(), appcheckout.CheckoutRequest{
		UserName: req.UserName,
		CartID:   req.CartID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "借阅成功", result)
}
