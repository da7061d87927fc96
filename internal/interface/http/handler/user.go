package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/library/internal/application/user"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// UserHandler 读者HTTP处理器
type UserHandler struct {
	registerUseCase  *appuser.RegisterUseCase
	updateUseCase    *appuser.UpdateUseCase
	listLoansUseCase *appuser.ListLoansUseCase
}

// NewUserHandler 创建读者处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	updateUseCase *appuser.UpdateUseCase,
	listLoansUseCase *appuser.ListLoansUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase:  registerUseCase,
		updateUseCase:    updateUseCase,
		listLoansUseCase: listLoansUseCase,
	}
}

// Register 读者注册
// @Summary      读者注册
// @Tags         读者
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.RegisterUserRequest true "读者信息"
// @Success      201 {object} response.Response{data=appuser.UserResponse}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      409 {object} response.ErrorResponse "联系方式已注册"
// @Failure      500 {object} response.ErrorResponse
// @Router       /register_user [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Name:           req.Name,
		ContactDetails: req.ContactDetails,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "注册成功", result)
}

// Update 修改读者信息
// @Summary      修改读者信息
// @Tags         读者
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.UpdateUserRequest true "读者信息"
// @Success      200 {object} response.Response{data=appuser.UserResponse}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      404 {object} response.ErrorResponse "读者不存在"
// @Failure      409 {object} response.ErrorResponse "联系方式已被他人使用"
// @Failure      500 {object} response.ErrorResponse
// @Router       /update_user [post]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appuser.UpdateRequest{
		UserID:         req.UserID,
		Name:           req.UserName,
		ContactDetails: req.ContactDetails,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "修改成功", result)
}

// ListLoans 读者借阅记录
// @Summary      借阅记录
// @Description  按借出时间倒序;returnDate为空表示未归还
// @Tags         读者
// @Produce      json
// @Param        id path int true "读者ID"
// @Success      200 {object} response.Response{data=appuser.ListLoansResponse}
// @Failure      400 {object} response.ErrorResponse "ID格式错误"
// @Failure      404 {object} response.ErrorResponse "读者不存在"
// @Failure      500 {object} response.ErrorResponse
// @Router       /users/{id}/transactions [get]
func (h *UserHandler) ListLoans(c *gin.Context) {
	var uri dto.UserIDURI
	if !bindURI(c, &uri) {
		return
	}

	result, err := h.listLoansUseCase.Execute(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "查询成功", result)
}
