package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/library/internal/application/cart"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// CartHandler 借书车HTTP处理器
type CartHandler struct {
	createCartUseCase *appcart.CreateCartUseCase
	addItemUseCase    *appcart.AddItemUseCase
	removeItemUseCase *appcart.RemoveItemUseCase
	viewCartUseCase   *appcart.ViewCartUseCase
}

// NewCartHandler 创建借书车处理器
func NewCartHandler(
	createCartUseCase *appcart.CreateCartUseCase,
	addItemUseCase *appcart.AddItemUseCase,
	removeItemUseCase *appcart.RemoveItemUseCase,
	viewCartUseCase *appcart.ViewCartUseCase,
) *CartHandler {
	return &CartHandler{
		createCartUseCase: createCartUseCase,
		addItemUseCase:    addItemUseCase,
		removeItemUseCase: removeItemUseCase,
		viewCartUseCase:   viewCartUseCase,
	}
}

// CreateCart 创建借书车
// @Summary      创建借书车
// @Description  每个读者最多一辆
// @Tags         借书车
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.CreateCartRequest true "读者ID"
// @Success      201 {object} response.Response{data=appcart.CreateCartResponse}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      404 {object} response.ErrorResponse "读者不存在"
// @Failure      409 {object} response.ErrorResponse "已有借书车"
// @Failure      500 {object} response.ErrorResponse
// @Router       /create_cart [post]
func (h *CartHandler) CreateCart(c *gin.Context) {
	var req dto.CreateCartRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.createCartUseCase.Execute(c.Request.Context(), req.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "借书车已创建", result)
}

// AddToCart 图书加入借书车
// @Summary      加入借书车
// @Tags         借书车
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.CartItemRequest true "借书车与图书"
// @Success      201 {object} response.Response{data=appcart.AddItemResponse}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      404 {object} response.ErrorResponse "借书车或图书不存在"
// @Failure      409 {object} response.ErrorResponse "已在借书车中"
// @Router       /add_to_cart [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req dto.CartItemRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.addItemUseCase.Execute(c.Request.Context(), appcart.ItemRequest{
		CartID: req.CartID,
		BookID: req.BookID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "已加入借书车", result)
}

// RemoveFromCart 移出借书车
// @Summary      移出借书车
// @Tags         借书车
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.CartItemRequest true "借书车与图书"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      404 {object} response.ErrorResponse "车内没有这本书"
// @Failure      500 {object} response.ErrorResponse
// @Router       /remove_from_cart [post]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	var req dto.CartItemRequest
	if !bind(c, &req) {
		return
	}

	err := h.removeItemUseCase.Execute(c.Request.Context(), appcart.ItemRequest{
		CartID: req.CartID,
		BookID: req.BookID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "已移出借书车", gin.H{"cartID": req.CartID, "bookID": req.BookID})
}

// ViewCart 查看借书车
// @Summary      查看借书车
// @Description  按加入顺序返回书名
// @Tags         借书车
// @Produce      json
// @Param        cartID query int true "借书车ID"
// @Success      200 {object} response.Response{data=appcart.ViewCartResponse}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      404 {object} response.ErrorResponse "借书车不存在"
// @Failure      500 {object} response.ErrorResponse
// @Router       /view_cart [get]
func (h *CartHandler) ViewCart(c *gin.Context) {
	var req dto.ViewCartQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.viewCartUseCase.Execute(c.Request.Context(), req.CartID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "查询成功", result)
}
