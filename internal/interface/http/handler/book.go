package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase  *appbook.ListBooksUseCase
	addBookUseCase    *appbook.AddBookUseCase
	removeBookUseCase *appbook.RemoveBookUseCase
	getBookUseCase    *appbook.GetBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	addBookUseCase *appbook.AddBookUseCase,
	removeBookUseCase *appbook.RemoveBookUseCase,
	getBookUseCase *appbook.GetBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:  listBooksUseCase,
		addBookUseCase:    addBookUseCase,
		removeBookUseCase: removeBookUseCase,
		getBookUseCase:    getBookUseCase,
	}
}

// ListBooks 全部图书
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse}
// @Failure      500 {object} response.ErrorResponse
// @Router       /books/all [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	result, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "查询成功", result)
}

// AddBook 图书入库
// @Summary      图书入库
// @Description  书名+出版日期+出版社已存在时册数加一,否则新建
// @Tags         图书
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=appbook.AddBookResponse}
// @Failure      400 {object} response.ErrorResponse "参数错误或出版社不存在"
// @Failure      500 {object} response.ErrorResponse
// @Router       /books/add [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	var req dto.AddBookRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.addBookUseCase.Execute(c.Request.Context(), appbook.AddBookRequest{
		Title:              req.Title,
		PublicationDate:    req.PublicationDate,
		PublisherID:        req.PublisherID,
		AvailabilityStatus: *req.AvailabilityStatus,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "图书入库成功", result)
}

// RemoveBook 删除图书
// @Summary      删除图书
// @Description  同时删除作者/类型关联和借书车条目;存在借阅记录时拒绝
// @Tags         图书
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.RemoveBookRequest true "图书ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      404 {object} response.ErrorResponse "图书不存在"
// @Failure      409 {object} response.ErrorResponse "存在借阅记录"
// @Failure      500 {object} response.ErrorResponse
// @Router       /books/remove [post]
func (h *BookHandler) RemoveBook(c *gin.Context) {
	var req dto.RemoveBookRequest
	if !bind(c, &req) {
		return
	}

	if err := h.removeBookUseCase.Execute(c.Request.Context(), req.BookID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "图书已删除", gin.H{"bookID": req.BookID})
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  返回图书及其作者、类型
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.GetBookResponse}
// @Failure      400 {object} response.ErrorResponse "ID格式错误"
// @Failure      404 {object} response.ErrorResponse "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	var uri dto.BookIDURI
	if !bindURI(c, &uri) {
		return
	}

	result, err := h.getBookUseCase.Execute(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "查询成功", result)
}
