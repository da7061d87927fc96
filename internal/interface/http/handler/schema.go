package handler

import (
	"github.com/gin-gonic/gin"

	appschema "github.com/xiebiao/library/internal/application/schema"
	"github.com/xiebiao/library/pkg/response"
)

// SchemaHandler 建表与初始数据
type SchemaHandler struct {
	initializeUseCase *appschema.InitializeUseCase
	populateUseCase   *appschema.PopulateUseCase
	associateUseCase  *appschema.AssociateUseCase
}

// NewSchemaHandler 创建建表处理器
func NewSchemaHandler(
	initializeUseCase *appschema.InitializeUseCase,
	populateUseCase *appschema.PopulateUseCase,
	associateUseCase *appschema.AssociateUseCase,
) *SchemaHandler {
	return &SchemaHandler{
		initializeUseCase: initializeUseCase,
		populateUseCase:   populateUseCase,
		associateUseCase:  associateUseCase,
	}
}

// InitializeDB 建表
// @Summary      初始化数据库
// @Description  按依赖顺序创建全部表,已存在的表保持不变
// @Tags         数据库
// @Produce      json
// @Success      200 {object} response.Response{data=appschema.InitializeResponse}
// @Failure      500 {object} response.ErrorResponse "建表失败"
// @Router       /initialize_db [post]
func (h *SchemaHandler) InitializeDB(c *gin.Context) {
	result, err := h.initializeUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "数据库初始化完成", result)
}

// PopulateDB 写入初始馆藏
// @Summary      写入初始数据
// @Description  写入作者、类型、出版社和图书;按名称去重,可重复执行
// @Tags         数据库
// @Produce      json
// @Success      200 {object} response.Response{data=appschema.PopulateResponse}
// @Failure      500 {object} response.ErrorResponse "写入失败"
// @Router       /populate_db [post]
func (h *SchemaHandler) PopulateDB(c *gin.Context) {
	result, err := h.populateUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "初始数据写入完成", result)
}

// PopulateAssociations 建立图书与作者、类型的关联
// @Summary      建立图书关联
// @Description  需先执行/populate_db
// @Tags         数据库
// @Produce      json
// @Success      200 {object} response.Response{data=appschema.AssociateResponse}
// @Failure      400 {object} response.ErrorResponse "种子数据缺失"
// @Failure      500 {object} response.ErrorResponse "写入失败"
// @Router       /populate_associations [post]
func (h *SchemaHandler) PopulateAssociations(c *gin.Context) {
	result, err := h.associateUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "图书关联建立完成", result)
}
