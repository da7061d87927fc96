// Package router 组装gin引擎:中间件与全部路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/library/docs"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/ratelimit"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/pkg/response"
)

// Handlers 全部HTTP处理器
type Handlers struct {
	Schema   *handler.SchemaHandler
	Book     *handler.BookHandler
	User     *handler.UserHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Report   *handler.ReportHandler
}

// Options 引擎选项
type Options struct {
	Mode          string
	EnableSwagger bool
	MetricsPath   string            // 为空时不暴露指标端点
	Limiter       ratelimit.Limiter // 为nil时不限流
}

// NewOptions 从配置提取引擎选项
func NewOptions(cfg *config.Config, limiter ratelimit.Limiter) Options {
	opts := Options{
		Mode:          cfg.Server.Mode,
		EnableSwagger: cfg.Server.EnableSwagger,
		Limiter:       limiter,
	}
	if cfg.Metrics.Enabled {
		opts.MetricsPath = cfg.Metrics.Path
	}
	return opts
}

// New 创建gin引擎并注册路由
// 中间件顺序:请求ID → 日志 → panic恢复 → 追踪 → 指标 → 限流
func New(logger *zap.Logger, opts Options, h *Handlers) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Tracing(),
		middleware.Metrics(),
	)

	// 运维端点不限流
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, "pong", gin.H{"status": "healthy"})
	})
	if opts.MetricsPath != "" {
		r.GET(opts.MetricsPath, gin.WrapH(promhttp.Handler()))
	}
	if opts.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("")
	if opts.Limiter != nil {
		api.Use(middleware.RateLimit(opts.Limiter))
	}

	// 建表与初始数据
	api.POST("/initialize_db", h.Schema.InitializeDB)
	api.POST("/populate_db", h.Schema.PopulateDB)
	api.POST("/populate_associations", h.Schema.PopulateAssociations)

	// 图书
	books := api.Group("/books")
	{
		books.GET("/all", h.Book.ListBooks)
		books.POST("/add", h.Book.AddBook)
		books.POST("/remove", h.Book.RemoveBook)
		books.GET("/:id", h.Book.GetBook)
	}

	// 读者
	api.POST("/register_user", h.User.Register)
	api.POST("/update_user", h.User.Update)
	api.GET("/users/:id/transactions", h.User.ListLoans)

	// 借书车与结账
	api.POST("/create_cart", h.Cart.CreateCart)
	api.POST("/add_to_cart", h.Cart.AddToCart)
	api.POST("/remove_from_cart", h.Cart.RemoveFromCart)
	api.GET("/view_cart", h.Cart.ViewCart)
	api.POST("/checkout", h.Checkout.Checkout)

	// 报表
	api.GET("/reports/advanced", h.Report.Advanced)

	return r
}
