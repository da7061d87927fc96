// Package routertest 用SQLite组装完整的HTTP应用,供接口测试使用
package routertest

import (
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appbook "github.com/xiebiao/library/internal/application/book"
	appcart "github.com/xiebiao/library/internal/application/cart"
	appcheckout "github.com/xiebiao/library/internal/application/checkout"
	appreport "github.com/xiebiao/library/internal/application/report"
	appschema "github.com/xiebiao/library/internal/application/schema"
	appuser "github.com/xiebiao/library/internal/application/user"
	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/messaging"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb/rdbtest"
	"github.com/xiebiao/library/internal/infrastructure/ratelimit"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/router"
)

// App 测试用应用
type App struct {
	Engine *gin.Engine
	DB     *gorm.DB
}

// Option 调整组装参数
type Option func(*settings)

type settings struct {
	publisher loan.EventPublisher
	limiter   ratelimit.Limiter
	logger    *zap.Logger
}

// WithPublisher 替换结账事件发布器,默认不发布
func WithPublisher(p loan.EventPublisher) Option {
	return func(s *settings) { s.publisher = p }
}

// WithLimiter 启用限流
func WithLimiter(l ratelimit.Limiter) Option {
	return func(s *settings) { s.limiter = l }
}

// New 建好表的SQLite + 全部处理器
func New(t testing.TB, opts ...Option) *App {
	t.Helper()

	s := settings{publisher: messaging.NopPublisher{}, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}

	db := rdbtest.NewDB(t)
	txm := rdb.NewTxManager(db)

	userRepo := rdb.NewUserRepository(db)
	catalogRepo := rdb.NewCatalogRepository(db)
	cartRepo := rdb.NewCartRepository(db)
	loanRepo := rdb.NewLoanRepository(db)
	seedRepo := rdb.NewSeedRepository(db)

	catalogSvc := catalog.NewService(catalogRepo)
	userSvc := user.NewService(userRepo)

	handlers := &router.Handlers{
		Schema: handler.NewSchemaHandler(
			appschema.NewInitializeUseCase(rdb.NewMigrator(db)),
			appschema.NewPopulateUseCase(seedRepo, txm),
			appschema.NewAssociateUseCase(seedRepo, txm),
		),
		Book: handler.NewBookHandler(
			appbook.NewListBooksUseCase(catalogSvc),
			appbook.NewAddBookUseCase(catalogSvc, txm),
			appbook.NewRemoveBookUseCase(catalogSvc, txm),
			appbook.NewGetBookUseCase(catalogSvc),
		),
		User: handler.NewUserHandler(
			appuser.NewRegisterUseCase(userSvc, txm),
			appuser.NewUpdateUseCase(userSvc, txm),
			appuser.NewListLoansUseCase(userRepo, loanRepo),
		),
		Cart: handler.NewCartHandler(
			appcart.NewCreateCartUseCase(userRepo, cartRepo, txm),
			appcart.NewAddItemUseCase(cartRepo, catalogRepo, txm),
			appcart.NewRemoveItemUseCase(cartRepo, txm),
			appcart.NewViewCartUseCase(cartRepo),
		),
		Checkout: handler.NewCheckoutHandler(
			appcheckout.NewCheckoutUseCase(userRepo, cartRepo, catalogRepo, loanRepo, s.publisher, txm),
		),
		Report: handler.NewReportHandler(
			appreport.NewAdvancedReportUseCase(rdb.NewReportRepository(db)),
		),
	}

	engine := router.New(s.logger, router.Options{
		Mode:          gin.TestMode,
		EnableSwagger: true,
		MetricsPath:   "/metrics",
		Limiter:       s.limiter,
	}, handlers)

	return &App{Engine: engine, DB: db}
}
