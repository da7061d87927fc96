//go:build wireinject
// +build wireinject

// Wire依赖注入配置,修改后执行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appbook "github.com/xiebiao/library/internal/application/book"
	appcart "github.com/xiebiao/library/internal/application/cart"
	appcheckout "github.com/xiebiao/library/internal/application/checkout"
	appreport "github.com/xiebiao/library/internal/application/report"
	appschema "github.com/xiebiao/library/internal/application/schema"
	appuser "github.com/xiebiao/library/internal/application/user"
	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/messaging"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/library/internal/infrastructure/ratelimit"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/router"
)

// infrastructureSet 数据库连接、事件发布、限流
var infrastructureSet = wire.NewSet(
	provideDB,
	messaging.Provide,
	ratelimit.Provide,
)

// repositorySet 仓储与事务管理器
var repositorySet = wire.NewSet(
	rdb.NewTxManager,
	rdb.NewMigrator,
	wire.Bind(new(appschema.Migrator), new(*rdb.Migrator)),
	rdb.NewUserRepository,
	rdb.NewCatalogRepository,
	rdb.NewSeedRepository,
	rdb.NewCartRepository,
	rdb.NewLoanRepository,
	rdb.NewReportRepository,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	catalog.NewService,
	user.NewService,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appschema.NewInitializeUseCase,
	appschema.NewPopulateUseCase,
	appschema.NewAssociateUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewAddBookUseCase,
	appbook.NewRemoveBookUseCase,
	appbook.NewGetBookUseCase,
	appuser.NewRegisterUseCase,
	appuser.NewUpdateUseCase,
	appuser.NewListLoansUseCase,
	appcart.NewCreateCartUseCase,
	appcart.NewAddItemUseCase,
	appcart.NewRemoveItemUseCase,
	appcart.NewViewCartUseCase,
	appcheckout.NewCheckoutUseCase,
	appreport.NewAdvancedReportUseCase,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	handler.NewSchemaHandler,
	handler.NewBookHandler,
	handler.NewUserHandler,
	handler.NewCartHandler,
	handler.NewCheckoutHandler,
	handler.NewReportHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.NewOptions,
	router.New,
)

// provideDB 打开数据库,清理函数关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := rdb.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := rdb.Close(db); err != nil {
			zap.L().Warn("关闭数据库连接失败", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

// InitializeApp 组装整个应用,返回gin引擎和清理函数
func InitializeApp(cfg *config.Config, logger *zap.Logger) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
	)
	return nil, nil, nil
}
