//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
// 修改后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookstore-manager/internal/application/book"
	appcart "github.com/xiebiao/bookstore-manager/internal/application/cart"
	appcategory "github.com/xiebiao/bookstore-manager/internal/application/category"
	appuser "github.com/xiebiao/bookstore-manager/internal/application/user"
	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/cart"
	"github.com/xiebiao/bookstore-manager/internal/domain/category"
	"github.com/xiebiao/bookstore-manager/internal/domain/user"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/storage"
	"github.com/xiebiao/bookstore-manager/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-manager/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-manager/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	provideLogger,
	provideTracer,
	provideRepositories,
	wire.FieldsOf(new(*repositories), "Books", "Categories", "Carts", "Users", "Tx"),
	provideRedisClient,
	provideSessionStore,
	provideBookCache,
	provideRateLimiter,
	provideEventPublisher,
	provideImageStorage,
	wire.Bind(new(appbook.ImageStore), new(*storage.ImageStorage)),
	provideJWTManager,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	category.NewService,
	provideCategoryChecker,
	book.NewService,
	cart.NewService,
	user.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewSaveBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appcart.NewCreateCartUseCase,
	appcart.NewListCartsUseCase,
	appcart.NewListCartBooksUseCase,
	appcart.NewAddBookUseCase,
	appcart.NewDeleteCartUseCase,
	appcategory.NewListCategoriesUseCase,
	appcategory.NewCreateCategoryUseCase,
	appcategory.NewDeleteCategoryUseCase,
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewRefreshTokenUseCase,
	appuser.NewProfileUseCase,
)

// interfaceSet HTTP层依赖
var interfaceSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewCartHandler,
	handler.NewCategoryHandler,
	handler.NewUserHandler,
	middleware.NewAuthMiddleware,
	wire.Struct(new(router.Handlers), "*"),
	provideEngine,
)

// InitializeApp 初始化整个应用
// 返回的cleanup按创建的逆序释放资源（MQ、Redis、数据库连接）
func InitializeApp() (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		interfaceSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
