//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	appauthor "github.com/xiebiao/library/internal/application/author"
	appbook "github.com/xiebiao/library/internal/application/book"
	appinstance "github.com/xiebiao/library/internal/application/bookinstance"
	appcatalog "github.com/xiebiao/library/internal/application/catalog"
	appgenre "github.com/xiebiao/library/internal/application/genre"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/router"
)

// infrastructureSet 数据库连接
var infrastructureSet = wire.NewSet(
	provideDB,
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository,
	mysql.NewBookRepository,
	mysql.NewGenreRepository,
	mysql.NewBookInstanceRepository,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	author.NewService,
	book.NewService,
	genre.NewService,
	bookinstance.NewService,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appcatalog.NewIndexUseCase,
	appauthor.NewListAuthorsUseCase,
	appauthor.NewAuthorDetailUseCase,
	appauthor.NewCreateAuthorUseCase,
	appauthor.NewDeleteAuthorUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewBookDetailUseCase,
	appgenre.NewListGenresUseCase,
	appgenre.NewGenreDetailUseCase,
	appinstance.NewListInstancesUseCase,
	appinstance.NewInstanceDetailUseCase,
	appinstance.NewCreateInstanceUseCase,
	appinstance.NewDeleteInstanceUseCase,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	handler.NewCatalogHandler,
	handler.NewAuthorHandler,
	handler.NewBookHandler,
	handler.NewGenreHandler,
	handler.NewBookInstanceHandler,
	handler.NewAPIHandler,
	wire.Struct(new(handler.APIUseCases), "*"),
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 组装整个应用
// cfg和logger在main中先行创建(启动日志和Tracer需要),作为注入器参数传入
func InitializeApp(cfg *config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
