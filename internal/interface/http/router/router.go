// Package router 组装gin引擎:模板、中间件、HTML页面、JSON接口与运维端点
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/internal/interface/http/view"
	"github.com/xiebiao/library/pkg/response"
)

// Handlers 全部HTTP处理器
type Handlers struct {
	Catalog      *handler.CatalogHandler
	Author       *handler.AuthorHandler
	Book         *handler.BookHandler
	Genre        *handler.GenreHandler
	BookInstance *handler.BookInstanceHandler
	API          *handler.APIHandler
}

// New 创建并配置gin引擎
//
// 中间件顺序:
//  1. RequestID最先执行,后面的日志和Span都能拿到请求ID
//  2. Logger/Metrics/Tracing包住整个处理过程
//  3. Recovery在ErrorHandler外层,错误页渲染本身panic也能兜住
func New(cfg *config.Config, log *zap.Logger, h *Handlers) (*gin.Engine, error) {
	gin.SetMode(cfg.Server.Mode)

	tmpl, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("解析模板失败: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Metrics(),
		middleware.Tracing(),
		gin.Recovery(),
		middleware.ErrorHandler(log),
	)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog")
	})

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// 访问 /swagger/index.html 查看接口文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerCatalog(r.Group("/catalog"), h)
	registerAPI(r.Group("/api/v1"), h.API)

	return r, nil
}

// registerCatalog HTML页面路由
// 静态段(create)与参数段(:id)并列,gin优先匹配静态段
func registerCatalog(catalog *gin.RouterGroup, h *Handlers) {
	catalog.GET("", h.Catalog.Index)

	// 作者
	catalog.GET("/authors", h.Author.List)
	catalog.GET("/author/create", h.Author.CreateForm)
	catalog.POST("/author/create", h.Author.Create)
	catalog.GET("/author/:id", h.Author.Detail)
	catalog.GET("/author/:id/delete", h.Author.DeleteForm)
	catalog.POST("/author/:id/delete", h.Author.Delete)
	catalog.GET("/author/:id/update", h.Author.UpdateForm)
	catalog.POST("/author/:id/update", h.Author.Update)

	// 图书
	catalog.GET("/books", h.Book.List)
	catalog.GET("/book/create", h.Book.CreateForm)
	catalog.POST("/book/create", h.Book.Create)
	catalog.GET("/book/:id", h.Book.Detail)
	catalog.GET("/book/:id/delete", h.Book.DeleteForm)
	catalog.POST("/book/:id/delete", h.Book.Delete)
	catalog.GET("/book/:id/update", h.Book.UpdateForm)
	catalog.POST("/book/:id/update", h.Book.Update)

	// 分类
	catalog.GET("/genres", h.Genre.List)
	catalog.GET("/genre/create", h.Genre.CreateForm)
	catalog.POST("/genre/create", h.Genre.Create)
	catalog.GET("/genre/:id", h.Genre.Detail)
	catalog.GET("/genre/:id/delete", h.Genre.DeleteForm)
	catalog.POST("/genre/:id/delete", h.Genre.Delete)
	catalog.GET("/genre/:id/update", h.Genre.UpdateForm)
	catalog.POST("/genre/:id/update", h.Genre.Update)

	// 副本
	catalog.GET("/bookinstances", h.BookInstance.List)
	catalog.GET("/bookinstance/create", h.BookInstance.CreateForm)
	catalog.POST("/bookinstance/create", h.BookInstance.Create)
	catalog.GET("/bookinstance/:id", h.BookInstance.Detail)
	catalog.GET("/bookinstance/:id/delete", h.BookInstance.DeleteForm)
	catalog.POST("/bookinstance/:id/delete", h.BookInstance.Delete)
	catalog.GET("/bookinstance/:id/update", h.BookInstance.UpdateForm)
	catalog.POST("/bookinstance/:id/update", h.BookInstance.Update)
}

// registerAPI JSON接口路由
func registerAPI(v1 *gin.RouterGroup, h *handler.APIHandler) {
	v1.GET("/catalog", h.Catalog)

	authors := v1.Group("/authors")
	{
		authors.GET("", h.ListAuthors)
		authors.POST("", h.CreateAuthor)
		authors.GET("/:id", h.GetAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}

	v1.GET("/books", h.ListBooks)
	v1.GET("/books/:id", h.GetBook)

	v1.GET("/genres", h.ListGenres)
	v1.GET("/genres/:id", h.GetGenre)

	instances := v1.Group("/bookinstances")
	{
		instances.GET("", h.ListBookInstances)
		instances.POST("", h.CreateBookInstance)
		instances.GET("/:id", h.GetBookInstance)
	}
}
