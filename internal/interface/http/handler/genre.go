package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appgenre "github.com/xiebiao/library/internal/application/genre"
	"github.com/xiebiao/library/internal/domain/genre"
)

// GenreHandler 分类页面处理器
type GenreHandler struct {
	listUseCase   *appgenre.ListGenresUseCase
	detailUseCase *appgenre.GenreDetailUseCase
}

// NewGenreHandler 创建分类处理器
func NewGenreHandler(listUseCase *appgenre.ListGenresUseCase, detailUseCase *appgenre.GenreDetailUseCase) *GenreHandler {
	return &GenreHandler{
		listUseCase:   listUseCase,
		detailUseCase: detailUseCase,
	}
}

// List 分类列表
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_list", gin.H{
		"title":      "Genre List",
		"genre_list": genres,
	})
}

// Detail 分类详情(分类+分类下的图书)
func (h *GenreHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		fail(c, genre.ErrGenreNotFound)
		return
	}

	detail, err := h.detailUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_detail", gin.H{
		"title":       "Genre Detail",
		"genre":       detail.Genre,
		"genre_books": detail.Books,
	})
}

func (h *GenreHandler) CreateForm(c *gin.Context) { notImplemented(c, "Genre create GET") }
func (h *GenreHandler) Create(c *gin.Context)     { notImplemented(c, "Genre create POST") }
func (h *GenreHandler) DeleteForm(c *gin.Context) { notImplemented(c, "Genre delete GET") }
func (h *GenreHandler) Delete(c *gin.Context)     { notImplemented(c, "Genre delete POST") }
func (h *GenreHandler) UpdateForm(c *gin.Context) { notImplemented(c, "Genre update GET") }
func (h *GenreHandler) Update(c *gin.Context)     { notImplemented(c, "Genre update POST") }
