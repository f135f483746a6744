package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/domain/book"
)

// BookHandler 图书页面处理器
// 新建、更新、删除图书尚未实现
type BookHandler struct {
	listUseCase   *appbook.ListBooksUseCase
	detailUseCase *appbook.BookDetailUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(listUseCase *appbook.ListBooksUseCase, detailUseCase *appbook.BookDetailUseCase) *BookHandler {
	return &BookHandler{
		listUseCase:   listUseCase,
		detailUseCase: detailUseCase,
	}
}

// List 图书列表(按书名)
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_list", gin.H{
		"title":     "Book List",
		"book_list": books,
	})
}

// Detail 图书详情(图书+副本)
func (h *BookHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		fail(c, book.ErrBookNotFound)
		return
	}

	detail, err := h.detailUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_detail", gin.H{
		"title":          detail.Book.Title,
		"book":           detail.Book,
		"book_instances": detail.Instances,
	})
}

func (h *BookHandler) CreateForm(c *gin.Context) { notImplemented(c, "Book create GET") }
func (h *BookHandler) Create(c *gin.Context)     { notImplemented(c, "Book create POST") }
func (h *BookHandler) DeleteForm(c *gin.Context) { notImplemented(c, "Book delete GET") }
func (h *BookHandler) Delete(c *gin.Context)     { notImplemented(c, "Book delete POST") }
func (h *BookHandler) UpdateForm(c *gin.Context) { notImplemented(c, "Book update GET") }
func (h *BookHandler) Update(c *gin.Context)     { notImplemented(c, "Book update POST") }
