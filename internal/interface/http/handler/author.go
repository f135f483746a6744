package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/library/internal/application/author"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

const authorListURL = "/catalog/authors"

// AuthorHandler 作者页面处理器
type AuthorHandler struct {
	listUseCase   *appauthor.ListAuthorsUseCase
	detailUseCase *appauthor.AuthorDetailUseCase
	createUseCase *appauthor.CreateAuthorUseCase
	deleteUseCase *appauthor.DeleteAuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	listUseCase *appauthor.ListAuthorsUseCase,
	detailUseCase *appauthor.AuthorDetailUseCase,
	createUseCase *appauthor.CreateAuthorUseCase,
	deleteUseCase *appauthor.DeleteAuthorUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		listUseCase:   listUseCase,
		detailUseCase: detailUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List 作者列表
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_list", gin.H{
		"title":       "Author List",
		"author_list": authors,
	})
}

// Detail 作者详情(作者+作者的图书)
func (h *AuthorHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		fail(c, author.ErrAuthorNotFound)
		return
	}

	detail, err := h.detailUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_detail", gin.H{
		"title":        "Author Detail",
		"author":       detail.Author,
		"author_books": detail.Books,
	})
}

// CreateForm 新建作者表单
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "author_form", gin.H{
		"title":  "Create Author",
		"values": map[string]string{},
	})
}

// Create 提交新建作者
// 校验失败时回填清洗后的值并列出全部错误;成功后重定向到作者详情
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.AuthorForm
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperrors.ErrBindError)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		FirstName:   req.FirstName,
		FamilyName:  req.FamilyName,
		DateOfBirth: req.DateOfBirth,
		DateOfDeath: req.DateOfDeath,
	})
	if err != nil {
		fail(c, err)
		return
	}

	if result.Author == nil {
		c.HTML(http.StatusOK, "author_form", gin.H{
			"title":  "Create Author",
			"values": result.Form.Values,
			"errors": result.Form.Errors,
		})
		return
	}

	c.Redirect(http.StatusFound, result.Author.URL())
}

// DeleteForm 删除确认页
// 作者不存在时没有可删除的内容,直接回到作者列表
func (h *AuthorHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, authorListURL)
		return
	}

	detail, err := h.deleteUseCase.Confirm(c.Request.Context(), id)
	if apperrors.IsNotFound(err) {
		c.Redirect(http.StatusFound, authorListURL)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_delete", gin.H{
		"title":        "Delete Author",
		"author":       detail.Author,
		"author_books": detail.Books,
	})
}

// Delete 执行删除
// 仍有图书时重新渲染确认页并列出这些图书;作者不存在返回404
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		fail(c, author.ErrAuthorNotFound)
		return
	}

	result, err := h.deleteUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	if !result.Deleted {
		c.HTML(http.StatusOK, "author_delete", gin.H{
			"title":        "Delete Author",
			"author":       result.Author,
			"author_books": result.Books,
		})
		return
	}

	c.Redirect(http.StatusFound, authorListURL)
}

// UpdateForm 更新作者表单(未实现)
func (h *AuthorHandler) UpdateForm(c *gin.Context) {
	notImplemented(c, "Author update GET")
}

// Update 提交更新作者(未实现)
func (h *AuthorHandler) Update(c *gin.Context) {
	notImplemented(c, "Author update POST")
}
