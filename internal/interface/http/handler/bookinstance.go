package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appinstance "github.com/xiebiao/library/internal/application/bookinstance"
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

const instanceListURL = "/catalog/bookinstances"

// BookInstanceHandler 副本页面处理器
type BookInstanceHandler struct {
	listUseCase   *appinstance.ListInstancesUseCase
	detailUseCase *appinstance.InstanceDetailUseCase
	createUseCase *appinstance.CreateInstanceUseCase
	deleteUseCase *appinstance.DeleteInstanceUseCase
}

// NewBookInstanceHandler 创建副本处理器
func NewBookInstanceHandler(
	listUseCase *appinstance.ListInstancesUseCase,
	detailUseCase *appinstance.InstanceDetailUseCase,
	createUseCase *appinstance.CreateInstanceUseCase,
	deleteUseCase *appinstance.DeleteInstanceUseCase,
) *BookInstanceHandler {
	return &BookInstanceHandler{
		listUseCase:   listUseCase,
		detailUseCase: detailUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List 副本列表(按所属图书书名)
func (h *BookInstanceHandler) List(c *gin.Context) {
	instances, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_list", gin.H{
		"title":             "Book Instance List",
		"bookinstance_list": instances,
	})
}

// Detail 副本详情
func (h *BookInstanceHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		fail(c, bookinstance.ErrBookInstanceNotFound)
		return
	}

	bi, err := h.detailUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_detail", gin.H{
		"title":        "Book: " + bi.BookTitle(),
		"bookinstance": bi,
	})
}

// CreateForm 新建副本表单(需要图书下拉列表)
func (h *BookInstanceHandler) CreateForm(c *gin.Context) {
	books, err := h.createUseCase.Books(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_form", gin.H{
		"title":     "Create BookInstance",
		"book_list": books,
		"statuses":  bookinstance.Statuses,
		"values":    map[string]string{},
	})
}

// Create 提交新建副本
func (h *BookInstanceHandler) Create(c *gin.Context) {
	var req dto.BookInstanceForm
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperrors.ErrBindError)
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appinstance.CreateInstanceRequest{
		Book:    req.Book,
		Imprint: req.Imprint,
		Status:  req.Status,
		DueBack: req.DueBack,
	})
	if err != nil {
		fail(c, err)
		return
	}

	if result.Instance == nil {
		c.HTML(http.StatusOK, "bookinstance_form", gin.H{
			"title":     "Create BookInstance",
			"book_list": result.Books,
			"statuses":  bookinstance.Statuses,
			"values":    result.Form.Values,
			"errors":    result.Form.Errors,
		})
		return
	}

	c.Redirect(http.StatusFound, result.Instance.URL())
}

// DeleteForm 删除确认页,副本不存在时回到副本列表
func (h *BookInstanceHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, instanceListURL)
		return
	}

	bi, err := h.deleteUseCase.Confirm(c.Request.Context(), id)
	if apperrors.IsNotFound(err) {
		c.Redirect(http.StatusFound, instanceListURL)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_delete", gin.H{
		"title":        "Delete BookInstance",
		"bookinstance": bi,
	})
}

// Delete 执行删除
func (h *BookInstanceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		fail(c, bookinstance.ErrBookInstanceNotFound)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, instanceListURL)
}

func (h *BookInstanceHandler) UpdateForm(c *gin.Context) { notImplemented(c, "BookInstance update GET") }
func (h *BookInstanceHandler) Update(c *gin.Context)     { notImplemented(c, "BookInstance update POST") }
