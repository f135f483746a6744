package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/library/internal/application/author"
	appbook "github.com/xiebiao/library/internal/application/book"
	appinstance "github.com/xiebiao/library/internal/application/bookinstance"
	appcatalog "github.com/xiebiao/library/internal/application/catalog"
	appgenre "github.com/xiebiao/library/internal/application/genre"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// APIUseCases JSON接口依赖的用例集合
// 字段较多,由wire.Struct按字段注入
type APIUseCases struct {
	Index          *appcatalog.IndexUseCase
	ListAuthors    *appauthor.ListAuthorsUseCase
	AuthorDetail   *appauthor.AuthorDetailUseCase
	CreateAuthor   *appauthor.CreateAuthorUseCase
	DeleteAuthor   *appauthor.DeleteAuthorUseCase
	ListBooks      *appbook.ListBooksUseCase
	BookDetail     *appbook.BookDetailUseCase
	ListGenres     *appgenre.ListGenresUseCase
	GenreDetail    *appgenre.GenreDetailUseCase
	ListInstances  *appinstance.ListInstancesUseCase
	InstanceDetail *appinstance.InstanceDetailUseCase
	CreateInstance *appinstance.CreateInstanceUseCase
}

// APIHandler JSON接口处理器
// 与HTML页面共用同一组用例,只是换了一种输出方式:
// HTTP状态码恒为200,结果通过业务码区分
type APIHandler struct {
	uc *APIUseCases
}

// NewAPIHandler 创建JSON接口处理器
func NewAPIHandler(uc *APIUseCases) *APIHandler {
	return &APIHandler{uc: uc}
}

// Catalog 首页统计
// @Summary      馆藏统计
// @Description  图书、副本、可借副本、作者、分类的数量
// @Tags         目录
// @Produce      json
// @Success      200 {object} response.Response{data=appcatalog.Counts}
// @Router       /api/v1/catalog [get]
func (h *APIHandler) Catalog(c *gin.Context) {
	counts, err := h.uc.Index.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Description  按姓升序
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=response.ListData{list=[]dto.AuthorResponse}}
// @Router       /api/v1/authors [get]
func (h *APIHandler) ListAuthors(c *gin.Context) {
	authors, err := h.uc.ListAuthors.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, dto.ToAuthorList(authors), len(authors))
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Description  作者及其全部图书
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorDetailResponse}
// @Failure      200 {object} response.Response "40401 作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *APIHandler) GetAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, author.ErrAuthorNotFound)
		return
	}

	detail, err := h.uc.AuthorDetail.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.AuthorDetailResponse{
		Author: dto.ToAuthorResponse(detail.Author),
		Books:  dto.ToBookList(detail.Books),
	})
}

// CreateAuthor 新建作者
// @Summary      新建作者
// @Description  名和姓必填且只能包含字母数字,日期格式YYYY-MM-DD
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.AuthorForm true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      200 {object} response.Response{data=[]form.FieldError} "40900 参数错误"
// @Router       /api/v1/authors [post]
func (h *APIHandler) CreateAuthor(c *gin.Context) {
	var req dto.AuthorForm
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数格式错误: "+err.Error())
		return
	}

	result, err := h.uc.CreateAuthor.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		FirstName:   req.FirstName,
		FamilyName:  req.FamilyName,
		DateOfBirth: req.DateOfBirth,
		DateOfDeath: req.DateOfDeath,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Author == nil {
		response.ErrorWithData(c, apperrors.ErrCodeInvalidParams, apperrors.ErrInvalidParams.Message, result.Form.Errors)
		return
	}

	response.Success(c, dto.ToAuthorResponse(result.Author))
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Description  作者仍有图书时拒绝删除,data中返回这些图书
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.DeleteAuthorResponse}
// @Failure      200 {object} response.Response{data=dto.DeleteAuthorResponse} "40010 作者仍有图书"
// @Router       /api/v1/authors/{id} [delete]
func (h *APIHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, author.ErrAuthorNotFound)
		return
	}

	result, err := h.uc.DeleteAuthor.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !result.Deleted {
		response.ErrorWithData(c, apperrors.ErrCodeAuthorHasBooks, author.ErrAuthorHasBooks.Message, dto.DeleteAuthorResponse{
			Deleted: false,
			Author:  dto.ToAuthorResponse(result.Author),
			Books:   dto.ToBookList(result.Books),
		})
		return
	}

	response.Success(c, dto.DeleteAuthorResponse{
		Deleted: true,
		Author:  dto.ToAuthorResponse(result.Author),
		Books:   []dto.BookItem{},
	})
}

// ListBooks 图书列表
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=response.ListData{list=[]dto.BookItem}}
// @Router       /api/v1/books [get]
func (h *APIHandler) ListBooks(c *gin.Context) {
	books, err := h.uc.ListBooks.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, dto.ToBookList(books), len(books))
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  图书(含作者、分类)及其全部副本
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookDetailResponse}
// @Failure      200 {object} response.Response "40402 图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *APIHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, book.ErrBookNotFound)
		return
	}

	detail, err := h.uc.BookDetail.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.BookDetailResponse{
		Book:      dto.ToBookItem(detail.Book),
		Instances: dto.ToBookInstanceList(detail.Instances),
	})
}

// ListGenres 分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=response.ListData{list=[]dto.GenreResponse}}
// @Router       /api/v1/genres [get]
func (h *APIHandler) ListGenres(c *gin.Context) {
	genres, err := h.uc.ListGenres.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, dto.ToGenreList(genres), len(genres))
}

// GetGenre 分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=dto.GenreDetailResponse}
// @Failure      200 {object} response.Response "40403 分类不存在"
// @Router       /api/v1/genres/{id} [get]
func (h *APIHandler) GetGenre(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, genre.ErrGenreNotFound)
		return
	}

	detail, err := h.uc.GenreDetail.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.GenreDetailResponse{
		Genre: dto.ToGenreResponse(detail.Genre),
		Books: dto.ToBookList(detail.Books),
	})
}

// ListBookInstances 副本列表
// @Summary      副本列表
// @Description  按所属图书书名升序,同名图书保持存储顺序
// @Tags         副本
// @Produce      json
// @Success      200 {object} response.Response{data=response.ListData{list=[]dto.BookInstanceResponse}}
// @Router       /api/v1/bookinstances [get]
func (h *APIHandler) ListBookInstances(c *gin.Context) {
	instances, err := h.uc.ListInstances.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, dto.ToBookInstanceList(instances), len(instances))
}

// GetBookInstance 副本详情
// @Summary      副本详情
// @Tags         副本
// @Produce      json
// @Param        id path int true "副本ID"
// @Success      200 {object} response.Response{data=dto.BookInstanceResponse}
// @Failure      200 {object} response.Response "40404 副本不存在"
// @Router       /api/v1/bookinstances/{id} [get]
func (h *APIHandler) GetBookInstance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, bookinstance.ErrBookInstanceNotFound)
		return
	}

	bi, err := h.uc.InstanceDetail.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookInstanceResponse(bi))
}

// CreateBookInstance 新建副本
// @Summary      新建副本
// @Description  图书必须存在;状态为Loaned时必须填写应还日期
// @Tags         副本
// @Accept       json
// @Produce      json
// @Param        request body dto.BookInstanceForm true "副本信息"
// @Success      200 {object} response.Response{data=dto.BookInstanceResponse}
// @Failure      200 {object} response.Response{data=[]form.FieldError} "40900 参数错误"
// @Router       /api/v1/bookinstances [post]
func (h *APIHandler) CreateBookInstance(c *gin.Context) {
	var req dto.BookInstanceForm
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数格式错误: "+err.Error())
		return
	}

	result, err := h.uc.CreateInstance.Execute(c.Request.Context(), appinstance.CreateInstanceRequest{
		Book:    req.Book,
		Imprint: req.Imprint,
		Status:  req.Status,
		DueBack: req.DueBack,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Instance == nil {
		response.ErrorWithData(c, apperrors.ErrCodeInvalidParams, apperrors.ErrInvalidParams.Message, result.Form.Errors)
		return
	}

	response.Success(c, dto.ToBookInstanceResponse(result.Instance))
}
