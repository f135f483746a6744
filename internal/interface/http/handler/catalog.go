package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/library/internal/application/catalog"
)

// CatalogHandler 首页
type CatalogHandler struct {
	indexUseCase *appcatalog.IndexUseCase
}

// NewCatalogHandler 创建首页处理器
func NewCatalogHandler(indexUseCase *appcatalog.IndexUseCase) *CatalogHandler {
	return &CatalogHandler{indexUseCase: indexUseCase}
}

// Index 首页统计
func (h *CatalogHandler) Index(c *gin.Context) {
	counts, err := h.indexUseCase.Execute(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"title":  "Local Library Home",
		"counts": counts,
	})
}
