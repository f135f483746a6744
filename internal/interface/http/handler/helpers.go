package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// parseID 解析路径参数id(正整数)
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// fail 把错误交给ErrorHandler渲染错误页
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}

// notImplemented 尚未实现的页面,返回501而不是假装成功
func notImplemented(c *gin.Context, what string) {
	fail(c, apperrors.NotImplemented(what))
}
