package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// ErrorHandler 统一错误页
//
// HTML处理器只调用c.Error(err)并返回，由这里决定状态码和渲染：
//   - 404族 → 404，501 → 501，其余按apperrors.HTTPStatus映射
//   - 存储错误和内部错误额外记录Error日志
//
// 处理器已经写过响应（如JSON接口的response.Error）时只记录日志
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperrors.HTTPStatus(err)
		appErr := apperrors.GetAppError(err)

		if status >= 500 && !apperrors.IsNotImplemented(err) {
			log.Error("请求处理出错",
				zap.String("request_id", GetRequestID(c)),
				zap.String("path", c.Request.URL.Path),
				zap.Int("code", appErr.Code),
				zap.Error(err))
		}

		if c.Writer.Written() {
			return
		}

		c.HTML(status, "error", gin.H{
			"title":   appErr.Message,
			"message": appErr.Message,
			"status":  status,
		})
	}
}
