package bookinstance

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 副本领域错误定义
var (
	// ErrBookInstanceNotFound 副本不存在
	ErrBookInstanceNotFound = apperrors.New(apperrors.ErrCodeBookInstanceNotFound, "Book copy not found")
)
