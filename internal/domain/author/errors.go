package author

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "Author not found")

	// ErrAuthorHasBooks 作者仍有关联图书,拒绝删除
	ErrAuthorHasBooks = apperrors.New(apperrors.ErrCodeAuthorHasBooks, "Author has books; delete them first")
)
