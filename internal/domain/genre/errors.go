package genre

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrGenreNotFound 分类不存在
	ErrGenreNotFound = apperrors.New(apperrors.ErrCodeGenreNotFound, "Genre not found")

	// ErrGenreDuplicate 分类名重复
	ErrGenreDuplicate = apperrors.New(apperrors.ErrCodeGenreDuplicate, "Genre already exists")
)
