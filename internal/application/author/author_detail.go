package author

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/tracing"
)

// AuthorDetail 作者详情视图模型
type AuthorDetail struct {
	Author *author.Author
	Books  []*book.Book // 按书名升序,已填充分类
}

// AuthorDetailUseCase 作者详情用例
// 作者和作者的图书是两次互不依赖的查询,并发执行后汇合
type AuthorDetailUseCase struct {
	authorService author.Service
	bookService   book.Service
}

// NewAuthorDetailUseCase 创建作者详情用例
func NewAuthorDetailUseCase(authorService author.Service, bookService book.Service) *AuthorDetailUseCase {
	return &AuthorDetailUseCase{
		authorService: authorService,
		bookService:   bookService,
	}
}

// Execute 执行作者详情用例
// 1. 两次查询都完成后才继续,任一存储错误直接返回
// 2. 作者不存在返回ErrAuthorNotFound(与存储错误区分)
func (uc *AuthorDetailUseCase) Execute(ctx context.Context, id uint) (detail *AuthorDetail, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorDetail")
	defer func() { tracing.EndSpan(span, err) }()

	a, books, err := fetchAuthorWithBooks(ctx, uc.authorService, uc.bookService, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, author.ErrAuthorNotFound
	}

	return &AuthorDetail{Author: a, Books: books}, nil
}
