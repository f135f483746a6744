package author

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/parallel"
	"github.com/xiebiao/library/pkg/tracing"
)

const tracerName = "application/author"

// fetchAuthorWithBooks 并发查询作者和作者的图书
//
// 作者不存在不算失败：返回(nil, books, nil)，由调用方决定如何处理
// （详情页返回NotFound，删除确认页重定向）。
// 任意一个查询出现存储错误都直接返回该错误，不会拿到半份结果。
func fetchAuthorWithBooks(
	ctx context.Context,
	authors author.Service,
	books book.Service,
	id uint,
) (*author.Author, []*book.Book, error) {
	return parallel.Both(ctx,
		func(ctx context.Context) (*author.Author, error) {
			ctx, span := tracing.StartSpan(ctx, tracerName, "FetchAuthor")
			a, err := authors.GetAuthor(ctx, id)
			if errors.Is(err, author.ErrAuthorNotFound) {
				a, err = nil, nil
			}
			tracing.EndSpan(span, err)
			return a, err
		},
		func(ctx context.Context) ([]*book.Book, error) {
			ctx, span := tracing.StartSpan(ctx, tracerName, "FetchAuthorBooks")
			list, err := books.BooksByAuthor(ctx, id)
			tracing.EndSpan(span, err)
			return list, err
		},
	)
}
