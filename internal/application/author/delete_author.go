package author

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/metrics"
)

// DeleteAuthorResult 删除结果
// Deleted为false时Author和Books说明删除被拒绝的原因(与确认页相同的视图模型)
type DeleteAuthorResult struct {
	Deleted bool
	Author  *author.Author
	Books   []*book.Book
}

// DeleteAuthorUseCase 作者删除用例(带依赖检查)
// 注意:检查图书与执行删除之间没有加锁,期间新增的图书不会被发现
type DeleteAuthorUseCase struct {
	authorService author.Service
	bookService   book.Service
	logger        *zap.Logger
}

// NewDeleteAuthorUseCase 创建作者删除用例
func NewDeleteAuthorUseCase(authorService author.Service, bookService book.Service, logger *zap.Logger) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{
		authorService: authorService,
		bookService:   bookService,
		logger:        logger,
	}
}

// Confirm 删除确认页(GET)
// 作者不存在返回ErrAuthorNotFound,接口层据此重定向到作者列表
func (uc *DeleteAuthorUseCase) Confirm(ctx context.Context, id uint) (*AuthorDetail, error) {
	a, books, err := fetchAuthorWithBooks(ctx, uc.authorService, uc.bookService, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, author.ErrAuthorNotFound
	}
	return &AuthorDetail{Author: a, Books: books}, nil
}

// Execute 执行删除(POST)
// 1. 并发查询作者和作者的图书
// 2. 作者不存在返回ErrAuthorNotFound
// 3. 仍有图书时拒绝删除,返回作者和图书列表
// 4. 没有图书时按ID删除
func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) (*DeleteAuthorResult, error) {
	a, books, err := fetchAuthorWithBooks(ctx, uc.authorService, uc.bookService, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, author.ErrAuthorNotFound
	}

	if len(books) > 0 {
		metrics.RecordAuthorDeleteRefused()
		uc.logger.Info("作者仍有图书,拒绝删除",
			zap.Uint("author_id", id),
			zap.Int("books", len(books)))
		return &DeleteAuthorResult{Deleted: false, Author: a, Books: books}, nil
	}

	if err := uc.authorService.DeleteAuthor(ctx, id); err != nil {
		return nil, err
	}

	metrics.RecordAuthorDeleted()
	uc.logger.Info("作者已删除", zap.Uint("author_id", id))

	return &DeleteAuthorResult{Deleted: true, Author: a}, nil
}
