package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/internal/domain/genre"
)

// Counts 首页统计
type Counts struct {
	Books              int64 `json:"book_count"`
	Instances          int64 `json:"book_instance_count"`
	AvailableInstances int64 `json:"book_instance_available_count"`
	Authors            int64 `json:"author_count"`
	Genres             int64 `json:"genre_count"`
}

// IndexUseCase 首页统计用例
// 五个计数互不依赖,并发执行
type IndexUseCase struct {
	bookService     book.Service
	instanceService bookinstance.Service
	authorService   author.Service
	genreService    genre.Service
}

// NewIndexUseCase 创建首页统计用例
func NewIndexUseCase(
	bookService book.Service,
	instanceService bookinstance.Service,
	authorService author.Service,
	genreService genre.Service,
) *IndexUseCase {
	return &IndexUseCase{
		bookService:     bookService,
		instanceService: instanceService,
		authorService:   authorService,
		genreService:    genreService,
	}
}

// Execute 执行统计,任一计数失败返回第一个错误
func (uc *IndexUseCase) Execute(ctx context.Context) (*Counts, error) {
	var (
		c Counts
		g errgroup.Group
	)

	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(ctx)
			*dst = n
			return err
		})
	}
	count(&c.Books, uc.bookService.CountBooks)
	count(&c.Instances, uc.instanceService.CountInstances)
	count(&c.AvailableInstances, uc.instanceService.CountAvailable)
	count(&c.Authors, uc.authorService.CountAuthors)
	count(&c.Genres, uc.genreService.CountGenres)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &c, nil
}
