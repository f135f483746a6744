package genre

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/pkg/parallel"
)

// ListGenresUseCase 分类列表用例
type ListGenresUseCase struct {
	genreService genre.Service
}

// NewListGenresUseCase 创建分类列表用例
func NewListGenresUseCase(genreService genre.Service) *ListGenresUseCase {
	return &ListGenresUseCase{genreService: genreService}
}

// Execute 全部分类,按名称升序
func (uc *ListGenresUseCase) Execute(ctx context.Context) ([]*genre.Genre, error) {
	return uc.genreService.ListGenres(ctx)
}

// GenreDetail 分类详情视图模型
type GenreDetail struct {
	Genre *genre.Genre
	Books []*book.Book
}

// GenreDetailUseCase 分类详情用例(分类与分类下的图书并发查询)
type GenreDetailUseCase struct {
	genreService genre.Service
	bookService  book.Service
}

// NewGenreDetailUseCase 创建分类详情用例
func NewGenreDetailUseCase(genreService genre.Service, bookService book.Service) *GenreDetailUseCase {
	return &GenreDetailUseCase{genreService: genreService, bookService: bookService}
}

// Execute 分类详情,分类不存在返回ErrGenreNotFound
func (uc *GenreDetailUseCase) Execute(ctx context.Context, id uint) (*GenreDetail, error) {
	g, books, err := parallel.Both(ctx,
		func(ctx context.Context) (*genre.Genre, error) {
			g, err := uc.genreService.GetGenre(ctx, id)
			if errors.Is(err, genre.ErrGenreNotFound) {
				return nil, nil
			}
			return g, err
		},
		func(ctx context.Context) ([]*book.Book, error) {
			return uc.bookService.BooksByGenre(ctx, id)
		},
	)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, genre.ErrGenreNotFound
	}
	return &GenreDetail{Genre: g, Books: books}, nil
}
