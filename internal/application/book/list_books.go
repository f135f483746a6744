package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
)

// ListBooksUseCase 图书列表用例
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建图书列表用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// Execute 全部图书(按书名升序,含作者)
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]*book.Book, error) {
	return uc.bookService.ListBooks(ctx)
}
