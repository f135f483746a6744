package author

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
)

// ListAuthorsUseCase 作者列表用例
type ListAuthorsUseCase struct {
	authorService author.Service
}

// NewListAuthorsUseCase 创建作者列表用例
func NewListAuthorsUseCase(authorService author.Service) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorService: authorService}
}

// Execute 全部作者,按姓升序
func (uc *ListAuthorsUseCase) Execute(ctx context.Context) ([]*author.Author, error) {
	return uc.authorService.ListAuthors(ctx)
}
