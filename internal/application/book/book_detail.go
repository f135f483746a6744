package book

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/pkg/parallel"
	"github.com/xiebiao/library/pkg/tracing"
)

const tracerName = "application/book"

// BookDetail 图书详情视图模型
type BookDetail struct {
	Book      *book.Book
	Instances []*bookinstance.BookInstance
}

// BookDetailUseCase 图书详情用例(图书与其副本并发查询)
type BookDetailUseCase struct {
	bookService     book.Service
	instanceService bookinstance.Service
}

// NewBookDetailUseCase 创建图书详情用例
func NewBookDetailUseCase(bookService book.Service, instanceService bookinstance.Service) *BookDetailUseCase {
	return &BookDetailUseCase{
		bookService:     bookService,
		instanceService: instanceService,
	}
}

// Execute 图书详情,图书不存在返回ErrBookNotFound
func (uc *BookDetailUseCase) Execute(ctx context.Context, id uint) (detail *BookDetail, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookDetail")
	defer func() { tracing.EndSpan(span, err) }()

	b, instances, err := parallel.Both(ctx,
		func(ctx context.Context) (*book.Book, error) {
			b, err := uc.bookService.GetBook(ctx, id)
			if errors.Is(err, book.ErrBookNotFound) {
				return nil, nil
			}
			return b, err
		},
		func(ctx context.Context) ([]*bookinstance.BookInstance, error) {
			return uc.instanceService.InstancesForBook(ctx, id)
		},
	)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, book.ErrBookNotFound
	}

	return &BookDetail{Book: b, Instances: instances}, nil
}
