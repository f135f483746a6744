package book

import (
	"context"
)

// Service 图书领域服务接口
// 本版本只提供查询能力,新增/修改/删除图书在接口层返回"未实现"
type Service interface {
	// ListBooks 图书列表(含作者)
	ListBooks(ctx context.Context) ([]*Book, error)

	// GetBook 图书详情(含作者、分类)
	GetBook(ctx context.Context, id uint) (*Book, error)

	// BooksByAuthor 某作者的图书(含分类,按书名升序)
	BooksByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// BooksByGenre 某分类下的图书
	BooksByGenre(ctx context.Context, genreID uint) ([]*Book, error)

	// Exists 校验引用:图书是否存在
	Exists(ctx context.Context, id uint) (bool, error)

	// CountBooks 图书总数
	CountBooks(ctx context.Context) (int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) BooksByAuthor(ctx context.Context, authorID uint) ([]*Book, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *service) BooksByGenre(ctx context.Context, genreID uint) ([]*Book, error) {
	return s.repo.ListByGenre(ctx, genreID)
}

func (s *service) Exists(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	return s.repo.Exists(ctx, id)
}

func (s *service) CountBooks(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
