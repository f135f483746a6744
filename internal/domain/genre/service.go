package genre

import (
	"context"
)

// Service 分类领域服务接口
type Service interface {
	ListGenres(ctx context.Context) ([]*Genre, error)
	GetGenre(ctx context.Context, id uint) (*Genre, error)
	CountGenres(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建分类领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListGenres(ctx context.Context) ([]*Genre, error) {
	return s.repo.List(ctx)
}

func (s *service) GetGenre(ctx context.Context, id uint) (*Genre, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) CountGenres(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
