package author

import (
	"context"
)

// Service 作者领域服务接口
// 删除前的"是否仍有图书"检查跨越两个聚合,放在应用层的用例中完成
type Service interface {
	// ListAuthors 全部作者(按姓升序)
	ListAuthors(ctx context.Context) ([]*Author, error)

	// GetAuthor 作者详情
	GetAuthor(ctx context.Context, id uint) (*Author, error)

	// CreateAuthor 保存新作者
	CreateAuthor(ctx context.Context, author *Author) error

	// DeleteAuthor 按ID删除作者
	DeleteAuthor(ctx context.Context, id uint) error

	// CountAuthors 作者总数
	CountAuthors(ctx context.Context) (int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return s.repo.List(ctx)
}

func (s *service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) CreateAuthor(ctx context.Context, author *Author) error {
	return s.repo.Create(ctx, author)
}

func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) CountAuthors(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
