package bookinstance

import (
	"context"
	"slices"
	"strings"
)

// Service 副本领域服务接口
type Service interface {
	// ListInstances 全部副本,按所属图书书名升序
	ListInstances(ctx context.Context) ([]*BookInstance, error)

	// GetInstance 副本详情(含图书)
	GetInstance(ctx context.Context, id uint) (*BookInstance, error)

	// InstancesForBook 某本图书的副本
	InstancesForBook(ctx context.Context, bookID uint) ([]*BookInstance, error)

	// CreateInstance 保存新副本
	CreateInstance(ctx context.Context, instance *BookInstance) error

	// DeleteInstance 删除副本
	DeleteInstance(ctx context.Context, id uint) error

	// CountInstances 副本总数
	CountInstances(ctx context.Context) (int64, error)

	// CountAvailable 可借副本数
	CountAvailable(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建副本领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListInstances 全部副本
// 排序依据是关联图书的书名,存储层无法直接按关联表字段排序,
// 因此在预加载之后于内存中排序。
func (s *service) ListInstances(ctx context.Context) ([]*BookInstance, error) {
	instances, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	SortByBookTitle(instances)
	return instances, nil
}

func (s *service) GetInstance(ctx context.Context, id uint) (*BookInstance, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) InstancesForBook(ctx context.Context, bookID uint) ([]*BookInstance, error) {
	return s.repo.ListByBook(ctx, bookID)
}

func (s *service) CreateInstance(ctx context.Context, instance *BookInstance) error {
	return s.repo.Create(ctx, instance)
}

func (s *service) DeleteInstance(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) CountInstances(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *service) CountAvailable(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, StatusAvailable)
}

// SortByBookTitle 按书名升序原地排序
// 逐字节比较(区分大小写);书名相同的副本保持原有顺序(稳定排序)
func SortByBookTitle(instances []*BookInstance) {
	slices.SortStableFunc(instances, func(a, b *BookInstance) int {
		return strings.Compare(a.BookTitle(), b.BookTitle())
	})
}
