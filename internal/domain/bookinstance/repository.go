package bookinstance

import (
	"context"
)

// Repository 副本仓储接口
type Repository interface {
	// Create 创建副本,成功后回填ID
	Create(ctx context.Context, instance *BookInstance) error

	// FindByID 根据ID查找副本,预加载Book
	FindByID(ctx context.Context, id uint) (*BookInstance, error)

	// List 全部副本,预加载Book,按存储顺序(ID升序)返回
	List(ctx context.Context) ([]*BookInstance, error)

	// ListByBook 某本图书的全部副本
	ListByBook(ctx context.Context, bookID uint) ([]*BookInstance, error)

	// Delete 删除副本,不存在返回ErrBookInstanceNotFound
	Delete(ctx context.Context, id uint) error

	// Count 副本总数
	Count(ctx context.Context) (int64, error)

	// CountByStatus 指定状态的副本数
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
