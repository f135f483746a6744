package author

import (
	"context"
)

// Repository 作者仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure层实现
type Repository interface {
	// Create 创建作者,成功后回填ID
	Create(ctx context.Context, author *Author) error

	// FindByID 根据ID查找作者,不存在返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// List 全部作者,按姓升序
	List(ctx context.Context) ([]*Author, error)

	// Delete 删除作者,不存在返回ErrAuthorNotFound
	Delete(ctx context.Context, id uint) error

	// Count 作者总数
	Count(ctx context.Context) (int64, error)
}
