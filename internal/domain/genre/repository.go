package genre

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	// Create 创建分类(初始化数据使用)
	Create(ctx context.Context, genre *Genre) error

	// FindByID 根据ID查找分类,不存在返回ErrGenreNotFound
	FindByID(ctx context.Context, id uint) (*Genre, error)

	// List 全部分类,按名称升序
	List(ctx context.Context) ([]*Genre, error)

	// Count 分类总数
	Count(ctx context.Context) (int64, error)
}
