package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 每个查询方法的注释写明会预加载哪些关联
type Repository interface {
	// Create 创建图书(初始化数据使用)
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,预加载Author和Genres
	FindByID(ctx context.Context, id uint) (*Book, error)

	// List 全部图书,按书名升序,预加载Author
	List(ctx context.Context) ([]*Book, error)

	// ListByAuthor 某作者的全部图书,按书名升序,预加载Genres
	ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// ListByGenre 某分类下的全部图书,按书名升序
	ListByGenre(ctx context.Context, genreID uint) ([]*Book, error)

	// Exists 图书是否存在
	Exists(ctx context.Context, id uint) (bool, error)

	// Count 图书总数
	Count(ctx context.Context) (int64, error)
}
