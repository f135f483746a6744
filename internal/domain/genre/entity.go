package genre

import (
	"fmt"
	"time"
)

// Genre 图书分类实体
type Genre struct {
	ID        uint
	Name      string // 分类名(如 Fantasy、Science Fiction)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGenre 创建分类
func NewGenre(name string) *Genre {
	now := time.Now()
	return &Genre{Name: name, CreatedAt: now, UpdatedAt: now}
}

// URL 详情页地址
func (g *Genre) URL() string {
	return fmt.Sprintf("/catalog/genre/%d", g.ID)
}
