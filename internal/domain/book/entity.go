package book

import (
	"fmt"
	"time"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/genre"
)

// Book 图书实体
// 设计说明:
// 1. AuthorID/GenreIDs是存储的引用字段
// 2. Author/Genres是"populate"后的关联记录,只有查询指定预加载时才有值
type Book struct {
	ID        uint
	Title     string // 书名
	AuthorID  uint   // 作者ID(必填)
	Summary   string // 简介
	ISBN      string // ISBN号
	GenreIDs  []uint // 分类ID列表
	Author    *author.Author
	Genres    []*genre.Genre
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
func NewBook(title string, authorID uint, summary, isbn string, genreIDs []uint) *Book {
	now := time.Now()
	return &Book{
		Title:     title,
		AuthorID:  authorID,
		Summary:   summary,
		ISBN:      isbn,
		GenreIDs:  genreIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// URL 详情页地址
func (b *Book) URL() string {
	return fmt.Sprintf("/catalog/book/%d", b.ID)
}

// AuthorName 关联作者的展示名(未预加载时为空)
func (b *Book) AuthorName() string {
	if b.Author == nil {
		return ""
	}
	return b.Author.Name()
}
