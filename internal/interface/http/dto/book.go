package dto

import (
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/genre"
)

// BookItem 图书响应
type BookItem struct {
	ID      uint            `json:"id" example:"1"`
	Title   string          `json:"title" example:"The Name of the Wind"`
	Author  string          `json:"author,omitempty" example:"Rothfuss, Patrick"`
	Summary string          `json:"summary,omitempty"`
	ISBN    string          `json:"isbn" example:"9781473211896"`
	Genres  []GenreResponse `json:"genres,omitempty"`
	URL     string          `json:"url" example:"/catalog/book/1"`
}

// BookDetailResponse 图书详情响应
type BookDetailResponse struct {
	Book      BookItem               `json:"book"`
	Instances []BookInstanceResponse `json:"instances"`
}

// GenreResponse 分类响应
type GenreResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Fantasy"`
	URL  string `json:"url" example:"/catalog/genre/1"`
}

// GenreDetailResponse 分类详情响应
type GenreDetailResponse struct {
	Genre GenreResponse `json:"genre"`
	Books []BookItem    `json:"books"`
}

// ToBookItem 领域实体 → 响应DTO(只包含已预加载的关联)
func ToBookItem(b *book.Book) BookItem {
	item := BookItem{
		ID:      b.ID,
		Title:   b.Title,
		Author:  b.AuthorName(),
		Summary: b.Summary,
		ISBN:    b.ISBN,
		URL:     b.URL(),
	}
	if len(b.Genres) > 0 {
		item.Genres = ToGenreList(b.Genres)
	}
	return item
}

// ToBookList 图书列表
func ToBookList(list []*book.Book) []BookItem {
	out := make([]BookItem, len(list))
	for i, b := range list {
		out[i] = ToBookItem(b)
	}
	return out
}

// ToGenreResponse 领域实体 → 响应DTO
func ToGenreResponse(g *genre.Genre) GenreResponse {
	return GenreResponse{ID: g.ID, Name: g.Name, URL: g.URL()}
}

// ToGenreList 分类列表
func ToGenreList(list []*genre.Genre) []GenreResponse {
	out := make([]GenreResponse, len(list))
	for i, g := range list {
		out[i] = ToGenreResponse(g)
	}
	return out
}
