package dto

import (
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/pkg/datefmt"
)

// BookInstanceForm 副本表单
type BookInstanceForm struct {
	Book    string `form:"book" json:"book" example:"1"`
	Imprint string `form:"imprint" json:"imprint" example:"London Gollancz, 2014."`
	Status  string `form:"status" json:"status" example:"Available" enums:"Available,Maintenance,Loaned,Reserved"`
	DueBack string `form:"due_back" json:"due_back" example:"2026-11-01"`
}

// BookInstanceResponse 副本响应
type BookInstanceResponse struct {
	ID      uint   `json:"id" example:"1"`
	BookID  uint   `json:"book_id" example:"1"`
	Title   string `json:"title,omitempty" example:"The Name of the Wind"`
	Imprint string `json:"imprint" example:"London Gollancz, 2014."`
	Status  string `json:"status" example:"Available"`
	DueBack string `json:"due_back,omitempty" example:"2026-11-01"`
	URL     string `json:"url" example:"/catalog/bookinstance/1"`
}

// ToBookInstanceResponse 领域实体 → 响应DTO
func ToBookInstanceResponse(bi *bookinstance.BookInstance) BookInstanceResponse {
	return BookInstanceResponse{
		ID:      bi.ID,
		BookID:  bi.BookID,
		Title:   bi.BookTitle(),
		Imprint: bi.Imprint,
		Status:  string(bi.Status),
		DueBack: datefmt.FormatInput(bi.DueBack),
		URL:     bi.URL(),
	}
}

// ToBookInstanceList 副本列表
func ToBookInstanceList(list []*bookinstance.BookInstance) []BookInstanceResponse {
	out := make([]BookInstanceResponse, len(list))
	for i, bi := range list {
		out[i] = ToBookInstanceResponse(bi)
	}
	return out
}
