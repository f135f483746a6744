package dto

import (
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/pkg/datefmt"
)

// AuthorForm 作者表单(HTML表单与JSON共用)
// 只做绑定,校验与清洗在应用层的表单规则中完成
type AuthorForm struct {
	FirstName   string `form:"first_name" json:"first_name" example:"Patrick"`
	FamilyName  string `form:"family_name" json:"family_name" example:"Rothfuss"`
	DateOfBirth string `form:"date_of_birth" json:"date_of_birth" example:"1973-06-06"`
	DateOfDeath string `form:"date_of_death" json:"date_of_death" example:""`
}

// AuthorResponse 作者响应
type AuthorResponse struct {
	ID          uint   `json:"id" example:"1"`
	FirstName   string `json:"first_name" example:"Patrick"`
	FamilyName  string `json:"family_name" example:"Rothfuss"`
	Name        string `json:"name" example:"Rothfuss, Patrick"`
	DateOfBirth string `json:"date_of_birth,omitempty" example:"1973-06-06"`
	DateOfDeath string `json:"date_of_death,omitempty" example:""`
	Lifespan    string `json:"lifespan" example:"Jun 6, 1973 - "`
	URL         string `json:"url" example:"/catalog/author/1"`
}

// AuthorDetailResponse 作者详情响应
type AuthorDetailResponse struct {
	Author AuthorResponse `json:"author"`
	Books  []BookItem     `json:"books"`
}

// DeleteAuthorResponse 作者删除结果
// 被拒绝时携带作者及其名下图书(与确认页相同的视图模型)
type DeleteAuthorResponse struct {
	Deleted bool           `json:"deleted" example:"false"`
	Author  AuthorResponse `json:"author"`
	Books   []BookItem     `json:"books"`
}

// ToAuthorResponse 领域实体 → 响应DTO
func ToAuthorResponse(a *author.Author) AuthorResponse {
	return AuthorResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		Name:        a.Name(),
		DateOfBirth: datefmt.FormatInput(a.DateOfBirth),
		DateOfDeath: datefmt.FormatInput(a.DateOfDeath),
		Lifespan:    a.Lifespan(),
		URL:         a.URL(),
	}
}

// ToAuthorList 作者列表
func ToAuthorList(list []*author.Author) []AuthorResponse {
	out := make([]AuthorResponse, len(list))
	for i, a := range list {
		out[i] = ToAuthorResponse(a)
	}
	return out
}
