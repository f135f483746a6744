package author

import (
	"fmt"
	"time"

	"github.com/xiebiao/library/pkg/datefmt"
)

// Author 作者实体
// 设计说明:
// 1. 出生/去世日期可选,使用*time.Time表示"未知"
// 2. Name、URL、格式化日期都是派生字段,不落库
type Author struct {
	ID          uint
	FirstName   string     // 名
	FamilyName  string     // 姓
	DateOfBirth *time.Time // 出生日期(可选)
	DateOfDeath *time.Time // 去世日期(可选)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAuthor 创建作者(工厂方法)
// 参数需调用方先完成校验与清洗
func NewAuthor(firstName, familyName string, dateOfBirth, dateOfDeath *time.Time) *Author {
	now := time.Now()
	return &Author{
		FirstName:   firstName,
		FamilyName:  familyName,
		DateOfBirth: dateOfBirth,
		DateOfDeath: dateOfDeath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Name 展示名,格式"姓, 名"
// 任意一部分缺失时返回空串
func (a *Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// URL 详情页地址
func (a *Author) URL() string {
	return fmt.Sprintf("/catalog/author/%d", a.ID)
}

// DateOfBirthFormatted 格式化出生日期
// 日期缺失时返回datefmt.ErrUnavailable
func (a *Author) DateOfBirthFormatted() (string, error) {
	return datefmt.Format(a.DateOfBirth)
}

// DateOfDeathFormatted 格式化去世日期
func (a *Author) DateOfDeathFormatted() (string, error) {
	return datefmt.Format(a.DateOfDeath)
}

// Lifespan 生卒年展示,如"Jan 2, 1920 - Mar 3, 1990"
// 缺失的一端留空,两端都缺失时返回空串
func (a *Author) Lifespan() string {
	birth := datefmt.FormatOr(a.DateOfBirth, "")
	death := datefmt.FormatOr(a.DateOfDeath, "")
	if birth == "" && death == "" {
		return ""
	}
	return birth + " - " + death
}
