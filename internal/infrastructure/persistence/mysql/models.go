package mysql

import (
	"time"

	"gorm.io/gorm"
)

// AuthorModel GORM作者模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/author/entity.go是领域实体,不依赖GORM
// 3. Repository负责两者之间的转换
type AuthorModel struct {
	ID          uint           `gorm:"primaryKey"`
	FirstName   string         `gorm:"size:100;not null;comment:名"`
	FamilyName  string         `gorm:"index;size:100;not null;comment:姓"` // 列表按姓排序
	DateOfBirth *time.Time     `gorm:"type:date;comment:出生日期"`
	DateOfDeath *time.Time     `gorm:"type:date;comment:去世日期"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// GenreModel GORM分类模型
type GenreModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;comment:分类名"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (GenreModel) TableName() string {
	return "genres"
}

// BookModel GORM图书模型
// 设计说明:
// 1. AuthorID引用authors表(Belongs To)
// 2. 与分类是多对多关系,关联表book_genres
// 3. 外键约束不在建表时创建,引用存在性由写入侧校验
type BookModel struct {
	ID        uint          `gorm:"primaryKey"`
	Title     string        `gorm:"index;size:200;not null;comment:书名"` // 列表按书名排序
	AuthorID  uint          `gorm:"index;not null;comment:作者ID"`
	Author    *AuthorModel  `gorm:"foreignKey:AuthorID"`
	Summary   string        `gorm:"type:text;comment:简介"`
	ISBN      string        `gorm:"size:20;not null;comment:ISBN号"`
	Genres    []*GenreModel `gorm:"many2many:book_genres;joinForeignKey:BookID;joinReferences:GenreID"`
	CreatedAt time.Time     `gorm:"comment:创建时间"`
	UpdatedAt time.Time     `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BookInstanceModel GORM副本模型
// 教学要点:
// 1. Status使用字符串存储,可读性优先(取值只有四种)
// 2. BookID外键关联books表
type BookInstanceModel struct {
	ID        uint           `gorm:"primaryKey"`
	BookID    uint           `gorm:"index;not null;comment:图书ID"`
	Book      *BookModel     `gorm:"foreignKey:BookID"`
	Imprint   string         `gorm:"size:200;not null;comment:版本信息"`
	Status    string         `gorm:"index;size:20;not null;default:Maintenance;comment:状态(Available/Maintenance/Loaned/Reserved)"`
	DueBack   *time.Time     `gorm:"type:date;comment:应还日期"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookInstanceModel) TableName() string {
	return "book_instances"
}
