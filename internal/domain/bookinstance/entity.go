package bookinstance

import (
	"fmt"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/datefmt"
)

// Status 副本状态
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

// Statuses 全部合法状态(表单下拉框顺序)
var Statuses = []Status{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}

// StatusValues 全部合法状态的字符串形式
func StatusValues() []string {
	values := make([]string, len(Statuses))
	for i, s := range Statuses {
		values[i] = string(s)
	}
	return values
}

// BookInstance 馆藏副本实体
// 一本图书(Book)可以有多个可借阅的实体副本
type BookInstance struct {
	ID        uint
	BookID    uint       // 所属图书ID(必填)
	Imprint   string     // 版本信息(出版社、年份)
	Status    Status     // 当前状态
	DueBack   *time.Time // 应还日期(只有Loaned时有意义)
	Book      *book.Book // 预加载的图书
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookInstance 创建副本(工厂方法)
// 状态为空时默认Maintenance
func NewBookInstance(bookID uint, imprint string, status Status, dueBack *time.Time) *BookInstance {
	if status == "" {
		status = StatusMaintenance
	}
	now := time.Now()
	return &BookInstance{
		BookID:    bookID,
		Imprint:   imprint,
		Status:    status,
		DueBack:   dueBack,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// URL 详情页地址
func (bi *BookInstance) URL() string {
	return fmt.Sprintf("/catalog/bookinstance/%d", bi.ID)
}

// BookTitle 关联图书的书名(未预加载时为空串)
func (bi *BookInstance) BookTitle() string {
	if bi.Book == nil {
		return ""
	}
	return bi.Book.Title
}

// DueBackFormatted 格式化应还日期
// 日期缺失时返回datefmt.ErrUnavailable
func (bi *BookInstance) DueBackFormatted() (string, error) {
	return datefmt.Format(bi.DueBack)
}

// IsAvailable 是否可借
func (bi *BookInstance) IsAvailable() bool {
	return bi.Status == StatusAvailable
}
