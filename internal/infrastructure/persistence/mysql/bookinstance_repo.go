package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/bookinstance"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookInstanceRepository 副本仓储实现(MySQL)
// List只负责按存储顺序取数并预加载图书,按书名排序由领域服务完成
type bookInstanceRepository struct {
	db *gorm.DB
}

// NewBookInstanceRepository 创建副本仓储
func NewBookInstanceRepository(db *gorm.DB) bookinstance.Repository {
	return &bookInstanceRepository{db: db}
}

// Create 创建副本
func (r *bookInstanceRepository) Create(ctx context.Context, bi *bookinstance.BookInstance) error {
	model := &BookInstanceModel{
		BookID:  bi.BookID,
		Imprint: bi.Imprint,
		Status:  string(bi.Status),
		DueBack: bi.DueBack,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.WrapDB(err, "创建副本失败")
	}

	bi.ID = model.ID
	bi.CreatedAt = model.CreatedAt
	bi.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找副本
func (r *bookInstanceRepository) FindByID(ctx context.Context, id uint) (*bookinstance.BookInstance, error) {
	var model BookInstanceModel
	if err := getDB(ctx, r.db).Preload("Book").First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, bookinstance.ErrBookInstanceNotFound
		}
		return nil, apperrors.WrapDB(err, "查询副本失败")
	}
	return toInstanceEntity(&model), nil
}

// List 全部副本(ID升序)
func (r *bookInstanceRepository) List(ctx context.Context) ([]*bookinstance.BookInstance, error) {
	var models []*BookInstanceModel
	if err := getDB(ctx, r.db).Preload("Book").Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.WrapDB(err, "查询副本列表失败")
	}
	return toInstanceEntities(models), nil
}

// ListByBook 某本图书的全部副本
func (r *bookInstanceRepository) ListByBook(ctx context.Context, bookID uint) ([]*bookinstance.BookInstance, error) {
	var models []*BookInstanceModel
	err := getDB(ctx, r.db).Where("book_id = ?", bookID).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.WrapDB(err, "查询图书副本失败")
	}
	return toInstanceEntities(models), nil
}

// Delete 删除副本(软删除)
func (r *bookInstanceRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookInstanceModel{}, id)
	if result.Error != nil {
		return apperrors.WrapDB(result.Error, "删除副本失败")
	}
	if result.RowsAffected == 0 {
		return bookinstance.ErrBookInstanceNotFound
	}
	return nil
}

func (r *bookInstanceRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&BookInstanceModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.WrapDB(err, "统计副本失败")
	}
	return total, nil
}

func (r *bookInstanceRepository) CountByStatus(ctx context.Context, status bookinstance.Status) (int64, error) {
	var total int64
	err := getDB(ctx, r.db).Model(&BookInstanceModel{}).Where("status = ?", string(status)).Count(&total).Error
	if err != nil {
		return 0, apperrors.WrapDB(err, "统计副本失败")
	}
	return total, nil
}

func toInstanceEntity(m *BookInstanceModel) *bookinstance.BookInstance {
	return &bookinstance.BookInstance{
		ID:        m.ID,
		BookID:    m.BookID,
		Imprint:   m.Imprint,
		Status:    bookinstance.Status(m.Status),
		DueBack:   m.DueBack,
		Book:      toBookEntity(m.Book),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toInstanceEntities(models []*BookInstanceModel) []*bookinstance.BookInstance {
	list := make([]*bookinstance.BookInstance, len(models))
	for i, m := range models {
		list[i] = toInstanceEntity(m)
	}
	return list
}
