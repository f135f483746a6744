package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/author"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
// 1. 实现domain/author/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. GORM错误统一转换为存储错误,记录不存在转换为领域错误
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := fromAuthorEntity(a)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.WrapDB(err, "创建作者失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.WrapDB(err, "查询作者失败")
	}
	return toAuthorEntity(&model), nil
}

// List 全部作者,按姓升序
func (r *authorRepository) List(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	if err := getDB(ctx, r.db).Order("family_name ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.WrapDB(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// Delete 删除作者(软删除)
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return apperrors.WrapDB(result.Error, "删除作者失败")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// Count 作者总数
func (r *authorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&AuthorModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.WrapDB(err, "统计作者失败")
	}
	return total, nil
}

func fromAuthorEntity(a *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:          a.ID,
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: a.DateOfBirth,
		DateOfDeath: a.DateOfDeath,
	}
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(m *AuthorModel) *author.Author {
	if m == nil {
		return nil
	}
	return &author.Author{
		ID:          m.ID,
		FirstName:   m.FirstName,
		FamilyName:  m.FamilyName,
		DateOfBirth: m.DateOfBirth,
		DateOfDeath: m.DateOfDeath,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
