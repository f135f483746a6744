package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/genre"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// genreRepository 分类仓储实现(MySQL)
type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository 创建分类仓储
func NewGenreRepository(db *gorm.DB) genre.Repository {
	return &genreRepository{db: db}
}

// Create 创建分类,名称重复返回ErrGenreDuplicate
func (r *genreRepository) Create(ctx context.Context, g *genre.Genre) error {
	model := &GenreModel{Name: g.Name}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return genre.ErrGenreDuplicate
		}
		return apperrors.WrapDB(err, "创建分类失败")
	}

	g.ID = model.ID
	g.CreatedAt = model.CreatedAt
	g.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id uint) (*genre.Genre, error) {
	var model GenreModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, apperrors.WrapDB(err, "查询分类失败")
	}
	return toGenreEntity(&model), nil
}

func (r *genreRepository) List(ctx context.Context) ([]*genre.Genre, error) {
	var models []*GenreModel
	if err := getDB(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, apperrors.WrapDB(err, "查询分类列表失败")
	}
	return toGenreEntities(models), nil
}

func (r *genreRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&GenreModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.WrapDB(err, "统计分类失败")
	}
	return total, nil
}

func toGenreEntity(m *GenreModel) *genre.Genre {
	return &genre.Genre{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toGenreEntities(models []*GenreModel) []*genre.Genre {
	genres := make([]*genre.Genre, len(models))
	for i, m := range models {
		genres[i] = toGenreEntity(m)
	}
	return genres
}
