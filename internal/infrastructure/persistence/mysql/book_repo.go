package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 作者通过Preload("Author")填充,分类通过many2many关联表填充
// 3. 软删除的作者不会被预加载(Author为nil)
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
// 分类只写入关联表,不回写分类记录本身
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Title:    b.Title,
		AuthorID: b.AuthorID,
		Summary:  b.Summary,
		ISBN:     b.ISBN,
	}
	for _, id := range b.GenreIDs {
		model.Genres = append(model.Genres, &GenreModel{ID: id})
	}

	if err := getDB(ctx, r.db).Omit("Genres.*").Create(model).Error; err != nil {
		return apperrors.WrapDB(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).
		Preload("Author").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.WrapDB(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// List 全部图书,按书名升序
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []*BookModel
	err := getDB(ctx, r.db).
		Preload("Author").
		Order("title ASC").Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.WrapDB(err, "查询图书列表失败")
	}
	return toBookEntities(models), nil
}

// ListByAuthor 某作者的全部图书
func (r *bookRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*book.Book, error) {
	var models []*BookModel
	err := getDB(ctx, r.db).
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Where("author_id = ?", authorID).
		Order("title ASC").Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.WrapDB(err, "查询作者图书失败")
	}
	return toBookEntities(models), nil
}

// ListByGenre 某分类下的全部图书
func (r *bookRepository) ListByGenre(ctx context.Context, genreID uint) ([]*book.Book, error) {
	var models []*BookModel
	err := getDB(ctx, r.db).
		Joins("JOIN book_genres ON book_genres.book_id = books.id").
		Where("book_genres.genre_id = ?", genreID).
		Order("books.title ASC").Order("books.id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.WrapDB(err, "查询分类图书失败")
	}
	return toBookEntities(models), nil
}

// Exists 图书是否存在
func (r *bookRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&BookModel{}).Where("id = ?", id).Count(&total).Error; err != nil {
		return false, apperrors.WrapDB(err, "查询图书失败")
	}
	return total > 0, nil
}

// Count 图书总数
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&BookModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.WrapDB(err, "统计图书失败")
	}
	return total, nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	if m == nil {
		return nil
	}
	b := &book.Book{
		ID:        m.ID,
		Title:     m.Title,
		AuthorID:  m.AuthorID,
		Summary:   m.Summary,
		ISBN:      m.ISBN,
		Author:    toAuthorEntity(m.Author),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.Genres) > 0 {
		b.Genres = toGenreEntities(m.Genres)
		b.GenreIDs = make([]uint, len(m.Genres))
		for i, g := range m.Genres {
			b.GenreIDs[i] = g.ID
		}
	}
	return b
}

func toBookEntities(models []*BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i, m := range models {
		books[i] = toBookEntity(m)
	}
	return books
}
