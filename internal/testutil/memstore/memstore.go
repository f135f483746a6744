// Package memstore 内存版仓储实现，供应用层用例测试使用
//
// 四个仓储共享同一个Store，关联字段（Book.Author、BookInstance.Book等）
// 在查询时按GORM实现的预加载规则填充。
//
//	s := memstore.New()
//	s.FailOn("books.ListByAuthor", errors.New("boom"))
//	s.Hook("authors.FindByID", func() { <-release })
package memstore

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/internal/domain/genre"
)

// Store 内存数据
type Store struct {
	mu        sync.Mutex
	nextID    uint
	authors   map[uint]author.Author
	genres    map[uint]genre.Genre
	books     map[uint]book.Book
	instances map[uint]bookinstance.BookInstance

	hookMu sync.Mutex
	fails  map[string]error
	hooks  map[string]func()
}

// New 创建空Store
func New() *Store {
	return &Store{
		authors:   make(map[uint]author.Author),
		genres:    make(map[uint]genre.Genre),
		books:     make(map[uint]book.Book),
		instances: make(map[uint]bookinstance.BookInstance),
		fails:     make(map[string]error),
		hooks:     make(map[string]func()),
	}
}

// FailOn 让指定操作返回err，如"authors.FindByID"
func (s *Store) FailOn(op string, err error) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.fails[op] = err
}

// Hook 在指定操作执行前调用fn（不持有数据锁，可以阻塞）
func (s *Store) Hook(op string, fn func()) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.hooks[op] = fn
}

func (s *Store) before(op string) error {
	s.hookMu.Lock()
	fn, err := s.hooks[op], s.fails[op]
	s.hookMu.Unlock()

	if fn != nil {
		fn()
	}
	return err
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// Authors 作者仓储
func (s *Store) Authors() author.Repository { return &authorRepo{s} }

// Genres 分类仓储
func (s *Store) Genres() genre.Repository { return &genreRepo{s} }

// Books 图书仓储
func (s *Store) Books() book.Repository { return &bookRepo{s} }

// Instances 副本仓储
func (s *Store) Instances() bookinstance.Repository { return &instanceRepo{s} }

// ===================== 作者 =====================

type authorRepo struct{ s *Store }

func (r *authorRepo) Create(ctx context.Context, a *author.Author) error {
	if err := r.s.before("authors.Create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID = r.s.id()
	now := time.Now()
	a.CreatedAt, a.UpdatedAt = now, now
	r.s.authors[a.ID] = *a
	return nil
}

func (r *authorRepo) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	if err := r.s.before("authors.FindByID"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (r *authorRepo) List(ctx context.Context) ([]*author.Author, error) {
	if err := r.s.before("authors.List"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := make([]*author.Author, 0, len(r.s.authors))
	for _, a := range r.s.authors {
		list = append(list, &a)
	}
	slices.SortFunc(list, func(x, y *author.Author) int {
		if c := strings.Compare(x.FamilyName, y.FamilyName); c != 0 {
			return c
		}
		return int(x.ID) - int(y.ID)
	})
	return list, nil
}

func (r *authorRepo) Delete(ctx context.Context, id uint) error {
	if err := r.s.before("authors.Delete"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(r.s.authors, id)
	return nil
}

func (r *authorRepo) Count(ctx context.Context) (int64, error) {
	if err := r.s.before("authors.Count"); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.authors)), nil
}

// ===================== 分类 =====================

type genreRepo struct{ s *Store }

func (r *genreRepo) Create(ctx context.Context, g *genre.Genre) error {
	if err := r.s.before("genres.Create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.genres {
		if existing.Name == g.Name {
			return genre.ErrGenreDuplicate
		}
	}
	g.ID = r.s.id()
	r.s.genres[g.ID] = *g
	return nil
}

func (r *genreRepo) FindByID(ctx context.Context, id uint) (*genre.Genre, error) {
	if err := r.s.before("genres.FindByID"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	g, ok := r.s.genres[id]
	if !ok {
		return nil, genre.ErrGenreNotFound
	}
	return &g, nil
}

func (r *genreRepo) List(ctx context.Context) ([]*genre.Genre, error) {
	if err := r.s.before("genres.List"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := make([]*genre.Genre, 0, len(r.s.genres))
	for _, g := range r.s.genres {
		list = append(list, &g)
	}
	slices.SortFunc(list, func(x, y *genre.Genre) int { return strings.Compare(x.Name, y.Name) })
	return list, nil
}

func (r *genreRepo) Count(ctx context.Context) (int64, error) {
	if err := r.s.before("genres.Count"); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.genres)), nil
}

// ===================== 图书 =====================

type bookRepo struct{ s *Store }

// RemoveBooks 直接删除图书(图书没有删除用例,测试准备数据使用)
func (s *Store) RemoveBooks(ids ...uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.books, id)
	}
}

func (r *bookRepo) Create(ctx context.Context, b *book.Book) error {
	if err := r.s.before("books.Create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b.ID = r.s.id()
	stored := *b
	stored.Author, stored.Genres = nil, nil
	stored.GenreIDs = slices.Clone(b.GenreIDs)
	r.s.books[b.ID] = stored
	return nil
}

// populate 填充作者与分类（调用方持有锁）
func (r *bookRepo) populate(b book.Book, withAuthor, withGenres bool) *book.Book {
	if withAuthor {
		if a, ok := r.s.authors[b.AuthorID]; ok {
			b.Author = &a
		}
	}
	if withGenres {
		for _, id := range b.GenreIDs {
			if g, ok := r.s.genres[id]; ok {
				b.Genres = append(b.Genres, &g)
			}
		}
		slices.SortFunc(b.Genres, func(x, y *genre.Genre) int { return strings.Compare(x.Name, y.Name) })
	}
	return &b
}

func (r *bookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	if err := r.s.before("books.FindByID"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return r.populate(b, true, true), nil
}

func (r *bookRepo) list(keep func(b book.Book) bool, withAuthor, withGenres bool) []*book.Book {
	list := make([]*book.Book, 0)
	for _, b := range r.s.books {
		if keep(b) {
			list = append(list, r.populate(b, withAuthor, withGenres))
		}
	}
	slices.SortFunc(list, func(x, y *book.Book) int {
		if c := strings.Compare(x.Title, y.Title); c != 0 {
			return c
		}
		return int(x.ID) - int(y.ID)
	})
	return list
}

func (r *bookRepo) List(ctx context.Context) ([]*book.Book, error) {
	if err := r.s.before("books.List"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.list(func(book.Book) bool { return true }, true, false), nil
}

func (r *bookRepo) ListByAuthor(ctx context.Context, authorID uint) ([]*book.Book, error) {
	if err := r.s.before("books.ListByAuthor"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.list(func(b book.Book) bool { return b.AuthorID == authorID }, false, true), nil
}

func (r *bookRepo) ListByGenre(ctx context.Context, genreID uint) ([]*book.Book, error) {
	if err := r.s.before("books.ListByGenre"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.list(func(b book.Book) bool { return slices.Contains(b.GenreIDs, genreID) }, false, false), nil
}

func (r *bookRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if err := r.s.before("books.Exists"); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.books[id]
	return ok, nil
}

func (r *bookRepo) Count(ctx context.Context) (int64, error) {
	if err := r.s.before("books.Count"); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.books)), nil
}

// ===================== 副本 =====================

type instanceRepo struct{ s *Store }

func (r *instanceRepo) Create(ctx context.Context, bi *bookinstance.BookInstance) error {
	if err := r.s.before("instances.Create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	bi.ID = r.s.id()
	stored := *bi
	stored.Book = nil
	r.s.instances[bi.ID] = stored
	return nil
}

func (r *instanceRepo) withBook(bi bookinstance.BookInstance) *bookinstance.BookInstance {
	if b, ok := r.s.books[bi.BookID]; ok {
		bi.Book = &b
	}
	return &bi
}

func (r *instanceRepo) FindByID(ctx context.Context, id uint) (*bookinstance.BookInstance, error) {
	if err := r.s.before("instances.FindByID"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	bi, ok := r.s.instances[id]
	if !ok {
		return nil, bookinstance.ErrBookInstanceNotFound
	}
	return r.withBook(bi), nil
}

func (r *instanceRepo) sorted(keep func(bi bookinstance.BookInstance) bool) []*bookinstance.BookInstance {
	list := make([]*bookinstance.BookInstance, 0)
	for _, bi := range r.s.instances {
		if keep(bi) {
			list = append(list, r.withBook(bi))
		}
	}
	slices.SortFunc(list, func(x, y *bookinstance.BookInstance) int { return int(x.ID) - int(y.ID) })
	return list
}

func (r *instanceRepo) List(ctx context.Context) ([]*bookinstance.BookInstance, error) {
	if err := r.s.before("instances.List"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(bookinstance.BookInstance) bool { return true }), nil
}

func (r *instanceRepo) ListByBook(ctx context.Context, bookID uint) ([]*bookinstance.BookInstance, error) {
	if err := r.s.before("instances.ListByBook"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := r.sorted(func(bi bookinstance.BookInstance) bool { return bi.BookID == bookID })
	for _, bi := range list {
		bi.Book = nil
	}
	return list, nil
}

func (r *instanceRepo) Delete(ctx context.Context, id uint) error {
	if err := r.s.before("instances.Delete"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.instances[id]; !ok {
		return bookinstance.ErrBookInstanceNotFound
	}
	delete(r.s.instances, id)
	return nil
}

func (r *instanceRepo) Count(ctx context.Context) (int64, error) {
	if err := r.s.before("instances.Count"); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.instances)), nil
}

func (r *instanceRepo) CountByStatus(ctx context.Context, status bookinstance.Status) (int64, error) {
	if err := r.s.before("instances.CountByStatus"); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, bi := range r.s.instances {
		if bi.Status == status {
			n++
		}
	}
	return n, nil
}
