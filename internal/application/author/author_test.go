package author

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/testutil/memstore"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

type env struct {
	store   *memstore.Store
	authors author.Service
	books   book.Service
}

func newEnv() *env {
	s := memstore.New()
	return &env{
		store:   s,
		authors: author.NewService(s.Authors()),
		books:   book.NewService(s.Books()),
	}
}

func (e *env) addAuthor(t *testing.T, first, family string) *author.Author {
	t.Helper()
	a := author.NewAuthor(first, family, nil, nil)
	require.NoError(t, e.store.Authors().Create(context.Background(), a))
	return a
}

func (e *env) addBook(t *testing.T, title string, authorID uint) *book.Book {
	t.Helper()
	b := book.NewBook(title, authorID, "", "", nil)
	require.NoError(t, e.store.Books().Create(context.Background(), b))
	return b
}

func TestAuthorDetail(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	a := e.addAuthor(t, "Patrick", "Rothfuss")
	e.addBook(t, "The Wise Man's Fear", a.ID)
	e.addBook(t, "The Name of the Wind", a.ID)
	e.addBook(t, "Other", a.ID+100)

	uc := NewAuthorDetailUseCase(e.authors, e.books)

	t.Run("作者与图书", func(t *testing.T) {
		detail, err := uc.Execute(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rothfuss, Patrick", detail.Author.Name())
		require.Len(t, detail.Books, 2)
		assert.Equal(t, "The Name of the Wind", detail.Books[0].Title, "按书名升序")
	})

	t.Run("作者不存在", func(t *testing.T) {
		_, err := uc.Execute(ctx, 999)
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestAuthorDetail_RunsFetchesConcurrently(t *testing.T) {
	e := newEnv()
	a := e.addAuthor(t, "Ann", "Leckie")

	// 作者查询阻塞到图书查询开始为止;串行执行会超时
	booksStarted := make(chan struct{})
	e.store.Hook("books.ListByAuthor", func() { close(booksStarted) })
	e.store.Hook("authors.FindByID", func() {
		select {
		case <-booksStarted:
		case <-time.After(2 * time.Second):
		}
	})

	start := time.Now()
	detail, err := NewAuthorDetailUseCase(e.authors, e.books).Execute(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, detail.Author.ID)
	assert.Less(t, time.Since(start), time.Second)
}

func TestAuthorDetail_StorageErrorWins(t *testing.T) {
	e := newEnv()
	boom := apperrors.WrapDB(errors.New("connection refused"), "查询作者图书失败")
	e.store.FailOn("books.ListByAuthor", boom)

	// 作者不存在且图书查询失败: 存储错误优先于NotFound
	_, err := NewAuthorDetailUseCase(e.authors, e.books).Execute(context.Background(), 999)
	assert.ErrorIs(t, err, boom)
	assert.True(t, apperrors.IsStorage(err))
}

func TestAuthorDetail_WaitsForBothBeforeFailing(t *testing.T) {
	e := newEnv()
	a := e.addAuthor(t, "Ann", "Leckie")

	var authorDone atomic.Bool
	e.store.Hook("authors.FindByID", func() {
		time.Sleep(50 * time.Millisecond)
		authorDone.Store(true)
	})
	e.store.FailOn("books.ListByAuthor", errors.New("boom"))

	_, err := NewAuthorDetailUseCase(e.authors, e.books).Execute(context.Background(), a.ID)
	require.Error(t, err)
	assert.True(t, authorDone.Load(), "返回前两次查询都已完成")
}

func TestCreateAuthor(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	uc := NewCreateAuthorUseCase(e.authors, zap.NewNop())

	t.Run("成功", func(t *testing.T) {
		res, err := uc.Execute(ctx, CreateAuthorRequest{
			FirstName:   "  Isaac ",
			FamilyName:  "Asimov",
			DateOfBirth: "1920-01-02",
		})
		require.NoError(t, err)
		require.NotNil(t, res.Author)
		assert.True(t, res.Form.Valid())
		assert.Equal(t, "Isaac", res.Author.FirstName, "保存清洗后的值")
		require.NotNil(t, res.Author.DateOfBirth)
		assert.Nil(t, res.Author.DateOfDeath, "空日期视为未填写")

		saved, err := e.authors.GetAuthor(ctx, res.Author.ID)
		require.NoError(t, err)
		assert.Equal(t, "/catalog/author/"+itoa(saved.ID), saved.URL())
	})

	t.Run("非字母数字的名字", func(t *testing.T) {
		res, err := uc.Execute(ctx, CreateAuthorRequest{FirstName: "John!", FamilyName: "Smith"})
		require.NoError(t, err, "校验错误不是失败")
		assert.Nil(t, res.Author)
		require.Len(t, res.Form.Errors, 1)
		assert.Equal(t, "First name has non-alphanumeric characters.", res.Form.ErrorFor("first_name"))
		assert.Equal(t, "John!", res.Form.Value("first_name"), "保留用户输入")
		assert.Equal(t, "Smith", res.Form.Value("family_name"))
	})

	t.Run("缺少必填字段", func(t *testing.T) {
		res, err := uc.Execute(ctx, CreateAuthorRequest{FirstName: "", FamilyName: "Smith", DateOfBirth: "1970-05-05"})
		require.NoError(t, err)
		require.Len(t, res.Form.Errors, 1)
		assert.Equal(t, "First name must be specified.", res.Form.ErrorFor("first_name"))
		assert.Equal(t, "Smith", res.Form.Value("family_name"))
		assert.Equal(t, "1970-05-05", res.Form.Value("date_of_birth"))
	})

	t.Run("日期非法", func(t *testing.T) {
		res, err := uc.Execute(ctx, CreateAuthorRequest{FirstName: "A", FamilyName: "B", DateOfDeath: "yesterday"})
		require.NoError(t, err)
		assert.Equal(t, "Invalid date of death", res.Form.ErrorFor("date_of_death"))
	})

	t.Run("存储失败", func(t *testing.T) {
		e := newEnv()
		e.store.FailOn("authors.Create", apperrors.WrapDB(errors.New("disk full"), "创建作者失败"))

		_, err := NewCreateAuthorUseCase(e.authors, zap.NewNop()).
			Execute(ctx, CreateAuthorRequest{FirstName: "A", FamilyName: "B"})
		assert.True(t, apperrors.IsStorage(err))
	})
}

func TestDeleteAuthor_GuardScenario(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	a := e.addAuthor(t, "Patrick", "Rothfuss")
	b1 := e.addBook(t, "B1", a.ID)
	b2 := e.addBook(t, "B2", a.ID)

	uc := NewDeleteAuthorUseCase(e.authors, e.books, zap.NewNop())

	// 1. 仍有图书: 拒绝删除,返回作者和图书
	res, err := uc.Execute(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, res.Deleted)
	assert.Equal(t, a.ID, res.Author.ID)
	assert.Equal(t, []uint{b1.ID, b2.ID}, bookIDs(res.Books))

	_, err = e.authors.GetAuthor(ctx, a.ID)
	require.NoError(t, err, "拒绝后作者仍然存在")

	// 2. 删除图书后再删除作者
	e.store.RemoveBooks(b1.ID, b2.ID)
	res, err = uc.Execute(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, res.Deleted)

	_, err = e.authors.GetAuthor(ctx, a.ID)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)

	// 3. 再次删除: NotFound
	_, err = uc.Execute(ctx, a.ID)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestDeleteAuthor_Confirm(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	a := e.addAuthor(t, "Ann", "Leckie")
	e.addBook(t, "Ancillary Justice", a.ID)

	uc := NewDeleteAuthorUseCase(e.authors, e.books, zap.NewNop())

	view, err := uc.Confirm(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, view.Books, 1)

	_, err = uc.Confirm(ctx, 999)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestDeleteAuthor_StorageError(t *testing.T) {
	e := newEnv()
	a := e.addAuthor(t, "Ann", "Leckie")
	e.store.FailOn("authors.Delete", apperrors.WrapDB(errors.New("locked"), "删除作者失败"))

	_, err := NewDeleteAuthorUseCase(e.authors, e.books, zap.NewNop()).Execute(context.Background(), a.ID)
	assert.True(t, apperrors.IsStorage(err))
}

func TestListAuthors(t *testing.T) {
	e := newEnv()
	e.addAuthor(t, "Isaac", "Asimov")
	e.addAuthor(t, "Ben", "Bova")
	e.addAuthor(t, "Ann", "Aardvark")

	list, err := NewListAuthorsUseCase(e.authors).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Aardvark", list[0].FamilyName)
	assert.Equal(t, "Bova", list[2].FamilyName)
}
