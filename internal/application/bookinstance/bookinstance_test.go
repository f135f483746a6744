package bookinstance

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/internal/testutil/memstore"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

type env struct {
	store     *memstore.Store
	books     book.Service
	instances bookinstance.Service
}

func newEnv() *env {
	s := memstore.New()
	return &env{
		store:     s,
		books:     book.NewService(s.Books()),
		instances: bookinstance.NewService(s.Instances()),
	}
}

func (e *env) addBook(t *testing.T, title string) *book.Book {
	t.Helper()
	b := book.NewBook(title, 1, "", "", nil)
	require.NoError(t, e.store.Books().Create(context.Background(), b))
	return b
}

func (e *env) addInstance(t *testing.T, bookID uint, status bookinstance.Status) *bookinstance.BookInstance {
	t.Helper()
	bi := bookinstance.NewBookInstance(bookID, "imprint", status, nil)
	require.NoError(t, e.store.Instances().Create(context.Background(), bi))
	return bi
}

func TestListInstances_JoinSort(t *testing.T) {
	e := newEnv()
	zeta := e.addBook(t, "Zeta")
	alpha := e.addBook(t, "Alpha")
	i1 := e.addInstance(t, zeta.ID, bookinstance.StatusAvailable)
	i2 := e.addInstance(t, alpha.ID, bookinstance.StatusLoaned)

	list, err := NewListInstancesUseCase(e.instances).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, i2.ID, list[0].ID)
	assert.Equal(t, i1.ID, list[1].ID)
	assert.Equal(t, "Alpha", list[0].BookTitle())
}

func TestInstanceDetail(t *testing.T) {
	e := newEnv()
	b := e.addBook(t, "Dune")
	bi := e.addInstance(t, b.ID, bookinstance.StatusReserved)

	uc := NewInstanceDetailUseCase(e.instances)

	got, err := uc.Execute(context.Background(), bi.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.BookTitle())

	_, err = uc.Execute(context.Background(), 999)
	assert.ErrorIs(t, err, bookinstance.ErrBookInstanceNotFound)
}

func TestCreateInstance(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	b := e.addBook(t, "Dune")
	uc := NewCreateInstanceUseCase(e.instances, e.books, zap.NewNop())
	bookID := itoa(b.ID)

	t.Run("默认状态", func(t *testing.T) {
		res, err := uc.Execute(ctx, CreateInstanceRequest{Book: bookID, Imprint: " Chilton, 1965 "})
		require.NoError(t, err)
		require.NotNil(t, res.Instance)
		assert.Equal(t, bookinstance.StatusMaintenance, res.Instance.Status)
		assert.Equal(t, "Chilton, 1965", res.Instance.Imprint)

		saved, err := e.instances.GetInstance(ctx, res.Instance.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune", saved.BookTitle())
	})

	t.Run("借出需要应还日期", func(t *testing.T) {
		res, err := uc.Execute(ctx, CreateInstanceRequest{Book: bookID, Imprint: "x", Status: "Loaned"})
		require.NoError(t, err)
		assert.Nil(t, res.Instance)
		assert.Equal(t, msgDueBackRequired, res.Form.ErrorFor("due_back"))
		assert.Len(t, res.Books, 1, "表单回填需要图书列表")

		res, err = uc.Execute(ctx, CreateInstanceRequest{Book: bookID, Imprint: "x", Status: "Loaned", DueBack: "2030-01-31"})
		require.NoError(t, err)
		require.NotNil(t, res.Instance)
		require.NotNil(t, res.Instance.DueBack)
		assert.Equal(t, 31, res.Instance.DueBack.Day())
	})

	t.Run("图书不存在", func(t *testing.T) {
		res, err := uc.Execute(ctx, CreateInstanceRequest{Book: "999", Imprint: "x"})
		require.NoError(t, err)
		assert.Equal(t, msgBookNotFound, res.Form.ErrorFor("book"))
		assert.Equal(t, "999", res.Form.Value("book"))
	})

	t.Run("图书ID非法", func(t *testing.T) {
		for _, v := range []string{"", "abc", "-1", "0"} {
			res, err := uc.Execute(ctx, CreateInstanceRequest{Book: v, Imprint: "x"})
			require.NoError(t, err)
			assert.Equal(t, msgBookRequired, res.Form.ErrorFor("book"), "book=%q", v)
		}
	})

	t.Run("每个字段都被校验", func(t *testing.T) {
		res, err := uc.Execute(ctx, CreateInstanceRequest{Book: bookID, Imprint: "", Status: "Lost", DueBack: "soon"})
		require.NoError(t, err)
		assert.Len(t, res.Form.Errors, 3)
		assert.Equal(t, msgImprintRequired, res.Form.ErrorFor("imprint"))
		assert.Equal(t, msgInvalidStatus, res.Form.ErrorFor("status"))
		assert.Equal(t, msgInvalidDate, res.Form.ErrorFor("due_back"))
	})

	t.Run("引用校验存储失败", func(t *testing.T) {
		e := newEnv()
		e.store.FailOn("books.Exists", apperrors.WrapDB(errors.New("timeout"), "查询图书失败"))

		_, err := NewCreateInstanceUseCase(e.instances, e.books, zap.NewNop()).
			Execute(ctx, CreateInstanceRequest{Book: "1", Imprint: "x"})
		assert.True(t, apperrors.IsStorage(err))
	})
}

func TestDeleteInstance(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	b := e.addBook(t, "Dune")
	bi := e.addInstance(t, b.ID, bookinstance.StatusAvailable)
	uc := NewDeleteInstanceUseCase(e.instances, zap.NewNop())

	got, err := uc.Confirm(ctx, bi.ID)
	require.NoError(t, err)
	assert.Equal(t, bi.ID, got.ID)

	require.NoError(t, uc.Execute(ctx, bi.ID))
	assert.ErrorIs(t, uc.Execute(ctx, bi.ID), bookinstance.ErrBookInstanceNotFound)

	_, err = uc.Confirm(ctx, bi.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
