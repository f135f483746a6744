package bookinstance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/book"
)

// stubRepo 只实现List,其余方法不会被调用
type stubRepo struct {
	Repository
	list []*BookInstance
	err  error
}

func (r *stubRepo) List(ctx context.Context) ([]*BookInstance, error) {
	return r.list, r.err
}

func instance(id uint, title string) *BookInstance {
	return &BookInstance{ID: id, Book: &book.Book{Title: title}}
}

func ids(list []*BookInstance) []uint {
	out := make([]uint, len(list))
	for i, bi := range list {
		out[i] = bi.ID
	}
	return out
}

func TestListInstances_SortsByBookTitle(t *testing.T) {
	// I1(Zeta)、I2(Alpha)按存储顺序返回 → 排序后为 [I2, I1]
	svc := NewService(&stubRepo{list: []*BookInstance{instance(1, "Zeta"), instance(2, "Alpha")}})

	got, err := svc.ListInstances(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []uint{2, 1}, ids(got))
}

func TestListInstances_StableForEqualTitles(t *testing.T) {
	fetched := []*BookInstance{
		instance(1, "Gods"),
		instance(2, "Alpha"),
		instance(3, "Gods"),
		instance(4, "Alpha"),
		instance(5, "Gods"),
	}
	svc := NewService(&stubRepo{list: fetched})

	got, err := svc.ListInstances(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []uint{2, 4, 1, 3, 5}, ids(got), "同名图书保持存储顺序")
}

func TestListInstances_CaseSensitiveOrdinal(t *testing.T) {
	svc := NewService(&stubRepo{list: []*BookInstance{instance(1, "alpha"), instance(2, "Beta")}})

	got, err := svc.ListInstances(context.Background())

	require.NoError(t, err)
	// 'B'(0x42) < 'a'(0x61)
	assert.Equal(t, []uint{2, 1}, ids(got))
}

func TestListInstances_PropagatesStorageError(t *testing.T) {
	boom := errors.New("storage down")
	svc := NewService(&stubRepo{err: boom})

	_, err := svc.ListInstances(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestNewBookInstance_DefaultStatus(t *testing.T) {
	bi := NewBookInstance(7, "Gollancz, 2011", "", nil)

	assert.Equal(t, StatusMaintenance, bi.Status)
	assert.False(t, bi.IsAvailable())
	assert.Equal(t, "", bi.BookTitle())

	_, err := bi.DueBackFormatted()
	assert.Error(t, err)
}
