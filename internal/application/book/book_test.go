package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/internal/testutil/memstore"
)

func TestBookDetail(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()

	a := author.NewAuthor("Frank", "Herbert", nil, nil)
	require.NoError(t, s.Authors().Create(ctx, a))
	g := genre.NewGenre("Science Fiction")
	require.NoError(t, s.Genres().Create(ctx, g))
	b := book.NewBook("Dune", a.ID, "Spice", "9780441013593", []uint{g.ID})
	require.NoError(t, s.Books().Create(ctx, b))
	for _, st := range []bookinstance.Status{bookinstance.StatusAvailable, bookinstance.StatusLoaned} {
		require.NoError(t, s.Instances().Create(ctx, bookinstance.NewBookInstance(b.ID, "Chilton", st, nil)))
	}

	uc := NewBookDetailUseCase(book.NewService(s.Books()), bookinstance.NewService(s.Instances()))

	detail, err := uc.Execute(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Herbert, Frank", detail.Book.AuthorName())
	require.Len(t, detail.Book.Genres, 1)
	assert.Equal(t, "Science Fiction", detail.Book.Genres[0].Name)
	assert.Len(t, detail.Instances, 2)

	_, err = uc.Execute(ctx, 999)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	boom := errors.New("boom")
	s.FailOn("instances.ListByBook", boom)
	_, err = uc.Execute(ctx, b.ID)
	assert.ErrorIs(t, err, boom)
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	a := author.NewAuthor("Ann", "Leckie", nil, nil)
	require.NoError(t, s.Authors().Create(ctx, a))
	require.NoError(t, s.Books().Create(ctx, book.NewBook("Provenance", a.ID, "", "", nil)))
	require.NoError(t, s.Books().Create(ctx, book.NewBook("Ancillary Justice", a.ID, "", "", nil)))

	list, err := NewListBooksUseCase(book.NewService(s.Books())).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ancillary Justice", list[0].Title)
	assert.Equal(t, "Leckie, Ann", list[0].AuthorName())
}
