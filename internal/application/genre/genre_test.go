package genre

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/internal/testutil/memstore"
)

func TestGenreUseCases(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()

	fantasy := genre.NewGenre("Fantasy")
	poetry := genre.NewGenre("Poetry")
	require.NoError(t, s.Genres().Create(ctx, poetry))
	require.NoError(t, s.Genres().Create(ctx, fantasy))
	require.NoError(t, s.Books().Create(ctx, book.NewBook("The Name of the Wind", 1, "", "", []uint{fantasy.ID})))
	require.NoError(t, s.Books().Create(ctx, book.NewBook("Leaves of Grass", 2, "", "", []uint{poetry.ID})))

	genres := genre.NewService(s.Genres())
	books := book.NewService(s.Books())

	list, err := NewListGenresUseCase(genres).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Fantasy", list[0].Name)

	uc := NewGenreDetailUseCase(genres, books)
	detail, err := uc.Execute(ctx, fantasy.ID)
	require.NoError(t, err)
	require.Len(t, detail.Books, 1)
	assert.Equal(t, "The Name of the Wind", detail.Books[0].Title)

	_, err = uc.Execute(ctx, 999)
	assert.ErrorIs(t, err, genre.ErrGenreNotFound)
}
