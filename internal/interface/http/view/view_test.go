package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/pkg/form"
)

func render(t *testing.T, name string, data map[string]any) string {
	t.Helper()
	tmpl, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestNew_DefinesAllPages(t *testing.T) {
	tmpl, err := New()
	require.NoError(t, err)

	for _, name := range []string{
		"index", "error",
		"author_list", "author_detail", "author_form", "author_delete",
		"book_list", "book_detail",
		"genre_list", "genre_detail",
		"bookinstance_list", "bookinstance_detail", "bookinstance_form", "bookinstance_delete",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestAuthorDetail_MissingDatesRenderEmpty(t *testing.T) {
	a := &author.Author{ID: 3, FirstName: "Ben", FamilyName: "Bova"}
	books := []*book.Book{{ID: 9, Title: "Mars", Summary: "Red"}}

	out := render(t, "author_detail", map[string]any{
		"title":        "Author Detail",
		"author":       a,
		"author_books": books,
	})

	assert.Contains(t, out, "Author: Bova, Ben")
	assert.Contains(t, out, `href="/catalog/book/9"`)
	assert.Contains(t, out, `href="/catalog/author/3/delete"`)
	assert.NotContains(t, out, " - ")
}

func TestAuthorDetail_BookGenres(t *testing.T) {
	a := &author.Author{ID: 3, FirstName: "Ben", FamilyName: "Bova"}
	books := []*book.Book{{
		ID:     9,
		Title:  "Mars",
		Genres: []*genre.Genre{{ID: 4, Name: "Science Fiction"}, {ID: 5, Name: "Space"}},
	}}

	out := render(t, "author_detail", map[string]any{
		"title":        "Author Detail",
		"author":       a,
		"author_books": books,
	})

	assert.Contains(t, out, `<a href="/catalog/genre/4">Science Fiction</a>, <a href="/catalog/genre/5">Space</a>`)
}

func TestAuthorList_OmitsEmptyLifespan(t *testing.T) {
	out := render(t, "author_list", map[string]any{
		"title":       "Author List",
		"author_list": []*author.Author{{ID: 3, FirstName: "Ben", FamilyName: "Bova"}},
	})

	assert.Contains(t, out, `<a href="/catalog/author/3">Bova, Ben</a></li>`)
	assert.NotContains(t, out, "()")
}

func TestAuthorDelete_ListsBlockingBooks(t *testing.T) {
	a := &author.Author{ID: 3, FirstName: "Ben", FamilyName: "Bova"}

	blocked := render(t, "author_delete", map[string]any{
		"title":        "Delete Author",
		"author":       a,
		"author_books": []*book.Book{{ID: 9, Title: "Mars"}},
	})
	assert.Contains(t, blocked, "Delete the following books")
	assert.NotContains(t, blocked, "<form")

	free := render(t, "author_delete", map[string]any{
		"title":  "Delete Author",
		"author": a,
	})
	assert.Contains(t, free, "Do you really want to delete this Author?")
	assert.Contains(t, free, "<form")
}

func TestAuthorForm_RepopulatesAndEscapes(t *testing.T) {
	out := render(t, "author_form", map[string]any{
		"title":  "Create Author",
		"values": map[string]string{"first_name": "<b>John!</b>", "family_name": "Smith"},
		"errors": []form.FieldError{{Field: "first_name", Message: "First name has non-alphanumeric characters."}},
	})

	assert.Contains(t, out, "&lt;b&gt;John!&lt;/b&gt;")
	assert.Contains(t, out, `value="Smith"`)
	assert.Contains(t, out, "First name has non-alphanumeric characters.")
}

func TestBookInstanceList_DueBackAndStatus(t *testing.T) {
	due := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	out := render(t, "bookinstance_list", map[string]any{
		"title": "Book Instance List",
		"bookinstance_list": []*bookinstance.BookInstance{
			{ID: 1, Status: bookinstance.StatusAvailable, Imprint: "A", Book: &book.Book{Title: "Alpha"}},
			{ID: 2, Status: bookinstance.StatusLoaned, Imprint: "B", DueBack: &due, Book: &book.Book{Title: "Beta"}},
			{ID: 3, Status: bookinstance.StatusMaintenance, Imprint: "C", Book: &book.Book{Title: "Gamma"}},
		},
	})

	assert.Contains(t, out, "Alpha : A")
	assert.Contains(t, out, "(Due: Nov 1, 2026)")
	assert.Contains(t, out, "(Due: )", "缺失的应还日期显示为空")
	assert.Contains(t, out, `class="text-success"`)
	assert.Contains(t, out, `class="text-danger"`)
}

func TestBookInstanceForm_SelectsSubmittedValues(t *testing.T) {
	out := render(t, "bookinstance_form", map[string]any{
		"title":     "Create BookInstance",
		"book_list": []*book.Book{{ID: 1, Title: "Alpha"}, {ID: 2, Title: "Beta"}},
		"statuses":  bookinstance.Statuses,
		"values":    map[string]string{"book": "2", "status": "Loaned"},
	})

	assert.Contains(t, out, `<option value="2" selected>Beta</option>`)
	assert.Contains(t, out, `<option value="Loaned" selected>Loaned</option>`)
	assert.Contains(t, out, `<option value="1" >Alpha</option>`)
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "text-success", StatusClass(bookinstance.StatusAvailable))
	assert.Equal(t, "text-danger", StatusClass(bookinstance.StatusMaintenance))
	assert.Equal(t, "text-warning", StatusClass(bookinstance.StatusLoaned))
	assert.Equal(t, "text-warning", StatusClass(bookinstance.StatusReserved))
}
