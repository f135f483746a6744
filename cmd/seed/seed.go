package main

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/internal/domain/genre"
)

// transactor 在同一事务中执行fn
type transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type seeder struct {
	tx        transactor
	authors   author.Repository
	genres    genre.Repository
	books     book.Repository
	instances bookinstance.Repository
}

// Stats 写入数量
type Stats struct {
	Authors   int
	Genres    int
	Books     int
	Instances int
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// Run 写入示例数据
func (s *seeder) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		stats = Stats{}

		authors := []*author.Author{
			author.NewAuthor("Patrick", "Rothfuss", date(1973, time.June, 6), nil),
			author.NewAuthor("Ben", "Bova", date(1932, time.November, 8), nil),
			author.NewAuthor("Isaac", "Asimov", date(1920, time.January, 2), date(1992, time.April, 6)),
			author.NewAuthor("Bob", "Billings", nil, nil),
			author.NewAuthor("Jim", "Jones", date(1971, time.December, 16), nil),
		}
		for _, a := range authors {
			if err := s.authors.Create(ctx, a); err != nil {
				return err
			}
			stats.Authors++
		}

		genres := []*genre.Genre{
			genre.NewGenre("Fantasy"),
			genre.NewGenre("Science Fiction"),
			genre.NewGenre("French Poetry"),
		}
		for _, g := range genres {
			if err := s.genres.Create(ctx, g); err != nil {
				return err
			}
			stats.Genres++
		}
		fantasy, scifi := genres[0].ID, genres[1].ID

		rothfuss, bova, billings := authors[0].ID, authors[1].ID, authors[3].ID
		books := []*book.Book{
			book.NewBook("The Name of the Wind (The Kingkiller Chronicle, #1)", rothfuss,
				"I have stolen princesses back from sleeping barrow kings.", "9781473211896", []uint{fantasy}),
			book.NewBook("The Wise Man's Fear (The Kingkiller Chronicle, #2)", rothfuss,
				"Picking up the tale of Kvothe Kingkiller once again.", "9788401352836", []uint{fantasy}),
			book.NewBook("The Slow Regard of Silent Things (Kingkiller Chronicle)", rothfuss,
				"Deep below the University, there is a dark place.", "9780756411336", []uint{fantasy}),
			book.NewBook("Apes and Angels", bova,
				"Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity.", "9780765379528", []uint{scifi}),
			book.NewBook("Death Wave", bova,
				"In Ben Bova's previous novel New Earth, Jordan Kell led the first human mission beyond the solar system.", "9780765379504", []uint{scifi}),
			book.NewBook("Test Book 1", billings, "Summary of test book 1", "ISBN111111", []uint{fantasy, scifi}),
			book.NewBook("Test Book 2", billings, "Summary of test book 2", "ISBN222222", nil),
		}
		for _, b := range books {
			if err := s.books.Create(ctx, b); err != nil {
				return err
			}
			stats.Books++
		}

		due := date(2026, time.December, 1)
		instances := []*bookinstance.BookInstance{
			bookinstance.NewBookInstance(books[0].ID, "London Gollancz, 2014.", bookinstance.StatusAvailable, nil),
			bookinstance.NewBookInstance(books[1].ID, "Gollancz, 2011.", bookinstance.StatusLoaned, due),
			bookinstance.NewBookInstance(books[2].ID, "Gollancz, 2015.", "", nil),
			bookinstance.NewBookInstance(books[3].ID, "New York Tom Doherty Associates, 2016.", bookinstance.StatusAvailable, nil),
			bookinstance.NewBookInstance(books[3].ID, "New York Tom Doherty Associates, 2016.", bookinstance.StatusAvailable, nil),
			bookinstance.NewBookInstance(books[3].ID, "New York Tom Doherty Associates, 2016.", bookinstance.StatusAvailable, nil),
			bookinstance.NewBookInstance(books[4].ID, "New York, NY Tor, 2015.", bookinstance.StatusAvailable, nil),
			bookinstance.NewBookInstance(books[4].ID, "New York, NY Tor, 2015.", bookinstance.StatusMaintenance, nil),
			bookinstance.NewBookInstance(books[4].ID, "New York, NY Tor, 2015.", bookinstance.StatusLoaned, due),
			bookinstance.NewBookInstance(books[0].ID, "Imprint XXX2", "", nil),
			bookinstance.NewBookInstance(books[1].ID, "Imprint XXX3", "", nil),
		}
		for _, bi := range instances {
			if err := s.instances.Create(ctx, bi); err != nil {
				return err
			}
			stats.Instances++
		}

		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}
