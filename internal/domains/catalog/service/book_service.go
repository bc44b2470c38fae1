package service

import (
	"context"
	"net/url"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/domains/catalog/forms"
	"library-catalog-backend/internal/domains/catalog/model"
)

type bookService struct {
	books   catalog.BookRepository
	copies  catalog.CopyRepository
	authors catalog.AuthorRepository
	genres  catalog.GenreRepository
}

func NewBookService(
	books catalog.BookRepository,
	copies catalog.CopyRepository,
	authors catalog.AuthorRepository,
	genres catalog.GenreRepository,
) catalog.BookService {
	return &bookService{books: books, copies: copies, authors: authors, genres: genres}
}

func (s *bookService) List(ctx context.Context) ([]model.Book, error) {
	return s.books.List(ctx)
}

func (s *bookService) Detail(ctx context.Context, rawID string) (*catalog.BookDetail, error) {
	id, err := parseID(rawID, catalog.ErrBookNotFound)
	if err != nil {
		return nil, err
	}

	detail := &catalog.BookDetail{}
	err = fanOut(ctx,
		lookup{"book", func(ctx context.Context) error {
			b, err := s.books.GetByID(ctx, id)
			detail.Book = b
			return err
		}},
		lookup{"book_copies", func(ctx context.Context) error {
			copies, err := s.copies.ListByBook(ctx, id)
			detail.Copies = copies
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// FormOptions gathers the author and genre choices a book form offers.
func (s *bookService) FormOptions(ctx context.Context) (*catalog.BookFormOptions, error) {
	opts := &catalog.BookFormOptions{}
	err := fanOut(ctx,
		lookup{"authors", func(ctx context.Context) error {
			authors, err := s.authors.List(ctx)
			opts.Authors = authors
			return err
		}},
		lookup{"genres", func(ctx context.Context) error {
			genres, err := s.genres.List(ctx)
			opts.Genres = genres
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return opts, nil
}

func (s *bookService) Create(ctx context.Context, values url.Values) (*model.Book, []forms.FieldError, error) {
	candidate, fieldErrs := forms.DecodeBook(values)
	if len(fieldErrs) > 0 {
		return candidate, fieldErrs, nil
	}

	created, err := s.books.Insert(ctx, candidate)
	if err != nil {
		return nil, nil, err
	}
	return created, nil, nil
}

func (s *bookService) Update(ctx context.Context, rawID string, values url.Values) (*model.Book, []forms.FieldError, error) {
	id, err := parseID(rawID, catalog.ErrBookNotFound)
	if err != nil {
		return nil, nil, err
	}

	candidate, fieldErrs := forms.DecodeBook(values)
	candidate.ID = id
	if len(fieldErrs) > 0 {
		return candidate, fieldErrs, nil
	}

	updated, err := s.books.Update(ctx, candidate)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

func (s *bookService) DeleteCheck(ctx context.Context, rawID string) (*catalog.BookDeleteCheck, error) {
	id, err := parseID(rawID, catalog.ErrBookNotFound)
	if err != nil {
		return nil, err
	}

	check := &catalog.BookDeleteCheck{}
	err = fanOut(ctx,
		lookup{"book", func(ctx context.Context) error {
			b, err := s.books.GetByID(ctx, id)
			check.Book = b
			return err
		}},
		lookup{"book_copies", func(ctx context.Context) error {
			copies, err := s.copies.ListByBook(ctx, id)
			check.Copies = copies
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return check, nil
}

func (s *bookService) Delete(ctx context.Context, rawID string) (*catalog.BookDeleteCheck, error) {
	check, err := s.DeleteCheck(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if !check.Allowed() {
		return check, nil
	}

	if err := s.books.Delete(ctx, check.Book.ID); err != nil {
		return nil, err
	}
	return check, nil
}
