package service

import (
	"context"
	"net/url"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/domains/catalog/forms"
	"library-catalog-backend/internal/domains/catalog/model"
)

type authorService struct {
	authors catalog.AuthorRepository
	books   catalog.BookRepository
}

func NewAuthorService(authors catalog.AuthorRepository, books catalog.BookRepository) catalog.AuthorService {
	return &authorService{authors: authors, books: books}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.authors.List(ctx)
}

func (s *authorService) Detail(ctx context.Context, rawID string) (*catalog.AuthorDetail, error) {
	id, err := parseID(rawID, catalog.ErrAuthorNotFound)
	if err != nil {
		return nil, err
	}

	detail := &catalog.AuthorDetail{}
	err = fanOut(ctx,
		lookup{"author", func(ctx context.Context) error {
			a, err := s.authors.GetByID(ctx, id)
			detail.Author = a
			return err
		}},
		lookup{"author_books", func(ctx context.Context) error {
			books, err := s.books.ListByAuthor(ctx, id)
			detail.Books = books
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *authorService) Create(ctx context.Context, values url.Values) (*model.Author, []forms.FieldError, error) {
	candidate, fieldErrs := forms.DecodeAuthor(values)
	if len(fieldErrs) > 0 {
		return candidate, fieldErrs, nil
	}

	created, err := s.authors.Insert(ctx, candidate)
	if err != nil {
		return nil, nil, err
	}
	return created, nil, nil
}

func (s *authorService) Update(ctx context.Context, rawID string, values url.Values) (*model.Author, []forms.FieldError, error) {
	id, err := parseID(rawID, catalog.ErrAuthorNotFound)
	if err != nil {
		return nil, nil, err
	}

	candidate, fieldErrs := forms.DecodeAuthor(values)
	candidate.ID = id
	if len(fieldErrs) > 0 {
		return candidate, fieldErrs, nil
	}

	updated, err := s.authors.Update(ctx, candidate)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

func (s *authorService) DeleteCheck(ctx context.Context, rawID string) (*catalog.AuthorDeleteCheck, error) {
	id, err := parseID(rawID, catalog.ErrAuthorNotFound)
	if err != nil {
		return nil, err
	}

	check := &catalog.AuthorDeleteCheck{}
	err = fanOut(ctx,
		lookup{"author", func(ctx context.Context) error {
			a, err := s.authors.GetByID(ctx, id)
			check.Author = a
			return err
		}},
		lookup{"author_books", func(ctx context.Context) error {
			books, err := s.books.ListByAuthor(ctx, id)
			check.Books = books
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return check, nil
}

// Delete runs the guard and removes the author only when nothing
// references them. A refused delete carries the dependents back as
// data; the guard itself never mutates state.
func (s *authorService) Delete(ctx context.Context, rawID string) (*catalog.AuthorDeleteCheck, error) {
	check, err := s.DeleteCheck(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if !check.Allowed() {
		return check, nil
	}

	if err := s.authors.Delete(ctx, check.Author.ID); err != nil {
		return nil, err
	}
	return check, nil
}
