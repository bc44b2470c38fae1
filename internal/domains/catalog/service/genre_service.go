package service

import (
	"context"
	"net/url"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/domains/catalog/forms"
	"library-catalog-backend/internal/domains/catalog/model"
)

type genreService struct {
	genres catalog.GenreRepository
	books  catalog.BookRepository
}

func NewGenreService(genres catalog.GenreRepository, books catalog.BookRepository) catalog.GenreService {
	return &genreService{genres: genres, books: books}
}

func (s *genreService) List(ctx context.Context) ([]model.Genre, error) {
	return s.genres.List(ctx)
}

func (s *genreService) Detail(ctx context.Context, rawID string) (*catalog.GenreDetail, error) {
	id, err := parseID(rawID, catalog.ErrGenreNotFound)
	if err != nil {
		return nil, err
	}

	detail := &catalog.GenreDetail{}
	err = fanOut(ctx,
		lookup{"genre", func(ctx context.Context) error {
			g, err := s.genres.GetByID(ctx, id)
			detail.Genre = g
			return err
		}},
		lookup{"genre_books", func(ctx context.Context) error {
			books, err := s.books.ListByGenre(ctx, id)
			detail.Books = books
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Create applies the find-or-create policy: a genre whose sanitized
// name already exists resolves to the existing record and nothing is
// inserted, so submitting the same name twice never yields two records.
func (s *genreService) Create(ctx context.Context, values url.Values) (*model.Genre, []forms.FieldError, error) {
	candidate, fieldErrs := forms.DecodeGenre(values)
	if len(fieldErrs) > 0 {
		return candidate, fieldErrs, nil
	}

	existing, err := s.genres.FindByName(ctx, candidate.Name)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return existing, nil, nil
	}

	created, err := s.genres.Insert(ctx, candidate)
	if err != nil {
		return nil, nil, err
	}
	return created, nil, nil
}

// Update applies the same dedup policy as Create: when any record
// already carries the submitted name, that record wins and no write
// happens.
func (s *genreService) Update(ctx context.Context, rawID string, values url.Values) (*model.Genre, []forms.FieldError, error) {
	id, err := parseID(rawID, catalog.ErrGenreNotFound)
	if err != nil {
		return nil, nil, err
	}

	candidate, fieldErrs := forms.DecodeGenre(values)
	candidate.ID = id
	if len(fieldErrs) > 0 {
		return candidate, fieldErrs, nil
	}

	existing, err := s.genres.FindByName(ctx, candidate.Name)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return existing, nil, nil
	}

	updated, err := s.genres.Update(ctx, candidate)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

func (s *genreService) DeleteCheck(ctx context.Context, rawID string) (*catalog.GenreDeleteCheck, error) {
	id, err := parseID(rawID, catalog.ErrGenreNotFound)
	if err != nil {
		return nil, err
	}

	check := &catalog.GenreDeleteCheck{}
	err = fanOut(ctx,
		lookup{"genre", func(ctx context.Context) error {
			g, err := s.genres.GetByID(ctx, id)
			check.Genre = g
			return err
		}},
		lookup{"genre_books", func(ctx context.Context) error {
			books, err := s.books.ListByGenre(ctx, id)
			check.Books = books
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return check, nil
}

func (s *genreService) Delete(ctx context.Context, rawID string) (*catalog.GenreDeleteCheck, error) {
	check, err := s.DeleteCheck(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if !check.Allowed() {
		return check, nil
	}

	if err := s.genres.Delete(ctx, check.Genre.ID); err != nil {
		return nil, err
	}
	return check, nil
}
