package service

import (
	"context"
	"net/url"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/domains/catalog/forms"
	"library-catalog-backend/internal/domains/catalog/model"
)

type copyService struct {
	copies catalog.CopyRepository
	books  catalog.BookRepository
}

func NewCopyService(copies catalog.CopyRepository, books catalog.BookRepository) catalog.CopyService {
	return &copyService{copies: copies, books: books}
}

func (s *copyService) List(ctx context.Context) ([]model.Copy, error) {
	return s.copies.List(ctx)
}

func (s *copyService) Detail(ctx context.Context, rawID string) (*model.Copy, error) {
	id, err := parseID(rawID, catalog.ErrCopyNotFound)
	if err != nil {
		return nil, err
	}
	return s.copies.GetByID(ctx, id)
}

func (s *copyService) FormOptions(ctx context.Context) ([]model.Book, error) {
	return s.books.List(ctx)
}

func (s *copyService) Create(ctx context.Context, values url.Values) (*model.Copy, []forms.FieldError, error) {
	candidate, fieldErrs := forms.DecodeCopy(values)
	if len(fieldErrs) > 0 {
		return candidate, fieldErrs, nil
	}

	created, err := s.copies.Insert(ctx, candidate)
	if err != nil {
		return nil, nil, err
	}
	return created, nil, nil
}

func (s *copyService) Update(ctx context.Context, rawID string, values url.Values) (*model.Copy, []forms.FieldError, error) {
	id, err := parseID(rawID, catalog.ErrCopyNotFound)
	if err != nil {
		return nil, nil, err
	}

	candidate, fieldErrs := forms.DecodeCopy(values)
	candidate.ID = id
	if len(fieldErrs) > 0 {
		return candidate, fieldErrs, nil
	}

	updated, err := s.copies.Update(ctx, candidate)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

// Delete is unguarded: nothing references a copy. Deleting a missing
// or malformed identifier is a no-op.
func (s *copyService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID, catalog.ErrCopyNotFound)
	if err != nil {
		return nil
	}
	return s.copies.Delete(ctx, id)
}
