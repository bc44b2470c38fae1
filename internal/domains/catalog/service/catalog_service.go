package service

import (
	"context"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/domains/catalog/model"
)

type catalogService struct {
	authors catalog.AuthorRepository
	genres  catalog.GenreRepository
	books   catalog.BookRepository
	copies  catalog.CopyRepository
}

func NewCatalogService(
	authors catalog.AuthorRepository,
	genres catalog.GenreRepository,
	books catalog.BookRepository,
	copies catalog.CopyRepository,
) catalog.CatalogService {
	return &catalogService{authors: authors, genres: genres, books: books, copies: copies}
}

// Counts fans out the five aggregate counts for the home page and
// joins them into one result.
func (s *catalogService) Counts(ctx context.Context) (*catalog.Counts, error) {
	counts := &catalog.Counts{}
	err := fanOut(ctx,
		lookup{"book_count", func(ctx context.Context) error {
			n, err := s.books.Count(ctx)
			counts.Books = n
			return err
		}},
		lookup{"copy_count", func(ctx context.Context) error {
			n, err := s.copies.Count(ctx)
			counts.Copies = n
			return err
		}},
		lookup{"copy_available_count", func(ctx context.Context) error {
			n, err := s.copies.CountByStatus(ctx, model.StatusAvailable)
			counts.CopiesAvailable = n
			return err
		}},
		lookup{"author_count", func(ctx context.Context) error {
			n, err := s.authors.Count(ctx)
			counts.Authors = n
			return err
		}},
		lookup{"genre_count", func(ctx context.Context) error {
			n, err := s.genres.Count(ctx)
			counts.Genres = n
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return counts, nil
}
