package catalog

import (
	"context"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/catalog/model"
)

// Repositories are the document-store collaborator. Each exposes the
// four store operation shapes (fetch by id, fetch by filter, insert,
// replace) plus delete, which services invoke only after the integrity
// guard has authorized it. List operations return results in
// store-native order unless a sort is stated; populated references
// resolve dangling identifiers to nil rather than an error.

// AuthorRepository is the data access contract for authors.
type AuthorRepository interface {
	// List returns all authors sorted by family name ascending.
	List(ctx context.Context) ([]model.Author, error)

	// GetByID returns ErrAuthorNotFound when no record exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// Insert stores a new author and assigns its identifier.
	Insert(ctx context.Context, a *model.Author) (*model.Author, error)

	// Update replaces the stored record by id.
	// Returns ErrAuthorNotFound when no record exists.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// Delete removes the record; the caller runs the integrity guard first.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}

// BookRepository is the data access contract for books.
type BookRepository interface {
	// List returns all books with the author reference populated.
	List(ctx context.Context) ([]model.Book, error)

	// GetByID returns the book with author and genres populated.
	// Returns ErrBookNotFound when no record exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// ListByAuthor returns the books referencing an author,
	// in store-native order.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)

	// ListByGenre returns the books whose genre set contains genreID.
	ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)

	Insert(ctx context.Context, b *model.Book) (*model.Book, error)
	Update(ctx context.Context, b *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// GenreRepository is the data access contract for genres.
type GenreRepository interface {
	// List returns all genres sorted by name ascending.
	List(ctx context.Context) ([]model.Genre, error)

	// GetByID returns ErrGenreNotFound when no record exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)

	// FindByName looks up a genre by exact name.
	// A miss returns (nil, nil) so the dedup policy can distinguish
	// "no such genre" from a store failure.
	FindByName(ctx context.Context, name string) (*model.Genre, error)

	Insert(ctx context.Context, g *model.Genre) (*model.Genre, error)
	Update(ctx context.Context, g *model.Genre) (*model.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// CopyRepository is the data access contract for physical copies.
type CopyRepository interface {
	// List returns all copies with the book reference populated.
	List(ctx context.Context) ([]model.Copy, error)

	// GetByID returns the copy with its book populated.
	// Returns ErrCopyNotFound when no record exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Copy, error)

	// ListByBook returns the copies of one book, in store-native order.
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.Copy, error)

	Insert(ctx context.Context, c *model.Copy) (*model.Copy, error)
	Update(ctx context.Context, c *model.Copy) (*model.Copy, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// CountByStatus counts copies with the given status,
	// e.g. available copies for the home page.
	CountByStatus(ctx context.Context, status model.Status) (int64, error)
}
