package catalog

import (
	"context"
	"net/url"

	"library-catalog-backend/internal/domains/catalog/forms"
	"library-catalog-backend/internal/domains/catalog/model"
)

// Services orchestrate the catalog operations exposed to the routing
// collaborator. Mutations accept raw form values and run them through
// the validation pipeline; a non-empty field-error list comes back with
// the sanitized candidate entity so the form can be redisplayed.
// Identifiers arrive as opaque strings; one that does not parse is
// treated as not found, never as a crash.

// AuthorDetail is the author detail view: the author plus the books
// referencing them, fetched concurrently.
type AuthorDetail struct {
	Author *model.Author `json:"author"`
	Books  []model.Book  `json:"books"`
}

// AuthorDeleteCheck is the guard result for an author deletion.
// Deletion is allowed only when no books reference the author.
type AuthorDeleteCheck struct {
	Author *model.Author `json:"author"`
	Books  []model.Book  `json:"books"`
}

func (c *AuthorDeleteCheck) Allowed() bool { return len(c.Books) == 0 }

// GenreDetail is the genre detail view: the genre plus its books.
type GenreDetail struct {
	Genre *model.Genre `json:"genre"`
	Books []model.Book `json:"books"`
}

// GenreDeleteCheck is the guard result for a genre deletion.
type GenreDeleteCheck struct {
	Genre *model.Genre `json:"genre"`
	Books []model.Book `json:"books"`
}

func (c *GenreDeleteCheck) Allowed() bool { return len(c.Books) == 0 }

// BookDetail is the book detail view: the book (author and genres
// populated) plus its physical copies.
type BookDetail struct {
	Book   *model.Book  `json:"book"`
	Copies []model.Copy `json:"copies"`
}

// BookDeleteCheck is the guard result for a book deletion.
type BookDeleteCheck struct {
	Book   *model.Book  `json:"book"`
	Copies []model.Copy `json:"copies"`
}

func (c *BookDeleteCheck) Allowed() bool { return len(c.Copies) == 0 }

// BookFormOptions are the reference lists a book form offers.
type BookFormOptions struct {
	Authors []model.Author `json:"authors"`
	Genres  []model.Genre  `json:"genres"`
}

// Counts are the aggregate figures for the catalog home page.
type Counts struct {
	Books           int64 `json:"book_count"`
	Copies          int64 `json:"copy_count"`
	CopiesAvailable int64 `json:"copy_available_count"`
	Authors         int64 `json:"author_count"`
	Genres          int64 `json:"genre_count"`
}

// AuthorService exposes the author operations.
type AuthorService interface {
	List(ctx context.Context) ([]model.Author, error)

	// Detail fetches the author and their books concurrently.
	// Errors: ErrAuthorNotFound.
	Detail(ctx context.Context, id string) (*AuthorDetail, error)

	// Create validates and sanitizes the form values. When the error
	// list is non-empty the candidate author is returned unpersisted.
	Create(ctx context.Context, values url.Values) (*model.Author, []forms.FieldError, error)

	// Update behaves like Create but preserves the existing identifier.
	// Errors: ErrAuthorNotFound.
	Update(ctx context.Context, id string, values url.Values) (*model.Author, []forms.FieldError, error)

	// DeleteCheck fetches the author and dependent books concurrently
	// without mutating anything.
	// Errors: ErrAuthorNotFound.
	DeleteCheck(ctx context.Context, id string) (*AuthorDeleteCheck, error)

	// Delete runs the guard and removes the author only when no books
	// reference them; a refused delete returns the check with the
	// dependents and no error.
	// Errors: ErrAuthorNotFound (callers redirect to the list).
	Delete(ctx context.Context, id string) (*AuthorDeleteCheck, error)
}

// GenreService exposes the genre operations, including the
// find-or-create policy on the genre name.
type GenreService interface {
	List(ctx context.Context) ([]model.Genre, error)

	// Detail fetches the genre and its books concurrently.
	// Errors: ErrGenreNotFound.
	Detail(ctx context.Context, id string) (*GenreDetail, error)

	// Create resolves to an existing genre with the same sanitized name
	// instead of inserting a duplicate.
	Create(ctx context.Context, values url.Values) (*model.Genre, []forms.FieldError, error)

	// Update applies the same dedup policy: when another record already
	// carries the submitted name, that record is returned and nothing
	// is written.
	// Errors: ErrGenreNotFound.
	Update(ctx context.Context, id string, values url.Values) (*model.Genre, []forms.FieldError, error)

	DeleteCheck(ctx context.Context, id string) (*GenreDeleteCheck, error)
	Delete(ctx context.Context, id string) (*GenreDeleteCheck, error)
}

// BookService exposes the book operations.
type BookService interface {
	List(ctx context.Context) ([]model.Book, error)

	// Detail fetches the populated book and its copies concurrently.
	// Errors: ErrBookNotFound.
	Detail(ctx context.Context, id string) (*BookDetail, error)

	// FormOptions fetches all authors and genres concurrently for the
	// create/update form.
	FormOptions(ctx context.Context) (*BookFormOptions, error)

	Create(ctx context.Context, values url.Values) (*model.Book, []forms.FieldError, error)
	Update(ctx context.Context, id string, values url.Values) (*model.Book, []forms.FieldError, error)

	DeleteCheck(ctx context.Context, id string) (*BookDeleteCheck, error)
	Delete(ctx context.Context, id string) (*BookDeleteCheck, error)
}

// CopyService exposes the operations on physical copies. Copy deletion
// is unguarded: nothing references a copy.
type CopyService interface {
	List(ctx context.Context) ([]model.Copy, error)

	// Detail returns the copy with its book populated.
	// Errors: ErrCopyNotFound.
	Detail(ctx context.Context, id string) (*model.Copy, error)

	// FormOptions lists all books for the copy form.
	FormOptions(ctx context.Context) ([]model.Book, error)

	Create(ctx context.Context, values url.Values) (*model.Copy, []forms.FieldError, error)
	Update(ctx context.Context, id string, values url.Values) (*model.Copy, []forms.FieldError, error)

	// Delete removes the copy; deleting a missing copy is a no-op.
	Delete(ctx context.Context, id string) error
}

// CatalogService serves the home page aggregates.
type CatalogService interface {
	// Counts runs the five entity counts concurrently.
	Counts(ctx context.Context) (*Counts, error)
}
