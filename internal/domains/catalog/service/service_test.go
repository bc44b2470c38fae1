package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/domains/catalog/model"
	"library-catalog-backend/internal/domains/catalog/repository"
)

func seedAuthor(t *testing.T, store *repository.MemoryStore, first, family string) *model.Author {
	t.Helper()
	a, err := store.Authors().Insert(context.Background(), &model.Author{
		FirstName: first, FamilyName: family,
	})
	require.NoError(t, err)
	return a
}

func seedBook(t *testing.T, store *repository.MemoryStore, title string, authorID uuid.UUID, genreIDs ...uuid.UUID) *model.Book {
	t.Helper()
	b, err := store.Books().Insert(context.Background(), &model.Book{
		Title: title, AuthorID: authorID, Summary: "s", ISBN: "i", GenreIDs: genreIDs,
	})
	require.NoError(t, err)
	return b
}

func TestGenreCreateDeduplicates(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewGenreService(store.Genres(), store.Books())

	first, fieldErrs, err := svc.Create(ctx, url.Values{"name": {"Fantasy"}})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	// Same name again, with surrounding whitespace: the existing record
	// wins and no second identifier is allocated.
	second, fieldErrs, err := svc.Create(ctx, url.Values{"name": {"  Fantasy "}})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, first.ID, second.ID)

	n, err := store.Genres().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGenreCreateValidationFailure(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewGenreService(store.Genres(), store.Books())

	candidate, fieldErrs, err := svc.Create(ctx, url.Values{"name": {""}})
	require.NoError(t, err)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "Genre name required", fieldErrs[0].Message)
	require.NotNil(t, candidate, "candidate comes back for form redisplay")

	n, err := store.Genres().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "nothing is persisted on validation failure")
}

func TestGenreUpdateDeduplicates(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewGenreService(store.Genres(), store.Books())

	fantasy, _, err := svc.Create(ctx, url.Values{"name": {"Fantasy"}})
	require.NoError(t, err)
	horror, _, err := svc.Create(ctx, url.Values{"name": {"Horror"}})
	require.NoError(t, err)

	// Renaming Horror to Fantasy resolves to the existing Fantasy record.
	got, fieldErrs, err := svc.Update(ctx, horror.ID.String(), url.Values{"name": {"Fantasy"}})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, fantasy.ID, got.ID)

	// The original record is untouched.
	unchanged, err := store.Genres().GetByID(ctx, horror.ID)
	require.NoError(t, err)
	assert.Equal(t, "Horror", unchanged.Name)
}

func TestAuthorDetailFansOut(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewAuthorService(store.Authors(), store.Books())

	author := seedAuthor(t, store, "Frank", "Herbert")
	seedBook(t, store, "Dune", author.ID)
	seedBook(t, store, "Dune Messiah", author.ID)
	other := seedAuthor(t, store, "Ursula", "Le Guin")
	seedBook(t, store, "The Dispossessed", other.ID)

	detail, err := svc.Detail(ctx, author.ID.String())
	require.NoError(t, err)
	assert.Equal(t, author.ID, detail.Author.ID)
	assert.Len(t, detail.Books, 2)
}

func TestAuthorDetailMalformedID(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewAuthorService(store.Authors(), store.Books())

	// A malformed identifier is indistinguishable from a missing record.
	_, err := svc.Detail(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)

	_, err = svc.Detail(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)
}

func TestAuthorDeleteRefusedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewAuthorService(store.Authors(), store.Books())

	author := seedAuthor(t, store, "Frank", "Herbert")
	seedBook(t, store, "Dune", author.ID)

	check, err := svc.Delete(ctx, author.ID.String())
	require.NoError(t, err)
	assert.False(t, check.Allowed())
	require.Len(t, check.Books, 1)

	// The refusal left the author in place.
	_, err = store.Authors().GetByID(ctx, author.ID)
	assert.NoError(t, err)
}

func TestAuthorDeleteAllowedWhenUnreferenced(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewAuthorService(store.Authors(), store.Books())

	author := seedAuthor(t, store, "Frank", "Herbert")

	check, err := svc.Delete(ctx, author.ID.String())
	require.NoError(t, err)
	assert.True(t, check.Allowed())

	_, err = store.Authors().GetByID(ctx, author.ID)
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)
}

func TestBookCreateWithoutGenres(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewBookService(store.Books(), store.Copies(), store.Authors(), store.Genres())

	author := seedAuthor(t, store, "Frank", "Herbert")

	book, fieldErrs, err := svc.Create(ctx, url.Values{
		"title":   {"Dune"},
		"author":  {author.ID.String()},
		"summary": {"Desert planet."},
		"isbn":    {"9780441172719"},
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, book.GenreIDs)
	assert.Empty(t, book.GenreIDs)
}

func TestBookDetailFansOut(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewBookService(store.Books(), store.Copies(), store.Authors(), store.Genres())

	author := seedAuthor(t, store, "Frank", "Herbert")
	book := seedBook(t, store, "Dune", author.ID)
	for range 3 {
		_, err := store.Copies().Insert(ctx, &model.Copy{BookID: book.ID, Imprint: "Ace, 1990"})
		require.NoError(t, err)
	}

	detail, err := svc.Detail(ctx, book.ID.String())
	require.NoError(t, err)
	require.NotNil(t, detail.Book.Author)
	assert.Equal(t, "Herbert", detail.Book.Author.FamilyName)
	assert.Len(t, detail.Copies, 3)
}

func TestBookDeleteGuard(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewBookService(store.Books(), store.Copies(), store.Authors(), store.Genres())

	author := seedAuthor(t, store, "Frank", "Herbert")
	book := seedBook(t, store, "Dune", author.ID)
	cp, err := store.Copies().Insert(ctx, &model.Copy{BookID: book.ID, Imprint: "Ace, 1990"})
	require.NoError(t, err)

	check, err := svc.Delete(ctx, book.ID.String())
	require.NoError(t, err)
	assert.False(t, check.Allowed())

	require.NoError(t, store.Copies().Delete(ctx, cp.ID))

	check, err = svc.Delete(ctx, book.ID.String())
	require.NoError(t, err)
	assert.True(t, check.Allowed())

	_, err = store.Books().GetByID(ctx, book.ID)
	assert.ErrorIs(t, err, catalog.ErrBookNotFound)
}

func TestBookFormOptions(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewBookService(store.Books(), store.Copies(), store.Authors(), store.Genres())

	seedAuthor(t, store, "Frank", "Herbert")
	_, err := store.Genres().Insert(ctx, &model.Genre{Name: "Science Fiction"})
	require.NoError(t, err)

	options, err := svc.FormOptions(ctx)
	require.NoError(t, err)
	assert.Len(t, options.Authors, 1)
	assert.Len(t, options.Genres, 1)
}

// failingBooks wraps a BookRepository and fails ListByAuthor, to prove
// that one failing branch of a fan-out fails the whole operation.
type failingBooks struct {
	catalog.BookRepository
	err error
}

func (f *failingBooks) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return nil, f.err
}

func TestFanOutSingleFailureFailsOperation(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	author := seedAuthor(t, store, "Frank", "Herbert")

	storeErr := errors.New("connection reset")
	svc := NewAuthorService(store.Authors(), &failingBooks{store.Books(), storeErr})

	_, err := svc.Detail(ctx, author.ID.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "author_books", "error names the failing lookup")
}

func TestCopyDeleteIsUnguarded(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewCopyService(store.Copies(), store.Books())

	cp, err := store.Copies().Insert(ctx, &model.Copy{BookID: uuid.New(), Imprint: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, cp.ID.String()))
	_, err = store.Copies().GetByID(ctx, cp.ID)
	assert.ErrorIs(t, err, catalog.ErrCopyNotFound)

	// Missing and malformed identifiers are both silent no-ops.
	assert.NoError(t, svc.Delete(ctx, uuid.New().String()))
	assert.NoError(t, svc.Delete(ctx, "garbage"))
}

func TestCatalogCounts(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewCatalogService(store.Authors(), store.Genres(), store.Books(), store.Copies())

	author := seedAuthor(t, store, "Frank", "Herbert")
	book := seedBook(t, store, "Dune", author.ID)
	_, err := store.Copies().Insert(ctx, &model.Copy{BookID: book.ID, Imprint: "a", Status: model.StatusAvailable})
	require.NoError(t, err)
	_, err = store.Copies().Insert(ctx, &model.Copy{BookID: book.ID, Imprint: "b", Status: model.StatusLoaned})
	require.NoError(t, err)

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Books)
	assert.Equal(t, int64(2), counts.Copies)
	assert.Equal(t, int64(1), counts.CopiesAvailable)
	assert.Equal(t, int64(1), counts.Authors)
	assert.Equal(t, int64(0), counts.Genres)
}
