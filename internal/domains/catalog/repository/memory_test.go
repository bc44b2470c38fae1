package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/domains/catalog/model"
)

func TestMemoryAuthorsSortedByFamilyName(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	authors := store.Authors()

	for _, name := range []string{"zimmerman", "Adams", "miller"} {
		_, err := authors.Insert(ctx, &model.Author{FirstName: "X", FamilyName: name})
		require.NoError(t, err)
	}

	list, err := authors.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Adams", list[0].FamilyName)
	assert.Equal(t, "miller", list[1].FamilyName, "sort is case insensitive")
	assert.Equal(t, "zimmerman", list[2].FamilyName)
}

func TestMemoryGenreFindByName(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	genres := store.Genres()

	created, err := genres.Insert(ctx, &model.Genre{Name: "Fantasy"})
	require.NoError(t, err)

	found, err := genres.FindByName(ctx, "Fantasy")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	// A miss is not an error.
	missing, err := genres.FindByName(ctx, "Horror")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryBookPopulation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	author, err := store.Authors().Insert(ctx, &model.Author{FirstName: "Frank", FamilyName: "Herbert"})
	require.NoError(t, err)
	genre, err := store.Genres().Insert(ctx, &model.Genre{Name: "Science Fiction"})
	require.NoError(t, err)

	book, err := store.Books().Insert(ctx, &model.Book{
		Title:    "Dune",
		AuthorID: author.ID,
		GenreIDs: []uuid.UUID{genre.ID},
	})
	require.NoError(t, err)

	got, err := store.Books().GetByID(ctx, book.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Author)
	assert.Equal(t, "Herbert", got.Author.FamilyName)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Science Fiction", got.Genres[0].Name)
}

func TestMemoryBookDanglingReferences(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	book, err := store.Books().Insert(ctx, &model.Book{
		Title:    "Orphan",
		AuthorID: uuid.New(),
		GenreIDs: []uuid.UUID{uuid.New()},
	})
	require.NoError(t, err)

	// Dangling references resolve to absent, not to an error.
	got, err := store.Books().GetByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Author)
	assert.Empty(t, got.Genres)
}

func TestMemoryCopyDanglingBook(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	cp, err := store.Copies().Insert(ctx, &model.Copy{BookID: uuid.New(), Imprint: "x"})
	require.NoError(t, err)

	// A copy whose book record is missing still reads; the reference
	// stays nil instead of failing the fetch.
	got, err := store.Copies().GetByID(ctx, cp.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Book)

	list, err := store.Copies().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Book)
}

func TestMemoryGetByIDMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Authors().GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)

	_, err = store.Copies().GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, catalog.ErrCopyNotFound)
}

func TestMemoryDeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.NoError(t, store.Books().Delete(ctx, uuid.New()))
}

func TestMemoryCopyCountByStatus(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	copies := store.Copies()

	for _, s := range []model.Status{model.StatusAvailable, model.StatusAvailable, model.StatusLoaned} {
		_, err := copies.Insert(ctx, &model.Copy{BookID: uuid.New(), Imprint: "x", Status: s})
		require.NoError(t, err)
	}

	n, err := copies.CountByStatus(ctx, model.StatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
