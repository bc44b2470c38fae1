package forms

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/domains/catalog/model"
)

func TestDecodeAuthorValid(t *testing.T) {
	author, errs := DecodeAuthor(url.Values{
		"first_name":    {"  Patrick "},
		"family_name":   {"Rothfuss"},
		"date_of_birth": {"1973-06-06"},
	})

	require.Empty(t, errs)
	assert.Equal(t, "Patrick", author.FirstName, "surrounding whitespace is trimmed")
	assert.Equal(t, "Rothfuss", author.FamilyName)
	require.NotNil(t, author.DateOfBirth)
	assert.Equal(t, time.Date(1973, time.June, 6, 0, 0, 0, 0, time.UTC), *author.DateOfBirth)
	assert.Nil(t, author.DateOfDeath, "absent optional date stays unset")
}

func TestDecodeAuthorAccumulatesErrors(t *testing.T) {
	_, errs := DecodeAuthor(url.Values{
		"first_name":    {""},
		"family_name":   {""},
		"date_of_birth": {"1970-02-31"},
	})

	// Every field is checked; one message per failing field, in rule
	// table order.
	require.Len(t, errs, 3)
	assert.Equal(t, FieldError{Field: "first_name", Message: "First name must be specified"}, errs[0])
	assert.Equal(t, FieldError{Field: "family_name", Message: "Family name must be specified"}, errs[1])
	assert.Equal(t, FieldError{Field: "date_of_birth", Message: "Invalid date of birth"}, errs[2])
}

func TestDecodeAuthorSanitizesInvalidInput(t *testing.T) {
	author, errs := DecodeAuthor(url.Values{
		"first_name":  {"<b>Bob</b>"},
		"family_name": {"Smith"},
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "first_name", errs[0].Field)
	// The candidate is still sanitized so it can repopulate the form.
	assert.Equal(t, "&lt;b&gt;Bob&lt;/b&gt;", author.FirstName)
}

func TestDecodeGenre(t *testing.T) {
	genre, errs := DecodeGenre(url.Values{"name": {"  Fantasy  "}})
	require.Empty(t, errs)
	assert.Equal(t, "Fantasy", genre.Name)

	_, errs = DecodeGenre(url.Values{"name": {"   "}})
	require.Len(t, errs, 1)
	assert.Equal(t, "Genre name required", errs[0].Message)
}

func TestDecodeBookRequiredFields(t *testing.T) {
	_, errs := DecodeBook(url.Values{})

	require.Len(t, errs, 4)
	assert.Equal(t, "Title must not be empty.", errs[0].Message)
	assert.Equal(t, "Author must not be empty.", errs[1].Message)
	assert.Equal(t, "Summary must not be empty.", errs[2].Message)
	assert.Equal(t, "ISBN must not be empty.", errs[3].Message)
}

func TestDecodeBookGenreNormalization(t *testing.T) {
	authorID := uuid.New()
	base := url.Values{
		"title":   {"Dune"},
		"author":  {authorID.String()},
		"summary": {"Desert planet."},
		"isbn":    {"9780441172719"},
	}

	t.Run("absent", func(t *testing.T) {
		book, errs := DecodeBook(base)
		require.Empty(t, errs)
		require.NotNil(t, book.GenreIDs)
		assert.Empty(t, book.GenreIDs)
	})

	t.Run("single value", func(t *testing.T) {
		g := uuid.New()
		vals := url.Values{"genre": {g.String()}}
		for k, v := range base {
			vals[k] = v
		}

		book, errs := DecodeBook(vals)
		require.Empty(t, errs)
		assert.Equal(t, []uuid.UUID{g}, book.GenreIDs)
	})

	t.Run("several values keep order", func(t *testing.T) {
		g1, g2, g3 := uuid.New(), uuid.New(), uuid.New()
		vals := url.Values{"genre": {g1.String(), g2.String(), g3.String()}}
		for k, v := range base {
			vals[k] = v
		}

		book, errs := DecodeBook(vals)
		require.Empty(t, errs)
		assert.Equal(t, []uuid.UUID{g1, g2, g3}, book.GenreIDs)
	})

	t.Run("malformed genre id", func(t *testing.T) {
		vals := url.Values{"genre": {"not-a-uuid"}}
		for k, v := range base {
			vals[k] = v
		}

		book, errs := DecodeBook(vals)
		require.Len(t, errs, 1)
		assert.Equal(t, FieldError{Field: "genre", Message: "Invalid genre"}, errs[0])
		assert.Empty(t, book.GenreIDs)
	})
}

func TestDecodeBookAuthorID(t *testing.T) {
	book, errs := DecodeBook(url.Values{
		"title":   {"Dune"},
		"author":  {"nonsense"},
		"summary": {"Desert planet."},
		"isbn":    {"9780441172719"},
	})

	require.Len(t, errs, 1)
	assert.Equal(t, FieldError{Field: "author", Message: "Invalid author"}, errs[0])
	assert.Equal(t, uuid.Nil, book.AuthorID)
}

func TestDecodeCopyDefaults(t *testing.T) {
	before := time.Now()
	cp, errs := DecodeCopy(url.Values{
		"book":    {uuid.New().String()},
		"imprint": {"Ace, 1990"},
	})

	require.Empty(t, errs)
	assert.Equal(t, model.StatusMaintenance, cp.Status)
	assert.False(t, cp.DueBack.Before(before), "omitted due_back defaults to submission time")
}

func TestDecodeCopyExplicitValues(t *testing.T) {
	cp, errs := DecodeCopy(url.Values{
		"book":     {uuid.New().String()},
		"imprint":  {"Ace, 1990"},
		"status":   {"Loaned"},
		"due_back": {"2026-10-01"},
	})

	require.Empty(t, errs)
	assert.Equal(t, model.StatusLoaned, cp.Status)
	assert.Equal(t, "2026-10-01", cp.DueBack.Format(model.ISODateLayout))
}

func TestDecodeCopyInvalidInput(t *testing.T) {
	_, errs := DecodeCopy(url.Values{
		"status":   {"Lost"},
		"due_back": {"next week"},
	})

	require.Len(t, errs, 4)
	assert.Equal(t, "Book must be specified.", errs[0].Message)
	assert.Equal(t, "Imprint must be specified", errs[1].Message)
	assert.Equal(t, "Invalid status", errs[2].Message)
	assert.Equal(t, "Invalid date", errs[3].Message)
}
