package forms

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/catalog/model"
)

func bookFields() []Field {
	return []Field{
		{Name: "title", Rules: []validation.Rule{
			validation.Required.Error("Title must not be empty."),
		}},
		{Name: "author", Rules: []validation.Rule{
			validation.Required.Error("Author must not be empty."),
			is.UUID.Error("Invalid author"),
		}},
		{Name: "summary", Rules: []validation.Rule{
			validation.Required.Error("Summary must not be empty."),
		}},
		{Name: "isbn", Rules: []validation.Rule{
			validation.Required.Error("ISBN must not be empty."),
		}},
		// The genre selection may arrive absent, as a single value, or
		// as several; it is normalized to an ordered slice either way.
		{Name: "genre", Multi: true, Rules: []validation.Rule{
			is.UUID.Error("Invalid genre"),
		}},
	}
}

// DecodeBook sanitizes and validates book form values. GenreIDs is
// always a non-nil ordered slice, empty when nothing was selected.
func DecodeBook(raw url.Values) (*model.Book, []FieldError) {
	vals, errs := Clean(raw, bookFields())

	b := &model.Book{
		Title:    vals.Get("title"),
		Summary:  vals.Get("summary"),
		ISBN:     vals.Get("isbn"),
		GenreIDs: []uuid.UUID{},
	}

	if id, err := uuid.Parse(vals.Get("author")); err == nil {
		b.AuthorID = id
	}
	for _, g := range vals.GetAll("genre") {
		if id, err := uuid.Parse(g); err == nil {
			b.GenreIDs = append(b.GenreIDs, id)
		}
	}

	return b, errs
}
