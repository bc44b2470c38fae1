package forms

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog-backend/internal/domains/catalog/model"
)

func genreFields() []Field {
	return []Field{
		{Name: "name", Rules: []validation.Rule{
			validation.Required.Error("Genre name required"),
		}},
	}
}

// DecodeGenre sanitizes and validates genre form values.
func DecodeGenre(raw url.Values) (*model.Genre, []FieldError) {
	vals, errs := Clean(raw, genreFields())

	return &model.Genre{
		Name: vals.Get("name"),
	}, errs
}
