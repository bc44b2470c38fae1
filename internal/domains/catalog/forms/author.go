package forms

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"library-catalog-backend/internal/domains/catalog/model"
)

func authorFields() []Field {
	return []Field{
		{Name: "first_name", Rules: []validation.Rule{
			validation.Required.Error("First name must be specified"),
			validation.RuneLength(0, 100).Error("First name is too long (100 characters maximum)"),
			is.Alphanumeric.Error("First name has non-alphanumeric characters."),
		}},
		{Name: "family_name", Rules: []validation.Rule{
			validation.Required.Error("Family name must be specified"),
			validation.RuneLength(0, 100).Error("Family name is too long (100 characters maximum)"),
			is.Alphanumeric.Error("Family name has non-alphanumeric characters."),
		}},
		{Name: "date_of_birth", Rules: []validation.Rule{
			validation.Date(model.ISODateLayout).Error("Invalid date of birth"),
		}},
		{Name: "date_of_death", Rules: []validation.Rule{
			validation.Date(model.ISODateLayout).Error("Invalid date of death"),
		}},
	}
}

// DecodeAuthor sanitizes and validates author form values. The
// candidate is returned even when the error list is non-empty.
func DecodeAuthor(raw url.Values) (*model.Author, []FieldError) {
	vals, errs := Clean(raw, authorFields())

	return &model.Author{
		FirstName:   vals.Get("first_name"),
		FamilyName:  vals.Get("family_name"),
		DateOfBirth: parseDate(vals.Get("date_of_birth")),
		DateOfDeath: parseDate(vals.Get("date_of_death")),
	}, errs
}
