package forms

import (
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/catalog/model"
)

func copyFields() []Field {
	return []Field{
		{Name: "book", Rules: []validation.Rule{
			validation.Required.Error("Book must be specified."),
			is.UUID.Error("Invalid book"),
		}},
		{Name: "imprint", Rules: []validation.Rule{
			validation.Required.Error("Imprint must be specified"),
		}},
		{Name: "status", Rules: []validation.Rule{
			validation.In(
				string(model.StatusAvailable),
				string(model.StatusMaintenance),
				string(model.StatusLoaned),
				string(model.StatusReserved),
			).Error("Invalid status"),
		}},
		{Name: "due_back", Rules: []validation.Rule{
			validation.Date(model.ISODateLayout).Error("Invalid date"),
		}},
	}
}

// DecodeCopy sanitizes and validates copy form values. An omitted
// status defaults to Maintenance and an omitted due-back date defaults
// to the time of submission.
func DecodeCopy(raw url.Values) (*model.Copy, []FieldError) {
	vals, errs := Clean(raw, copyFields())

	c := &model.Copy{
		Imprint: vals.Get("imprint"),
		Status:  model.DefaultStatus,
		DueBack: time.Now(),
	}

	if id, err := uuid.Parse(vals.Get("book")); err == nil {
		c.BookID = id
	}
	if s := vals.Get("status"); s != "" {
		c.Status = model.Status(s)
	}
	if d := parseDate(vals.Get("due_back")); d != nil {
		c.DueBack = *d
	}

	return c, errs
}
