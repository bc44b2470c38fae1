// Package forms turns raw request field values into sanitized entity
// candidates. One generic pipeline consumes a declarative per-entity
// rule table; validation never short-circuits across fields, and
// sanitization runs whether or not validation passed, so the candidate
// can always repopulate an edit form.
package forms

import (
	"html"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog-backend/internal/domains/catalog/model"
)

// FieldError is one field-scoped validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Field is one row of an entity's rule table: a field name and the
// ordered rules applied to its trimmed value. Multi marks fields that
// may arrive zero, one, or many times and are normalized to a slice.
type Field struct {
	Name  string
	Rules []validation.Rule
	Multi bool
}

// Values is the sanitized output of a pipeline run: every string
// trimmed and markup-escaped, multi-valued fields normalized.
type Values struct {
	single map[string]string
	multi  map[string][]string
}

// Get returns the sanitized value of a single-valued field.
func (v Values) Get(name string) string {
	return v.single[name]
}

// GetAll returns the sanitized values of a multi-valued field.
// The result is never nil.
func (v Values) GetAll(name string) []string {
	if vals, ok := v.multi[name]; ok {
		return vals
	}
	return []string{}
}

// Clean runs the pipeline: for each table row, trim the raw value,
// validate it against the row's rules, then escape markup characters.
// All rows are processed; errors accumulate in table order, at most one
// per field. Absent optional fields validate clean because every rule
// except Required skips empty input.
func Clean(raw url.Values, fields []Field) (Values, []FieldError) {
	out := Values{
		single: make(map[string]string, len(fields)),
		multi:  make(map[string][]string),
	}
	var errs []FieldError

	for _, f := range fields {
		if f.Multi {
			vals := raw[f.Name]
			clean := make([]string, 0, len(vals))
			for _, v := range vals {
				v = strings.TrimSpace(v)
				if err := validation.Validate(v, f.Rules...); err != nil {
					errs = append(errs, FieldError{Field: f.Name, Message: err.Error()})
					continue
				}
				clean = append(clean, html.EscapeString(v))
			}
			out.multi[f.Name] = clean
			continue
		}

		v := strings.TrimSpace(raw.Get(f.Name))
		if err := validation.Validate(v, f.Rules...); err != nil {
			errs = append(errs, FieldError{Field: f.Name, Message: err.Error()})
		}
		out.single[f.Name] = html.EscapeString(v)
	}

	return out, errs
}

// parseDate coerces a sanitized ISO date string into a date value.
// Empty or unparseable input yields nil; the rule table has already
// recorded a field error for the unparseable case.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(model.ISODateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
