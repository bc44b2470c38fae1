package model

import (
	"time"

	"github.com/google/uuid"
)

// Status of a physical copy. Any status may follow any other; there is
// no transition rule.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

// DefaultStatus is assigned when a copy is created without one.
const DefaultStatus = StatusMaintenance

// Statuses lists every allowed status, in form-display order.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}
}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved:
		return true
	}
	return false
}

// Copy is a physical instance of a Book held by the library.
type Copy struct {
	ID      uuid.UUID `json:"id" db:"id"`
	BookID  uuid.UUID `json:"book_id" db:"book_id"`
	Imprint string    `json:"imprint" db:"imprint"`
	Status  Status    `json:"status" db:"status"`
	DueBack time.Time `json:"due_back" db:"due_back"`

	// Populated reference; nil when the book record is missing.
	Book *Book `json:"book,omitempty" db:"-"`
}

func (c *Copy) DueBackFormatted() string { return formatLong(c.DueBack) }
func (c *Copy) DueBackISO() string       { return c.DueBack.Format(ISODateLayout) }

func (c *Copy) URL() string {
	return "/catalog/bookinstance/" + c.ID.String()
}

type CopyResponse struct {
	ID         uuid.UUID     `json:"id"`
	BookID     uuid.UUID     `json:"book_id"`
	Imprint    string        `json:"imprint"`
	Status     Status        `json:"status"`
	DueBack    string        `json:"due_back"`
	DueBackISO string        `json:"due_back_iso"`
	Book       *BookResponse `json:"book,omitempty"`
	URL        string        `json:"url"`
}

func (c *Copy) ToResponse() *CopyResponse {
	resp := &CopyResponse{
		ID:         c.ID,
		BookID:     c.BookID,
		Imprint:    c.Imprint,
		Status:     c.Status,
		DueBack:    c.DueBackFormatted(),
		DueBackISO: c.DueBackISO(),
		URL:        c.URL(),
	}
	if c.Book != nil {
		resp.Book = c.Book.ToResponse()
	}
	return resp
}
