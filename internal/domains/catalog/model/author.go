package model

import (
	"time"

	"github.com/google/uuid"
)

// Author is a catalog author. Birth and death dates are optional;
// a nil date simply renders as an empty string.
type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	FamilyName  string     `json:"family_name" db:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty" db:"date_of_death"`
}

// Name is the author's display name, "family_name, first_name".
func (a *Author) Name() string {
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan renders the birth-death range in long form, leaving either
// side empty when the date is unknown.
func (a *Author) Lifespan() string {
	return formatLongPtr(a.DateOfBirth) + " - " + formatLongPtr(a.DateOfDeath)
}

func (a *Author) BirthFormatted() string { return formatShortPtr(a.DateOfBirth) }
func (a *Author) DeathFormatted() string { return formatShortPtr(a.DateOfDeath) }

// BirthISO and DeathISO are the form-autofill presentations.
func (a *Author) BirthISO() string { return formatISOPtr(a.DateOfBirth) }
func (a *Author) DeathISO() string { return formatISOPtr(a.DateOfDeath) }

// URL is the canonical reference path, used as the redirect target
// after a successful mutation.
func (a *Author) URL() string {
	return "/catalog/author/" + a.ID.String()
}

// AuthorResponse carries the author plus its derived presentations.
type AuthorResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	FamilyName     string    `json:"family_name"`
	Name           string    `json:"name"`
	DateOfBirth    string    `json:"date_of_birth,omitempty"`
	DateOfDeath    string    `json:"date_of_death,omitempty"`
	DateOfBirthISO string    `json:"date_of_birth_iso,omitempty"`
	DateOfDeathISO string    `json:"date_of_death_iso,omitempty"`
	Lifespan       string    `json:"lifespan"`
	URL            string    `json:"url"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:             a.ID,
		FirstName:      a.FirstName,
		FamilyName:     a.FamilyName,
		Name:           a.Name(),
		DateOfBirth:    a.BirthFormatted(),
		DateOfDeath:    a.DeathFormatted(),
		DateOfBirthISO: a.BirthISO(),
		DateOfDeathISO: a.DeathISO(),
		Lifespan:       a.Lifespan(),
		URL:            a.URL(),
	}
}
