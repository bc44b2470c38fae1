package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAuthorName(t *testing.T) {
	a := &Author{FirstName: "Patrick", FamilyName: "Rothfuss"}
	assert.Equal(t, "Rothfuss, Patrick", a.Name())
}

func TestAuthorLifespan(t *testing.T) {
	tests := []struct {
		name   string
		author Author
		want   string
	}{
		{
			name: "both dates known",
			author: Author{
				DateOfBirth: date(1965, time.June, 6),
				DateOfDeath: date(2020, time.January, 1),
			},
			want: "June 6th, 1965 - January 1st, 2020",
		},
		{
			name:   "only birth known",
			author: Author{DateOfBirth: date(1973, time.March, 22)},
			want:   "March 22nd, 1973 - ",
		},
		{
			name: "nothing known",
			want: " - ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.author.Lifespan())
		})
	}
}

func TestAuthorDatePresentations(t *testing.T) {
	a := &Author{DateOfBirth: date(1948, time.September, 20)}

	assert.Equal(t, "20-Sep-1948", a.BirthFormatted())
	assert.Equal(t, "1948-09-20", a.BirthISO())
	assert.Equal(t, "", a.DeathFormatted())
	assert.Equal(t, "", a.DeathISO())
}

func TestAuthorURL(t *testing.T) {
	id := uuid.New()
	a := &Author{ID: id}
	assert.Equal(t, "/catalog/author/"+id.String(), a.URL())
}

func TestAuthorToResponse(t *testing.T) {
	a := &Author{
		ID:          uuid.New(),
		FirstName:   "Ursula",
		FamilyName:  "Le Guin",
		DateOfBirth: date(1929, time.October, 21),
	}

	resp := a.ToResponse()
	assert.Equal(t, "Le Guin, Ursula", resp.Name)
	assert.Equal(t, "21-Oct-1929", resp.DateOfBirth)
	assert.Equal(t, "1929-10-21", resp.DateOfBirthISO)
	assert.Equal(t, "October 21st, 1929 - ", resp.Lifespan)
	assert.Equal(t, a.URL(), resp.URL)
}
