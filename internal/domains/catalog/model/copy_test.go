package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}
	assert.False(t, Status("Lost").Valid())
	assert.False(t, Status("available").Valid(), "status comparison is case sensitive")
}

func TestDefaultStatus(t *testing.T) {
	assert.Equal(t, StatusMaintenance, DefaultStatus)
}

func TestCopyDueBackPresentations(t *testing.T) {
	c := &Copy{DueBack: time.Date(2023, time.December, 3, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, "December 3rd, 2023", c.DueBackFormatted())
	assert.Equal(t, "2023-12-03", c.DueBackISO())
}

func TestBookResponseGenreIDsNeverNil(t *testing.T) {
	b := &Book{ID: uuid.New(), Title: "Dune"}

	resp := b.ToResponse()
	assert.NotNil(t, resp.GenreIDs)
	assert.Empty(t, resp.GenreIDs)
}
