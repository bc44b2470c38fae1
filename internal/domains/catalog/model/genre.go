package model

import (
	"github.com/google/uuid"
)

// Genre is a book category. Its name is the natural key: no two genres
// share a name, enforced by the find-or-create policy in the service
// layer rather than a store-level constraint.
type Genre struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

func (g *Genre) URL() string {
	return "/catalog/genre/" + g.ID.String()
}

type GenreResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

func (g *Genre) ToResponse() *GenreResponse {
	return &GenreResponse{
		ID:   g.ID,
		Name: g.Name,
		URL:  g.URL(),
	}
}
