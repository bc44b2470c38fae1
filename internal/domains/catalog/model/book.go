package model

import (
	"github.com/google/uuid"
)

// Book references exactly one Author and an ordered set of Genres.
// References carry no ownership: deleting a book never touches the
// author or genres, and the delete paths for those entities are guarded
// against dangling books.
type Book struct {
	ID       uuid.UUID   `json:"id" db:"id"`
	Title    string      `json:"title" db:"title"`
	AuthorID uuid.UUID   `json:"author_id" db:"author_id"`
	Summary  string      `json:"summary" db:"summary"`
	ISBN     string      `json:"isbn" db:"isbn"`
	GenreIDs []uuid.UUID `json:"genre_ids" db:"genre_ids"`

	// Populated references. A dangling reference stays nil; it is the
	// caller's job to decide how to render an absent author or genre.
	Author *Author `json:"author,omitempty" db:"-"`
	Genres []Genre `json:"genres,omitempty" db:"-"`
}

func (b *Book) URL() string {
	return "/catalog/book/" + b.ID.String()
}

type BookResponse struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	AuthorID uuid.UUID       `json:"author_id"`
	Summary  string          `json:"summary"`
	ISBN     string          `json:"isbn"`
	GenreIDs []uuid.UUID     `json:"genre_ids"`
	Author   *AuthorResponse `json:"author,omitempty"`
	Genres   []GenreResponse `json:"genres,omitempty"`
	URL      string          `json:"url"`
}

func (b *Book) ToResponse() *BookResponse {
	resp := &BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		AuthorID: b.AuthorID,
		Summary:  b.Summary,
		ISBN:     b.ISBN,
		GenreIDs: b.GenreIDs,
		URL:      b.URL(),
	}
	if resp.GenreIDs == nil {
		resp.GenreIDs = []uuid.UUID{}
	}
	if b.Author != nil {
		resp.Author = b.Author.ToResponse()
	}
	for i := range b.Genres {
		resp.Genres = append(resp.Genres, *b.Genres[i].ToResponse())
	}
	return resp
}
