package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/domains/catalog/forms"
	"library-catalog-backend/internal/domains/catalog/model"
	"library-catalog-backend/internal/shared/response"
)

// validationFailed returns the sanitized candidate alongside the field
// errors so the caller can redisplay the form with prior input intact.
func validationFailed(c *gin.Context, candidate interface{}, fieldErrs []forms.FieldError) {
	response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED",
		"One or more fields are invalid", gin.H{
			"candidate": candidate,
			"errors":    fieldErrs,
		})
}

// deleteRefused reports an integrity conflict: the delete target still
// has dependents, listed in the payload.
func deleteRefused(c *gin.Context, details interface{}) {
	response.ErrorWithDetails(c, http.StatusConflict, "INTEGRITY_CONFLICT",
		"Record is still referenced and cannot be deleted", details)
}

func bookResponses(books []model.Book) []model.BookResponse {
	out := make([]model.BookResponse, 0, len(books))
	for i := range books {
		out = append(out, *books[i].ToResponse())
	}
	return out
}

func copyResponses(copies []model.Copy) []model.CopyResponse {
	out := make([]model.CopyResponse, 0, len(copies))
	for i := range copies {
		out = append(out, *copies[i].ToResponse())
	}
	return out
}

func authorResponses(authors []model.Author) []model.AuthorResponse {
	out := make([]model.AuthorResponse, 0, len(authors))
	for i := range authors {
		out = append(out, *authors[i].ToResponse())
	}
	return out
}

func genreResponses(genres []model.Genre) []model.GenreResponse {
	out := make([]model.GenreResponse, 0, len(genres))
	for i := range genres {
		out = append(out, *genres[i].ToResponse())
	}
	return out
}
