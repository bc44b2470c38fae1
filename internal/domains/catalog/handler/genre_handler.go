package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/shared/response"
)

type GenreHandler struct {
	service catalog.GenreService
}

func NewGenreHandler(svc catalog.GenreService) *GenreHandler {
	return &GenreHandler{service: svc}
}

const genreListPath = "/catalog/genres"

// List - GET /catalog/genres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, genreResponses(genres))
}

// Detail - GET /catalog/genre/:id
func (h *GenreHandler) Detail(c *gin.Context) {
	detail, err := h.service.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if catalog.IsNotFound(err) {
			response.NotFound(c, "Genre not found")
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"genre": detail.Genre.ToResponse(),
		"books": bookResponses(detail.Books),
	})
}

// Create - POST /catalog/genre/create
//
// A name that already exists redirects to the existing record; the
// find-or-create policy never allocates a second identifier.
func (h *GenreHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	genre, fieldErrs, err := h.service.Create(c.Request.Context(), c.Request.PostForm)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if len(fieldErrs) > 0 {
		validationFailed(c, genre.ToResponse(), fieldErrs)
		return
	}

	c.Redirect(http.StatusSeeOther, genre.URL())
}

// Update - POST /catalog/genre/:id/update
func (h *GenreHandler) Update(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	genre, fieldErrs, err := h.service.Update(c.Request.Context(), c.Param("id"), c.Request.PostForm)
	if err != nil {
		if catalog.IsNotFound(err) {
			response.NotFound(c, "Genre not found")
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}
	if len(fieldErrs) > 0 {
		validationFailed(c, genre.ToResponse(), fieldErrs)
		return
	}

	c.Redirect(http.StatusSeeOther, genre.URL())
}

// DeleteCheck - GET /catalog/genre/:id/delete
func (h *GenreHandler) DeleteCheck(c *gin.Context) {
	check, err := h.service.DeleteCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		if catalog.IsNotFound(err) {
			c.Redirect(http.StatusSeeOther, genreListPath)
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"genre":   check.Genre.ToResponse(),
		"books":   bookResponses(check.Books),
		"allowed": check.Allowed(),
	})
}

// Delete - POST /catalog/genre/:id/delete
func (h *GenreHandler) Delete(c *gin.Context) {
	check, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if catalog.IsNotFound(err) {
			c.Redirect(http.StatusSeeOther, genreListPath)
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}
	if !check.Allowed() {
		deleteRefused(c, gin.H{
			"genre": check.Genre.ToResponse(),
			"books": bookResponses(check.Books),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, genreListPath)
}
