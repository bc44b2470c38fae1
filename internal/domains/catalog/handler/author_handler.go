package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/shared/response"
)

type AuthorHandler struct {
	service catalog.AuthorService
}

func NewAuthorHandler(svc catalog.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

const authorListPath = "/catalog/authors"

// List - GET /catalog/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, authorResponses(authors))
}

// Detail - GET /catalog/author/:id
func (h *AuthorHandler) Detail(c *gin.Context) {
	detail, err := h.service.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if catalog.IsNotFound(err) {
			response.NotFound(c, "Author not found")
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"author": detail.Author.ToResponse(),
		"books":  bookResponses(detail.Books),
	})
}

// Create - POST /catalog/author/create
func (h *AuthorHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	author, fieldErrs, err := h.service.Create(c.Request.Context(), c.Request.PostForm)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if len(fieldErrs) > 0 {
		validationFailed(c, author.ToResponse(), fieldErrs)
		return
	}

	c.Redirect(http.StatusSeeOther, author.URL())
}

// Update - POST /catalog/author/:id/update
func (h *AuthorHandler) Update(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	author, fieldErrs, err := h.service.Update(c.Request.Context(), c.Param("id"), c.Request.PostForm)
	if err != nil {
		if catalog.IsNotFound(err) {
			response.NotFound(c, "Author not found")
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}
	if len(fieldErrs) > 0 {
		validationFailed(c, author.ToResponse(), fieldErrs)
		return
	}

	c.Redirect(http.StatusSeeOther, author.URL())
}

// DeleteCheck - GET /catalog/author/:id/delete
func (h *AuthorHandler) DeleteCheck(c *gin.Context) {
	check, err := h.service.DeleteCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		if catalog.IsNotFound(err) {
			// Nothing to delete; back to the list.
			c.Redirect(http.StatusSeeOther, authorListPath)
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"author":  check.Author.ToResponse(),
		"books":   bookResponses(check.Books),
		"allowed": check.Allowed(),
	})
}

// Delete - POST /catalog/author/:id/delete
func (h *AuthorHandler) Delete(c *gin.Context) {
	check, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if catalog.IsNotFound(err) {
			c.Redirect(http.StatusSeeOther, authorListPath)
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}
	if !check.Allowed() {
		deleteRefused(c, gin.H{
			"author": check.Author.ToResponse(),
			"books":  bookResponses(check.Books),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, authorListPath)
}
