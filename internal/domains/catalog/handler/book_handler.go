package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/shared/response"
)

type BookHandler struct {
	service catalog.BookService
}

func NewBookHandler(svc catalog.BookService) *BookHandler {
	return &BookHandler{service: svc}
}

const bookListPath = "/catalog/books"

// List - GET /catalog/books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, bookResponses(books))
}

// Detail - GET /catalog/book/:id
func (h *BookHandler) Detail(c *gin.Context) {
	detail, err := h.service.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if catalog.IsNotFound(err) {
			response.NotFound(c, "Book not found")
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"book":   detail.Book.ToResponse(),
		"copies": copyResponses(detail.Copies),
	})
}

// FormOptions - GET /catalog/book/create
//
// Both selectable lists are fetched concurrently; the form needs them
// together or not at all.
func (h *BookHandler) FormOptions(c *gin.Context) {
	options, err := h.service.FormOptions(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"authors": authorResponses(options.Authors),
		"genres":  genreResponses(options.Genres),
	})
}

// Create - POST /catalog/book/create
func (h *BookHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	book, fieldErrs, err := h.service.Create(c.Request.Context(), c.Request.PostForm)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if len(fieldErrs) > 0 {
		validationFailed(c, book.ToResponse(), fieldErrs)
		return
	}

	c.Redirect(http.StatusSeeOther, book.URL())
}

// Update - POST /catalog/book/:id/update
func (h *BookHandler) Update(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	book, fieldErrs, err := h.service.Update(c.Request.Context(), c.Param("id"), c.Request.PostForm)
	if err != nil {
		if catalog.IsNotFound(err) {
			response.NotFound(c, "Book not found")
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}
	if len(fieldErrs) > 0 {
		validationFailed(c, book.ToResponse(), fieldErrs)
		return
	}

	c.Redirect(http.StatusSeeOther, book.URL())
}

// DeleteCheck - GET /catalog/book/:id/delete
func (h *BookHandler) DeleteCheck(c *gin.Context) {
	check, err := h.service.DeleteCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		if catalog.IsNotFound(err) {
			c.Redirect(http.StatusSeeOther, bookListPath)
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"book":    check.Book.ToResponse(),
		"copies":  copyResponses(check.Copies),
		"allowed": check.Allowed(),
	})
}

// Delete - POST /catalog/book/:id/delete
func (h *BookHandler) Delete(c *gin.Context) {
	check, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if catalog.IsNotFound(err) {
			c.Redirect(http.StatusSeeOther, bookListPath)
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}
	if !check.Allowed() {
		deleteRefused(c, gin.H{
			"book":   check.Book.ToResponse(),
			"copies": copyResponses(check.Copies),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, bookListPath)
}
