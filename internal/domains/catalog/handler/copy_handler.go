package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/shared/response"
)

type CopyHandler struct {
	service catalog.CopyService
}

func NewCopyHandler(svc catalog.CopyService) *CopyHandler {
	return &CopyHandler{service: svc}
}

const copyListPath = "/catalog/bookinstances"

// List - GET /catalog/bookinstances
func (h *CopyHandler) List(c *gin.Context) {
	copies, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, copyResponses(copies))
}

// Detail - GET /catalog/bookinstance/:id
func (h *CopyHandler) Detail(c *gin.Context) {
	cp, err := h.service.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if catalog.IsNotFound(err) {
			response.NotFound(c, "Book copy not found")
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}
	response.Success(c, http.StatusOK, cp.ToResponse())
}

// FormOptions - GET /catalog/bookinstance/create
func (h *CopyHandler) FormOptions(c *gin.Context) {
	books, err := h.service.FormOptions(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"books": bookResponses(books)})
}

// Create - POST /catalog/bookinstance/create
func (h *CopyHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cp, fieldErrs, err := h.service.Create(c.Request.Context(), c.Request.PostForm)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if len(fieldErrs) > 0 {
		validationFailed(c, cp.ToResponse(), fieldErrs)
		return
	}

	c.Redirect(http.StatusSeeOther, cp.URL())
}

// Update - POST /catalog/bookinstance/:id/update
func (h *CopyHandler) Update(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cp, fieldErrs, err := h.service.Update(c.Request.Context(), c.Param("id"), c.Request.PostForm)
	if err != nil {
		if catalog.IsNotFound(err) {
			response.NotFound(c, "Book copy not found")
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}
	if len(fieldErrs) > 0 {
		validationFailed(c, cp.ToResponse(), fieldErrs)
		return
	}

	c.Redirect(http.StatusSeeOther, cp.URL())
}

// Delete - POST /catalog/bookinstance/:id/delete
//
// Copies have no dependents, so the delete is unconditional and always
// lands back on the list.
func (h *CopyHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, copyListPath)
}
