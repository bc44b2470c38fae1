package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/shared/response"
)

type CatalogHandler struct {
	service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Home - GET /catalog
func (h *CatalogHandler) Home(c *gin.Context) {
	counts, err := h.service.Counts(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"title":  "Local Library Home",
		"counts": counts,
	})
}
