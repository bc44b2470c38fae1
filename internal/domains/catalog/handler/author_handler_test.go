package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/domains/catalog/model"
	"library-catalog-backend/internal/domains/catalog/repository"
	"library-catalog-backend/internal/domains/catalog/service"
)

func newAuthorRouter(t *testing.T) (*gin.Engine, *repository.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	h := NewAuthorHandler(service.NewAuthorService(store.Authors(), store.Books()))

	r := gin.New()
	r.GET("/catalog/authors", h.List)
	r.POST("/catalog/author/create", h.Create)
	r.GET("/catalog/author/:id", h.Detail)
	r.GET("/catalog/author/:id/delete", h.DeleteCheck)
	r.POST("/catalog/author/:id/delete", h.Delete)
	return r, store
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorCreateRedirectsToDetail(t *testing.T) {
	r, store := newAuthorRouter(t)

	w := postForm(r, "/catalog/author/create", url.Values{
		"first_name":  {"Frank"},
		"family_name": {"Herbert"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)

	authors, err := store.Authors().List(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "/catalog/author/"+authors[0].ID.String(), w.Header().Get("Location"))
}

func TestAuthorCreateValidationFailure(t *testing.T) {
	r, store := newAuthorRouter(t)

	w := postForm(r, "/catalog/author/create", url.Values{
		"first_name": {"Frank"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, w.Body.String(), "Family name must be specified")
	// The sanitized candidate rides along for form redisplay.
	assert.Contains(t, w.Body.String(), "Frank")

	authors, err := store.Authors().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, authors)
}

func TestAuthorDetailNotFound(t *testing.T) {
	r, _ := newAuthorRouter(t)

	// Malformed and unknown identifiers both read as not found.
	for _, id := range []string{"garbage", "4e1a8b5e-0000-4000-8000-000000000000"} {
		req := httptest.NewRequest(http.MethodGet, "/catalog/author/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	}
}

func TestAuthorDeleteRefusedWithDependents(t *testing.T) {
	r, store := newAuthorRouter(t)

	author, err := store.Authors().Insert(context.Background(), &model.Author{FirstName: "Frank", FamilyName: "Herbert"})
	require.NoError(t, err)
	_, err = store.Books().Insert(context.Background(), &model.Book{Title: "Dune", AuthorID: author.ID})
	require.NoError(t, err)

	w := postForm(r, "/catalog/author/"+author.ID.String()+"/delete", url.Values{})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INTEGRITY_CONFLICT")

	// Still there.
	_, err = store.Authors().GetByID(context.Background(), author.ID)
	assert.NoError(t, err)
}

func TestAuthorDeleteMissingRedirectsToList(t *testing.T) {
	r, _ := newAuthorRouter(t)

	w := postForm(r, "/catalog/author/garbage/delete", url.Values{})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalog/authors", w.Header().Get("Location"))
}
