package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenlight/bakehouse/app/controllers"
	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/app/repositories"
	"github.com/ovenlight/bakehouse/app/services"
	"github.com/ovenlight/bakehouse/pkg/middleware"
)

const testBaseURL = "http://localhost:5001"

type stubProductStore struct {
	items []models.Product
	total int64
	byID  map[uint]*models.Product
}

func (s *stubProductStore) List(ctx context.Context, opts repositories.ListOptions) ([]models.Product, int64, error) {
	return s.items, s.total, nil
}

func (s *stubProductStore) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrProductNotFound
}

func (s *stubProductStore) Create(ctx context.Context, p *models.Product) error { return nil }
func (s *stubProductStore) Update(ctx context.Context, p *models.Product) error { return nil }
func (s *stubProductStore) Delete(ctx context.Context, p *models.Product) error { return nil }

type stubCategoryStore struct {
	byName map[string]*models.Category
}

func (s *stubCategoryStore) FindByName(ctx context.Context, name string) (*models.Category, error) {
	if c, ok := s.byName[name]; ok {
		return c, nil
	}
	return nil, repositories.ErrCategoryNotFound
}

func (s *stubCategoryStore) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	return nil, repositories.ErrCategoryNotFound
}

func (s *stubCategoryStore) All(ctx context.Context) ([]models.Category, error)   { return nil, nil }
func (s *stubCategoryStore) Names(ctx context.Context) ([]models.Category, error) { return nil, nil }

// apiEnvelope mirrors the JSON envelope for assertions.
type apiEnvelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Count      *int            `json:"count"`
	Pagination *struct {
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
		Pages int   `json:"pages"`
	} `json:"pagination"`
}

func newTestRouter(products *stubProductStore, categories *stubCategoryStore) http.Handler {
	svc := services.NewCatalogService(products, categories, testBaseURL)
	ctrl := controllers.NewProductController(svc)

	r := chi.NewRouter()
	r.Get("/api/products", ctrl.List)
	r.Get("/api/products/menu", ctrl.Menu)
	r.With(middleware.Auth).Get("/api/products/admin", ctrl.Admin)
	r.Get("/api/products/{id}", ctrl.Detail)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func catalogFixture() *stubProductStore {
	img := "/uploads/products/sourdough.jpg"
	desc := "Naturally leavened."
	product := models.Product{
		ID:          1,
		Name:        "Sourdough Loaf",
		Description: &desc,
		Price:       decimal.RequireFromString("6.50"),
		Stock:       30,
		ImgURL:      &img,
		Category:    &models.Category{ID: 2, Name: "Breads"},
		Reviews:     []models.Review{{Rating: 5}, {Rating: 4}},
	}

	return &stubProductStore{
		items: []models.Product{product},
		total: 73,
		byID:  map[uint]*models.Product{1: &product},
	}
}

func TestListEnvelope(t *testing.T) {
	h := newTestRouter(catalogFixture(), &stubCategoryStore{})

	rec, env := doRequest(t, h, http.MethodGet, "/api/products?page=2&limit=10")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 10, env.Pagination.Limit)
	assert.Equal(t, int64(73), env.Pagination.Total)
	assert.Equal(t, 8, env.Pagination.Pages) // ceil(73/10)

	var data []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "Sourdough Loaf", data[0]["name"])
	assert.Equal(t, "Breads", data[0]["category"])
	assert.Equal(t, testBaseURL+"/uploads/products/sourdough.jpg", data[0]["img_url"])
	assert.Equal(t, 4.5, data[0]["rating"])
}

func TestListUnknownCategoryIsEmptySuccess(t *testing.T) {
	h := newTestRouter(catalogFixture(), &stubCategoryStore{})

	rec, env := doRequest(t, h, http.MethodGet, "/api/products?category=Gadgets")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 0, *env.Count)
	assert.Equal(t, "[]", string(env.Data))

	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(0), env.Pagination.Total)
	assert.Equal(t, 0, env.Pagination.Pages)
}

func TestListCategoryAllSentinel(t *testing.T) {
	h := newTestRouter(catalogFixture(), &stubCategoryStore{})

	rec, env := doRequest(t, h, http.MethodGet, "/api/products?category=all")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
}

func TestMenuEnvelope(t *testing.T) {
	h := newTestRouter(catalogFixture(), &stubCategoryStore{})

	rec, env := doRequest(t, h, http.MethodGet, "/api/products/menu")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Nil(t, env.Pagination, "menu listing is unpaginated")

	var data []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.NotContains(t, data[0], "stock", "menu shape is minimal")
	assert.NotContains(t, data[0], "rating")
}

func TestDetailFound(t *testing.T) {
	h := newTestRouter(catalogFixture(), &stubCategoryStore{})

	rec, env := doRequest(t, h, http.MethodGet, "/api/products/1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Sourdough Loaf", data["name"])

	thumbs, ok := data["thumbnails"].(map[string]interface{})
	require.True(t, ok, "thumbnail slots live under a thumbnails object")
	assert.Contains(t, thumbs, "thumbnail_img_1")
	assert.NotContains(t, data, "thumbnail_img_1")
}

func TestDetailNotFound(t *testing.T) {
	h := newTestRouter(catalogFixture(), &stubCategoryStore{})

	rec, env := doRequest(t, h, http.MethodGet, "/api/products/999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Product not found", env.Message)
}

func TestDetailInvalidID(t *testing.T) {
	h := newTestRouter(catalogFixture(), &stubCategoryStore{})

	rec, env := doRequest(t, h, http.MethodGet, "/api/products/banana")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestAdminRequiresToken(t *testing.T) {
	h := newTestRouter(catalogFixture(), &stubCategoryStore{})

	rec, env := doRequest(t, h, http.MethodGet, "/api/products/admin")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "No token provided", env.Message)
}
