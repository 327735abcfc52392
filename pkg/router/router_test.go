package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRoutes(t *testing.T) {
	r := New()
	r.Get("/products/{id}", "products.show", ok)

	path, found := r.Path("products.show")
	require.True(t, found)
	assert.Equal(t, "/products/{id}", path)

	url, err := r.URL("products.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/products/7", url)
}

func TestURLMissingParams(t *testing.T) {
	r := New()
	r.Get("/products/{id}", "products.show", ok)

	_, err := r.URL("products.show", nil)
	assert.Error(t, err)

	_, err = r.URL("nonexistent", nil)
	assert.Error(t, err)
}

func TestGroupPrefixes(t *testing.T) {
	r := New()
	api := r.Group("/api")
	products := api.Group("/products")
	products.Get("/menu", "products.menu", ok)
	products.Get("/", "products.index", ok)

	path, found := r.Path("products.menu")
	require.True(t, found)
	assert.Equal(t, "/api/products/menu", path)

	path, found = r.Path("products.index")
	require.True(t, found)
	assert.Equal(t, "/api/products", path)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/menu", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGroupMiddlewareApplies(t *testing.T) {
	var order []string

	mw := func(label string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, label)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	g := r.Group("/api", mw("group"))
	g.Get("/ping", "ping", ok, mw("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"group", "route"}, order)
}

func TestRoutesListing(t *testing.T) {
	r := New()
	r.Get("/a", "a", ok)
	r.Post("/b", "b", ok)

	infos := r.Routes()
	assert.Len(t, infos, 2)
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.Get("/only-get", "only.get", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/only-get", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
