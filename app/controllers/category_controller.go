package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/app/repositories"
	"github.com/ovenlight/bakehouse/app/services"
	"github.com/ovenlight/bakehouse/pkg/cache"
	"github.com/ovenlight/bakehouse/pkg/response"
)

const (
	categoryMenuCacheKey = "categories:menu"
	categoryMenuCacheTTL = 5 * time.Minute
)

// CategoryController serves category listing endpoints.
type CategoryController struct {
	categories services.CategoryStore
}

func NewCategoryController(categories services.CategoryStore) *CategoryController {
	return &CategoryController{categories: categories}
}

// All handles GET /api/categories — categories with their products.
func (c *CategoryController) All(w http.ResponseWriter, r *http.Request) {
	categories, err := c.categories.All(r.Context())
	if err != nil {
		response.Fault(w, "Failed to fetch categories", err)
		return
	}
	response.List(w, categories, len(categories))
}

// Menu handles GET /api/categories/menu — the lightweight name list,
// cached in redis for a few minutes.
func (c *CategoryController) Menu(w http.ResponseWriter, r *http.Request) {
	var cached []models.Category
	if cache.Get(categoryMenuCacheKey, &cached) {
		response.List(w, cached, len(cached))
		return
	}

	categories, err := c.categories.Names(r.Context())
	if err != nil {
		response.Fault(w, "Failed to fetch categories", err)
		return
	}

	cache.Set(categoryMenuCacheKey, categories, categoryMenuCacheTTL) //nolint:errcheck

	response.List(w, categories, len(categories))
}

// ByID handles GET /api/categories/{id}.
func (c *CategoryController) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	category, err := c.categories.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			response.NotFound(w, "Category not found")
			return
		}
		response.Fault(w, "Failed to fetch category", err)
		return
	}

	response.Success(w, category)
}
