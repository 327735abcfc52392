package services

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/ovenlight/bakehouse/app/catalog"
	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/app/repositories"
	"github.com/ovenlight/bakehouse/pkg/metrics"
)

// ProductStore is the product persistence surface the catalog needs.
// *repositories.ProductRepository satisfies it; tests substitute mocks.
type ProductStore interface {
	List(ctx context.Context, opts repositories.ListOptions) ([]models.Product, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, product *models.Product) error
}

// CategoryStore resolves category filters for listings.
type CategoryStore interface {
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	All(ctx context.Context) ([]models.Category, error)
	Names(ctx context.Context) ([]models.Category, error)
}

// ListResult is one page of the general product listing.
type ListResult struct {
	Items []catalog.Product
	Total int64
	Page  int
	Limit int
}

// CatalogService implements the product listing, detail, and admin
// CRUD operations.
type CatalogService struct {
	products   ProductStore
	categories CategoryStore
	baseURL    string
}

func NewCatalogService(products ProductStore, categories CategoryStore, baseURL string) *CatalogService {
	return &CatalogService{products: products, categories: categories, baseURL: baseURL}
}

// List serves the paginated storefront listing. Filtering by an
// unknown category name degrades to an empty page, not an error.
func (s *CatalogService) List(ctx context.Context, q url.Values) (*ListResult, error) {
	defer observe(catalog.VariantGeneral, time.Now())

	p := catalog.ParseParams(q, catalog.VariantGeneral)

	clauses, known, err := s.resolveFilters(ctx, p)
	if err != nil {
		return nil, err
	}
	if !known {
		return &ListResult{Items: []catalog.Product{}, Page: p.Page, Limit: p.Limit}, nil
	}

	items, total, err := s.products.List(ctx, repositories.ListOptions{
		Clauses:  clauses,
		Ordering: catalog.ResolveSort(p.Sort, p.SortOrder, p.Variant),
		Offset:   p.Offset(),
		Limit:    p.Limit,
		Paginate: true,
	})
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Items: catalog.TransformAll(items, s.baseURL),
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// Menu serves the unpaginated menu listing in its minimal shape.
func (s *CatalogService) Menu(ctx context.Context, q url.Values) ([]catalog.MenuProduct, error) {
	defer observe(catalog.VariantMenu, time.Now())

	p := catalog.ParseParams(q, catalog.VariantMenu)

	clauses, known, err := s.resolveFilters(ctx, p)
	if err != nil {
		return nil, err
	}
	if !known {
		return []catalog.MenuProduct{}, nil
	}

	items, _, err := s.products.List(ctx, repositories.ListOptions{
		Clauses:  clauses,
		Ordering: catalog.ResolveSort(p.Sort, p.SortOrder, p.Variant),
	})
	if err != nil {
		return nil, err
	}

	return catalog.TransformAllMenu(items, s.baseURL), nil
}

// Admin serves the unpaginated admin listing with stock sorts.
func (s *CatalogService) Admin(ctx context.Context, q url.Values) ([]catalog.Product, error) {
	defer observe(catalog.VariantAdmin, time.Now())

	p := catalog.ParseParams(q, catalog.VariantAdmin)

	clauses, known, err := s.resolveFilters(ctx, p)
	if err != nil {
		return nil, err
	}
	if !known {
		return []catalog.Product{}, nil
	}

	items, _, err := s.products.List(ctx, repositories.ListOptions{
		Clauses:  clauses,
		Ordering: catalog.ResolveSort(p.Sort, p.SortOrder, p.Variant),
	})
	if err != nil {
		return nil, err
	}

	return catalog.TransformAll(items, s.baseURL), nil
}

// Detail returns one transformed product. Missing products surface as
// repositories.ErrProductNotFound.
func (s *CatalogService) Detail(ctx context.Context, id uint) (*catalog.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t := catalog.Transform(*product, s.baseURL)
	return &t, nil
}

// Create persists a new product and returns the transformed result.
func (s *CatalogService) Create(ctx context.Context, product *models.Product) (*catalog.Product, error) {
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return s.Detail(ctx, product.ID)
}

// Update persists product changes and returns the transformed result.
func (s *CatalogService) Update(ctx context.Context, product *models.Product) (*catalog.Product, error) {
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.Detail(ctx, product.ID)
}

// Delete removes a product by id.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.products.Delete(ctx, product)
}

// Find loads the raw model for edit flows.
func (s *CatalogService) Find(ctx context.Context, id uint) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// resolveFilters builds the clause list. A category name filter wins
// over category_id; a name that matches nothing returns known=false so
// callers can serve an empty result. The menu listing matches by name
// only and never falls back to category_id.
func (s *CatalogService) resolveFilters(ctx context.Context, p catalog.Params) (clauses []catalog.Clause, known bool, err error) {
	var categoryID *uint

	switch {
	case p.WantsCategoryName():
		category, err := s.categories.FindByName(ctx, p.Category)
		if err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, false, nil
			}
			return nil, false, err
		}
		categoryID = &category.ID
	case p.CategoryID > 0 && p.Variant != catalog.VariantMenu:
		categoryID = &p.CategoryID
	}

	return catalog.BuildClauses(p, categoryID), true, nil
}

func observe(v catalog.Variant, start time.Time) {
	metrics.CatalogListDuration.WithLabelValues(v.String()).Observe(time.Since(start).Seconds())
}
