package repositories

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/catalog"
	"github.com/ovenlight/bakehouse/app/models"
)

// ListOptions is the repository-level input for a listing query,
// already resolved from request parameters.
type ListOptions struct {
	Clauses  []catalog.Clause
	Ordering catalog.Ordering
	Offset   int
	Limit    int
	Paginate bool
}

// ProductRepository is the GORM-backed product store.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List fetches one page of products plus the total row count for the
// same filters. The page fetch and the count run concurrently.
//
// Associations are eager-loaded so the transform can compute rating
// and favorite aggregates without extra queries. A rating sort joins
// reviews and groups by product to order on the average rating.
func (r *ProductRepository) List(ctx context.Context, opts ListOptions) ([]models.Product, int64, error) {
	var (
		items []models.Product
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		q := applyClauses(r.db.WithContext(gctx).Model(&models.Product{}), opts.Clauses).
			Preload("Category").
			Preload("Reviews").
			Preload("Favorites")

		if opts.Ordering.ByRating {
			q = q.Joins("LEFT JOIN reviews ON reviews.product_id = products.id").
				Group("products.id").
				Order("AVG(reviews.rating) " + opts.Ordering.Direction)
		} else {
			q = q.Order(fmt.Sprintf("products.%s %s", opts.Ordering.Column, opts.Ordering.Direction))
		}

		if opts.Paginate {
			q = q.Offset(opts.Offset).Limit(opts.Limit)
		}

		return q.Find(&items).Error
	})

	g.Go(func() error {
		q := applyClauses(r.db.WithContext(gctx).Model(&models.Product{}), opts.Clauses)
		return q.Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("product list: %w", err)
	}

	return items, total, nil
}

// FindByID loads one product with its category, reviews, and favorites.
func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Reviews").
		Preload("Favorites").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("product find %d: %w", id, err)
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("product create: %w", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("product update %d: %w", product.ID, err)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Delete(product).Error; err != nil {
		return fmt.Errorf("product delete %d: %w", product.ID, err)
	}
	return nil
}

// applyClauses translates tagged filter clauses to WHERE conditions.
// Field names come from the catalog package's fixed clause builders,
// never from raw request input.
func applyClauses(q *gorm.DB, clauses []catalog.Clause) *gorm.DB {
	for _, c := range clauses {
		col := "products." + c.Field
		switch c.Op {
		case catalog.OpEq:
			q = q.Where(col+" = ?", c.Value)
		case catalog.OpLike:
			q = q.Where("LOWER("+col+") LIKE LOWER(?)", c.Value)
		case catalog.OpLt:
			q = q.Where(col+" < ?", c.Value)
		case catalog.OpLte:
			q = q.Where(col+" <= ?", c.Value)
		case catalog.OpGt:
			q = q.Where(col+" > ?", c.Value)
		case catalog.OpGte:
			q = q.Where(col+" >= ?", c.Value)
		}
	}
	return q
}
