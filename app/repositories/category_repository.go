package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/models"
)

// CategoryRepository is the GORM-backed category store.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// All returns every category with its products, ordered by name.
func (r *CategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Products").
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("category list: %w", err)
	}
	return categories, nil
}

// Names returns categories without their products, ordered by name.
// Used by the cached menu endpoint.
func (r *CategoryRepository) Names(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("category names: %w", err)
	}
	return categories, nil
}

// FindByName resolves a category by name, case-insensitively.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("category find %q: %w", name, err)
	}
	return &category, nil
}

// FindByID loads one category with its products.
func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("Products").
		First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("category find %d: %w", id, err)
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("category create: %w", err)
	}
	return nil
}
