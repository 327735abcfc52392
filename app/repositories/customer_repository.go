package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/models"
)

// CustomerRepository is the GORM-backed customer store.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) All(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("customer list: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("customer find %d: %w", id, err)
	}
	return &customer, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("customer find %q: %w", email, err)
	}
	return &customer, nil
}

// Create inserts a new customer. A duplicate email maps to
// ErrEmailTaken so signup can return a clean 409.
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if _, err := r.FindByEmail(ctx, customer.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, ErrCustomerNotFound) {
		return err
	}

	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("customer create: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return fmt.Errorf("customer update %d: %w", customer.ID, err)
	}
	return nil
}
