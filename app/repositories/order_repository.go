package repositories

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/models"
)

// OrderFilters narrows the order listing. Zero values mean no filter.
type OrderFilters struct {
	Status        string
	PaymentStatus string
	CustomerID    uint
}

// OrderSort orders the order listing. Column and Direction come from
// the service's fixed sort table, never from raw request input.
type OrderSort struct {
	Column    string
	Direction string
}

// OrderRepository is the GORM-backed order store.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List returns one page of orders plus the total count for the same
// filters. Fetch and count run concurrently.
func (r *OrderRepository) List(ctx context.Context, f OrderFilters, s OrderSort, offset, limit int) ([]models.Order, int64, error) {
	var (
		orders []models.Order
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.filtered(gctx, f).
			Preload("Customer").
			Preload("Items").
			Preload("Items.Product").
			Order(fmt.Sprintf("%s %s", s.Column, s.Direction)).
			Offset(offset).
			Limit(limit).
			Find(&orders).Error
	})

	g.Go(func() error {
		return r.filtered(gctx, f).Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("order list: %w", err)
	}

	return orders, total, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("order find %d: %w", id, err)
	}
	return &order, nil
}

// Create inserts the order and its items in one transaction.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("order create: %w", err)
	}
	return nil
}

// UpdateStatus sets the order status and, when paymentStatus is
// non-empty, the payment status too.
func (r *OrderRepository) UpdateStatus(ctx context.Context, order *models.Order, status, paymentStatus string) error {
	updates := map[string]interface{}{"status": status}
	if paymentStatus != "" {
		updates["payment_status"] = paymentStatus
	}

	err := r.db.WithContext(ctx).Model(order).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("order update %d: %w", order.ID, err)
	}
	return nil
}

func (r *OrderRepository) filtered(ctx context.Context, f OrderFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.CustomerID > 0 {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	return q
}
