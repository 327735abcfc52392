package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/app/repositories"
)

// OrderStore is the order persistence surface the service needs.
type OrderStore interface {
	List(ctx context.Context, f repositories.OrderFilters, s repositories.OrderSort, offset, limit int) ([]models.Order, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, order *models.Order, status, paymentStatus string) error
}

var orderStatuses = map[string]bool{
	models.OrderStatusPending:    true,
	models.OrderStatusProcessing: true,
	models.OrderStatusShipped:    true,
	models.OrderStatusDelivered:  true,
	models.OrderStatusCancelled:  true,
}

var paymentStatuses = map[string]bool{
	models.PaymentStatusUnpaid:   true,
	models.PaymentStatusPaid:     true,
	models.PaymentStatusRefunded: true,
}

// OrderService handles order listing, placement, and status changes.
type OrderService struct {
	orders   OrderStore
	products ProductStore
}

func NewOrderService(orders OrderStore, products ProductStore) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// OrderPage is one page of the order listing.
type OrderPage struct {
	Items []models.Order
	Total int64
	Page  int
	Limit int
}

// orderSortColumns maps listing sort keys to order columns.
var orderSortColumns = map[string]string{
	"created_at":     "created_at",
	"total_amount":   "total_amount",
	"status":         "status",
	"payment_status": "payment_status",
}

// List returns a filtered, paginated order listing. Limit defaults to
// 50 and is clamped to [1, 100]; the sentinel "all" disables a status
// filter.
func (s *OrderService) List(ctx context.Context, q url.Values) (*OrderPage, error) {
	page := 1
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 1 {
		page = n
	}
	limit := 50
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		limit = n
		if limit < 1 {
			limit = 1
		}
		if limit > 100 {
			limit = 100
		}
	}

	f := repositories.OrderFilters{
		Status:        statusFilter(q.Get("status")),
		PaymentStatus: statusFilter(q.Get("payment_status")),
	}
	if id, err := strconv.ParseUint(q.Get("customer_id"), 10, 32); err == nil {
		f.CustomerID = uint(id)
	}

	sort := repositories.OrderSort{Column: "created_at", Direction: "DESC"}
	if col, ok := orderSortColumns[q.Get("sort")]; ok {
		sort.Column = col
	}
	if strings.EqualFold(q.Get("sort_order"), "asc") {
		sort.Direction = "ASC"
	}

	items, total, err := s.orders.List(ctx, f, sort, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &OrderPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func statusFilter(v string) string {
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

// Detail loads one order with its customer and items.
func (s *OrderService) Detail(ctx context.Context, id uint) (*models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// OrderLine is one requested product in a placement.
type OrderLine struct {
	ProductID uint `json:"product_id" validate:"required,gte=1"`
	Quantity  int  `json:"quantity" validate:"required,gte=1"`
}

// Place creates a pending order for the customer, pricing each line at
// the product's current price and checking stock.
func (s *OrderService) Place(ctx context.Context, customerID uint, lines []OrderLine) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	order := &models.Order{
		CustomerID:    customerID,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	}

	total := decimal.Zero
	for _, line := range lines {
		if line.ProductID == 0 {
			return nil, fmt.Errorf("each order item must name a product")
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("item quantity must be at least 1")
		}

		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < line.Quantity {
			return nil, fmt.Errorf("insufficient stock for %q", product.Name)
		}

		order.Items = append(order.Items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	order.TotalAmount = total

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return s.orders.FindByID(ctx, order.ID)
}

// UpdateStatus validates and applies a status change.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status, paymentStatus string) (*models.Order, error) {
	if !orderStatuses[status] {
		return nil, fmt.Errorf("invalid order status %q", status)
	}
	if paymentStatus != "" && !paymentStatuses[paymentStatus] {
		return nil, fmt.Errorf("invalid payment status %q", paymentStatus)
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, order, status, paymentStatus); err != nil {
		return nil, err
	}

	return s.orders.FindByID(ctx, id)
}
