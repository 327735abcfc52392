package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/app/repositories"
)

type mockOrderStore struct {
	created     *models.Order
	lastFilters repositories.OrderFilters
	lastSort    repositories.OrderSort
	lastLimit   int
	lastStatus  string
	lastPayment string
}

func (m *mockOrderStore) List(ctx context.Context, f repositories.OrderFilters, s repositories.OrderSort, offset, limit int) ([]models.Order, int64, error) {
	m.lastFilters = f
	m.lastSort = s
	m.lastLimit = limit
	return nil, 0, nil
}

func (m *mockOrderStore) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	if m.created != nil && m.created.ID == id {
		return m.created, nil
	}
	return nil, repositories.ErrOrderNotFound
}

func (m *mockOrderStore) Create(ctx context.Context, order *models.Order) error {
	order.ID = 1
	m.created = order
	return nil
}

func (m *mockOrderStore) UpdateStatus(ctx context.Context, order *models.Order, status, paymentStatus string) error {
	m.lastStatus = status
	m.lastPayment = paymentStatus
	return nil
}

func stockedProducts() *mockProductStore {
	croissant := sampleProduct(1, "Butter Croissant", "4.10")
	croissant.Stock = 5
	cake := sampleProduct(2, "Chocolate Fudge Cake", "24.99")
	cake.Stock = 2

	return &mockProductStore{byID: map[uint]*models.Product{
		1: &croissant,
		2: &cake,
	}}
}

func TestPlaceComputesTotal(t *testing.T) {
	orders := &mockOrderStore{}
	svc := NewOrderService(orders, stockedProducts())

	order, err := svc.Place(context.Background(), 7, []OrderLine{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), order.CustomerID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus)
	require.Len(t, order.Items, 2)

	// 3 * 4.10 + 1 * 24.99 = 37.29
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("37.29")),
		"got total %s", order.TotalAmount)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("4.10")))
}

func TestPlaceRejectsEmptyOrder(t *testing.T) {
	svc := NewOrderService(&mockOrderStore{}, stockedProducts())

	_, err := svc.Place(context.Background(), 7, nil)
	assert.Error(t, err)
}

func TestPlaceRejectsBadLines(t *testing.T) {
	tests := []struct {
		name string
		line OrderLine
	}{
		{"negative quantity", OrderLine{ProductID: 1, Quantity: -3}},
		{"zero quantity", OrderLine{ProductID: 1, Quantity: 0}},
		{"missing product id", OrderLine{Quantity: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &mockOrderStore{}
			svc := NewOrderService(orders, stockedProducts())

			_, err := svc.Place(context.Background(), 7, []OrderLine{tt.line})
			require.Error(t, err)
			assert.Nil(t, orders.created, "no order may be created")
		})
	}
}

func TestPlaceChecksStock(t *testing.T) {
	svc := NewOrderService(&mockOrderStore{}, stockedProducts())

	_, err := svc.Place(context.Background(), 7, []OrderLine{{ProductID: 2, Quantity: 10}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
}

func TestPlaceUnknownProduct(t *testing.T) {
	svc := NewOrderService(&mockOrderStore{}, stockedProducts())

	_, err := svc.Place(context.Background(), 7, []OrderLine{{ProductID: 42, Quantity: 1}})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestUpdateStatusValidates(t *testing.T) {
	orders := &mockOrderStore{created: &models.Order{ID: 1, Status: models.OrderStatusPending}}
	svc := NewOrderService(orders, stockedProducts())

	_, err := svc.UpdateStatus(context.Background(), 1, "teleported", "")
	assert.Error(t, err)

	_, err = svc.UpdateStatus(context.Background(), 1, models.OrderStatusShipped, "half-paid")
	assert.Error(t, err)

	_, err = svc.UpdateStatus(context.Background(), 1, models.OrderStatusShipped, models.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, orders.lastStatus)
	assert.Equal(t, models.PaymentStatusPaid, orders.lastPayment)
}

func TestOrderListFilters(t *testing.T) {
	orders := &mockOrderStore{}
	svc := NewOrderService(orders, stockedProducts())

	_, err := svc.List(context.Background(), map[string][]string{
		"status":         {"pending"},
		"payment_status": {"unpaid"},
		"customer_id":    {"3"},
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", orders.lastFilters.Status)
	assert.Equal(t, "unpaid", orders.lastFilters.PaymentStatus)
	assert.Equal(t, uint(3), orders.lastFilters.CustomerID)
	assert.Equal(t, 50, orders.lastLimit)
}

func TestOrderListClampsNonPositiveLimit(t *testing.T) {
	orders := &mockOrderStore{}
	svc := NewOrderService(orders, stockedProducts())

	_, err := svc.List(context.Background(), map[string][]string{"limit": {"0"}})
	require.NoError(t, err)
	assert.Equal(t, 1, orders.lastLimit)
}

func TestOrderListAllSentinelAndSort(t *testing.T) {
	orders := &mockOrderStore{}
	svc := NewOrderService(orders, stockedProducts())

	_, err := svc.List(context.Background(), map[string][]string{
		"status":         {"all"},
		"payment_status": {"All"},
		"sort":           {"total_amount"},
		"sort_order":     {"asc"},
		"limit":          {"500"},
	})

	require.NoError(t, err)
	assert.Empty(t, orders.lastFilters.Status)
	assert.Empty(t, orders.lastFilters.PaymentStatus)
	assert.Equal(t, "total_amount", orders.lastSort.Column)
	assert.Equal(t, "ASC", orders.lastSort.Direction)
	assert.Equal(t, 100, orders.lastLimit)
}

func TestOrderListRejectsUnknownSortColumn(t *testing.T) {
	orders := &mockOrderStore{}
	svc := NewOrderService(orders, stockedProducts())

	_, err := svc.List(context.Background(), map[string][]string{
		"sort": {"customer_id; DROP TABLE orders"},
	})

	require.NoError(t, err)
	assert.Equal(t, "created_at", orders.lastSort.Column)
	assert.Equal(t, "DESC", orders.lastSort.Direction)
}
