package controllers

import (
	"errors"
	"net/http"

	"github.com/ovenlight/bakehouse/app/repositories"
	"github.com/ovenlight/bakehouse/app/services"
	"github.com/ovenlight/bakehouse/pkg/auth"
	"github.com/ovenlight/bakehouse/pkg/bind"
	"github.com/ovenlight/bakehouse/pkg/response"
)

// OrderController serves order listing, placement, and status updates.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// List handles GET /api/orders.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	page, err := c.orders.List(r.Context(), r.URL.Query())
	if err != nil {
		response.Fault(w, "Failed to fetch orders", err)
		return
	}

	response.Paginated(w, page.Items, len(page.Items),
		response.NewPagination(page.Page, page.Limit, page.Total))
}

// Detail handles GET /api/orders/{id}.
func (c *OrderController) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := c.orders.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			response.NotFound(w, "Order not found")
			return
		}
		response.Fault(w, "Failed to fetch order", err)
		return
	}

	response.Success(w, order)
}

type placeOrderInput struct {
	Items []services.OrderLine `json:"items" validate:"required"`
}

// Place handles POST /api/orders for the authenticated customer.
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	var in placeOrderInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, "Validation failed", errs)
		return
	}

	order, err := c.orders.Place(r.Context(), claims.CustomerID, in.Items)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	response.Created(w, "Order placed", order)
}

type statusInput struct {
	Status        string `json:"status" validate:"required"`
	PaymentStatus string `json:"payment_status"`
}

// UpdateStatus handles PUT /api/orders/{id}/status.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var in statusInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, "Validation failed", errs)
		return
	}

	order, err := c.orders.UpdateStatus(r.Context(), id, in.Status, in.PaymentStatus)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			response.NotFound(w, "Order not found")
			return
		}
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	response.Success(w, order)
}
