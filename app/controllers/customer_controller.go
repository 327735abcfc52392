package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/app/repositories"
	"github.com/ovenlight/bakehouse/app/services"
	"github.com/ovenlight/bakehouse/pkg/auth"
	"github.com/ovenlight/bakehouse/pkg/bind"
	"github.com/ovenlight/bakehouse/pkg/response"
)

// customerStore is the persistence surface this controller needs
// beyond what AuthService exposes.
type customerStore interface {
	All(ctx context.Context) ([]models.Customer, error)
	FindByID(ctx context.Context, id uint) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
}

// CustomerController serves signup and profile management.
type CustomerController struct {
	auth      *services.AuthService
	customers customerStore
}

func NewCustomerController(authService *services.AuthService, customers customerStore) *CustomerController {
	return &CustomerController{auth: authService, customers: customers}
}

// Signup handles POST /api/customers/signup.
func (c *CustomerController) Signup(w http.ResponseWriter, r *http.Request) {
	var in services.SignupInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, "Validation failed", errs)
		return
	}

	customer, tokens, err := c.auth.Signup(r.Context(), in)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			response.Error(w, http.StatusConflict, "Email already registered")
			return
		}
		response.Fault(w, "Signup failed", err)
		return
	}

	response.Created(w, "Account created", map[string]interface{}{
		"customer":      customer,
		"token":         tokens.Token,
		"refresh_token": tokens.RefreshToken,
	})
}

// All handles GET /api/customers.
func (c *CustomerController) All(w http.ResponseWriter, r *http.Request) {
	customers, err := c.customers.All(r.Context())
	if err != nil {
		response.Fault(w, "Failed to fetch customers", err)
		return
	}
	response.List(w, customers, len(customers))
}

// Profile handles GET /api/customers/profile/{id}. Customers can only
// read their own profile.
func (c *CustomerController) Profile(w http.ResponseWriter, r *http.Request) {
	customer, ok := c.authorizedCustomer(w, r)
	if !ok {
		return
	}
	response.Success(w, customer)
}

type profileInput struct {
	Name    *string `json:"name" validate:"nullable,min=2,max=100"`
	Phone   *string `json:"phone" validate:"nullable,max=20"`
	Address *string `json:"address" validate:"nullable,max=255"`
}

// UpdateProfile handles PUT /api/customers/profile/{id}.
func (c *CustomerController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	customer, ok := c.authorizedCustomer(w, r)
	if !ok {
		return
	}

	var in profileInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, "Validation failed", errs)
		return
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		customer.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		customer.Phone = in.Phone
	}
	if in.Address != nil {
		customer.Address = in.Address
	}

	if err := c.customers.Update(r.Context(), customer); err != nil {
		response.Fault(w, "Failed to update profile", err)
		return
	}

	response.Success(w, customer)
}

// Avatar handles POST /api/customers/profile/{id}/avatar (multipart).
func (c *CustomerController) Avatar(w http.ResponseWriter, r *http.Request) {
	customer, ok := c.authorizedCustomer(w, r)
	if !ok {
		return
	}

	if err := bind.Multipart(r); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	path, err := saveUpload(r, "avatar", "avatars")
	if err != nil {
		response.Fault(w, "Failed to store avatar", err)
		return
	}
	if path == nil {
		response.Error(w, http.StatusBadRequest, "The avatar file is required.")
		return
	}

	customer.Avatar = path
	if err := c.customers.Update(r.Context(), customer); err != nil {
		response.Fault(w, "Failed to update profile", err)
		return
	}

	response.Success(w, customer)
}

// authorizedCustomer loads the profile named by {id} after checking it
// belongs to the token holder. Writes the error response on failure.
func (c *CustomerController) authorizedCustomer(w http.ResponseWriter, r *http.Request) (*models.Customer, bool) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer id")
		return nil, false
	}

	claims, ok := auth.FromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "No token provided")
		return nil, false
	}
	if claims.CustomerID != id {
		response.Forbidden(w)
		return nil, false
	}

	customer, err := c.customers.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			response.NotFound(w, "Customer not found")
			return nil, false
		}
		response.Fault(w, "Failed to fetch customer", err)
		return nil, false
	}

	return customer, true
}
