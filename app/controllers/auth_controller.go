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

// AuthController serves login, refresh, logout, and the token
// holder's own profile.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{auth: authService}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, "Validation failed", errs)
		return
	}

	customer, tokens, err := c.auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			response.NotFound(w, "Customer not found")
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid credentials")
			return
		}
		response.Fault(w, "Login failed", err)
		return
	}

	response.Success(w, map[string]interface{}{
		"customer":      customer,
		"token":         tokens.Token,
		"refresh_token": tokens.RefreshToken,
	})
}

type refreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh handles POST /api/auth/refresh.
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, "Validation failed", errs)
		return
	}

	tokens, err := c.auth.Refresh(r.Context(), in.RefreshToken)
	if err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	response.Success(w, tokens)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so this
// only acknowledges; clients drop their copies.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	response.Message(w, "Logged out")
}

// Profile handles GET /api/auth/profile for the token holder.
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "No token provided")
		return
	}

	customer, err := c.auth.Profile(r.Context(), claims.CustomerID)
	if err != nil {
		response.Fault(w, "Failed to fetch profile", err)
		return
	}

	response.Success(w, customer)
}
