package services

import (
	"context"
	"errors"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/pkg/auth"
)

// ErrInvalidCredentials means the password did not match. An unknown
// email surfaces as repositories.ErrCustomerNotFound instead.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CustomerStore is the customer persistence surface auth needs.
type CustomerStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindByID(ctx context.Context, id uint) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
}

// TokenPair is an access token plus its longer-lived refresh token.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService handles signup, login, and token refresh.
type AuthService struct {
	customers CustomerStore
}

func NewAuthService(customers CustomerStore) *AuthService {
	return &AuthService{customers: customers}
}

// SignupInput is the registration payload.
type SignupInput struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email,max=150"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Phone    *string `json:"phone" validate:"required,max=20"`
	Address  *string `json:"address" validate:"nullable,max=255"`
}

// Signup registers a customer and returns it with a fresh token pair.
// Duplicate emails surface as repositories.ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.Customer, *TokenPair, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}

	customer := &models.Customer{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Phone:    in.Phone,
		Address:  in.Address,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, nil, err
	}

	pair, err := s.tokens(customer)
	if err != nil {
		return nil, nil, err
	}
	return customer, pair, nil
}

// Login verifies credentials and returns the customer with tokens.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Customer, *TokenPair, error) {
	customer, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if !auth.CheckPassword(customer.Password, password) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.tokens(customer)
	if err != nil {
		return nil, nil, err
	}
	return customer, pair, nil
}

// Refresh validates a refresh token and issues a new token pair for
// the customer it names.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := auth.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.FindByID(ctx, claims.CustomerID)
	if err != nil {
		return nil, err
	}

	return s.tokens(customer)
}

// Profile loads the customer a set of claims refers to.
func (s *AuthService) Profile(ctx context.Context, customerID uint) (*models.Customer, error) {
	return s.customers.FindByID(ctx, customerID)
}

func (s *AuthService) tokens(c *models.Customer) (*TokenPair, error) {
	token, err := auth.GenerateToken(c.ID, c.Email, c.Name)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateRefreshToken(c.ID, c.Email, c.Name)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Token: token, RefreshToken: refresh}, nil
}
