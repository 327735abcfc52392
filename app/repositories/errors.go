package repositories

import "errors"

// Sentinel errors returned by the repository layer. Services and
// controllers branch on these with errors.Is.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmailTaken       = errors.New("email already registered")
)
