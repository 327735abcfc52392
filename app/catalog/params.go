// Package catalog holds the pure query-building and transformation
// logic behind the product listing endpoints: parameter normalization,
// filter clauses, sort resolution, and response shaping. It has no
// database dependency, which keeps every rule unit-testable.
package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// Listing variants. Each endpoint applies the same filters but differs
// in pagination, allowed sort keys, and response shape.
type Variant int

const (
	// VariantGeneral is the paginated storefront listing.
	VariantGeneral Variant = iota
	// VariantMenu is the lightweight unpaginated menu listing.
	VariantMenu
	// VariantAdmin is the unpaginated admin listing with stock sorts.
	VariantAdmin
)

func (v Variant) String() string {
	switch v {
	case VariantMenu:
		return "menu"
	case VariantAdmin:
		return "admin"
	default:
		return "general"
	}
}

// Pagination bounds for the general listing.
const (
	DefaultLimit = 36
	MaxLimit     = 100
)

// CategoryAll is the sentinel category value meaning "no filter".
const CategoryAll = "all"

// Params is the normalized query input for a listing request.
type Params struct {
	Variant    Variant
	Page       int
	Limit      int
	Category   string // category name; wins over CategoryID when set
	CategoryID uint
	Search     string
	MinPrice   string // raw values; empty when absent
	MaxPrice   string
	Price      string // named price bucket
	Sort       string
	SortOrder  string
}

// ParseParams normalizes raw query values for the given variant.
// Page defaults to 1 and is floored at 1; limit defaults to 36, and an
// explicit numeric limit is clamped to [1, 100]. Menu and admin
// listings ignore pagination.
func ParseParams(q url.Values, v Variant) Params {
	p := Params{
		Variant:   v,
		Page:      1,
		Limit:     DefaultLimit,
		Category:  strings.TrimSpace(q.Get("category")),
		Search:    strings.TrimSpace(q.Get("search")),
		MinPrice:  strings.TrimSpace(q.Get("min_price")),
		MaxPrice:  strings.TrimSpace(q.Get("max_price")),
		Price:     strings.TrimSpace(q.Get("price")),
		Sort:      strings.TrimSpace(q.Get("sort")),
		SortOrder: strings.TrimSpace(q.Get("sort_order")),
	}

	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 1 {
		p.Page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		p.Limit = n
		if p.Limit < 1 {
			p.Limit = 1
		}
		if p.Limit > MaxLimit {
			p.Limit = MaxLimit
		}
	}

	if id, err := strconv.ParseUint(q.Get("category_id"), 10, 32); err == nil {
		p.CategoryID = uint(id)
	}

	return p
}

// Paginated reports whether this variant pages its results.
func (p Params) Paginated() bool { return p.Variant == VariantGeneral }

// Offset returns the row offset for the current page.
func (p Params) Offset() int { return (p.Page - 1) * p.Limit }

// WantsCategoryName reports whether a category-name filter applies.
// The sentinel "all" (any case) means no filter.
func (p Params) WantsCategoryName() bool {
	return p.Category != "" && !strings.EqualFold(p.Category, CategoryAll)
}
