package catalog

import (
	"strconv"
)

// Op tags a comparison in a filter clause.
type Op string

const (
	OpEq   Op = "eq"
	OpLike Op = "like" // case-insensitive substring match
	OpLt   Op = "lt"
	OpLte  Op = "lte"
	OpGt   Op = "gt"
	OpGte  Op = "gte"
)

// Clause is one filter predicate. Clauses are combined with AND by the
// repository layer, which owns the translation to SQL.
type Clause struct {
	Field string
	Op    Op
	Value interface{}
}

// Named price buckets for the storefront filter widget.
const (
	PriceUnder10 = "under10"
	Price10To20  = "10to20"
	PriceOver20  = "over20"
)

// BuildClauses derives the filter clause list from normalized params.
// categoryID, when non-nil, is the already-resolved category filter
// (by name or by id; the caller handles name resolution and its
// precedence over category_id).
//
// Explicit min_price/max_price take precedence over the named price
// bucket; an unrecognized bucket is a no-op.
func BuildClauses(p Params, categoryID *uint) []Clause {
	var clauses []Clause

	if categoryID != nil {
		clauses = append(clauses, Clause{Field: "category_id", Op: OpEq, Value: *categoryID})
	}

	if p.Search != "" {
		clauses = append(clauses, Clause{Field: "name", Op: OpLike, Value: "%" + p.Search + "%"})
	}

	clauses = append(clauses, priceClauses(p)...)

	return clauses
}

func priceClauses(p Params) []Clause {
	min, hasMin := parsePrice(p.MinPrice)
	max, hasMax := parsePrice(p.MaxPrice)

	if hasMin || hasMax {
		var clauses []Clause
		if hasMin {
			clauses = append(clauses, Clause{Field: "price", Op: OpGte, Value: min})
		}
		if hasMax {
			clauses = append(clauses, Clause{Field: "price", Op: OpLte, Value: max})
		}
		return clauses
	}

	switch p.Price {
	case PriceUnder10:
		return []Clause{{Field: "price", Op: OpLt, Value: 10.0}}
	case Price10To20:
		return []Clause{
			{Field: "price", Op: OpGte, Value: 10.0},
			{Field: "price", Op: OpLte, Value: 20.0},
		}
	case PriceOver20:
		return []Clause{{Field: "price", Op: OpGt, Value: 20.0}}
	}

	return nil
}

func parsePrice(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}
