package catalog

import "strings"

// Sort keys accepted by the listing endpoints.
const (
	SortName          = "name"
	SortPriceLowHigh  = "price-low-to-high"
	SortPriceHighLow  = "price-high-to-low"
	SortRating        = "rating"
	SortRelevance     = "relevance"
	SortStockLowHigh  = "stock-low-to-high"
	SortStockHighLow  = "stock-high-to-low"
)

// Ordering describes how the repository should order a listing query.
// When ByRating is set the repository joins reviews, groups by product,
// and orders by the average rating instead of Column.
type Ordering struct {
	Column    string
	Direction string // "ASC" or "DESC"
	ByRating  bool
}

// ResolveSort maps a sort key and direction to an Ordering for the
// given variant.
//
// The price sorts carry a fixed direction regardless of sort_order.
// Relevance falls back to newest-first. The stock sorts are honored
// only on the admin listing. The menu listing supports name and the
// two price sorts and defaults to name ascending; everything else
// defaults to created_at with the requested direction.
func ResolveSort(sort, order string, v Variant) Ordering {
	dir := normalizeDirection(order, v)

	if v == VariantMenu {
		switch sort {
		case SortName:
			return Ordering{Column: "name", Direction: dir}
		case SortPriceLowHigh:
			return Ordering{Column: "price", Direction: "ASC"}
		case SortPriceHighLow:
			return Ordering{Column: "price", Direction: "DESC"}
		}
		return Ordering{Column: "name", Direction: "ASC"}
	}

	switch sort {
	case SortName:
		return Ordering{Column: "name", Direction: dir}
	case SortPriceLowHigh:
		return Ordering{Column: "price", Direction: "ASC"}
	case SortPriceHighLow:
		return Ordering{Column: "price", Direction: "DESC"}
	case SortRating:
		return Ordering{Direction: dir, ByRating: true}
	case SortRelevance:
		return Ordering{Column: "created_at", Direction: "DESC"}
	case SortStockLowHigh:
		if v == VariantAdmin {
			return Ordering{Column: "stock", Direction: "ASC"}
		}
	case SortStockHighLow:
		if v == VariantAdmin {
			return Ordering{Column: "stock", Direction: "DESC"}
		}
	}

	return Ordering{Column: "created_at", Direction: dir}
}

func normalizeDirection(order string, v Variant) string {
	switch strings.ToUpper(strings.TrimSpace(order)) {
	case "ASC":
		return "ASC"
	case "DESC":
		return "DESC"
	}
	if v == VariantMenu {
		return "ASC"
	}
	return "DESC"
}
