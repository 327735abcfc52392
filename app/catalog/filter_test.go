package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(q url.Values) Params {
	return ParseParams(q, VariantGeneral)
}

func TestBuildClausesEmpty(t *testing.T) {
	assert.Empty(t, BuildClauses(params(url.Values{}), nil))
}

func TestBuildClausesCategory(t *testing.T) {
	id := uint(7)
	clauses := BuildClauses(params(url.Values{}), &id)

	require.Len(t, clauses, 1)
	assert.Equal(t, Clause{Field: "category_id", Op: OpEq, Value: uint(7)}, clauses[0])
}

func TestBuildClausesSearch(t *testing.T) {
	clauses := BuildClauses(params(url.Values{"search": {"croissant"}}), nil)

	require.Len(t, clauses, 1)
	assert.Equal(t, Clause{Field: "name", Op: OpLike, Value: "%croissant%"}, clauses[0])
}

func TestPriceBuckets(t *testing.T) {
	tests := []struct {
		bucket string
		want   []Clause
	}{
		{PriceUnder10, []Clause{{Field: "price", Op: OpLt, Value: 10.0}}},
		{Price10To20, []Clause{
			{Field: "price", Op: OpGte, Value: 10.0},
			{Field: "price", Op: OpLte, Value: 20.0},
		}},
		{PriceOver20, []Clause{{Field: "price", Op: OpGt, Value: 20.0}}},
		{"mystery-bucket", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run("bucket "+tt.bucket, func(t *testing.T) {
			clauses := BuildClauses(params(url.Values{"price": {tt.bucket}}), nil)
			assert.Equal(t, tt.want, clauses)
		})
	}
}

func TestExplicitPriceRangeWinsOverBucket(t *testing.T) {
	clauses := BuildClauses(params(url.Values{
		"price":     {PriceUnder10},
		"min_price": {"5"},
		"max_price": {"15"},
	}), nil)

	assert.Equal(t, []Clause{
		{Field: "price", Op: OpGte, Value: 5.0},
		{Field: "price", Op: OpLte, Value: 15.0},
	}, clauses)
}

func TestPartialPriceRange(t *testing.T) {
	minOnly := BuildClauses(params(url.Values{"min_price": {"8.50"}}), nil)
	assert.Equal(t, []Clause{{Field: "price", Op: OpGte, Value: 8.5}}, minOnly)

	maxOnly := BuildClauses(params(url.Values{"max_price": {"12"}}), nil)
	assert.Equal(t, []Clause{{Field: "price", Op: OpLte, Value: 12.0}}, maxOnly)
}

func TestInvalidPriceRangeFallsBackToBucket(t *testing.T) {
	clauses := BuildClauses(params(url.Values{
		"min_price": {"not-a-number"},
		"price":     {PriceOver20},
	}), nil)

	assert.Equal(t, []Clause{{Field: "price", Op: OpGt, Value: 20.0}}, clauses)
}

func TestCombinedFilters(t *testing.T) {
	id := uint(3)
	clauses := BuildClauses(params(url.Values{
		"search": {"cake"},
		"price":  {Price10To20},
	}), &id)

	require.Len(t, clauses, 4)
	assert.Equal(t, "category_id", clauses[0].Field)
	assert.Equal(t, "name", clauses[1].Field)
	assert.Equal(t, "price", clauses[2].Field)
	assert.Equal(t, "price", clauses[3].Field)
}
