package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParamsDefaults(t *testing.T) {
	p := ParseParams(url.Values{}, VariantGeneral)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset())
	assert.True(t, p.Paginated())
}

func TestParseParamsPageAndLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     url.Values
		wantPage  int
		wantLimit int
	}{
		{"explicit values", url.Values{"page": {"3"}, "limit": {"12"}}, 3, 12},
		{"zero page floors to one", url.Values{"page": {"0"}}, 1, DefaultLimit},
		{"negative page floors to one", url.Values{"page": {"-5"}}, 1, DefaultLimit},
		{"garbage page falls back", url.Values{"page": {"abc"}}, 1, DefaultLimit},
		{"limit clamped to max", url.Values{"limit": {"500"}}, 1, MaxLimit},
		{"zero limit clamped to one", url.Values{"limit": {"0"}}, 1, 1},
		{"negative limit clamped to one", url.Values{"limit": {"-5"}}, 1, 1},
		{"garbage limit falls back", url.Values{"limit": {"abc"}}, 1, DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseParams(tt.query, VariantGeneral)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestParseParamsOffset(t *testing.T) {
	p := ParseParams(url.Values{"page": {"4"}, "limit": {"10"}}, VariantGeneral)
	assert.Equal(t, 30, p.Offset())
}

func TestMenuAndAdminAreUnpaginated(t *testing.T) {
	assert.False(t, ParseParams(url.Values{"page": {"2"}}, VariantMenu).Paginated())
	assert.False(t, ParseParams(url.Values{"page": {"2"}}, VariantAdmin).Paginated())
}

func TestWantsCategoryName(t *testing.T) {
	tests := []struct {
		category string
		want     bool
	}{
		{"", false},
		{"all", false},
		{"All", false},
		{"ALL", false},
		{"Cakes", true},
		{"breads", true},
	}

	for _, tt := range tests {
		p := ParseParams(url.Values{"category": {tt.category}}, VariantGeneral)
		assert.Equal(t, tt.want, p.WantsCategoryName(), "category=%q", tt.category)
	}
}
