package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenlight/bakehouse/app/models"
)

const base = "http://localhost:5001"

func strPtr(s string) *string { return &s }

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{"nil stays nil", nil, nil},
		{"empty stays empty", strPtr(""), strPtr("")},
		{"absolute http passes through", strPtr("http://cdn.example.com/a.jpg"), strPtr("http://cdn.example.com/a.jpg")},
		{"absolute https passes through", strPtr("https://cdn.example.com/a.jpg"), strPtr("https://cdn.example.com/a.jpg")},
		{"relative with slash", strPtr("/uploads/products/a.jpg"), strPtr(base + "/uploads/products/a.jpg")},
		{"relative without slash", strPtr("uploads/products/a.jpg"), strPtr(base + "/uploads/products/a.jpg")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveURL(base, tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestResolveURLTrailingSlashBase(t *testing.T) {
	got := ResolveURL(base+"/", strPtr("/uploads/a.jpg"))
	require.NotNil(t, got)
	assert.Equal(t, base+"/uploads/a.jpg", *got)
}

func TestMeanRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"no reviews", nil, 0},
		{"single review", []int{4}, 4},
		{"rounds to one decimal", []int{5, 4}, 4.5},
		{"rounds down", []int{3, 3, 4}, 3.3},
		{"rounds up", []int{3, 4, 4}, 3.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]models.Review, 0, len(tt.ratings))
			for _, r := range tt.ratings {
				reviews = append(reviews, models.Review{Rating: r})
			}
			assert.Equal(t, tt.want, MeanRating(reviews))
		})
	}
}

func TestTransformFullShape(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	product := models.Product{
		ID:          9,
		Name:        "Butter Croissant",
		Description: strPtr("Flaky and golden."),
		Price:       decimal.RequireFromString("4.10"),
		Stock:       25,
		ImgURL:      strPtr("/uploads/products/croissant.jpg"),
		Thumbnail1:  strPtr("https://cdn.example.com/t1.jpg"),
		CreatedAt:   created,
		Category:    &models.Category{ID: 2, Name: "Pastries"},
		Reviews:     []models.Review{{Rating: 5}, {Rating: 4}},
		Favorites:   []models.Favorite{{CustomerID: 1}, {CustomerID: 2}, {CustomerID: 3}},
	}

	got := Transform(product, base)

	assert.Equal(t, uint(9), got.ID)
	assert.Equal(t, "Butter Croissant", got.Name)
	assert.InDelta(t, 4.10, got.Price, 0.0001)
	assert.Equal(t, 25, got.Stock)
	assert.Equal(t, "Pastries", got.Category)
	require.NotNil(t, got.ImgURL)
	assert.Equal(t, base+"/uploads/products/croissant.jpg", *got.ImgURL)
	require.NotNil(t, got.Thumbnails.Thumbnail1)
	assert.Equal(t, "https://cdn.example.com/t1.jpg", *got.Thumbnails.Thumbnail1)
	assert.Nil(t, got.Thumbnails.Thumbnail2)
	assert.Equal(t, 4.5, got.Rating)
	assert.Equal(t, 2, got.Reviews)
	assert.Equal(t, 3, got.Favorites)
	assert.Equal(t, created, got.CreatedAt)
}

func TestTransformNestsThumbnails(t *testing.T) {
	product := models.Product{
		ID:         9,
		Name:       "Butter Croissant",
		Price:      decimal.RequireFromString("4.10"),
		Thumbnail1: strPtr("/uploads/products/t1.jpg"),
		Thumbnail3: strPtr("https://cdn.example.com/t3.jpg"),
	}

	raw, err := json.Marshal(Transform(product, base))
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))

	require.Contains(t, body, "thumbnails")
	assert.NotContains(t, body, "thumbnail_img_1")

	var thumbs map[string]*string
	require.NoError(t, json.Unmarshal(body["thumbnails"], &thumbs))
	require.NotNil(t, thumbs["thumbnail_img_1"])
	assert.Equal(t, base+"/uploads/products/t1.jpg", *thumbs["thumbnail_img_1"])
	assert.Nil(t, thumbs["thumbnail_img_2"])
	require.NotNil(t, thumbs["thumbnail_img_3"])
	assert.Equal(t, "https://cdn.example.com/t3.jpg", *thumbs["thumbnail_img_3"])
}

func TestTransformUncategorized(t *testing.T) {
	got := Transform(models.Product{ID: 1, Name: "Mystery Bun"}, base)
	assert.Equal(t, UncategorizedName, got.Category)
	assert.Equal(t, float64(0), got.Rating)
}

func TestTransformMenuShape(t *testing.T) {
	product := models.Product{
		ID:       4,
		Name:     "Baguette",
		Price:    decimal.RequireFromString("3.25"),
		ImgURL:   strPtr("/uploads/products/baguette.jpg"),
		Category: &models.Category{Name: "Breads"},
		Reviews:  []models.Review{{Rating: 5}},
	}

	got := TransformMenu(product, base)

	assert.Equal(t, uint(4), got.ID)
	assert.Equal(t, "Baguette", got.Name)
	assert.InDelta(t, 3.25, got.Price, 0.0001)
	assert.Equal(t, "Breads", got.Category)
	require.NotNil(t, got.ImgURL)
	assert.Equal(t, base+"/uploads/products/baguette.jpg", *got.ImgURL)
}

func TestTransformAllEmptyIsNotNil(t *testing.T) {
	assert.NotNil(t, TransformAll(nil, base))
	assert.NotNil(t, TransformAllMenu(nil, base))
	assert.Len(t, TransformAll(nil, base), 0)
}
