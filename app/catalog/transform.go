package catalog

import (
	"math"
	"strings"
	"time"

	"github.com/ovenlight/bakehouse/app/models"
)

// UncategorizedName is shown for products without a category.
const UncategorizedName = "Uncategorized"

// Product is the full listing/detail response shape.
type Product struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	Category    string     `json:"category"`
	ImgURL      *string    `json:"img_url"`
	Thumbnails  Thumbnails `json:"thumbnails"`
	Rating      float64    `json:"rating"`
	Reviews     int        `json:"reviews"`
	Favorites   int        `json:"favorites"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Thumbnails is the four-slot thumbnail bundle nested under the full
// product shape.
type Thumbnails struct {
	Thumbnail1 *string `json:"thumbnail_img_1"`
	Thumbnail2 *string `json:"thumbnail_img_2"`
	Thumbnail3 *string `json:"thumbnail_img_3"`
	Thumbnail4 *string `json:"thumbnail_img_4"`
}

// MenuProduct is the minimal shape served by the menu listing.
type MenuProduct struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImgURL   *string `json:"img_url"`
}

// Transform shapes a product for the full listing response.
// baseURL is the public origin used to resolve relative image paths.
func Transform(m models.Product, baseURL string) Product {
	price, _ := m.Price.Float64()

	return Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       price,
		Stock:       m.Stock,
		Category:    categoryName(m),
		ImgURL:      ResolveURL(baseURL, m.ImgURL),
		Thumbnails: Thumbnails{
			Thumbnail1: ResolveURL(baseURL, m.Thumbnail1),
			Thumbnail2: ResolveURL(baseURL, m.Thumbnail2),
			Thumbnail3: ResolveURL(baseURL, m.Thumbnail3),
			Thumbnail4: ResolveURL(baseURL, m.Thumbnail4),
		},
		Rating:      MeanRating(m.Reviews),
		Reviews:     len(m.Reviews),
		Favorites:   len(m.Favorites),
		CreatedAt:   m.CreatedAt,
	}
}

// TransformMenu shapes a product for the menu listing response.
func TransformMenu(m models.Product, baseURL string) MenuProduct {
	price, _ := m.Price.Float64()

	return MenuProduct{
		ID:       m.ID,
		Name:     m.Name,
		Price:    price,
		Category: categoryName(m),
		ImgURL:   ResolveURL(baseURL, m.ImgURL),
	}
}

// TransformAll maps a page of products to the full shape. Always
// returns a non-nil slice so empty pages serialize as [].
func TransformAll(items []models.Product, baseURL string) []Product {
	out := make([]Product, 0, len(items))
	for _, m := range items {
		out = append(out, Transform(m, baseURL))
	}
	return out
}

// TransformAllMenu maps products to the menu shape.
func TransformAllMenu(items []models.Product, baseURL string) []MenuProduct {
	out := make([]MenuProduct, 0, len(items))
	for _, m := range items {
		out = append(out, TransformMenu(m, baseURL))
	}
	return out
}

// ResolveURL normalizes a stored image reference. Absolute URLs pass
// through untouched; relative paths are joined to baseURL with exactly
// one separating slash. Nil stays nil.
func ResolveURL(baseURL string, ref *string) *string {
	if ref == nil || *ref == "" {
		return ref
	}
	if strings.HasPrefix(*ref, "http://") || strings.HasPrefix(*ref, "https://") {
		return ref
	}
	full := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(*ref, "/")
	return &full
}

// MeanRating returns the average rating rounded to one decimal place,
// or 0 when there are no reviews.
func MeanRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}

func categoryName(m models.Product) string {
	if m.Category != nil && m.Category.Name != "" {
		return m.Category.Name
	}
	return UncategorizedName
}
