// Package seeders fills a fresh database with starter data for local
// development. Seeding is idempotent; rows are matched by their
// natural keys.
package seeders

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/pkg/logger"
)

// Run executes every seeder.
func Run(db *gorm.DB) error {
	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"categories", seedCategories},
		{"products", seedProducts},
		{"offers", seedOffers},
		{"faqs", seedFAQs},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		logger.Info("seeded", "table", step.name)
	}
	return nil
}

func seedCategories(db *gorm.DB) error {
	names := []string{"Cakes", "Breads", "Pastries", "Cookies", "Beverages"}
	for _, name := range names {
		c := models.Category{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(db *gorm.DB) error {
	samples := []struct {
		name     string
		desc     string
		price    string
		stock    int
		category string
		img      string
	}{
		{"Chocolate Fudge Cake", "Rich layered chocolate cake with fudge frosting.", "24.99", 12, "Cakes", "/uploads/products/chocolate-fudge-cake.jpg"},
		{"Red Velvet Cake", "Classic red velvet with cream cheese frosting.", "27.50", 8, "Cakes", "/uploads/products/red-velvet-cake.jpg"},
		{"Sourdough Loaf", "Naturally leavened, 24-hour fermented.", "6.50", 30, "Breads", "/uploads/products/sourdough-loaf.jpg"},
		{"Baguette", "Crusty French baguette, baked twice daily.", "3.25", 40, "Breads", "/uploads/products/baguette.jpg"},
		{"Butter Croissant", "Flaky, all-butter, laminated by hand.", "4.10", 25, "Pastries", "/uploads/products/butter-croissant.jpg"},
		{"Almond Danish", "Puff pastry with almond cream filling.", "4.85", 18, "Pastries", "/uploads/products/almond-danish.jpg"},
		{"Chocolate Chip Cookie", "Brown butter dough, dark chocolate chunks.", "2.75", 60, "Cookies", "/uploads/products/chocolate-chip-cookie.jpg"},
		{"Oatmeal Raisin Cookie", "Chewy centre, crisp edges.", "2.50", 50, "Cookies", "/uploads/products/oatmeal-raisin-cookie.jpg"},
		{"Cold Brew Coffee", "Slow-steeped for 18 hours.", "5.00", 20, "Beverages", "/uploads/products/cold-brew.jpg"},
		{"Fresh Orange Juice", "Squeezed to order.", "4.50", 15, "Beverages", "/uploads/products/orange-juice.jpg"},
	}

	for _, s := range samples {
		var category models.Category
		if err := db.Where("name = ?", s.category).First(&category).Error; err != nil {
			return err
		}

		price, err := decimal.NewFromString(s.price)
		if err != nil {
			return err
		}

		desc := s.desc
		img := s.img
		product := models.Product{
			Name:        s.name,
			Description: &desc,
			Price:       price,
			Stock:       s.stock,
			CategoryID:  &category.ID,
			ImgURL:      &img,
		}
		if err := db.Where("name = ?", s.name).FirstOrCreate(&product).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedOffers(db *gorm.DB) error {
	expiry := time.Now().AddDate(0, 3, 0)
	samples := []models.Offer{
		{
			Title:           "Welcome Treat",
			Code:            "WELCOME10",
			DiscountPercent: decimal.NewFromInt(10),
			ExpiresAt:       &expiry,
		},
		{
			Title:           "Weekend Bundle",
			Code:            "WEEKEND15",
			DiscountPercent: decimal.NewFromInt(15),
			ExpiresAt:       &expiry,
		},
	}

	for _, o := range samples {
		offer := o
		if err := db.Where("code = ?", o.Code).FirstOrCreate(&offer).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedFAQs(db *gorm.DB) error {
	samples := []models.FAQ{
		{Question: "Do you deliver?", Answer: "Yes, we deliver within the city for orders above $20.", Position: 1},
		{Question: "Can I order a custom cake?", Answer: "Custom cakes need at least 48 hours notice. Call us or drop by the shop.", Position: 2},
		{Question: "Are your products nut-free?", Answer: "Our kitchen handles nuts daily, so we cannot guarantee any item is nut-free.", Position: 3},
	}

	for _, f := range samples {
		faq := f
		if err := db.Where("question = ?", f.Question).FirstOrCreate(&faq).Error; err != nil {
			return err
		}
	}
	return nil
}
