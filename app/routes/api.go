// Package routes wires repositories, services, and controllers onto
// the HTTP router.
package routes

import (
	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/controllers"
	"github.com/ovenlight/bakehouse/app/repositories"
	"github.com/ovenlight/bakehouse/app/services"
	"github.com/ovenlight/bakehouse/config"
	"github.com/ovenlight/bakehouse/pkg/middleware"
	"github.com/ovenlight/bakehouse/pkg/router"
)

// Register mounts every API route on r.
func Register(r *router.Router, db *gorm.DB) {
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	contentRepo := repositories.NewContentRepository(db)

	catalogService := services.NewCatalogService(productRepo, categoryRepo, config.BaseURL())
	authService := services.NewAuthService(customerRepo)
	orderService := services.NewOrderService(orderRepo, productRepo)

	productCtrl := controllers.NewProductController(catalogService)
	categoryCtrl := controllers.NewCategoryController(categoryRepo)
	customerCtrl := controllers.NewCustomerController(authService, customerRepo)
	authCtrl := controllers.NewAuthController(authService)
	orderCtrl := controllers.NewOrderController(orderService)
	contentCtrl := controllers.NewContentController(contentRepo)

	api := r.Group("/api")

	products := api.Group("/products")
	products.Get("/", "products.index", productCtrl.List)
	products.Get("/menu", "products.menu", productCtrl.Menu)
	products.Get("/admin", "products.admin", productCtrl.Admin, middleware.Auth)
	products.Post("/create", "products.store", productCtrl.Create, middleware.Auth)
	products.Put("/edit/{id}", "products.update", productCtrl.Edit, middleware.Auth)
	products.Delete("/delete/{id}", "products.destroy", productCtrl.Delete, middleware.Auth)
	products.Get("/{id}", "products.show", productCtrl.Detail)

	categories := api.Group("/categories")
	categories.Get("/", "categories.index", categoryCtrl.All)
	categories.Get("/menu", "categories.menu", categoryCtrl.Menu)
	categories.Get("/{id}", "categories.show", categoryCtrl.ByID)

	customers := api.Group("/customers")
	customers.Post("/signup", "customers.signup", customerCtrl.Signup)
	customers.Post("/login", "customers.login", authCtrl.Login)
	customers.Get("/", "customers.index", customerCtrl.All, middleware.Auth)
	customers.Get("/profile/{id}", "customers.profile", customerCtrl.Profile, middleware.Auth)
	customers.Put("/profile/{id}", "customers.profile.update", customerCtrl.UpdateProfile, middleware.Auth)
	customers.Post("/profile/{id}/avatar", "customers.profile.avatar", customerCtrl.Avatar, middleware.Auth)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", "auth.login", authCtrl.Login)
	authGroup.Post("/refresh", "auth.refresh", authCtrl.Refresh)
	authGroup.Post("/logout", "auth.logout", authCtrl.Logout)
	authGroup.Get("/profile", "auth.profile", authCtrl.Profile, middleware.Auth)

	orders := api.Group("/orders", middleware.Auth)
	orders.Get("/", "orders.index", orderCtrl.List)
	orders.Post("/", "orders.store", orderCtrl.Place)
	orders.Get("/{id}", "orders.show", orderCtrl.Detail)
	orders.Put("/{id}/status", "orders.status", orderCtrl.UpdateStatus)

	api.Get("/offers", "offers.index", contentCtrl.Offers)
	api.Get("/faqs", "faqs.index", contentCtrl.FAQs)
}
