// Package routes wires every API endpoint to its controller.
package routes

import (
	"github.com/shashiranjanraj/medicare/app/controllers"
	"github.com/shashiranjanraj/medicare/pkg/middleware"
	"github.com/shashiranjanraj/medicare/pkg/router"
)

// Register mounts all API routes on the router.
func Register(r *router.Router) {
	authController := controllers.NewAuthController()
	productController := controllers.NewProductController()
	reviewController := controllers.NewReviewController()
	orderController := controllers.NewOrderController()
	metaController := controllers.NewMetaController()

	api := r.Group("/api")

	// Auth
	api.Post("/login", "auth.login", authController.Login)
	api.Post("/register", "auth.register", authController.Register)
	api.Post("/refresh", "auth.refresh", authController.Refresh, middleware.RefreshAuth)
	api.Post("/logout", "auth.logout", authController.Logout, middleware.Auth)
	api.Get("/profile", "auth.profile", authController.Profile, middleware.Auth)

	// Catalog (authenticated; lookup tables stay public)
	api.Get("/product/{id}", "products.detail", productController.Detail, middleware.Auth)
	api.Get("/products", "products.list", productController.List, middleware.Auth)
	api.Get("/search", "products.search", productController.Search, middleware.Auth)
	api.Get("/categories", "meta.categories", metaController.Categories)
	api.Get("/manufacturers", "meta.manufacturers", metaController.Manufacturers)

	// Reviews
	api.Get("/product/{id}/reviews", "reviews.list", reviewController.List, middleware.Auth)
	api.Post("/product/{id}/reviews", "reviews.create", reviewController.Create, middleware.Auth)

	// Orders
	api.Post("/orders", "orders.create", orderController.Create, middleware.Auth)
	api.Get("/orders", "orders.list", orderController.List, middleware.Auth)

	// Ops
	api.Get("/health", "meta.health", metaController.Health)
}
