package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/medicare/app/services"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/shashiranjanraj/medicare/pkg/response"
)

// Version is stamped at build time via -ldflags.
var Version = "1.0.0"

// MetaController serves the catalog lookup tables and the health check.
type MetaController struct {
	service *services.ProductService
}

func NewMetaController() *MetaController {
	return &MetaController{service: services.NewProductService()}
}

// Categories handles GET /api/categories.
func (c *MetaController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.service.Categories()
	if err != nil {
		response.AppError(w, apperr.From(err, "Failed to fetch categories"))
		return
	}

	response.OK(w, map[string]interface{}{"categories": categories})
}

// Manufacturers handles GET /api/manufacturers.
func (c *MetaController) Manufacturers(w http.ResponseWriter, r *http.Request) {
	manufacturers, err := c.service.Manufacturers()
	if err != nil {
		response.AppError(w, apperr.From(err, "Failed to fetch manufacturers"))
		return
	}

	response.OK(w, map[string]interface{}{"manufacturers": manufacturers})
}

// Health handles GET /api/health.
func (c *MetaController) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status":  "healthy",
		"message": "Pharmacy API is running",
		"version": Version,
	})
}
