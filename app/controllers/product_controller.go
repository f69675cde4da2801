package controllers

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/medicare/app/repositories"
	"github.com/shashiranjanraj/medicare/app/services"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/shashiranjanraj/medicare/pkg/response"
)

// ProductController serves the catalog read endpoints.
type ProductController struct {
	service *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{service: services.NewProductService()}
}

// Detail handles GET /api/product/{id}: the aggregated detail-page
// document with composition, substitutes, FAQs, reviews and related
// products.
func (c *ProductController) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	detail, err := c.service.Detail(id)
	if err != nil {
		response.AppError(w, apperr.From(err, "Failed to fetch product"))
		return
	}

	response.OK(w, detail)
}

// List handles GET /api/products with optional conjunctive filters:
// search, category_id, manufacturer_id, min_price, max_price,
// prescription_required, plus page/per_page.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	filters := repositories.ProductFilters{
		Search:               strings.TrimSpace(r.URL.Query().Get("search")),
		CategoryID:           uint(queryInt(r, "category_id", 0)),
		ManufacturerID:       uint(queryInt(r, "manufacturer_id", 0)),
		MinPrice:             queryFloat(r, "min_price"),
		MaxPrice:             queryFloat(r, "max_price"),
		PrescriptionRequired: queryBool(r, "prescription_required"),
	}
	page, perPage := pageParams(r, productPageSize)

	products, pagination, err := c.service.List(filters, page, perPage)
	if err != nil {
		response.AppError(w, apperr.From(err, "Failed to fetch products"))
		return
	}

	response.OK(w, map[string]interface{}{
		"products":   products,
		"pagination": pagination,
	})
}

// Search handles GET /api/search?q=...: matches product names and
// descriptions, salt names, and manufacturer names.
func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		response.Error(w, http.StatusBadRequest, "Search query is required")
		return
	}

	page, perPage := pageParams(r, productPageSize)

	products, pagination, err := c.service.Search(query, page, perPage)
	if err != nil {
		response.AppError(w, apperr.From(err, "Search failed"))
		return
	}

	response.OK(w, map[string]interface{}{
		"products":   products,
		"pagination": pagination,
		"query":      query,
	})
}
