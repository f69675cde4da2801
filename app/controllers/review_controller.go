package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/medicare/app/services"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/shashiranjanraj/medicare/pkg/auth"
	"github.com/shashiranjanraj/medicare/pkg/bind"
	"github.com/shashiranjanraj/medicare/pkg/response"
)

// ReviewController serves product review listing and submission.
type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController() *ReviewController {
	return &ReviewController{service: services.NewReviewService()}
}

// List handles GET /api/product/{id}/reviews.
func (c *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	productID, ok := uintParam(r, "id")
	if !ok {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	page, perPage := pageParams(r, reviewPageSize)

	reviews, pagination, err := c.service.ListForProduct(productID, page, perPage)
	if err != nil {
		response.AppError(w, apperr.From(err, "Failed to fetch reviews"))
		return
	}

	response.OK(w, map[string]interface{}{
		"reviews":    reviews,
		"pagination": pagination,
	})
}

// Create handles POST /api/product/{id}/reviews (authenticated).
func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	productID, ok := uintParam(r, "id")
	if !ok {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	var input services.ReviewInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		validationError(w, errs)
		return
	}

	review, err := c.service.Add(productID, auth.UsernameFromCtx(r.Context()), input)
	if err != nil {
		response.AppError(w, apperr.From(err, "Failed to submit review"))
		return
	}

	response.Created(w, map[string]interface{}{
		"message": "Review submitted successfully",
		"review":  review,
	})
}
