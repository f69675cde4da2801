package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/medicare/app/services"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/shashiranjanraj/medicare/pkg/auth"
	"github.com/shashiranjanraj/medicare/pkg/bind"
	"github.com/shashiranjanraj/medicare/pkg/logger"
	"github.com/shashiranjanraj/medicare/pkg/response"
)

// OrderController serves order placement and order history.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{service: services.NewOrderService()}
}

// Create handles POST /api/orders (authenticated).
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.OrderInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		validationError(w, errs)
		return
	}

	order, err := c.service.Place(auth.UsernameFromCtx(r.Context()), input)
	if err != nil {
		response.AppError(w, apperr.From(err, "Failed to create order"))
		return
	}

	logger.WithCtx(r.Context()).Info("order placed",
		"order_number", order.OrderNumber,
		"total_amount", order.TotalAmount,
	)

	response.Created(w, map[string]interface{}{
		"message": "Order created successfully",
		"order":   order,
	})
}

// List handles GET /api/orders (authenticated): the caller's order
// history, newest first.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.History(auth.UsernameFromCtx(r.Context()))
	if err != nil {
		response.AppError(w, apperr.From(err, "Failed to fetch orders"))
		return
	}

	response.OK(w, map[string]interface{}{"orders": orders})
}
