package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/app/repositories"
	"github.com/shashiranjanraj/medicare/app/resources"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/shashiranjanraj/medicare/pkg/collection"
	"gorm.io/gorm"
)

// OrderItemInput is one requested line of an order. Line items arrive
// nested, so they are checked in Place rather than by struct tags.
type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderInput is the place-order request body.
type OrderInput struct {
	Items           []OrderItemInput `json:"items"`
	ShippingAddress string           `json:"shipping_address" validate:"nullable"`
	PaymentMethod   string           `json:"payment_method" validate:"nullable,max=50"`
	Notes           string           `json:"notes" validate:"nullable"`
}

// OrderService places orders and lists a user's order history.
type OrderService struct {
	orders  *repositories.OrderRepository
	catalog *repositories.CatalogRepository
	users   *repositories.UserRepository
}

func NewOrderService() *OrderService {
	return &OrderService{
		orders:  repositories.NewOrderRepository(),
		catalog: repositories.NewCatalogRepository(),
		users:   repositories.NewUserRepository(),
	}
}

// Place creates an order for the authenticated user. Every referenced
// product must exist; the first missing one aborts the whole order before
// anything is written. Unit prices are snapshotted from the product's
// current price.
func (s *OrderService) Place(username string, input OrderInput) (resources.OrderPayload, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resources.OrderPayload{}, apperr.New(apperr.Auth, "User not found")
		}
		return resources.OrderPayload{}, apperr.Wrap(apperr.Internal, "Failed to create order", err)
	}

	if len(input.Items) == 0 {
		return resources.OrderPayload{}, apperr.New(apperr.Validation, "Order items are required")
	}

	var (
		items []models.OrderItem
		total float64
	)
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return resources.OrderPayload{}, apperr.New(apperr.Validation, "Quantity must be at least 1")
		}

		product, err := s.catalog.FindProductByID(line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return resources.OrderPayload{}, apperr.Newf(apperr.NotFound, "Product %d not found", line.ProductID)
			}
			return resources.OrderPayload{}, apperr.Wrap(apperr.Internal, "Failed to create order", err)
		}

		lineTotal := product.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			ProductID:  product.ID,
			Quantity:   line.Quantity,
			UnitPrice:  product.Price,
			TotalPrice: lineTotal,
		})
		total += lineTotal
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "COD"
	}

	order := models.Order{
		UserID:          user.ID,
		OrderNumber:     newOrderNumber(),
		Status:          models.OrderStatusPending,
		TotalAmount:     total,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   "pending",
		Notes:           input.Notes,
	}

	if err := s.orders.CreateWithItems(&order, items); err != nil {
		return resources.OrderPayload{}, apperr.Wrap(apperr.Internal, "Failed to create order", err)
	}

	return resources.NewOrderPayload(order), nil
}

// History returns every order of the user, newest first.
func (s *OrderService) History(username string) ([]resources.OrderPayload, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Auth, "User not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch orders", err)
	}

	orders, err := s.orders.ByUser(user.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch orders", err)
	}

	out := collection.Map(orders, resources.NewOrderPayload)
	if out == nil {
		out = []resources.OrderPayload{}
	}
	return out, nil
}

// newOrderNumber builds a short human-readable order token like
// ORD-1A2B3C4D from the first eight hex characters of a fresh UUID.
func newOrderNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(hex[:8])
}
