package models

import "gorm.io/gorm"

// Order lifecycle statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a placed order with its computed total. The order number is a
// short human-readable token; the unique index makes the store reject the
// (astronomically unlikely) random collision.
type Order struct {
	gorm.Model
	UserID          uint    `gorm:"not null;index" json:"user_id"`
	OrderNumber     string  `gorm:"uniqueIndex;size:50;not null" json:"order_number"`
	Status          string  `gorm:"size:50;default:pending" json:"status"`
	TotalAmount     float64 `gorm:"not null" json:"total_amount"`
	ShippingAddress string  `gorm:"type:text" json:"shipping_address"`
	PaymentMethod   string  `gorm:"size:50" json:"payment_method"`
	PaymentStatus   string  `gorm:"size:50;default:pending" json:"payment_status"`
	Notes           string  `gorm:"type:text" json:"notes"`

	OrderItems []OrderItem `json:"-"`
}

// CanTransitionTo reports whether the order may move to the target status:
// pending → confirmed → shipped → delivered, with cancellation allowed
// from any state before delivery.
func (o *Order) CanTransitionTo(target string) bool {
	if target == OrderStatusCancelled {
		return o.Status != OrderStatusDelivered && o.Status != OrderStatusCancelled
	}

	next := map[string]string{
		OrderStatusPending:   OrderStatusConfirmed,
		OrderStatusConfirmed: OrderStatusShipped,
		OrderStatusShipped:   OrderStatusDelivered,
	}
	return next[o.Status] == target
}

// OrderItem is one line of an order. UnitPrice and TotalPrice are a
// snapshot taken at order time and must not follow later product price
// changes.
type OrderItem struct {
	gorm.Model
	OrderID    uint    `gorm:"not null;index" json:"order_id"`
	ProductID  uint    `gorm:"not null;index" json:"product_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"not null" json:"unit_price"`
	TotalPrice float64 `gorm:"not null" json:"total_price"`

	Product Product `json:"-"`
}
