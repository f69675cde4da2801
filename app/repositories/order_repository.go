package repositories

import (
	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/orm"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for Order and OrderItem.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CreateWithItems persists the order header and all its line items in one
// transaction. Any failure rolls back everything, including the staged
// header.
func (r *OrderRepository) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	return orm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// ByUser returns all of a user's orders, newest first.
func (r *OrderRepository) ByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Get(&orders)
	return orders, err
}
