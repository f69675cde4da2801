package services

import (
	"strings"
	"testing"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderComputesTotalsAndSnapshotsPrices(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService()

	user := createUser(t, db, "buyer")
	maker := createManufacturer(t, db, "Cipla Ltd")
	crocin := createProduct(t, db, models.Product{
		Name: "Crocin 500", SKU: "CRO-500", ManufacturerID: maker.ID,
		Price: 20.50, IsActive: true,
	})
	brufen := createProduct(t, db, models.Product{
		Name: "Brufen 400", SKU: "BRU-400", ManufacturerID: maker.ID,
		Price: 32.00, IsActive: true,
	})

	order, err := svc.Place(user.Username, OrderInput{
		Items: []OrderItemInput{
			{ProductID: crocin.ID, Quantity: 2},
			{ProductID: brufen.ID, Quantity: 1},
		},
		ShippingAddress: "12 MG Road, Bengaluru",
	})
	require.NoError(t, err)

	assert.InDelta(t, 73.00, order.TotalAmount, 0.001)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "COD", order.PaymentMethod)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Len(t, order.OrderNumber, 12)
	assert.Equal(t, strings.ToUpper(order.OrderNumber), order.OrderNumber)

	var items []models.OrderItem
	require.NoError(t, db.Order("id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, 20.50, items[0].UnitPrice)
	assert.Equal(t, 41.00, items[0].TotalPrice)
	assert.Equal(t, order.ID, items[0].OrderID)

	// A later price change must not touch the stored snapshot.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", crocin.ID).Update("price", 99.0).Error)

	var item models.OrderItem
	require.NoError(t, db.First(&item, items[0].ID).Error)
	assert.Equal(t, 20.50, item.UnitPrice)
}

func TestPlaceOrderMissingProductWritesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService()

	user := createUser(t, db, "buyer")
	maker := createManufacturer(t, db, "Cipla Ltd")
	product := createProduct(t, db, models.Product{
		Name: "Crocin 500", SKU: "CRO-500", ManufacturerID: maker.ID,
		Price: 20.50, IsActive: true,
	})

	_, err := svc.Place(user.Username, OrderInput{
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: 9999, Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.NotFound))
	assert.Contains(t, err.Error(), "Product 9999 not found")

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestPlaceOrderRejectsEmptyItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService()
	user := createUser(t, db, "buyer")

	_, err := svc.Place(user.Username, OrderInput{})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Validation))
}

func TestPlaceOrderRejectsZeroQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService()

	user := createUser(t, db, "buyer")
	maker := createManufacturer(t, db, "Cipla Ltd")
	product := createProduct(t, db, models.Product{
		Name: "Crocin 500", SKU: "CRO-500", ManufacturerID: maker.ID, IsActive: true,
	})

	_, err := svc.Place(user.Username, OrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 0}},
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Validation))
}

func TestHistoryReturnsOwnOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService()

	user := createUser(t, db, "buyer")
	other := createUser(t, db, "other")

	for i, num := range []string{"ORD-AAAA0001", "ORD-AAAA0002"} {
		require.NoError(t, db.Create(&models.Order{
			UserID: user.ID, OrderNumber: num,
			Status: models.OrderStatusPending, TotalAmount: float64(10 * (i + 1)),
		}).Error)
	}
	require.NoError(t, db.Create(&models.Order{
		UserID: other.ID, OrderNumber: "ORD-BBBB0001",
		Status: models.OrderStatusPending,
	}).Error)

	orders, err := svc.History(user.Username)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.NotEqual(t, "ORD-BBBB0001", o.OrderNumber)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	o := &models.Order{Status: models.OrderStatusPending}
	assert.True(t, o.CanTransitionTo(models.OrderStatusConfirmed))
	assert.False(t, o.CanTransitionTo(models.OrderStatusDelivered))
	assert.True(t, o.CanTransitionTo(models.OrderStatusCancelled))

	o.Status = models.OrderStatusDelivered
	assert.False(t, o.CanTransitionTo(models.OrderStatusCancelled))
}
