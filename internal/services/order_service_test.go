// internal/services/order_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/anikshop/anikshop-backend/internal/models"
)

func TestDeriveDeliveryStatus(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	order := &models.Order{DeliveryStatus: models.DeliveryStatusPlaced}
	order.CreatedAt = created

	assert.Equal(t, models.DeliveryStatusPlaced, DeriveDeliveryStatus(order, created.Add(24*time.Hour)))
	assert.Equal(t, models.DeliveryStatusPlaced, DeriveDeliveryStatus(order, created.Add(48*time.Hour-time.Second)))
	assert.Equal(t, models.DeliveryStatusDelivered, DeriveDeliveryStatus(order, created.Add(48*time.Hour)))
	assert.Equal(t, models.DeliveryStatusDelivered, DeriveDeliveryStatus(order, created.Add(30*24*time.Hour)))

	// An already-delivered order stays delivered regardless of the clock.
	order.DeliveryStatus = models.DeliveryStatusDelivered
	assert.Equal(t, models.DeliveryStatusDelivered, DeriveDeliveryStatus(order, created))
}

type OrderServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *OrderService
	product *models.Product
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.service = NewOrderService(suite.db)
	suite.product = createTestProduct(suite.T(), suite.db, "Panjabi", 500)
}

func (suite *OrderServiceTestSuite) validRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{
		ProductID:       suite.product.ID,
		Quantity:        2,
		CustomerName:    "Rahim Uddin",
		CustomerPhone:   "01711000000",
		CustomerAddress: "Dhaka, Bangladesh",
		PaymentMethod:   "Cash on Delivery",
	}
}

func (suite *OrderServiceTestSuite) TestPlaceOrder() {
	order, err := suite.service.PlaceOrder(nil, suite.validRequest())

	suite.NoError(err)
	suite.Equal(100.0, order.CourierCharge)
	suite.Equal(1100.0, order.TotalAmount)
	suite.Equal(models.DeliveryStatusPlaced, order.DeliveryStatus)
	suite.False(order.Notified)
	suite.Nil(order.DeliveredAt)
	suite.Equal(2, order.Quantity)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderOutsideDhaka() {
	req := suite.validRequest()
	req.CustomerAddress = "Agrabad, Chittagong"

	order, err := suite.service.PlaceOrder(nil, req)

	suite.NoError(err)
	suite.Equal(200.0, order.CourierCharge)
	suite.Equal(1200.0, order.TotalAmount)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderQuantityDefaultsToOne() {
	req := suite.validRequest()
	req.Quantity = 0

	order, err := suite.service.PlaceOrder(nil, req)

	suite.NoError(err)
	suite.Equal(1, order.Quantity)
	suite.Equal(600.0, order.TotalAmount)
}

func (suite *OrderServiceTestSuite) TestPlaceOrderMissingFields() {
	for _, mutate := range []func(*PlaceOrderRequest){
		func(r *PlaceOrderRequest) { r.CustomerName = "   " },
		func(r *PlaceOrderRequest) { r.CustomerPhone = "" },
		func(r *PlaceOrderRequest) { r.CustomerAddress = "\t" },
	} {
		req := suite.validRequest()
		mutate(req)

		_, err := suite.service.PlaceOrder(nil, req)
		suite.ErrorIs(err, ErrInvalidInput)
	}

	var count int64
	suite.db.Model(&models.Order{}).Count(&count)
	suite.Equal(int64(0), count, "no partial order should be persisted")
}

func (suite *OrderServiceTestSuite) TestPlaceOrderUnknownProduct() {
	req := suite.validRequest()
	req.ProductID = uuid.New()

	_, err := suite.service.PlaceOrder(nil, req)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestTotalAmountIsASnapshot() {
	order, err := suite.service.PlaceOrder(nil, suite.validRequest())
	suite.NoError(err)

	// A later price change must not touch the historical order.
	suite.db.Model(&models.Product{}).Where("id = ?", suite.product.ID).Update("price", 9000)

	reloaded, err := suite.service.GetOrder(order.ID)
	suite.NoError(err)
	suite.Equal(1100.0, reloaded.TotalAmount)
}

func (suite *OrderServiceTestSuite) TestGetOrderBeforeDeliveryWindow() {
	order, err := suite.service.PlaceOrder(nil, suite.validRequest())
	suite.NoError(err)

	later := NewOrderServiceWithClock(suite.db, func() time.Time {
		return time.Now().Add(24 * time.Hour)
	})

	got, err := later.GetOrder(order.ID)
	suite.NoError(err)
	suite.Equal(models.DeliveryStatusPlaced, got.DeliveryStatus)
	suite.Nil(got.DeliveredAt)
}

func (suite *OrderServiceTestSuite) TestGetOrderAdvancesAfterDeliveryWindow() {
	order, err := suite.service.PlaceOrder(nil, suite.validRequest())
	suite.NoError(err)

	readInstant := time.Now().Add(49 * time.Hour)
	later := NewOrderServiceWithClock(suite.db, func() time.Time { return readInstant })

	got, err := later.GetOrder(order.ID)
	suite.NoError(err)
	suite.Equal(models.DeliveryStatusDelivered, got.DeliveryStatus)
	suite.NotNil(got.DeliveredAt)
	suite.WithinDuration(readInstant, *got.DeliveredAt, time.Second)

	// The transition is persisted, not just derived for the response.
	var stored models.Order
	suite.NoError(suite.db.First(&stored, "id = ?", order.ID).Error)
	suite.Equal(models.DeliveryStatusDelivered, stored.DeliveryStatus)
	suite.NotNil(stored.DeliveredAt)
}

func (suite *OrderServiceTestSuite) TestGetOrderDeliveredAtIsStable() {
	order, err := suite.service.PlaceOrder(nil, suite.validRequest())
	suite.NoError(err)

	first := time.Now().Add(49 * time.Hour)
	svc := NewOrderServiceWithClock(suite.db, func() time.Time { return first })
	got, err := svc.GetOrder(order.ID)
	suite.NoError(err)
	firstStamp := *got.DeliveredAt

	// A later read must not re-stamp the delivered time.
	second := NewOrderServiceWithClock(suite.db, func() time.Time {
		return first.Add(72 * time.Hour)
	})
	got, err = second.GetOrder(order.ID)
	suite.NoError(err)
	suite.WithinDuration(firstStamp, *got.DeliveredAt, time.Second)
}

func (suite *OrderServiceTestSuite) TestGetOrderNotFound() {
	_, err := suite.service.GetOrder(uuid.New())
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestListUserOrdersNewestFirst() {
	user := &models.User{Username: "rahim", Email: "rahim@example.com", PasswordHash: "x"}
	suite.NoError(suite.db.Create(user).Error)

	for i := 0; i < 3; i++ {
		order, err := suite.service.PlaceOrder(&user.ID, suite.validRequest())
		suite.NoError(err)
		// Space creation times out so the ordering is deterministic.
		suite.db.Model(order).Update("created_at", time.Now().Add(time.Duration(i)*time.Hour))
	}

	orders, err := suite.service.ListUserOrders(user.ID)
	suite.NoError(err)
	suite.Len(orders, 3)
	for i := 1; i < len(orders); i++ {
		suite.True(orders[i-1].CreatedAt.After(orders[i].CreatedAt) ||
			orders[i-1].CreatedAt.Equal(orders[i].CreatedAt))
	}
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
