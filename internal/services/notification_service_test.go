// internal/services/notification_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/anikshop/anikshop-backend/internal/models"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	db           *gorm.DB
	service      *NotificationService
	orderService *OrderService
	product      *models.Product
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.service = NewNotificationService(suite.db)
	suite.orderService = NewOrderService(suite.db)
	suite.product = createTestProduct(suite.T(), suite.db, "Panjabi", 500)
}

func (suite *NotificationServiceTestSuite) placeOrder() {
	_, err := suite.orderService.PlaceOrder(nil, &PlaceOrderRequest{
		ProductID:       suite.product.ID,
		CustomerName:    "Rahim",
		CustomerPhone:   "01711000000",
		CustomerAddress: "Dhaka",
	})
	suite.NoError(err)
}

func (suite *NotificationServiceTestSuite) TestDrainIsDestructive() {
	suite.placeOrder()
	suite.placeOrder()
	suite.placeOrder()

	count, err := suite.service.DrainUnnotified()
	suite.NoError(err)
	suite.Equal(int64(3), count)

	// Immediately draining again yields zero: each order is counted once.
	count, err = suite.service.DrainUnnotified()
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *NotificationServiceTestSuite) TestDrainOnEmptyLedger() {
	count, err := suite.service.DrainUnnotified()
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *NotificationServiceTestSuite) TestNewOrdersAfterDrainAreCounted() {
	suite.placeOrder()

	count, err := suite.service.DrainUnnotified()
	suite.NoError(err)
	suite.Equal(int64(1), count)

	suite.placeOrder()
	suite.placeOrder()

	count, err = suite.service.DrainUnnotified()
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *NotificationServiceTestSuite) TestDrainMarksOrdersNotified() {
	suite.placeOrder()

	_, err := suite.service.DrainUnnotified()
	suite.NoError(err)

	var unnotified int64
	suite.db.Model(&models.Order{}).Where("notified = ?", false).Count(&unnotified)
	suite.Equal(int64(0), unnotified)
}

func TestNotificationServiceSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
