// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/anikshop/anikshop-backend/internal/models"
	"github.com/anikshop/anikshop-backend/internal/pricing"
)

// DeliveryWindow is how long an order stays "placed" before a status read
// reports it delivered.
const DeliveryWindow = 48 * time.Hour

type OrderService struct {
	db  *gorm.DB
	now func() time.Time
}

type PlaceOrderRequest struct {
	ProductID       uuid.UUID `json:"product_id" validate:"required"`
	Quantity        int       `json:"quantity"`
	CustomerName    string    `json:"customer_name" validate:"required"`
	CustomerPhone   string    `json:"customer_phone" validate:"required"`
	CustomerAddress string    `json:"customer_address" validate:"required"`
	PaymentMethod   string    `json:"payment_method"`
	BkashNumber     string    `json:"bkash_number,omitempty"`
	TransactionID   string    `json:"transaction_id,omitempty"`
	SelectedSize    string    `json:"selected_size,omitempty"`
	SelectedColor   string    `json:"selected_color,omitempty"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db, now: time.Now}
}

// NewOrderServiceWithClock injects the clock used for the delivery-window
// check. Production code uses time.Now.
func NewOrderServiceWithClock(db *gorm.DB, now func() time.Time) *OrderService {
	return &OrderService{db: db, now: now}
}

// DeriveDeliveryStatus is the pure transition rule: an order still placed at
// least DeliveryWindow after creation reads as delivered. It never touches
// the store; PlaceOrder/GetOrder own the persisting step.
func DeriveDeliveryStatus(order *models.Order, now time.Time) models.DeliveryStatus {
	if order.DeliveryStatus == models.DeliveryStatusPlaced && now.Sub(order.CreatedAt) >= DeliveryWindow {
		return models.DeliveryStatusDelivered
	}
	return order.DeliveryStatus
}

// PlaceOrder validates the purchase request, snapshots the contact fields and
// the product price, and persists the order in a single transaction. No
// partial order is ever visible.
func (s *OrderService) PlaceOrder(userID *uuid.UUID, req *PlaceOrderRequest) (*models.Order, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.CustomerAddress = strings.TrimSpace(req.CustomerAddress)
	req.PaymentMethod = strings.TrimSpace(req.PaymentMethod)
	if req.PaymentMethod == "" {
		req.PaymentMethod = "Cash on Delivery"
	}

	if req.CustomerName == "" || req.CustomerPhone == "" || req.CustomerAddress == "" {
		return nil, fmt.Errorf("%w: name, phone and address are required", ErrInvalidInput)
	}

	// A missing or malformed quantity in the inbound form means one unit.
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, req.ProductID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// The raw address doubles as the delivery area for the courier tariff.
	deliveryArea := req.CustomerAddress
	courierCharge, totalAmount, err := pricing.ComputeCharges(product.Price, req.Quantity, deliveryArea)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	order := &models.Order{
		UserID:          userID,
		ProductID:       product.ID,
		Quantity:        req.Quantity,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		PaymentMethod:   req.PaymentMethod,
		BkashNumber:     strings.TrimSpace(req.BkashNumber),
		TransactionID:   strings.TrimSpace(req.TransactionID),
		DeliveryArea:    deliveryArea,
		CourierCharge:   courierCharge,
		TotalAmount:     totalAmount,
		DeliveryStatus:  models.DeliveryStatusPlaced,
		Notified:        false,
		SelectedSize:    strings.TrimSpace(req.SelectedSize),
		SelectedColor:   strings.TrimSpace(req.SelectedColor),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to place order: %v", ErrPersistence, err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"product_id":   product.ID,
		"quantity":     order.Quantity,
		"total_amount": order.TotalAmount,
	}).Info("Order placed")

	return order, nil
}

// GetOrder looks up an order and advances its delivery status when the
// delivery window has elapsed. The transition is read-triggered: there is no
// background job, the status only moves when somebody asks for it. The
// conditional write runs in one transaction so two concurrent readers cannot
// stamp different delivery instants.
func (s *OrderService) GetOrder(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Product").First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}

		now := s.now()
		if DeriveDeliveryStatus(&order, now) == models.DeliveryStatusDelivered &&
			order.DeliveryStatus != models.DeliveryStatusDelivered {
			res := tx.Model(&models.Order{}).
				Where("id = ? AND delivery_status = ?", order.ID, models.DeliveryStatusPlaced).
				Updates(map[string]interface{}{
					"delivery_status": models.DeliveryStatusDelivered,
					"delivered_at":    now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				order.DeliveryStatus = models.DeliveryStatusDelivered
				order.DeliveredAt = &now
			}
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &order, nil
}

// ListUserOrders returns a user's orders, newest first.
func (s *OrderService) ListUserOrders(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return orders, nil
}

// ListAllOrders returns every order for the admin dashboard, newest first.
func (s *OrderService) ListAllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return orders, nil
}
