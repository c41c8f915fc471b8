// internal/services/notification_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/anikshop/anikshop-backend/internal/models"
)

// NotificationService surfaces orders the admin dashboard has not seen yet.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// DrainUnnotified counts the orders nobody has been told about and marks them
// notified, in one transaction. The read is destructive: each order is counted
// by exactly one drain, so an immediate second call reports zero.
func (s *NotificationService) DrainUnnotified() (int64, error) {
	var count int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).
			Where("notified = ?", false).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			return nil
		}

		return tx.Model(&models.Order{}).
			Where("notified = ?", false).
			Update("notified", true).Error
	})

	if err != nil {
		return 0, fmt.Errorf("%w: failed to drain notifications: %v", ErrPersistence, err)
	}

	if count > 0 {
		logrus.WithField("new_orders", count).Info("Admin notified of new orders")
	}

	return count, nil
}
