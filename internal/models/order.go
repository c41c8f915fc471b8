// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Order snapshots the customer contact and the computed amounts at purchase
// time; later edits to the user profile or the product price never change a
// historical order.
type Order struct {
	BaseModel
	UserID    *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	ProductID uuid.UUID  `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int        `json:"quantity" gorm:"default:1;not null"`

	CustomerName    string `json:"customer_name" gorm:"size:100;not null"`
	CustomerPhone   string `json:"customer_phone" gorm:"size:20;not null"`
	CustomerAddress string `json:"customer_address" gorm:"type:text;not null"`

	PaymentMethod string `json:"payment_method" gorm:"size:50;not null"`
	BkashNumber   string `json:"bkash_number,omitempty" gorm:"size:20"`
	TransactionID string `json:"transaction_id,omitempty" gorm:"size:100"`

	DeliveryArea  string  `json:"delivery_area" gorm:"size:200"`
	CourierCharge float64 `json:"courier_charge" gorm:"type:decimal(10,2);not null"`
	TotalAmount   float64 `json:"total_amount" gorm:"type:decimal(10,2);not null"`

	DeliveryStatus DeliveryStatus `json:"delivery_status" gorm:"type:varchar(20);default:'placed';index"`
	Notified       bool           `json:"notified" gorm:"default:false;index"`

	SelectedSize  string `json:"selected_size,omitempty" gorm:"size:50"`
	SelectedColor string `json:"selected_color,omitempty" gorm:"size:50"`

	DeliveredAt *time.Time `json:"delivered_at"`

	// Relationships
	User    *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
