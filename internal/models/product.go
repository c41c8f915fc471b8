// internal/models/product.go
package models

type Product struct {
	BaseModel
	Name          string  `json:"name" gorm:"size:100;not null;index"`
	Description   string  `json:"description" gorm:"type:text;not null"`
	Price         float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Category      string  `json:"category" gorm:"size:50;index"`
	ImageFilename string  `json:"image_filename" gorm:"size:200"`
	IsApproved    bool    `json:"is_approved" gorm:"default:false"`

	// Relationships
	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:ProductID"`
}
