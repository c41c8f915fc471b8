// internal/models/search_log.go
package models

import "github.com/google/uuid"

// SearchLog is append-only: rows are written once by the search service and
// only ever read afterwards.
type SearchLog struct {
	BaseModel
	UserID *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	Query  string     `json:"query" gorm:"size:200;not null"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
