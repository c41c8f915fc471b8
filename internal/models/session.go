// internal/models/session.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Session is the server-side bag behind an opaque browsing-session token. It
// holds the favourites list (insertion-ordered) and, once logged in, the user
// identity. Rows survive process restarts, unlike in-memory session state.
type Session struct {
	BaseModel
	Token      string         `json:"token" gorm:"uniqueIndex;size:64;not null"`
	UserID     *uuid.UUID     `json:"user_id" gorm:"type:uuid;index"`
	Favourites pq.StringArray `json:"favourites" gorm:"type:text[]"`
}
