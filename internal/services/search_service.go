// internal/services/search_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/anikshop/anikshop-backend/internal/models"
)

type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// Search matches products whose name contains the query, case-insensitively.
// Every non-empty query is recorded in the search log, even with zero matches
// and even without a logged-in user; a blank query is a no-op that leaves no
// log row. The log write is best-effort: an audit failure must never turn a
// successful lookup into an error, so it is logged and swallowed.
func (s *SearchService) Search(query string, userID *uuid.UUID) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Product{}, nil
	}

	var products []models.Product
	pattern := "%" + strings.ToLower(query) + "%"
	if err := s.db.Where("LOWER(name) LIKE ?", pattern).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.recordSearch(query, userID)

	return products, nil
}

func (s *SearchService) recordSearch(query string, userID *uuid.UUID) {
	log := &models.SearchLog{
		UserID: userID,
		Query:  query,
	}
	if err := s.db.Create(log).Error; err != nil {
		logrus.WithError(err).WithField("query", query).Warn("Failed to record search log")
	}
}

// ListLogs returns the search history for the admin view, newest first.
func (s *SearchService) ListLogs() ([]models.SearchLog, error) {
	var logs []models.SearchLog
	if err := s.db.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return logs, nil
}
