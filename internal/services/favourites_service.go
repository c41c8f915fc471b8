// internal/services/favourites_service.go
package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/anikshop/anikshop-backend/internal/models"
)

// FavouritesService keeps a per-session wishlist of product IDs. The set
// lives in a server-side session row keyed by an opaque token, so it survives
// process restarts but not the session itself.
type FavouritesService struct {
	db *gorm.DB
}

func NewFavouritesService(db *gorm.DB) *FavouritesService {
	return &FavouritesService{db: db}
}

// EnsureSession returns the session row for the token, creating a fresh one
// (with a new token) when the token is empty or unknown.
func (s *FavouritesService) EnsureSession(token string) (*models.Session, error) {
	if token != "" {
		var session models.Session
		err := s.db.First(&session, "token = ?", token).Error
		if err == nil {
			return &session, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	session := &models.Session{
		Token:      newSessionToken(),
		Favourites: pq.StringArray{},
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to create session: %v", ErrPersistence, err)
	}
	return session, nil
}

// Toggle flips a product in and out of the session's favourites. A repeated
// toggle restores the set, including its order, to what it was before the
// pair of calls. Returns whether the product was added.
func (s *FavouritesService) Toggle(token string, productID uuid.UUID) (*models.Session, bool, error) {
	session, err := s.EnsureSession(token)
	if err != nil {
		return nil, false, err
	}

	id := productID.String()
	added := true
	updated := make(pq.StringArray, 0, len(session.Favourites)+1)
	for _, fav := range session.Favourites {
		if fav == id {
			added = false
			continue
		}
		updated = append(updated, fav)
	}
	if added {
		updated = append(updated, id)
	}

	session.Favourites = updated
	if err := s.db.Model(session).Update("favourites", updated).Error; err != nil {
		return nil, false, fmt.Errorf("%w: failed to update favourites: %v", ErrPersistence, err)
	}

	return session, added, nil
}

// List resolves the session's favourites against the catalog in insertion
// order. Identifiers whose product has since been deleted are skipped, not
// treated as an error.
func (s *FavouritesService) List(token string) (*models.Session, []models.Product, error) {
	session, err := s.EnsureSession(token)
	if err != nil {
		return nil, nil, err
	}

	if len(session.Favourites) == 0 {
		return session, []models.Product{}, nil
	}

	ids := make([]uuid.UUID, 0, len(session.Favourites))
	for _, fav := range session.Favourites {
		if id, err := uuid.Parse(fav); err == nil {
			ids = append(ids, id)
		}
	}

	var found []models.Product
	if err := s.db.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	byID := make(map[string]models.Product, len(found))
	for _, p := range found {
		byID[p.ID.String()] = p
	}

	products := make([]models.Product, 0, len(found))
	for _, fav := range session.Favourites {
		if p, ok := byID[fav]; ok {
			products = append(products, p)
		}
	}

	return session, products, nil
}

func newSessionToken() string {
	buf := make([]byte, 32)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
