// internal/handlers/favourites.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anikshop/anikshop-backend/internal/services"
	"github.com/anikshop/anikshop-backend/internal/utils"
)

const sessionTokenHeader = "X-Session-Token"

type FavouritesHandler struct {
	favouritesService *services.FavouritesService
}

type toggleFavouriteRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

func NewFavouritesHandler(favouritesService *services.FavouritesService) *FavouritesHandler {
	return &FavouritesHandler{favouritesService: favouritesService}
}

// POST /favourites/toggle
func (h *FavouritesHandler) Toggle(c *gin.Context) {
	var req toggleFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "No product_id provided", err.Error())
		return
	}

	session, added, err := h.favouritesService.Toggle(c.GetHeader(sessionTokenHeader), req.ProductID)
	if err != nil {
		respondServiceError(c, err, "session")
		return
	}

	message := "Removed from favourites."
	if added {
		message = "Added to favourites."
	}

	c.Header(sessionTokenHeader, session.Token)
	utils.SuccessResponse(c, gin.H{
		"added":   added,
		"message": message,
	})
}

// GET /favourites
func (h *FavouritesHandler) List(c *gin.Context) {
	session, products, err := h.favouritesService.List(c.GetHeader(sessionTokenHeader))
	if err != nil {
		respondServiceError(c, err, "session")
		return
	}

	c.Header(sessionTokenHeader, session.Token)
	utils.SuccessResponse(c, products)
}
