// internal/handlers/search.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/anikshop/anikshop-backend/internal/services"
	"github.com/anikshop/anikshop-backend/internal/utils"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// GET /search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")

	products, err := h.searchService.Search(query, currentUserID(c))
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}

	utils.SuccessResponseWithMeta(c, products, gin.H{"query": query})
}
