// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/anikshop/anikshop-backend/internal/services"
	"github.com/anikshop/anikshop-backend/internal/utils"
)

type AdminHandler struct {
	orderService        *services.OrderService
	notificationService *services.NotificationService
	searchService       *services.SearchService
}

func NewAdminHandler(orderService *services.OrderService, notificationService *services.NotificationService, searchService *services.SearchService) *AdminHandler {
	return &AdminHandler{
		orderService:        orderService,
		notificationService: notificationService,
		searchService:       searchService,
	}
}

// GET /admin/orders/drain
func (h *AdminHandler) DrainNotifications(c *gin.Context) {
	count, err := h.notificationService.DrainUnnotified()
	if err != nil {
		respondServiceError(c, err, "order")
		return
	}

	utils.SuccessResponse(c, gin.H{"new_orders": count})
}

// GET /admin/orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListAllOrders()
	if err != nil {
		respondServiceError(c, err, "order")
		return
	}

	utils.SuccessResponse(c, orders)
}

// GET /admin/search-logs
func (h *AdminHandler) ListSearchLogs(c *gin.Context) {
	logs, err := h.searchService.ListLogs()
	if err != nil {
		respondServiceError(c, err, "search log")
		return
	}

	utils.SuccessResponse(c, logs)
}
