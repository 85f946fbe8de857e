package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CodeAdityaP/Pixel/internal/models"
)

//
// --- Admin Dashboard Stats ---
//

type AdminStats struct {
	TotalProducts   int64            `json:"totalProducts"`
	LowStockCount   int              `json:"lowStockCount"`
	OutOfStockCount int              `json:"outOfStockCount"`
	TotalOrders     int64            `json:"totalOrders"`
	TotalSales      float64          `json:"totalSales"` // excludes cancelled orders
	OrdersByStatus  map[string]int64 `json:"ordersByStatus"`
}

// GetAdminStats returns KPI data for the admin dashboard
// GET /api/admin/dashboard-stats
func (h *Handlers) GetAdminStats(c *gin.Context) {
	stats := AdminStats{OrdersByStatus: map[string]int64{}}

	// 1. Catalog counts
	totalProducts, err := h.Products.Count(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	stats.TotalProducts = totalProducts

	products, err := h.Products.List(c.Request.Context(), "", "")
	if err != nil {
		writeError(c, err)
		return
	}
	for _, product := range products {
		if product.StockQuantity == 0 {
			stats.OutOfStockCount++
		} else if product.StockQuantity < 10 {
			stats.LowStockCount++
		}
	}

	// 2. Order breakdown across all users
	orderStats, err := h.Orders.Stats(c.Request.Context(), nil)
	if err != nil {
		writeError(c, err)
		return
	}
	stats.TotalOrders = orderStats.TotalOrders
	stats.TotalSales = orderStats.TotalSpent
	for _, row := range orderStats.StatusBreakdown {
		stats.OrdersByStatus[row.Status] = row.Count
	}
	for _, status := range []models.OrderStatus{
		models.OrderStatusPending, models.OrderStatusConfirmed,
		models.OrderStatusProcessing, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled,
	} {
		if _, present := stats.OrdersByStatus[string(status)]; !present {
			stats.OrdersByStatus[string(status)] = 0
		}
	}

	c.JSON(http.StatusOK, stats)
}
