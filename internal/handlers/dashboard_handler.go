package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sachin6736/crmproject-sub002/config"
	"github.com/sachin6736/crmproject-sub002/internal/analytics"
	"github.com/sachin6736/crmproject-sub002/internal/scope"
	"github.com/sachin6736/crmproject-sub002/models"
)

// GetOrderAggregateHandler serves the dashboard analytics: per-window,
// per-status counts, per-window amount totals, and the PO-Sent vendor
// cost aggregate, all over the caller's role-scoped order set.
func GetOrderAggregateHandler(c *gin.Context) {
	role, userID := requestScope(c)
	rs, err := scope.ForRole(role)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	windows, err := analytics.Windows(
		time.Now(),
		config.Location,
		c.Query("selectedMonth"),
		c.Query("selectedYear"),
	)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	// One bounded range query covers every window; whole-table scans
	// stay off the hot path.
	spanStart, spanEnd := analytics.Span(windows)

	var orders []models.Order
	if err := config.DB.Model(&models.Order{}).
		Scopes(rs.Query(userID)).
		Where("orders.created_at >= ? AND orders.created_at < ?", spanStart, spanEnd).
		Preload("Vendors").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch orders for aggregation"})
		return
	}

	summary := analytics.Aggregate(orders, windows)

	c.JSON(http.StatusOK, gin.H{
		"statusComparison":  summary.StatusComparison,
		"orderAmountTotals": summary.OrderAmountTotals,
		"poSentCount":       summary.POSentCount,
		"poSentTotalAmount": summary.POSentTotalAmount,
	})
}
