package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sachin6736/crmproject-sub002/config"
	"github.com/sachin6736/crmproject-sub002/models"
)

// ListStatusCatalogHandler exposes the fixed status catalogs with their
// display labels so every dashboard renders the same ordering.
func ListStatusCatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"orderStatuses":    models.OrderStatusLabels(),
		"vendorPoStatuses": models.VendorPoStatusLabels(),
	})
}

// UpdateOrderStatusHandler sets an order's status to any member of the
// order catalog. No adjacency rules: manual overrides between arbitrary
// statuses are allowed.
func UpdateOrderStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidOrderStatus(body.Status) {
		writeDomainError(c, &models.ValidationError{Field: "status", Reason: "unknown order status " + body.Status})
		return
	}

	var order models.Order
	if err := findOrder(config.DB, &order, id); err != nil {
		writeDomainError(c, err)
		return
	}

	order.Status = body.Status
	if err := config.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update order status"})
		return
	}

	if err := config.DB.Preload("Vendors").Preload("Lead").First(&order, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not reload order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// AddVendorHandler attaches a new vendor PO line to an order.
func AddVendorHandler(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		BusinessName string  `json:"businessName" binding:"required"`
		TotalCost    float64 `json:"totalCost"`
		PoStatus     string  `json:"poStatus"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	poStatus := body.PoStatus
	if poStatus == "" {
		poStatus = models.PoStatusPending
	}
	if !models.IsValidVendorPoStatus(poStatus) {
		writeDomainError(c, &models.ValidationError{Field: "poStatus", Reason: "unknown PO status " + poStatus})
		return
	}

	var order models.Order
	if err := findOrder(config.DB, &order, id); err != nil {
		writeDomainError(c, err)
		return
	}

	vendor := models.Vendor{
		OrderID:      order.ID,
		BusinessName: body.BusinessName,
		PoStatus:     poStatus,
		TotalCost:    body.TotalCost,
	}
	if err := config.DB.Create(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not add vendor"})
		return
	}

	if err := config.DB.Preload("Vendors").First(&order, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not reload order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateVendorPoStatusHandler sets one vendor line's PO sub-status. The
// vendor must belong to the addressed order.
func UpdateVendorPoStatusHandler(c *gin.Context) {
	id := c.Param("id")
	vendorID := c.Param("vendorId")

	var body struct {
		PoStatus string `json:"poStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidVendorPoStatus(body.PoStatus) {
		writeDomainError(c, &models.ValidationError{Field: "poStatus", Reason: "unknown PO status " + body.PoStatus})
		return
	}

	var order models.Order
	if err := findOrder(config.DB, &order, id); err != nil {
		writeDomainError(c, err)
		return
	}

	vendorKey, err := parseID(vendorID, "vendor")
	if err != nil {
		writeDomainError(c, err)
		return
	}

	var vendor models.Vendor
	if err := config.DB.Where("id = ? AND order_id = ?", vendorKey, order.ID).First(&vendor).Error; err != nil {
		writeDomainError(c, notFoundOr(err, "vendor", vendorID))
		return
	}

	vendor.PoStatus = body.PoStatus
	if err := config.DB.Save(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update vendor PO status"})
		return
	}

	if err := config.DB.Preload("Vendors").First(&order, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not reload order"})
		return
	}
	c.JSON(http.StatusOK, order)
}
