package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sachin6736/crmproject-sub002/config"
	"github.com/sachin6736/crmproject-sub002/internal/scope"
	"github.com/sachin6736/crmproject-sub002/models"
)

type orderInput struct {
	LeadID          uint    `json:"leadId" binding:"required"`
	Amount          float64 `json:"amount"`
	ClientName      string  `json:"clientName"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	BillingAddress  string  `json:"billingAddress"`
	ShippingAddress string  `json:"shippingAddress"`
	SalesPerson     uint    `json:"salesPerson"`
	Procurement     uint    `json:"procurementPerson"`
}

// OrderListItem decorates an order with the customer-relations highlight
// flag; the flag is derived per request, never stored.
type OrderListItem struct {
	models.Order
	IsOwnOrder *bool `json:"isOwnOrder,omitempty"`
}

// CreateOrderHandler creates an order from a lead. The order insert and
// the lead's flip to Ordered run in one transaction: if either fails,
// neither is committed.
func CreateOrderHandler(c *gin.Context) {
	var input orderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := contextUserID(c)
	var created models.Order

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var lead models.Lead
		if err := tx.First(&lead, input.LeadID).Error; err != nil {
			return notFoundOr(err, "lead", fmt.Sprint(input.LeadID))
		}

		salesPerson := input.SalesPerson
		if salesPerson == 0 {
			salesPerson = lead.AssignedTo
		}

		leadID := lead.ID
		order := models.Order{
			OrderNumber:       models.NewOrderNumber(),
			LeadID:            &leadID,
			ClientName:        firstNonEmpty(input.ClientName, lead.ClientName),
			Phone:             firstNonEmpty(input.Phone, lead.Phone),
			Email:             firstNonEmpty(input.Email, lead.Email),
			BillingAddress:    firstNonEmpty(input.BillingAddress, lead.BillingAddress),
			ShippingAddress:   firstNonEmpty(input.ShippingAddress, lead.ShippingAddress),
			Amount:            input.Amount,
			Status:            models.StatusLocatePending,
			SalesPerson:       salesPerson,
			ProcurementPerson: input.Procurement,
			CreatedBy:         userID,
		}

		if err := order.Validate(); err != nil {
			return err
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		lead.Status = models.LeadStatusOrdered
		if err := tx.Save(&lead).Error; err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Sortable listing columns; anything else falls back to the default
// most-recent-first order.
var orderSortColumns = map[string]string{
	"createdAt":  "orders.created_at",
	"amount":     "orders.amount",
	"status":     "orders.status",
	"clientName": "orders.client_name",
}

// ListOrdersHandler returns the role-scoped, searched, filtered and
// paginated order listing.
func ListOrdersHandler(c *gin.Context) {
	role, userID := requestScope(c)
	rs, err := scope.ForRole(role)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	query := config.DB.Model(&models.Order{}).
		Select("orders.*").
		Joins("LEFT JOIN leads ON orders.lead_id = leads.id").
		Scopes(rs.Query(userID))

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(orders.order_number) LIKE ? OR LOWER(orders.client_name) LIKE ? OR LOWER(orders.phone) LIKE ? OR LOWER(orders.email) LIKE ? OR LOWER(leads.part_requested) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("orders.status = ?", status)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count orders"})
		return
	}

	page, pageSize := PageParams(c)
	totalPages := TotalPages(totalRows, pageSize)
	page = ClampPage(page, totalPages)

	orderBy := "orders.created_at DESC"
	if col, ok := orderSortColumns[c.Query("sortBy")]; ok {
		direction := "ASC"
		if strings.EqualFold(c.Query("sortDir"), "desc") {
			direction = "DESC"
		}
		orderBy = col + " " + direction
	}

	var orders []models.Order
	if err := query.Preload("Vendors").Preload("Lead").
		Scopes(Paginate(page, pageSize)).Order(orderBy).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch orders"})
		return
	}

	items := make([]OrderListItem, 0, len(orders))
	for i := range orders {
		item := OrderListItem{Order: orders[i]}
		if rs.MarksOwn {
			own := scope.IsOwn(&orders[i], userID)
			item.IsOwnOrder = &own
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":      items,
		"totalRows":   totalRows,
		"totalPages":  totalPages,
		"currentPage": page,
		"pageSize":    pageSize,
	})
}

// GetOrderHandler returns one order with vendor lines and lead. A record
// outside the caller's visibility is an authorization failure, not an
// empty result.
func GetOrderHandler(c *gin.Context) {
	role, userID := requestScope(c)
	rs, err := scope.ForRole(role)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	id := c.Param("id")
	var order models.Order
	if err := findOrder(config.DB.Preload("Vendors").Preload("Lead"), &order, id); err != nil {
		writeDomainError(c, err)
		return
	}

	if !rs.Visible(&order, userID) {
		writeDomainError(c, &models.UnauthorizedRoleError{Role: role})
		return
	}

	item := OrderListItem{Order: order}
	if rs.MarksOwn {
		own := scope.IsOwn(&order, userID)
		item.IsOwnOrder = &own
	}

	c.JSON(http.StatusOK, item)
}

// DeleteOrderHandler removes an order together with its vendor lines. The
// source lead is untouched.
func DeleteOrderHandler(c *gin.Context) {
	id := c.Param("id")

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := findOrder(tx, &order, id); err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Vendor{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
