package handlers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sachin6736/crmproject-sub002/config"
	"github.com/sachin6736/crmproject-sub002/models"
)

type leadInput struct {
	ClientName      string  `json:"clientName" binding:"required"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	PartRequested   string  `json:"partRequested"`
	VehicleMake     string  `json:"make"`
	VehicleModel    string  `json:"model"`
	VehicleYear     int     `json:"year"`
	BillingAddress  string  `json:"billingAddress"`
	ShippingAddress string  `json:"shippingAddress"`
	TotalCost       float64 `json:"totalCost"`
	AssignedTo      uint    `json:"assignedTo"`
}

// CreateLeadHandler registers a new prospect. When no assignee is given
// the lead is assigned to its creator.
func CreateLeadHandler(c *gin.Context) {
	var input leadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator := contextUserID(c)
	assignee := input.AssignedTo
	if assignee == 0 {
		assignee = creator
	}

	lead := models.Lead{
		ClientName:      input.ClientName,
		Phone:           input.Phone,
		Email:           input.Email,
		PartRequested:   input.PartRequested,
		VehicleMake:     input.VehicleMake,
		VehicleModel:    input.VehicleModel,
		VehicleYear:     input.VehicleYear,
		BillingAddress:  input.BillingAddress,
		ShippingAddress: input.ShippingAddress,
		TotalCost:       input.TotalCost,
		Status:          models.LeadStatusQuoted,
		CreatedBy:       creator,
		AssignedTo:      assignee,
	}

	if err := config.DB.Create(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create lead"})
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// ListLeadsHandler returns a paginated lead listing. Sales users see only
// leads they created or were assigned; every other recognized role sees
// the full set.
func ListLeadsHandler(c *gin.Context) {
	role, userID := requestScope(c)
	if !models.IsValidRole(role) {
		writeDomainError(c, &models.UnauthorizedRoleError{Role: role})
		return
	}

	query := config.DB.Model(&models.Lead{})
	if role == models.RoleSales {
		query = query.Where("created_by = ? OR assigned_to = ?", userID, userID)
	}

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(client_name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ? OR LOWER(part_requested) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count leads"})
		return
	}

	page, pageSize := PageParams(c)
	totalPages := TotalPages(totalRows, pageSize)
	page = ClampPage(page, totalPages)

	var leads []models.Lead
	if err := query.Scopes(Paginate(page, pageSize)).Order("created_at DESC").Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch leads"})
		return
	}
	if leads == nil {
		leads = make([]models.Lead, 0)
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:        leads,
		TotalRows:   totalRows,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	})
}

// GetLeadHandler returns one lead with its follow-up dates sorted
// ascending.
func GetLeadHandler(c *gin.Context) {
	id, err := parseID(c.Param("id"), "lead")
	if err != nil {
		writeDomainError(c, err)
		return
	}

	var lead models.Lead
	if err := config.DB.Preload("ImportantDates").First(&lead, id).Error; err != nil {
		writeDomainError(c, notFoundOr(err, "lead", c.Param("id")))
		return
	}

	sort.Slice(lead.ImportantDates, func(i, j int) bool {
		return lead.ImportantDates[i].Date.Before(lead.ImportantDates[j].Date)
	})

	c.JSON(http.StatusOK, lead)
}

// UpdateLeadStatusHandler sets a lead's status to any member of the lead
// catalog. Ordered is reserved for order creation, which flips it
// atomically.
func UpdateLeadStatusHandler(c *gin.Context) {
	id, err := parseID(c.Param("id"), "lead")
	if err != nil {
		writeDomainError(c, err)
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidLeadStatus(body.Status) {
		writeDomainError(c, &models.ValidationError{Field: "status", Reason: "unknown lead status " + body.Status})
		return
	}
	if body.Status == models.LeadStatusOrdered {
		writeDomainError(c, &models.ValidationError{Field: "status", Reason: "Ordered is set by order creation only"})
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, id).Error; err != nil {
		writeDomainError(c, notFoundOr(err, "lead", c.Param("id")))
		return
	}

	lead.Status = body.Status
	if err := config.DB.Save(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update lead"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// AddImportantDateHandler appends a follow-up date to a lead.
func AddImportantDateHandler(c *gin.Context) {
	id, err := parseID(c.Param("id"), "lead")
	if err != nil {
		writeDomainError(c, err)
		return
	}

	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", body.Date, config.Location)
	if err != nil {
		writeDomainError(c, &models.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"})
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, id).Error; err != nil {
		writeDomainError(c, notFoundOr(err, "lead", c.Param("id")))
		return
	}

	entry := models.ImportantDate{LeadID: lead.ID, Date: date}
	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save date"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}
