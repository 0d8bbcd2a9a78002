package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/sachin6736/crmproject-sub002/config"
	"github.com/sachin6736/crmproject-sub002/internal/scope"
	"github.com/sachin6736/crmproject-sub002/models"
)

// ExportOrdersHandler streams the caller's role-scoped order book as an
// XLSX workbook, newest first.
func ExportOrdersHandler(c *gin.Context) {
	role, userID := requestScope(c)
	rs, err := scope.ForRole(role)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	var orders []models.Order
	if err := config.DB.Model(&models.Order{}).
		Scopes(rs.Query(userID)).
		Preload("Lead").
		Order("orders.created_at DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch orders for export"})
		return
	}

	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No orders found to export"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Orders"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Order Number", "Client", "Phone", "Email", "Part Requested",
		"Status", "Amount", "Amount In Words", "Created",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, o := range orders {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), o.OrderNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), o.ClientName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), o.Phone)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), o.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), o.PartRequested())
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), models.DisplayLabel(o.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), o.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), amountInWords(o.Amount))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), o.CreatedAt.In(config.Location).Format("2006-01-02 15:04"))
	}

	fileName := fmt.Sprintf("orders_%s.xlsx", time.Now().In(config.Location).Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write export file"})
	}
}

// amountInWords spells out a dollar amount, e.g. 450.50 ->
// "four hundred fifty dollars and 50 cents".
func amountInWords(amount float64) string {
	dollars := int(amount)
	cents := int(amount*100) % 100
	words := num2words.Convert(dollars) + " dollars"
	if cents > 0 {
		words = fmt.Sprintf("%s and %02d cents", words, cents)
	}
	return words
}
