package models

import (
	"time"

	"gorm.io/gorm"
)

// ImportantDate is a follow-up calendar date attached to a lead. Dates are
// kept sorted ascending when listed.
type ImportantDate struct {
	gorm.Model
	LeadID uint      `json:"leadId"`
	Date   time.Time `json:"date"`
}

// Lead is a prospect record. Leads are never deleted by this service; an
// order keeps only a reference, so lead-derived display fields degrade to
// "N/A" when the lead is archived elsewhere.
type Lead struct {
	gorm.Model
	ClientName      string  `json:"clientName" gorm:"not null"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	PartRequested   string  `json:"partRequested"`
	VehicleMake     string  `json:"make"`
	VehicleModel    string  `json:"model"`
	VehicleYear     int     `json:"year"`
	BillingAddress  string  `json:"billingAddress"`
	ShippingAddress string  `json:"shippingAddress"`
	TotalCost       float64 `json:"totalCost"`
	Status          string  `json:"status" gorm:"default:Quoted"`
	CreatedBy       uint    `json:"createdBy"`
	AssignedTo      uint    `json:"assignedTo"`

	ImportantDates []ImportantDate `json:"importantDates,omitempty" gorm:"foreignKey:LeadID"`
}
