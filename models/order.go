package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor is a per-supplier purchase-order line inside an order. Lines are
// added and updated only through procurement actions and are removed only
// when the owning order is deleted.
type Vendor struct {
	gorm.Model
	OrderID      uint    `json:"orderId" gorm:"index;not null"`
	BusinessName string  `json:"businessName" gorm:"not null"`
	PoStatus     string  `json:"poStatus" gorm:"default:POPending"`
	TotalCost    float64 `json:"totalCost"`
}

// Order is a confirmed purchase created from exactly one lead. The lead is
// referenced, not owned: LeadID may point at an archived record.
type Order struct {
	gorm.Model
	OrderNumber     string  `json:"orderId" gorm:"uniqueIndex;not null"`
	LeadID          *uint   `json:"leadId"`
	ClientName      string  `json:"clientName"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	BillingAddress  string  `json:"billingAddress"`
	ShippingAddress string  `json:"shippingAddress"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status" gorm:"default:LocatePending"`

	SalesPerson       uint `json:"salesPerson"`
	ProcurementPerson uint `json:"procurementPerson"`
	CreatedBy         uint `json:"createdBy"`

	Lead    *Lead    `json:"lead,omitempty" gorm:"foreignKey:LeadID"`
	Vendors []Vendor `json:"vendors,omitempty" gorm:"foreignKey:OrderID"`
}

// NewOrderNumber generates the human-readable order identifier. The GORM
// primary key remains the internal unique key.
func NewOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// Validate enforces the creation invariants: a strictly positive amount
// and a catalog status.
func (o *Order) Validate() error {
	if o.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be strictly positive"}
	}
	if o.Status != "" && !IsValidOrderStatus(o.Status) {
		return &ValidationError{Field: "status", Reason: "unknown order status " + o.Status}
	}
	return nil
}

// PartRequested resolves the part description from the source lead,
// degrading to "N/A" when the lead is gone.
func (o *Order) PartRequested() string {
	if o.Lead == nil {
		return "N/A"
	}
	return o.Lead.PartRequested
}
