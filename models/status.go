package models

import "regexp"

// Order statuses, in canonical workflow order. The slice order is the
// single display/iteration order every dashboard and summary table uses;
// the two terminal branches (Replacement, Litigation, ReplacementCancelled)
// come last.
const (
	StatusLocatePending          = "LocatePending"
	StatusPOPending              = "POPending"
	StatusPOConfirmed            = "POConfirmed"
	StatusVendorPaymentPending   = "VendorPaymentPending"
	StatusVendorPaymentConfirmed = "VendorPaymentConfirmed"
	StatusShippingPending        = "ShippingPending"
	StatusShipOut                = "ShipOut"
	StatusIntransit              = "Intransit"
	StatusDelivered              = "Delivered"
	StatusReplacement            = "Replacement"
	StatusLitigation             = "Litigation"
	StatusReplacementCancelled   = "ReplacementCancelled"
)

var OrderStatuses = []string{
	StatusLocatePending,
	StatusPOPending,
	StatusPOConfirmed,
	StatusVendorPaymentPending,
	StatusVendorPaymentConfirmed,
	StatusShippingPending,
	StatusShipOut,
	StatusIntransit,
	StatusDelivered,
	StatusReplacement,
	StatusLitigation,
	StatusReplacementCancelled,
}

// Vendor-level purchase order sub-statuses. POSent sits between POPending
// and POConfirmed in the workflow but is tracked per vendor line, not on
// the order itself.
const (
	PoStatusPending   = "POPending"
	PoStatusSent      = "POSent"
	PoStatusConfirmed = "POConfirmed"
)

var VendorPoStatuses = []string{
	PoStatusPending,
	PoStatusSent,
	PoStatusConfirmed,
}

// Lead statuses. Ordered flips exactly when an order is created from the
// lead; everything else is set manually by sales/customer relations.
const (
	LeadStatusQuoted           = "Quoted"
	LeadStatusNoResponse       = "NoResponse"
	LeadStatusWrongNumber      = "WrongNumber"
	LeadStatusNotInterested    = "NotInterested"
	LeadStatusPriceTooHigh     = "PriceTooHigh"
	LeadStatusPartNotAvailable = "PartNotAvailable"
	LeadStatusOrdered          = "Ordered"
)

var LeadStatuses = []string{
	LeadStatusQuoted,
	LeadStatusNoResponse,
	LeadStatusWrongNumber,
	LeadStatusNotInterested,
	LeadStatusPriceTooHigh,
	LeadStatusPartNotAvailable,
	LeadStatusOrdered,
}

var (
	orderStatusSet    = statusSet(OrderStatuses)
	vendorPoStatusSet = statusSet(VendorPoStatuses)
	leadStatusSet     = statusSet(LeadStatuses)
)

func statusSet(statuses []string) map[string]struct{} {
	set := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}

func IsValidOrderStatus(s string) bool {
	_, ok := orderStatusSet[s]
	return ok
}

func IsValidVendorPoStatus(s string) bool {
	_, ok := vendorPoStatusSet[s]
	return ok
}

func IsValidLeadStatus(s string) bool {
	_, ok := leadStatusSet[s]
	return ok
}

var (
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	camelBoundary   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// DisplayLabel expands a camel-joined status identifier into words:
// "VendorPaymentPending" -> "Vendor Payment Pending", "POSent" -> "PO Sent".
// Strings outside the catalogs pass through with the same splitting applied,
// so an unknown stored value still renders instead of failing.
func DisplayLabel(s string) string {
	label := acronymBoundary.ReplaceAllString(s, "$1 $2")
	return camelBoundary.ReplaceAllString(label, "$1 $2")
}

// StatusLabel pairs a catalog identifier with its display form.
type StatusLabel struct {
	Status string `json:"status"`
	Label  string `json:"label"`
}

// OrderStatusLabels returns the full order catalog in canonical order.
func OrderStatusLabels() []StatusLabel {
	labels := make([]StatusLabel, 0, len(OrderStatuses))
	for _, s := range OrderStatuses {
		labels = append(labels, StatusLabel{Status: s, Label: DisplayLabel(s)})
	}
	return labels
}

// VendorPoStatusLabels returns the vendor PO catalog in canonical order.
func VendorPoStatusLabels() []StatusLabel {
	labels := make([]StatusLabel, 0, len(VendorPoStatuses))
	for _, s := range VendorPoStatuses {
		labels = append(labels, StatusLabel{Status: s, Label: DisplayLabel(s)})
	}
	return labels
}
