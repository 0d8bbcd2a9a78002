package models

import "testing"

func TestDisplayLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"LocatePending", "Locate Pending"},
		{"POPending", "PO Pending"},
		{"POSent", "PO Sent"},
		{"POConfirmed", "PO Confirmed"},
		{"VendorPaymentPending", "Vendor Payment Pending"},
		{"VendorPaymentConfirmed", "Vendor Payment Confirmed"},
		{"ShippingPending", "Shipping Pending"},
		{"ShipOut", "Ship Out"},
		{"Intransit", "Intransit"},
		{"Delivered", "Delivered"},
		{"ReplacementCancelled", "Replacement Cancelled"},
		{"NoResponse", "No Response"},
		{"PriceTooHigh", "Price Too High"},
		// Strings outside the catalog pass through without failing.
		{"SomethingElse", "Something Else"},
		{"already plain", "already plain"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DisplayLabel(tc.in); got != tc.want {
			t.Errorf("DisplayLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStatusValidity(t *testing.T) {
	for _, s := range OrderStatuses {
		if !IsValidOrderStatus(s) {
			t.Errorf("expected %q to be a valid order status", s)
		}
	}
	if IsValidOrderStatus("NotAStatus") {
		t.Error("NotAStatus should not be a valid order status")
	}
	if IsValidOrderStatus("POSent") {
		t.Error("POSent is a vendor-level sub-status, not an order status")
	}

	for _, s := range VendorPoStatuses {
		if !IsValidVendorPoStatus(s) {
			t.Errorf("expected %q to be a valid vendor PO status", s)
		}
	}
	if IsValidVendorPoStatus("Shipped") {
		t.Error("Shipped should not be a valid vendor PO status")
	}

	if !IsValidLeadStatus("Ordered") {
		t.Error("Ordered should be a valid lead status")
	}
	if IsValidLeadStatus("Delivered") {
		t.Error("Delivered should not be a valid lead status")
	}
}

func TestOrderStatusCatalogOrder(t *testing.T) {
	// The iteration order is the canonical workflow path with the side
	// branches last; dashboards rely on it being stable.
	want := []string{
		"LocatePending", "POPending", "POConfirmed",
		"VendorPaymentPending", "VendorPaymentConfirmed",
		"ShippingPending", "ShipOut", "Intransit", "Delivered",
		"Replacement", "Litigation", "ReplacementCancelled",
	}
	if len(OrderStatuses) != len(want) {
		t.Fatalf("catalog has %d statuses, want %d", len(OrderStatuses), len(want))
	}
	for i, s := range want {
		if OrderStatuses[i] != s {
			t.Errorf("catalog[%d] = %q, want %q", i, OrderStatuses[i], s)
		}
	}

	labels := OrderStatusLabels()
	if len(labels) != len(want) {
		t.Fatalf("OrderStatusLabels returned %d entries, want %d", len(labels), len(want))
	}
	for i, l := range labels {
		if l.Status != want[i] {
			t.Errorf("labels[%d].Status = %q, want %q", i, l.Status, want[i])
		}
	}
}
