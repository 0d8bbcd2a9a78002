package models

import (
	"errors"
	"strings"
	"testing"
)

func TestOrderValidateAmount(t *testing.T) {
	for _, amount := range []float64{0, -1, -500.25} {
		o := Order{Amount: amount, Status: StatusLocatePending}
		err := o.Validate()
		if err == nil {
			t.Fatalf("Validate with amount %v should fail", amount)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %T", err)
		}
		if ve.Field != "amount" {
			t.Errorf("expected field amount, got %q", ve.Field)
		}
	}

	o := Order{Amount: 500, Status: StatusLocatePending}
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate with positive amount: %v", err)
	}
}

func TestOrderValidateStatus(t *testing.T) {
	o := Order{Amount: 100, Status: "NotAStatus"}
	var ve *ValidationError
	if err := o.Validate(); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}
}

func TestNewOrderNumber(t *testing.T) {
	n := NewOrderNumber()
	if !strings.HasPrefix(n, "ORD-") {
		t.Fatalf("order number %q should start with ORD-", n)
	}
	if len(n) != len("ORD-")+8 {
		t.Fatalf("order number %q has unexpected length", n)
	}
	if n == NewOrderNumber() {
		t.Error("two generated order numbers should differ")
	}
}

func TestOrderPartRequested(t *testing.T) {
	o := Order{}
	if got := o.PartRequested(); got != "N/A" {
		t.Errorf("order without lead should report N/A, got %q", got)
	}
	o.Lead = &Lead{PartRequested: "alternator"}
	if got := o.PartRequested(); got != "alternator" {
		t.Errorf("expected alternator, got %q", got)
	}
}
