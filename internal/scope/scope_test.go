package scope

import (
	"errors"
	"testing"

	"github.com/sachin6736/crmproject-sub002/models"
)

func TestForRoleUnknown(t *testing.T) {
	for _, role := range []string{"", "manager", "ADMIN", "Sales"} {
		_, err := ForRole(role)
		if err == nil {
			t.Fatalf("role %q should not resolve", role)
		}
		var roleErr *models.UnauthorizedRoleError
		if !errors.As(err, &roleErr) {
			t.Fatalf("expected UnauthorizedRoleError for %q, got %T", role, err)
		}
	}
}

func TestSalesVisibility(t *testing.T) {
	rs, err := ForRole(models.RoleSales)
	if err != nil {
		t.Fatalf("ForRole(sales): %v", err)
	}

	o1 := models.Order{SalesPerson: 7}
	o2 := models.Order{SalesPerson: 9}

	if !rs.Visible(&o1, 7) {
		t.Error("sales user 7 should see their own order")
	}
	if rs.Visible(&o2, 7) {
		t.Error("sales user 7 should not see user 9's order")
	}
	if rs.MarksOwn {
		t.Error("sales filters, it does not mark")
	}
}

func TestProcurementVisibility(t *testing.T) {
	rs, err := ForRole(models.RoleProcurement)
	if err != nil {
		t.Fatalf("ForRole(procurement): %v", err)
	}

	o := models.Order{ProcurementPerson: 3, SalesPerson: 7}
	if !rs.Visible(&o, 3) {
		t.Error("procurement user 3 should see their assigned order")
	}
	if rs.Visible(&o, 7) {
		t.Error("sales assignment must not grant procurement visibility")
	}
}

func TestAdminAndCustomerRelationsSeeEverything(t *testing.T) {
	o := models.Order{SalesPerson: 7, ProcurementPerson: 3, CreatedBy: 5}

	admin, _ := ForRole(models.RoleAdmin)
	if !admin.Visible(&o, 999) {
		t.Error("admin sees all orders")
	}
	if admin.MarksOwn {
		t.Error("admin does not mark own orders")
	}

	cr, _ := ForRole(models.RoleCustomerRelations)
	if !cr.Visible(&o, 999) {
		t.Error("customer relations sees all orders")
	}
	if !cr.MarksOwn {
		t.Error("customer relations listings carry the isOwnOrder flag")
	}
	if !IsOwn(&o, 5) || IsOwn(&o, 7) {
		t.Error("IsOwn must compare against CreatedBy only")
	}
}
