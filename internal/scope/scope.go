// Role-based order visibility. Each role owns one entry in the strategy
// table below; adding a role means adding an entry, not another branch in
// a handler.
package scope

import (
	"gorm.io/gorm"

	"github.com/sachin6736/crmproject-sub002/models"
)

// RoleScope is one role's visibility rule, expressed twice: as a pure
// predicate over a loaded order and as a GORM scope producing the same
// subset in SQL. The two must agree.
type RoleScope struct {
	// Visible reports whether the user may see the order.
	Visible func(o *models.Order, userID uint) bool
	// Query narrows a listing/aggregation query to the visible subset.
	Query func(userID uint) func(db *gorm.DB) *gorm.DB
	// MarksOwn roles see every order but carry an isOwnOrder highlight
	// instead of a filter.
	MarksOwn bool
}

func allOrders(uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db }
}

var roleScopes = map[string]RoleScope{
	models.RoleAdmin: {
		Visible: func(*models.Order, uint) bool { return true },
		Query:   allOrders,
	},
	models.RoleSales: {
		Visible: func(o *models.Order, userID uint) bool { return o.SalesPerson == userID },
		Query: func(userID uint) func(db *gorm.DB) *gorm.DB {
			return func(db *gorm.DB) *gorm.DB {
				return db.Where("orders.sales_person = ?", userID)
			}
		},
	},
	models.RoleCustomerRelations: {
		Visible:  func(*models.Order, uint) bool { return true },
		Query:    allOrders,
		MarksOwn: true,
	},
	models.RoleProcurement: {
		Visible: func(o *models.Order, userID uint) bool { return o.ProcurementPerson == userID },
		Query: func(userID uint) func(db *gorm.DB) *gorm.DB {
			return func(db *gorm.DB) *gorm.DB {
				return db.Where("orders.procurement_person = ?", userID)
			}
		},
	},
}

// ForRole resolves the scope for a role. Unknown roles fail with
// UnauthorizedRoleError; there is no default-allow entry.
func ForRole(role string) (RoleScope, error) {
	rs, ok := roleScopes[role]
	if !ok {
		return RoleScope{}, &models.UnauthorizedRoleError{Role: role}
	}
	return rs, nil
}

// IsOwn derives the customer-relations highlight flag.
func IsOwn(o *models.Order, userID uint) bool {
	return o.CreatedBy == userID
}
