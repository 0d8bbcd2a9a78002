package models

import "gorm.io/gorm"

// Recognized roles. The visibility rules for each live in internal/scope;
// anything outside this set is rejected, never default-allowed.
const (
	RoleAdmin             = "admin"
	RoleSales             = "sales"
	RoleCustomerRelations = "customer_relations"
	RoleProcurement       = "procurement"
)

var Roles = []string{RoleAdmin, RoleSales, RoleCustomerRelations, RoleProcurement}

func IsValidRole(r string) bool {
	for _, known := range Roles {
		if known == r {
			return true
		}
	}
	return false
}

type User struct {
	gorm.Model
	Login        string `json:"login" gorm:"unique;not null"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role" gorm:"not null"`
	PasswordHash string `json:"-" gorm:"not null"`
}
