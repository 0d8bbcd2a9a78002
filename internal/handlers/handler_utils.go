package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sachin6736/crmproject-sub002/models"
)

// writeDomainError maps the model error taxonomy onto HTTP status codes.
// Anything unclassified is a 500; store failures are left to the caller to
// retry with backoff.
func writeDomainError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError
	var roleErr *models.UnauthorizedRoleError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &roleErr):
		c.JSON(http.StatusForbidden, gin.H{"error": roleErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// requestScope resolves the role and user the request is scoped to: query
// parameters win when present (dashboards ask on behalf of a view), the
// authenticated context fills the rest.
func requestScope(c *gin.Context) (role string, userID uint) {
	role = c.Query("role")
	if role == "" {
		if v, ok := c.Get("role"); ok {
			role, _ = v.(string)
		}
	}

	if idStr := c.Query("userId"); idStr != "" {
		if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
			userID = uint(id)
		}
	} else if v, ok := c.Get("user_id"); ok {
		userID, _ = v.(uint)
	}
	return role, userID
}

// contextUserID returns the authenticated user's ID.
func contextUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// notFoundOr converts GORM's record-not-found into the domain taxonomy and
// passes every other store error through.
func notFoundOr(err error, resource, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.NotFoundError{Resource: resource, ID: id}
	}
	return err
}

// findOrder resolves an order by either identifier: the internal numeric
// key or the human-readable order number.
func findOrder(db *gorm.DB, order *models.Order, id string) error {
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return notFoundOr(db.First(order, n).Error, "order", id)
	}
	return notFoundOr(db.Where("order_number = ?", id).First(order).Error, "order", id)
}

// parseID parses a numeric path parameter for lead/vendor lookups.
func parseID(id, resource string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, &models.ValidationError{Field: resource + "Id", Reason: "must be numeric"}
	}
	return uint(n), nil
}
