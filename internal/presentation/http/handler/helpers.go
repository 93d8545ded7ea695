package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the authenticated user ID from the gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userID, exists := c.Get("user_id")
	if !exists {
		return nil
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		return nil
	}

	return &id
}

// GetUserEmail extracts the authenticated user email from the gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}

	emailStr, ok := email.(string)
	if !ok {
		return ""
	}

	return emailStr
}

// GetUserRoles extracts the authenticated user roles from the gin context
func GetUserRoles(c *gin.Context) []string {
	roles, exists := c.Get("user_roles")
	if !exists {
		return nil
	}

	rolesSlice, ok := roles.([]string)
	if !ok {
		return nil
	}

	return rolesSlice
}

// GetUserPermissions extracts the authenticated user permissions from the gin context
func GetUserPermissions(c *gin.Context) []string {
	permissions, exists := c.Get("user_permissions")
	if !exists {
		return nil
	}

	permsSlice, ok := permissions.([]string)
	if !ok {
		return nil
	}

	return permsSlice
}

// IsAdmin checks if the current user has an admin role
func IsAdmin(c *gin.Context) bool {
	roles := GetUserRoles(c)
	for _, role := range roles {
		if role == "super-admin" || role == "admin" {
			return true
		}
	}
	return false
}
