package request

// UpdateUserRolesRequest replaces the roles assigned to a user
type UpdateUserRolesRequest struct {
	RoleIDs []uint `json:"role_ids" binding:"required"`
}
