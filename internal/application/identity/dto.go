package identity

import (
	"time"

	"github.com/storeops/backend/internal/domain/identity"
)

// CreateRoleRequest is the payload for creating a role
type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=500"`
	Permissions []string `json:"permissions"`
}

// UpdateRoleRequest is the payload for updating a role
type UpdateRoleRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=500"`
	Permissions []string `json:"permissions"`
}

// RoleListFilter is the request filter for the role list
type RoleListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// PermissionResponse is one grantable permission on the wire
type PermissionResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// RoleResponse is a role with its granted permissions on the wire
type RoleResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Permissions []PermissionResponse `json:"permissions"`
	UserCount   int64                `json:"user_count"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ToPermissionResponse converts a domain permission to its wire shape
func ToPermissionResponse(p identity.Permission) PermissionResponse {
	return PermissionResponse{
		ID:          p.ID.String(),
		Code:        p.Code,
		Description: p.Description,
	}
}

// ToRoleResponse converts a domain role to its wire shape
func ToRoleResponse(r *identity.Role) RoleResponse {
	permissions := make([]PermissionResponse, len(r.Permissions))
	for i, p := range r.Permissions {
		permissions[i] = ToPermissionResponse(p)
	}
	return RoleResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
		Permissions: permissions,
		UserCount:   r.UserCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
