package identity

import (
	"time"

	"github.com/storeops/backend/internal/domain/shared"
)

// Permission is a named capability that can be granted to roles
type Permission struct {
	shared.BaseEntity
	Code        string
	Description string
}

// Role groups permissions for assignment to employees
type Role struct {
	shared.BaseEntity
	Name        string
	Description string
	Permissions []Permission
	UserCount   int64
}

// NewRole creates a new role
func NewRole(name, description string) (*Role, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ROLE_NAME", "Role name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_ROLE_NAME", "Role name cannot exceed 100 characters")
	}
	return &Role{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Permissions: make([]Permission, 0),
	}, nil
}

// Rename updates the role name
func (r *Role) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_ROLE_NAME", "Role name cannot be empty")
	}
	r.Name = name
	r.UpdatedAt = time.Now()
	return nil
}

// GrantPermission adds a permission if not already granted
func (r *Role) GrantPermission(p Permission) {
	for _, existing := range r.Permissions {
		if existing.Code == p.Code {
			return
		}
	}
	r.Permissions = append(r.Permissions, p)
	r.UpdatedAt = time.Now()
}

// RevokePermission removes a permission by code
func (r *Role) RevokePermission(code string) {
	for i, p := range r.Permissions {
		if p.Code == code {
			r.Permissions = append(r.Permissions[:i], r.Permissions[i+1:]...)
			r.UpdatedAt = time.Now()
			return
		}
	}
}

// HasPermission reports whether the role grants a permission code
func (r *Role) HasPermission(code string) bool {
	for _, p := range r.Permissions {
		if p.Code == code {
			return true
		}
	}
	return false
}
