package models

import (
	"github.com/storeops/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// PermissionModel is the persistence model for permissions.
type PermissionModel struct {
	BaseModel
	Code        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (PermissionModel) TableName() string {
	return "permissions"
}

// ToDomain converts the persistence model to a domain Permission
func (m *PermissionModel) ToDomain() identity.Permission {
	return identity.Permission{
		BaseEntity:  m.BaseModel.ToDomain(),
		Code:        m.Code,
		Description: m.Description,
	}
}

// RoleModel is the persistence model for roles. Permissions go through a
// join table; UserCount is populated by the repository, not stored.
type RoleModel struct {
	BaseModel
	Name        string            `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string            `gorm:"type:varchar(500)"`
	Permissions []PermissionModel `gorm:"many2many:role_permissions"`
	UserCount   int64             `gorm:"-"`
}

// TableName returns the table name for GORM
func (RoleModel) TableName() string {
	return "roles"
}

// ToDomain converts the persistence model to a domain Role
func (m *RoleModel) ToDomain() *identity.Role {
	permissions := make([]identity.Permission, 0, len(m.Permissions))
	for i := range m.Permissions {
		permissions = append(permissions, m.Permissions[i].ToDomain())
	}
	return &identity.Role{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		Permissions: permissions,
		UserCount:   m.UserCount,
	}
}

// FromDomain populates the persistence model from a domain Role
func (m *RoleModel) FromDomain(r *identity.Role) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.Name = r.Name
	m.Description = r.Description
	m.Permissions = make([]PermissionModel, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		pm := PermissionModel{Code: p.Code, Description: p.Description}
		pm.FromDomainBaseEntity(p.BaseEntity)
		m.Permissions = append(m.Permissions, pm)
	}
}

// RoleUserCountRow carries the per-role employee count query result.
type RoleUserCountRow struct {
	RoleID uuid.UUID
	Count  int64
}
