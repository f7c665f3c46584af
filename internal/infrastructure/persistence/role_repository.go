package persistence

import (
	"context"
	"errors"

	"github.com/storeops/backend/internal/domain/identity"
	"github.com/storeops/backend/internal/domain/shared"
	"github.com/storeops/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRoleRepository implements identity.RoleRepository using GORM
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GormRoleRepository
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// FindByID finds a role by its ID with permissions and user count
func (r *GormRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).
		Preload("Permissions").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	if err := r.attachUserCounts(ctx, []*models.RoleModel{&model}); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a role by its unique name
func (r *GormRoleRepository) FindByName(ctx context.Context, name string) (*identity.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).
		Preload("Permissions").
		First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds roles matching the filter with total count
func (r *GormRoleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Role, int64, error) {
	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&models.RoleModel{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var roleModels []models.RoleModel
	if err := query.
		Preload("Permissions").
		Order("name ASC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&roleModels).Error; err != nil {
		return nil, 0, err
	}

	refs := make([]*models.RoleModel, len(roleModels))
	for i := range roleModels {
		refs[i] = &roleModels[i]
	}
	if err := r.attachUserCounts(ctx, refs); err != nil {
		return nil, 0, err
	}

	roles := make([]identity.Role, len(roleModels))
	for i := range roleModels {
		roles[i] = *roleModels[i].ToDomain()
	}
	return roles, total, nil
}

// FindAllPermissions returns the full permission catalog
func (r *GormRoleRepository) FindAllPermissions(ctx context.Context) ([]identity.Permission, error) {
	var permissionModels []models.PermissionModel
	if err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&permissionModels).Error; err != nil {
		return nil, err
	}

	permissions := make([]identity.Permission, len(permissionModels))
	for i := range permissionModels {
		permissions[i] = permissionModels[i].ToDomain()
	}
	return permissions, nil
}

// Save persists a new role with its permission grants
func (r *GormRoleRepository) Save(ctx context.Context, role *identity.Role) error {
	model := &models.RoleModel{}
	model.FromDomain(role)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists role changes, replacing its permission grants
func (r *GormRoleRepository) Update(ctx context.Context, role *identity.Role) error {
	model := &models.RoleModel{}
	model.FromDomain(role)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.RoleModel{}).
			Where("id = ?", role.ID).
			Updates(map[string]interface{}{
				"name":        model.Name,
				"description": model.Description,
				"updated_at":  model.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Model(model).Association("Permissions").Replace(model.Permissions)
	})
}

// Delete removes a role and its permission grants
func (r *GormRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM role_permissions WHERE role_model_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.RoleModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// attachUserCounts populates UserCount from the employee-role assignment
// table for the given roles
func (r *GormRoleRepository) attachUserCounts(ctx context.Context, roleModels []*models.RoleModel) error {
	if len(roleModels) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(roleModels))
	for i, m := range roleModels {
		ids[i] = m.ID
	}

	var rows []models.RoleUserCountRow
	if err := r.db.WithContext(ctx).
		Raw("SELECT role_id, COUNT(*) AS count FROM employee_roles WHERE role_id IN ? GROUP BY role_id", ids).
		Scan(&rows).Error; err != nil {
		return err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.RoleID] = row.Count
	}
	for _, m := range roleModels {
		m.UserCount = counts[m.ID]
	}
	return nil
}
