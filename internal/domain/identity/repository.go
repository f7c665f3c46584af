package identity

import (
	"context"

	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RoleRepository provides persistence for roles and permissions
type RoleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Role, error)
	FindByName(ctx context.Context, name string) (*Role, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Role, int64, error)
	FindAllPermissions(ctx context.Context) ([]Permission, error)
	Save(ctx context.Context, r *Role) error
	Update(ctx context.Context, r *Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}
