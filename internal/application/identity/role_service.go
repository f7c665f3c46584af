package identity

import (
	"context"
	"errors"

	"github.com/storeops/backend/internal/domain/identity"
	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoleService provides application services for role and permission management
type RoleService struct {
	roleRepo identity.RoleRepository
	logger   *zap.Logger
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo identity.RoleRepository, logger *zap.Logger) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// GetByID retrieves a role by ID
func (s *RoleService) GetByID(ctx context.Context, id uuid.UUID) (*RoleResponse, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToRoleResponse(role)
	return &resp, nil
}

// List retrieves a paginated list of roles
func (s *RoleService) List(ctx context.Context, filter RoleListFilter) ([]RoleResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	}
	domainFilter.Normalize()

	roles, total, err := s.roleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]RoleResponse, len(roles))
	for i := range roles {
		responses[i] = ToRoleResponse(&roles[i])
	}
	return responses, total, nil
}

// ListPermissions returns every grantable permission
func (s *RoleService) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	permissions, err := s.roleRepo.FindAllPermissions(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]PermissionResponse, len(permissions))
	for i, p := range permissions {
		responses[i] = ToPermissionResponse(p)
	}
	return responses, nil
}

// Create creates a role and grants the requested permissions
func (s *RoleService) Create(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error) {
	existing, err := s.roleRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	role, err := identity.NewRole(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.grantByCodes(ctx, role, req.Permissions); err != nil {
		return nil, err
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info("Role created",
		zap.String("role_id", role.ID.String()),
		zap.String("name", role.Name),
	)
	resp := ToRoleResponse(role)
	return &resp, nil
}

// Update renames a role and replaces its permission grants
func (s *RoleService) Update(ctx context.Context, id uuid.UUID, req UpdateRoleRequest) (*RoleResponse, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := role.Rename(req.Name); err != nil {
		return nil, err
	}
	role.Description = req.Description
	role.Permissions = role.Permissions[:0]
	if err := s.grantByCodes(ctx, role, req.Permissions); err != nil {
		return nil, err
	}

	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}
	resp := ToRoleResponse(role)
	return &resp, nil
}

// Delete removes a role. Roles still assigned to users cannot be deleted.
func (s *RoleService) Delete(ctx context.Context, id uuid.UUID) error {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if role.UserCount > 0 {
		return shared.ErrRoleInUse
	}

	if err := s.roleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Role deleted", zap.String("role_id", id.String()))
	return nil
}

func (s *RoleService) grantByCodes(ctx context.Context, role *identity.Role, codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	all, err := s.roleRepo.FindAllPermissions(ctx)
	if err != nil {
		return err
	}
	byCode := make(map[string]identity.Permission, len(all))
	for _, p := range all {
		byCode[p.Code] = p
	}
	for _, code := range codes {
		p, ok := byCode[code]
		if !ok {
			return shared.NewDomainError("UNKNOWN_PERMISSION", "Unknown permission code: "+code)
		}
		role.GrantPermission(p)
	}
	return nil
}
