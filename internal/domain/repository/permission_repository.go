package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// PermissionRepository registros explícitos de permiso por rol y por sección.
type PermissionRepository interface {
	UpsertRolePermission(ctx context.Context, p entity.RolePermission) error
	AddSectionPermission(ctx context.Context, p entity.SectionPermission) error
	ListRolePermissions(ctx context.Context, role string) ([]entity.RolePermission, error)
	ListSectionPermissions(ctx context.Context, sectionID string) ([]entity.SectionPermission, error)
}
