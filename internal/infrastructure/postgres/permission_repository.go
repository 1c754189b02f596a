package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo registros de permiso por rol y por sección.
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// UpsertRolePermission crea o reemplaza el override de un rol sobre módulo+acción.
func (r *PermissionRepo) UpsertRolePermission(ctx context.Context, p entity.RolePermission) error {
	query := `
		INSERT INTO role_permissions (role, module, action, allowed)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (role, module, action) DO UPDATE SET allowed = EXCLUDED.allowed`
	if _, err := r.q.Exec(ctx, query, p.Role, p.Module, p.Action, p.Allowed); err != nil {
		return fmt.Errorf("upsert role permission: %w", err)
	}
	return nil
}

// AddSectionPermission concede módulo+acción a una sección (idempotente).
func (r *PermissionRepo) AddSectionPermission(ctx context.Context, p entity.SectionPermission) error {
	query := `
		INSERT INTO section_permissions (section_id, module, action)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`
	if _, err := r.q.Exec(ctx, query, p.SectionID, p.Module, p.Action); err != nil {
		return fmt.Errorf("insert section permission: %w", err)
	}
	return nil
}

// ListRolePermissions overrides de un rol.
func (r *PermissionRepo) ListRolePermissions(ctx context.Context, role string) ([]entity.RolePermission, error) {
	rows, err := r.q.Query(ctx, `SELECT role, module, action, allowed FROM role_permissions WHERE role = $1`, role)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer rows.Close()

	var list []entity.RolePermission
	for rows.Next() {
		var p entity.RolePermission
		if err := rows.Scan(&p.Role, &p.Module, &p.Action, &p.Allowed); err != nil {
			return nil, fmt.Errorf("scan role permission: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListSectionPermissions concesiones de una sección.
func (r *PermissionRepo) ListSectionPermissions(ctx context.Context, sectionID string) ([]entity.SectionPermission, error) {
	rows, err := r.q.Query(ctx, `SELECT section_id, module, action FROM section_permissions WHERE section_id = $1`, sectionID)
	if err != nil {
		return nil, fmt.Errorf("list section permissions: %w", err)
	}
	defer rows.Close()

	var list []entity.SectionPermission
	for rows.Next() {
		var p entity.SectionPermission
		if err := rows.Scan(&p.SectionID, &p.Module, &p.Action); err != nil {
			return nil, fmt.Errorf("scan section permission: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
