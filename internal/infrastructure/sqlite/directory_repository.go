package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var (
	_ repository.ActorRepository      = (*ActorRepo)(nil)
	_ repository.SectionRepository    = (*SectionRepo)(nil)
	_ repository.PermissionRepository = (*PermissionRepo)(nil)
)

// ActorRepo directorio de actores sobre SQLite.
type ActorRepo struct {
	q sqlx.ExtContext
}

// NewActorRepository construye el adaptador.
func NewActorRepository(q sqlx.ExtContext) *ActorRepo {
	return &ActorRepo{q: q}
}

// Create persiste un actor.
func (r *ActorRepo) Create(ctx context.Context, a *entity.Actor) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO actors (id, name, role, section_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Role, nullable(a.SectionID), textTime{a.CreatedAt})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("actor %s: %w", a.ID, domain.ErrConflict)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("sección %s: %w", a.SectionID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert actor: %w", err)
	}
	return nil
}

// GetByID obtiene un actor con el nombre de su sección; nil si no existe.
func (r *ActorRepo) GetByID(ctx context.Context, id string) (*entity.Actor, error) {
	var row struct {
		ID          string   `db:"id"`
		Name        string   `db:"name"`
		Role        string   `db:"role"`
		SectionID   string   `db:"section_id"`
		SectionName string   `db:"section_name"`
		CreatedAt   textTime `db:"created_at"`
	}
	query := `
		SELECT a.id, a.name, a.role, COALESCE(a.section_id, '') AS section_id,
			COALESCE(s.name, '') AS section_name, a.created_at
		FROM actors a LEFT JOIN sections s ON s.id = a.section_id
		WHERE a.id = ?`
	if err := sqlx.GetContext(ctx, r.q, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get actor: %w", err)
	}
	return &entity.Actor{
		ID:          row.ID,
		Name:        row.Name,
		Role:        row.Role,
		SectionID:   row.SectionID,
		SectionName: row.SectionName,
		CreatedAt:   row.CreatedAt.Time,
	}, nil
}

// SectionRepo secciones de planta sobre SQLite.
type SectionRepo struct {
	q sqlx.ExtContext
}

// NewSectionRepository construye el adaptador.
func NewSectionRepository(q sqlx.ExtContext) *SectionRepo {
	return &SectionRepo{q: q}
}

// Create persiste una sección.
func (r *SectionRepo) Create(ctx context.Context, s *entity.Section) error {
	_, err := r.q.ExecContext(ctx, `INSERT INTO sections (id, name, created_at) VALUES (?, ?, ?)`,
		s.ID, s.Name, textTime{s.CreatedAt})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("sección %s: %w", s.ID, domain.ErrConflict)
		}
		return fmt.Errorf("insert section: %w", err)
	}
	return nil
}

// GetByID obtiene una sección; nil si no existe.
func (r *SectionRepo) GetByID(ctx context.Context, id string) (*entity.Section, error) {
	var row struct {
		ID        string   `db:"id"`
		Name      string   `db:"name"`
		CreatedAt textTime `db:"created_at"`
	}
	if err := sqlx.GetContext(ctx, r.q, &row, `SELECT id, name, created_at FROM sections WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get section: %w", err)
	}
	return &entity.Section{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt.Time}, nil
}

// PermissionRepo registros de permiso por rol y por sección.
type PermissionRepo struct {
	q sqlx.ExtContext
}

// NewPermissionRepository construye el adaptador.
func NewPermissionRepository(q sqlx.ExtContext) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// UpsertRolePermission crea o reemplaza el override de un rol sobre módulo+acción.
func (r *PermissionRepo) UpsertRolePermission(ctx context.Context, p entity.RolePermission) error {
	query := `
		INSERT INTO role_permissions (role, module, action, allowed) VALUES (?, ?, ?, ?)
		ON CONFLICT (role, module, action) DO UPDATE SET allowed = excluded.allowed`
	if _, err := r.q.ExecContext(ctx, query, p.Role, p.Module, p.Action, p.Allowed); err != nil {
		return fmt.Errorf("upsert role permission: %w", err)
	}
	return nil
}

// AddSectionPermission concede módulo+acción a una sección (idempotente).
func (r *PermissionRepo) AddSectionPermission(ctx context.Context, p entity.SectionPermission) error {
	query := `INSERT OR IGNORE INTO section_permissions (section_id, module, action) VALUES (?, ?, ?)`
	if _, err := r.q.ExecContext(ctx, query, p.SectionID, p.Module, p.Action); err != nil {
		return fmt.Errorf("insert section permission: %w", err)
	}
	return nil
}

// ListRolePermissions overrides de un rol.
func (r *PermissionRepo) ListRolePermissions(ctx context.Context, role string) ([]entity.RolePermission, error) {
	var rows []struct {
		Role    string `db:"role"`
		Module  string `db:"module"`
		Action  string `db:"action"`
		Allowed bool   `db:"allowed"`
	}
	if err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT role, module, action, allowed FROM role_permissions WHERE role = ?`, role); err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	out := make([]entity.RolePermission, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.RolePermission{Role: row.Role, Module: row.Module, Action: row.Action, Allowed: row.Allowed})
	}
	return out, nil
}

// ListSectionPermissions concesiones de una sección.
func (r *PermissionRepo) ListSectionPermissions(ctx context.Context, sectionID string) ([]entity.SectionPermission, error) {
	var rows []struct {
		SectionID string `db:"section_id"`
		Module    string `db:"module"`
		Action    string `db:"action"`
	}
	if err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT section_id, module, action FROM section_permissions WHERE section_id = ?`, sectionID); err != nil {
		return nil, fmt.Errorf("list section permissions: %w", err)
	}
	out := make([]entity.SectionPermission, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.SectionPermission{SectionID: row.SectionID, Module: row.Module, Action: row.Action})
	}
	return out, nil
}
