package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var (
	_ repository.ActorRepository   = (*ActorRepo)(nil)
	_ repository.SectionRepository = (*SectionRepo)(nil)
)

// ActorRepo directorio de actores sobre PostgreSQL.
type ActorRepo struct {
	q Querier
}

// NewActorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActorRepository(q Querier) *ActorRepo {
	return &ActorRepo{q: q}
}

// Create persiste un actor.
func (r *ActorRepo) Create(ctx context.Context, a *entity.Actor) error {
	query := `INSERT INTO actors (id, name, role, section_id, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, a.ID, a.Name, a.Role, nullable(a.SectionID), a.CreatedAt)
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
	query := `
		SELECT a.id, a.name, a.role, COALESCE(a.section_id, ''), COALESCE(s.name, ''), a.created_at
		FROM actors a LEFT JOIN sections s ON s.id = a.section_id
		WHERE a.id = $1`
	var a entity.Actor
	err := r.q.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Role, &a.SectionID, &a.SectionName, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get actor: %w", err)
	}
	return &a, nil
}

// SectionRepo secciones de planta sobre PostgreSQL.
type SectionRepo struct {
	q Querier
}

// NewSectionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSectionRepository(q Querier) *SectionRepo {
	return &SectionRepo{q: q}
}

// Create persiste una sección.
func (r *SectionRepo) Create(ctx context.Context, s *entity.Section) error {
	_, err := r.q.Exec(ctx, `INSERT INTO sections (id, name, created_at) VALUES ($1, $2, $3)`, s.ID, s.Name, s.CreatedAt)
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
	var s entity.Section
	err := r.q.QueryRow(ctx, `SELECT id, name, created_at FROM sections WHERE id = $1`, id).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get section: %w", err)
	}
	return &s, nil
}
