package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/access"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// AccessService es el único punto de la aplicación que resuelve permisos de actores.
// Carga actor y registros de permiso y delega la decisión en domain/access.
// Un fallo al leer el directorio o los permisos se devuelve como error: nunca se permite por defecto.
type AccessService struct {
	actorRepo      repository.ActorRepository
	permissionRepo repository.PermissionRepository
}

// NewAccessService construye el servicio de permisos.
func NewAccessService(actorRepo repository.ActorRepository, permissionRepo repository.PermissionRepository) *AccessService {
	return &AccessService{actorRepo: actorRepo, permissionRepo: permissionRepo}
}

// ResolveActor obtiene el actor del directorio. ErrUnauthorized si el id no existe.
func (s *AccessService) ResolveActor(ctx context.Context, actorID string) (*entity.Actor, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	actor, err := s.actorRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("resolver actor: %w: %w", domain.ErrPermissionLookup, err)
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return actor, nil
}

func (s *AccessService) grants(ctx context.Context, actor *entity.Actor) (access.Grants, error) {
	var g access.Grants
	roleOverrides, err := s.permissionRepo.ListRolePermissions(ctx, actor.Role)
	if err != nil {
		return g, fmt.Errorf("permisos de rol: %w: %w", domain.ErrPermissionLookup, err)
	}
	g.RoleOverrides = roleOverrides
	if actor.HasSection() {
		sectionGrants, err := s.permissionRepo.ListSectionPermissions(ctx, actor.SectionID)
		if err != nil {
			return g, fmt.Errorf("permisos de sección: %w: %w", domain.ErrPermissionLookup, err)
		}
		g.SectionGrants = sectionGrants
	}
	return g, nil
}

// CanViewStage evalúa el acceso del actor a la vista de una etapa.
func (s *AccessService) CanViewStage(ctx context.Context, actorID string, stage entity.Stage) (access.Decision, error) {
	actor, err := s.ResolveActor(ctx, actorID)
	if err != nil {
		return access.Decision{}, err
	}
	g, err := s.grants(ctx, actor)
	if err != nil {
		return access.Decision{}, err
	}
	return access.CanViewStage(actor, stage, g), nil
}

// CanMutateModule evalúa si el actor puede ejecutar action sobre module.
func (s *AccessService) CanMutateModule(ctx context.Context, actorID, module, action string) (access.Decision, error) {
	actor, err := s.ResolveActor(ctx, actorID)
	if err != nil {
		return access.Decision{}, err
	}
	g, err := s.grants(ctx, actor)
	if err != nil {
		return access.Decision{}, err
	}
	return access.CanMutateModule(actor, module, action, g), nil
}

// AuthorizeStage exige ver la etapa y, si action no es view, poder ejecutarla sobre el módulo de la etapa.
// Devuelve *domain.AuthorizationError ante una denegación.
func (s *AccessService) AuthorizeStage(ctx context.Context, actorID string, stage entity.Stage, action string) (*entity.Actor, error) {
	actor, err := s.ResolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	g, err := s.grants(ctx, actor)
	if err != nil {
		return nil, err
	}
	if d := access.CanViewStage(actor, stage, g); !d.Allowed {
		return nil, &domain.AuthorizationError{ActorID: actor.ID, Resource: "etapa " + string(stage), Reason: d.Reason}
	}
	if action != entity.ActionView {
		module := access.StageModule(stage)
		if d := access.CanMutateModule(actor, module, action, g); !d.Allowed {
			return nil, &domain.AuthorizationError{ActorID: actor.ID, Resource: module + "/" + action, Reason: d.Reason}
		}
	}
	return actor, nil
}

// StageMatrix decisiones de vista para todas las etapas (GET /api/me/access).
func (s *AccessService) StageMatrix(ctx context.Context, actorID string) (*dto.AccessResponse, error) {
	actor, err := s.ResolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	g, err := s.grants(ctx, actor)
	if err != nil {
		return nil, err
	}
	out := &dto.AccessResponse{
		ActorID: actor.ID,
		Name:    actor.Name,
		Role:    actor.Role,
		Section: actor.SectionName,
		Stages:  make([]dto.StageAccessDTO, 0, len(entity.Stages)),
	}
	for _, st := range entity.Stages {
		d := access.CanViewStage(actor, st, g)
		out.Stages = append(out.Stages, dto.StageAccessDTO{Stage: string(st), Allowed: d.Allowed, Reason: d.Reason})
	}
	return out, nil
}
