package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

type memActors map[string]*entity.Actor

func (m memActors) Create(_ context.Context, a *entity.Actor) error {
	m[a.ID] = a
	return nil
}

func (m memActors) GetByID(_ context.Context, id string) (*entity.Actor, error) { return m[id], nil }

type memPermissions struct {
	roles    []entity.RolePermission
	sections []entity.SectionPermission
	err      error
}

func (m *memPermissions) UpsertRolePermission(_ context.Context, p entity.RolePermission) error {
	m.roles = append(m.roles, p)
	return nil
}

func (m *memPermissions) AddSectionPermission(_ context.Context, p entity.SectionPermission) error {
	m.sections = append(m.sections, p)
	return nil
}

func (m *memPermissions) ListRolePermissions(_ context.Context, role string) ([]entity.RolePermission, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []entity.RolePermission
	for _, p := range m.roles {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPermissions) ListSectionPermissions(_ context.Context, sectionID string) ([]entity.SectionPermission, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []entity.SectionPermission
	for _, p := range m.sections {
		if p.SectionID == sectionID {
			out = append(out, p)
		}
	}
	return out, nil
}

func directory() memActors {
	return memActors{
		"super":  {ID: "super", Role: entity.RoleSupervisor},
		"op-cor": {ID: "op-cor", Role: entity.RoleOperator, SectionID: "sec-cor", SectionName: "Corte"},
	}
}

func TestAuthorizeStage_SeccionYRol(t *testing.T) {
	perms := &memPermissions{}
	svc := usecase.NewAccessService(directory(), perms)
	ctx := context.Background()

	actor, err := svc.AuthorizeStage(ctx, "op-cor", entity.StageCutting, entity.ActionEdit)
	require.NoError(t, err)
	assert.Equal(t, "op-cor", actor.ID)

	_, err = svc.AuthorizeStage(ctx, "op-cor", entity.StagePrinting, entity.ActionView)
	var ae *domain.AuthorizationError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "op-cor", ae.ActorID)

	_, err = svc.AuthorizeStage(ctx, "", entity.StageCutting, entity.ActionView)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	_, err = svc.AuthorizeStage(ctx, "nadie", entity.StageCutting, entity.ActionView)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestAuthorizeStage_SupervisorSobreescribeAccion(t *testing.T) {
	perms := &memPermissions{roles: []entity.RolePermission{
		{Role: entity.RoleSupervisor, Module: entity.ModuleCutting, Action: entity.ActionEdit, Allowed: false},
	}}
	svc := usecase.NewAccessService(directory(), perms)

	_, err := svc.AuthorizeStage(context.Background(), "super", entity.StageCutting, entity.ActionView)
	require.NoError(t, err)
	_, err = svc.AuthorizeStage(context.Background(), "super", entity.StageCutting, entity.ActionEdit)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestAccessService_FalloDeConsulta_NuncaPermite(t *testing.T) {
	boom := errors.New("conexión rechazada")
	svc := usecase.NewAccessService(directory(), &memPermissions{err: boom})

	_, err := svc.AuthorizeStage(context.Background(), "super", entity.StageCutting, entity.ActionView)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPermissionLookup))
	assert.True(t, errors.Is(err, boom))

	d, err := svc.CanViewStage(context.Background(), "op-cor", entity.StageCutting)
	require.Error(t, err)
	assert.False(t, d.Allowed)
}

func TestStageMatrix_PorActor(t *testing.T) {
	perms := &memPermissions{sections: []entity.SectionPermission{
		{SectionID: "sec-cor", Module: entity.ModuleWarehouse, Action: entity.ActionView},
	}}
	svc := usecase.NewAccessService(directory(), perms)

	out, err := svc.StageMatrix(context.Background(), "op-cor")
	require.NoError(t, err)
	got := map[string]bool{}
	for _, s := range out.Stages {
		got[s.Stage] = s.Allowed
	}
	assert.Equal(t, map[string]bool{"extrusion": false, "printing": false, "cutting": true, "completed": true}, got)
}
