package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/Produccion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/sqlite"
	infraxlsx "github.com/jhoicas/Produccion-api/internal/infrastructure/xlsx"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// Actores del directorio de prueba.
const (
	admin    = "admin"
	extruder = "op-ext"
	printer  = "op-imp"
	cutter   = "op-cor"
	keeper   = "op-bod"
)

type testEnv struct {
	ctx     context.Context
	store   *sqlite.Store
	access  *usecase.AccessService
	create  *production.CreateRollUseCase
	advance *production.AdvanceRollUseCase
	view    *production.WorkflowViewUseCase
	queries *production.QueryService
	docs    *production.DocumentService
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

// newTestEnv SQLite en memoria con secciones, actores, un pedido "10" y las órdenes de trabajo J1 (1000 kg) y J2 (300 kg).
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	db := store.DB()

	now := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	sections := sqlite.NewSectionRepository(db)
	for id, name := range map[string]string{"sec-ext": "Extrusión", "sec-imp": "Impresión", "sec-cor": "Corte", "sec-bod": "Bodega"} {
		require.NoError(t, sections.Create(ctx, &entity.Section{ID: id, Name: name, CreatedAt: now}))
	}
	actors := sqlite.NewActorRepository(db)
	for _, a := range []*entity.Actor{
		{ID: admin, Name: "Admin", Role: entity.RoleAdministrator},
		{ID: extruder, Name: "Extrusora", Role: entity.RoleOperator, SectionID: "sec-ext"},
		{ID: printer, Name: "Impresora", Role: entity.RoleOperator, SectionID: "sec-imp"},
		{ID: cutter, Name: "Cortadora", Role: entity.RoleOperator, SectionID: "sec-cor"},
		{ID: keeper, Name: "Bodega", Role: entity.RoleOperator, SectionID: "sec-bod"},
	} {
		a.CreatedAt = now
		require.NoError(t, actors.Create(ctx, a))
	}
	require.NoError(t, sqlite.NewCustomerRepository(db).Create(ctx, &entity.Customer{ID: "c-1", Name: "Plásticos del Valle", CreatedAt: now}))
	require.NoError(t, sqlite.NewOrderRepository(db).Create(ctx, &entity.Order{ID: "10", CustomerID: "c-1", Date: now, Status: "open", CreatedAt: now}))
	jobOrders := sqlite.NewJobOrderRepository(db)
	require.NoError(t, jobOrders.Create(ctx, &entity.JobOrder{ID: "J1", OrderID: "10", Quantity: dec("1000"), Status: "pending", CreatedAt: now}))
	require.NoError(t, jobOrders.Create(ctx, &entity.JobOrder{ID: "J2", OrderID: "10", Quantity: dec("300"), Status: "pending", CreatedAt: now}))

	rolls := sqlite.NewRollRepository(db)
	orders := sqlite.NewOrderRepository(db)
	tx := sqlite.NewTxRunner(db)
	accessSvc := usecase.NewAccessService(actors, sqlite.NewPermissionRepository(db))
	log := logger.Nop()
	queries := production.NewQueryService(rolls, jobOrders, orders, accessSvc)

	return &testEnv{
		ctx:     ctx,
		store:   store,
		access:  accessSvc,
		create:  production.NewCreateRollUseCase(tx, accessSvc, actors, log.Component("create_roll")),
		advance: production.NewAdvanceRollUseCase(tx, rolls, accessSvc, log.Component("advance_roll")),
		view:    production.NewWorkflowViewUseCase(rolls, jobOrders, orders, accessSvc),
		queries: queries,
		docs:    production.NewDocumentService(queries, infrapdf.NewRollLabelGenerator(), infraxlsx.NewRollSheetExporter()),
	}
}

func (e *testEnv) mustCreate(t *testing.T, jobOrderID, qty string) *entity.Roll {
	t.Helper()
	res, err := e.create.Execute(e.ctx, production.CreateRollInput{ActorID: extruder, JobOrderID: jobOrderID, ExtrudingQty: dec(qty)})
	require.NoError(t, err)
	return res.Roll
}

func (e *testEnv) mustAdvance(t *testing.T, actorID, rollID string, to entity.Stage, cutting *decimal.Decimal) *entity.Roll {
	t.Helper()
	r, err := e.advance.Execute(e.ctx, production.AdvanceRollInput{ActorID: actorID, RollID: rollID, ToStage: string(to), CuttingQty: cutting})
	require.NoError(t, err)
	return r
}
