package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/Produccion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/sqlite"
	infraxlsx "github.com/jhoicas/Produccion-api/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/Produccion-api/internal/interfaces/http"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// API completa sobre SQLite en memoria
// ──────────────────────────────────────────────────────────────────────────────

type directory struct {
	actors      repository.ActorRepository
	permissions repository.PermissionRepository
}

// buildAPI arma el router con el directorio indicado; si dir es nil usa el de SQLite.
func buildAPI(t *testing.T, dir *directory) *fiber.App {
	t.Helper()
	ctx := context.Background()
	store, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	db := store.DB()

	now := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	sections := sqlite.NewSectionRepository(db)
	require.NoError(t, sections.Create(ctx, &entity.Section{ID: "sec-ext", Name: "Extrusión", CreatedAt: now}))
	require.NoError(t, sections.Create(ctx, &entity.Section{ID: "sec-imp", Name: "Impresión", CreatedAt: now}))
	actors := sqlite.NewActorRepository(db)
	require.NoError(t, actors.Create(ctx, &entity.Actor{ID: "op-ext", Name: "Extrusora", Role: entity.RoleOperator, SectionID: "sec-ext", CreatedAt: now}))
	require.NoError(t, actors.Create(ctx, &entity.Actor{ID: "op-imp", Name: "Impresora", Role: entity.RoleOperator, SectionID: "sec-imp", CreatedAt: now}))
	require.NoError(t, sqlite.NewOrderRepository(db).Create(ctx, &entity.Order{ID: "10", Date: now, Status: "open", CreatedAt: now}))
	jobOrders := sqlite.NewJobOrderRepository(db)
	require.NoError(t, jobOrders.Create(ctx, &entity.JobOrder{ID: "J1", OrderID: "10", Quantity: decimal.NewFromInt(500), Status: "pending", CreatedAt: now}))

	if dir == nil {
		dir = &directory{actors: actors, permissions: sqlite.NewPermissionRepository(db)}
	}
	rolls := sqlite.NewRollRepository(db)
	orders := sqlite.NewOrderRepository(db)
	tx := sqlite.NewTxRunner(db)
	log := logger.Nop()
	accessSvc := usecase.NewAccessService(dir.actors, dir.permissions)
	queries := production.NewQueryService(rolls, jobOrders, orders, accessSvc)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CreateRoll:   production.NewCreateRollUseCase(tx, accessSvc, actors, log.Component("create_roll")),
		AdvanceRoll:  production.NewAdvanceRollUseCase(tx, rolls, accessSvc, log.Component("advance_roll")),
		WorkflowView: production.NewWorkflowViewUseCase(rolls, jobOrders, orders, accessSvc),
		Queries:      queries,
		Documents:    production.NewDocumentService(queries, infrapdf.NewRollLabelGenerator(), infraxlsx.NewRollSheetExporter()),
		Access:       accessSvc,
		JWTSecret:    testJWTSecret,
		Log:          log.Component("http"),
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, auth string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_RequiereToken(t *testing.T) {
	app := buildAPI(t, nil)
	resp := call(t, app, http.MethodGet, "/api/workflow/extrusion", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_CrearRollo_ExcedenteEnDosPasos(t *testing.T) {
	app := buildAPI(t, nil)
	ext := tokenFor(t, "op-ext", entity.RoleOperator)

	resp := call(t, app, http.MethodPost, "/api/roll", ext, map[string]any{"job_order_id": "J1", "extruding_qty": 400})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.CreateRollResponse
	decodeInto(t, resp, &created)
	assert.Equal(t, 1, created.Roll.RollNumber)
	assert.True(t, created.Remaining.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, created.Warning)

	resp = call(t, app, http.MethodPost, "/api/roll", ext, map[string]any{"job_order_id": "J1", "extruding_qty": 150})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	var exceeded dto.QuantityExceededResponse
	decodeInto(t, resp, &exceeded)
	assert.Equal(t, "QUANTITY_EXCEEDED", exceeded.Code)
	assert.True(t, exceeded.Excess.Equal(decimal.NewFromInt(50)))

	resp = call(t, app, http.MethodPost, "/api/roll", ext, map[string]any{"job_order_id": "J1", "extruding_qty": 150, "acknowledge_excess": true})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	decodeInto(t, resp, &created)
	assert.Equal(t, 2, created.Roll.RollNumber)
	assert.True(t, created.Excess.Equal(decimal.NewFromInt(50)))
	assert.NotEmpty(t, created.Warning)

	var invalid dto.ErrorResponse
	resp = call(t, app, http.MethodPost, "/api/roll", ext, map[string]any{"job_order_id": "NOPE", "extruding_qty": 5})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	decodeInto(t, resp, &invalid)
	assert.Equal(t, "VALIDATION", invalid.Code)
	assert.Equal(t, "job_order_id", invalid.Field)

	var rem dto.RemainingResponse
	resp = call(t, app, http.MethodGet, "/api/job-order/J1/remaining", ext, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &rem)
	assert.True(t, rem.Remaining.IsZero())
	assert.Equal(t, 2, rem.RollCount)
}

func TestRouter_AvanceYPermisos(t *testing.T) {
	app := buildAPI(t, nil)
	ext := tokenFor(t, "op-ext", entity.RoleOperator)
	imp := tokenFor(t, "op-imp", entity.RoleOperator)

	resp := call(t, app, http.MethodPost, "/api/roll", ext, map[string]any{"job_order_id": "J1", "extruding_qty": 100})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.CreateRollResponse
	decodeInto(t, resp, &created)
	id := created.Roll.ID

	resp = call(t, app, http.MethodPost, "/api/roll/"+id+"/advance", imp, map[string]any{"to_stage": "printing"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "impresión no avanza rollos en extrusión")

	resp = call(t, app, http.MethodPost, "/api/roll/"+id+"/advance", ext, map[string]any{"to_stage": "cutting"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode, "no se salta impresión")

	resp = call(t, app, http.MethodPost, "/api/roll/"+id+"/advance", ext, map[string]any{"to_stage": "printing"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var roll dto.RollResponse
	decodeInto(t, resp, &roll)
	assert.Equal(t, "printing", roll.CurrentStage)

	resp = call(t, app, http.MethodGet, "/api/workflow/printing", imp, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var view dto.WorkflowViewResponse
	decodeInto(t, resp, &view)
	require.Len(t, view.OrderGroups, 1)
	assert.Equal(t, "10", view.OrderGroups[0].OrderID)

	resp = call(t, app, http.MethodGet, "/api/workflow/cutting", imp, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/workflow/laminado", imp, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/roll/no-existe", imp, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var has dto.HasRollsResponse
	resp = call(t, app, http.MethodGet, "/api/order/10/has-rolls", imp, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &has)
	assert.True(t, has.HasRolls)

	resp = call(t, app, http.MethodPost, "/api/roll/"+id+"/advance", imp, map[string]any{"to_stage": "cutting"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &roll)
	assert.Equal(t, "cutting", roll.CurrentStage)

	var conflict dto.ErrorResponse
	resp = call(t, app, http.MethodPost, "/api/roll/"+id+"/advance", imp, map[string]any{"to_stage": "cutting"})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode, "reenviar el mismo avance es conflicto, no denegación")
	decodeInto(t, resp, &conflict)
	assert.Equal(t, "INVALID_STATE_TRANSITION", conflict.Code)
}

func TestRouter_Documentos(t *testing.T) {
	app := buildAPI(t, nil)
	ext := tokenFor(t, "op-ext", entity.RoleOperator)

	resp := call(t, app, http.MethodPost, "/api/roll", ext, map[string]any{"job_order_id": "J1", "extruding_qty": 100})
	var created dto.CreateRollResponse
	decodeInto(t, resp, &created)

	resp = call(t, app, http.MethodGet, "/api/roll/"+created.Roll.ID+"/label", ext, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp = call(t, app, http.MethodGet, "/api/job-order/J1/export", ext, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "orden-trabajo-J1.xlsx")
}

func TestRouter_MatrizDeAcceso(t *testing.T) {
	app := buildAPI(t, nil)
	resp := call(t, app, http.MethodGet, "/api/me/access", tokenFor(t, "op-imp", entity.RoleOperator), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.AccessResponse
	decodeInto(t, resp, &out)
	assert.Equal(t, "Impresión", out.Section)
	allowed := map[string]bool{}
	for _, s := range out.Stages {
		allowed[s.Stage] = s.Allowed
	}
	assert.Equal(t, map[string]bool{"extrusion": false, "printing": true, "cutting": false, "completed": false}, allowed)

	resp = call(t, app, http.MethodGet, "/api/me/access", tokenFor(t, "fantasma", entity.RoleAdministrator), nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "el rol del token no concede nada")
}

// brokenDirectory simula el directorio de permisos caído.
type brokenDirectory struct{}

var errDirectoryDown = errors.New("directorio no disponible")

func (brokenDirectory) Create(context.Context, *entity.Actor) error { return errDirectoryDown }

func (brokenDirectory) GetByID(context.Context, string) (*entity.Actor, error) {
	return nil, errDirectoryDown
}

func (brokenDirectory) UpsertRolePermission(context.Context, entity.RolePermission) error {
	return errDirectoryDown
}

func (brokenDirectory) AddSectionPermission(context.Context, entity.SectionPermission) error {
	return errDirectoryDown
}

func (brokenDirectory) ListRolePermissions(context.Context, string) ([]entity.RolePermission, error) {
	return nil, errDirectoryDown
}

func (brokenDirectory) ListSectionPermissions(context.Context, string) ([]entity.SectionPermission, error) {
	return nil, errDirectoryDown
}

func TestRouter_DirectorioCaido_Retorna503(t *testing.T) {
	app := buildAPI(t, &directory{actors: brokenDirectory{}, permissions: brokenDirectory{}})
	resp := call(t, app, http.MethodGet, "/api/workflow/extrusion", tokenFor(t, "op-ext", entity.RoleOperator), nil)
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var e dto.ErrorResponse
	decodeInto(t, resp, &e)
	assert.Equal(t, "PERMISSION_LOOKUP_FAILED", e.Code)
}
