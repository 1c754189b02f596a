package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateRoll   *production.CreateRollUseCase
	AdvanceRoll  *production.AdvanceRollUseCase
	WorkflowView *production.WorkflowViewUseCase
	Queries      *production.QueryService
	Documents    *production.DocumentService
	Access       *usecase.AccessService
	JWTSecret    string
	Log          zerolog.Logger
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Log))
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	rollHandler := NewRollHandler(deps.CreateRoll, deps.AdvanceRoll, deps.Queries, deps.Documents, deps.Log)
	protected.Post("/roll", rollHandler.Create)
	protected.Get("/roll/:id", rollHandler.GetByID)
	protected.Post("/roll/:id/advance", rollHandler.Advance)
	protected.Get("/roll/:id/label", rollHandler.Label)

	workflowHandler := NewWorkflowHandler(deps.WorkflowView, deps.Log)
	protected.Get("/workflow/:stage", workflowHandler.GetStage)

	jobOrderHandler := NewJobOrderHandler(deps.Queries, deps.Documents, deps.Log)
	protected.Get("/job-order/:id/remaining", jobOrderHandler.Remaining)
	protected.Get("/job-order/:id/rolls", jobOrderHandler.Rolls)
	protected.Get("/job-order/:id/export", jobOrderHandler.Export)

	orderHandler := NewOrderHandler(deps.Queries, deps.Log)
	protected.Get("/order/:id/has-rolls", orderHandler.HasRolls)

	accessHandler := NewAccessHandler(deps.Access, deps.Log)
	protected.Get("/me/access", accessHandler.Me)
}
