package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Produccion-api/internal/application/production"
)

// WorkflowHandler expone la cola de trabajo por etapa (protegido).
type WorkflowHandler struct {
	view *production.WorkflowViewUseCase
	log  zerolog.Logger
}

// NewWorkflowHandler construye el handler.
func NewWorkflowHandler(view *production.WorkflowViewUseCase, log zerolog.Logger) *WorkflowHandler {
	return &WorkflowHandler{view: view, log: log}
}

// GetStage godoc
// @Summary      Cola de trabajo de una etapa
// @Description  Órdenes de trabajo con rollos pendientes en la etapa, agrupadas por pedido (id ascendente).
// @Description  stage=completed devuelve la vista de bodega.
// @Tags         workflow
// @Security     Bearer
// @Produce      json
// @Param        stage  path      string  true  "extrusion | printing | cutting | completed"
// @Success      200    {object}  dto.WorkflowViewResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Failure      503    {object}  dto.ErrorResponse
// @Router       /api/workflow/{stage} [get]
func (h *WorkflowHandler) GetStage(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return unauthorized(c)
	}
	out, err := h.view.Execute(c.Context(), actorID, c.Params("stage"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
