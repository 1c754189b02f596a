package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Produccion-api/internal/application/production"
)

// JobOrderHandler consultas de conciliación y rollos por orden de trabajo (protegido).
type JobOrderHandler struct {
	queries   *production.QueryService
	documents *production.DocumentService
	log       zerolog.Logger
}

// NewJobOrderHandler construye el handler.
func NewJobOrderHandler(queries *production.QueryService, documents *production.DocumentService, log zerolog.Logger) *JobOrderHandler {
	return &JobOrderHandler{queries: queries, documents: documents, log: log}
}

// Remaining godoc
// @Summary      Cantidad pendiente de la orden de trabajo
// @Tags         job-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la orden de trabajo"
// @Success      200  {object}  dto.RemainingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/job-order/{id}/remaining [get]
func (h *JobOrderHandler) Remaining(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return unauthorized(c)
	}
	out, err := h.queries.Remaining(c.Context(), actorID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Rolls godoc
// @Summary      Rollos de la orden de trabajo
// @Tags         job-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la orden de trabajo"
// @Success      200  {object}  dto.RollListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/job-order/{id}/rolls [get]
func (h *JobOrderHandler) Rolls(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return unauthorized(c)
	}
	out, err := h.queries.ListByJobOrder(c.Context(), actorID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar rollos de la orden de trabajo a Excel
// @Tags         job-orders
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "ID de la orden de trabajo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/job-order/{id}/export [get]
func (h *JobOrderHandler) Export(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return unauthorized(c)
	}
	data, err := h.documents.JobOrderSheet(c.Context(), actorID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=orden-trabajo-%s.xlsx", c.Params("id")))
	return c.Send(data)
}
