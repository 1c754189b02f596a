package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Produccion-api/internal/application/production"
)

// OrderHandler expone la guardia de borrado de pedidos (protegido).
type OrderHandler struct {
	queries *production.QueryService
	log     zerolog.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(queries *production.QueryService, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{queries: queries, log: log}
}

// HasRolls godoc
// @Summary      ¿El pedido tiene rollos?
// @Description  Lo consulta el flujo de borrado de pedidos: un pedido con rollos no se puede borrar.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del pedido"
// @Success      200  {object}  dto.HasRollsResponse
// @Router       /api/order/{id}/has-rolls [get]
func (h *OrderHandler) HasRolls(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return unauthorized(c)
	}
	out, err := h.queries.HasRolls(c.Context(), actorID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
