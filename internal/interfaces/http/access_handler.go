package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Produccion-api/internal/application/usecase"
)

// AccessHandler expone las decisiones de acceso del actor autenticado.
type AccessHandler struct {
	access *usecase.AccessService
	log    zerolog.Logger
}

// NewAccessHandler construye el handler.
func NewAccessHandler(access *usecase.AccessService, log zerolog.Logger) *AccessHandler {
	return &AccessHandler{access: access, log: log}
}

// Me godoc
// @Summary      Etapas visibles para el actor
// @Tags         access
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AccessResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/me/access [get]
func (h *AccessHandler) Me(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return unauthorized(c)
	}
	out, err := h.access.StageMatrix(c.Context(), actorID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
