package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
)

// writeError traduce errores de dominio a respuestas HTTP.
//   - 400 VALIDATION           *domain.ValidationError / ErrInvalidInput
//   - 401 UNAUTHORIZED         actor desconocido
//   - 403 FORBIDDEN            *domain.AuthorizationError
//   - 404 NOT_FOUND
//   - 409 QUANTITY_EXCEEDED    con excess y remaining; nada se escribió
//   - 409 INVALID_STATE_TRANSITION
//   - 503 PERMISSION_LOOKUP_FAILED   nunca se permite por defecto
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	var (
		validation *domain.ValidationError
		exceeded   *domain.QuantityExceededError
		transition *domain.InvalidStateTransitionError
		authz      *domain.AuthorizationError
	)
	switch {
	case errors.As(err, &exceeded):
		return c.Status(fiber.StatusConflict).JSON(dto.QuantityExceededResponse{
			Code:      "QUANTITY_EXCEEDED",
			Message:   "la cantidad supera lo pendiente; reenviar con acknowledge_excess=true para confirmar",
			Excess:    exceeded.Excess,
			Remaining: exceeded.Remaining,
		})
	case errors.As(err, &transition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE_TRANSITION", Message: transition.Error()})
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validation.Reason, Field: validation.Field})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrPermissionLookup):
		log.Error().Err(err).Str("actor_id", GetActorID(c)).Msg("consulta de permisos fallida")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:    "PERMISSION_LOOKUP_FAILED",
			Message: "no se pudieron verificar los permisos, intente más tarde",
		})
	case errors.As(err, &authz):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: authz.Reason})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "actor no reconocido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
}
