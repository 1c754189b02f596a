package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/production"
)

// RollHandler maneja la creación, el avance y la consulta de rollos (protegido).
type RollHandler struct {
	create    *production.CreateRollUseCase
	advance   *production.AdvanceRollUseCase
	queries   *production.QueryService
	documents *production.DocumentService
	log       zerolog.Logger
}

// NewRollHandler construye el handler.
func NewRollHandler(
	create *production.CreateRollUseCase,
	advance *production.AdvanceRollUseCase,
	queries *production.QueryService,
	documents *production.DocumentService,
	log zerolog.Logger,
) *RollHandler {
	return &RollHandler{create: create, advance: advance, queries: queries, documents: documents, log: log}
}

// Create godoc
// @Summary      Crear rollo en extrusión
// @Description  Si extruding_qty supera lo pendiente de la orden de trabajo responde 409 QUANTITY_EXCEEDED
// @Description  sin escribir nada; reenviar con acknowledge_excess=true crea el rollo y devuelve el excedente.
// @Tags         rolls
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRollRequest  true  "job_order_id, extruding_qty, created_by_id, acknowledge_excess"
// @Success      201   {object}  dto.CreateRollResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.QuantityExceededResponse
// @Router       /api/roll [post]
func (h *RollHandler) Create(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return unauthorized(c)
	}
	var in dto.CreateRollRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.create.Execute(c.Context(), production.CreateRollInput{
		ActorID:      actorID,
		JobOrderID:   in.JobOrderID,
		ExtrudingQty: in.ExtrudingQty,
		CreatedByID:  in.CreatedByID,
		RejectExcess: !in.AcknowledgeExcess,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	out := dto.CreateRollResponse{
		Roll:      production.ToRollResponse(res.Roll),
		Excess:    res.Excess,
		Remaining: res.Remaining,
	}
	if res.Excess.IsPositive() {
		out.Warning = fmt.Sprintf("el rollo excede en %s kg la cantidad pendiente", res.Excess.String())
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Advance godoc
// @Summary      Avanzar rollo de etapa
// @Description  to_stage: printing (desde extrusion), cutting (desde printing) o completed (desde cutting, exige cutting_qty > 0).
// @Tags         rolls
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del rollo"
// @Param        body  body  dto.AdvanceRollRequest  true  "to_stage, printing_qty, cutting_qty"
// @Success      200   {object}  dto.RollResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roll/{id}/advance [post]
func (h *RollHandler) Advance(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return unauthorized(c)
	}
	var in dto.AdvanceRollRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	roll, err := h.advance.Execute(c.Context(), production.AdvanceRollInput{
		ActorID:     actorID,
		RollID:      c.Params("id"),
		ToStage:     in.ToStage,
		PrintingQty: in.PrintingQty,
		CuttingQty:  in.CuttingQty,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(production.ToRollResponse(roll))
}

// GetByID godoc
// @Summary      Detalle de rollo
// @Tags         rolls
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del rollo"
// @Success      200  {object}  dto.RollResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roll/{id} [get]
func (h *RollHandler) GetByID(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return unauthorized(c)
	}
	out, err := h.queries.GetRoll(c.Context(), actorID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Label godoc
// @Summary      Etiqueta PDF del rollo
// @Tags         rolls
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del rollo"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roll/{id}/label [get]
func (h *RollHandler) Label(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return unauthorized(c)
	}
	pdf, err := h.documents.RollLabelPDF(c.Context(), actorID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=rollo-%s.pdf", c.Params("id")))
	return c.Send(pdf)
}
