package production

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Transition solicitud de avance de un rollo hacia To.
// PrintingQty puede ajustarse al entrar o salir de impresión; CuttingQty es obligatorio al completar.
type Transition struct {
	To          entity.Stage
	PrintingQty *decimal.Decimal
	CuttingQty  *decimal.Decimal
	ActorID     string
	At          time.Time
}

// NewRoll construye un rollo en extrusión. ExtrudingQty debe ser > 0;
// PrintingQty se inicializa igual a ExtrudingQty y CuttingQty en 0.
func NewRoll(id, jobOrderID string, rollNumber int, extrudingQty decimal.Decimal, createdByID string, now time.Time) (*entity.Roll, error) {
	if jobOrderID == "" {
		return nil, domain.NewValidationError("job_order_id", "es requerido")
	}
	if !extrudingQty.IsPositive() {
		return nil, domain.NewValidationError("extruding_qty", "debe ser mayor que cero")
	}
	return &entity.Roll{
		ID:           id,
		JobOrderID:   jobOrderID,
		RollNumber:   rollNumber,
		ExtrudingQty: extrudingQty,
		PrintingQty:  extrudingQty,
		CuttingQty:   decimal.Zero,
		CurrentStage: entity.StageExtrusion,
		Status:       entity.RollStatusPending,
		CreatedByID:  createdByID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ApplyTransition avanza el rollo una etapa según la tabla de transiciones.
// Valida todo antes de mutar: si devuelve error el rollo queda intacto.
func ApplyTransition(r *entity.Roll, t Transition) error {
	if !CanTransition(r.CurrentStage, t.To) {
		return &domain.InvalidStateTransitionError{RollID: r.ID, From: string(r.CurrentStage), To: string(t.To)}
	}
	if t.PrintingQty != nil {
		if t.To == entity.StageCompleted {
			return domain.NewValidationError("printing_qty", "no se ajusta al completar el corte")
		}
		if !t.PrintingQty.IsPositive() {
			return domain.NewValidationError("printing_qty", "debe ser mayor que cero")
		}
	}
	if t.CuttingQty != nil && t.To != entity.StageCompleted {
		return domain.NewValidationError("cutting_qty", "solo se registra al completar el corte")
	}
	if t.To == entity.StageCompleted && (t.CuttingQty == nil || !t.CuttingQty.IsPositive()) {
		return domain.NewValidationError("cutting_qty", "debe ser mayor que cero")
	}

	at := t.At
	switch t.To {
	case entity.StageCutting:
		// sale de impresión
		r.PrintedByID = t.ActorID
		r.PrintedAt = &at
	case entity.StageCompleted:
		r.CuttingQty = *t.CuttingQty
		r.CutByID = t.ActorID
		r.CompletedAt = &at
	}
	if t.PrintingQty != nil {
		r.PrintingQty = *t.PrintingQty
	}

	r.CurrentStage = t.To
	if IsTerminal(t.To) {
		r.Status = entity.RollStatusCompleted
	} else {
		r.Status = entity.RollStatusPending
	}
	r.UpdatedAt = at
	return nil
}
