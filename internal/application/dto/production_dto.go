package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRollRequest body para POST /api/roll.
// AcknowledgeExcess confirma la creación cuando la cantidad supera lo pendiente.
type CreateRollRequest struct {
	JobOrderID        string          `json:"job_order_id"`
	ExtrudingQty      decimal.Decimal `json:"extruding_qty"`
	CreatedByID       string          `json:"created_by_id,omitempty"`
	AcknowledgeExcess bool            `json:"acknowledge_excess"`
}

// CreateRollResponse rollo creado más el resultado de la conciliación.
type CreateRollResponse struct {
	Roll      RollResponse    `json:"roll"`
	Excess    decimal.Decimal `json:"excess"`
	Remaining decimal.Decimal `json:"remaining"` // pendiente después de crear el rollo
	Warning   string          `json:"warning,omitempty"`
}

// QuantityExceededResponse 409 de POST /api/roll sin acknowledge_excess; no se escribió nada.
type QuantityExceededResponse struct {
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	Excess    decimal.Decimal `json:"excess"`
	Remaining decimal.Decimal `json:"remaining"`
}

// AdvanceRollRequest body para POST /api/roll/:id/advance.
type AdvanceRollRequest struct {
	ToStage     string           `json:"to_stage"`
	PrintingQty *decimal.Decimal `json:"printing_qty,omitempty"`
	CuttingQty  *decimal.Decimal `json:"cutting_qty,omitempty"`
}

// RollResponse salida de un rollo.
type RollResponse struct {
	ID           string          `json:"id"`
	JobOrderID   string          `json:"job_order_id"`
	RollNumber   int             `json:"roll_number"`
	ExtrudingQty decimal.Decimal `json:"extruding_qty"`
	PrintingQty  decimal.Decimal `json:"printing_qty"`
	CuttingQty   decimal.Decimal `json:"cutting_qty"`
	CurrentStage string          `json:"current_stage"`
	Status       string          `json:"status"`
	CreatedByID  string          `json:"created_by_id"`
	CreatedAt    time.Time       `json:"created_at"`
	PrintedByID  string          `json:"printed_by_id,omitempty"`
	PrintedAt    *time.Time      `json:"printed_at,omitempty"`
	CutByID      string          `json:"cut_by_id,omitempty"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RollListResponse rollos de una orden de trabajo.
type RollListResponse struct {
	JobOrderID string         `json:"job_order_id"`
	Items      []RollResponse `json:"items"`
}

// RemainingResponse respuesta de GET /api/job-order/:id/remaining.
type RemainingResponse struct {
	JobOrderID    string          `json:"job_order_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	TotalExtruded decimal.Decimal `json:"total_extruded"`
	Remaining     decimal.Decimal `json:"remaining"`
	RollCount     int             `json:"roll_count"`
}

// WorkflowViewResponse cola de trabajo de una etapa agrupada por pedido.
type WorkflowViewResponse struct {
	Stage       string          `json:"stage"`
	OrderGroups []OrderGroupDTO `json:"order_groups"`
}

// OrderGroupDTO pedido con sus órdenes de trabajo visibles.
type OrderGroupDTO struct {
	OrderID    string             `json:"order_id"`
	CustomerID string             `json:"customer_id,omitempty"`
	Customer   string             `json:"customer"`
	JobOrders  []JobOrderGroupDTO `json:"job_orders"`
}

// JobOrderGroupDTO orden de trabajo con sus rollos visibles.
type JobOrderGroupDTO struct {
	JobOrderID string          `json:"job_order_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rolls      []RollResponse  `json:"rolls"`
}

// HasRollsResponse respuesta de GET /api/order/:id/has-rolls (guardia de borrado de pedidos).
type HasRollsResponse struct {
	OrderID  string `json:"order_id"`
	HasRolls bool   `json:"has_rolls"`
}

// StageAccessDTO decisión de acceso a la vista de una etapa.
type StageAccessDTO struct {
	Stage   string `json:"stage"`
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

// AccessResponse respuesta de GET /api/me/access.
type AccessResponse struct {
	ActorID string           `json:"actor_id"`
	Name    string           `json:"name"`
	Role    string           `json:"role"`
	Section string           `json:"section,omitempty"`
	Stages  []StageAccessDTO `json:"stages"`
}
