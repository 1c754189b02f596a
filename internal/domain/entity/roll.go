package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage etapa de fabricación de un rollo. Variante cerrada: solo las constantes Stage*.
type Stage string

const (
	StageExtrusion Stage = "extrusion"
	StagePrinting  Stage = "printing"
	StageCutting   Stage = "cutting"
	StageCompleted Stage = "completed"
)

// Stages en orden de avance.
var Stages = []Stage{StageExtrusion, StagePrinting, StageCutting, StageCompleted}

// Estados del trabajo del rollo en su etapa actual.
const (
	RollStatusPending   = "pending"
	RollStatusCompleted = "completed"
)

// Roll rollo de película extruida asociado a una orden de trabajo.
type Roll struct {
	ID           string
	JobOrderID   string
	RollNumber   int             // consecutivo dentro de la orden de trabajo, desde 1
	ExtrudingQty decimal.Decimal // kg
	PrintingQty  decimal.Decimal // kg; igual a ExtrudingQty al crear
	CuttingQty   decimal.Decimal // kg; 0 hasta completar corte
	CurrentStage Stage
	Status       string // pending, completed
	CreatedByID  string
	CreatedAt    time.Time
	PrintedByID  string // quien cerró impresión
	PrintedAt    *time.Time
	CutByID      string // quien completó el corte
	CompletedAt  *time.Time
	UpdatedAt    time.Time
}
