package production

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Cada creación o transición de rollo es una sola llamada a Run.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		rollRepo repository.RollRepository,
		jobOrderRepo repository.JobOrderRepository,
	) error) error
}

// Authorizer verifica el acceso del actor a una etapa (lo implementa *usecase.AccessService).
type Authorizer interface {
	ResolveActor(ctx context.Context, actorID string) (*entity.Actor, error)
	AuthorizeStage(ctx context.Context, actorID string, stage entity.Stage, action string) (*entity.Actor, error)
}

// RollLabel datos para imprimir la etiqueta de un rollo.
type RollLabel struct {
	Roll     *entity.Roll
	JobOrder *entity.JobOrder
	Order    *entity.Order // puede ser nil si el pedido no está en el libro
}

// RollLabelGenerator genera la etiqueta imprimible (PDF) de un rollo.
type RollLabelGenerator interface {
	GenerateRollLabel(ctx context.Context, label RollLabel) ([]byte, error)
}

// RollSheetExporter exporta los rollos de una orden de trabajo a hoja de cálculo.
type RollSheetExporter interface {
	ExportJobOrderRolls(ctx context.Context, jobOrder *entity.JobOrder, rolls []*entity.Roll) ([]byte, error)
}
