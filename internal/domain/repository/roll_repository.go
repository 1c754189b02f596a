package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// RollRepository define el puerto de persistencia de rollos.
// GetForUpdate bloquea la fila hasta el fin de la transacción (solo dentro de TxRunner).
type RollRepository interface {
	Create(ctx context.Context, roll *entity.Roll) error
	GetByID(ctx context.Context, id string) (*entity.Roll, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Roll, error)
	Update(ctx context.Context, roll *entity.Roll) error
	ListByJobOrder(ctx context.Context, jobOrderID string) ([]*entity.Roll, error)
	// ListForStage devuelve todos los rollos de las órdenes de trabajo que tienen
	// al menos un rollo pendiente en la etapa (la vista los filtra después).
	ListForStage(ctx context.Context, stage entity.Stage) ([]*entity.Roll, error)
	// ListCompleted rollos en etapa completed (vista de bodega).
	ListCompleted(ctx context.Context) ([]*entity.Roll, error)
	ExistsByOrder(ctx context.Context, orderID string) (bool, error)
}
