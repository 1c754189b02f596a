package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// JobOrderRepository lectura del libro de órdenes de trabajo.
// Create solo lo usa la carga de datos (seed); el motor nunca modifica órdenes de trabajo.
type JobOrderRepository interface {
	Create(ctx context.Context, jobOrder *entity.JobOrder) error
	GetByID(ctx context.Context, id string) (*entity.JobOrder, error)
	// GetForUpdate bloquea la orden de trabajo para serializar la creación de rollos.
	GetForUpdate(ctx context.Context, id string) (*entity.JobOrder, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.JobOrder, error)
}
