package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// OrderRepository lectura de pedidos (con el nombre del cliente resuelto).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Order, error)
}
