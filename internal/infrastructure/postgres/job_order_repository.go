package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.JobOrderRepository = (*JobOrderRepo)(nil)

// JobOrderRepo implementación de JobOrderRepository (usable con pool o tx).
type JobOrderRepo struct {
	q Querier
}

// NewJobOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobOrderRepository(q Querier) *JobOrderRepo {
	return &JobOrderRepo{q: q}
}

const jobOrderColumns = `id, order_id, quantity, customer_product_id, status, created_at`

func scanJobOrder(row pgx.Row) (*entity.JobOrder, error) {
	var j entity.JobOrder
	if err := row.Scan(&j.ID, &j.OrderID, &j.Quantity, &j.CustomerProductID, &j.Status, &j.CreatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}

// Create persiste una orden de trabajo (carga de datos).
func (r *JobOrderRepo) Create(ctx context.Context, j *entity.JobOrder) error {
	query := `
		INSERT INTO job_orders (id, order_id, quantity, customer_product_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, j.ID, j.OrderID, j.Quantity, j.CustomerProductID, j.Status, j.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("orden de trabajo %s: %w", j.ID, domain.ErrConflict)
		}
		return fmt.Errorf("insert job order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de trabajo; nil si no existe.
func (r *JobOrderRepo) GetByID(ctx context.Context, id string) (*entity.JobOrder, error) {
	j, err := scanJobOrder(r.q.QueryRow(ctx, `SELECT `+jobOrderColumns+` FROM job_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job order: %w", err)
	}
	return j, nil
}

// GetForUpdate obtiene la orden de trabajo y bloquea la fila; serializa la creación de rollos.
func (r *JobOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.JobOrder, error) {
	j, err := scanJobOrder(r.q.QueryRow(ctx, `SELECT `+jobOrderColumns+` FROM job_orders WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job order for update: %w", err)
	}
	return j, nil
}

// ListByIDs órdenes de trabajo con id en ids; los ids inexistentes se omiten.
func (r *JobOrderRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.JobOrder, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+jobOrderColumns+` FROM job_orders WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list job orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.JobOrder
	for rows.Next() {
		j, err := scanJobOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job order: %w", err)
		}
		list = append(list, j)
	}
	return list, rows.Err()
}
