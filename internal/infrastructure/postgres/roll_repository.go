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

var _ repository.RollRepository = (*RollRepo)(nil)

// RollRepo implementación de RollRepository sobre PostgreSQL (usable con pool o tx).
type RollRepo struct {
	q Querier
}

// NewRollRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRollRepository(q Querier) *RollRepo {
	return &RollRepo{q: q}
}

const rollColumns = `
	r.id, r.job_order_id, r.roll_number, r.extruding_qty, r.printing_qty, r.cutting_qty,
	r.current_stage, r.status, r.created_by_id, r.created_at,
	COALESCE(r.printed_by_id, ''), r.printed_at, COALESCE(r.cut_by_id, ''), r.completed_at, r.updated_at`

func scanRoll(row pgx.Row) (*entity.Roll, error) {
	var r entity.Roll
	var stage string
	err := row.Scan(
		&r.ID, &r.JobOrderID, &r.RollNumber, &r.ExtrudingQty, &r.PrintingQty, &r.CuttingQty,
		&stage, &r.Status, &r.CreatedByID, &r.CreatedAt,
		&r.PrintedByID, &r.PrintedAt, &r.CutByID, &r.CompletedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.CurrentStage = entity.Stage(stage)
	return &r, nil
}

func (r *RollRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Roll, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []*entity.Roll
	for rows.Next() {
		roll, err := scanRoll(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, roll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// Create persiste un rollo nuevo.
func (r *RollRepo) Create(ctx context.Context, roll *entity.Roll) error {
	query := `
		INSERT INTO rolls (id, job_order_id, roll_number, extruding_qty, printing_qty, cutting_qty,
			current_stage, status, created_by_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		roll.ID, roll.JobOrderID, roll.RollNumber, roll.ExtrudingQty, roll.PrintingQty, roll.CuttingQty,
		string(roll.CurrentStage), roll.Status, roll.CreatedByID, roll.CreatedAt, roll.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("rollo %d de la orden de trabajo %s: %w", roll.RollNumber, roll.JobOrderID, domain.ErrConflict)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("orden de trabajo %s: %w", roll.JobOrderID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert roll: %w", err)
	}
	return nil
}

// GetByID obtiene un rollo por ID; nil si no existe.
func (r *RollRepo) GetByID(ctx context.Context, id string) (*entity.Roll, error) {
	roll, err := scanRoll(r.q.QueryRow(ctx, `SELECT `+rollColumns+` FROM rolls r WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get roll: %w", err)
	}
	return roll, nil
}

// GetForUpdate obtiene el rollo y bloquea la fila (SELECT FOR UPDATE).
func (r *RollRepo) GetForUpdate(ctx context.Context, id string) (*entity.Roll, error) {
	roll, err := scanRoll(r.q.QueryRow(ctx, `SELECT `+rollColumns+` FROM rolls r WHERE r.id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get roll for update: %w", err)
	}
	return roll, nil
}

// Update guarda etapa, estado, cantidades y trazas de un rollo existente.
func (r *RollRepo) Update(ctx context.Context, roll *entity.Roll) error {
	query := `
		UPDATE rolls SET
			printing_qty = $2, cutting_qty = $3, current_stage = $4, status = $5,
			printed_by_id = $6, printed_at = $7, cut_by_id = $8, completed_at = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		roll.ID, roll.PrintingQty, roll.CuttingQty, string(roll.CurrentStage), roll.Status,
		nullable(roll.PrintedByID), roll.PrintedAt, nullable(roll.CutByID), roll.CompletedAt, roll.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update roll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rollo %s: %w", roll.ID, domain.ErrNotFound)
	}
	return nil
}

// ListByJobOrder rollos de una orden de trabajo por número ascendente.
func (r *RollRepo) ListByJobOrder(ctx context.Context, jobOrderID string) ([]*entity.Roll, error) {
	return r.list(ctx, "list rolls by job order",
		`SELECT `+rollColumns+` FROM rolls r WHERE r.job_order_id = $1 ORDER BY r.roll_number, r.id`, jobOrderID)
}

// ListForStage todos los rollos de las órdenes de trabajo con algún rollo pendiente en stage.
func (r *RollRepo) ListForStage(ctx context.Context, stage entity.Stage) ([]*entity.Roll, error) {
	query := `SELECT ` + rollColumns + `
		FROM rolls r
		WHERE r.job_order_id IN (
			SELECT p.job_order_id FROM rolls p WHERE p.current_stage = $1 AND p.status <> $2
		)
		ORDER BY r.job_order_id, r.roll_number`
	return r.list(ctx, "list rolls for stage", query, string(stage), entity.RollStatusCompleted)
}

// ListCompleted rollos que llegaron a la etapa completed.
func (r *RollRepo) ListCompleted(ctx context.Context) ([]*entity.Roll, error) {
	return r.list(ctx, "list completed rolls",
		`SELECT `+rollColumns+` FROM rolls r WHERE r.current_stage = $1 ORDER BY r.job_order_id, r.roll_number`,
		string(entity.StageCompleted))
}

// ExistsByOrder informa si algún rollo cuelga de una orden de trabajo del pedido.
func (r *RollRepo) ExistsByOrder(ctx context.Context, orderID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM rolls r JOIN job_orders j ON j.id = r.job_order_id WHERE j.order_id = $1
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, orderID).Scan(&exists); err != nil {
		return false, fmt.Errorf("rolls exist by order: %w", err)
	}
	return exists, nil
}
