package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.RollRepository = (*RollRepo)(nil)

// RollRepo implementación de RollRepository sobre SQLite (usable con *sqlx.DB o *sqlx.Tx).
type RollRepo struct {
	q sqlx.ExtContext
}

// NewRollRepository construye el adaptador.
func NewRollRepository(q sqlx.ExtContext) *RollRepo {
	return &RollRepo{q: q}
}

type rollRow struct {
	ID           string          `db:"id"`
	JobOrderID   string          `db:"job_order_id"`
	RollNumber   int             `db:"roll_number"`
	ExtrudingQty decimal.Decimal `db:"extruding_qty"`
	PrintingQty  decimal.Decimal `db:"printing_qty"`
	CuttingQty   decimal.Decimal `db:"cutting_qty"`
	CurrentStage string          `db:"current_stage"`
	Status       string          `db:"status"`
	CreatedByID  string          `db:"created_by_id"`
	CreatedAt    textTime        `db:"created_at"`
	PrintedByID  sql.NullString  `db:"printed_by_id"`
	PrintedAt    nullTextTime    `db:"printed_at"`
	CutByID      sql.NullString  `db:"cut_by_id"`
	CompletedAt  nullTextTime    `db:"completed_at"`
	UpdatedAt    textTime        `db:"updated_at"`
}

func (r rollRow) toEntity() *entity.Roll {
	return &entity.Roll{
		ID:           r.ID,
		JobOrderID:   r.JobOrderID,
		RollNumber:   r.RollNumber,
		ExtrudingQty: r.ExtrudingQty,
		PrintingQty:  r.PrintingQty,
		CuttingQty:   r.CuttingQty,
		CurrentStage: entity.Stage(r.CurrentStage),
		Status:       r.Status,
		CreatedByID:  r.CreatedByID,
		CreatedAt:    r.CreatedAt.Time,
		PrintedByID:  r.PrintedByID.String,
		PrintedAt:    r.PrintedAt.ptr(),
		CutByID:      r.CutByID.String,
		CompletedAt:  r.CompletedAt.ptr(),
		UpdatedAt:    r.UpdatedAt.Time,
	}
}

const rollColumns = `r.id, r.job_order_id, r.roll_number, r.extruding_qty, r.printing_qty, r.cutting_qty,
	r.current_stage, r.status, r.created_by_id, r.created_at,
	r.printed_by_id, r.printed_at, r.cut_by_id, r.completed_at, r.updated_at`

func (r *RollRepo) get(ctx context.Context, op, query string, args ...any) (*entity.Roll, error) {
	var row rollRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return row.toEntity(), nil
}

func (r *RollRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Roll, error) {
	var rows []rollRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := make([]*entity.Roll, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Create persiste un rollo nuevo.
func (r *RollRepo) Create(ctx context.Context, roll *entity.Roll) error {
	query := `
		INSERT INTO rolls (id, job_order_id, roll_number, extruding_qty, printing_qty, cutting_qty,
			current_stage, status, created_by_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		roll.ID, roll.JobOrderID, roll.RollNumber, roll.ExtrudingQty, roll.PrintingQty, roll.CuttingQty,
		string(roll.CurrentStage), roll.Status, roll.CreatedByID, textTime{roll.CreatedAt}, textTime{roll.UpdatedAt},
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
	return r.get(ctx, "get roll", `SELECT `+rollColumns+` FROM rolls r WHERE r.id = ?`, id)
}

// GetForUpdate en SQLite la transacción ya tiene la única conexión; equivale a GetByID.
func (r *RollRepo) GetForUpdate(ctx context.Context, id string) (*entity.Roll, error) {
	return r.get(ctx, "get roll for update", `SELECT `+rollColumns+` FROM rolls r WHERE r.id = ?`, id)
}

// Update guarda etapa, estado, cantidades y trazas de un rollo existente.
func (r *RollRepo) Update(ctx context.Context, roll *entity.Roll) error {
	query := `
		UPDATE rolls SET
			printing_qty = ?, cutting_qty = ?, current_stage = ?, status = ?,
			printed_by_id = ?, printed_at = ?, cut_by_id = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.q.ExecContext(ctx, query,
		roll.PrintingQty, roll.CuttingQty, string(roll.CurrentStage), roll.Status,
		nullable(roll.PrintedByID), newNullTextTime(roll.PrintedAt), nullable(roll.CutByID), newNullTextTime(roll.CompletedAt),
		textTime{roll.UpdatedAt}, roll.ID,
	)
	if err != nil {
		return fmt.Errorf("update roll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update roll: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("rollo %s: %w", roll.ID, domain.ErrNotFound)
	}
	return nil
}

// ListByJobOrder rollos de una orden de trabajo por número ascendente.
func (r *RollRepo) ListByJobOrder(ctx context.Context, jobOrderID string) ([]*entity.Roll, error) {
	return r.list(ctx, "list rolls by job order",
		`SELECT `+rollColumns+` FROM rolls r WHERE r.job_order_id = ? ORDER BY r.roll_number, r.id`, jobOrderID)
}

// ListForStage todos los rollos de las órdenes de trabajo con algún rollo pendiente en stage.
func (r *RollRepo) ListForStage(ctx context.Context, stage entity.Stage) ([]*entity.Roll, error) {
	query := `SELECT ` + rollColumns + `
		FROM rolls r
		WHERE r.job_order_id IN (
			SELECT p.job_order_id FROM rolls p WHERE p.current_stage = ? AND p.status <> ?
		)
		ORDER BY r.job_order_id, r.roll_number`
	return r.list(ctx, "list rolls for stage", query, string(stage), entity.RollStatusCompleted)
}

// ListCompleted rollos que llegaron a la etapa completed.
func (r *RollRepo) ListCompleted(ctx context.Context) ([]*entity.Roll, error) {
	return r.list(ctx, "list completed rolls",
		`SELECT `+rollColumns+` FROM rolls r WHERE r.current_stage = ? ORDER BY r.job_order_id, r.roll_number`,
		string(entity.StageCompleted))
}

// ExistsByOrder informa si algún rollo cuelga de una orden de trabajo del pedido.
func (r *RollRepo) ExistsByOrder(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM rolls r JOIN job_orders j ON j.id = r.job_order_id WHERE j.order_id = ?)`
	if err := sqlx.GetContext(ctx, r.q, &exists, query, orderID); err != nil {
		return false, fmt.Errorf("rolls exist by order: %w", err)
	}
	return exists, nil
}
