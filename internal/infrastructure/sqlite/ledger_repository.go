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

var (
	_ repository.JobOrderRepository = (*JobOrderRepo)(nil)
	_ repository.OrderRepository    = (*OrderRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
)

// JobOrderRepo órdenes de trabajo sobre SQLite.
type JobOrderRepo struct {
	q sqlx.ExtContext
}

// NewJobOrderRepository construye el adaptador.
func NewJobOrderRepository(q sqlx.ExtContext) *JobOrderRepo {
	return &JobOrderRepo{q: q}
}

type jobOrderRow struct {
	ID                string          `db:"id"`
	OrderID           string          `db:"order_id"`
	Quantity          decimal.Decimal `db:"quantity"`
	CustomerProductID string          `db:"customer_product_id"`
	Status            string          `db:"status"`
	CreatedAt         textTime        `db:"created_at"`
}

func (r jobOrderRow) toEntity() *entity.JobOrder {
	return &entity.JobOrder{
		ID:                r.ID,
		OrderID:           r.OrderID,
		Quantity:          r.Quantity,
		CustomerProductID: r.CustomerProductID,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt.Time,
	}
}

const jobOrderColumns = `id, order_id, quantity, customer_product_id, status, created_at`

// Create persiste una orden de trabajo (carga de datos).
func (r *JobOrderRepo) Create(ctx context.Context, j *entity.JobOrder) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO job_orders (`+jobOrderColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		j.ID, j.OrderID, j.Quantity, j.CustomerProductID, j.Status, textTime{j.CreatedAt})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("orden de trabajo %s: %w", j.ID, domain.ErrConflict)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("pedido %s: %w", j.OrderID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert job order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de trabajo; nil si no existe.
func (r *JobOrderRepo) GetByID(ctx context.Context, id string) (*entity.JobOrder, error) {
	var row jobOrderRow
	if err := sqlx.GetContext(ctx, r.q, &row, `SELECT `+jobOrderColumns+` FROM job_orders WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job order: %w", err)
	}
	return row.toEntity(), nil
}

// GetForUpdate equivale a GetByID: la transacción ya tiene la única conexión de escritura.
func (r *JobOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.JobOrder, error) {
	return r.GetByID(ctx, id)
}

// ListByIDs órdenes de trabajo con id en ids.
func (r *JobOrderRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.JobOrder, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT `+jobOrderColumns+` FROM job_orders WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list job orders: %w", err)
	}
	var rows []jobOrderRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, r.q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list job orders: %w", err)
	}
	out := make([]*entity.JobOrder, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// OrderRepo pedidos sobre SQLite; resuelve el nombre del cliente.
type OrderRepo struct {
	q sqlx.ExtContext
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(q sqlx.ExtContext) *OrderRepo {
	return &OrderRepo{q: q}
}

type orderRow struct {
	ID           string   `db:"id"`
	CustomerID   string   `db:"customer_id"`
	CustomerName string   `db:"customer_name"`
	Date         textTime `db:"date"`
	Status       string   `db:"status"`
	CreatedAt    textTime `db:"created_at"`
}

func (r orderRow) toEntity() *entity.Order {
	return &entity.Order{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Date:         r.Date.Time,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt.Time,
	}
}

const orderSelect = `
	SELECT o.id, o.customer_id, COALESCE(c.name, '') AS customer_name, o.date, o.status, o.created_at
	FROM orders o LEFT JOIN customers c ON c.id = o.customer_id`

// Create persiste un pedido (carga de datos).
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO orders (id, customer_id, date, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		o.ID, o.CustomerID, textTime{o.Date}, o.Status, textTime{o.CreatedAt})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("pedido %s: %w", o.ID, domain.ErrConflict)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido; nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var row orderRow
	if err := sqlx.GetContext(ctx, r.q, &row, orderSelect+` WHERE o.id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return row.toEntity(), nil
}

// ListByIDs pedidos con id en ids.
func (r *OrderRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(orderSelect+` WHERE o.id IN (?) ORDER BY o.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var rows []orderRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, r.q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// CustomerRepo clientes sobre SQLite.
type CustomerRepo struct {
	q sqlx.ExtContext
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(q sqlx.ExtContext) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	_, err := r.q.ExecContext(ctx, `INSERT INTO customers (id, name, created_at) VALUES (?, ?, ?)`,
		c.ID, c.Name, textTime{c.CreatedAt})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("cliente %s: %w", c.ID, domain.ErrConflict)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente; nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var row struct {
		ID        string   `db:"id"`
		Name      string   `db:"name"`
		CreatedAt textTime `db:"created_at"`
	}
	if err := sqlx.GetContext(ctx, r.q, &row, `SELECT id, name, created_at FROM customers WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &entity.Customer{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt.Time}, nil
}
