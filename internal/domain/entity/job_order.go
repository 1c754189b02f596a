package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobOrder orden de trabajo (pertenece al libro de órdenes externo; el motor solo la lee).
type JobOrder struct {
	ID                string
	OrderID           string
	Quantity          decimal.Decimal // kg pedidos
	CustomerProductID string
	Status            string
	CreatedAt         time.Time
}
