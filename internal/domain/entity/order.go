package entity

import "time"

// Order pedido de un cliente; agrupa órdenes de trabajo solo para presentación.
type Order struct {
	ID           string
	CustomerID   string
	CustomerName string // resuelto desde customers
	Date         time.Time
	Status       string
	CreatedAt    time.Time
}
