package entity

import "time"

// Customer cliente dueño de los pedidos (solo datos de presentación).
type Customer struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
