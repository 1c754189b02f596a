package entity

import "time"

// Roles válidos para Actor.
const (
	RoleAdministrator = "administrator"
	RoleSupervisor    = "supervisor"
	RoleOperator      = "operator"
)

// Actor usuario de planta tal como lo entrega el directorio de usuarios/secciones.
type Actor struct {
	ID          string
	Name        string
	Role        string
	SectionID   string // vacío = sin sección asignada
	SectionName string // resuelto desde sections
	CreatedAt   time.Time
}

// HasSection informa si el actor tiene sección de planta asignada.
func (a *Actor) HasSection() bool {
	return a.SectionID != ""
}

// Section sección de planta (Extrusión, Impresión, Corte, Bodega).
type Section struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
