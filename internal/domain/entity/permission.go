package entity

// Módulos sobre los que se evalúan permisos.
const (
	ModuleWorkflow     = "workflow"
	ModuleExtrusion    = "extrusion"
	ModulePrinting     = "printing"
	ModuleCutting      = "cutting"
	ModuleWarehouse    = "warehouse"
	ModuleMixMaterials = "mix_materials"
	ModuleOrders       = "orders"
)

// Acciones sobre un módulo.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// AllActions lista todas las acciones válidas.
var AllActions = []string{ActionView, ActionCreate, ActionEdit, ActionDelete}

// RolePermission override explícito (permitir o denegar) de un rol sobre módulo+acción.
type RolePermission struct {
	Role    string
	Module  string
	Action  string
	Allowed bool
}

// SectionPermission concesión explícita a una sección sobre módulo+acción.
type SectionPermission struct {
	SectionID string
	Module    string
	Action    string
}
