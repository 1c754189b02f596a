// Package access evalúa qué vistas de etapa y qué acciones por módulo puede
// ejecutar un actor según su rol, su sección y los registros de permiso
// explícitos. Es puro: los registros llegan ya cargados en Grants.
package access

import (
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Decision resultado tipado de una evaluación de permiso.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow(reason string) Decision { return Decision{Allowed: true, Reason: reason} }

func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// Grants registros de permiso relevantes para un actor (overrides de su rol y concesiones de su sección).
type Grants struct {
	RoleOverrides []entity.RolePermission
	SectionGrants []entity.SectionPermission
}

func (g Grants) roleOverride(role, module, action string) (allowed, found bool) {
	for _, p := range g.RoleOverrides {
		if p.Role == role && p.Module == module && p.Action == action {
			return p.Allowed, true
		}
	}
	return false, false
}

func (g Grants) sectionGrant(sectionID, module, action string) bool {
	for _, p := range g.SectionGrants {
		if p.SectionID == sectionID && p.Module == module && p.Action == action {
			return true
		}
	}
	return false
}

// CanViewStage decide si el actor puede ver la cola de la etapa.
// Prioridad: administrador, supervisor (con override), sección, operario sin sección, denegar.
func CanViewStage(actor *entity.Actor, stage entity.Stage, g Grants) Decision {
	module := StageModule(stage)
	if module == "" {
		return deny(fmt.Sprintf("etapa desconocida %q", stage))
	}
	if actor == nil {
		return deny("actor desconocido")
	}

	switch actor.Role {
	case entity.RoleAdministrator:
		return allow("administrador")
	case entity.RoleSupervisor:
		if allowed, found := g.roleOverride(actor.Role, module, entity.ActionView); found {
			return overrideDecision(allowed, module, entity.ActionView)
		}
		return allow("supervisor")
	}

	if actor.HasSection() {
		if mapped, ok := SectionStage(actor.SectionName); ok && mapped == stage {
			return allow("sección " + actor.SectionName)
		}
		if g.sectionGrant(actor.SectionID, module, entity.ActionView) {
			return allow("permiso explícito de sección sobre " + module)
		}
		return deny(fmt.Sprintf("la sección %q no opera la etapa %s", actor.SectionName, stage))
	}

	if actor.Role == entity.RoleOperator && isWorkflowModule(module) {
		return allow("operario sin sección: flujo de producción")
	}
	return deny("sin permiso para la etapa " + string(stage))
}

// CanMutateModule decide si el actor puede ejecutar action sobre module.
func CanMutateModule(actor *entity.Actor, module, action string, g Grants) Decision {
	if !validAction(action) {
		return deny(fmt.Sprintf("acción desconocida %q", action))
	}
	if actor == nil {
		return deny("actor desconocido")
	}

	switch actor.Role {
	case entity.RoleAdministrator:
		return allow("administrador")
	case entity.RoleSupervisor:
		if allowed, found := g.roleOverride(actor.Role, module, action); found {
			return overrideDecision(allowed, module, action)
		}
		return allow("supervisor")
	}

	if actor.HasSection() {
		if stage, ok := SectionStage(actor.SectionName); ok && StageModule(stage) == module {
			return allow("sección " + actor.SectionName)
		}
		if g.sectionGrant(actor.SectionID, module, action) {
			return allow("permiso explícito de sección sobre " + module)
		}
		return deny(fmt.Sprintf("la sección %q no puede %s en %s", actor.SectionName, action, module))
	}

	if actor.Role == entity.RoleOperator && (isWorkflowModule(module) || module == entity.ModuleMixMaterials) {
		return allow("operario sin sección: " + module)
	}
	return deny(fmt.Sprintf("sin permiso para %s en %s", action, module))
}

func overrideDecision(allowed bool, module, action string) Decision {
	if allowed {
		return allow(fmt.Sprintf("override de rol: %s/%s permitido", module, action))
	}
	return deny(fmt.Sprintf("override de rol: %s/%s denegado", module, action))
}

func validAction(action string) bool {
	for _, a := range entity.AllActions {
		if a == action {
			return true
		}
	}
	return false
}
