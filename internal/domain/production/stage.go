// Package production contiene las reglas puras del flujo de rollos: tabla de
// transiciones de etapa, conciliación de cantidades contra la orden de trabajo y
// agrupación de la cola de trabajo por etapa. No accede a persistencia.
package production

import (
	"strings"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// transitions etapa actual → única etapa siguiente permitida.
var transitions = map[entity.Stage]entity.Stage{
	entity.StageExtrusion: entity.StagePrinting,
	entity.StagePrinting:  entity.StageCutting,
	entity.StageCutting:   entity.StageCompleted,
}

// ParseStage convierte el texto recibido en una etapa válida.
func ParseStage(s string) (entity.Stage, error) {
	stage := entity.Stage(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range entity.Stages {
		if st == stage {
			return st, nil
		}
	}
	return "", domain.NewValidationError("stage", "etapa desconocida: "+s)
}

// NextStage devuelve la etapa siguiente; false si la etapa es terminal.
func NextStage(from entity.Stage) (entity.Stage, bool) {
	next, ok := transitions[from]
	return next, ok
}

// CanTransition informa si existe la arista from → to en la tabla.
func CanTransition(from, to entity.Stage) bool {
	next, ok := transitions[from]
	return ok && next == to
}

// SourceStage etapa desde la que se llega a to; false si to no es destino de ninguna arista.
func SourceStage(to entity.Stage) (entity.Stage, bool) {
	for from, next := range transitions {
		if next == to {
			return from, true
		}
	}
	return "", false
}

// IsTerminal informa si la etapa no admite más transiciones.
func IsTerminal(s entity.Stage) bool {
	_, ok := transitions[s]
	return !ok
}

// FinishedFor informa si el rollo ya no tiene trabajo pendiente en la etapa s:
// está en otra etapa o su estado es completed.
func FinishedFor(r *entity.Roll, s entity.Stage) bool {
	return r.CurrentStage != s || r.Status == entity.RollStatusCompleted
}
