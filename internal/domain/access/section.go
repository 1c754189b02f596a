package access

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// sectionStages nombre normalizado de sección → etapa que opera.
// Bodega no opera una etapa productiva: ve los rollos completados.
var sectionStages = map[string]entity.Stage{
	"extruding": entity.StageExtrusion,
	"extrusion": entity.StageExtrusion,
	"extrusora": entity.StageExtrusion,
	"printing":  entity.StagePrinting,
	"impresion": entity.StagePrinting,
	"cutting":   entity.StageCutting,
	"corte":     entity.StageCutting,
	"warehouse": entity.StageCompleted,
	"bodega":    entity.StageCompleted,
	"almacen":   entity.StageCompleted,
}

// stageModules etapa → módulo de permisos que la representa.
var stageModules = map[entity.Stage]string{
	entity.StageExtrusion: entity.ModuleExtrusion,
	entity.StagePrinting:  entity.ModulePrinting,
	entity.StageCutting:   entity.ModuleCutting,
	entity.StageCompleted: entity.ModuleWarehouse,
}

// NormalizeSectionName quita tildes, espacios extremos y mayúsculas: "Extrusión " → "extrusion".
func NormalizeSectionName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, strings.TrimSpace(name))
	if err != nil {
		plain = strings.TrimSpace(name)
	}
	return cases.Fold().String(plain)
}

// SectionStage etapa asociada al nombre de una sección; false si la sección no opera ninguna.
func SectionStage(sectionName string) (entity.Stage, bool) {
	st, ok := sectionStages[NormalizeSectionName(sectionName)]
	return st, ok
}

// StageModule módulo de permisos de una etapa.
func StageModule(stage entity.Stage) string {
	return stageModules[stage]
}

// isWorkflowModule módulos del flujo de producción (por defecto para operarios sin sección).
func isWorkflowModule(module string) bool {
	switch module {
	case entity.ModuleWorkflow, entity.ModuleExtrusion, entity.ModulePrinting, entity.ModuleCutting:
		return true
	}
	return false
}
