package production

import (
	"context"
	"fmt"
)

// DocumentService genera la etiqueta PDF de un rollo y la hoja Excel de una orden de trabajo.
type DocumentService struct {
	queries  *QueryService
	labels   RollLabelGenerator
	exporter RollSheetExporter
}

// NewDocumentService construye el servicio de documentos.
func NewDocumentService(queries *QueryService, labels RollLabelGenerator, exporter RollSheetExporter) *DocumentService {
	return &DocumentService{queries: queries, labels: labels, exporter: exporter}
}

// RollLabelPDF etiqueta imprimible del rollo (con QR). Exige ver la etapa del rollo.
func (s *DocumentService) RollLabelPDF(ctx context.Context, actorID, rollID string) ([]byte, error) {
	roll, err := s.queries.visibleRoll(ctx, actorID, rollID)
	if err != nil {
		return nil, err
	}
	jo, err := s.queries.jobOrder(ctx, roll.JobOrderID)
	if err != nil {
		return nil, err
	}
	order, err := s.queries.orderRepo.GetByID(ctx, jo.OrderID)
	if err != nil {
		return nil, err
	}
	pdf, err := s.labels.GenerateRollLabel(ctx, RollLabel{Roll: roll, JobOrder: jo, Order: order})
	if err != nil {
		return nil, fmt.Errorf("etiqueta de rollo: %w", err)
	}
	return pdf, nil
}

// JobOrderSheet hoja de cálculo con los rollos de la orden de trabajo.
func (s *DocumentService) JobOrderSheet(ctx context.Context, actorID, jobOrderID string) ([]byte, error) {
	jo, rolls, err := s.queries.jobOrderRolls(ctx, actorID, jobOrderID)
	if err != nil {
		return nil, err
	}
	data, err := s.exporter.ExportJobOrderRolls(ctx, jo, rolls)
	if err != nil {
		return nil, fmt.Errorf("exportar rollos: %w", err)
	}
	return data, nil
}
