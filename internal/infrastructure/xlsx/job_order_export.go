// Package xlsx exporta los rollos de una orden de trabajo a Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	prodrules "github.com/jhoicas/Produccion-api/internal/domain/production"
)

const sheetName = "Rollos"

var headers = []string{
	"Rollo", "Etapa", "Estado", "Extrusión (kg)", "Impresión (kg)", "Corte (kg)",
	"Creado por", "Creado", "Impreso por", "Cortado por", "Completado",
}

var _ production.RollSheetExporter = (*RollSheetExporter)(nil)

// RollSheetExporter implementa production.RollSheetExporter con excelize.
type RollSheetExporter struct{}

// NewRollSheetExporter construye el exportador.
func NewRollSheetExporter() *RollSheetExporter { return &RollSheetExporter{} }

// ExportJobOrderRolls una fila por rollo y una fila de totales al final.
func (e *RollSheetExporter) ExportJobOrderRolls(_ context.Context, jobOrder *entity.JobOrder, rolls []*entity.Roll) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	title := fmt.Sprintf("Orden de trabajo %s - pedido %s - %s kg", jobOrder.ID, jobOrder.OrderID, jobOrder.Quantity.String())
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}

	const headerRow = 3
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
	}

	rowIdx := headerRow + 1
	for _, r := range rolls {
		values := []any{
			r.RollNumber, string(r.CurrentStage), r.Status,
			r.ExtrudingQty.InexactFloat64(), r.PrintingQty.InexactFloat64(), r.CuttingQty.InexactFloat64(),
			r.CreatedByID, r.CreatedAt.Format("2006-01-02 15:04"), r.PrintedByID, r.CutByID, completedAt(r),
		}
		if err := setRow(f, rowIdx, values); err != nil {
			return nil, err
		}
		rowIdx++
	}

	totals := []any{
		"Total", "", "",
		prodrules.TotalExtruded(rolls).InexactFloat64(), "", "",
		"Pendiente", prodrules.RemainingQuantity(jobOrder, rolls).InexactFloat64(),
	}
	if err := setRow(f, rowIdx+1, totals); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheetName, "A", "K", 15); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, rowIdx int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", rowIdx, err)
	}
	return nil
}

func completedAt(r *entity.Roll) string {
	if r.CompletedAt == nil {
		return ""
	}
	return r.CompletedAt.Format("2006-01-02 15:04")
}
