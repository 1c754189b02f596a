// Package pdf genera la etiqueta imprimible de un rollo.
//
// Layout (A5):
//
//	┌────────────────────────────────────────────┐
//	│  ROLLO N°  │  Orden de trabajo / Pedido     │
//	│  ───────────────────────────────────────── │
//	│  Cliente + fecha de creación                │
//	│  Extrusión | Impresión | Corte (kg)         │
//	│  Etapa actual + estado                      │
//	│  ───────────────────────────────────────── │
//	│  QR (id del rollo + orden de trabajo)       │
//	└────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var stageLabels = map[entity.Stage]string{
	entity.StageExtrusion: "Extrusión",
	entity.StagePrinting:  "Impresión",
	entity.StageCutting:   "Corte",
	entity.StageCompleted: "Completado",
}

var _ production.RollLabelGenerator = (*RollLabelGenerator)(nil)

// RollLabelGenerator implementa production.RollLabelGenerator con Maroto v2.
type RollLabelGenerator struct{}

// NewRollLabelGenerator construye el generador.
func NewRollLabelGenerator() *RollLabelGenerator { return &RollLabelGenerator{} }

// GenerateRollLabel genera el PDF de la etiqueta y devuelve sus bytes.
func (g *RollLabelGenerator) GenerateRollLabel(_ context.Context, label production.RollLabel) ([]byte, error) {
	if label.Roll == nil || label.JobOrder == nil {
		return nil, fmt.Errorf("pdf: etiqueta sin rollo u orden de trabajo")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Rollo %d - OT %s", label.Roll.RollNumber, label.JobOrder.ID), true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(label))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(label))
	m.AddRows(quantitiesRow(label.Roll))
	m.AddRows(stageRow(label.Roll))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(qrRow(label))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// QRPayload contenido del código QR: identifica el rollo sin depender de la base.
func QRPayload(label production.RollLabel) string {
	return fmt.Sprintf("roll:%s;job_order:%s;n:%d", label.Roll.ID, label.JobOrder.ID, label.Roll.RollNumber)
}

func headerRow(label production.RollLabel) core.Row {
	orderID := label.JobOrder.OrderID
	return row.New(18).Add(
		col.New(5).Add(
			text.New("ROLLO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("N° %d", label.Roll.RollNumber), props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 6,
			}),
		),
		col.New(7).Add(
			text.New("Orden de trabajo "+label.JobOrder.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Pedido "+orderID, props.Text{Size: 9, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func customerRow(label production.RollLabel) core.Row {
	customer := "-"
	if label.Order != nil && label.Order.CustomerName != "" {
		customer = label.Order.CustomerName
	}
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Cliente", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
			text.New(customer, props.Text{Size: 10, Top: 5}),
		),
		col.New(4).Add(
			text.New("Creado", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(label.Roll.CreatedAt.Format("02/01/2006 15:04"), props.Text{Size: 9, Align: align.Right, Top: 5}),
		),
	)
}

func quantitiesRow(r *entity.Roll) core.Row {
	cell := func(title, value string) core.Col {
		return col.New(4).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Center, Color: colorPrimary, Top: 1}),
			text.New(value+" kg", props.Text{Size: 11, Align: align.Center, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("Extrusión", r.ExtrudingQty.StringFixed(2)),
		cell("Impresión", r.PrintingQty.StringFixed(2)),
		cell("Corte", r.CuttingQty.StringFixed(2)),
	)
}

func stageRow(r *entity.Roll) core.Row {
	stage := stageLabels[r.CurrentStage]
	if stage == "" {
		stage = string(r.CurrentStage)
	}
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Etapa: %s   |   Estado: %s", stage, r.Status), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2,
		}),
	))
}

func qrRow(label production.RollLabel) core.Row {
	return row.New(45).Add(
		col.New(5).Add(code.NewQr(QRPayload(label), props.Rect{Percent: 95, Center: true})),
		col.New(7).Add(
			text.New("Escanee para consultar el rollo.", props.Text{Size: 8, Top: 6, Left: 3, Color: colorGray}),
			text.New(label.Roll.ID, props.Text{Size: 6.5, Top: 14, Left: 3, Color: colorGray}),
		),
	)
}
