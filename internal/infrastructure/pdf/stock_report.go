// Package pdf genera la versión imprimible de las consultas de stock de la consola.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la consola │ Título de la consulta        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Umbral + cantidad de productos                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Disponible | Mínimo | Ubicación                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.StockReportGenerator = (*StockReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// StockReportGenerator implementa ports.StockReportGenerator usando Maroto v2.
type StockReportGenerator struct {
	appName string
	now     func() time.Time
}

// NewStockReportGenerator construye el generador; appName va en el encabezado.
func NewStockReportGenerator(appName string) *StockReportGenerator {
	if appName == "" {
		appName = "Consola de Inventario"
	}
	return &StockReportGenerator{appName: appName, now: time.Now}
}

// GenerateStockReport genera el PDF de la consulta y devuelve sus bytes.
func (g *StockReportGenerator) GenerateStockReport(ctx context.Context, report dto.QueryResultView) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	if len(report.Rows) == 0 {
		m.AddRows(emptyRow(report.Vacio))
	}
	for _, r := range tableRows(report.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(g.now()))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de stock: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la consola (izq) y título de la consulta (der).
func headerRow(appName string, report dto.QueryResultView) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 3,
			}),
		),
	)
}

// summaryRow: umbral consultado y total de filas.
func summaryRow(report dto.QueryResultView) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Umbral: %d   |   Productos: %d", report.Umbral, len(report.Rows)), props.Text{
				Size: 9, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 5, align.Left),
		h("Disponible", 2, align.Right),
		h("Mínimo", 2, align.Right),
		h("Ubicación", 3, align.Left),
	)
}

// tableRows: una fila por producto del resultado.
func tableRows(rows []dto.QueryResultRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(r.SKU, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.Disponible, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.Minimo, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(r.Ubicacion, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		))
	}
	return result
}

func emptyRow(message string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(message, props.Text{Size: 9, Align: align.Center, Color: colorGray, Top: 3}),
	))
}

func footerRow(at time.Time) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Generado el "+at.Format("02/01/2006 15:04:05"), props.Text{
			Size: 7, Color: colorGray, Top: 2, Align: align.Right,
		}),
	))
}
