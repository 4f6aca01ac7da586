// Package pdf implementa la representación imprimible del reporte de cobro
// mensual del distribuidor usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Distribuidor  │  REPORTE DE COBRO + Mes            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TIENDA: Nombre + período facturado                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Código | Montura | Costo total               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR AL DISTRIBUIDOR                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	appbilling "github.com/jfcastano/optica-distri/internal/application/billing"
	"github.com/jfcastano/optica-distri/internal/application/dto"
)

var _ appbilling.BillingPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.BillingPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	distributorName string
}

// NewMarotoPDFGenerator construye el generador con el nombre del distribuidor
// para el encabezado.
func NewMarotoPDFGenerator(distributorName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{distributorName: distributorName}
}

// GenerateBillingPDF genera el PDF del reporte de cobro y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateBillingPDF(_ context.Context, report *dto.BillingReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Cobro "+report.Month, true).
		WithAuthor(g.distributorName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.distributorName, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(shopRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(report.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: distribuidor (izq) y título + mes (der).
func headerRow(distributorName string, report *dto.BillingReportResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(distributorName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Distribución de monturas ópticas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE COBRO MENSUAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(report.Month, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// shopRow: datos de la tienda facturada y el período cubierto.
func shopRow(report *dto.BillingReportResponse) core.Row {
	periodo := fmt.Sprintf("Período: %s a %s",
		report.PeriodStart.Format("02/01/2006"),
		report.PeriodEnd.AddDate(0, 0, -1).Format("02/01/2006"),
	)
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TIENDA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(report.ShopName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(periodo, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas del reporte.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Código", 3, align.Left),
		h("Montura", 5, align.Left),
		h("Costo total", 3, align.Right),
	)
}

// tableDetailRows: una fila por montura vendida en el período.
func tableDetailRows(items []dto.BillingReportLineDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.QuantitySold),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				item.ProductID,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				item.FrameName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(item.TotalCost.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total a pagar al distribuidor, alineado a la derecha.
func totalRow(report *dto.BillingReportResponse) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New("TOTAL A PAGAR:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New("$"+formatMoney(report.TotalAmountDue.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 2,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
