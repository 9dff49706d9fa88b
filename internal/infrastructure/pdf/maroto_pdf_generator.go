// Package pdf genera el reporte PDF del catálogo filtrado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                  │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FILTROS: usuario / categorías / búsqueda / orden           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Producto | Categoría | Usuario                 │
//	│     (o mensaje de catálogo vacío)                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

	"github.com/jhoicas/catalogo-productos/internal/application/ports"
	"github.com/jhoicas/catalogo-productos/internal/domain/catalog"
	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// EmptyMessage texto cuando ningún producto cumple los filtros.
const EmptyMessage = "No products matching selected criteria"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 50, Green: 115, Blue: 220}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 241, Green: 70, Blue: 104}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.CatalogPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.CatalogPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCatalogPDF(ctx context.Context, report ports.CatalogReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(filtersRow(report.Filters, report.Sort))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(report.Entries) == 0 {
		m.AddRows(emptyRow())
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(tableRows(report.Entries)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(report.Entries)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report ports.CatalogReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+report.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// filtersRow: resumen de los filtros y del orden aplicados.
func filtersRow(state catalog.State, sort catalog.SortState) core.Row {
	user := catalog.AllUsers
	if !state.IsAllUsers() {
		user = state.User
	}
	categories := "All"
	if len(state.Categories) > 0 {
		categories = strings.Join(state.Categories, ", ")
	}
	order := "none"
	if sort.Active() {
		order = string(sort.Column) + " " + string(sort.Order)
	}

	return row.New(12).Add(
		col.New(12).Add(
			text.New("FILTERS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("User: %s   |   Categories: %s   |   Search: %s   |   Sort: %s",
				user, categories, nonEmpty(state.Query, "-"), order,
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Product", 5, align.Left),
		h("Category", 3, align.Left),
		h("User", 3, align.Left),
	)
}

// tableRows: una fila por entrada visible. El ícono de la categoría es un emoji que la
// fuente base no cubre, así que solo se imprime el título.
func tableRows(entries []entity.CatalogEntry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		userColor := colorPrimary
		if e.User.Sex != entity.SexMale {
			userColor = colorDanger
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(e.ID), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(5).Add(text.New(e.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(e.Category.Title, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(e.User.Name, props.Text{Size: 8, Top: 1, Left: 1, Color: userColor})),
		))
	}
	return result
}

func emptyRow() core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New(EmptyMessage, props.Text{
			Size: 10, Align: align.Center, Top: 3, Color: colorGray,
		}),
	))
}

func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total products: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
