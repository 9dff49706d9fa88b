package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// EmptyMessage texto cuando ningún producto cumple los filtros.
const EmptyMessage = "No products matching selected criteria"

// Table tabla de texto con columnas alineadas por ancho visible (los emoji ocupan dos celdas).
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable crea una tabla con los encabezados dados.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow agrega una fila. Celdas faltantes se dejan vacías y las sobrantes se ignoran.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Write imprime encabezado, separador y filas.
func (t *Table) Write(w io.Writer) error {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	separators := make([]string, len(widths))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}

	lines := append([][]string{t.headers, separators}, t.rows...)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, formatLine(line, widths)); err != nil {
			return err
		}
	}
	return nil
}

func formatLine(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			padded[i] = cell
			continue
		}
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.Join(padded, "  ")
}

// WriteCatalog imprime las entradas visibles o el mensaje de catálogo vacío.
func WriteCatalog(w io.Writer, entries []entity.CatalogEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}
	t := NewTable("ID", "PRODUCT", "CATEGORY", "USER")
	for _, e := range entries {
		t.AddRow(strconv.Itoa(e.ID), e.Name, e.Category.Label(), e.User.Name)
	}
	return t.Write(w)
}
