package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/catalogo-productos/internal/domain"
	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// SortColumn columna ordenable de la tabla.
type SortColumn string

const (
	SortByID       SortColumn = "id"
	SortByProduct  SortColumn = "product"
	SortByCategory SortColumn = "category"
	SortByUser     SortColumn = "user"
)

// SortColumns columnas en el orden en que aparecen en la tabla.
var SortColumns = []SortColumn{SortByID, SortByProduct, SortByCategory, SortByUser}

// SortOrder dirección del ordenamiento.
type SortOrder string

const (
	OrderNone SortOrder = "none"
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortColumn valida el nombre de una columna. Vacío significa sin ordenamiento.
func ParseSortColumn(s string) (SortColumn, error) {
	if s == "" {
		return "", nil
	}
	for _, c := range SortColumns {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("columna de orden %q: %w", s, domain.ErrInvalidInput)
}

// ParseSortOrder valida una dirección. Vacío equivale a OrderNone.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "", OrderNone:
		return OrderNone, nil
	case OrderAsc, OrderDesc:
		return SortOrder(s), nil
	}
	return "", fmt.Errorf("dirección de orden %q: %w", s, domain.ErrInvalidInput)
}

// SortState columna y dirección activas. El valor cero no ordena.
type SortState struct {
	Column SortColumn
	Order  SortOrder
}

// Active indica si hay un ordenamiento efectivo.
func (s SortState) Active() bool {
	return s.Column != "" && (s.Order == OrderAsc || s.Order == OrderDesc)
}

// OrderFor devuelve la dirección aplicada a column (OrderNone si no es la activa).
func (s SortState) OrderFor(column SortColumn) SortOrder {
	if !s.Active() || s.Column != column {
		return OrderNone
	}
	return s.Order
}

// Cycle es el efecto de pulsar el encabezado de column: en la columna activa recorre
// none → asc → desc → none; en otra columna empieza en asc.
func (s SortState) Cycle(column SortColumn) SortState {
	switch s.OrderFor(column) {
	case OrderAsc:
		return SortState{Column: column, Order: OrderDesc}
	case OrderDesc:
		return SortState{}
	default:
		return SortState{Column: column, Order: OrderAsc}
	}
}

// Sort devuelve una copia de entries ordenada de forma estable. Sin ordenamiento activo
// conserva el orden recibido. Las columnas de texto se comparan con collation neutral.
func Sort(entries []entity.CatalogEntry, s SortState) []entity.CatalogEntry {
	out := slices.Clone(entries)
	if !s.Active() {
		return out
	}

	col := collate.New(language.Und)
	compare := func(a, b entity.CatalogEntry) int {
		switch s.Column {
		case SortByProduct:
			return col.CompareString(a.Name, b.Name)
		case SortByCategory:
			return col.CompareString(a.Category.Title, b.Category.Title)
		case SortByUser:
			return col.CompareString(a.User.Name, b.User.Name)
		default:
			return cmp.Compare(a.ID, b.ID)
		}
	}
	if s.Order == OrderDesc {
		asc := compare
		compare = func(a, b entity.CatalogEntry) int { return -asc(a, b) }
	}
	slices.SortStableFunc(out, compare)
	return out
}
