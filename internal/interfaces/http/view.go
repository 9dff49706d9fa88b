package http

import (
	"maps"
	"slices"

	"github.com/jhoicas/catalogo-productos/internal/domain/catalog"
	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// EmptyMessage texto que reemplaza a la tabla cuando no hay resultados.
const EmptyMessage = "No products matching selected criteria"

// PageView modelo de la página principal. El template solo lo recorre.
type PageView struct {
	Title             string
	Users             []LinkView
	Query             string
	SearchAction      string
	SearchHidden      []HiddenField
	ClearQueryHref    string // vacío si no hay búsqueda
	AllCategoriesHref string
	Categories        []LinkView
	ResetHref         string
	ExportHref        string
	Columns           []ColumnView
	Rows              []RowView
	Empty             bool
	EmptyMessage      string
}

// LinkView enlace de filtro (pestaña de usuario o botón de categoría).
type LinkView struct {
	Label  string
	Href   string
	Active bool
}

// HiddenField campo oculto del formulario de búsqueda.
type HiddenField struct {
	Name  string
	Value string
}

// ColumnView encabezado de la tabla con su enlace de orden.
type ColumnView struct {
	Label string
	Href  string
	Icon  string
}

// RowView una fila de la tabla.
type RowView struct {
	ID        int
	Name      string
	Category  string
	User      string
	UserClass string
}

var columnLabels = map[catalog.SortColumn]string{
	catalog.SortByID:       "ID",
	catalog.SortByProduct:  "Product",
	catalog.SortByCategory: "Category",
	catalog.SortByUser:     "User",
}

// BuildPage arma el modelo de la página para el estado actual y las entradas visibles.
func BuildPage(title, path string, state ViewState, users []entity.User, categories []entity.Category, visible []entity.CatalogEntry) PageView {
	next := func(filters catalog.State) string {
		return ViewState{Filters: filters, Sort: state.Sort}.Href(path)
	}

	view := PageView{
		Title:             title,
		Query:             state.Filters.Query,
		SearchAction:      path,
		AllCategoriesHref: next(state.Filters.ClearCategories()),
		ResetHref:         path,
		ExportHref:        state.Href("/catalog.pdf"),
		Empty:             len(visible) == 0,
		EmptyMessage:      EmptyMessage,
	}

	view.Users = append(view.Users, LinkView{
		Label:  catalog.AllUsers,
		Href:   next(state.Filters.WithUser(catalog.AllUsers)),
		Active: state.Filters.IsUserActive(catalog.AllUsers),
	})
	for _, u := range users {
		view.Users = append(view.Users, LinkView{
			Label:  u.Name,
			Href:   next(state.Filters.WithUser(u.Name)),
			Active: state.Filters.IsUserActive(u.Name),
		})
	}

	for _, c := range categories {
		view.Categories = append(view.Categories, LinkView{
			Label:  c.Title,
			Href:   next(state.Filters.ToggleCategory(c.Title)),
			Active: state.Filters.HasCategory(c.Title),
		})
	}

	if state.Filters.Query != "" {
		view.ClearQueryHref = next(state.Filters.ClearQuery())
	}
	view.SearchHidden = hiddenFields(ViewState{Filters: state.Filters.ClearQuery(), Sort: state.Sort})

	for _, column := range catalog.SortColumns {
		view.Columns = append(view.Columns, ColumnView{
			Label: columnLabels[column],
			Href:  ViewState{Filters: state.Filters, Sort: state.Sort.Cycle(column)}.Href(path),
			Icon:  SortIcon(state.Sort.OrderFor(column)),
		})
	}

	for _, e := range visible {
		view.Rows = append(view.Rows, RowView{
			ID:        e.ID,
			Name:      e.Name,
			Category:  e.Category.Label(),
			User:      e.User.Name,
			UserClass: UserClass(e.User.Sex),
		})
	}
	return view
}

// UserClass clase CSS del nombre de usuario según sex.
func UserClass(sex entity.Sex) string {
	if sex == entity.SexMale {
		return "has-text-link"
	}
	return "has-text-danger"
}

// SortIcon clase del ícono de orden de una columna.
func SortIcon(order catalog.SortOrder) string {
	switch order {
	case catalog.OrderAsc:
		return "fa-sort-up"
	case catalog.OrderDesc:
		return "fa-sort-down"
	default:
		return "fa-sort"
	}
}

func hiddenFields(state ViewState) []HiddenField {
	values := state.Values()
	var fields []HiddenField
	for _, k := range slices.Sorted(maps.Keys(values)) {
		for _, v := range values[k] {
			fields = append(fields, HiddenField{Name: k, Value: v})
		}
	}
	return fields
}

