package http

import (
	"fmt"
	"net/url"

	"github.com/jhoicas/catalogo-productos/internal/domain"
	"github.com/jhoicas/catalogo-productos/internal/domain/catalog"
)

// Parámetros de query que transportan el estado de la vista.
const (
	ParamUser     = "user"
	ParamCategory = "category" // repetible
	ParamQuery    = "query"
	ParamSort     = "sort"
	ParamOrder    = "order"
)

// ViewState estado completo de la vista: filtros y ordenamiento. Viaja en la URL, así cada
// control de la página es un enlace al estado siguiente.
type ViewState struct {
	Filters catalog.State
	Sort    catalog.SortState
}

// ParseViewState lee el estado desde una query string cruda (sin "?").
// Las categorías repetidas o vacías se descartan.
func ParseViewState(rawQuery string) (ViewState, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return ViewState{}, fmt.Errorf("query string: %w", domain.ErrInvalidInput)
	}

	filters := catalog.NewState().
		WithUser(values.Get(ParamUser)).
		WithQuery(values.Get(ParamQuery))
	for _, title := range values[ParamCategory] {
		if title != "" && !filters.HasCategory(title) {
			filters = filters.ToggleCategory(title)
		}
	}

	column, err := catalog.ParseSortColumn(values.Get(ParamSort))
	if err != nil {
		return ViewState{}, err
	}
	order, err := catalog.ParseSortOrder(values.Get(ParamOrder))
	if err != nil {
		return ViewState{}, err
	}
	sort := catalog.SortState{Column: column, Order: order}
	if !sort.Active() {
		sort = catalog.SortState{}
	}

	return ViewState{Filters: filters, Sort: sort}, nil
}

// Values codifica el estado omitiendo los valores por defecto.
func (s ViewState) Values() url.Values {
	values := url.Values{}
	if !s.Filters.IsAllUsers() {
		values.Set(ParamUser, s.Filters.User)
	}
	for _, title := range s.Filters.Categories {
		values.Add(ParamCategory, title)
	}
	if s.Filters.Query != "" {
		values.Set(ParamQuery, s.Filters.Query)
	}
	if s.Sort.Active() {
		values.Set(ParamSort, string(s.Sort.Column))
		values.Set(ParamOrder, string(s.Sort.Order))
	}
	return values
}

// Href devuelve path con el estado codificado como query string.
func (s ViewState) Href(path string) string {
	encoded := s.Values().Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}
