package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// AllUsers es el valor de State.User que no restringe por usuario.
const AllUsers = "All"

// State es el estado de filtros de la vista. Es un valor: las operaciones devuelven un
// State nuevo y nunca modifican el receptor. Categories vacío (nil) no restringe.
type State struct {
	User       string
	Categories []string
	Query      string
}

// NewState devuelve el estado sin filtros.
func NewState() State {
	return State{User: AllUsers}
}

// Reset vuelve a usuario "All", sin categorías y sin búsqueda.
func (s State) Reset() State {
	return NewState()
}

// WithUser selecciona un usuario. Vacío equivale a "All".
func (s State) WithUser(name string) State {
	if name == "" {
		name = AllUsers
	}
	s.User = name
	return s
}

// WithQuery fija el texto de búsqueda.
func (s State) WithQuery(query string) State {
	s.Query = query
	return s
}

// ClearQuery borra el texto de búsqueda.
func (s State) ClearQuery() State {
	s.Query = ""
	return s
}

// ClearCategories quita todas las categorías seleccionadas.
func (s State) ClearCategories() State {
	s.Categories = nil
	return s
}

// ToggleCategory agrega title si no está seleccionado y si está lo quita, dejando intactas
// las demás categorías (diferencia simétrica con {title}).
func (s State) ToggleCategory(title string) State {
	next := make([]string, 0, len(s.Categories)+1)
	found := false
	for _, c := range s.Categories {
		if c == title {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		next = append(next, title)
	}
	if len(next) == 0 {
		next = nil
	}
	s.Categories = next
	return s
}

// HasCategory indica si title está seleccionado.
func (s State) HasCategory(title string) bool {
	for _, c := range s.Categories {
		if c == title {
			return true
		}
	}
	return false
}

// IsAllUsers indica si el filtro de usuario está desactivado.
func (s State) IsAllUsers() bool {
	return s.User == "" || s.User == AllUsers
}

// IsUserActive indica si name es el usuario seleccionado ("All" incluido).
func (s State) IsUserActive(name string) bool {
	if s.IsAllUsers() {
		return name == AllUsers
	}
	return s.User == name
}

// IsZero indica si el estado no aplica ningún filtro.
func (s State) IsZero() bool {
	return s.IsAllUsers() && len(s.Categories) == 0 && s.Query == ""
}

// Filter devuelve la subsecuencia de entries que cumple los tres filtros, en el mismo orden:
// usuario exacto (sensible a mayúsculas), categoría en el conjunto seleccionado y nombre de
// producto que contiene Query sin distinguir mayúsculas.
func Filter(entries []entity.CatalogEntry, s State) []entity.CatalogEntry {
	var categories map[string]struct{}
	if len(s.Categories) > 0 {
		categories = make(map[string]struct{}, len(s.Categories))
		for _, c := range s.Categories {
			categories[c] = struct{}{}
		}
	}

	// cases.Caser guarda estado interno: uno por llamada.
	fold := cases.Fold()
	query := fold.String(s.Query)

	out := make([]entity.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if !s.IsAllUsers() && e.User.Name != s.User {
			continue
		}
		if categories != nil {
			if _, ok := categories[e.Category.Title]; !ok {
				continue
			}
		}
		if query != "" && !strings.Contains(fold.String(e.Name), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}
