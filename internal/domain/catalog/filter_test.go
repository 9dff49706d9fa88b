package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-productos/internal/domain/catalog"
	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Filter
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_SinFiltros_DevuelveCatalogoCompleto(t *testing.T) {
	entries := fixtureCatalog(t)

	got := catalog.Filter(entries, catalog.NewState())

	assert.Equal(t, entries, got)
}

func TestFilter_PorUsuario(t *testing.T) {
	entries := fixtureCatalog(t)

	got := catalog.Filter(entries, catalog.NewState().WithUser("Anna"))
	assert.Equal(t, []int{2, 3, 5}, ids(got))

	// Sensible a mayúsculas.
	got = catalog.Filter(entries, catalog.NewState().WithUser("anna"))
	assert.Empty(t, got)
}

func TestFilter_PorCategorias(t *testing.T) {
	entries := fixtureCatalog(t)

	state := catalog.NewState().ToggleCategory("Drinks").ToggleCategory("Clothes")
	got := catalog.Filter(entries, state)

	assert.Equal(t, []int{1, 4}, ids(got))
}

func TestFilter_PorTexto_SinDistinguirMayusculas(t *testing.T) {
	entries := fixtureCatalog(t)

	got := catalog.Filter(entries, catalog.NewState().WithQuery("boo"))
	require.Len(t, got, 1)
	assert.Equal(t, "Book", got[0].Name)

	got = catalog.Filter(entries, catalog.NewState().WithQuery("MIL"))
	assert.Equal(t, []int{1}, ids(got))
}

func TestFilter_Combinado(t *testing.T) {
	entries := fixtureCatalog(t)

	state := catalog.State{User: "Anna", Categories: []string{"Grocery", "Drinks"}, Query: "e"}
	got := catalog.Filter(entries, state)

	assert.Equal(t, []int{2, 3}, ids(got))
}

func TestFilter_CategoriaDesconocida_NoCoincide(t *testing.T) {
	entries := fixtureCatalog(t)

	got := catalog.Filter(entries, catalog.NewState().ToggleCategory("Unknown"))
	assert.Empty(t, got)
}

func TestFilter_EsSubsecuenciaDelCatalogo(t *testing.T) {
	entries := fixtureCatalog(t)
	states := []catalog.State{
		catalog.NewState().WithUser("Roma"),
		catalog.NewState().WithUser("Anna"),
		catalog.NewState().ToggleCategory("Grocery"),
		catalog.NewState().ToggleCategory("Clothes").ToggleCategory("Drinks"),
		catalog.NewState().WithQuery("k"),
		catalog.NewState().WithQuery("zzz"),
	}

	for _, s := range states {
		got := catalog.Filter(entries, s)
		assert.True(t, isSubsequence(ids(got), ids(entries)), "estado %+v", s)
	}
}

func TestFilter_Idempotente(t *testing.T) {
	entries := fixtureCatalog(t)
	state := catalog.State{User: "Anna", Categories: []string{"Grocery"}, Query: "b"}

	once := catalog.Filter(entries, state)
	twice := catalog.Filter(once, state)

	assert.Equal(t, once, twice)
}

func TestFilter_NoModificaLaEntrada(t *testing.T) {
	entries := fixtureCatalog(t)
	before := ids(entries)

	_ = catalog.Filter(entries, catalog.NewState().WithUser("Max"))

	assert.Equal(t, before, ids(entries))
}

// Ejemplo mínimo: un usuario, una categoría y un producto.
func TestFilter_EjemploLaptop(t *testing.T) {
	entries, err := catalog.Build(
		[]entity.User{{ID: 1, Name: "Max", Sex: entity.SexMale}},
		[]entity.Category{{ID: 1, Title: "Electronics", Icon: "💻", OwnerID: 1}},
		[]entity.Product{{ID: 1, Name: "Laptop", CategoryID: 1}},
	)
	require.NoError(t, err)

	assert.Len(t, catalog.Filter(entries, catalog.NewState().WithUser("Max")), 1)
	assert.Empty(t, catalog.Filter(entries, catalog.NewState().WithUser("Nina")))

	byQuery := catalog.Filter(entries, catalog.NewState().WithQuery("top"))
	require.Len(t, byQuery, 1)
	assert.Equal(t, "Laptop", byQuery[0].Name)

	state := catalog.State{User: "Nina", Categories: []string{"Electronics"}, Query: "x"}
	assert.Empty(t, catalog.Filter(entries, state))
	assert.Equal(t, entries, catalog.Filter(entries, state.Reset()))
}

// ──────────────────────────────────────────────────────────────────────────────
// State
// ──────────────────────────────────────────────────────────────────────────────

func TestState_ToggleCategory_AgregaYQuita(t *testing.T) {
	s := catalog.NewState()

	s = s.ToggleCategory("Grocery")
	assert.Equal(t, []string{"Grocery"}, s.Categories)

	s = s.ToggleCategory("Drinks").ToggleCategory("Fruits")
	assert.Equal(t, []string{"Grocery", "Drinks", "Fruits"}, s.Categories)

	// Quitar una categoría deja las demás.
	s = s.ToggleCategory("Drinks")
	assert.Equal(t, []string{"Grocery", "Fruits"}, s.Categories)
}

func TestState_ToggleCategory_DosVecesEsIdentidad(t *testing.T) {
	initials := [][]string{
		nil,
		{"Grocery"},
		{"Grocery", "Drinks"},
	}
	for _, initial := range initials {
		for _, title := range []string{"Grocery", "Drinks", "Clothes"} {
			s := catalog.State{User: catalog.AllUsers, Categories: initial}
			back := s.ToggleCategory(title).ToggleCategory(title)
			assert.ElementsMatch(t, initial, back.Categories, "toggle %q sobre %v", title, initial)
		}
	}
}

func TestState_ToggleCategory_NoModificaElReceptor(t *testing.T) {
	s := catalog.State{User: catalog.AllUsers, Categories: []string{"Grocery", "Drinks"}}

	_ = s.ToggleCategory("Grocery")

	assert.Equal(t, []string{"Grocery", "Drinks"}, s.Categories)
}

func TestState_Reset(t *testing.T) {
	s := catalog.State{User: "Anna", Categories: []string{"Grocery"}, Query: "milk"}

	r := s.Reset()

	assert.Equal(t, catalog.NewState(), r)
	assert.True(t, r.IsZero())
	assert.False(t, s.IsZero())
}

func TestState_UsuarioActivo(t *testing.T) {
	s := catalog.NewState()
	assert.True(t, s.IsUserActive(catalog.AllUsers))
	assert.False(t, s.IsUserActive("Anna"))

	s = s.WithUser("Anna")
	assert.True(t, s.IsUserActive("Anna"))
	assert.False(t, s.IsUserActive(catalog.AllUsers))

	// Vacío equivale a "All".
	assert.Equal(t, catalog.AllUsers, s.WithUser("").User)
}

func TestState_ClearQueryYCategorias(t *testing.T) {
	s := catalog.State{User: "Max", Categories: []string{"Clothes"}, Query: "jack"}

	assert.Equal(t, catalog.State{User: "Max", Categories: []string{"Clothes"}}, s.ClearQuery())
	assert.Equal(t, catalog.State{User: "Max", Query: "jack"}, s.ClearCategories())
	assert.True(t, s.HasCategory("Clothes"))
	assert.False(t, s.ClearCategories().HasCategory("Clothes"))
}

func isSubsequence(sub, full []int) bool {
	i := 0
	for _, v := range full {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}
	return i == len(sub)
}
