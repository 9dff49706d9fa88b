package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-productos/internal/domain"
	"github.com/jhoicas/catalogo-productos/internal/domain/catalog"
	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func fixtureUsers() []entity.User {
	return []entity.User{
		{ID: 1, Name: "Roma", Sex: entity.SexMale},
		{ID: 2, Name: "Anna", Sex: entity.SexFemale},
		{ID: 3, Name: "Max", Sex: entity.SexMale},
	}
}

func fixtureCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
		{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
		{ID: 3, Title: "Clothes", Icon: "👚", OwnerID: 3},
	}
}

func fixtureProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Milk", CategoryID: 2},
		{ID: 2, Name: "Bread", CategoryID: 1},
		{ID: 3, Name: "Eggs", CategoryID: 1},
		{ID: 4, Name: "Jacket", CategoryID: 3},
		{ID: 5, Name: "Book", CategoryID: 1},
	}
}

func fixtureCatalog(t *testing.T) []entity.CatalogEntry {
	t.Helper()
	entries, err := catalog.Build(fixtureUsers(), fixtureCategories(), fixtureProducts())
	require.NoError(t, err)
	return entries
}

func ids(entries []entity.CatalogEntry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Build
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_ResuelveCategoriaYDueno(t *testing.T) {
	entries := fixtureCatalog(t)

	require.Len(t, entries, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(entries), "debe conservar el orden de productos")

	milk := entries[0]
	assert.Equal(t, "Milk", milk.Name)
	assert.Equal(t, "Drinks", milk.Category.Title)
	assert.Equal(t, "Roma", milk.User.Name)

	jacket := entries[3]
	assert.Equal(t, "Clothes", jacket.Category.Title)
	assert.Equal(t, "Max", jacket.User.Name)
	assert.Equal(t, entity.SexMale, jacket.User.Sex)
}

func TestBuild_TablasVacias(t *testing.T) {
	entries, err := catalog.Build(nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBuild_CategoriaInexistente_Falla(t *testing.T) {
	products := append(fixtureProducts(), entity.Product{ID: 9, Name: "Ghost", CategoryID: 42})

	entries, err := catalog.Build(fixtureUsers(), fixtureCategories(), products)

	require.ErrorIs(t, err, domain.ErrDanglingReference)
	assert.Nil(t, entries, "no debe devolver un catálogo parcial")
	assert.Contains(t, err.Error(), "producto 9")
	assert.Contains(t, err.Error(), "categoría 42")
}

func TestBuild_DuenoInexistente_Falla(t *testing.T) {
	categories := append(fixtureCategories(), entity.Category{ID: 7, Title: "Toys", Icon: "🧸", OwnerID: 99})

	_, err := catalog.Build(fixtureUsers(), categories, fixtureProducts())

	require.ErrorIs(t, err, domain.ErrDanglingReference)
	assert.Contains(t, err.Error(), "usuario 99")
}

func TestBuild_IDDuplicado_Falla(t *testing.T) {
	cases := map[string]func() ([]entity.User, []entity.Category, []entity.Product){
		"usuarios": func() ([]entity.User, []entity.Category, []entity.Product) {
			return append(fixtureUsers(), entity.User{ID: 1, Name: "Otro", Sex: entity.SexFemale}), fixtureCategories(), fixtureProducts()
		},
		"categorias": func() ([]entity.User, []entity.Category, []entity.Product) {
			return fixtureUsers(), append(fixtureCategories(), entity.Category{ID: 2, Title: "X", OwnerID: 1}), fixtureProducts()
		},
		"productos": func() ([]entity.User, []entity.Category, []entity.Product) {
			return fixtureUsers(), fixtureCategories(), append(fixtureProducts(), entity.Product{ID: 3, Name: "Y", CategoryID: 1})
		},
	}
	for name, tables := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Build(tables())
			assert.ErrorIs(t, err, domain.ErrDuplicateID)
		})
	}
}
