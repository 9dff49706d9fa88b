package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-productos/internal/application/usecase"
	"github.com/jhoicas/catalogo-productos/internal/domain"
	"github.com/jhoicas/catalogo-productos/internal/domain/catalog"
	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para tests
// ──────────────────────────────────────────────────────────────────────────────

type stubUsers struct {
	items []entity.User
	err   error
}

func (s stubUsers) List(context.Context) ([]entity.User, error) { return s.items, s.err }

type stubCategories struct{ items []entity.Category }

func (s stubCategories) List(context.Context) ([]entity.Category, error) { return s.items, nil }

type stubProducts struct{ items []entity.Product }

func (s stubProducts) List(context.Context) ([]entity.Product, error) { return s.items, nil }

func newCatalogUC(t *testing.T) *usecase.CatalogUseCase {
	t.Helper()
	uc, err := usecase.NewCatalogUseCase(context.Background(),
		stubUsers{items: []entity.User{
			{ID: 1, Name: "Roma", Sex: entity.SexMale},
			{ID: 2, Name: "Anna", Sex: entity.SexFemale},
		}},
		stubCategories{items: []entity.Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
		}},
		stubProducts{items: []entity.Product{
			{ID: 1, Name: "Milk", CategoryID: 2},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "Eggs", CategoryID: 1},
		}},
	)
	require.NoError(t, err)
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CatalogUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestNewCatalogUseCase_ReferenciaRota(t *testing.T) {
	_, err := usecase.NewCatalogUseCase(context.Background(),
		stubUsers{},
		stubCategories{items: []entity.Category{{ID: 1, Title: "Grocery", OwnerID: 5}}},
		stubProducts{},
	)
	assert.ErrorIs(t, err, domain.ErrDanglingReference)
}

func TestNewCatalogUseCase_ErrorDeRepositorio(t *testing.T) {
	boom := errors.New("boom")
	_, err := usecase.NewCatalogUseCase(context.Background(), stubUsers{err: boom}, stubCategories{}, stubProducts{})
	assert.ErrorIs(t, err, boom)
}

func TestCatalogUseCase_List_SinFiltros(t *testing.T) {
	uc := newCatalogUC(t)

	out := uc.List(catalog.NewState(), catalog.SortState{})

	require.Equal(t, 3, out.Total)
	assert.Equal(t, "Milk", out.Items[0].Name)
	assert.Equal(t, "Drinks", out.Items[0].Category.Title)
	assert.Equal(t, "Roma", out.Items[0].User.Name)
	assert.Equal(t, "All", out.Filters.User)
	assert.Equal(t, "none", out.Sort.Order)
	assert.Equal(t, 3, uc.Size())
}

func TestCatalogUseCase_List_VacioSerializaArray(t *testing.T) {
	uc := newCatalogUC(t)

	out := uc.List(catalog.NewState().WithQuery("zzz"), catalog.SortState{})

	assert.Equal(t, 0, out.Total)
	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items":[]`)
	assert.Contains(t, string(raw), `"categories":[]`)
}

func TestCatalogUseCase_List_FiltraYOrdena(t *testing.T) {
	uc := newCatalogUC(t)
	state := catalog.NewState().ToggleCategory("Grocery")
	sort := catalog.SortState{Column: catalog.SortByProduct, Order: catalog.OrderDesc}

	out := uc.List(state, sort)

	require.Equal(t, 2, out.Total)
	assert.Equal(t, "Eggs", out.Items[0].Name)
	assert.Equal(t, "Bread", out.Items[1].Name)
	assert.Equal(t, []string{"Grocery"}, out.Filters.Categories)
	assert.Equal(t, "product", out.Sort.Column)
	assert.Equal(t, "desc", out.Sort.Order)
}

func TestCatalogUseCase_TablasDeConsulta(t *testing.T) {
	uc := newCatalogUC(t)

	users := uc.UserList()
	require.Len(t, users.Items, 2)
	assert.Equal(t, "f", users.Items[1].Sex)

	categories := uc.CategoryList()
	require.Len(t, categories.Items, 2)
	assert.Equal(t, 2, categories.Items[0].OwnerID)

	// Las copias no afectan al caso de uso.
	u := uc.Users()
	u[0].Name = "changed"
	assert.Equal(t, "Roma", uc.Users()[0].Name)
	assert.Len(t, uc.Categories(), 2)
}
