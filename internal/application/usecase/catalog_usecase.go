package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/catalogo-productos/internal/application/dto"
	"github.com/jhoicas/catalogo-productos/internal/domain/catalog"
	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
	"github.com/jhoicas/catalogo-productos/internal/domain/repository"
)

// CatalogUseCase mantiene el catálogo ya unido (se construye una sola vez) y resuelve
// los listados filtrados. Es de solo lectura después de construido: seguro para uso concurrente.
type CatalogUseCase struct {
	users      []entity.User
	categories []entity.Category
	entries    []entity.CatalogEntry
}

// NewCatalogUseCase lee las tres tablas y construye el catálogo. Un error de integridad
// referencial se devuelve tal cual (envuelve domain.ErrDanglingReference o domain.ErrDuplicateID).
func NewCatalogUseCase(
	ctx context.Context,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) (*CatalogUseCase, error) {
	users, err := userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: listar usuarios: %w", err)
	}
	categories, err := categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: listar categorías: %w", err)
	}
	products, err := productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: listar productos: %w", err)
	}

	entries, err := catalog.Build(users, categories, products)
	if err != nil {
		return nil, fmt.Errorf("catalog: construir: %w", err)
	}
	return &CatalogUseCase{users: users, categories: categories, entries: entries}, nil
}

// Size cantidad total de entradas del catálogo.
func (uc *CatalogUseCase) Size() int {
	return len(uc.entries)
}

// Users tabla de usuarios en el orden del dataset (copia).
func (uc *CatalogUseCase) Users() []entity.User {
	return slices.Clone(uc.users)
}

// Categories tabla de categorías en el orden del dataset (copia).
func (uc *CatalogUseCase) Categories() []entity.Category {
	return slices.Clone(uc.categories)
}

// Visible aplica filtros y luego el ordenamiento. Nunca modifica el catálogo.
func (uc *CatalogUseCase) Visible(state catalog.State, sort catalog.SortState) []entity.CatalogEntry {
	return catalog.Sort(catalog.Filter(uc.entries, state), sort)
}

// List devuelve el listado filtrado para la API JSON.
func (uc *CatalogUseCase) List(state catalog.State, sort catalog.SortState) *dto.CatalogListResponse {
	visible := uc.Visible(state, sort)
	items := make([]dto.CatalogEntryResponse, 0, len(visible))
	for _, e := range visible {
		items = append(items, toCatalogEntryResponse(e))
	}

	categories := state.Categories
	if categories == nil {
		categories = []string{}
	}
	user := state.User
	if state.IsAllUsers() {
		user = catalog.AllUsers
	}
	sortResp := dto.SortResponse{Order: string(catalog.OrderNone)}
	if sort.Active() {
		sortResp = dto.SortResponse{Column: string(sort.Column), Order: string(sort.Order)}
	}

	return &dto.CatalogListResponse{
		Items:   items,
		Total:   len(items),
		Filters: dto.FilterResponse{User: user, Categories: categories, Query: state.Query},
		Sort:    sortResp,
	}
}

// UserList tabla de usuarios para la API JSON.
func (uc *CatalogUseCase) UserList() *dto.UserListResponse {
	items := make([]dto.UserResponse, 0, len(uc.users))
	for _, u := range uc.users {
		items = append(items, toUserResponse(u))
	}
	return &dto.UserListResponse{Items: items}
}

// CategoryList tabla de categorías para la API JSON.
func (uc *CatalogUseCase) CategoryList() *dto.CategoryListResponse {
	items := make([]dto.CategoryResponse, 0, len(uc.categories))
	for _, c := range uc.categories {
		items = append(items, toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}
}

func toCatalogEntryResponse(e entity.CatalogEntry) dto.CatalogEntryResponse {
	return dto.CatalogEntryResponse{
		ID:       e.ID,
		Name:     e.Name,
		Category: toCategoryResponse(e.Category),
		User:     toUserResponse(e.User),
	}
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Sex: string(u.Sex)}
}

func toCategoryResponse(c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Title: c.Title, Icon: c.Icon, OwnerID: c.OwnerID}
}
