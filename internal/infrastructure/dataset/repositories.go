package dataset

import (
	"context"
	"slices"

	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
	"github.com/jhoicas/catalogo-productos/internal/domain/repository"
)

var (
	_ repository.UserRepository     = (*UserRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
)

// UserRepo implementación del puerto UserRepository sobre las tablas cargadas.
type UserRepo struct {
	tables *Tables
}

// NewUserRepository construye el adaptador de lectura para usuarios.
func NewUserRepository(t *Tables) *UserRepo {
	return &UserRepo{tables: t}
}

// List devuelve una copia de la tabla de usuarios.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.tables.Users), nil
}

// CategoryRepo implementación del puerto CategoryRepository.
type CategoryRepo struct {
	tables *Tables
}

// NewCategoryRepository construye el adaptador de lectura para categorías.
func NewCategoryRepository(t *Tables) *CategoryRepo {
	return &CategoryRepo{tables: t}
}

// List devuelve una copia de la tabla de categorías.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.tables.Categories), nil
}

// ProductRepo implementación del puerto ProductRepository.
type ProductRepo struct {
	tables *Tables
}

// NewProductRepository construye el adaptador de lectura para productos.
func NewProductRepository(t *Tables) *ProductRepo {
	return &ProductRepo{tables: t}
}

// List devuelve una copia de la tabla de productos, en orden de carga.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.tables.Products), nil
}
