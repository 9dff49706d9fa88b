// Package catalog contiene la lógica de dominio del catálogo: el join de las tablas de
// consulta (Build), el filtro de la vista (Filter) y el ordenamiento por columna (Sort).
// Todo es puro: ninguna función modifica sus argumentos.
package catalog

import (
	"fmt"

	"github.com/jhoicas/catalogo-productos/internal/domain"
	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// Build une cada producto con su categoría y con el usuario dueño de esa categoría.
// Conserva el orden de products. Falla con domain.ErrDanglingReference si alguna referencia
// no resuelve y con domain.ErrDuplicateID si un id se repite dentro de una tabla.
func Build(users []entity.User, categories []entity.Category, products []entity.Product) ([]entity.CatalogEntry, error) {
	usersByID, err := indexByID(users, "usuario", func(u entity.User) int { return u.ID })
	if err != nil {
		return nil, err
	}
	categoriesByID, err := indexByID(categories, "categoría", func(c entity.Category) int { return c.ID })
	if err != nil {
		return nil, err
	}
	if _, err := indexByID(products, "producto", func(p entity.Product) int { return p.ID }); err != nil {
		return nil, err
	}

	// Toda categoría debe tener dueño, aunque no tenga productos.
	for _, c := range categories {
		if _, ok := usersByID[c.OwnerID]; !ok {
			return nil, fmt.Errorf("categoría %d: usuario %d: %w", c.ID, c.OwnerID, domain.ErrDanglingReference)
		}
	}

	entries := make([]entity.CatalogEntry, 0, len(products))
	for _, p := range products {
		category, ok := categoriesByID[p.CategoryID]
		if !ok {
			return nil, fmt.Errorf("producto %d: categoría %d: %w", p.ID, p.CategoryID, domain.ErrDanglingReference)
		}
		entries = append(entries, entity.CatalogEntry{
			Product:  p,
			Category: category,
			User:     usersByID[category.OwnerID],
		})
	}
	return entries, nil
}

func indexByID[T any](items []T, kind string, id func(T) int) (map[int]T, error) {
	index := make(map[int]T, len(items))
	for _, item := range items {
		key := id(item)
		if _, dup := index[key]; dup {
			return nil, fmt.Errorf("%s %d: %w", kind, key, domain.ErrDuplicateID)
		}
		index[key] = item
	}
	return index, nil
}
