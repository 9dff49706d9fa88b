package repository

import (
	"context"

	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// ProductRepository define el puerto de lectura para Product (DIP).
// List devuelve los productos en el orden de la tabla.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
}
