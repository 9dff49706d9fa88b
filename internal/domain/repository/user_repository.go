package repository

import (
	"context"

	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// UserRepository define el puerto de lectura para User (DIP).
// Las tablas son estáticas: no hay operaciones de escritura.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
}
