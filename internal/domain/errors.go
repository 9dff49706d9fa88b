package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicateID       = errors.New("identificador duplicado")
	ErrDanglingReference = errors.New("referencia sin resolver")
)
