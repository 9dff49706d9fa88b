package ports

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-productos/internal/domain/catalog"
	"github.com/jhoicas/catalogo-productos/internal/domain/entity"
)

// CatalogReport datos que necesita el generador para el PDF del catálogo filtrado.
type CatalogReport struct {
	Title       string
	Filters     catalog.State
	Sort        catalog.SortState
	Entries     []entity.CatalogEntry
	GeneratedAt time.Time
}

// CatalogPDFGenerator puerto de salida para generar el PDF del catálogo.
// Lo implementa infrastructure/pdf (Maroto).
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, report CatalogReport) ([]byte, error)
}
