package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/catalogo-productos/internal/application/ports"
	"github.com/jhoicas/catalogo-productos/internal/domain/catalog"
)

// ExportFilename nombre del archivo descargado.
const ExportFilename = "catalog.pdf"

// ExportUseCase genera el PDF de las entradas visibles con los filtros dados.
type ExportUseCase struct {
	catalog   *CatalogUseCase
	generator ports.CatalogPDFGenerator
	title     string
	now       func() time.Time
}

// NewExportUseCase construye el caso de uso. title encabeza el documento.
func NewExportUseCase(catalogUC *CatalogUseCase, generator ports.CatalogPDFGenerator, title string) *ExportUseCase {
	return &ExportUseCase{catalog: catalogUC, generator: generator, title: title, now: time.Now}
}

// ExportPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ExportUseCase) ExportPDF(ctx context.Context, state catalog.State, sort catalog.SortState) ([]byte, string, error) {
	report := ports.CatalogReport{
		Title:       uc.title,
		Filters:     state,
		Sort:        sort,
		Entries:     uc.catalog.Visible(state, sort),
		GeneratedAt: uc.now(),
	}
	pdf, err := uc.generator.GenerateCatalogPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar pdf: %w", err)
	}
	return pdf, ExportFilename, nil
}
