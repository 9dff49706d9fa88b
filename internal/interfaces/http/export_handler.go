package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-productos/internal/application/dto"
	"github.com/jhoicas/catalogo-productos/internal/application/usecase"
)

// ExportHandler descarga el catálogo filtrado en PDF.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Download godoc
// @Summary      Descargar catálogo filtrado en PDF
// @Tags         catalog
// @Produce      application/pdf
// @Param        user      query  string    false  "Nombre exacto del usuario"
// @Param        category  query  []string  false  "Títulos de categoría (repetible)"  collectionFormat(multi)
// @Param        query     query  string    false  "Texto de búsqueda"
// @Param        sort      query  string    false  "Columna de orden"
// @Param        order     query  string    false  "Dirección de orden"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /catalog.pdf [get]
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	state, err := ParseViewState(string(c.Request().URI().QueryString()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SORT", Message: err.Error()})
	}
	pdf, filename, err := h.uc.ExportPDF(c.UserContext(), state.Filters, state.Sort)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
