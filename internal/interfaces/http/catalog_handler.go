package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/jhoicas/catalogo-productos/internal/application/dto"
	"github.com/jhoicas/catalogo-productos/internal/application/usecase"
)

// CatalogHandler maneja la API JSON del catálogo.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar catálogo filtrado
// @Tags         catalog
// @Produce      json
// @Param        user      query  string    false  "Nombre exacto del usuario (All = sin filtro)"
// @Param        category  query  []string  false  "Títulos de categoría (repetible)"  collectionFormat(multi)
// @Param        query     query  string    false  "Texto contenido en el nombre del producto"
// @Param        sort      query  string    false  "Columna de orden"  Enums(id, product, category, user)
// @Param        order     query  string    false  "Dirección de orden"  Enums(none, asc, desc)
// @Success      200  {object}  dto.CatalogListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	state, err := ParseViewState(string(c.Request().URI().QueryString()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SORT", Message: err.Error()})
	}
	return c.JSON(h.uc.List(state.Filters, state.Sort))
}

// Users godoc
// @Summary      Listar usuarios
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *CatalogHandler) Users(c *fiber.Ctx) error {
	return c.JSON(h.uc.UserList())
}

// Categories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.CategoryList())
}

// OpenAPI devuelve el documento swagger registrado por el paquete docs.
func OpenAPI(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documentación no registrada"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}
