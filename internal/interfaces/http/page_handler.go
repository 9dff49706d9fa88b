package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-productos/internal/application/usecase"
	"github.com/jhoicas/catalogo-productos/internal/domain"
)

// PageHandler renderiza la página HTML del catálogo.
type PageHandler struct {
	uc    *usecase.CatalogUseCase
	title string
}

// NewPageHandler construye el handler.
func NewPageHandler(uc *usecase.CatalogUseCase, title string) *PageHandler {
	return &PageHandler{uc: uc, title: title}
}

// Index renderiza filtros y tabla para el estado que llega en la query string.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	state, err := ParseViewState(string(c.Request().URI().QueryString()))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	visible := h.uc.Visible(state.Filters, state.Sort)
	view := BuildPage(h.title, c.Path(), state, h.uc.Users(), h.uc.Categories(), visible)
	return c.Render("index", view)
}
