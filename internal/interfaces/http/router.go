package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-productos/internal/application/usecase"
	"github.com/jhoicas/catalogo-productos/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	ExportUC  *usecase.ExportUseCase
	Logger    *logger.Logger
	Title     string
}

// Router registra middlewares y rutas. La app debe crearse con Views: NewViewEngine().
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}

	// Página HTML
	pageHandler := NewPageHandler(deps.CatalogUC, deps.Title)
	app.Get("/", pageHandler.Index)

	// PDF
	exportHandler := NewExportHandler(deps.ExportUC)
	app.Get("/catalog.pdf", exportHandler.Download)

	// API JSON
	api := app.Group("/api")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalog", catalogHandler.List)
	api.Get("/users", catalogHandler.Users)
	api.Get("/categories", catalogHandler.Categories)
	api.Get("/openapi.json", OpenAPI)
}
