package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/catalogo-productos/docs"
	"github.com/jhoicas/catalogo-productos/internal/application/dto"
	"github.com/jhoicas/catalogo-productos/internal/application/usecase"
	"github.com/jhoicas/catalogo-productos/internal/infrastructure/dataset"
	infrapdf "github.com/jhoicas/catalogo-productos/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/catalogo-productos/internal/interfaces/http"
	"github.com/jhoicas/catalogo-productos/pkg/config"
	"github.com/jhoicas/catalogo-productos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	tables, err := dataset.Load(cfg.Catalog.DataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Catalog.DataPath).Msg("cargar dataset")
	}

	// Una referencia rota es un error del dataset: no se arranca con un catálogo parcial.
	catalogUC, err := usecase.NewCatalogUseCase(ctx,
		dataset.NewUserRepository(tables),
		dataset.NewCategoryRepository(tables),
		dataset.NewProductRepository(tables),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("construir catálogo")
	}
	log.Info().Int("products", catalogUC.Size()).Msg("catálogo construido")

	exportUC := usecase.NewExportUseCase(catalogUC, infrapdf.NewMarotoPDFGenerator(), cfg.Catalog.Title)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        httpRouter.NewViewEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		if _, err := os.Stat(cfg.Docs.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Docs.FilePath,
				Path:     "docs",
				Title:    cfg.Catalog.Title + " API",
			}))
		} else {
			log.Warn().Str("path", cfg.Docs.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		ExportUC:  exportUC,
		Logger:    log,
		Title:     cfg.Catalog.Title,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
