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

	"github.com/klium/quotation-api/internal/application/auth"
	"github.com/klium/quotation-api/internal/application/catalog"
	appquotation "github.com/klium/quotation-api/internal/application/quotation"
	"github.com/klium/quotation-api/internal/domain/pricing"
	infraexcel "github.com/klium/quotation-api/internal/infrastructure/excel"
	"github.com/klium/quotation-api/internal/infrastructure/jsonstore"
	"github.com/klium/quotation-api/internal/infrastructure/memory"
	infrapdf "github.com/klium/quotation-api/internal/infrastructure/pdf"
	"github.com/klium/quotation-api/internal/infrastructure/postgres"
	httpRouter "github.com/klium/quotation-api/internal/interfaces/http"
	"github.com/klium/quotation-api/pkg/config"
	"github.com/klium/quotation-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.Catalog)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al catálogo PostgreSQL")
	}
	defer pool.Close()

	catalogRepo := postgres.NewCatalogRepository(pool)

	store, err := jsonstore.NewQuotationStore(cfg.Quotation.StorePath)
	if err != nil {
		log.Fatal().Err(err).Msg("store de ofertas")
	}

	userDir, err := memory.NewUserDirectory(cfg.Auth.Users)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de usuarios")
	}

	engine := pricing.NewEngine(cfg.Quotation.ServiceFeeUnit)
	lookupUC := catalog.NewLookupUseCase(catalogRepo)
	quotationUC := appquotation.NewUseCase(catalogRepo, store, engine, cfg.Quotation.MaxItems)
	exportUC := appquotation.NewExportUseCase(
		quotationUC,
		infraexcel.NewQuotationExcelGenerator(),
		infrapdf.NewMarotoPDFGenerator(),
		cfg.Quotation.CompanyName,
	)
	authUC := auth.NewAuthUseCase(userDir, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestIDMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Quotation API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		LookupUC:    lookupUC,
		QuotationUC: quotationUC,
		ExportUC:    exportUC,
		JWTSecret:   cfg.JWT.Secret,
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
