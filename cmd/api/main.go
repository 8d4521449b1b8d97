package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/facturapro/facturapro-api/internal/application/auth"
	"github.com/facturapro/facturapro-api/internal/application/billing"
	"github.com/facturapro/facturapro-api/internal/application/usecase"
	"github.com/facturapro/facturapro-api/internal/infrastructure/export"
	"github.com/facturapro/facturapro-api/internal/infrastructure/localstore"
	infrapdf "github.com/facturapro/facturapro-api/internal/infrastructure/pdf"
	httpRouter "github.com/facturapro/facturapro-api/internal/interfaces/http"
	"github.com/facturapro/facturapro-api/pkg/config"
	"github.com/facturapro/facturapro-api/pkg/idgen"
	"github.com/facturapro/facturapro-api/pkg/logger"
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
		Str("data_dir", cfg.Storage.DataDir).
		Msg("iniciando aplicación")

	store, err := localstore.Open(cfg.Storage.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}

	customerRepo := localstore.NewCustomerRepository(store)
	productRepo := localstore.NewProductRepository(store)
	invoiceRepo := localstore.NewInvoiceRepository(store)
	settingsRepo := localstore.NewSettingsRepository(store)
	userRepo := localstore.NewUserRepository(store)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	xmlBuilder := export.NewXMLBuilder()

	invoiceUC := billing.NewInvoiceUseCase(
		invoiceRepo, customerRepo, productRepo, settingsRepo,
		pdfGenerator, xmlBuilder,
		idgen.NewUUID(), cfg.Billing.NumberPrefix, nil,
	)
	customerUC := billing.NewCustomerUseCase(customerRepo, idgen.NewUUID())
	productUC := usecase.NewProductUseCase(productRepo, idgen.NewUUID())
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := usecase.NewDashboardUseCase(invoiceRepo, customerRepo, productRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		InvoiceUC:   invoiceUC,
		ProductUC:   productUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
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
