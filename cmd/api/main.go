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
	appanalytics "github.com/jfcastano/optica-distri/internal/application/analytics"
	"github.com/jfcastano/optica-distri/internal/application/auth"
	"github.com/jfcastano/optica-distri/internal/application/billing"
	"github.com/jfcastano/optica-distri/internal/application/inventory"
	"github.com/jfcastano/optica-distri/internal/application/sales"
	"github.com/jfcastano/optica-distri/internal/application/usecase"
	infrapdf "github.com/jfcastano/optica-distri/internal/infrastructure/pdf"
	"github.com/jfcastano/optica-distri/internal/infrastructure/postgres"
	httpRouter "github.com/jfcastano/optica-distri/internal/interfaces/http"
	"github.com/jfcastano/optica-distri/pkg/config"
	"github.com/jfcastano/optica-distri/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	shopRepo := postgres.NewShopRepository(pool)
	frameRepo := postgres.NewFrameRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	invRepo := postgres.NewShopInventoryRepository(pool)
	txJournalRepo := postgres.NewInventoryTransactionRepository(pool)
	summaryRepo := postgres.NewFinancialSummaryRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	shopUC := usecase.NewShopUseCase(shopRepo)
	frameUC := usecase.NewFrameUseCase(frameRepo)
	stockInUC := inventory.NewStockInUseCase(txRunner, shopRepo, frameRepo, nil)
	invQueries := inventory.NewQueryUseCase(invRepo, txJournalRepo)
	recordSaleUC := sales.NewRecordSaleUseCase(txRunner, shopRepo, frameRepo, nil)
	billingUC := billing.NewSummaryUseCase(shopRepo, summaryRepo, analyticsRepo, nil)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	billingPDFUC := billing.NewPDFUseCase(billingUC, pdfGenerator)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, nil)
	authUC := auth.NewAuthUseCase(userRepo, shopRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Optica Distri API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ShopUC:      shopUC,
		FrameUC:     frameUC,
		StockInUC:   stockInUC,
		InvQueries:  invQueries,
		RecordSale:  recordSaleUC,
		BillingUC:   billingUC,
		BillingPDF:  billingPDFUC,
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
