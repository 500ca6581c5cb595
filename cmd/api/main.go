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

	"github.com/jortizdev/stockvista-api/internal/application/auth"
	"github.com/jortizdev/stockvista-api/internal/application/usecase"
	infraai "github.com/jortizdev/stockvista-api/internal/infrastructure/ai"
	infrapdf "github.com/jortizdev/stockvista-api/internal/infrastructure/pdf"
	"github.com/jortizdev/stockvista-api/internal/infrastructure/postgres"
	"github.com/jortizdev/stockvista-api/internal/infrastructure/redisstore"
	httpRouter "github.com/jortizdev/stockvista-api/internal/interfaces/http"
	"github.com/jortizdev/stockvista-api/internal/jobs"
	"github.com/jortizdev/stockvista-api/pkg/config"
	"github.com/jortizdev/stockvista-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	redisClient, err := redisstore.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	ackStore := redisstore.NewAckStore(redisClient, cfg.Redis.AckTTL)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	groqSvc := infraai.NewGroqService(cfg.AI.GroqAPIKey, cfg.AI.GroqModel)

	productUC := usecase.NewProductUseCase(productRepo, pdfGenerator, cfg.Alerts.WindowDays)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo, productRepo, cfg.Alerts.TopN)
	alertUC := usecase.NewAlertUseCase(productRepo, ackStore, cfg.Alerts.WindowDays)
	insightUC := usecase.NewInsightUseCase(productUC, groqSvc, cfg.Alerts.WindowDays)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la llamada al LLM puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockVista API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC: productUC,
		SaleUC:    saleUC,
		AlertUC:   alertUC,
		InsightUC: insightUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	sweep, err := jobs.NewStockSweep(alertUC, log, cfg.Alerts.SweepInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("crear barrido de alertas")
	}
	if err := sweep.Start(); err != nil {
		log.Fatal().Err(err).Msg("iniciar barrido de alertas")
	}

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

	if err := sweep.Stop(); err != nil {
		log.Error().Err(err).Msg("apagado del barrido de alertas")
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
