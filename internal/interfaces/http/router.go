package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jortizdev/stockvista-api/internal/application/auth"
	"github.com/jortizdev/stockvista-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	SaleUC    *usecase.SaleUseCase
	AlertUC   *usecase.AlertUseCase
	InsightUC *usecase.InsightUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// KPIs del dashboard (público, como /health). Registrado antes del grupo
	// protegido para que el middleware no lo intercepte.
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products/stats", productHandler.Stats)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido). Las rutas fijas van antes de /:id para que Fiber
	// no las capture como parámetro.
	products := protected.Group("/products")
	products.Post("/add", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/dead-stock", productHandler.DeadStock)
	products.Get("/dead-stock/pdf", productHandler.DeadStockPDF)
	products.Get("/:id", productHandler.GetByID)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Record)
	sales.Get("/summary", saleHandler.Summary)

	// Alerts (protegido)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.List)
	alerts.Put("/:id/acknowledge", alertHandler.Acknowledge)

	// AI insights (protegido)
	ai := protected.Group("/ai")
	insightHandler := NewInsightHandler(deps.InsightUC)
	ai.Post("/insights", insightHandler.Generate)
}
