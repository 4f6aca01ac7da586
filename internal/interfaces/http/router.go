package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfcastano/optica-distri/internal/application/analytics"
	"github.com/jfcastano/optica-distri/internal/application/auth"
	"github.com/jfcastano/optica-distri/internal/application/billing"
	"github.com/jfcastano/optica-distri/internal/application/inventory"
	"github.com/jfcastano/optica-distri/internal/application/sales"
	"github.com/jfcastano/optica-distri/internal/application/usecase"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ShopUC      *usecase.ShopUseCase
	FrameUC     *usecase.FrameUseCase
	StockInUC   *inventory.StockInUseCase
	InvQueries  *inventory.QueryUseCase
	RecordSale  *sales.RecordSaleUseCase
	BillingUC   *billing.SummaryUseCase
	BillingPDF  *billing.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	distributorOnly := RequireRole(entity.RoleDistributor)

	// Shops (protegido; mutaciones solo distribuidor, reforzado en el caso de uso)
	shops := protected.Group("/shops")
	shopHandler := NewShopHandler(deps.ShopUC)
	shops.Post("/", distributorOnly, shopHandler.Create)
	shops.Get("/", shopHandler.List)
	shops.Get("/:id", shopHandler.GetByID)
	shops.Put("/:id", distributorOnly, shopHandler.Update)
	shops.Delete("/:id", distributorOnly, shopHandler.Delete)

	// Frames (protegido; catálogo global, mutaciones solo distribuidor)
	frames := protected.Group("/frames")
	frameHandler := NewFrameHandler(deps.FrameUC)
	frames.Post("/", distributorOnly, frameHandler.Create)
	frames.Get("/", frameHandler.List)
	frames.Get("/:id", frameHandler.GetByID)
	frames.Put("/:id", distributorOnly, frameHandler.Update)

	// Inventory (protegido; el ingreso de mercancía lo hace solo el distribuidor)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockInUC, deps.InvQueries)
	invGroup.Post("/stock-in", distributorOnly, inventoryHandler.StockIn)
	invGroup.Post("/distribute", distributorOnly, inventoryHandler.Distribute)
	invGroup.Post("/upload-csv", distributorOnly, inventoryHandler.UploadCSV)
	invGroup.Get("/transactions", inventoryHandler.ListTransactions)
	invGroup.Get("/", inventoryHandler.ListInventory)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.RecordSale)
	salesGroup.Post("/", salesHandler.RecordSale)

	// Billing (protegido)
	billingGroup := protected.Group("/billing")
	billingHandler := NewBillingHandler(deps.BillingUC, deps.BillingPDF)
	billingGroup.Get("/:shop_id/summary", billingHandler.GetSummary)
	billingGroup.Get("/:shop_id/summaries", billingHandler.ListSummaries)
	billingGroup.Get("/:shop_id/report", billingHandler.GetReport)
	billingGroup.Get("/:shop_id/report/pdf", billingHandler.GetReportPDF)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/sales-trends", dashboardHandler.SalesTrends)
	dashboard.Get("/top-frames", dashboardHandler.TopFrames)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
	dashboard.Get("/shop-summary", dashboardHandler.ShopSummary)
	dashboard.Get("/revenue-summary", distributorOnly, dashboardHandler.RevenueSummary)
}
