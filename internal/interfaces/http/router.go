package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *inventory.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	DepotUC    *usecase.DepotUseCase
	ReportGen  *pdf.MarotoStockReportGenerator
	JWTSecret  string
	UploadsDir string
	UploadsURL string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Imágenes de productos (público)
	app.Static(deps.UploadsURL, deps.UploadsDir)

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC, deps.UploadsDir, deps.UploadsURL)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.FindAll)
	products.Get("/:id", productHandler.FindOne)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Remove)
	products.Patch("/:id/restore", productHandler.Restore)
	products.Get("/:id/movimientos", productHandler.ListMovements)

	// Categorías
	categories := protected.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Patch("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Depósitos
	depots := protected.Group("/depositos")
	depotHandler := NewDepotHandler(deps.DepotUC)
	depots.Post("/", depotHandler.Create)
	depots.Get("/", depotHandler.List)
	depots.Get("/:id", depotHandler.GetByID)
	depots.Patch("/:id", depotHandler.Update)
	depots.Delete("/:id", depotHandler.Deactivate)

	// Reportes
	reports := protected.Group("/reportes")
	reportHandler := NewReportHandler(deps.ProductUC, deps.ReportGen)
	reports.Get("/stock", reportHandler.StockPDF)
}
