package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/pdf"
)

// ReportHandler genera reportes PDF del stock (protegido).
type ReportHandler struct {
	uc  *inventory.ProductUseCase
	gen *pdf.MarotoStockReportGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *inventory.ProductUseCase, gen *pdf.MarotoStockReportGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, gen: gen}
}

// StockPDF godoc
// @Summary      Reporte PDF del stock activo por depósito
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reportes/stock [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	views, err := h.uc.FindAll(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.gen.GenerateStockReport(views)
	if err != nil {
		return writeError(c, err)
	}
	filename := "stock-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
