package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// dateLayout formato de las fechas de lote en el API.
const dateLayout = "2006-01-02"

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	uc         *inventory.ProductUseCase
	uploadsDir string
	uploadsURL string
}

// NewProductHandler construye el handler. uploadsDir/uploadsURL configuran
// el almacenamiento local de imágenes.
func NewProductHandler(uc *inventory.ProductUseCase, uploadsDir, uploadsURL string) *ProductHandler {
	return &ProductHandler{uc: uc, uploadsDir: uploadsDir, uploadsURL: uploadsURL}
}

// Create godoc
// @Summary      Crear producto con lote y stock inicial
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	var imageURL *string

	if isMultipart(c) {
		parsed, err := h.parseCreateForm(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
		}
		req = *parsed
		imageURL, err = h.saveImage(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: err.Error()})
		}
	} else if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	if req.Name == "" || len(req.Depots) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y depositos son requeridos"})
	}

	elaborated, err := parseDate(req.ElaborationDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechaelaboracion inválida (se espera YYYY-MM-DD)"})
	}
	expires, err := parseDate(req.ExpiryDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechaVencimiento inválida (se espera YYYY-MM-DD)"})
	}

	input := inventory.CreateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		CategoryID:   req.CategoryID,
		ImageURL:     imageURL,
		ElaboratedAt: elaborated,
		ExpiresAt:    expires,
	}
	for _, d := range req.Depots {
		input.Depots = append(input.Depots, inventory.DepotQuantity{DepotID: d.DepotID, Quantity: d.Quantity})
	}

	product, err := h.uc.CreateProduct(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// Update godoc
// @Summary      Actualizar producto, ajustar stock y desactivar depósitos
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}

	var req dto.UpdateProductRequest
	var imageURL *string
	if isMultipart(c) {
		parsed, err := h.parseUpdateForm(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
		}
		req = *parsed
		imageURL, err = h.saveImage(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE", Message: err.Error()})
		}
	} else if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := inventory.UpdateProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		CategoryID:     req.CategoryID,
		ImageURL:       imageURL,
		RemoveDepotIDs: req.RemoveDepots,
	}
	for _, d := range req.Depots {
		input.Adjustments = append(input.Adjustments, inventory.DepotQuantity{DepotID: d.DepotID, Quantity: d.Quantity})
	}

	product, err := h.uc.UpdateProduct(c.Context(), int64(id), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// FindAll godoc
// @Summary      Listar productos activos agrupados por depósito
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  repository.DepotStockView
// @Router       /api/productos [get]
func (h *ProductHandler) FindAll(c *fiber.Ctx) error {
	views, err := h.uc.FindAll(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(views)
}

// FindOne godoc
// @Summary      Detalle de un producto con stock por depósito
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  repository.ProductDetailView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) FindOne(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	detail, err := h.uc.FindOne(c.Context(), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(detail)
}

// Remove godoc
// @Summary      Archivar producto (soft delete)
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Remove(c.Context(), int64(id)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("producto %d archivado", id)})
}

// Restore godoc
// @Summary      Restaurar producto archivado
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/restore [patch]
func (h *ProductHandler) Restore(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Restore(c.Context(), int64(id)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("producto %d restaurado", id)})
}

// ListMovements godoc
// @Summary      Libro de movimientos de un producto
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id      path   int  true   "ID del producto"
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.MovementResponse
// @Router       /api/productos/{id}/movimientos [get]
func (h *ProductHandler) ListMovements(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	movements, err := h.uc.ListMovements(int64(id), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			BatchID:       m.BatchID,
			DepotID:       m.DepotID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			CreatedAt:     m.CreatedAt,
		})
	}
	return c.JSON(out)
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

// parseCreateForm lee los campos del multipart. depositos llega como string
// JSON (el cliente original lo envía así junto con la imagen).
func (h *ProductHandler) parseCreateForm(c *fiber.Ctx) (*dto.CreateProductRequest, error) {
	req := &dto.CreateProductRequest{
		Name:            c.FormValue("nombre"),
		Description:     c.FormValue("descripcion"),
		ElaborationDate: c.FormValue("fechaelaboracion"),
		ExpiryDate:      c.FormValue("fechaVencimiento"),
	}
	if v := c.FormValue("precio"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("precio inválido: %q", v)
		}
		req.Price = price
	}
	if v := c.FormValue("categoriaId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("categoriaId inválido: %q", v)
		}
		req.CategoryID = id
	}
	if v := c.FormValue("depositos"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.Depots); err != nil {
			return nil, fmt.Errorf("depositos inválido: %v", err)
		}
	}
	return req, nil
}

func (h *ProductHandler) parseUpdateForm(c *fiber.Ctx) (*dto.UpdateProductRequest, error) {
	req := &dto.UpdateProductRequest{}
	if v := c.FormValue("nombre"); v != "" {
		req.Name = &v
	}
	if v := c.FormValue("descripcion"); v != "" {
		req.Description = &v
	}
	if v := c.FormValue("precio"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("precio inválido: %q", v)
		}
		req.Price = &price
	}
	if v := c.FormValue("categoriaId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("categoriaId inválido: %q", v)
		}
		req.CategoryID = &id
	}
	if v := c.FormValue("depositos"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.Depots); err != nil {
			return nil, fmt.Errorf("depositos inválido: %v", err)
		}
	}
	if v := c.FormValue("removeDepositos"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.RemoveDepots); err != nil {
			return nil, fmt.Errorf("removeDepositos inválido: %v", err)
		}
	}
	return req, nil
}

// saveImage guarda la imagen adjunta (campo "imagen") en el directorio de
// uploads con nombre único y devuelve su ruta pública. nil si no hay imagen.
func (h *ProductHandler) saveImage(c *fiber.Ctx) (*string, error) {
	file, err := c.FormFile("imagen")
	if err != nil {
		return nil, nil // sin imagen
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
	default:
		return nil, fmt.Errorf("extensión de imagen no soportada: %q", ext)
	}
	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(h.uploadsDir, name)); err != nil {
		return nil, fmt.Errorf("guardando imagen: %w", err)
	}
	url := strings.TrimSuffix(h.uploadsURL, "/") + "/" + name
	return &url, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	return time.Parse(dateLayout, s)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Active:      p.Active,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDepotNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "DEPOT_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidReference):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: err.Error()})
	default:
		// El detalle queda solo en el log del servidor; al cliente se le
		// responde opaco para no filtrar internos.
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
