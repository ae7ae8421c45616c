package http

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-analytics/internal/application/analytics"
	"github.com/jhoicas/sales-analytics/internal/application/dto"
)

// AnalyticsHandler maneja los endpoints del reporte de vendedores.
type AnalyticsHandler struct {
	uc       *analytics.SellerReportUseCase
	validate *validator.Validate
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.SellerReportUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, validate: validator.New()}
}

// AnalyzeSellers godoc
// @Summary      Analiza un dataset de ventas enviado en el cuerpo
// @Description  Calcula ingresos, ganancia, ventas, bono y top 10 de productos por vendedor, ordenados por ganancia descendente.
// @Tags         analytics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AnalyzeSalesRequest  true  "Vendedores, productos y registros de compra"
// @Success      200   {object}  dto.SellerReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/analytics/sellers [post]
func (h *AnalyticsHandler) AnalyzeSellers(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		_, err := h.uc.Analyze(c.UserContext(), nil)
		return writeError(c, err)
	}

	var req dto.AnalyzeSalesRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyError(c, err)
	}

	report, err := h.uc.Analyze(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// GetSellerReport godoc
// @Summary      Reporte de vendedores sobre la fuente configurada
// @Description  Ejecuta el análisis sobre el dataset del servidor (archivo JSON o PostgreSQL).
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        revenue_strategy  query  string  false  "Estrategia de ingresos (default simple)"
// @Param        bonus_strategy    query  string  false  "Estrategia de bono (default by_profit)"
// @Success      200  {object}  dto.SellerReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/analytics/sellers [get]
func (h *AnalyticsHandler) GetSellerReport(c *fiber.Ctx) error {
	var req dto.SellerReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	report, err := h.uc.BuildReport(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// ExportSellerReport godoc
// @Summary      Exporta el reporte de vendedores
// @Description  Descarga el reporte de la fuente configurada como json, xlsx, pdf o xml.
// @Tags         analytics
// @Security     Bearer
// @Produce      octet-stream
// @Param        format            query  string  true   "json | xlsx | pdf | xml"
// @Param        revenue_strategy  query  string  false  "Estrategia de ingresos"
// @Param        bonus_strategy    query  string  false  "Estrategia de bono"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/analytics/sellers/export [get]
func (h *AnalyticsHandler) ExportSellerReport(c *fiber.Ctx) error {
	var req dto.ExportReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "format debe ser json, xlsx, pdf o xml",
		})
	}

	content, filename, contentType, err := h.uc.Export(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(fiber.StatusOK).Send(content)
}

// ListStrategies godoc
// @Summary      Estrategias y formatos disponibles
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StrategiesDTO
// @Router       /api/analytics/strategies [get]
func (h *AnalyticsHandler) ListStrategies(c *fiber.Ctx) error {
	return c.JSON(h.uc.Strategies())
}
