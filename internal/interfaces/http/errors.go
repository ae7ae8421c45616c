package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/sales-analytics/internal/application/dto"
	"github.com/jhoicas/sales-analytics/internal/domain"
)

// errorCodes traduce los errores de validación del análisis a códigos estables.
var errorCodes = []struct {
	err  error
	code string
}{
	{domain.ErrMissingData, "MISSING_DATA"},
	{domain.ErrInvalidSellers, "INVALID_SELLERS"},
	{domain.ErrInvalidProducts, "INVALID_PRODUCTS"},
	{domain.ErrInvalidPurchaseRecords, "INVALID_PURCHASE_RECORDS"},
	{domain.ErrInvalidOptions, "INVALID_OPTIONS"},
	{domain.ErrInvalidRevenueStrategy, "INVALID_REVENUE_STRATEGY"},
	{domain.ErrInvalidBonusStrategy, "INVALID_BONUS_STRATEGY"},
}

// writeError responde con el status y código que corresponden al error.
func writeError(c *fiber.Ctx, err error) error {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: ec.code, Message: ec.err.Error()})
		}
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dataset de ventas no disponible"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_ERROR", Message: "error interno"})
	}
}

// collectionErrors: una colección del dataset que no es un arreglo se reporta
// con el código de esa colección.
var collectionErrors = map[string]error{
	"sellers":          domain.ErrInvalidSellers,
	"products":         domain.ErrInvalidProducts,
	"purchase_records": domain.ErrInvalidPurchaseRecords,
}

// writeBodyError responde a un cuerpo que no se pudo decodificar.
func writeBodyError(c *fiber.Ctx, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if collErr, ok := collectionErrors[typeErr.Field]; ok {
			return writeError(c, fmt.Errorf("%s: %w", typeErr.Field, collErr))
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Message: "cuerpo JSON inválido",
	})
}
