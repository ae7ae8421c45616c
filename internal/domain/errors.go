package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)

// Errores de validación del análisis de ventas. Se detectan antes de agregar;
// ningún error se produce a mitad del cálculo.
var (
	ErrMissingData            = errors.New("datos no proporcionados")
	ErrInvalidSellers         = errors.New("datos de vendedores inválidos o vacíos")
	ErrInvalidProducts        = errors.New("datos de productos inválidos o vacíos")
	ErrInvalidPurchaseRecords = errors.New("datos de compras inválidos o vacíos")
	ErrInvalidOptions         = errors.New("las opciones deben ser un objeto")
	ErrInvalidRevenueStrategy = errors.New("calculateRevenue debe ser una función")
	ErrInvalidBonusStrategy   = errors.New("calculateBonus debe ser una función")
)
