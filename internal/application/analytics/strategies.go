package analytics

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/sales-analytics/internal/domain"
	"github.com/jhoicas/sales-analytics/internal/domain/sales"
)

// Nombres de las estrategias incluidas.
const (
	RevenueSimple = "simple"
	BonusByProfit = "by_profit"
)

// StrategyRegistry resuelve estrategias de venta y de bono por nombre.
// Es seguro para uso concurrente (los handlers HTTP lo comparten).
type StrategyRegistry struct {
	mu      sync.RWMutex
	revenue map[string]sales.RevenueFunc
	bonus   map[string]sales.BonusFunc

	defaultRevenue string
	defaultBonus   string
}

// NewStrategyRegistry crea el registro con las estrategias por defecto.
// defaultRevenue/defaultBonus vacíos equivalen a "simple" y "by_profit".
func NewStrategyRegistry(defaultRevenue, defaultBonus string) *StrategyRegistry {
	if defaultRevenue == "" {
		defaultRevenue = RevenueSimple
	}
	if defaultBonus == "" {
		defaultBonus = BonusByProfit
	}
	return &StrategyRegistry{
		revenue: map[string]sales.RevenueFunc{
			RevenueSimple: sales.CalculateSimpleRevenue,
		},
		bonus: map[string]sales.BonusFunc{
			BonusByProfit: sales.CalculateBonusByProfit,
		},
		defaultRevenue: defaultRevenue,
		defaultBonus:   defaultBonus,
	}
}

// RegisterRevenueStrategy agrega o reemplaza una estrategia de venta.
func (r *StrategyRegistry) RegisterRevenueStrategy(name string, fn sales.RevenueFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revenue[name] = fn
}

// RegisterBonusStrategy agrega o reemplaza una estrategia de bono.
func (r *StrategyRegistry) RegisterBonusStrategy(name string, fn sales.BonusFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bonus[name] = fn
}

// Resolve devuelve las opciones del análisis y los nombres efectivos usados.
// Un nombre desconocido devuelve ErrInvalidRevenueStrategy o ErrInvalidBonusStrategy.
func (r *StrategyRegistry) Resolve(revenueName, bonusName string) (*sales.Options, string, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if revenueName == "" {
		revenueName = r.defaultRevenue
	}
	if bonusName == "" {
		bonusName = r.defaultBonus
	}
	revenue, ok := r.revenue[revenueName]
	if !ok {
		return nil, "", "", fmt.Errorf("estrategia de venta %q: %w", revenueName, domain.ErrInvalidRevenueStrategy)
	}
	bonus, ok := r.bonus[bonusName]
	if !ok {
		return nil, "", "", fmt.Errorf("estrategia de bono %q: %w", bonusName, domain.ErrInvalidBonusStrategy)
	}
	return &sales.Options{CalculateRevenue: revenue, CalculateBonus: bonus}, revenueName, bonusName, nil
}

// Names lista los nombres registrados, ordenados.
func (r *StrategyRegistry) Names() (revenue, bonus []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name := range r.revenue {
		revenue = append(revenue, name)
	}
	for name := range r.bonus {
		bonus = append(bonus, name)
	}
	sort.Strings(revenue)
	sort.Strings(bonus)
	return revenue, bonus
}

// Defaults devuelve los nombres usados cuando la petición no indica estrategia.
func (r *StrategyRegistry) Defaults() (revenue, bonus string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultRevenue, r.defaultBonus
}
