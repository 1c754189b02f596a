package production

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// QuantityCheck resultado de validar la cantidad de un rollo nuevo.
// Allowed siempre es true: exceder lo pendiente se permite (sobre-producción),
// Excess le indica al llamador cuánto advertir.
type QuantityCheck struct {
	Allowed   bool
	Excess    decimal.Decimal
	Remaining decimal.Decimal
}

// TotalExtruded suma ExtrudingQty de los rollos de una orden de trabajo.
func TotalExtruded(rolls []*entity.Roll) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rolls {
		total = total.Add(r.ExtrudingQty)
	}
	return total
}

// RemainingQuantity = max(0, jobOrder.Quantity − TotalExtruded). Nunca negativo.
func RemainingQuantity(jobOrder *entity.JobOrder, rolls []*entity.Roll) decimal.Decimal {
	remaining := jobOrder.Quantity.Sub(TotalExtruded(rolls))
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ValidateNewRollQuantity calcula el excedente de un rollo de requested kg sobre lo pendiente.
func ValidateNewRollQuantity(jobOrder *entity.JobOrder, rolls []*entity.Roll, requested decimal.Decimal) QuantityCheck {
	remaining := RemainingQuantity(jobOrder, rolls)
	excess := decimal.Zero
	if requested.GreaterThan(remaining) {
		excess = requested.Sub(remaining)
	}
	return QuantityCheck{Allowed: true, Excess: excess, Remaining: remaining}
}
