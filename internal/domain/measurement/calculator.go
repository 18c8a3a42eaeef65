// Package measurement derives fabrication cut dimensions from raw measurements.
package measurement

import (
	"math"

	"gestao_cortinas/internal/domain/entities"
)

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func cut(raw, discount *float64) *float64 {
	if raw == nil || *raw <= 0 {
		return nil
	}
	v := Round1(*raw - valueOrZero(discount))
	return &v
}

// Compute returns the derived cut dimensions. A result is nil when its raw dimension is
// absent or non-positive; absent discounts count as zero.
func Compute(width, height *float64, rules entities.DiscountRules) entities.Calculado {
	return entities.Calculado{
		LarguraTrilho:  cut(width, rules.DescontoTrilho),
		AlturaVoil:     cut(height, rules.DescontoVoil),
		AlturaBlackout: cut(height, rules.DescontoBlackout),
	}
}

// Recalculate overwrites the derived fields of a from its current inputs.
func Recalculate(a *entities.Ambiente) {
	a.Calculado = Compute(a.Medidas.Largura, a.Medidas.Altura, a.Variaveis.Regras)
}
