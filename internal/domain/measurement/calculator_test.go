package measurement

import (
	"testing"

	"gestao_cortinas/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestCompute(t *testing.T) {
	rules := entities.DiscountRules{
		DescontoTrilho:   f(5),
		DescontoBlackout: f(3),
		DescontoVoil:     f(2),
	}

	t.Run("width zero suppresses rail", func(t *testing.T) {
		got := Compute(f(0), f(100), rules)
		assert.Nil(t, got.LarguraTrilho)
		require.NotNil(t, got.AlturaVoil)
		require.NotNil(t, got.AlturaBlackout)
		assert.Equal(t, 98.0, *got.AlturaVoil)
		assert.Equal(t, 97.0, *got.AlturaBlackout)
	})

	t.Run("rounds to one decimal", func(t *testing.T) {
		got := Compute(f(200.37), f(150), entities.DiscountRules{DescontoTrilho: f(1.5)})
		require.NotNil(t, got.LarguraTrilho)
		assert.Equal(t, 198.9, *got.LarguraTrilho)
		assert.Equal(t, 150.0, *got.AlturaVoil)
		assert.Equal(t, 150.0, *got.AlturaBlackout)
	})

	t.Run("absent inputs", func(t *testing.T) {
		got := Compute(nil, nil, rules)
		assert.Nil(t, got.LarguraTrilho)
		assert.Nil(t, got.AlturaVoil)
		assert.Nil(t, got.AlturaBlackout)
	})

	t.Run("negative height suppresses linings", func(t *testing.T) {
		got := Compute(f(120), f(-4), rules)
		assert.Equal(t, 115.0, *got.LarguraTrilho)
		assert.Nil(t, got.AlturaVoil)
		assert.Nil(t, got.AlturaBlackout)
	})

	t.Run("absent discounts count as zero", func(t *testing.T) {
		got := Compute(f(180.04), f(260.05), entities.DiscountRules{})
		assert.Equal(t, 180.0, *got.LarguraTrilho)
		assert.Equal(t, 260.1, *got.AlturaVoil)
	})
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 0.3, Round1(0.25))
	assert.Equal(t, -0.3, Round1(-0.25))
	assert.Equal(t, 10.0, Round1(9.96))
}

func TestRecalculate(t *testing.T) {
	a := entities.Ambiente{
		Medidas:   entities.Medidas{Largura: f(300), Altura: f(250)},
		Variaveis: entities.Variaveis{Regras: entities.DiscountRules{DescontoTrilho: f(2), DescontoVoil: f(1), DescontoBlackout: f(1.5)}},
		Calculado: entities.Calculado{LarguraTrilho: f(1)},
	}
	Recalculate(&a)
	assert.Equal(t, 298.0, *a.Calculado.LarguraTrilho)
	assert.Equal(t, 249.0, *a.Calculado.AlturaVoil)
	assert.Equal(t, 248.5, *a.Calculado.AlturaBlackout)
}
