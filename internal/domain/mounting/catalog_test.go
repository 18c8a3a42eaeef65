package mounting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasEightArchetypes(t *testing.T) {
	all := All()
	assert.Len(t, all, 8)
	seen := map[string]bool{}
	for _, a := range all {
		assert.False(t, seen[a.ID], "duplicated archetype %s", a.ID)
		seen[a.ID] = true
		assert.NotEmpty(t, a.Nome)
		assert.NotEmpty(t, a.Pieces)
	}
}

func TestCalculatePieces_Counts(t *testing.T) {
	cases := []struct {
		id   string
		want int
	}{
		{ArchetypeSimples, 1},
		{ArchetypeDupla, 2},
		{ArchetypeDuplaCruzada, 3},
		{ArchetypePainelFixoMovel, 3},
		{ArchetypeSistemaQuadruplo, 4},
		{ArchetypeWave, 1},
		{ArchetypeWaveDupla, 2},
		{ArchetypeMotorizado, 1},
	}
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			pieces, err := CalculatePieces(tc.id, 200, 2)
			require.NoError(t, err)
			assert.Len(t, pieces, tc.want)
			assert.Equal(t, tc.want, TotalPieces(tc.id))
		})
	}
}

func TestCalculatePieces_Formulas(t *testing.T) {
	t.Run("simples", func(t *testing.T) {
		pieces, err := CalculatePieces(ArchetypeSimples, 200.37, 1.5)
		require.NoError(t, err)
		assert.Equal(t, 198.9, pieces[0].Largura)
	})

	t.Run("dupla cruzada", func(t *testing.T) {
		pieces, err := CalculatePieces(ArchetypeDuplaCruzada, 300, 4)
		require.NoError(t, err)
		assert.Equal(t, 296.0, pieces[0].Largura)
		assert.Equal(t, 163.0, pieces[1].Largura)
		assert.Equal(t, 163.0, pieces[2].Largura)
	})

	t.Run("painel fixo movel", func(t *testing.T) {
		pieces, err := CalculatePieces(ArchetypePainelFixoMovel, 250, 10)
		require.NoError(t, err)
		assert.Equal(t, 30.0, pieces[0].Largura)
		assert.Equal(t, 180.0, pieces[1].Largura)
		assert.Equal(t, 30.0, pieces[2].Largura)
	})

	t.Run("wave", func(t *testing.T) {
		pieces, err := CalculatePieces(ArchetypeWave, 200, 0)
		require.NoError(t, err)
		assert.Equal(t, 220.0, pieces[0].Largura)
	})
}

func TestCalculatePieces_ClampsNegative(t *testing.T) {
	pieces, err := CalculatePieces(ArchetypePainelFixoMovel, 10, 50)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pieces[1].Largura)

	for _, id := range []string{ArchetypeSimples, ArchetypeDuplaCruzada, ArchetypeSistemaQuadruplo, ArchetypeWave} {
		pieces, err := CalculatePieces(id, 10, 50)
		require.NoError(t, err)
		for _, p := range pieces {
			assert.GreaterOrEqual(t, p.Largura, 0.0, "%s/%s", id, p.Nome)
		}
	}
}

func TestUnknownArchetype(t *testing.T) {
	_, err := CalculatePieces("persiana_magica", 100, 0)
	assert.ErrorIs(t, err, ErrUnknownArchetype)
	assert.Equal(t, 1, TotalPieces("persiana_magica"))
	_, ok := Lookup("persiana_magica")
	assert.False(t, ok)
	assert.False(t, IsKnown(""))
}
