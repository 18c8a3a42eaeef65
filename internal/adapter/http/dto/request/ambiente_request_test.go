package request

import (
	"testing"

	"gestao_cortinas/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestCreateAmbienteRequest_ToInput(t *testing.T) {
	r := CreateAmbienteRequest{
		ObraID:  " obra-1 ",
		Prefixo: "APTO101",
		Sala:    " SALA ",
		Medidas: &MedidasRequest{Largura: f64(300), TipoInstalacao: " teto "},
		Variaveis: &VariaveisRequest{
			TipoMontagem: " dupla ",
			Regras:       RegrasRequest{DescontoTrilho: f64(4)},
		},
	}

	in := r.ToInput()
	assert.Equal(t, "obra-1", in.ObraID)
	assert.Equal(t, "SALA", in.Sala)
	assert.Equal(t, entities.InstallationTypeTeto, in.Medidas.TipoInstalacao)
	assert.Equal(t, 300.0, *in.Medidas.Largura)
	assert.Nil(t, in.Medidas.Altura)
	assert.Equal(t, "dupla", in.Variaveis.TipoMontagem)
	assert.Equal(t, 4.0, *in.Variaveis.Regras.DescontoTrilho)
	assert.Equal(t, entities.Responsaveis{}, in.Responsaveis)
}

func TestUpdateAmbienteRequest_ToInput(t *testing.T) {
	status := " producao_calha "
	version := int64(4)
	in := UpdateAmbienteRequest{Status: &status, Version: &version, Observacao: " ok "}.ToInput()

	require.NotNil(t, in.Status)
	assert.Equal(t, entities.AmbienteStatusProducaoCalha, *in.Status)
	assert.Nil(t, in.Medidas)
	assert.Nil(t, in.Variaveis)
	assert.Nil(t, in.Responsaveis)
	assert.Equal(t, "ok", in.Observacao)
	assert.Equal(t, int64(4), *in.Version)

	assert.Nil(t, UpdateAmbienteRequest{}.ToInput().Status)
}

func TestAddResponsaveisRequest_IDs(t *testing.T) {
	assert.Equal(t, []string{"u-1", "u-2"}, AddResponsaveisRequest{UsuarioIDs: []string{" u-1", "", "u-2 "}}.IDs())
}
