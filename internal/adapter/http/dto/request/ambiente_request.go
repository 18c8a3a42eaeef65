package request

import (
	"strings"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/usecase"
)

type MedidasRequest struct {
	Largura        *float64 `json:"largura"`
	Altura         *float64 `json:"altura"`
	Recuo          *float64 `json:"recuo"`
	TipoInstalacao string   `json:"tipo_instalacao"`
}

func (r *MedidasRequest) toEntity() *entities.Medidas {
	if r == nil {
		return nil
	}
	return &entities.Medidas{
		Largura:        r.Largura,
		Altura:         r.Altura,
		Recuo:          r.Recuo,
		TipoInstalacao: entities.InstallationType(strings.TrimSpace(r.TipoInstalacao)),
	}
}

type RegrasRequest struct {
	DescontoTrilho   *float64 `json:"desconto_trilho"`
	DescontoBlackout *float64 `json:"desconto_blackout"`
	DescontoVoil     *float64 `json:"desconto_voil"`
	AlturaInstalacao *float64 `json:"altura_instalacao"`
}

type VariaveisRequest struct {
	Trilho           string        `json:"trilho"`
	TipoMontagem     string        `json:"tipo_montagem"`
	TecidoPrincipal  string        `json:"tecido_principal"`
	TecidoSecundario string        `json:"tecido_secundario"`
	Regras           RegrasRequest `json:"regras"`
}

func (r *VariaveisRequest) toEntity() *entities.Variaveis {
	if r == nil {
		return nil
	}
	return &entities.Variaveis{
		Trilho:           strings.TrimSpace(r.Trilho),
		TipoMontagem:     strings.TrimSpace(r.TipoMontagem),
		TecidoPrincipal:  strings.TrimSpace(r.TecidoPrincipal),
		TecidoSecundario: strings.TrimSpace(r.TecidoSecundario),
		Regras: entities.DiscountRules{
			DescontoTrilho:   r.Regras.DescontoTrilho,
			DescontoBlackout: r.Regras.DescontoBlackout,
			DescontoVoil:     r.Regras.DescontoVoil,
			AlturaInstalacao: r.Regras.AlturaInstalacao,
		},
	}
}

type ResponsaveisRequest struct {
	ProducaoCortina    string `json:"producao_cortina"`
	ProducaoCalha      string `json:"producao_calha"`
	Instalador         string `json:"instalador"`
	RecebimentoEstoque string `json:"recebimento_estoque"`
	SeparacaoExpedicao string `json:"separacao_expedicao"`
}

func (r *ResponsaveisRequest) toEntity() *entities.Responsaveis {
	if r == nil {
		return nil
	}
	return &entities.Responsaveis{
		ProducaoCortina:    strings.TrimSpace(r.ProducaoCortina),
		ProducaoCalha:      strings.TrimSpace(r.ProducaoCalha),
		Instalador:         strings.TrimSpace(r.Instalador),
		RecebimentoEstoque: strings.TrimSpace(r.RecebimentoEstoque),
		SeparacaoExpedicao: strings.TrimSpace(r.SeparacaoExpedicao),
	}
}

// CreateAmbienteRequest registers a new ambiente inside an obra.
type CreateAmbienteRequest struct {
	ObraID       string               `json:"obra_id" binding:"required"`
	Prefixo      string               `json:"prefixo"`
	Sala         string               `json:"sala" binding:"required"`
	Medidas      *MedidasRequest      `json:"medidas"`
	Variaveis    *VariaveisRequest    `json:"variaveis"`
	Responsaveis *ResponsaveisRequest `json:"responsaveis"`
	Observacao   string               `json:"observacao"`
}

func (r CreateAmbienteRequest) ToInput() usecase.CreateAmbienteInput {
	in := usecase.CreateAmbienteInput{
		ObraID:     strings.TrimSpace(r.ObraID),
		Prefixo:    strings.TrimSpace(r.Prefixo),
		Sala:       strings.TrimSpace(r.Sala),
		Observacao: strings.TrimSpace(r.Observacao),
	}
	if m := r.Medidas.toEntity(); m != nil {
		in.Medidas = *m
	}
	if v := r.Variaveis.toEntity(); v != nil {
		in.Variaveis = *v
	}
	if resp := r.Responsaveis.toEntity(); resp != nil {
		in.Responsaveis = *resp
	}
	return in
}

// UpdateAmbienteRequest is a partial update. Absent groups are left untouched.
// Observacao goes into the log entry of the status change and requires Status;
// it is ignored when Status equals the current status.
type UpdateAmbienteRequest struct {
	Medidas      *MedidasRequest      `json:"medidas"`
	Variaveis    *VariaveisRequest    `json:"variaveis"`
	Responsaveis *ResponsaveisRequest `json:"responsaveis"`
	Status       *string              `json:"status"`
	Observacao   string               `json:"observacao"`
	Version      *int64               `json:"version"`
}

func (r UpdateAmbienteRequest) ToInput() usecase.UpdateAmbienteInput {
	in := usecase.UpdateAmbienteInput{
		Medidas:      r.Medidas.toEntity(),
		Variaveis:    r.Variaveis.toEntity(),
		Responsaveis: r.Responsaveis.toEntity(),
		Observacao:   strings.TrimSpace(r.Observacao),
		Version:      r.Version,
	}
	if r.Status != nil {
		s := entities.AmbienteStatus(strings.TrimSpace(*r.Status))
		in.Status = &s
	}
	return in
}
