package entities

import (
	"fmt"
	"time"
)

// InstallationType is how the rail is fixed at the opening.
type InstallationType string

const (
	InstallationTypeTeto     InstallationType = "teto"
	InstallationTypeParede   InstallationType = "parede"
	InstallationTypeEmbutido InstallationType = "embutido"
)

func (t InstallationType) IsValid() bool {
	switch t {
	case "", InstallationTypeTeto, InstallationTypeParede, InstallationTypeEmbutido:
		return true
	}
	return false
}

// Medidas holds the raw measurements taken on site. Every value is optional until measured.
type Medidas struct {
	Largura        *float64         `json:"largura,omitempty"`
	Altura         *float64         `json:"altura,omitempty"`
	Recuo          *float64         `json:"recuo,omitempty"`
	TipoInstalacao InstallationType `json:"tipo_instalacao,omitempty"`
}

// DiscountRules are subtractive adjustments applied to raw measurements.
type DiscountRules struct {
	DescontoTrilho   *float64 `json:"desconto_trilho,omitempty"`
	DescontoBlackout *float64 `json:"desconto_blackout,omitempty"`
	DescontoVoil     *float64 `json:"desconto_voil,omitempty"`
	AlturaInstalacao *float64 `json:"altura_instalacao,omitempty"`
}

// Variaveis are the production variables chosen for the ambiente.
type Variaveis struct {
	Trilho           string        `json:"trilho,omitempty"`
	TipoMontagem     string        `json:"tipo_montagem,omitempty"`
	TecidoPrincipal  string        `json:"tecido_principal,omitempty"`
	TecidoSecundario string        `json:"tecido_secundario,omitempty"`
	Regras           DiscountRules `json:"regras"`
}

// Calculado holds the derived cut dimensions. Never set by clients.
type Calculado struct {
	LarguraTrilho  *float64 `json:"largura_trilho,omitempty"`
	AlturaBlackout *float64 `json:"altura_blackout,omitempty"`
	AlturaVoil     *float64 `json:"altura_voil,omitempty"`
}

// Workflow keeps one timestamp per major transition.
type Workflow struct {
	ValidadoEm            *time.Time `json:"validado_em,omitempty"`
	InicioProducaoCalha   *time.Time `json:"inicio_producao_calha,omitempty"`
	FimProducaoCalha      *time.Time `json:"fim_producao_calha,omitempty"`
	InicioProducaoCortina *time.Time `json:"inicio_producao_cortina,omitempty"`
	FimProducaoCortina    *time.Time `json:"fim_producao_cortina,omitempty"`
	EntradaEstoque        *time.Time `json:"entrada_estoque,omitempty"`
	SaidaEstoque          *time.Time `json:"saida_estoque,omitempty"`
	SaidaExpedicao        *time.Time `json:"saida_expedicao,omitempty"`
	InicioInstalacao      *time.Time `json:"inicio_instalacao,omitempty"`
	FimInstalacao         *time.Time `json:"fim_instalacao,omitempty"`
}

// Responsaveis references the user responsible for each stage. Independent of status.
type Responsaveis struct {
	ProducaoCortina    string `json:"producao_cortina,omitempty"`
	ProducaoCalha      string `json:"producao_calha,omitempty"`
	Instalador         string `json:"instalador,omitempty"`
	RecebimentoEstoque string `json:"recebimento_estoque,omitempty"`
	SeparacaoExpedicao string `json:"separacao_expedicao,omitempty"`
}

// AmbienteLog is one audit entry. Entries are appended once per accepted transition.
type AmbienteLog struct {
	Status      AmbienteStatus `json:"status"`
	Observacao  string         `json:"observacao,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
	UsuarioID   string         `json:"usuario_id"`
	UsuarioNome string         `json:"usuario_nome"`
}

// Ambiente is one measurable opening inside an obra; the unit of work of the pipeline.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (obra_id-index): obra_id
//   - GSI (status-index): status
//
// Version guards concurrent saves: every save increments it and is conditioned on the
// value that was read.
type Ambiente struct {
	ID        string `json:"id"`
	ObraID    string `json:"obra_id"`
	Codigo    string `json:"codigo"`
	Prefixo   string `json:"prefixo"`
	Sala      string `json:"sala"`
	Sequencia int    `json:"sequencia"`

	Medidas      Medidas        `json:"medidas"`
	Variaveis    Variaveis      `json:"variaveis"`
	Calculado    Calculado      `json:"calculado"`
	Status       AmbienteStatus `json:"status"`
	Workflow     Workflow       `json:"workflow"`
	Logs         []AmbienteLog  `json:"logs"`
	Responsaveis Responsaveis   `json:"responsaveis"`

	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"version"`
}

// BuildCodigo composes the display code {prefix}{room}-{sequence}.
func BuildCodigo(prefixo, sala string, sequencia int) string {
	return fmt.Sprintf("%s%s-%d", prefixo, sala, sequencia)
}

// AppendLog adds an audit entry at the end of the log.
func (a *Ambiente) AppendLog(entry AmbienteLog) {
	a.Logs = append(a.Logs, entry)
}

// StampWorkflow records the timestamps associated with entering status.
// Re-entering a stage (manager correction) overwrites the previous stamp.
func (a *Ambiente) StampWorkflow(from, to AmbienteStatus, at time.Time) {
	t := at
	w := &a.Workflow
	switch to {
	case AmbienteStatusEmProducao:
		if from == AmbienteStatusAguardandoValidacao {
			w.ValidadoEm = &t
		}
	case AmbienteStatusProducaoCalha:
		if from == AmbienteStatusAguardandoValidacao {
			w.ValidadoEm = &t
		}
		w.InicioProducaoCalha = &t
	case AmbienteStatusProducaoCortina:
		w.FimProducaoCalha = &t
		w.InicioProducaoCortina = &t
	case AmbienteStatusEstoqueDeposito:
		w.FimProducaoCortina = &t
		w.EntradaEstoque = &t
	case AmbienteStatusEmTransito:
		w.SaidaEstoque = &t
		w.SaidaExpedicao = &t
	case AmbienteStatusAguardandoInstalacao:
		w.InicioInstalacao = &t
	case AmbienteStatusInstalado:
		w.FimInstalacao = &t
	}
}
